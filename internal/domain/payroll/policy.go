package payroll

// Policy holds the allowance and deduction rates the payslip computer
// applies. The zero value is not useful; start from DefaultPolicy and
// override fields as needed.
type Policy struct {
	HRARate             float64
	DARate              float64
	MedicalAllowance    float64
	ConveyanceAllowance float64
	PFRate              float64
	StateInsuranceRate  float64
	// ProfessionalTax applies only when gross exceeds ProfessionalTaxFloor.
	ProfessionalTax      float64
	ProfessionalTaxFloor float64
	// HalfDayWeight is the attendance credit for a Half Day record: 0 counts
	// it as absent for the attendance ratio, 0.5 as half a day.
	HalfDayWeight float64
}

func DefaultPolicy() Policy {
	return Policy{
		HRARate:              0.40,
		DARate:               0.12,
		MedicalAllowance:     1250,
		ConveyanceAllowance:  1600,
		PFRate:               0.12,
		StateInsuranceRate:   0.0175,
		ProfessionalTax:      200,
		ProfessionalTaxFloor: 10000,
		HalfDayWeight:        0,
	}
}
