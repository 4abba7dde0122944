package payroll

import "math"

// Progressive income tax slabs. Each marginal rate applies only to the
// slice of income inside its bracket.
type bracket struct {
	limit float64
	rate  float64
}

var brackets = []bracket{
	{limit: 250000, rate: 0},
	{limit: 500000, rate: 0.05},
	{limit: 1000000, rate: 0.20},
	{limit: math.Inf(1), rate: 0.30},
}

// AnnualIncomeTax computes the tax liability on annualized gross income.
func AnnualIncomeTax(annualIncome float64) (float64, error) {
	if annualIncome < 0 {
		return 0, ErrInvalidAmount
	}
	tax := 0.0
	lower := 0.0
	for _, b := range brackets {
		if annualIncome <= b.limit {
			tax += (annualIncome - lower) * b.rate
			return tax, nil
		}
		tax += (b.limit - lower) * b.rate
		lower = b.limit
	}
	return tax, nil
}

// MonthlyIncomeTax is the annual liability spread evenly across twelve
// months.
func MonthlyIncomeTax(annualIncome float64) (float64, error) {
	annual, err := AnnualIncomeTax(annualIncome)
	if err != nil {
		return 0, err
	}
	return annual / 12, nil
}
