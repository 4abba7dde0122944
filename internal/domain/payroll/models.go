package payroll

import "time"

type EmployeeInfo struct {
	ID             string    `json:"id"`
	EmployeeNumber string    `json:"employeeNumber"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Designation    string    `json:"designation"`
	Department     string    `json:"department"`
	JoiningDate    time.Time `json:"joiningDate"`
}

type PayPeriod struct {
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	MonthName string    `json:"monthName"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type AttendanceBreakdown struct {
	TotalWorkingDays     int     `json:"totalWorkingDays"`
	AttendedDays         float64 `json:"attendedDays"`
	AbsentDays           int     `json:"absentDays"`
	LeaveDays            int     `json:"leaveDays"`
	WeekendDays          int     `json:"weekends"`
	AttendancePercentage int     `json:"attendancePercentage"`
}

// Earnings and Deductions carry whole-currency amounts; rounding happens
// once, when the payslip is assembled.
type Earnings struct {
	BasicSalary           float64 `json:"basicSalary"`
	HRA                   float64 `json:"hra"`
	DA                    float64 `json:"da"`
	MedicalAllowance      float64 `json:"medicalAllowance"`
	ConveyanceAllowance   float64 `json:"conveyanceAllowance"`
	GrossSalary           float64 `json:"grossSalary"`
	SalaryAfterAttendance float64 `json:"salaryAfterAttendance"`
}

type Deductions struct {
	PF              float64 `json:"pf"`
	StateInsurance  float64 `json:"esi"`
	ProfessionalTax float64 `json:"professionalTax"`
	IncomeTax       float64 `json:"incomeTax"`
	TotalDeductions float64 `json:"totalDeductions"`
}

// Payslip is a pure function of its inputs; recomputing with the same
// snapshot yields an identical value.
type Payslip struct {
	Employee    EmployeeInfo        `json:"employee"`
	PayPeriod   PayPeriod           `json:"payPeriod"`
	Attendance  AttendanceBreakdown `json:"attendance"`
	Earnings    Earnings            `json:"earnings"`
	Deductions  Deductions          `json:"deductions"`
	NetSalary   float64             `json:"netSalary"`
	GeneratedAt time.Time           `json:"generatedAt"`
}

type AvailablePayslip struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	MonthName string `json:"monthName"`
	Period    string `json:"period"`
}
