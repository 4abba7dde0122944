package employee

import "time"

type Employee struct {
	ID             string     `json:"id"`
	EmployeeNumber string     `json:"employeeNumber"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	Designation    string     `json:"designation"`
	Department     string     `json:"department"`
	HireDate       time.Time  `json:"hireDate"`
	BaseSalary     *float64   `json:"baseSalary,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// Compensation is the read-only salary snapshot the payslip computer
// works from.
type Compensation struct {
	EmployeeID string
	BaseSalary float64
}
