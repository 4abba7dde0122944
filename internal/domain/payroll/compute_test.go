package payroll

import (
	"reflect"
	"testing"
	"time"

	"github.com/KevinGeorge100/koco-payroll/internal/domain/attendance"
	"github.com/KevinGeorge100/koco-payroll/internal/domain/employee"
	"github.com/KevinGeorge100/koco-payroll/internal/domain/leave"
)

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:             "emp-1",
		EmployeeNumber: "E001",
		FirstName:      "Asha",
		LastName:       "Nair",
		Email:          "asha.nair@example.com",
		Designation:    "Engineer",
		Department:     "Platform",
		HireDate:       time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
}

// April 2025 has 30 days, 8 weekend days and 22 working days.
func aprilSummary(present int) attendance.Summary {
	return attendance.Summary{
		Year:        2025,
		Month:       int(time.April),
		TotalDays:   30,
		WeekendDays: 8,
		WorkingDays: 22,
		Present:     present,
	}
}

func TestComputeFullAttendance(t *testing.T) {
	comp := employee.Compensation{EmployeeID: "emp-1", BaseSalary: 50000}
	now := time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)

	slip, err := Compute(testEmployee(), comp, aprilSummary(22), nil, DefaultPolicy(), now)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	// 50000 * (1 + 0.40 + 0.12) + 1250 + 1600
	if got := slip.Earnings.GrossSalary; got != 78850 {
		t.Errorf("gross salary = %v, want 78850", got)
	}
	if got := slip.Attendance.AttendancePercentage; got != 100 {
		t.Errorf("attendance percentage = %d, want 100", got)
	}
	if slip.Earnings.SalaryAfterAttendance != slip.Earnings.GrossSalary {
		t.Errorf("full attendance: salary after attendance = %v, want gross %v",
			slip.Earnings.SalaryAfterAttendance, slip.Earnings.GrossSalary)
	}

	if got := slip.Deductions.PF; got != 6000 {
		t.Errorf("pf = %v, want 6000", got)
	}
	// 78850 * 0.0175 = 1379.875, rounded once at assembly.
	if got := slip.Deductions.StateInsurance; got != 1380 {
		t.Errorf("esi = %v, want 1380", got)
	}
	if got := slip.Deductions.ProfessionalTax; got != 200 {
		t.Errorf("professional tax = %v, want 200", got)
	}
	// Annual gross 946200 -> 12500 + 20% of 446200 = 101740, /12 = 8478.33.
	if got := slip.Deductions.IncomeTax; got != 8478 {
		t.Errorf("income tax = %v, want 8478", got)
	}
	if got := slip.Deductions.TotalDeductions; got != 16058 {
		t.Errorf("total deductions = %v, want 16058", got)
	}
	if got := slip.NetSalary; got != 62792 {
		t.Errorf("net salary = %v, want 62792", got)
	}
}

func TestComputeHalfAttendanceHalvesSalary(t *testing.T) {
	comp := employee.Compensation{EmployeeID: "emp-1", BaseSalary: 50000}
	now := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

	full, err := Compute(testEmployee(), comp, aprilSummary(22), nil, DefaultPolicy(), now)
	if err != nil {
		t.Fatalf("Compute full: %v", err)
	}
	half, err := Compute(testEmployee(), comp, aprilSummary(11), nil, DefaultPolicy(), now)
	if err != nil {
		t.Fatalf("Compute half: %v", err)
	}

	if half.Earnings.SalaryAfterAttendance != full.Earnings.SalaryAfterAttendance/2 {
		t.Errorf("half attendance salary = %v, want exactly half of %v",
			half.Earnings.SalaryAfterAttendance, full.Earnings.SalaryAfterAttendance)
	}
	if got := half.Attendance.AttendancePercentage; got != 50 {
		t.Errorf("attendance percentage = %d, want 50", got)
	}
	// Deductions do not prorate.
	if half.Deductions != full.Deductions {
		t.Errorf("deductions changed with attendance: %+v vs %+v", half.Deductions, full.Deductions)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	comp := employee.Compensation{EmployeeID: "emp-1", BaseSalary: 50000}
	now := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	leaves := []leave.Request{{
		EmployeeID: "emp-1",
		StartDate:  time.Date(2025, time.April, 28, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusApproved,
	}}

	a, err := Compute(testEmployee(), comp, aprilSummary(19), leaves, DefaultPolicy(), now)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	b, err := Compute(testEmployee(), comp, aprilSummary(19), leaves, DefaultPolicy(), now)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("identical inputs produced different payslips:\n%+v\n%+v", a, b)
	}
}

func TestComputeZeroWorkingDays(t *testing.T) {
	comp := employee.Compensation{EmployeeID: "emp-1", BaseSalary: 50000}
	summary := attendance.Summary{Year: 2025, Month: int(time.April)}

	slip, err := Compute(testEmployee(), comp, summary, nil, DefaultPolicy(), time.Now())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if slip.Earnings.SalaryAfterAttendance != 0 {
		t.Errorf("salary after attendance = %v, want 0", slip.Earnings.SalaryAfterAttendance)
	}
	if slip.Attendance.AttendancePercentage != 0 {
		t.Errorf("attendance percentage = %d, want 0", slip.Attendance.AttendancePercentage)
	}
}

func TestComputeProfessionalTaxFloor(t *testing.T) {
	// Gross = 4000*1.52 + 2850 = 8930, at or below the 10000 floor.
	comp := employee.Compensation{EmployeeID: "emp-1", BaseSalary: 4000}

	slip, err := Compute(testEmployee(), comp, aprilSummary(22), nil, DefaultPolicy(), time.Now())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if slip.Deductions.ProfessionalTax != 0 {
		t.Errorf("professional tax = %v, want 0 below floor", slip.Deductions.ProfessionalTax)
	}
}

func TestComputeLeaveDaysClampedToMonth(t *testing.T) {
	comp := employee.Compensation{EmployeeID: "emp-1", BaseSalary: 50000}
	leaves := []leave.Request{
		{
			EmployeeID: "emp-1",
			StartDate:  time.Date(2025, time.April, 28, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC),
			Status:     leave.StatusApproved,
		},
		// Pending requests never count.
		{
			EmployeeID: "emp-1",
			StartDate:  time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2025, time.April, 11, 0, 0, 0, 0, time.UTC),
			Status:     leave.StatusPending,
		},
	}

	slip, err := Compute(testEmployee(), comp, aprilSummary(19), leaves, DefaultPolicy(), time.Now())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got := slip.Attendance.LeaveDays; got != 3 {
		t.Errorf("leave days = %d, want 3 (April 28-30 only)", got)
	}
}

func TestComputeHalfDayWeight(t *testing.T) {
	comp := employee.Compensation{EmployeeID: "emp-1", BaseSalary: 50000}
	policy := DefaultPolicy()
	policy.HalfDayWeight = 0.5

	summary := aprilSummary(10)
	summary.HalfDay = 4

	slip, err := Compute(testEmployee(), comp, summary, nil, policy, time.Now())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got := slip.Attendance.AttendedDays; got != 12 {
		t.Errorf("attended days = %v, want 12 (10 present + 4 half days at 0.5)", got)
	}
}
