package payroll

import (
	"math"
	"time"

	"github.com/KevinGeorge100/koco-payroll/internal/domain/attendance"
	"github.com/KevinGeorge100/koco-payroll/internal/domain/calendar"
	"github.com/KevinGeorge100/koco-payroll/internal/domain/employee"
	"github.com/KevinGeorge100/koco-payroll/internal/domain/leave"
)

// Compute assembles a payslip from the month's inputs. It is pure: no
// clock reads, no storage, every monetary figure derived in full float64
// precision and rounded exactly once on the way out.
//
// Income tax is deliberately computed on the un-prorated annualized gross,
// not the attendance-adjusted figure.
func Compute(emp employee.Employee, comp employee.Compensation, summary attendance.Summary,
	approvedLeaves []leave.Request, policy Policy, generatedAt time.Time) (Payslip, error) {

	basic := comp.BaseSalary
	hra := basic * policy.HRARate
	da := basic * policy.DARate
	gross := basic + hra + da + policy.MedicalAllowance + policy.ConveyanceAllowance

	attended := float64(summary.Present) + policy.HalfDayWeight*float64(summary.HalfDay)
	percentage := 0.0
	if summary.WorkingDays > 0 {
		percentage = attended / float64(summary.WorkingDays)
	}
	salaryAfterAttendance := gross * percentage

	pf := basic * policy.PFRate
	esi := gross * policy.StateInsuranceRate
	professionalTax := 0.0
	if gross > policy.ProfessionalTaxFloor {
		professionalTax = policy.ProfessionalTax
	}
	incomeTax, err := MonthlyIncomeTax(gross * 12)
	if err != nil {
		return Payslip{}, err
	}

	totalDeductions := pf + esi + professionalTax + incomeTax
	net := salaryAfterAttendance - totalDeductions

	periodStart, periodEnd := calendar.MonthBounds(summary.Year, time.Month(summary.Month))
	leaveDays := 0
	for _, req := range approvedLeaves {
		if req.Status != leave.StatusApproved {
			continue
		}
		leaveDays += leave.DaysWithin(req, periodStart, periodEnd)
	}

	return Payslip{
		Employee: EmployeeInfo{
			ID:             emp.ID,
			EmployeeNumber: emp.EmployeeNumber,
			FirstName:      emp.FirstName,
			LastName:       emp.LastName,
			Email:          emp.Email,
			Designation:    emp.Designation,
			Department:     emp.Department,
			JoiningDate:    emp.HireDate,
		},
		PayPeriod: PayPeriod{
			Year:      summary.Year,
			Month:     summary.Month,
			MonthName: time.Month(summary.Month).String(),
			StartDate: periodStart,
			EndDate:   periodEnd,
		},
		Attendance: AttendanceBreakdown{
			TotalWorkingDays:     summary.WorkingDays,
			AttendedDays:         attended,
			AbsentDays:           summary.Absent,
			LeaveDays:            leaveDays,
			WeekendDays:          summary.WeekendDays,
			AttendancePercentage: int(math.Round(percentage * 100)),
		},
		Earnings: Earnings{
			BasicSalary:           math.Round(basic),
			HRA:                   math.Round(hra),
			DA:                    math.Round(da),
			MedicalAllowance:      math.Round(policy.MedicalAllowance),
			ConveyanceAllowance:   math.Round(policy.ConveyanceAllowance),
			GrossSalary:           math.Round(gross),
			SalaryAfterAttendance: math.Round(salaryAfterAttendance),
		},
		Deductions: Deductions{
			PF:              math.Round(pf),
			StateInsurance:  math.Round(esi),
			ProfessionalTax: math.Round(professionalTax),
			IncomeTax:       math.Round(incomeTax),
			TotalDeductions: math.Round(totalDeductions),
		},
		NetSalary:   math.Round(net),
		GeneratedAt: generatedAt,
	}, nil
}
