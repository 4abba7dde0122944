package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/KevinGeorge100/koco-payroll/internal/domain/attendance"
	"github.com/KevinGeorge100/koco-payroll/internal/domain/calendar"
)

type Service struct {
	Store  StoreAPI
	Policy Policy
	now    func() time.Time
}

func NewService(store StoreAPI, policy Policy) *Service {
	return &Service{Store: store, Policy: policy, now: time.Now}
}

// ComputePayslip produces the payslip for one employee and month from the
// current stored snapshot. Nothing is persisted; the result is
// reproducible from the same inputs.
func (s *Service) ComputePayslip(ctx context.Context, employeeID string, year int, month time.Month) (Payslip, error) {
	if month < time.January || month > time.December {
		return Payslip{}, fmt.Errorf("%w: month %d", ErrInvalidPeriod, month)
	}
	if year < 1900 || year > 9999 {
		return Payslip{}, fmt.Errorf("%w: year %d", ErrInvalidPeriod, year)
	}

	emp, err := s.Store.Employee(ctx, employeeID)
	if err != nil {
		return Payslip{}, err
	}
	comp, err := s.Store.Compensation(ctx, employeeID)
	if err != nil {
		return Payslip{}, err
	}

	records, err := s.Store.AttendanceForMonth(ctx, employeeID, year, month)
	if err != nil {
		return Payslip{}, err
	}
	summary := attendance.Summarize(year, month, records)

	periodStart, periodEnd := calendar.MonthBounds(year, month)
	approved, err := s.Store.ApprovedLeavesOverlapping(ctx, employeeID, periodStart, periodEnd)
	if err != nil {
		return Payslip{}, err
	}

	return Compute(emp, comp, summary, approved, s.Policy, s.now())
}

// AvailablePayslips lists the pay months an employee can request, most
// recent first, bounded by the hire date.
func (s *Service) AvailablePayslips(ctx context.Context, employeeID string, limit int) ([]AvailablePayslip, error) {
	if limit <= 0 || limit > 50 {
		limit = 12
	}
	emp, err := s.Store.Employee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	hired := time.Date(emp.HireDate.Year(), emp.HireDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	cursor := s.now().UTC()
	cursor = time.Date(cursor.Year(), cursor.Month(), 1, 0, 0, 0, 0, time.UTC)

	var out []AvailablePayslip
	for i := 0; i < limit && !cursor.Before(hired); i++ {
		out = append(out, AvailablePayslip{
			Year:      cursor.Year(),
			Month:     int(cursor.Month()),
			MonthName: cursor.Month().String(),
			Period:    fmt.Sprintf("%s %d", cursor.Month(), cursor.Year()),
		})
		cursor = cursor.AddDate(0, -1, 0)
	}
	return out, nil
}
