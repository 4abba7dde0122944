package payroll

import (
	"context"
	"time"

	"github.com/KevinGeorge100/koco-payroll/internal/domain/attendance"
	"github.com/KevinGeorge100/koco-payroll/internal/domain/employee"
	"github.com/KevinGeorge100/koco-payroll/internal/domain/leave"
)

// StoreAPI is the read surface the payslip computation consumes. All three
// lookups are snapshots; the computation itself never fetches.
type StoreAPI interface {
	Employee(ctx context.Context, employeeID string) (employee.Employee, error)
	Compensation(ctx context.Context, employeeID string) (employee.Compensation, error)
	AttendanceForMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.Record, error)
	ApprovedLeavesOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]leave.Request, error)
}
