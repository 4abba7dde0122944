package payroll

import (
	"context"
	"time"

	"github.com/KevinGeorge100/koco-payroll/internal/domain/attendance"
	"github.com/KevinGeorge100/koco-payroll/internal/domain/employee"
	"github.com/KevinGeorge100/koco-payroll/internal/domain/leave"
)

// Store satisfies StoreAPI by delegating to the owning domain stores.
type Store struct {
	Employees  *employee.Store
	Attendance *attendance.Store
	Leaves     *leave.Store
}

func NewStore(employees *employee.Store, attendanceStore *attendance.Store, leaves *leave.Store) *Store {
	return &Store{Employees: employees, Attendance: attendanceStore, Leaves: leaves}
}

func (s *Store) Employee(ctx context.Context, employeeID string) (employee.Employee, error) {
	return s.Employees.Get(ctx, employeeID)
}

func (s *Store) Compensation(ctx context.Context, employeeID string) (employee.Compensation, error) {
	return s.Employees.GetCompensation(ctx, employeeID)
}

func (s *Store) AttendanceForMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.Record, error) {
	return s.Attendance.ForMonth(ctx, employeeID, year, month)
}

func (s *Store) ApprovedLeavesOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]leave.Request, error) {
	return s.Leaves.ApprovedOverlapping(ctx, employeeID, start, end)
}
