package leave

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	reasonMinLen = 10
	reasonMaxLen = 1000
	notesMinLen  = 10
	notesMaxLen  = 500
)

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

// Submit creates a new request in Pending after validating the payload and
// checking for conflicts against the employee's Approved requests. The
// conflict check here is advisory; Decide re-checks at approval time.
func (s *Service) Submit(ctx context.Context, employeeID string, start, end time.Time, leaveType, reason string) (Request, error) {
	start = atMidnightUTC(start)
	end = atMidnightUTC(end)

	if employeeID == "" {
		return Request{}, fmt.Errorf("%w: employee id is required", ErrValidation)
	}
	if end.Before(start) {
		return Request{}, fmt.Errorf("%w: end date must be on or after start date", ErrValidation)
	}
	if !ValidType(leaveType) {
		return Request{}, fmt.Errorf("%w: unknown leave type %q", ErrValidation, leaveType)
	}
	reason = strings.TrimSpace(reason)
	if n := utf8.RuneCountInString(reason); n < reasonMinLen || n > reasonMaxLen {
		return Request{}, fmt.Errorf("%w: reason must be between %d and %d characters", ErrValidation, reasonMinLen, reasonMaxLen)
	}

	approved, err := s.Store.ApprovedOverlapping(ctx, employeeID, start, end)
	if err != nil {
		return Request{}, err
	}
	if conflicts := FindConflicts(start, end, approved); len(conflicts) > 0 {
		return Request{}, fmt.Errorf("%w: %d approved request(s) in range", ErrOverlap, len(conflicts))
	}

	return s.Store.Create(ctx, Request{
		EmployeeID: employeeID,
		StartDate:  start,
		EndDate:    end,
		Type:       leaveType,
		Reason:     reason,
		Status:     StatusPending,
	})
}

// Approve transitions Pending -> Approved. Notes are optional. The store
// re-runs the conflict check under its serialization point, so of two
// overlapping Pending requests only the first approval succeeds.
func (s *Service) Approve(ctx context.Context, requestID, reviewer, notes string) (Request, error) {
	notes = strings.TrimSpace(notes)
	if utf8.RuneCountInString(notes) > notesMaxLen {
		return Request{}, fmt.Errorf("%w: notes must be at most %d characters", ErrValidation, notesMaxLen)
	}
	return s.Store.Decide(ctx, requestID, StatusApproved, notes, reviewer)
}

// Reject transitions Pending -> Rejected and requires a rejection reason.
func (s *Service) Reject(ctx context.Context, requestID, reviewer, notes string) (Request, error) {
	notes = strings.TrimSpace(notes)
	if n := utf8.RuneCountInString(notes); n < notesMinLen || n > notesMaxLen {
		return Request{}, fmt.Errorf("%w: rejection notes must be between %d and %d characters", ErrValidation, notesMinLen, notesMaxLen)
	}
	return s.Store.Decide(ctx, requestID, StatusRejected, notes, reviewer)
}

// CheckConflict reports whether the proposed range overlaps any Approved
// request for the employee, along with the conflicting requests.
func (s *Service) CheckConflict(ctx context.Context, employeeID string, start, end time.Time) (bool, []Request, error) {
	start = atMidnightUTC(start)
	end = atMidnightUTC(end)
	if end.Before(start) {
		return false, nil, fmt.Errorf("%w: end date must be on or after start date", ErrValidation)
	}
	approved, err := s.Store.ApprovedOverlapping(ctx, employeeID, start, end)
	if err != nil {
		return false, nil, err
	}
	conflicts := FindConflicts(start, end, approved)
	return len(conflicts) > 0, conflicts, nil
}

func (s *Service) Get(ctx context.Context, requestID string) (Request, error) {
	return s.Store.Get(ctx, requestID)
}

func (s *Service) List(ctx context.Context, filter ListFilter) (ListResult, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return s.Store.List(ctx, filter)
}

// Delete removes a request outside the workflow. Callers gate this behind
// the admin capability.
func (s *Service) Delete(ctx context.Context, requestID string) error {
	return s.Store.Delete(ctx, requestID)
}

func (s *Service) Summary(ctx context.Context) (SummaryStats, error) {
	return s.Store.SummaryStats(ctx)
}

func atMidnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
