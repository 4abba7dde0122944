package leave

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeStore mirrors the store contract in memory, including the atomic
// re-check Decide performs.
type fakeStore struct {
	mu       sync.Mutex
	nextID   int
	requests map[string]Request
}

func newFakeStore() *fakeStore {
	return &fakeStore{requests: make(map[string]Request)}
}

func (f *fakeStore) Get(_ context.Context, requestID string) (Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requests[requestID]
	if !ok {
		return Request{}, ErrNotFound
	}
	return req, nil
}

func (f *fakeStore) List(_ context.Context, filter ListFilter) (ListResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Request
	for _, req := range f.requests {
		if filter.EmployeeID != "" && req.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && req.Status != filter.Status {
			continue
		}
		out = append(out, req)
	}
	return ListResult{Requests: out, Total: len(out)}, nil
}

func (f *fakeStore) ApprovedForEmployee(_ context.Context, employeeID string) ([]Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.approvedLocked(employeeID), nil
}

func (f *fakeStore) ApprovedOverlapping(_ context.Context, employeeID string, start, end time.Time) ([]Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FindConflicts(start, end, f.approvedLocked(employeeID)), nil
}

func (f *fakeStore) Create(_ context.Context, req Request) (Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	req.ID = fmt.Sprintf("req-%d", f.nextID)
	req.SubmittedAt = time.Now()
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeStore) Decide(_ context.Context, requestID, status, notes, reviewer string) (Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requests[requestID]
	if !ok {
		return Request{}, ErrNotFound
	}
	if req.Status != StatusPending {
		return Request{}, ErrInvalidTransition
	}
	if status == StatusApproved {
		for _, other := range f.approvedLocked(req.EmployeeID) {
			if other.ID != req.ID && Overlaps(req.StartDate, req.EndDate, other.StartDate, other.EndDate) {
				return Request{}, ErrOverlap
			}
		}
	}
	now := time.Now()
	req.Status = status
	req.AdminNotes = notes
	req.ReviewedAt = &now
	req.ReviewedBy = reviewer
	f.requests[requestID] = req
	return req, nil
}

func (f *fakeStore) Delete(_ context.Context, requestID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.requests[requestID]; !ok {
		return ErrNotFound
	}
	delete(f.requests, requestID)
	return nil
}

func (f *fakeStore) SummaryStats(_ context.Context) (SummaryStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var stats SummaryStats
	for _, req := range f.requests {
		stats.Total++
		switch req.Status {
		case StatusPending:
			stats.Pending++
		case StatusApproved:
			stats.Approved++
		case StatusRejected:
			stats.Rejected++
		}
	}
	return stats, nil
}

func (f *fakeStore) approvedLocked(employeeID string) []Request {
	var out []Request
	for _, req := range f.requests {
		if req.EmployeeID == employeeID && req.Status == StatusApproved {
			out = append(out, req)
		}
	}
	return out
}

func TestSubmitValidation(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()

	_, err := svc.Submit(ctx, "emp-1", day(2025, 1, 10), day(2025, 1, 12), TypeAnnual, "short")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for a 5-character reason, got %v", err)
	}

	_, err = svc.Submit(ctx, "emp-1", day(2025, 1, 10), day(2025, 1, 12), TypeAnnual, strings.Repeat("x", 1001))
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for an oversized reason, got %v", err)
	}

	_, err = svc.Submit(ctx, "emp-1", day(2025, 1, 12), day(2025, 1, 10), TypeAnnual, "family holiday trip")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for reversed dates, got %v", err)
	}

	_, err = svc.Submit(ctx, "emp-1", day(2025, 1, 10), day(2025, 1, 12), "Sabbatical", "family holiday trip")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown leave type, got %v", err)
	}
}

func TestSubmitRejectsOverlapWithApproved(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	first, err := svc.Submit(ctx, "emp-1", day(2025, 1, 10), day(2025, 1, 15), TypeAnnual, "family holiday trip")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if first.Status != StatusPending {
		t.Fatalf("expected Pending, got %s", first.Status)
	}
	if _, err := svc.Approve(ctx, first.ID, "hr-1", ""); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	// Shared boundary day conflicts.
	_, err = svc.Submit(ctx, "emp-1", day(2025, 1, 15), day(2025, 1, 20), TypeSick, "recovering from surgery")
	if !errors.Is(err, ErrOverlap) {
		t.Fatalf("expected ErrOverlap, got %v", err)
	}

	// A different employee is unaffected.
	if _, err := svc.Submit(ctx, "emp-2", day(2025, 1, 15), day(2025, 1, 20), TypeSick, "recovering from surgery"); err != nil {
		t.Fatalf("unrelated employee submit failed: %v", err)
	}

	// Pending requests do not block submission.
	if _, err := svc.Submit(ctx, "emp-1", day(2025, 2, 1), day(2025, 2, 3), TypeAnnual, "long weekend away"); err != nil {
		t.Fatalf("non-overlapping submit failed: %v", err)
	}
}

func TestApproveIsSingleTransition(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()

	req, err := svc.Submit(ctx, "emp-1", day(2025, 3, 10), day(2025, 3, 12), TypePersonal, "attending a family event")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	approved, err := svc.Approve(ctx, req.ID, "hr-1", "enjoy")
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if approved.Status != StatusApproved {
		t.Fatalf("expected Approved, got %s", approved.Status)
	}
	if approved.ReviewedAt == nil || approved.ReviewedBy != "hr-1" {
		t.Fatal("expected reviewer and review timestamp to be recorded")
	}

	if _, err := svc.Approve(ctx, req.ID, "hr-2", ""); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on second approve, got %v", err)
	}
	if _, err := svc.Reject(ctx, req.ID, "hr-2", "changed our minds here"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on reject after approve, got %v", err)
	}
}

func TestApproveUnknownRequest(t *testing.T) {
	svc := NewService(newFakeStore())
	if _, err := svc.Approve(context.Background(), "missing", "hr-1", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRejectRequiresNotes(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()

	req, err := svc.Submit(ctx, "emp-1", day(2025, 3, 10), day(2025, 3, 12), TypeSick, "recovering from surgery")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if _, err := svc.Reject(ctx, req.ID, "hr-1", "no"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for short notes, got %v", err)
	}

	rejected, err := svc.Reject(ctx, req.ID, "hr-1", "insufficient team coverage that week")
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if rejected.Status != StatusRejected {
		t.Fatalf("expected Rejected, got %s", rejected.Status)
	}
}

// Two individually valid submissions that overlap each other: whichever is
// approved first wins, the other approval must fail the re-check.
func TestOverlappingApprovalsOnlyOneSucceeds(t *testing.T) {
	for _, order := range [][2]int{{0, 1}, {1, 0}} {
		svc := NewService(newFakeStore())
		ctx := context.Background()

		a, err := svc.Submit(ctx, "emp-1", day(2025, 4, 7), day(2025, 4, 11), TypeAnnual, "spring break with family")
		if err != nil {
			t.Fatalf("submit a failed: %v", err)
		}
		b, err := svc.Submit(ctx, "emp-1", day(2025, 4, 10), day(2025, 4, 14), TypePersonal, "house move preparations")
		if err != nil {
			t.Fatalf("submit b failed: %v", err)
		}

		ids := [2]string{a.ID, b.ID}
		first, second := ids[order[0]], ids[order[1]]

		if _, err := svc.Approve(ctx, first, "hr-1", ""); err != nil {
			t.Fatalf("first approve failed: %v", err)
		}
		if _, err := svc.Approve(ctx, second, "hr-1", ""); !errors.Is(err, ErrOverlap) {
			t.Fatalf("expected ErrOverlap on second approve, got %v", err)
		}
	}
}

func TestCheckConflict(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()

	req, err := svc.Submit(ctx, "emp-1", day(2025, 5, 5), day(2025, 5, 9), TypeAnnual, "visiting relatives abroad")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := svc.Approve(ctx, req.ID, "hr-1", ""); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	conflict, conflicts, err := svc.CheckConflict(ctx, "emp-1", day(2025, 5, 9), day(2025, 5, 12))
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !conflict || len(conflicts) != 1 {
		t.Fatalf("expected one conflict, got %v %v", conflict, conflicts)
	}

	conflict, _, err = svc.CheckConflict(ctx, "emp-1", day(2025, 5, 12), day(2025, 5, 14))
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if conflict {
		t.Fatal("expected no conflict outside the approved range")
	}
}
