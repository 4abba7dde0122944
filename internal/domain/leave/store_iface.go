package leave

import (
	"context"
	"time"
)

// StoreAPI is the persistence contract the workflow runs against. Decide
// must be atomic: the status flip and the overlap re-check happen under a
// single serialization point so no two overlapping requests can both end
// up Approved.
type StoreAPI interface {
	Get(ctx context.Context, requestID string) (Request, error)
	List(ctx context.Context, filter ListFilter) (ListResult, error)
	ApprovedForEmployee(ctx context.Context, employeeID string) ([]Request, error)
	ApprovedOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]Request, error)
	Create(ctx context.Context, req Request) (Request, error)
	Decide(ctx context.Context, requestID, status, notes, reviewer string) (Request, error)
	Delete(ctx context.Context, requestID string) error
	SummaryStats(ctx context.Context) (SummaryStats, error)
}
