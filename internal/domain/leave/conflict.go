package leave

import (
	"time"

	"github.com/KevinGeorge100/koco-payroll/internal/domain/calendar"
)

// Overlaps reports whether two inclusive date ranges share at least one
// calendar day: s1 <= e2 && s2 <= e1.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !s2.After(e1)
}

// FindConflicts returns the Approved requests whose date range overlaps
// [start, end]. Pending and Rejected requests never conflict.
func FindConflicts(start, end time.Time, approved []Request) []Request {
	var conflicts []Request
	for _, req := range approved {
		if req.Status != StatusApproved {
			continue
		}
		if Overlaps(start, end, req.StartDate, req.EndDate) {
			conflicts = append(conflicts, req)
		}
	}
	return conflicts
}

// DaysWithin counts the request's days that fall inside [periodStart,
// periodEnd], clamping the request range to the period.
func DaysWithin(req Request, periodStart, periodEnd time.Time) int {
	start := req.StartDate
	if start.Before(periodStart) {
		start = periodStart
	}
	end := req.EndDate
	if end.After(periodEnd) {
		end = periodEnd
	}
	days, err := calendar.InclusiveDayCount(start, end)
	if err != nil {
		return 0
	}
	return days
}
