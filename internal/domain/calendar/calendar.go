package calendar

import (
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("end date before start date")

// DaysInMonth returns the day count of a calendar month, honoring leap
// years. Month is 1-based.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func IsWeekend(date time.Time) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	return false
}

// InclusiveDayCount counts the days from start to end with both endpoints
// included, so InclusiveDayCount(d, d) is 1. Times of day are ignored.
func InclusiveDayCount(start, end time.Time) (int, error) {
	start = truncate(start)
	end = truncate(end)
	if end.Before(start) {
		return 0, ErrInvalidRange
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

// MonthBounds returns the first and last day of the month at midnight UTC.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, month, DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)
	return start, end
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
