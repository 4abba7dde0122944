package shared

import "time"

// ParseDate accepts the two wire formats clients send for attendance and
// leave dates: a full RFC3339 timestamp or a bare YYYY-MM-DD day. Either
// way the result is normalized before it reaches a store.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}
