package attendance

import "time"

// Status values are exact strings; "Half Day" carries the space.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLeave   = "Leave"
	StatusHalfDay = "Half Day"
	StatusLate    = "Late"
)

var statuses = []string{StatusPresent, StatusAbsent, StatusLeave, StatusHalfDay, StatusLate}

func ValidStatus(status string) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

func Statuses() []string {
	out := make([]string, len(statuses))
	copy(out, statuses)
	return out
}

type Record struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employeeId"`
	Date       time.Time  `json:"date"`
	Status     string     `json:"status"`
	CheckIn    *time.Time `json:"checkIn,omitempty"`
	CheckOut   *time.Time `json:"checkOut,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}
