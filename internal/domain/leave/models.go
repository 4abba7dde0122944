package leave

import "time"

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

const (
	TypeAnnual    = "Annual"
	TypeSick      = "Sick"
	TypePersonal  = "Personal"
	TypeEmergency = "Emergency"
	TypeMaternity = "Maternity"
	TypePaternity = "Paternity"
	TypeOther     = "Other"
)

var types = []string{TypeAnnual, TypeSick, TypePersonal, TypeEmergency, TypeMaternity, TypePaternity, TypeOther}

func ValidType(leaveType string) bool {
	for _, t := range types {
		if t == leaveType {
			return true
		}
	}
	return false
}

func Types() []string {
	out := make([]string, len(types))
	copy(out, types)
	return out
}

// Request dates are inclusive calendar days; EndDate >= StartDate always
// holds for a stored request.
type Request struct {
	ID          string     `json:"id"`
	EmployeeID  string     `json:"employeeId"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     time.Time  `json:"endDate"`
	Type        string     `json:"leaveType"`
	Reason      string     `json:"reason"`
	Status      string     `json:"status"`
	AdminNotes  string     `json:"adminNotes,omitempty"`
	SubmittedAt time.Time  `json:"submittedAt"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty"`
	ReviewedBy  string     `json:"reviewedBy,omitempty"`
}

type SummaryStats struct {
	Total    int `json:"totalRequests"`
	Pending  int `json:"pendingRequests"`
	Approved int `json:"approvedRequests"`
	Rejected int `json:"rejectedRequests"`
}

type ListFilter struct {
	EmployeeID string
	Status     string
	Type       string
	Limit      int
	Offset     int
}

type ListResult struct {
	Requests []Request
	Total    int
}
