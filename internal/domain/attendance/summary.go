package attendance

import (
	"time"

	"github.com/KevinGeorge100/koco-payroll/internal/domain/calendar"
)

// Summary holds per-status counts for one employee-month. Absent is the
// count of records explicitly marked Absent; working days with no record
// at all are not inferred as absences here, the caller decides how to
// treat them.
type Summary struct {
	Year        int `json:"year"`
	Month       int `json:"month"`
	TotalDays   int `json:"totalDays"`
	WeekendDays int `json:"weekendDays"`
	WorkingDays int `json:"workingDays"`
	Present     int `json:"present"`
	Absent      int `json:"absent"`
	HalfDay     int `json:"halfDay"`
	Late        int `json:"late"`
	Leave       int `json:"leave"`
}

// Summarize reduces one month of records into per-status counts. Records
// must already be restricted to the employee and month; the caller filters,
// not this function.
func Summarize(year int, month time.Month, records []Record) Summary {
	summary := Summary{
		Year:      year,
		Month:     int(month),
		TotalDays: calendar.DaysInMonth(year, month),
	}
	start, _ := calendar.MonthBounds(year, month)
	for day := 0; day < summary.TotalDays; day++ {
		if calendar.IsWeekend(start.AddDate(0, 0, day)) {
			summary.WeekendDays++
		}
	}
	summary.WorkingDays = summary.TotalDays - summary.WeekendDays

	for _, record := range records {
		switch record.Status {
		case StatusPresent:
			summary.Present++
		case StatusAbsent:
			summary.Absent++
		case StatusHalfDay:
			summary.HalfDay++
		case StatusLate:
			summary.Late++
		case StatusLeave:
			summary.Leave++
		}
	}
	return summary
}
