package report

import (
	"github.com/utp-asistencia/asistencia-backend-go/internal/pkg/validator"
)

type AttendanceReportRequest struct {
	// Name narrows the report to employees whose full name contains the
	// value, case-insensitively. Blank matches everyone.
	Name string `json:"name"`
	// From and To are inclusive yyyy-MM-dd period bounds. Blank From means
	// "from each employee's account creation"; blank To means "up to today".
	From string `json:"from"`
	To   string `json:"to"`
}

func (r *AttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.From != "" {
		if _, ok := validator.IsValidDate(r.From); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must use yyyy-MM-dd format",
			})
		}
	}

	if r.To != "" {
		if _, ok := validator.IsValidDate(r.To); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must use yyyy-MM-dd format",
			})
		}
	}

	if r.From != "" && r.To != "" && r.From > r.To {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be earlier than or equal to to",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Row is one employee's aggregated attendance over the effective period.
type Row struct {
	Name               string   `json:"name"`
	DocumentNumber     string   `json:"document_number"`
	TotalEntries       int      `json:"total_entries"`
	TotalExits         int      `json:"total_exits"`
	WorkingDaysInRange int      `json:"working_days_in_range"`
	DaysPresent        int      `json:"days_present"`
	MissingEntries     int      `json:"missing_entries"`
	MissingExits       int      `json:"missing_exits"`
	LateDays           int      `json:"late_days"`
	Absences           int      `json:"absences"`
	PenaltyScore       float64  `json:"penalty_score"`
	MissingDays        []string `json:"missing_days"`
	LastEventDate      string   `json:"last_event_date"`
}

type AttendanceReport struct {
	GeneratedAt string `json:"generated_at"`
	From        string `json:"from,omitempty"`
	To          string `json:"to,omitempty"`
	Rows        []Row  `json:"rows"`
}
