package attendance

import (
	"github.com/utp-asistencia/asistencia-backend-go/internal/pkg/dateutil"
	"github.com/utp-asistencia/asistencia-backend-go/internal/pkg/validator"
)

type MarkRequest struct {
	PersonnelID     int64    `json:"personnel_id"`
	MovementID      int64    `json:"movement_id"`
	Timestamp       *string  `json:"timestamp"`
	MarkerIP        *string  `json:"marker_ip"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	AuthorizationID *int64   `json:"authorization_id"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PersonnelID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "personnel_id",
			Message: "personnel_id is required",
		})
	}

	if r.MovementID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "movement_id",
			Message: "movement_id is required",
		})
	}

	if r.Timestamp != nil {
		if _, ok := dateutil.ParseFlexible(*r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must use yyyy-MM-dd[ HH:mm:ss] format",
			})
		}
	}

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude must be provided together",
		})
	}

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EventFilter struct {
	PersonnelID *int64
	// From and To are inclusive yyyy-MM-dd bounds compared against the ISO
	// prefix of the raw timestamp. Blank means unbounded.
	From string
	To   string
}

func (f *EventFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.From != "" {
		if _, ok := validator.IsValidDate(f.From); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must use yyyy-MM-dd format",
			})
		}
	}

	if f.To != "" {
		if _, ok := validator.IsValidDate(f.To); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must use yyyy-MM-dd format",
			})
		}
	}

	if f.From != "" && f.To != "" && f.From > f.To {
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

type EventResponse struct {
	ID                  int64   `json:"id"`
	PersonnelID         int64   `json:"personnel_id"`
	PersonnelName       string  `json:"personnel_name"`
	DocumentNumber      *string `json:"document_number"`
	MovementID          int64   `json:"movement_id"`
	MovementDescription string  `json:"movement_description"`
	MovementCode        string  `json:"movement_code"`
	Timestamp           string  `json:"timestamp"`
	MarkerIP            *string `json:"marker_ip"`
	AuthorizationID     *int64  `json:"authorization_id"`
}

func ToResponse(e Event) EventResponse {
	return EventResponse{
		ID:                  e.ID,
		PersonnelID:         e.PersonnelID,
		PersonnelName:       FullName(e),
		DocumentNumber:      e.DocumentNumber,
		MovementID:          e.MovementID,
		MovementDescription: e.MovementDescription,
		MovementCode:        e.MovementCode,
		Timestamp:           e.Timestamp,
		MarkerIP:            e.MarkerIP,
		AuthorizationID:     e.AuthorizationID,
	}
}
