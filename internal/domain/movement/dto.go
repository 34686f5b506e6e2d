package movement

import (
	"github.com/utp-asistencia/asistencia-backend-go/internal/pkg/validator"
)

type CreateMovementRequest struct {
	Description string `json:"description"`
	Code        string `json:"code"`
}

func (r *CreateMovementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if validator.IsEmpty(r.Code) || len(r.Code) > 5 {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required and must be at most 5 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MovementResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Code        string `json:"code"`
	State       string `json:"state"`
}

func ToResponse(m Movement) MovementResponse {
	return MovementResponse{
		ID:          m.ID,
		Description: m.Description,
		Code:        m.Code,
		State:       m.State,
	}
}
