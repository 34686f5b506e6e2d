package authorization

import (
	"github.com/utp-asistencia/asistencia-backend-go/internal/pkg/validator"
)

type CreateAuthorizationRequest struct {
	MovementID    int64  `json:"movement_id"`
	RequestedByID int64  `json:"requested_by_id"`
	Description   string `json:"description"`
}

func (r *CreateAuthorizationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.MovementID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "movement_id",
			Message: "movement_id is required",
		})
	}

	if r.RequestedByID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_by_id",
			Message: "requested_by_id is required",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ResolveAuthorizationRequest struct {
	ApprovedByID int64 `json:"approved_by_id"`
}

func (r *ResolveAuthorizationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ApprovedByID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "approved_by_id",
			Message: "approved_by_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AuthorizationResponse struct {
	ID                  int64   `json:"id"`
	MovementID          int64   `json:"movement_id"`
	MovementDescription string  `json:"movement_description"`
	RequestedByID       int64   `json:"requested_by_id"`
	RequestedByUsername string  `json:"requested_by_username"`
	ApprovedByID        *int64  `json:"approved_by_id"`
	ApprovedByUsername  *string `json:"approved_by_username"`
	Description         string  `json:"description"`
	RequestDate         string  `json:"request_date"`
	ApprovalDate        *string `json:"approval_date"`
	State               string  `json:"state"`
}

func ToResponse(a Authorization) AuthorizationResponse {
	return AuthorizationResponse{
		ID:                  a.ID,
		MovementID:          a.MovementID,
		MovementDescription: a.MovementDescription,
		RequestedByID:       a.RequestedByID,
		RequestedByUsername: a.RequestedByUsername,
		ApprovedByID:        a.ApprovedByID,
		ApprovedByUsername:  a.ApprovedByUsername,
		Description:         a.Description,
		RequestDate:         a.RequestDate,
		ApprovalDate:        a.ApprovalDate,
		State:               a.State,
	}
}
