package user

import (
	"github.com/utp-asistencia/asistencia-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	PersonnelID int64  `json:"personnel_id"`
	Username    string `json:"username"`
	Password    string `json:"password"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PersonnelID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "personnel_id",
			Message: "personnel_id is required",
		})
	}

	if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 letters, digits, dots, underscores or dashes",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	State    *string `json:"state"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Username != nil && !validator.IsValidUsername(*r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 letters, digits, dots, underscores or dashes",
		})
	}

	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if r.State != nil && !validator.IsInSlice(*r.State, []string{StateActive, StateInactive}) {
		errs = append(errs, validator.ValidationError{
			Field:   "state",
			Message: "state must be ACTIVO or INACTIVO",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID          int64  `json:"id"`
	PersonnelID int64  `json:"personnel_id"`
	Username    string `json:"username"`
	State       string `json:"state"`
	CreatedAt   string `json:"created_at"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		PersonnelID: u.PersonnelID,
		Username:    u.Username,
		State:       u.State,
		CreatedAt:   u.CreatedAt.Format("2006-01-02"),
	}
}
