package response

import (
	"errors"
	"net/http"

	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/authorization"
	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/movement"
	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/personnel"
	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/user"
	"github.com/utp-asistencia/asistencia-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Personnel domain errors
	case errors.Is(err, personnel.ErrPersonnelNotFound):
		NotFound(w, "Personnel record not found")
	case errors.Is(err, personnel.ErrWorkerCodeExists):
		Conflict(w, "Worker code already exists")
	case errors.Is(err, personnel.ErrDocumentNumberExists):
		Conflict(w, "Document number already registered")
	case errors.Is(err, personnel.ErrPersonnelInUse):
		Conflict(w, "Personnel record has attendance activity and cannot be deleted")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already exists")
	case errors.Is(err, user.ErrUserInactive):
		Conflict(w, "User account is inactive")

	// Movement domain errors
	case errors.Is(err, movement.ErrMovementNotFound):
		NotFound(w, "Movement not found")
	case errors.Is(err, movement.ErrMovementInactive):
		Conflict(w, "Movement is inactive")
	case errors.Is(err, movement.ErrCodeExists):
		Conflict(w, "Movement code already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrEntryAlreadyOpen):
		Conflict(w, "An exit must be marked before a new entry")
	case errors.Is(err, attendance.ErrNoOpenEntry):
		Conflict(w, "An entry must be marked first")
	case errors.Is(err, attendance.ErrBreakAlreadyOpen):
		Conflict(w, "The current break must be ended first")
	case errors.Is(err, attendance.ErrNoOpenBreak):
		Conflict(w, "A break must be started before ending one")
	case errors.Is(err, attendance.ErrOutsideAllowedRadius):
		BadRequest(w, "Marking location is outside the allowed radius", nil)

	// Authorization domain errors
	case errors.Is(err, authorization.ErrAuthorizationNotFound):
		NotFound(w, "Authorization not found")
	case errors.Is(err, authorization.ErrAlreadyProcessed):
		Conflict(w, "Authorization has already been approved or rejected")
	case errors.Is(err, authorization.ErrNotApproved):
		Conflict(w, "Authorization has not been approved")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
