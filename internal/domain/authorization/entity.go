package authorization

import "time"

// Authorization states
const (
	StatePending  = "PENDIENTE"
	StateApproved = "APROBADO"
	StateRejected = "RECHAZADO"
)

// Authorization is a permission request: an employee asks for a movement
// (late entry, early exit, leave) to be allowed outside the normal rules.
type Authorization struct {
	ID              int64
	MovementID      int64
	RequestedByID   int64
	ApprovedByID    *int64
	Description     string
	RequestDate     string
	ApprovalDate    *string
	State           string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Denormalized for listings
	MovementDescription string
	RequestedByUsername string
	ApprovedByUsername  *string
}
