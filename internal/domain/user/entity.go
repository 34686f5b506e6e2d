package user

import "time"

// States a user account can be in.
const (
	StateActive   = "ACTIVO"
	StateInactive = "INACTIVO"
)

type User struct {
	ID           int64
	PersonnelID  int64
	Username     string
	PasswordHash string
	State        string
	// CreatedAt doubles as the account-creation date that bounds the
	// attendance report: an employee is only expected to mark attendance
	// from the day after the account was created.
	CreatedAt time.Time
	UpdatedAt time.Time
}
