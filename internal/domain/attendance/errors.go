package attendance

import "errors"

// Attendance domain errors
var (
	// Marking errors
	ErrEntryAlreadyOpen     = errors.New("you must mark an exit before a new entry")
	ErrNoOpenEntry          = errors.New("you must mark an entry first")
	ErrBreakAlreadyOpen     = errors.New("you must end the current break first")
	ErrNoOpenBreak          = errors.New("you must start a break before ending one")
	ErrOutsideAllowedRadius = errors.New("you are outside the allowed marking radius")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
