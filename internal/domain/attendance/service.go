package attendance

import "context"

// AttendanceService defines business logic for attendance marking
type AttendanceService interface {
	// Mark records an attendance event after validating the movement, the
	// entry/exit/break sequence and, when coordinates are sent, the
	// marking location.
	Mark(ctx context.Context, req MarkRequest) (EventResponse, error)

	// GetEvent retrieves a single event by ID
	GetEvent(ctx context.Context, id int64) (EventResponse, error)

	// ListEvents retrieves events with optional personnel and date filters
	ListEvents(ctx context.Context, filter EventFilter) ([]EventResponse, error)

	// DeleteEvent removes a mistaken mark
	DeleteEvent(ctx context.Context, id int64) error
}
