package attendance

import "context"

type EventRepository interface {
	// Create inserts a new attendance event
	Create(ctx context.Context, e Event) (Event, error)

	// GetByID retrieves an event with its personnel and movement joined
	GetByID(ctx context.Context, id int64) (Event, error)

	// List retrieves events with personnel and movement joined, newest first
	List(ctx context.Context, filter EventFilter) ([]Event, error)

	// GetLastOnDay returns the personnel's most recent event whose raw
	// timestamp starts with dayPrefix (yyyy-MM-dd), or nil when the day has
	// no marks yet. Used to enforce the entry/exit/break sequence.
	GetLastOnDay(ctx context.Context, personnelID int64, dayPrefix string) (*Event, error)

	// Delete removes an event
	Delete(ctx context.Context, id int64) error
}
