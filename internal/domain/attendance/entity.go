package attendance

import (
	"strings"
	"time"
)

// Event is a single attendance mark. Timestamp is kept as the raw string
// the marker sent; historical rows mix "yyyy-MM-dd HH:mm:ss",
// "yyyy-MM-dd'T'HH:mm:ss" and bare "yyyy-MM-dd" values, so parsing is
// deferred to the consumers that need it.
type Event struct {
	ID              int64
	PersonnelID     int64
	MovementID      int64
	Timestamp       string
	MarkerIP        *string
	AuthorizationID *int64
	CreatedAt       time.Time

	// Denormalized for listings and the report
	FirstName           string
	PaternalSurname     *string
	MaternalSurname     *string
	DocumentNumber      *string
	MovementDescription string
	MovementCode        string
}

// FullName joins the event's denormalized name parts, dropping absent ones.
func FullName(e Event) string {
	parts := []string{e.FirstName}
	if e.PaternalSurname != nil {
		parts = append(parts, *e.PaternalSurname)
	}
	if e.MaternalSurname != nil {
		parts = append(parts, *e.MaternalSurname)
	}
	var nonEmpty []string
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, " ")
}
