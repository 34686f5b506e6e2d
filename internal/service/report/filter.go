package report

import (
	"strings"

	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/attendance"
)

// isoPrefix returns the leading yyyy-MM-dd portion of a raw timestamp, or
// "" when the value is too short to carry one.
func isoPrefix(timestamp string) string {
	if len(timestamp) < 10 {
		return ""
	}
	return timestamp[:10]
}

func matchName(e attendance.Event, query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	full := strings.ToLower(attendance.FullName(e))
	return strings.Contains(full, strings.ToLower(query))
}

func matchDateRange(e attendance.Event, from, to string) bool {
	prefix := isoPrefix(e.Timestamp)
	if from != "" && (prefix == "" || prefix < from) {
		return false
	}
	if to != "" && (prefix == "" || prefix > to) {
		return false
	}
	return true
}

// Filter narrows events by employee-name substring and an inclusive ISO
// date range before aggregation. Blank bounds are unbounded; input order
// is preserved.
func Filter(events []attendance.Event, name, from, to string) []attendance.Event {
	filtered := make([]attendance.Event, 0, len(events))
	for _, e := range events {
		if matchName(e, name) && matchDateRange(e, from, to) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
