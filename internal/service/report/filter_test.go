package report

import (
	"testing"

	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/attendance"
)

func strPtr(s string) *string { return &s }

func testEvent(pid int64, first string, paternal string, timestamp string) attendance.Event {
	return attendance.Event{
		PersonnelID:     pid,
		FirstName:       first,
		PaternalSurname: strPtr(paternal),
		Timestamp:       timestamp,
	}
}

func TestFilterByName(t *testing.T) {
	events := []attendance.Event{
		testEvent(1, "María", "Quispe", "2025-11-03 08:00:00"),
		testEvent(2, "Jorge", "Flores", "2025-11-03 08:05:00"),
		testEvent(1, "María", "Quispe", "2025-11-03 17:00:00"),
	}

	got := Filter(events, "quispe", "", "")
	if len(got) != 2 {
		t.Fatalf("Filter by name: got %d events, want 2", len(got))
	}
	for _, e := range got {
		if e.PersonnelID != 1 {
			t.Errorf("Filter by name kept personnel %d", e.PersonnelID)
		}
	}

	if got := Filter(events, "", "", ""); len(got) != 3 {
		t.Errorf("blank query: got %d events, want all 3", len(got))
	}
	if got := Filter(events, "nadie", "", ""); len(got) != 0 {
		t.Errorf("unmatched query: got %d events, want 0", len(got))
	}
}

func TestFilterByDateRange(t *testing.T) {
	events := []attendance.Event{
		testEvent(1, "Ana", "Soto", "2025-11-03 08:00:00"),
		testEvent(1, "Ana", "Soto", "2025-11-05 08:00:00"),
		testEvent(1, "Ana", "Soto", "2025-11-10 08:00:00"),
		testEvent(1, "Ana", "Soto", "corto"),
	}

	cases := []struct {
		name string
		from string
		to   string
		want int
	}{
		{"both bounds", "2025-11-04", "2025-11-10", 2},
		{"from only", "2025-11-05", "", 2},
		{"to only", "", "2025-11-03", 1},
		{"unbounded", "", "", 4},
		{"empty window", "2025-11-06", "2025-11-07", 0},
	}
	for _, c := range cases {
		if got := Filter(events, "", c.from, c.to); len(got) != c.want {
			t.Errorf("%s: got %d events, want %d", c.name, len(got), c.want)
		}
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	events := []attendance.Event{
		testEvent(1, "Ana", "Soto", "2025-11-05 08:00:00"),
		testEvent(1, "Ana", "Soto", "2025-11-03 08:00:00"),
		testEvent(1, "Ana", "Soto", "2025-11-04 08:00:00"),
	}
	got := Filter(events, "", "2025-11-03", "2025-11-05")
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	wantOrder := []string{"2025-11-05 08:00:00", "2025-11-03 08:00:00", "2025-11-04 08:00:00"}
	for i, e := range got {
		if e.Timestamp != wantOrder[i] {
			t.Errorf("event[%d] = %s, want %s", i, e.Timestamp, wantOrder[i])
		}
	}
}
