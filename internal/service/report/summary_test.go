package report

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/report"
)

// 2025-11-03 is a Monday; fixing "today" well past the test ranges keeps
// the today-clamp out of the way unless a test wants it.
var testNow = time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func mark(pid int64, name, document, description, code, timestamp string) attendance.Event {
	return attendance.Event{
		PersonnelID:         pid,
		FirstName:           name,
		DocumentNumber:      strPtr(document),
		MovementDescription: description,
		MovementCode:        code,
		Timestamp:           timestamp,
	}
}

func optsFor(from, to string) SummaryOptions {
	opts := SummaryOptions{
		Now:               testNow,
		LateCutoffMinutes: DefaultLateCutoffMinutes,
		AbsenceWeight:     DefaultAbsenceWeight,
		LateWeight:        DefaultLateWeight,
	}
	if from != "" {
		opts.PeriodStart = day(from)
	}
	if to != "" {
		opts.PeriodEnd = day(to)
	}
	return opts
}

func TestSummarizeSingleWorkingDayOnTime(t *testing.T) {
	// Scenario: one on-time entry on a Monday, no exit.
	events := []attendance.Event{
		mark(1, "Ana", "11112222", "Entrada", "ENT", "2025-11-03 08:00:00"),
	}
	rows := Summarize(events, optsFor("2025-11-03", "2025-11-03"))
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 1, row.WorkingDaysInRange)
	assert.Equal(t, 1, row.DaysPresent)
	assert.Equal(t, 0, row.MissingEntries)
	assert.Equal(t, 1, row.MissingExits)
	assert.Equal(t, 0, row.LateDays)
	assert.Equal(t, 0, row.Absences)
	assert.Equal(t, 1, row.TotalEntries)
	assert.Equal(t, 0, row.TotalExits)
	assert.Equal(t, []string{"2025-11-03"}, row.MissingDays)
	assert.Equal(t, "2025-11-03 08:00:00", row.LastEventDate)
	assert.Equal(t, "11112222", row.DocumentNumber)
}

func TestSummarizeLateEntry(t *testing.T) {
	// 08:30 is past the 08:15 cutoff.
	events := []attendance.Event{
		mark(1, "Ana", "11112222", "Entrada", "ENT", "2025-11-03 08:30:00"),
	}
	rows := Summarize(events, optsFor("2025-11-03", "2025-11-03"))
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].LateDays)
	assert.Equal(t, DefaultLateWeight, rows[0].PenaltyScore)
}

func TestSummarizeEarliestEntryDecidesLateness(t *testing.T) {
	events := []attendance.Event{
		mark(1, "Ana", "11112222", "Entrada", "ENT", "2025-11-03 09:30:00"),
		mark(1, "Ana", "11112222", "Entrada", "ENT", "2025-11-03 08:05:00"),
	}
	rows := Summarize(events, optsFor("2025-11-03", "2025-11-03"))
	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].LateDays, "earliest entry at 08:05 is on time")
	assert.Equal(t, 2, rows[0].TotalEntries)
}

func TestSummarizeWeekendExcluded(t *testing.T) {
	// 2025-11-07 Friday through 2025-11-10 Monday: Saturday and Sunday
	// must not appear as working days nor contribute absences.
	events := []attendance.Event{
		mark(1, "Ana", "11112222", "Entrada", "ENT", "2025-11-07 08:00:00"),
		mark(1, "Ana", "11112222", "Salida", "SAL", "2025-11-07 17:00:00"),
		mark(1, "Ana", "11112222", "Entrada", "ENT", "2025-11-10 08:00:00"),
		mark(1, "Ana", "11112222", "Salida", "SAL", "2025-11-10 17:00:00"),
	}
	rows := Summarize(events, optsFor("2025-11-07", "2025-11-10"))
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 2, row.WorkingDaysInRange)
	assert.Equal(t, 2, row.DaysPresent)
	assert.Equal(t, 0, row.Absences)
	assert.Empty(t, row.MissingDays)
}

func TestSummarizeAccountCreationBoundsStart(t *testing.T) {
	// Account created 2025-11-01: the range starts 2025-11-02 regardless
	// of the requested 2025-10-01. Working days 2025-11-03..07 = 5, one
	// present.
	events := []attendance.Event{
		mark(1, "Ana", "11112222", "Entrada", "ENT", "2025-11-03 08:00:00"),
	}
	opts := optsFor("2025-10-01", "2025-11-07")
	opts.AccountCreated = map[int64]time.Time{1: day("2025-11-01")}

	rows := Summarize(events, opts)
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].WorkingDaysInRange)
	assert.Equal(t, 1, rows[0].DaysPresent)
	assert.Equal(t, 4, rows[0].Absences)
}

func TestSummarizeNoRowWithoutEvents(t *testing.T) {
	// Employees appear only when they have at least one filtered event,
	// even if the account-creation map knows them.
	events := []attendance.Event{
		mark(1, "Ana", "11112222", "Entrada", "ENT", "2025-11-03 08:00:00"),
	}
	opts := optsFor("2025-11-03", "2025-11-03")
	opts.AccountCreated = map[int64]time.Time{
		1: day("2025-10-01"),
		2: day("2025-10-01"),
	}
	rows := Summarize(events, opts)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana", rows[0].Name)
}

func TestSummarizeEmptyRangeStillEmitsRow(t *testing.T) {
	// Effective start after effective end: zero working days, zero
	// derived counts, but the row is still emitted because the employee
	// had events in the filtered input.
	events := []attendance.Event{
		mark(1, "Ana", "11112222", "Entrada", "ENT", "2025-11-08 09:00:00"), // Saturday
	}
	opts := optsFor("2025-11-10", "2025-11-07")

	rows := Summarize(events, opts)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 0, row.WorkingDaysInRange)
	assert.Equal(t, 0, row.DaysPresent)
	assert.Equal(t, 0, row.Absences)
	assert.Equal(t, 0, row.MissingEntries)
	assert.Equal(t, 1, row.TotalEntries, "totals still cover the whole filtered set")
}

func TestSummarizeEndClampedToToday(t *testing.T) {
	// Requested end is past today: only working days up to today count.
	now := time.Date(2025, 11, 5, 12, 0, 0, 0, time.UTC) // Wednesday
	events := []attendance.Event{
		mark(1, "Ana", "11112222", "Entrada", "ENT", "2025-11-03 08:00:00"),
	}
	opts := optsFor("2025-11-03", "2025-11-28")
	opts.Now = now
	rows := Summarize(events, opts)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].WorkingDaysInRange, "Mon-Wed only")
}

func TestSummarizeEndClampedToLastEventWithoutExplicitEnd(t *testing.T) {
	// No explicit end: the employee's range stops at their last mark, so
	// days after it do not pile up as absences.
	events := []attendance.Event{
		mark(1, "Ana", "11112222", "Entrada", "ENT", "2025-11-03 08:00:00"),
		mark(1, "Ana", "11112222", "Entrada", "ENT", "2025-11-04 08:00:00"),
	}
	opts := optsFor("2025-11-03", "")

	rows := Summarize(events, opts)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].WorkingDaysInRange)
	assert.Equal(t, 0, rows[0].Absences)
}

func TestSummarizeUnparseableTimestampCountsPresenceOnly(t *testing.T) {
	// A malformed time with a valid ISO prefix still marks the day
	// present and satisfies the entry, but cannot produce a late day.
	events := []attendance.Event{
		mark(1, "Ana", "11112222", "Entrada", "ENT", "2025-11-03 junk"),
	}
	rows := Summarize(events, optsFor("2025-11-03", "2025-11-03"))
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 1, row.DaysPresent)
	assert.Equal(t, 0, row.MissingEntries)
	assert.Equal(t, 0, row.LateDays)
}

func TestSummarizeUnclassifiedCountsTowardPresence(t *testing.T) {
	events := []attendance.Event{
		mark(1, "Ana", "11112222", "Permiso médico", "PER", "2025-11-03 08:00:00"),
	}
	rows := Summarize(events, optsFor("2025-11-03", "2025-11-03"))
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 1, row.DaysPresent)
	assert.Equal(t, 0, row.TotalEntries)
	assert.Equal(t, 1, row.MissingEntries)
	assert.Equal(t, 1, row.MissingExits)
	assert.Equal(t, 0, row.Absences)
	assert.Equal(t, 0, row.LateDays, "no entry mark, no lateness signal")
}

func TestSummarizeBreakMarksAreNotEntries(t *testing.T) {
	// The same classifier feeds totals and the per-day logic: a break
	// start must not satisfy the day's entry on either path.
	events := []attendance.Event{
		mark(1, "Ana", "11112222", "Entrada Break", "EBR", "2025-11-03 11:00:00"),
		mark(1, "Ana", "11112222", "Fin Break", "FBR", "2025-11-03 11:30:00"),
	}
	rows := Summarize(events, optsFor("2025-11-03", "2025-11-03"))
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 0, row.TotalEntries)
	assert.Equal(t, 0, row.TotalExits)
	assert.Equal(t, 1, row.MissingEntries)
	assert.Equal(t, 1, row.MissingExits)
	assert.Equal(t, 1, row.DaysPresent)
	assert.Equal(t, 0, row.LateDays)
}

func TestSummarizeSortsByName(t *testing.T) {
	events := []attendance.Event{
		mark(2, "Carlos", "222", "Entrada", "ENT", "2025-11-03 08:00:00"),
		mark(1, "Ana", "111", "Entrada", "ENT", "2025-11-03 08:00:00"),
		mark(3, "Beatriz", "333", "Entrada", "ENT", "2025-11-03 08:00:00"),
	}
	rows := Summarize(events, optsFor("2025-11-03", "2025-11-03"))
	require.Len(t, rows, 3)
	assert.Equal(t, "Ana", rows[0].Name)
	assert.Equal(t, "Beatriz", rows[1].Name)
	assert.Equal(t, "Carlos", rows[2].Name)
}

func TestSummarizeBlankNameFallsBack(t *testing.T) {
	events := []attendance.Event{
		mark(1, "", "111", "Entrada", "ENT", "2025-11-03 08:00:00"),
	}
	rows := Summarize(events, optsFor("2025-11-03", "2025-11-03"))
	require.Len(t, rows, 1)
	assert.Equal(t, "Sin nombre", rows[0].Name)
}

func TestSummarizePenaltyWeights(t *testing.T) {
	// One absence (Tuesday) and one late day over Mon-Tue.
	events := []attendance.Event{
		mark(1, "Ana", "111", "Entrada", "ENT", "2025-11-03 09:00:00"),
	}
	rows := Summarize(events, optsFor("2025-11-03", "2025-11-04"))
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 1, row.Absences)
	assert.Equal(t, 1, row.LateDays)
	assert.InDelta(t, 1*DefaultAbsenceWeight+1*DefaultLateWeight, row.PenaltyScore, 1e-9)
}

func TestSummarizeCustomCutoffAndWeights(t *testing.T) {
	events := []attendance.Event{
		mark(1, "Ana", "111", "Entrada", "ENT", "2025-11-03 09:01:00"),
	}
	opts := optsFor("2025-11-03", "2025-11-03")
	opts.LateCutoffMinutes = 9 * 60
	opts.AbsenceWeight = 10
	opts.LateWeight = 3

	rows := Summarize(events, opts)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].LateDays)
	assert.InDelta(t, 3.0, rows[0].PenaltyScore, 1e-9)
}

func TestSummarizeHonorsZeroWeights(t *testing.T) {
	// Zero is a configured weight, not a request for the defaults: one
	// late day plus one absence must still score zero.
	events := []attendance.Event{
		mark(1, "Ana", "111", "Entrada", "ENT", "2025-11-03 09:00:00"),
	}
	opts := optsFor("2025-11-03", "2025-11-04")
	opts.AbsenceWeight = 0
	opts.LateWeight = 0

	rows := Summarize(events, opts)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].LateDays)
	assert.Equal(t, 1, rows[0].Absences)
	assert.InDelta(t, 0.0, rows[0].PenaltyScore, 1e-9)
}

func TestSummarizeHonorsZeroCutoff(t *testing.T) {
	// A midnight cutoff flags any entry after 00:00 as late.
	events := []attendance.Event{
		mark(1, "Ana", "111", "Entrada", "ENT", "2025-11-03 00:05:00"),
	}
	opts := optsFor("2025-11-03", "2025-11-03")
	opts.LateCutoffMinutes = 0

	rows := Summarize(events, opts)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].LateDays)
}

func TestSummarizeInvariants(t *testing.T) {
	events := []attendance.Event{
		mark(1, "Ana", "111", "Entrada", "ENT", "2025-11-03 08:00:00"),
		mark(1, "Ana", "111", "Salida", "SAL", "2025-11-03 17:00:00"),
		mark(1, "Ana", "111", "Entrada", "ENT", "2025-11-05 08:40:00"),
		mark(2, "Jorge", "222", "Salida", "SAL", "2025-11-04 17:00:00"),
		mark(2, "Jorge", "222", "Permiso", "PER", "2025-11-06 09:00:00"),
		mark(3, "Rosa", "333", "Entrada", "ENT", "garbage"),
	}
	rows := Summarize(events, optsFor("2025-11-03", "2025-11-07"))
	require.Len(t, rows, 3)

	for _, row := range rows {
		assert.GreaterOrEqual(t, row.Absences, 0, "%s: absences never negative", row.Name)
		assert.LessOrEqual(t, row.DaysPresent, row.WorkingDaysInRange, "%s: present bounded by range", row.Name)
		assert.LessOrEqual(t, row.MissingEntries, row.WorkingDaysInRange, "%s", row.Name)
		assert.LessOrEqual(t, len(row.MissingDays), row.WorkingDaysInRange, "%s", row.Name)
	}
}

func TestSummarizeIdempotentAndOrderInvariant(t *testing.T) {
	events := []attendance.Event{
		mark(1, "Ana", "111", "Entrada", "ENT", "2025-11-03 08:00:00"),
		mark(1, "Ana", "111", "Salida", "SAL", "2025-11-03 17:00:00"),
		mark(2, "Jorge", "222", "Entrada", "ENT", "2025-11-03 08:50:00"),
		mark(2, "Jorge", "222", "Salida", "SAL", "2025-11-03 17:05:00"),
		mark(1, "Ana", "111", "Entrada", "ENT", "2025-11-04 07:55:00"),
		mark(2, "Jorge", "222", "Entrada", "ENT", "2025-11-04 08:20:00"),
	}
	opts := optsFor("2025-11-03", "2025-11-04")

	first := Summarize(events, opts)
	second := Summarize(events, opts)
	assert.Equal(t, first, second, "pure function: same input, same output")

	shuffled := make([]attendance.Event, len(events))
	copy(shuffled, events)
	r := rand.New(rand.NewSource(42))
	r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	third := Summarize(shuffled, opts)
	assert.Equal(t, first, third, "grouping is order independent")
}

func TestSummarizeMatchesHandCheckedWeek(t *testing.T) {
	// Two employees over Mon 2025-11-10 .. Wed 2025-11-12, mirroring the
	// fixture the aggregation was originally validated against.
	events := []attendance.Event{
		mark(1, "Admin Uno", "A001", "Entrada", "ENT", "2025-11-10 08:05:00"),
		mark(1, "Admin Uno", "A001", "Salida", "SAL", "2025-11-10 17:00:00"),
		mark(1, "Admin Uno", "A001", "Entrada", "ENT", "2025-11-11 08:20:00"),
		mark(1, "Admin Uno", "A001", "Entrada", "ENT", "2025-11-12 08:10:00"),
		mark(2, "Empleado Dos", "E002", "Entrada", "ENT", "2025-11-10 08:50:00"),
		mark(2, "Empleado Dos", "E002", "Salida", "SAL", "2025-11-10 17:05:00"),
		mark(2, "Empleado Dos", "E002", "Entrada", "ENT", "2025-11-11 07:55:00"),
		mark(2, "Empleado Dos", "E002", "Salida", "SAL", "2025-11-11 16:50:00"),
	}
	rows := Summarize(events, optsFor("2025-11-10", "2025-11-12"))
	require.Len(t, rows, 2)

	admin := rows[0]
	require.Equal(t, "Admin Uno", admin.Name)
	assert.Equal(t, 3, admin.WorkingDaysInRange)
	assert.Equal(t, 3, admin.DaysPresent)
	assert.Equal(t, 0, admin.Absences)
	assert.Equal(t, 1, admin.LateDays, "08:20 on the 11th is late")
	assert.Equal(t, 3, admin.TotalEntries)
	assert.Equal(t, 1, admin.TotalExits)
	assert.Equal(t, 0, admin.MissingEntries)
	assert.Equal(t, 2, admin.MissingExits)
	assert.Equal(t, []string{"2025-11-11", "2025-11-12"}, admin.MissingDays)

	emp := rows[1]
	require.Equal(t, "Empleado Dos", emp.Name)
	assert.Equal(t, 3, emp.WorkingDaysInRange)
	assert.Equal(t, 2, emp.DaysPresent)
	assert.Equal(t, 1, emp.Absences)
	assert.Equal(t, 1, emp.LateDays, "08:50 on the 10th is late")
	assert.Equal(t, []string{"2025-11-12"}, emp.MissingDays)
	assert.InDelta(t, 1*DefaultAbsenceWeight+1*DefaultLateWeight, emp.PenaltyScore, 1e-9)
}

func TestSummarizeEmptyInput(t *testing.T) {
	rows := Summarize(nil, optsFor("2025-11-03", "2025-11-07"))
	assert.Equal(t, []report.Row{}, rows)
}
