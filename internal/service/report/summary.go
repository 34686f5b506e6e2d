package report

import (
	"sort"
	"time"

	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/report"
	"github.com/utp-asistencia/asistencia-backend-go/internal/pkg/dateutil"
)

// Policy defaults. Weights are policy constants, not protocol.
const (
	DefaultLateCutoffMinutes = 8*60 + 15
	DefaultAbsenceWeight     = 5.0
	DefaultLateWeight        = 2.0
)

// SummaryOptions parameterizes Summarize. The clock and the period bounds
// are explicit so tests can pin them.
type SummaryOptions struct {
	// PeriodStart is the requested lower bound. Zero means absent: each
	// employee's range then starts at their account-creation date + 1.
	PeriodStart time.Time
	// PeriodEnd is the requested upper bound. Zero means no explicit end:
	// the range is bounded by today and, per employee, by their last
	// known event. A non-zero value is still clamped to today.
	PeriodEnd time.Time
	// Now is the injected clock; its calendar date (in its own location)
	// defines "today".
	Now time.Time
	// AccountCreated maps personnel ID to account-creation date. Employees
	// present in the map start their effective range the day after.
	AccountCreated map[int64]time.Time

	// Policy knobs, taken as given: a zero cutoff or zero weight is a
	// valid configured value, not a request for the defaults. Callers
	// wanting the defaults start from DefaultSettings.
	LateCutoffMinutes int
	AbsenceWeight     float64
	LateWeight        float64
}

// midnightUTC normalizes t to midnight UTC of its calendar date as seen in
// t's own location. All calendar arithmetic below happens on these
// normalized values so that mixed-zone inputs cannot shift a date.
func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// dayKey returns the yyyy-MM-dd grouping key for a raw timestamp: the
// parsed date when the value matches an accepted layout, otherwise its ISO
// prefix. A malformed value with a plausible prefix still groups onto that
// day; true garbage yields a key that never intersects the working days.
func dayKey(timestamp string) string {
	if t, ok := dateutil.ParseFlexible(timestamp); ok {
		return dateutil.DateOnly(t).Format(dateutil.ISODate)
	}
	return isoPrefix(timestamp)
}

// Summarize aggregates filtered attendance events into one report row per
// employee with at least one event. It is a pure function: it reads its
// inputs, allocates its outputs and keeps no state, so concurrent calls
// are safe. Rows are sorted by employee name, ascending.
func Summarize(events []attendance.Event, opts SummaryOptions) []report.Row {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	today := midnightUTC(opts.Now)

	periodEnd := today
	explicitEnd := !opts.PeriodEnd.IsZero()
	if explicitEnd && midnightUTC(opts.PeriodEnd).Before(today) {
		periodEnd = midnightUTC(opts.PeriodEnd)
	}

	byPersonnel := make(map[int64][]attendance.Event)
	for _, e := range events {
		byPersonnel[e.PersonnelID] = append(byPersonnel[e.PersonnelID], e)
	}

	rows := make([]report.Row, 0, len(byPersonnel))
	for pid, personEvents := range byPersonnel {
		rows = append(rows, summarizeEmployee(pid, personEvents, periodEnd, explicitEnd, opts))
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

func summarizeEmployee(pid int64, events []attendance.Event, periodEnd time.Time, explicitEnd bool, opts SummaryOptions) report.Row {
	row := report.Row{
		Name:        attendance.FullName(events[0]),
		MissingDays: []string{},
	}
	if row.Name == "" {
		row.Name = "Sin nombre"
	}
	for _, e := range events {
		if e.DocumentNumber != nil {
			row.DocumentNumber = *e.DocumentNumber
			break
		}
	}

	// Totals and last mark run over the whole filtered set, not just the
	// working-day window.
	for _, e := range events {
		switch Classify(e.MovementDescription, e.MovementCode) {
		case KindEntry:
			row.TotalEntries++
		case KindExit:
			row.TotalExits++
		}
		if e.Timestamp > row.LastEventDate {
			row.LastEventDate = e.Timestamp
		}
	}

	byDay := make(map[string][]attendance.Event)
	for _, e := range events {
		key := dayKey(e.Timestamp)
		if key == "" {
			continue
		}
		byDay[key] = append(byDay[key], e)
	}

	start := effectiveStart(pid, opts)
	end := effectiveEnd(byDay, periodEnd, explicitEnd)
	workingDays := dateutil.WorkingDaysBetween(start, end)
	row.WorkingDaysInRange = len(workingDays)

	for _, day := range workingDays {
		key := day.Format(dateutil.ISODate)
		dayEvents := byDay[key]
		if len(dayEvents) > 0 {
			row.DaysPresent++
		}

		hasEntry, hasExit := false, false
		earliestEntry := ""
		for _, e := range dayEvents {
			switch Classify(e.MovementDescription, e.MovementCode) {
			case KindEntry:
				hasEntry = true
				if earliestEntry == "" || e.Timestamp < earliestEntry {
					earliestEntry = e.Timestamp
				}
			case KindExit:
				hasExit = true
			}
		}

		if !hasEntry {
			row.MissingEntries++
		}
		if !hasExit {
			row.MissingExits++
		}
		if !hasEntry || !hasExit {
			row.MissingDays = append(row.MissingDays, key)
		}

		// Lateness is judged on the day's earliest entry mark. Marks whose
		// timestamp cannot be parsed carry no lateness signal.
		if earliestEntry != "" {
			if t, ok := dateutil.ParseFlexible(earliestEntry); ok {
				if dateutil.MinutesOfDay(t) > opts.LateCutoffMinutes {
					row.LateDays++
				}
			}
		}
	}

	row.Absences = row.WorkingDaysInRange - row.DaysPresent
	if row.Absences < 0 {
		row.Absences = 0
	}
	row.PenaltyScore = float64(row.Absences)*opts.AbsenceWeight + float64(row.LateDays)*opts.LateWeight

	return row
}

// effectiveStart is the later of the requested period start and the
// employee's account-creation date + 1, when known.
func effectiveStart(pid int64, opts SummaryOptions) time.Time {
	var start time.Time
	if !opts.PeriodStart.IsZero() {
		start = midnightUTC(opts.PeriodStart)
	}
	if created, ok := opts.AccountCreated[pid]; ok {
		afterCreation := midnightUTC(created).AddDate(0, 0, 1)
		if start.IsZero() || afterCreation.After(start) {
			start = afterCreation
		}
	}
	return start
}

// effectiveEnd clamps the period end to the employee's last known event
// date when the caller gave no explicit end bound.
func effectiveEnd(byDay map[string][]attendance.Event, periodEnd time.Time, explicitEnd bool) time.Time {
	if explicitEnd {
		return periodEnd
	}
	last := time.Time{}
	for key := range byDay {
		if t, err := time.Parse(dateutil.ISODate, key); err == nil {
			if last.IsZero() || t.After(last) {
				last = t
			}
		}
	}
	if !last.IsZero() && last.Before(periodEnd) {
		return last
	}
	return periodEnd
}
