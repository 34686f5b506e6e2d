package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/utp-asistencia/asistencia-backend-go/internal/pkg/dateutil"
	"github.com/utp-asistencia/asistencia-backend-go/internal/service/report"
)

type AttendanceJobs struct {
	eventRepo attendance.EventRepository
	location  *time.Location
	now       func() time.Time
}

func NewAttendanceJobs(eventRepo attendance.EventRepository, location *time.Location) *AttendanceJobs {
	if location == nil {
		location = time.UTC
	}
	return &AttendanceJobs{
		eventRepo: eventRepo,
		location:  location,
		now:       time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddDailyJob("flag_missing_exits", 0, j.location, j.FlagMissingExits)
}

// FlagMissingExits reviews the previous day's marks and logs every employee
// who entered without marking an exit, so supervisors can correct the record
// before it reaches a report. Scheduled right after local midnight.
func (j *AttendanceJobs) FlagMissingExits(ctx context.Context) error {
	yesterday := j.now().In(j.location).AddDate(0, 0, -1).Format(dateutil.ISODate)
	if dateutil.IsWeekend(j.now().In(j.location).AddDate(0, 0, -1)) {
		return nil
	}

	slog.Info("Cron: reviewing previous day for missing exits", "date", yesterday)

	events, err := j.eventRepo.List(ctx, attendance.EventFilter{From: yesterday, To: yesterday})
	if err != nil {
		return fmt.Errorf("failed to list events for %s: %w", yesterday, err)
	}

	type dayState struct {
		name     string
		hasEntry bool
		hasExit  bool
	}
	byPersonnel := make(map[int64]*dayState)
	for _, e := range events {
		state, ok := byPersonnel[e.PersonnelID]
		if !ok {
			state = &dayState{name: attendance.FullName(e)}
			byPersonnel[e.PersonnelID] = state
		}
		switch report.Classify(e.MovementDescription, e.MovementCode) {
		case report.KindEntry:
			state.hasEntry = true
		case report.KindExit:
			state.hasExit = true
		}
	}

	flagged := 0
	for personnelID, state := range byPersonnel {
		if state.hasEntry && !state.hasExit {
			flagged++
			slog.Warn("Cron: entry without exit",
				"date", yesterday,
				"personnel_id", personnelID,
				"name", state.name,
			)
		}
	}

	slog.Info("Cron: missing exit review finished", "date", yesterday, "flagged", flagged)
	return nil
}
