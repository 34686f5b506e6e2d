package report

import (
	"context"
	"fmt"
	"time"

	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/report"
	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/user"
	"github.com/utp-asistencia/asistencia-backend-go/internal/pkg/dateutil"
)

// Settings carries the report policy knobs resolved from configuration.
type Settings struct {
	LateCutoffMinutes int
	AbsenceWeight     float64
	LateWeight        float64
	Location          *time.Location
}

func DefaultSettings() Settings {
	return Settings{
		LateCutoffMinutes: DefaultLateCutoffMinutes,
		AbsenceWeight:     DefaultAbsenceWeight,
		LateWeight:        DefaultLateWeight,
		Location:          time.UTC,
	}
}

type ReportServiceImpl struct {
	eventRepo attendance.EventRepository
	userRepo  user.UserRepository
	settings  Settings
	now       func() time.Time
}

func NewReportService(eventRepo attendance.EventRepository, userRepo user.UserRepository, settings Settings) report.ReportService {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	return &ReportServiceImpl{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		settings:  settings,
		now:       time.Now,
	}
}

// GenerateAttendanceReport fetches the raw events and account-creation
// dates, applies the pre-filter and hands everything to the pure
// aggregation in Summarize.
func (s *ReportServiceImpl) GenerateAttendanceReport(ctx context.Context, req report.AttendanceReportRequest) (report.AttendanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.AttendanceReport{}, err
	}

	events, err := s.eventRepo.List(ctx, attendance.EventFilter{})
	if err != nil {
		return report.AttendanceReport{}, fmt.Errorf("failed to list attendance events: %w", err)
	}

	accountCreated, err := s.userRepo.CreationDatesByPersonnel(ctx)
	if err != nil {
		return report.AttendanceReport{}, fmt.Errorf("failed to load account creation dates: %w", err)
	}

	filtered := Filter(events, req.Name, req.From, req.To)

	opts := SummaryOptions{
		Now:               s.now().In(s.settings.Location),
		AccountCreated:    accountCreated,
		LateCutoffMinutes: s.settings.LateCutoffMinutes,
		AbsenceWeight:     s.settings.AbsenceWeight,
		LateWeight:        s.settings.LateWeight,
	}
	if req.From != "" {
		if t, ok := dateutil.ParseFlexible(req.From); ok {
			opts.PeriodStart = t
		}
	}
	if req.To != "" {
		if t, ok := dateutil.ParseFlexible(req.To); ok {
			opts.PeriodEnd = t
		}
	}

	return report.AttendanceReport{
		GeneratedAt: s.now().In(s.settings.Location).Format(time.RFC3339),
		From:        req.From,
		To:          req.To,
		Rows:        Summarize(filtered, opts),
	}, nil
}
