package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/authorization"
	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/movement"
	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/personnel"
	"github.com/utp-asistencia/asistencia-backend-go/internal/pkg/utils"
	"github.com/utp-asistencia/asistencia-backend-go/internal/service/report"
)

// GeoFence restricts marking to a radius around the work site. Zero value
// means no restriction.
type GeoFence struct {
	Enabled      bool
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

type AttendanceServiceImpl struct {
	eventRepo     attendance.EventRepository
	personnelRepo personnel.PersonnelRepository
	movementRepo  movement.MovementRepository
	authRepo      authorization.AuthorizationRepository
	geoFence      GeoFence
	location      *time.Location
	now           func() time.Time
}

func NewAttendanceService(
	eventRepo attendance.EventRepository,
	personnelRepo personnel.PersonnelRepository,
	movementRepo movement.MovementRepository,
	authRepo authorization.AuthorizationRepository,
	geoFence GeoFence,
	location *time.Location,
) attendance.AttendanceService {
	if location == nil {
		location = time.UTC
	}
	return &AttendanceServiceImpl{
		eventRepo:     eventRepo,
		personnelRepo: personnelRepo,
		movementRepo:  movementRepo,
		authRepo:      authRepo,
		geoFence:      geoFence,
		location:      location,
		now:           time.Now,
	}
}

// Mark implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkRequest) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	if _, err := s.personnelRepo.GetByID(ctx, req.PersonnelID); err != nil {
		return attendance.EventResponse{}, err
	}

	mov, err := s.movementRepo.GetByID(ctx, req.MovementID)
	if err != nil {
		return attendance.EventResponse{}, err
	}
	if mov.State != movement.StateActive {
		return attendance.EventResponse{}, movement.ErrMovementInactive
	}

	if s.geoFence.Enabled && req.Latitude != nil && req.Longitude != nil {
		if !utils.WithinRadius(s.geoFence.Latitude, s.geoFence.Longitude, *req.Latitude, *req.Longitude, s.geoFence.RadiusMeters) {
			return attendance.EventResponse{}, attendance.ErrOutsideAllowedRadius
		}
	}

	timestamp := s.now().In(s.location).Format("2006-01-02 15:04:05")
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}

	authorized, err := s.checkAuthorization(ctx, req.AuthorizationID)
	if err != nil {
		return attendance.EventResponse{}, err
	}

	// An approved authorization overrides the sequence rules; the marked
	// movement was explicitly allowed.
	if !authorized {
		if err := s.validateSequence(ctx, req.PersonnelID, mov, timestamp); err != nil {
			return attendance.EventResponse{}, err
		}
	}

	created, err := s.eventRepo.Create(ctx, attendance.Event{
		PersonnelID:     req.PersonnelID,
		MovementID:      req.MovementID,
		Timestamp:       timestamp,
		MarkerIP:        req.MarkerIP,
		AuthorizationID: req.AuthorizationID,
	})
	if err != nil {
		return attendance.EventResponse{}, err
	}

	// Create returns the bare row; re-read for the joined personnel and
	// movement fields.
	full, err := s.eventRepo.GetByID(ctx, created.ID)
	if err != nil {
		return attendance.EventResponse{}, err
	}

	return attendance.ToResponse(full), nil
}

func (s *AttendanceServiceImpl) checkAuthorization(ctx context.Context, id *int64) (bool, error) {
	if id == nil {
		return false, nil
	}

	auth, err := s.authRepo.GetByID(ctx, *id)
	if err != nil {
		return false, err
	}
	if auth.State != authorization.StateApproved {
		return false, authorization.ErrNotApproved
	}
	return true, nil
}

// validateSequence enforces the order of marks within one calendar day:
// entry, optionally break start/end pairs, exit. Movements the classifier
// cannot place are accepted as-is.
func (s *AttendanceServiceImpl) validateSequence(ctx context.Context, personnelID int64, mov movement.Movement, timestamp string) error {
	kind := report.Classify(mov.Description, mov.Code)
	if kind == report.KindUnclassified {
		return nil
	}

	if len(timestamp) < 10 {
		return nil
	}
	last, err := s.eventRepo.GetLastOnDay(ctx, personnelID, timestamp[:10])
	if err != nil {
		return fmt.Errorf("failed to load last mark of day: %w", err)
	}

	lastKind := report.KindUnclassified
	if last != nil {
		lastKind = report.Classify(last.MovementDescription, last.MovementCode)
	}

	switch kind {
	case report.KindEntry:
		if last != nil && lastKind != report.KindExit {
			return attendance.ErrEntryAlreadyOpen
		}
	case report.KindExit:
		if lastKind != report.KindEntry && lastKind != report.KindBreakEnd {
			return attendance.ErrNoOpenEntry
		}
	case report.KindBreakStart:
		if lastKind != report.KindEntry && lastKind != report.KindBreakEnd {
			if lastKind == report.KindBreakStart {
				return attendance.ErrBreakAlreadyOpen
			}
			return attendance.ErrNoOpenEntry
		}
	case report.KindBreakEnd:
		if lastKind != report.KindBreakStart {
			return attendance.ErrNoOpenBreak
		}
	}

	return nil
}

// GetEvent implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEvent(ctx context.Context, id int64) (attendance.EventResponse, error) {
	e, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.EventResponse{}, err
	}
	return attendance.ToResponse(e), nil
}

// ListEvents implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListEvents(ctx context.Context, filter attendance.EventFilter) ([]attendance.EventResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.EventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, attendance.ToResponse(e))
	}
	return responses, nil
}

// DeleteEvent implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteEvent(ctx context.Context, id int64) error {
	return s.eventRepo.Delete(ctx, id)
}
