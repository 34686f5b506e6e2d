package movement

import (
	"context"
	"fmt"
	"strings"

	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/movement"
	"github.com/utp-asistencia/asistencia-backend-go/internal/pkg/database"
	"github.com/utp-asistencia/asistencia-backend-go/internal/repository/postgresql"
)

type MovementServiceImpl struct {
	db           *database.DB
	movementRepo movement.MovementRepository
}

func NewMovementService(db *database.DB, movementRepo movement.MovementRepository) movement.MovementService {
	return &MovementServiceImpl{
		db:           db,
		movementRepo: movementRepo,
	}
}

// CreateMovement implements movement.MovementService. Codes are stored
// uppercase so catalog lookups stay case insensitive.
func (s *MovementServiceImpl) CreateMovement(ctx context.Context, req movement.CreateMovementRequest) (movement.MovementResponse, error) {
	if err := req.Validate(); err != nil {
		return movement.MovementResponse{}, err
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	existing, err := s.movementRepo.GetByCode(ctx, code)
	if err != nil {
		return movement.MovementResponse{}, fmt.Errorf("failed to check movement code: %w", err)
	}
	if existing != nil {
		return movement.MovementResponse{}, movement.ErrCodeExists
	}

	created, err := s.movementRepo.Create(ctx, movement.Movement{
		Description: strings.TrimSpace(req.Description),
		Code:        code,
		State:       movement.StateActive,
	})
	if err != nil {
		return movement.MovementResponse{}, err
	}

	return movement.ToResponse(created), nil
}

// ListMovements implements movement.MovementService.
func (s *MovementServiceImpl) ListMovements(ctx context.Context, onlyActive bool) ([]movement.MovementResponse, error) {
	list, err := s.movementRepo.List(ctx, onlyActive)
	if err != nil {
		return nil, err
	}

	responses := make([]movement.MovementResponse, 0, len(list))
	for _, m := range list {
		responses = append(responses, movement.ToResponse(m))
	}
	return responses, nil
}

// DeactivateMovement implements movement.MovementService. Movements are
// never deleted; historical events keep pointing at them.
func (s *MovementServiceImpl) DeactivateMovement(ctx context.Context, id int64) (movement.MovementResponse, error) {
	current, err := s.movementRepo.GetByID(ctx, id)
	if err != nil {
		return movement.MovementResponse{}, err
	}

	current.State = movement.StateInactive
	if err := s.movementRepo.Update(ctx, current); err != nil {
		return movement.MovementResponse{}, err
	}

	return movement.ToResponse(current), nil
}

// EnsureDefaultCatalog implements movement.MovementService. The check and
// the inserts run in one transaction so concurrent startups cannot seed the
// catalog twice.
func (s *MovementServiceImpl) EnsureDefaultCatalog(ctx context.Context) error {
	return postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		existing, err := s.movementRepo.List(ctx, false)
		if err != nil {
			return fmt.Errorf("failed to inspect movement catalog: %w", err)
		}
		if len(existing) > 0 {
			return nil
		}

		for _, m := range movement.DefaultCatalog() {
			if _, err := s.movementRepo.Create(ctx, m); err != nil {
				return fmt.Errorf("failed to seed movement %s: %w", m.Code, err)
			}
		}
		return nil
	})
}
