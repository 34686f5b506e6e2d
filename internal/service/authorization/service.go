package authorization

import (
	"context"
	"time"

	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/authorization"
	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/movement"
	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/user"
)

type AuthorizationServiceImpl struct {
	authRepo     authorization.AuthorizationRepository
	movementRepo movement.MovementRepository
	userRepo     user.UserRepository
	now          func() time.Time
}

func NewAuthorizationService(
	authRepo authorization.AuthorizationRepository,
	movementRepo movement.MovementRepository,
	userRepo user.UserRepository,
) authorization.AuthorizationService {
	return &AuthorizationServiceImpl{
		authRepo:     authRepo,
		movementRepo: movementRepo,
		userRepo:     userRepo,
		now:          time.Now,
	}
}

// CreateAuthorization implements authorization.AuthorizationService.
func (s *AuthorizationServiceImpl) CreateAuthorization(ctx context.Context, req authorization.CreateAuthorizationRequest) (authorization.AuthorizationResponse, error) {
	if err := req.Validate(); err != nil {
		return authorization.AuthorizationResponse{}, err
	}

	if _, err := s.movementRepo.GetByID(ctx, req.MovementID); err != nil {
		return authorization.AuthorizationResponse{}, err
	}
	requestedBy, err := s.userRepo.GetByID(ctx, req.RequestedByID)
	if err != nil {
		return authorization.AuthorizationResponse{}, err
	}
	if requestedBy.State != user.StateActive {
		return authorization.AuthorizationResponse{}, user.ErrUserInactive
	}

	created, err := s.authRepo.Create(ctx, authorization.Authorization{
		MovementID:    req.MovementID,
		RequestedByID: req.RequestedByID,
		Description:   req.Description,
		RequestDate:   s.now().Format("2006-01-02 15:04:05"),
		State:         authorization.StatePending,
	})
	if err != nil {
		return authorization.AuthorizationResponse{}, err
	}

	// Re-read for the joined movement and username fields.
	full, err := s.authRepo.GetByID(ctx, created.ID)
	if err != nil {
		return authorization.AuthorizationResponse{}, err
	}

	return authorization.ToResponse(full), nil
}

// GetAuthorization implements authorization.AuthorizationService.
func (s *AuthorizationServiceImpl) GetAuthorization(ctx context.Context, id int64) (authorization.AuthorizationResponse, error) {
	a, err := s.authRepo.GetByID(ctx, id)
	if err != nil {
		return authorization.AuthorizationResponse{}, err
	}
	return authorization.ToResponse(a), nil
}

// ListAuthorizations implements authorization.AuthorizationService.
func (s *AuthorizationServiceImpl) ListAuthorizations(ctx context.Context, state string) ([]authorization.AuthorizationResponse, error) {
	list, err := s.authRepo.List(ctx, state)
	if err != nil {
		return nil, err
	}

	responses := make([]authorization.AuthorizationResponse, 0, len(list))
	for _, a := range list {
		responses = append(responses, authorization.ToResponse(a))
	}
	return responses, nil
}

// ApproveAuthorization implements authorization.AuthorizationService.
func (s *AuthorizationServiceImpl) ApproveAuthorization(ctx context.Context, id int64, req authorization.ResolveAuthorizationRequest) (authorization.AuthorizationResponse, error) {
	return s.resolve(ctx, id, req, authorization.StateApproved)
}

// RejectAuthorization implements authorization.AuthorizationService.
func (s *AuthorizationServiceImpl) RejectAuthorization(ctx context.Context, id int64, req authorization.ResolveAuthorizationRequest) (authorization.AuthorizationResponse, error) {
	return s.resolve(ctx, id, req, authorization.StateRejected)
}

func (s *AuthorizationServiceImpl) resolve(ctx context.Context, id int64, req authorization.ResolveAuthorizationRequest, state string) (authorization.AuthorizationResponse, error) {
	if err := req.Validate(); err != nil {
		return authorization.AuthorizationResponse{}, err
	}

	current, err := s.authRepo.GetByID(ctx, id)
	if err != nil {
		return authorization.AuthorizationResponse{}, err
	}
	if current.State != authorization.StatePending {
		return authorization.AuthorizationResponse{}, authorization.ErrAlreadyProcessed
	}

	approver, err := s.userRepo.GetByID(ctx, req.ApprovedByID)
	if err != nil {
		return authorization.AuthorizationResponse{}, err
	}
	if approver.State != user.StateActive {
		return authorization.AuthorizationResponse{}, user.ErrUserInactive
	}

	approvalDate := s.now().Format("2006-01-02 15:04:05")
	current.ApprovedByID = &req.ApprovedByID
	current.ApprovalDate = &approvalDate
	current.State = state

	if err := s.authRepo.Update(ctx, current); err != nil {
		return authorization.AuthorizationResponse{}, err
	}

	full, err := s.authRepo.GetByID(ctx, id)
	if err != nil {
		return authorization.AuthorizationResponse{}, err
	}

	return authorization.ToResponse(full), nil
}
