package user

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/personnel"
	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	userRepo      user.UserRepository
	personnelRepo personnel.PersonnelRepository
}

func NewUserService(userRepo user.UserRepository, personnelRepo personnel.PersonnelRepository) user.UserService {
	return &UserServiceImpl{
		userRepo:      userRepo,
		personnelRepo: personnelRepo,
	}
}

// CreateUser implements user.UserService. The account is created active and
// its creation date becomes the employee's report baseline.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if _, err := s.personnelRepo.GetByID(ctx, req.PersonnelID); err != nil {
		return user.UserResponse{}, err
	}

	existing, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return user.UserResponse{}, user.ErrUsernameExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		PersonnelID:  req.PersonnelID,
		Username:     req.Username,
		PasswordHash: string(hash),
		State:        user.StateActive,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(created), nil
}

// GetUser implements user.UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, id int64) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	list, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(list))
	for _, u := range list {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

// UpdateUser implements user.UserService.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, id int64, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	current, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Username != nil && *req.Username != current.Username {
		existing, err := s.userRepo.GetByUsername(ctx, *req.Username)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to check username: %w", err)
		}
		if existing != nil {
			return user.UserResponse{}, user.ErrUsernameExists
		}
		current.Username = *req.Username
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		current.PasswordHash = string(hash)
	}

	if req.State != nil {
		current.State = *req.State
	}

	if err := s.userRepo.Update(ctx, current); err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(current), nil
}

// DeleteUser implements user.UserService. Accounts are deactivated rather
// than removed so their creation dates keep bounding historical reports.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	current, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	current.State = user.StateInactive
	return s.userRepo.Update(ctx, current)
}
