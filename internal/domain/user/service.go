package user

import "context"

// UserService defines business logic for account management
type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetUser(ctx context.Context, id int64) (UserResponse, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
	UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (UserResponse, error)
	DeleteUser(ctx context.Context, id int64) error
}
