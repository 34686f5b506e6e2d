package user

import "errors"

// User domain errors
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")
	ErrUserInactive   = errors.New("user account is inactive")
)
