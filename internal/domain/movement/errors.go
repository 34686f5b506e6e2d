package movement

import "errors"

// Movement domain errors
var (
	ErrMovementNotFound = errors.New("movement not found")
	ErrMovementInactive = errors.New("movement is inactive")
	ErrCodeExists       = errors.New("movement code already exists")
)
