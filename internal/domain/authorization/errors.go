package authorization

import "errors"

// Authorization domain errors
var (
	ErrAuthorizationNotFound = errors.New("authorization not found")
	ErrAlreadyProcessed      = errors.New("authorization has already been approved or rejected")
	ErrNotApproved           = errors.New("authorization has not been approved")
)
