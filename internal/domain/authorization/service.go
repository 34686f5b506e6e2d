package authorization

import "context"

// AuthorizationService defines business logic for permission requests
type AuthorizationService interface {
	CreateAuthorization(ctx context.Context, req CreateAuthorizationRequest) (AuthorizationResponse, error)
	GetAuthorization(ctx context.Context, id int64) (AuthorizationResponse, error)
	ListAuthorizations(ctx context.Context, state string) ([]AuthorizationResponse, error)
	ApproveAuthorization(ctx context.Context, id int64, req ResolveAuthorizationRequest) (AuthorizationResponse, error)
	RejectAuthorization(ctx context.Context, id int64, req ResolveAuthorizationRequest) (AuthorizationResponse, error)
}
