package movement

import "context"

// MovementService defines business logic for the movement catalog
type MovementService interface {
	CreateMovement(ctx context.Context, req CreateMovementRequest) (MovementResponse, error)
	ListMovements(ctx context.Context, onlyActive bool) ([]MovementResponse, error)
	DeactivateMovement(ctx context.Context, id int64) (MovementResponse, error)

	// EnsureDefaultCatalog seeds the catalog with the standard marks when the
	// table is empty. Called once at startup.
	EnsureDefaultCatalog(ctx context.Context) error
}
