package authorization

import "context"

type AuthorizationRepository interface {
	Create(ctx context.Context, a Authorization) (Authorization, error)
	GetByID(ctx context.Context, id int64) (Authorization, error)
	List(ctx context.Context, state string) ([]Authorization, error)
	Update(ctx context.Context, a Authorization) error
	Delete(ctx context.Context, id int64) error
}
