package movement

import "context"

type MovementRepository interface {
	Create(ctx context.Context, m Movement) (Movement, error)
	GetByID(ctx context.Context, id int64) (Movement, error)
	GetByCode(ctx context.Context, code string) (*Movement, error)
	List(ctx context.Context, onlyActive bool) ([]Movement, error)
	Update(ctx context.Context, m Movement) error
}
