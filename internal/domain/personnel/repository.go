package personnel

import "context"

type PersonnelRepository interface {
	Create(ctx context.Context, p Personnel) (Personnel, error)
	GetByID(ctx context.Context, id int64) (Personnel, error)
	GetByWorkerCode(ctx context.Context, code string) (*Personnel, error)
	GetByDocumentNumber(ctx context.Context, doc string) (*Personnel, error)
	List(ctx context.Context) ([]Personnel, error)
	Update(ctx context.Context, p Personnel) error
	Delete(ctx context.Context, id int64) error
}
