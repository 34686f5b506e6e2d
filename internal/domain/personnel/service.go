package personnel

import "context"

// PersonnelService defines business logic for employee records
type PersonnelService interface {
	CreatePersonnel(ctx context.Context, req CreatePersonnelRequest) (PersonnelResponse, error)
	GetPersonnel(ctx context.Context, id int64) (PersonnelResponse, error)
	ListPersonnel(ctx context.Context) ([]PersonnelResponse, error)
	UpdatePersonnel(ctx context.Context, id int64, req UpdatePersonnelRequest) (PersonnelResponse, error)
	DeletePersonnel(ctx context.Context, id int64) error
}
