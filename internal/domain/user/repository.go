package user

import (
	"context"
	"time"
)

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id int64) error

	// CreationDatesByPersonnel returns, for every user account, the date the
	// account was created, keyed by the linked personnel ID. The report
	// service uses it to bound each employee's effective start date.
	CreationDatesByPersonnel(ctx context.Context) (map[int64]time.Time, error)
}
