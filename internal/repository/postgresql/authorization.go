package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/authorization"
	"github.com/utp-asistencia/asistencia-backend-go/internal/pkg/database"
)

type authorizationRepository struct {
	db *database.DB
}

func NewAuthorizationRepository(db *database.DB) authorization.AuthorizationRepository {
	return &authorizationRepository{db: db}
}

const authorizationColumns = `
	a.id, a.movement_id, a.requested_by_id, a.approved_by_id, a.description,
	a.request_date, a.approval_date, a.state, a.created_at, a.updated_at,
	m.description, ru.username, au.username
`

const authorizationJoins = `
	FROM authorizations a
	JOIN movements m ON m.id = a.movement_id
	JOIN users ru ON ru.id = a.requested_by_id
	LEFT JOIN users au ON au.id = a.approved_by_id
`

func scanAuthorization(row pgx.Row) (authorization.Authorization, error) {
	var a authorization.Authorization
	err := row.Scan(
		&a.ID, &a.MovementID, &a.RequestedByID, &a.ApprovedByID, &a.Description,
		&a.RequestDate, &a.ApprovalDate, &a.State, &a.CreatedAt, &a.UpdatedAt,
		&a.MovementDescription, &a.RequestedByUsername, &a.ApprovedByUsername,
	)
	return a, err
}

// Create implements authorization.AuthorizationRepository.
func (r *authorizationRepository) Create(ctx context.Context, a authorization.Authorization) (authorization.Authorization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO authorizations (movement_id, requested_by_id, description, request_date, state)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.MovementID,
		a.RequestedByID,
		a.Description,
		a.RequestDate,
		a.State,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		return authorization.Authorization{}, fmt.Errorf("failed to create authorization: %w", err)
	}

	return a, nil
}

// GetByID implements authorization.AuthorizationRepository.
func (r *authorizationRepository) GetByID(ctx context.Context, id int64) (authorization.Authorization, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + authorizationColumns + authorizationJoins + ` WHERE a.id = $1`

	a, err := scanAuthorization(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return authorization.Authorization{}, authorization.ErrAuthorizationNotFound
		}
		return authorization.Authorization{}, fmt.Errorf("failed to get authorization by ID: %w", err)
	}

	return a, nil
}

// List implements authorization.AuthorizationRepository. An empty state
// returns every request.
func (r *authorizationRepository) List(ctx context.Context, state string) ([]authorization.Authorization, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + authorizationColumns + authorizationJoins
	args := []interface{}{}
	if state != "" {
		args = append(args, state)
		query += ` WHERE a.state = $1`
	}
	query += ` ORDER BY a.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list authorizations: %w", err)
	}
	defer rows.Close()

	var result []authorization.Authorization
	for rows.Next() {
		a, err := scanAuthorization(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan authorization: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate authorizations: %w", err)
	}

	return result, nil
}

// Update implements authorization.AuthorizationRepository.
func (r *authorizationRepository) Update(ctx context.Context, a authorization.Authorization) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE authorizations
		SET approved_by_id = $1, approval_date = $2, state = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, a.ApprovedByID, a.ApprovalDate, a.State, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update authorization: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return authorization.ErrAuthorizationNotFound
	}

	return nil
}

// Delete implements authorization.AuthorizationRepository.
func (r *authorizationRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM authorizations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete authorization: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return authorization.ErrAuthorizationNotFound
	}

	return nil
}
