package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/movement"
	"github.com/utp-asistencia/asistencia-backend-go/internal/pkg/database"
)

type movementRepository struct {
	db *database.DB
}

func NewMovementRepository(db *database.DB) movement.MovementRepository {
	return &movementRepository{db: db}
}

// Create implements movement.MovementRepository.
func (r *movementRepository) Create(ctx context.Context, m movement.Movement) (movement.Movement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO movements (description, code, state)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := q.QueryRow(ctx, query, m.Description, m.Code, m.State).Scan(&m.ID)
	if err != nil {
		return movement.Movement{}, fmt.Errorf("failed to create movement: %w", err)
	}

	return m, nil
}

// GetByID implements movement.MovementRepository.
func (r *movementRepository) GetByID(ctx context.Context, id int64) (movement.Movement, error) {
	q := GetQuerier(ctx, r.db)

	var m movement.Movement
	err := q.QueryRow(ctx, `SELECT id, description, code, state FROM movements WHERE id = $1`, id).
		Scan(&m.ID, &m.Description, &m.Code, &m.State)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return movement.Movement{}, movement.ErrMovementNotFound
		}
		return movement.Movement{}, fmt.Errorf("failed to get movement by ID: %w", err)
	}

	return m, nil
}

// GetByCode implements movement.MovementRepository.
func (r *movementRepository) GetByCode(ctx context.Context, code string) (*movement.Movement, error) {
	q := GetQuerier(ctx, r.db)

	var m movement.Movement
	err := q.QueryRow(ctx, `SELECT id, description, code, state FROM movements WHERE code = $1`, code).
		Scan(&m.ID, &m.Description, &m.Code, &m.State)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get movement by code: %w", err)
	}

	return &m, nil
}

// List implements movement.MovementRepository.
func (r *movementRepository) List(ctx context.Context, onlyActive bool) ([]movement.Movement, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, description, code, state FROM movements`
	if onlyActive {
		query += ` WHERE state = 'ACTIVO'`
	}
	query += ` ORDER BY id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	defer rows.Close()

	var result []movement.Movement
	for rows.Next() {
		var m movement.Movement
		if err := rows.Scan(&m.ID, &m.Description, &m.Code, &m.State); err != nil {
			return nil, fmt.Errorf("failed to scan movement: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate movements: %w", err)
	}

	return result, nil
}

// Update implements movement.MovementRepository.
func (r *movementRepository) Update(ctx context.Context, m movement.Movement) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE movements SET description = $1, code = $2, state = $3 WHERE id = $4`,
		m.Description, m.Code, m.State, m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update movement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return movement.ErrMovementNotFound
	}

	return nil
}
