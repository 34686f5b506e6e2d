package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/personnel"
	"github.com/utp-asistencia/asistencia-backend-go/internal/pkg/database"
)

type personnelRepository struct {
	db *database.DB
}

func NewPersonnelRepository(db *database.DB) personnel.PersonnelRepository {
	return &personnelRepository{db: db}
}

const personnelColumns = `
	id, worker_code, first_name, paternal_surname, maternal_surname,
	document_number, email, hire_date, birth_date, photo_url, position,
	created_at, updated_at
`

func scanPersonnel(row pgx.Row) (personnel.Personnel, error) {
	var p personnel.Personnel
	err := row.Scan(
		&p.ID, &p.WorkerCode, &p.FirstName, &p.PaternalSurname, &p.MaternalSurname,
		&p.DocumentNumber, &p.Email, &p.HireDate, &p.BirthDate, &p.PhotoURL, &p.Position,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements personnel.PersonnelRepository.
func (r *personnelRepository) Create(ctx context.Context, p personnel.Personnel) (personnel.Personnel, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO personnel (
			worker_code, first_name, paternal_surname, maternal_surname,
			document_number, email, hire_date, birth_date, photo_url, position
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.WorkerCode,
		p.FirstName,
		p.PaternalSurname,
		p.MaternalSurname,
		p.DocumentNumber,
		p.Email,
		p.HireDate,
		p.BirthDate,
		p.PhotoURL,
		p.Position,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return personnel.Personnel{}, fmt.Errorf("failed to create personnel: %w", err)
	}

	return p, nil
}

// GetByID implements personnel.PersonnelRepository.
func (r *personnelRepository) GetByID(ctx context.Context, id int64) (personnel.Personnel, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + personnelColumns + ` FROM personnel WHERE id = $1`

	p, err := scanPersonnel(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return personnel.Personnel{}, personnel.ErrPersonnelNotFound
		}
		return personnel.Personnel{}, fmt.Errorf("failed to get personnel by ID: %w", err)
	}

	return p, nil
}

// GetByWorkerCode implements personnel.PersonnelRepository.
func (r *personnelRepository) GetByWorkerCode(ctx context.Context, code string) (*personnel.Personnel, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + personnelColumns + ` FROM personnel WHERE worker_code = $1`

	p, err := scanPersonnel(q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get personnel by worker code: %w", err)
	}

	return &p, nil
}

// GetByDocumentNumber implements personnel.PersonnelRepository.
func (r *personnelRepository) GetByDocumentNumber(ctx context.Context, doc string) (*personnel.Personnel, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + personnelColumns + ` FROM personnel WHERE document_number = $1`

	p, err := scanPersonnel(q.QueryRow(ctx, query, doc))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get personnel by document number: %w", err)
	}

	return &p, nil
}

// List implements personnel.PersonnelRepository.
func (r *personnelRepository) List(ctx context.Context) ([]personnel.Personnel, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + personnelColumns + ` FROM personnel ORDER BY first_name, paternal_surname`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list personnel: %w", err)
	}
	defer rows.Close()

	var result []personnel.Personnel
	for rows.Next() {
		p, err := scanPersonnel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan personnel: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate personnel: %w", err)
	}

	return result, nil
}

// Update implements personnel.PersonnelRepository.
func (r *personnelRepository) Update(ctx context.Context, p personnel.Personnel) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE personnel
		SET worker_code = $1, first_name = $2, paternal_surname = $3,
		    maternal_surname = $4, document_number = $5, email = $6,
		    hire_date = $7, birth_date = $8, photo_url = $9, position = $10,
		    updated_at = NOW()
		WHERE id = $11
	`

	tag, err := q.Exec(ctx, query,
		p.WorkerCode,
		p.FirstName,
		p.PaternalSurname,
		p.MaternalSurname,
		p.DocumentNumber,
		p.Email,
		p.HireDate,
		p.BirthDate,
		p.PhotoURL,
		p.Position,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update personnel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return personnel.ErrPersonnelNotFound
	}

	return nil
}

// Delete implements personnel.PersonnelRepository.
func (r *personnelRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM personnel WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete personnel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return personnel.ErrPersonnelNotFound
	}

	return nil
}
