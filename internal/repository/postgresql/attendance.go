package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/attendance"
	"github.com/utp-asistencia/asistencia-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.EventRepository {
	return &attendanceRepository{db: db}
}

const eventColumns = `
	e.id, e.personnel_id, e.movement_id, e.event_timestamp, e.marker_ip,
	e.authorization_id, e.created_at,
	p.first_name, p.paternal_surname, p.maternal_surname, p.document_number,
	m.description, m.code
`

const eventJoins = `
	FROM attendance_events e
	JOIN personnel p ON p.id = e.personnel_id
	JOIN movements m ON m.id = e.movement_id
`

func scanEvent(row pgx.Row) (attendance.Event, error) {
	var e attendance.Event
	err := row.Scan(
		&e.ID, &e.PersonnelID, &e.MovementID, &e.Timestamp, &e.MarkerIP,
		&e.AuthorizationID, &e.CreatedAt,
		&e.FirstName, &e.PaternalSurname, &e.MaternalSurname, &e.DocumentNumber,
		&e.MovementDescription, &e.MovementCode,
	)
	return e, err
}

// Create implements attendance.EventRepository.
func (r *attendanceRepository) Create(ctx context.Context, e attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_events (personnel_id, movement_id, event_timestamp, marker_ip, authorization_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		e.PersonnelID,
		e.MovementID,
		e.Timestamp,
		e.MarkerIP,
		e.AuthorizationID,
	).Scan(&e.ID, &e.CreatedAt)

	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to create attendance event: %w", err)
	}

	return e, nil
}

// GetByID implements attendance.EventRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id int64) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + eventColumns + eventJoins + ` WHERE e.id = $1`

	e, err := scanEvent(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Event{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Event{}, fmt.Errorf("failed to get attendance event by ID: %w", err)
	}

	return e, nil
}

// List implements attendance.EventRepository. Date bounds compare the ISO
// prefix of the raw timestamp, which sorts correctly for every accepted
// layout.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.EventFilter) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + eventColumns + eventJoins + ` WHERE 1=1`
	args := []interface{}{}

	if filter.PersonnelID != nil {
		args = append(args, *filter.PersonnelID)
		query += ` AND e.personnel_id = $` + strconv.Itoa(len(args))
	}
	if filter.From != "" {
		args = append(args, filter.From)
		query += ` AND LEFT(e.event_timestamp, 10) >= $` + strconv.Itoa(len(args))
	}
	if filter.To != "" {
		args = append(args, filter.To)
		query += ` AND LEFT(e.event_timestamp, 10) <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY e.event_timestamp DESC, e.id DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}
	defer rows.Close()

	var result []attendance.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance events: %w", err)
	}

	return result, nil
}

// GetLastOnDay implements attendance.EventRepository.
func (r *attendanceRepository) GetLastOnDay(ctx context.Context, personnelID int64, dayPrefix string) (*attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + eventColumns + eventJoins + `
		WHERE e.personnel_id = $1
		  AND LEFT(e.event_timestamp, 10) = $2
		ORDER BY e.event_timestamp DESC, e.id DESC
		LIMIT 1
	`

	e, err := scanEvent(q.QueryRow(ctx, query, personnelID, dayPrefix))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last event of day: %w", err)
	}

	return &e, nil
}

// Delete implements attendance.EventRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}
