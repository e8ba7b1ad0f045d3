package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/LazyReserve/internal/domain"
)

func sessionColumns() (string, []any) {
	active, args := activeIn("a.status")
	cols := `s.id, s.owner_id, s.title, s.description, s.location,
		s.start_time, s.end_time, s.max_bookings, s.is_active, s.booking_url,
		s.created_at, s.updated_at,
		(SELECT COUNT(*) FROM bookings a WHERE a.session_id = s.id AND ` + active + `)`
	return cols, args
}

func scanSession(row scanner, s *domain.Session) error {
	var start, end, created, updated int64
	if err := row.Scan(
		&s.ID, &s.OwnerID, &s.Title, &s.Description, &s.Location,
		&start, &end, &s.MaxBookings, &s.IsActive, &s.BookingURL,
		&created, &updated,
		&s.BookingCount,
	); err != nil {
		return err
	}
	s.StartTime = fromMillis(start)
	s.EndTime = fromMillis(end)
	s.CreatedAt = fromMillis(created)
	s.UpdatedAt = fromMillis(updated)
	return nil
}

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (id, owner_id, title, description, location, start_time, end_time,
                                   max_bookings, is_active, booking_url, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(
		ctx, query,
		s.ID, s.OwnerID, s.Title, s.Description, s.Location, toMillis(s.StartTime), toMillis(s.EndTime),
		s.MaxBookings, s.IsActive, s.BookingURL, toMillis(s.CreatedAt), toMillis(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	cols, args := sessionColumns()
	query := `SELECT ` + cols + ` FROM sessions s WHERE s.id = ?`

	var s domain.Session
	if err := scanSession(r.db.QueryRowContext(ctx, query, append(args, id)...), &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	return &s, nil
}

func (r *SessionRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Session, error) {
	cols, args := sessionColumns()
	query := `SELECT ` + cols + ` FROM sessions s WHERE s.owner_id = ? ORDER BY s.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, append(args, ownerID)...)
	if err != nil {
		return nil, fmt.Errorf("list sessions by owner: %w", err)
	}
	defer rows.Close()

	var res []*domain.Session
	for rows.Next() {
		var s domain.Session
		if err = scanSession(rows, &s); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *SessionRepository) Update(ctx context.Context, s *domain.Session) error {
	query := `UPDATE sessions
			  SET title = ?, description = ?, location = ?, start_time = ?, end_time = ?,
			      max_bookings = ?, updated_at = ?
			  WHERE id = ?`
	s.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(
		ctx, query,
		s.Title, s.Description, s.Location, toMillis(s.StartTime), toMillis(s.EndTime),
		s.MaxBookings, toMillis(s.UpdatedAt), s.ID,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}

	return expectOneRow(res, domain.ErrSessionNotFound)
}

func (r *SessionRepository) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE sessions SET is_active = ?, updated_at = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, active, toMillis(time.Now()), id)
	if err != nil {
		return fmt.Errorf("set session active: %w", err)
	}

	return expectOneRow(res, domain.ErrSessionNotFound)
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return expectOneRow(res, domain.ErrSessionNotFound)
}
