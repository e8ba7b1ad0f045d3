package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/LazyReserve/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const sessionColumns = `s.id, s.owner_id, s.title, s.description, s.location,
		s.start_time, s.end_time, s.max_bookings, s.is_active, s.booking_url,
		s.created_at, s.updated_at,
		(SELECT COUNT(*) FROM bookings a WHERE a.session_id = s.id AND a.status = ANY($1))`

type SessionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSessionRepo(db *dbpg.DB) *SessionRepository {
	return &SessionRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func scanSession(row scanner, s *domain.Session) error {
	return row.Scan(
		&s.ID, &s.OwnerID, &s.Title, &s.Description, &s.Location,
		&s.StartTime, &s.EndTime, &s.MaxBookings, &s.IsActive, &s.BookingURL,
		&s.CreatedAt, &s.UpdatedAt,
		&s.BookingCount,
	)
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (id, owner_id, title, description, location, start_time, end_time,
                                   max_bookings, is_active, booking_url, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.OwnerID, s.Title, s.Description, s.Location, s.StartTime, s.EndTime,
		s.MaxBookings, s.IsActive, s.BookingURL, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + `
			  FROM sessions s
			  WHERE s.id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, activeStatuses(), id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var s domain.Session
	if err = scanSession(row, &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}

	return &s, nil
}

func (r *SessionRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + `
			  FROM sessions s
			  WHERE s.owner_id = $2
			  ORDER BY s.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, activeStatuses(), ownerID)
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
			  SET title = $2, description = $3, location = $4, start_time = $5, end_time = $6,
			      max_bookings = $7, updated_at = $8
			  WHERE id = $1`
	s.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.Title, s.Description, s.Location, s.StartTime, s.EndTime,
		s.MaxBookings, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}

	return expectOneRow(res, domain.ErrSessionNotFound)
}

func (r *SessionRepository) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE sessions SET is_active = $2, updated_at = now() WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, active)
	if err != nil {
		return fmt.Errorf("set session active: %w", err)
	}

	return expectOneRow(res, domain.ErrSessionNotFound)
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return expectOneRow(res, domain.ErrSessionNotFound)
}

func expectOneRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
