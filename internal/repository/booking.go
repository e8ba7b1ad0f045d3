package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/LazyReserve/internal/domain"
	"github.com/stpnv0/LazyReserve/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingDetailsQuery = `SELECT b.id, b.session_id, b.visitor_name, b.visitor_email, b.visitor_phone,
		b.notes, b.status, b.created_at, b.updated_at,
		` + sessionColumns + `
		FROM bookings b
		JOIN sessions s ON s.id = b.session_id`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *BookingRepository) Admit(ctx context.Context, b *domain.Booking, admit ports.AdmissionFunc) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Row lock serialises concurrent admissions for the same session until commit.
	lockQuery := `SELECT is_active, end_time, max_bookings FROM sessions WHERE id = $1 FOR UPDATE`
	var session *domain.Session
	var s domain.Session
	err = tx.QueryRowContext(ctx, lockQuery, b.SessionID).Scan(&s.IsActive, &s.EndTime, &s.MaxBookings)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return fmt.Errorf("lock session: %w", err)
	default:
		session = &s
	}

	var visitors []string
	if session != nil {
		if visitors, err = activeVisitors(ctx, tx, b.SessionID); err != nil {
			return err
		}
	}

	status, err := admit(domain.NewSessionSnapshot(session, visitors))
	if err != nil {
		return err
	}
	b.Status = status

	query := `INSERT INTO bookings (id, session_id, visitor_name, visitor_email, visitor_phone,
                                   notes, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = tx.ExecContext(
		ctx, query, b.ID, b.SessionID, b.VisitorName, b.VisitorEmail, b.VisitorPhone,
		b.Notes, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateBooking
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func activeVisitors(ctx context.Context, tx *sql.Tx, sessionID string) ([]string, error) {
	query := `SELECT visitor_email FROM bookings WHERE session_id = $1 AND status = ANY($2)`

	rows, err := tx.QueryContext(ctx, query, sessionID, activeStatuses())
	if err != nil {
		return nil, fmt.Errorf("list active visitors: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var email string
		if err = rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("scan visitor: %w", err)
		}
		res = append(res, email)
	}

	return res, rows.Err()
}

func scanBookingDetails(row scanner, d *domain.BookingDetails) error {
	b := &d.Booking
	s := &d.Session
	return row.Scan(
		&b.ID, &b.SessionID, &b.VisitorName, &b.VisitorEmail, &b.VisitorPhone,
		&b.Notes, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		&s.ID, &s.OwnerID, &s.Title, &s.Description, &s.Location,
		&s.StartTime, &s.EndTime, &s.MaxBookings, &s.IsActive, &s.BookingURL,
		&s.CreatedAt, &s.UpdatedAt,
		&s.BookingCount,
	)
}

func (r *BookingRepository) GetDetails(ctx context.Context, id string) (*domain.BookingDetails, error) {
	query := bookingDetailsQuery + ` WHERE b.id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, activeStatuses(), id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var d domain.BookingDetails
	if err = scanBookingDetails(row, &d); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &d, nil
}

func (r *BookingRepository) ListBySession(ctx context.Context, sessionID string) ([]*domain.BookingDetails, error) {
	query := bookingDetailsQuery + ` WHERE b.session_id = $2 ORDER BY b.created_at DESC`
	return r.list(ctx, "list bookings by session", query, sessionID)
}

func (r *BookingRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.BookingDetails, error) {
	query := bookingDetailsQuery + ` WHERE s.owner_id = $2 ORDER BY b.created_at DESC`
	return r.list(ctx, "list bookings by owner", query, ownerID)
}

func (r *BookingRepository) list(ctx context.Context, op, query string, arg string) ([]*domain.BookingDetails, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, activeStatuses(), arg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var res []*domain.BookingDetails
	for rows.Next() {
		var d domain.BookingDetails
		if err = scanBookingDetails(rows, &d); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &d)
	}

	return res, rows.Err()
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) error {
	query := `UPDATE bookings
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`

	// Not retried: a second attempt would report its own write as a lost race.
	res, err := r.db.Master.ExecContext(ctx, query, id, from, to)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows > 0 {
		return nil
	}

	// Nothing matched: the booking is gone or someone moved it first.
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT status FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("check booking status: %w", err)
	}
	var current string
	if err = row.Scan(&current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("scan booking status: %w", err)
	}

	return fmt.Errorf("%w: now %s", domain.ErrBookingStatusChanged, current)
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	return expectOneRow(res, domain.ErrBookingNotFound)
}
