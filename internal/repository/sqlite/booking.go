package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/LazyReserve/internal/domain"
	"github.com/stpnv0/LazyReserve/internal/service/ports"
)

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepo(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Admit(ctx context.Context, b *domain.Booking, admit ports.AdmissionFunc) error {
	// The connection is opened with _txlock=immediate: no other writer can
	// slip in between the capacity read and the insert below.
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var session *domain.Session
	var s domain.Session
	var end int64
	err = tx.QueryRowContext(ctx, `SELECT is_active, end_time, max_bookings FROM sessions WHERE id = ?`, b.SessionID).
		Scan(&s.IsActive, &end, &s.MaxBookings)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return fmt.Errorf("read session: %w", err)
	default:
		s.EndTime = fromMillis(end)
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
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(
		ctx, query, b.ID, b.SessionID, b.VisitorName, b.VisitorEmail, b.VisitorPhone,
		b.Notes, string(b.Status), toMillis(b.CreatedAt), toMillis(b.UpdatedAt),
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
	active, args := activeIn("status")
	query := `SELECT visitor_email FROM bookings WHERE session_id = ? AND ` + active

	rows, err := tx.QueryContext(ctx, query, append([]any{sessionID}, args...)...)
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

func detailsQuery(where string) (string, []any) {
	cols, args := sessionColumns()
	return `SELECT b.id, b.session_id, b.visitor_name, b.visitor_email, b.visitor_phone,
		b.notes, b.status, b.created_at, b.updated_at, ` + cols + `
		FROM bookings b
		JOIN sessions s ON s.id = b.session_id
		WHERE ` + where, args
}

func scanBookingDetails(row scanner, d *domain.BookingDetails) error {
	b := &d.Booking
	s := &d.Session
	var bCreated, bUpdated, start, end, sCreated, sUpdated int64
	if err := row.Scan(
		&b.ID, &b.SessionID, &b.VisitorName, &b.VisitorEmail, &b.VisitorPhone,
		&b.Notes, &b.Status, &bCreated, &bUpdated,
		&s.ID, &s.OwnerID, &s.Title, &s.Description, &s.Location,
		&start, &end, &s.MaxBookings, &s.IsActive, &s.BookingURL,
		&sCreated, &sUpdated,
		&s.BookingCount,
	); err != nil {
		return err
	}
	b.CreatedAt, b.UpdatedAt = fromMillis(bCreated), fromMillis(bUpdated)
	s.StartTime, s.EndTime = fromMillis(start), fromMillis(end)
	s.CreatedAt, s.UpdatedAt = fromMillis(sCreated), fromMillis(sUpdated)
	return nil
}

func (r *BookingRepository) GetDetails(ctx context.Context, id string) (*domain.BookingDetails, error) {
	query, args := detailsQuery(`b.id = ?`)

	var d domain.BookingDetails
	if err := scanBookingDetails(r.db.QueryRowContext(ctx, query, append(args, id)...), &d); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return &d, nil
}

func (r *BookingRepository) ListBySession(ctx context.Context, sessionID string) ([]*domain.BookingDetails, error) {
	query, args := detailsQuery(`b.session_id = ? ORDER BY b.created_at DESC`)
	return r.list(ctx, "list bookings by session", query, append(args, sessionID))
}

func (r *BookingRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.BookingDetails, error) {
	query, args := detailsQuery(`s.owner_id = ? ORDER BY b.created_at DESC`)
	return r.list(ctx, "list bookings by owner", query, append(args, ownerID))
}

func (r *BookingRepository) list(ctx context.Context, op, query string, args []any) ([]*domain.BookingDetails, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
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
	query := `UPDATE bookings SET status = ?, updated_at = ? WHERE id = ? AND status = ?`

	res, err := r.db.ExecContext(ctx, query, string(to), toMillis(time.Now()), id, string(from))
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if n > 0 {
		return nil
	}

	var current string
	err = r.db.QueryRowContext(ctx, `SELECT status FROM bookings WHERE id = ?`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("check booking status: %w", err)
	}

	return fmt.Errorf("%w: now %s", domain.ErrBookingStatusChanged, current)
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	return expectOneRow(res, domain.ErrBookingNotFound)
}
