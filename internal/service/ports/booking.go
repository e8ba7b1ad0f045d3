package ports

import (
	"context"

	"github.com/stpnv0/LazyReserve/internal/domain"
)

// AdmissionFunc decides, from a snapshot read inside the admitting
// transaction, which status a new booking starts in.
type AdmissionFunc func(snap domain.SessionSnapshot) (domain.BookingStatus, error)

type BookingRepo interface {
	// Admit locks the booking's session, builds its snapshot, asks admit for
	// a decision and inserts b only when admitted, all in one transaction.
	Admit(ctx context.Context, b *domain.Booking, admit AdmissionFunc) error
	GetDetails(ctx context.Context, id string) (*domain.BookingDetails, error)
	ListBySession(ctx context.Context, sessionID string) ([]*domain.BookingDetails, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.BookingDetails, error)
	// UpdateStatus moves the booking from one status to another and fails
	// with domain.ErrBookingStatusChanged when it is no longer in from.
	UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) error
	Delete(ctx context.Context, id string) error
}
