package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/LazyReserve/internal/domain"
	"github.com/stpnv0/LazyReserve/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	sessionRepo ports.SessionRepo
	logger      logger.Logger
	now         func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	sessionRepo ports.SessionRepo,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// Create books a slot for a visitor. The capacity gate runs inside the
// repository transaction, against a snapshot taken under the session lock.
func (s *BookingService) Create(ctx context.Context, sessionID string, input domain.CreateBookingInput) (*domain.BookingDetails, error) {
	name := strings.TrimSpace(input.VisitorName)
	if name == "" {
		return nil, fmt.Errorf("%w: visitor_name is required", domain.ErrValidation)
	}
	email := domain.NormalizeEmail(input.VisitorEmail)
	if email == "" {
		return nil, fmt.Errorf("%w: visitor_email is required", domain.ErrValidation)
	}

	now := s.now().UTC()
	booking := &domain.Booking{
		ID:           uuid.New().String(),
		SessionID:    sessionID,
		VisitorName:  name,
		VisitorEmail: email,
		VisitorPhone: input.VisitorPhone,
		Notes:        input.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := s.bookingRepo.Admit(ctx, booking, func(snap domain.SessionSnapshot) (domain.BookingStatus, error) {
		return domain.EvaluateAdmission(snap, email, s.now())
	})
	if err != nil {
		s.logger.LogAttrs(ctx, logger.InfoLevel, "booking rejected",
			logger.String("session_id", sessionID),
			logger.String("reason", err.Error()),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("session_id", sessionID),
	)

	details, err := s.bookingRepo.GetDetails(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return details, nil
}

func (s *BookingService) ListBySession(ctx context.Context, sessionID, ownerID string) ([]*domain.BookingDetails, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}

	return s.bookingRepo.ListBySession(ctx, sessionID)
}

func (s *BookingService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.BookingDetails, error) {
	return s.bookingRepo.ListByOwner(ctx, ownerID)
}

func (s *BookingService) Get(ctx context.Context, id, ownerID string) (*domain.BookingDetails, error) {
	details, err := s.bookingRepo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if details.Session.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}

	return details, nil
}

// UpdateStatus applies a host's status request. The write only succeeds if
// the booking is still in the status the decision was made against.
func (s *BookingService) UpdateStatus(ctx context.Context, id, ownerID, rawStatus string) (*domain.BookingDetails, error) {
	requested, err := domain.ParseBookingStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	details, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	current := details.Booking.Status
	next, err := domain.RequestTransition(current, requested)
	if err != nil {
		return nil, err
	}

	if err = s.bookingRepo.UpdateStatus(ctx, id, current, next); err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	details.Booking.Status = next
	details.Booking.UpdatedAt = s.now().UTC()
	if current.Active() && !next.Active() {
		details.Session.BookingCount--
	}

	s.logger.Info("booking status changed",
		logger.String("booking_id", id),
		logger.String("from", string(current)),
		logger.String("to", string(next)),
	)

	return details, nil
}

func (s *BookingService) Delete(ctx context.Context, id, ownerID string) error {
	if _, err := s.Get(ctx, id, ownerID); err != nil {
		return err
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	s.logger.Info("booking deleted", logger.String("booking_id", id))

	return nil
}
