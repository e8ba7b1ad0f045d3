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

type SessionService struct {
	repo          ports.SessionRepo
	publicBaseURL string
	logger        logger.Logger
	now           func() time.Time
}

func NewSessionService(repo ports.SessionRepo, publicBaseURL string, logger logger.Logger) *SessionService {
	return &SessionService{
		repo:          repo,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
		now:           time.Now,
	}
}

func (s *SessionService) Create(ctx context.Context, ownerID string, input domain.CreateSessionInput) (*domain.Session, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.MaxBookings < 1 {
		return nil, fmt.Errorf("%w: max_bookings must be at least 1", domain.ErrValidation)
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, fmt.Errorf("%w: end_time must be after start_time", domain.ErrValidation)
	}
	now := s.now().UTC()
	if !input.StartTime.After(now) {
		return nil, fmt.Errorf("%w: start_time must be in the future", domain.ErrValidation)
	}

	id := uuid.New().String()
	session := &domain.Session{
		ID:          id,
		OwnerID:     ownerID,
		Title:       title,
		Description: input.Description,
		Location:    input.Location,
		StartTime:   input.StartTime.UTC(),
		EndTime:     input.EndTime.UTC(),
		MaxBookings: input.MaxBookings,
		IsActive:    true,
		BookingURL:  s.publicBaseURL + "/book/" + id,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info("session created",
		logger.String("session_id", session.ID),
		logger.String("owner_id", ownerID),
		logger.Int("max_bookings", session.MaxBookings),
	)

	return session, nil
}

func (s *SessionService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Session, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *SessionService) Get(ctx context.Context, id, ownerID string) (*domain.Session, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}

	return session, nil
}

func (s *SessionService) Update(ctx context.Context, id, ownerID string, input domain.UpdateSessionInput) (*domain.Session, error) {
	session, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title must not be empty", domain.ErrValidation)
		}
		input.Title = &title
	}
	if input.MaxBookings != nil && *input.MaxBookings < 1 {
		return nil, fmt.Errorf("%w: max_bookings must be at least 1", domain.ErrValidation)
	}

	input.Apply(session)
	if (input.StartTime != nil || input.EndTime != nil) && !session.EndTime.After(session.StartTime) {
		return nil, fmt.Errorf("%w: end_time must be after start_time", domain.ErrValidation)
	}
	session.StartTime = session.StartTime.UTC()
	session.EndTime = session.EndTime.UTC()
	session.UpdatedAt = s.now().UTC()

	if err = s.repo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	return session, nil
}

func (s *SessionService) Delete(ctx context.Context, id, ownerID string) error {
	if _, err := s.Get(ctx, id, ownerID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	s.logger.Info("session deleted",
		logger.String("session_id", id),
		logger.String("owner_id", ownerID),
	)

	return nil
}

func (s *SessionService) ToggleActive(ctx context.Context, id, ownerID string) (*domain.Session, error) {
	session, err := s.Get(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	active := !session.IsActive
	if err = s.repo.SetActive(ctx, id, active); err != nil {
		return nil, fmt.Errorf("toggle session: %w", err)
	}
	session.IsActive = active

	s.logger.Info("session toggled",
		logger.String("session_id", id),
		logger.Any("is_active", active),
	)

	return session, nil
}

// GetPublic returns an active session as a visitor sees it. Inactive
// sessions are reported as missing.
func (s *SessionService) GetPublic(ctx context.Context, id string) (*domain.PublicSession, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !session.IsActive {
		return nil, domain.ErrSessionNotFound
	}

	return &domain.PublicSession{
		Session:     *session,
		IsAvailable: session.Available(s.now()),
	}, nil
}
