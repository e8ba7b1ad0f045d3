package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/LazyReserve/internal/domain"
	"github.com/stpnv0/LazyReserve/internal/handler/dto"
	"github.com/stpnv0/LazyReserve/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type AuthSvc interface {
	Signup(ctx context.Context, input domain.SignupInput) (*domain.AuthResult, error)
	Login(ctx context.Context, email, password string) (*domain.AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, input domain.UpdateProfileInput) (*domain.User, error)
}

type SessionSvc interface {
	Create(ctx context.Context, ownerID string, input domain.CreateSessionInput) (*domain.Session, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Session, error)
	Get(ctx context.Context, id, ownerID string) (*domain.Session, error)
	Update(ctx context.Context, id, ownerID string, input domain.UpdateSessionInput) (*domain.Session, error)
	Delete(ctx context.Context, id, ownerID string) error
	ToggleActive(ctx context.Context, id, ownerID string) (*domain.Session, error)
	GetPublic(ctx context.Context, id string) (*domain.PublicSession, error)
}

type BookingSvc interface {
	Create(ctx context.Context, sessionID string, input domain.CreateBookingInput) (*domain.BookingDetails, error)
	ListBySession(ctx context.Context, sessionID, ownerID string) ([]*domain.BookingDetails, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.BookingDetails, error)
	Get(ctx context.Context, id, ownerID string) (*domain.BookingDetails, error)
	UpdateStatus(ctx context.Context, id, ownerID, rawStatus string) (*domain.BookingDetails, error)
	Delete(ctx context.Context, id, ownerID string) error
}

type Handler struct {
	authService    AuthSvc
	sessionService SessionSvc
	bookingService BookingSvc
}

func NewHandler(authService AuthSvc, sessionService SessionSvc, bookingService BookingSvc) *Handler {
	return &Handler{
		authService:    authService,
		sessionService: sessionService,
		bookingService: bookingService,
	}
}

// pathID validates a uuid path parameter and writes 400 when it is malformed.
func pathID(c *ginext.Context, name, what string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " id"})
		return "", false
	}
	return id, true
}

func parseTime(field, raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errors.New("invalid " + field + " format, expected RFC3339")
	}
	return t, nil
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set(middleware.ErrorKey, err.Error())

	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSessionFull),
		errors.Is(err, domain.ErrDuplicateBooking),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrBookingStatusChanged):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSessionEnded),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrUnknownStatus),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func currentUser(c *ginext.Context) string {
	return middleware.UserID(c)
}
