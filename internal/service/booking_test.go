package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/LazyReserve/internal/domain"
	"github.com/stpnv0/LazyReserve/internal/service/ports"
	"github.com/stpnv0/LazyReserve/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// admitWith makes the mocked repository run the real gate against snap.
func admitWith(snap domain.SessionSnapshot) func(context.Context, *domain.Booking, ports.AdmissionFunc) error {
	return func(_ context.Context, b *domain.Booking, admit ports.AdmissionFunc) error {
		status, err := admit(snap)
		if err != nil {
			return err
		}
		b.Status = status
		return nil
	}
}

func openSnapshot(capacity int, visitors ...string) domain.SessionSnapshot {
	return domain.SessionSnapshot{
		Found:          true,
		IsActive:       true,
		EndTime:        time.Now().Add(time.Hour),
		MaxBookings:    capacity,
		ActiveCount:    len(visitors),
		ActiveVisitors: visitors,
	}
}

func details(bookingID, ownerID string, status domain.BookingStatus) *domain.BookingDetails {
	return &domain.BookingDetails{
		Booking: domain.Booking{ID: bookingID, SessionID: "s1", Status: status},
		Session: domain.Session{ID: "s1", OwnerID: ownerID, Title: "Consultation", BookingCount: 1},
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, nil, newTestLogger(t))

	var stored *domain.Booking
	bookingRepo.EXPECT().Admit(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, b *domain.Booking, admit ports.AdmissionFunc) error {
			stored = b
			return admitWith(openSnapshot(2))(ctx, b, admit)
		})
	bookingRepo.EXPECT().GetDetails(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id string) (*domain.BookingDetails, error) {
			return &domain.BookingDetails{Booking: *stored}, nil
		})

	got, err := svc.Create(context.Background(), "s1", domain.CreateBookingInput{
		VisitorName:  "  Ann ",
		VisitorEmail: " Ann@Example.COM",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, got.Booking.Status)
	assert.Equal(t, "ann@example.com", got.Booking.VisitorEmail)
	assert.Equal(t, "Ann", got.Booking.VisitorName)
	assert.Equal(t, "s1", got.Booking.SessionID)
	assert.NotEmpty(t, got.Booking.ID)
}

func TestBookingService_Create_GateRejections(t *testing.T) {
	ended := openSnapshot(5)
	ended.EndTime = time.Now().Add(-time.Minute)

	cases := []struct {
		name string
		snap domain.SessionSnapshot
		want error
	}{
		{"not found", domain.SessionSnapshot{}, domain.ErrSessionNotFound},
		{"ended", ended, domain.ErrSessionEnded},
		{"full", openSnapshot(1, "other@example.com"), domain.ErrSessionFull},
		{"duplicate", openSnapshot(5, "ann@example.com"), domain.ErrDuplicateBooking},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bookingRepo := mocks.NewMockBookingRepo(t)
			svc := NewBookingService(bookingRepo, nil, newTestLogger(t))

			bookingRepo.EXPECT().Admit(mock.Anything, mock.Anything, mock.Anything).
				RunAndReturn(admitWith(tc.snap))

			_, err := svc.Create(context.Background(), "s1", domain.CreateBookingInput{
				VisitorName:  "Ann",
				VisitorEmail: "ANN@example.com",
			})

			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBookingService_Create_Validation(t *testing.T) {
	svc := NewBookingService(nil, nil, newTestLogger(t))

	_, err := svc.Create(context.Background(), "s1", domain.CreateBookingInput{VisitorEmail: "a@example.com"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), "s1", domain.CreateBookingInput{VisitorName: "Ann", VisitorEmail: "  "})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_ListBySession(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	sessionRepo := mocks.NewMockSessionRepo(t)
	svc := NewBookingService(bookingRepo, sessionRepo, newTestLogger(t))

	sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Session{ID: "s1", OwnerID: "u1"}, nil)
	bookingRepo.EXPECT().ListBySession(mock.Anything, "s1").
		Return([]*domain.BookingDetails{details("b1", "u1", domain.BookingStatusPending)}, nil)

	list, err := svc.ListBySession(context.Background(), "s1", "u1")

	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestBookingService_ListBySession_Forbidden(t *testing.T) {
	sessionRepo := mocks.NewMockSessionRepo(t)
	svc := NewBookingService(nil, sessionRepo, newTestLogger(t))

	sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Session{ID: "s1", OwnerID: "u1"}, nil)

	_, err := svc.ListBySession(context.Background(), "s1", "intruder")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Get_Forbidden(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, nil, newTestLogger(t))

	bookingRepo.EXPECT().GetDetails(mock.Anything, "b1").Return(details("b1", "u1", domain.BookingStatusPending), nil)

	_, err := svc.Get(context.Background(), "b1", "u2")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_UpdateStatus_Approve(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, nil, newTestLogger(t))

	bookingRepo.EXPECT().GetDetails(mock.Anything, "b1").Return(details("b1", "u1", domain.BookingStatusPending), nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusPending, domain.BookingStatusApproved).Return(nil)

	got, err := svc.UpdateStatus(context.Background(), "b1", "u1", "APPROVED")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApproved, got.Booking.Status)
	assert.Equal(t, 1, got.Session.BookingCount)
}

func TestBookingService_UpdateStatus_RejectFreesSlot(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, nil, newTestLogger(t))

	bookingRepo.EXPECT().GetDetails(mock.Anything, "b1").Return(details("b1", "u1", domain.BookingStatusPending), nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusPending, domain.BookingStatusRejected).Return(nil)

	got, err := svc.UpdateStatus(context.Background(), "b1", "u1", "REJECTED")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusRejected, got.Booking.Status)
	assert.Equal(t, 0, got.Session.BookingCount)
}

func TestBookingService_UpdateStatus_InvalidTransition(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, nil, newTestLogger(t))

	bookingRepo.EXPECT().GetDetails(mock.Anything, "b1").Return(details("b1", "u1", domain.BookingStatusCancelled), nil)

	_, err := svc.UpdateStatus(context.Background(), "b1", "u1", "APPROVED")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "CANCELLED")
}

func TestBookingService_UpdateStatus_UnknownStatus(t *testing.T) {
	svc := NewBookingService(nil, nil, newTestLogger(t))

	_, err := svc.UpdateStatus(context.Background(), "b1", "u1", "approved")

	assert.ErrorIs(t, err, domain.ErrUnknownStatus)
}

func TestBookingService_UpdateStatus_LostRace(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, nil, newTestLogger(t))

	bookingRepo.EXPECT().GetDetails(mock.Anything, "b1").Return(details("b1", "u1", domain.BookingStatusPending), nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusPending, domain.BookingStatusApproved).
		Return(domain.ErrBookingStatusChanged)

	_, err := svc.UpdateStatus(context.Background(), "b1", "u1", "APPROVED")

	assert.ErrorIs(t, err, domain.ErrBookingStatusChanged)
}

func TestBookingService_UpdateStatus_Forbidden(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, nil, newTestLogger(t))

	bookingRepo.EXPECT().GetDetails(mock.Anything, "b1").Return(details("b1", "u1", domain.BookingStatusPending), nil)

	_, err := svc.UpdateStatus(context.Background(), "b1", "u2", "APPROVED")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Delete(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, nil, newTestLogger(t))

	bookingRepo.EXPECT().GetDetails(mock.Anything, "b1").Return(details("b1", "u1", domain.BookingStatusRejected), nil)
	bookingRepo.EXPECT().Delete(mock.Anything, "b1").Return(nil)

	err := svc.Delete(context.Background(), "b1", "u1")

	require.NoError(t, err)
}

func TestBookingService_Delete_NotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, nil, newTestLogger(t))

	bookingRepo.EXPECT().GetDetails(mock.Anything, "b1").Return(nil, domain.ErrBookingNotFound)

	err := svc.Delete(context.Background(), "b1", "u1")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_ListByOwner_RepoError(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewBookingService(bookingRepo, nil, newTestLogger(t))

	bookingRepo.EXPECT().ListByOwner(mock.Anything, "u1").Return(nil, errors.New("db down"))

	_, err := svc.ListByOwner(context.Background(), "u1")

	assert.Error(t, err)
}
