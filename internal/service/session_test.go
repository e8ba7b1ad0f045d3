package service

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/LazyReserve/internal/domain"
	"github.com/stpnv0/LazyReserve/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validSessionInput() domain.CreateSessionInput {
	start := time.Now().Add(24 * time.Hour)
	return domain.CreateSessionInput{
		Title:       "Consultation",
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		MaxBookings: 3,
	}
}

func TestSessionService_Create_Success(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(repo, "https://lazyreserve.app/", newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	s, err := svc.Create(context.Background(), "u1", validSessionInput())

	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "u1", s.OwnerID)
	assert.True(t, s.IsActive)
	assert.Equal(t, 3, s.MaxBookings)
	assert.Equal(t, "https://lazyreserve.app/book/"+s.ID, s.BookingURL)
}

func TestSessionService_Create_Validation(t *testing.T) {
	svc := NewSessionService(nil, "", newTestLogger(t))

	cases := map[string]func(in *domain.CreateSessionInput){
		"empty title":      func(in *domain.CreateSessionInput) { in.Title = "  " },
		"zero capacity":    func(in *domain.CreateSessionInput) { in.MaxBookings = 0 },
		"end before start": func(in *domain.CreateSessionInput) { in.EndTime = in.StartTime.Add(-time.Minute) },
		"end equals start": func(in *domain.CreateSessionInput) { in.EndTime = in.StartTime },
		"start in past": func(in *domain.CreateSessionInput) {
			in.StartTime = time.Now().Add(-time.Hour)
			in.EndTime = time.Now().Add(time.Hour)
		},
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validSessionInput()
			mutate(&in)

			_, err := svc.Create(context.Background(), "u1", in)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestSessionService_Get_Forbidden(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(repo, "", newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Session{ID: "s1", OwnerID: "u1"}, nil)

	_, err := svc.Get(context.Background(), "s1", "u2")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSessionService_Get_NotFound(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(repo, "", newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "s1").Return(nil, domain.ErrSessionNotFound)

	_, err := svc.Get(context.Background(), "s1", "u1")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionService_Update_Partial(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(repo, "", newTestLogger(t))

	start := time.Now().Add(time.Hour)
	existing := &domain.Session{ID: "s1", OwnerID: "u1", Title: "Old", StartTime: start, EndTime: start.Add(time.Hour), MaxBookings: 2}
	repo.EXPECT().GetByID(mock.Anything, "s1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	title := " New "
	capacity := 5
	got, err := svc.Update(context.Background(), "s1", "u1", domain.UpdateSessionInput{Title: &title, MaxBookings: &capacity})

	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, 5, got.MaxBookings)
	assert.Equal(t, start.UTC(), got.StartTime)
}

func TestSessionService_Update_TimeOrder(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(repo, "", newTestLogger(t))

	start := time.Now().Add(time.Hour)
	repo.EXPECT().GetByID(mock.Anything, "s1").
		Return(&domain.Session{ID: "s1", OwnerID: "u1", StartTime: start, EndTime: start.Add(time.Hour), MaxBookings: 1}, nil)

	end := start.Add(-time.Minute)
	_, err := svc.Update(context.Background(), "s1", "u1", domain.UpdateSessionInput{EndTime: &end})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSessionService_Update_ZeroCapacity(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(repo, "", newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Session{ID: "s1", OwnerID: "u1", MaxBookings: 1}, nil)

	zero := 0
	_, err := svc.Update(context.Background(), "s1", "u1", domain.UpdateSessionInput{MaxBookings: &zero})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSessionService_ToggleActive(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(repo, "", newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Session{ID: "s1", OwnerID: "u1", IsActive: true}, nil)
	repo.EXPECT().SetActive(mock.Anything, "s1", false).Return(nil)

	got, err := svc.ToggleActive(context.Background(), "s1", "u1")

	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestSessionService_Delete_Forbidden(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(repo, "", newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Session{ID: "s1", OwnerID: "u1"}, nil)

	err := svc.Delete(context.Background(), "s1", "u2")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSessionService_Delete_Success(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(repo, "", newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Session{ID: "s1", OwnerID: "u1"}, nil)
	repo.EXPECT().Delete(mock.Anything, "s1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "s1", "u1"))
}

func TestSessionService_GetPublic(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(repo, "", newTestLogger(t))

	end := time.Now().Add(time.Hour)
	repo.EXPECT().GetByID(mock.Anything, "s1").
		Return(&domain.Session{ID: "s1", IsActive: true, EndTime: end, MaxBookings: 2, BookingCount: 1}, nil)

	got, err := svc.GetPublic(context.Background(), "s1")

	require.NoError(t, err)
	assert.True(t, got.IsAvailable)
	assert.Equal(t, 1, got.Session.BookingCount)
}

func TestSessionService_GetPublic_FullIsUnavailable(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(repo, "", newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "s1").
		Return(&domain.Session{ID: "s1", IsActive: true, EndTime: time.Now().Add(time.Hour), MaxBookings: 2, BookingCount: 2}, nil)

	got, err := svc.GetPublic(context.Background(), "s1")

	require.NoError(t, err)
	assert.False(t, got.IsAvailable)
}

func TestSessionService_GetPublic_Inactive(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(repo, "", newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Session{ID: "s1", IsActive: false}, nil)

	_, err := svc.GetPublic(context.Background(), "s1")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
