package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/LazyReserve/internal/auth"
	"github.com/stpnv0/LazyReserve/internal/domain"
	"github.com/stpnv0/LazyReserve/internal/handler/dto"
	hmocks "github.com/stpnv0/LazyReserve/internal/handler/mocks"
	"github.com/stpnv0/LazyReserve/internal/middleware"
	"github.com/stpnv0/LazyReserve/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const hostID = "host-1"

type testEnv struct {
	authSvc    *hmocks.MockAuthSvc
	sessionSvc *hmocks.MockSessionSvc
	bookingSvc *hmocks.MockBookingSvc
	router     http.Handler
	token      string
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	authSvc := hmocks.NewMockAuthSvc(t)
	sessionSvc := hmocks.NewMockSessionSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)

	tokens := auth.NewManager("test-secret", time.Minute, time.Hour)
	pair, err := tokens.Issue(hostID)
	require.NoError(t, err)

	h := NewHandler(authSvc, sessionSvc, bookingSvc)
	r := router.InitRouter("test", h, middleware.Auth(tokens))

	return &testEnv{
		authSvc:    authSvc,
		sessionSvc: sessionSvc,
		bookingSvc: bookingSvc,
		router:     r,
		token:      pair.AccessToken,
	}
}

func (e *testEnv) do(method, path string, body any, authed bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func sampleSession(id string) *domain.Session {
	start := time.Now().Add(24 * time.Hour).UTC()
	return &domain.Session{
		ID:          id,
		OwnerID:     hostID,
		Title:       "Consultation",
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		MaxBookings: 2,
		IsActive:    true,
		BookingURL:  "http://localhost:3000/book/" + id,
	}
}

func sampleBooking(id, sessionID string, status domain.BookingStatus) *domain.BookingDetails {
	return &domain.BookingDetails{
		Booking: domain.Booking{
			ID:           id,
			SessionID:    sessionID,
			VisitorName:  "Ann",
			VisitorEmail: "ann@example.com",
			Status:       status,
			CreatedAt:    time.Now(),
		},
		Session: *sampleSession(sessionID),
	}
}

// --- Auth ---

func TestHandler_Signup_Success(t *testing.T) {
	env := setupRouter(t)

	env.authSvc.EXPECT().Signup(mock.Anything, mock.MatchedBy(func(in domain.SignupInput) bool {
		return in.Email == "host@example.com" && in.Password == "longenough"
	})).Return(&domain.AuthResult{
		Tokens: domain.TokenPair{AccessToken: "a", RefreshToken: "r"},
		User:   domain.User{ID: hostID, Email: "host@example.com"},
	}, nil)

	w := env.do(http.MethodPost, "/api/auth/signup",
		map[string]string{"email": "host@example.com", "password": "longenough"}, false)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a", resp.AccessToken)
	assert.Equal(t, hostID, resp.User.ID)
}

func TestHandler_Signup_BadRequest(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/auth/signup",
		map[string]string{"email": "not-an-email", "password": "longenough"}, false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Signup_EmailTaken(t *testing.T) {
	env := setupRouter(t)

	env.authSvc.EXPECT().Signup(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := env.do(http.MethodPost, "/api/auth/signup",
		map[string]string{"email": "host@example.com", "password": "longenough"}, false)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	env := setupRouter(t)

	env.authSvc.EXPECT().Login(mock.Anything, "host@example.com", "wrong").Return(nil, domain.ErrInvalidCredentials)

	w := env.do(http.MethodPost, "/api/auth/login",
		map[string]string{"email": "host@example.com", "password": "wrong"}, false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_GetProfile_RequiresAuth(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodGet, "/api/auth/profile", nil, false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_GetProfile_Success(t *testing.T) {
	env := setupRouter(t)

	env.authSvc.EXPECT().Profile(mock.Anything, hostID).Return(&domain.User{ID: hostID, Email: "host@example.com"}, nil)

	w := env.do(http.MethodGet, "/api/auth/profile", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "host@example.com")
}

func TestHandler_UpdateProfile_Success(t *testing.T) {
	env := setupRouter(t)
	name := "Dr. Smith"

	env.authSvc.EXPECT().UpdateProfile(mock.Anything, hostID, mock.MatchedBy(func(in domain.UpdateProfileInput) bool {
		return in.Name != nil && *in.Name == name && in.Phone == nil
	})).Return(&domain.User{ID: hostID, Email: "host@example.com", Name: &name}, nil)

	w := env.do(http.MethodPut, "/api/auth/profile", map[string]string{"name": name}, true)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Name)
	assert.Equal(t, name, *resp.Name)
}

func TestHandler_UpdateProfile_UserGone(t *testing.T) {
	env := setupRouter(t)

	env.authSvc.EXPECT().UpdateProfile(mock.Anything, hostID, mock.Anything).Return(nil, domain.ErrUserNotFound)

	w := env.do(http.MethodPut, "/api/auth/profile", map[string]string{"phone": "+100"}, true)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Sessions ---

func TestHandler_CreateSession_Success(t *testing.T) {
	env := setupRouter(t)
	id := uuid.New().String()
	s := sampleSession(id)

	env.sessionSvc.EXPECT().Create(mock.Anything, hostID, mock.MatchedBy(func(in domain.CreateSessionInput) bool {
		return in.Title == "Consultation" && in.MaxBookings == 2 && in.EndTime.After(in.StartTime)
	})).Return(s, nil)

	w := env.do(http.MethodPost, "/api/sessions", map[string]any{
		"title":        "Consultation",
		"start_time":   s.StartTime.Format(time.RFC3339),
		"end_time":     s.EndTime.Format(time.RFC3339),
		"max_bookings": 2,
	}, true)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, s.BookingURL, resp.BookingURL)
}

func TestHandler_CreateSession_InvalidTime(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/sessions", map[string]any{
		"title":        "Consultation",
		"start_time":   "tomorrow",
		"end_time":     "2030-01-01T10:00:00Z",
		"max_bookings": 2,
	}, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "start_time")
}

func TestHandler_CreateSession_ZeroCapacity(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/sessions", map[string]any{
		"title":        "Consultation",
		"start_time":   "2030-01-01T09:00:00Z",
		"end_time":     "2030-01-01T10:00:00Z",
		"max_bookings": 0,
	}, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListSessions_Success(t *testing.T) {
	env := setupRouter(t)

	env.sessionSvc.EXPECT().ListByOwner(mock.Anything, hostID).Return([]*domain.Session{
		sampleSession(uuid.New().String()),
		sampleSession(uuid.New().String()),
	}, nil)

	w := env.do(http.MethodGet, "/api/sessions", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_ListSessions_RequiresAuth(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodGet, "/api/sessions", nil, false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_ListSessions_InternalError(t *testing.T) {
	env := setupRouter(t)

	env.sessionSvc.EXPECT().ListByOwner(mock.Anything, hostID).Return(nil, errors.New("pool exhausted"))

	w := env.do(http.MethodGet, "/api/sessions", nil, true)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "pool exhausted")
}

func TestHandler_DeleteSession_Success(t *testing.T) {
	env := setupRouter(t)
	id := uuid.New().String()

	env.sessionSvc.EXPECT().Delete(mock.Anything, id, hostID).Return(nil)

	w := env.do(http.MethodDelete, "/api/sessions/"+id, nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DeleteSession_Forbidden(t *testing.T) {
	env := setupRouter(t)
	id := uuid.New().String()

	env.sessionSvc.EXPECT().Delete(mock.Anything, id, hostID).Return(domain.ErrForbidden)

	w := env.do(http.MethodDelete, "/api/sessions/"+id, nil, true)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ToggleSession_Success(t *testing.T) {
	env := setupRouter(t)
	id := uuid.New().String()
	s := sampleSession(id)
	s.IsActive = false

	env.sessionSvc.EXPECT().ToggleActive(mock.Anything, id, hostID).Return(s, nil)

	w := env.do(http.MethodPut, "/api/sessions/"+id+"/toggle-active", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.IsActive)
}

func TestHandler_ToggleSession_NotFound(t *testing.T) {
	env := setupRouter(t)
	id := uuid.New().String()

	env.sessionSvc.EXPECT().ToggleActive(mock.Anything, id, hostID).Return(nil, domain.ErrSessionNotFound)

	w := env.do(http.MethodPut, "/api/sessions/"+id+"/toggle-active", nil, true)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetSession_InvalidID(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodGet, "/api/sessions/not-a-uuid", nil, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetSession_Forbidden(t *testing.T) {
	env := setupRouter(t)
	id := uuid.New().String()

	env.sessionSvc.EXPECT().Get(mock.Anything, id, hostID).Return(nil, domain.ErrForbidden)

	w := env.do(http.MethodGet, "/api/sessions/"+id, nil, true)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_UpdateSession_PartialTimes(t *testing.T) {
	env := setupRouter(t)
	id := uuid.New().String()

	env.sessionSvc.EXPECT().Update(mock.Anything, id, hostID, mock.MatchedBy(func(in domain.UpdateSessionInput) bool {
		return in.StartTime == nil && in.EndTime != nil && in.Title == nil
	})).Return(sampleSession(id), nil)

	w := env.do(http.MethodPut, "/api/sessions/"+id, map[string]any{
		"end_time": "2030-01-01T10:00:00Z",
	}, true)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetPublicSession(t *testing.T) {
	env := setupRouter(t)
	id := uuid.New().String()
	s := sampleSession(id)
	s.BookingCount = 1

	env.sessionSvc.EXPECT().GetPublic(mock.Anything, id).Return(&domain.PublicSession{Session: *s, IsAvailable: true}, nil)

	w := env.do(http.MethodGet, "/api/public/sessions/"+id, nil, false)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.PublicSessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsAvailable)
	assert.Equal(t, 1, resp.BookingCount)
	assert.NotContains(t, w.Body.String(), hostID)
}

func TestHandler_GetPublicSession_NotFound(t *testing.T) {
	env := setupRouter(t)
	id := uuid.New().String()

	env.sessionSvc.EXPECT().GetPublic(mock.Anything, id).Return(nil, domain.ErrSessionNotFound)

	w := env.do(http.MethodGet, "/api/public/sessions/"+id, nil, false)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	env := setupRouter(t)
	sessionID := uuid.New().String()
	bookingID := uuid.New().String()

	env.bookingSvc.EXPECT().Create(mock.Anything, sessionID, domain.CreateBookingInput{
		VisitorName:  "Ann",
		VisitorEmail: "ann@example.com",
	}).Return(sampleBooking(bookingID, sessionID, domain.BookingStatusPending), nil)

	w := env.do(http.MethodPost, "/api/bookings/sessions/"+sessionID,
		map[string]string{"visitor_name": "Ann", "visitor_email": "ann@example.com"}, false)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.PublicBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, bookingID, resp.ID)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "Consultation", resp.SessionTitle)
}

func TestHandler_CreateBooking_GateErrors(t *testing.T) {
	cases := map[string]struct {
		err  error
		code int
	}{
		"not found": {domain.ErrSessionNotFound, http.StatusNotFound},
		"ended":     {domain.ErrSessionEnded, http.StatusBadRequest},
		"full":      {domain.ErrSessionFull, http.StatusConflict},
		"duplicate": {domain.ErrDuplicateBooking, http.StatusConflict},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			env := setupRouter(t)
			sessionID := uuid.New().String()

			env.bookingSvc.EXPECT().Create(mock.Anything, sessionID, mock.Anything).Return(nil, tc.err)

			w := env.do(http.MethodPost, "/api/bookings/sessions/"+sessionID,
				map[string]string{"visitor_name": "Ann", "visitor_email": "ann@example.com"}, false)

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestHandler_CreateBooking_InvalidEmail(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/bookings/sessions/"+uuid.New().String(),
		map[string]string{"visitor_name": "Ann", "visitor_email": "nope"}, false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListSessionBookings_RequiresAuth(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodGet, "/api/bookings/sessions/"+uuid.New().String(), nil, false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_ListBookings_Success(t *testing.T) {
	env := setupRouter(t)
	sessionID := uuid.New().String()

	env.bookingSvc.EXPECT().ListByOwner(mock.Anything, hostID).Return([]*domain.BookingDetails{
		sampleBooking(uuid.New().String(), sessionID, domain.BookingStatusPending),
		sampleBooking(uuid.New().String(), sessionID, domain.BookingStatusApproved),
	}, nil)

	w := env.do(http.MethodGet, "/api/bookings", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_GetBooking_Success(t *testing.T) {
	env := setupRouter(t)
	id := uuid.New().String()
	sessionID := uuid.New().String()

	env.bookingSvc.EXPECT().Get(mock.Anything, id, hostID).
		Return(sampleBooking(id, sessionID, domain.BookingStatusApproved), nil)

	w := env.do(http.MethodGet, "/api/bookings/"+id, nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, sessionID, resp.Session.ID)
	assert.Equal(t, "APPROVED", resp.Status)
}

func TestHandler_GetBooking_Forbidden(t *testing.T) {
	env := setupRouter(t)
	id := uuid.New().String()

	env.bookingSvc.EXPECT().Get(mock.Anything, id, hostID).Return(nil, domain.ErrForbidden)

	w := env.do(http.MethodGet, "/api/bookings/"+id, nil, true)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_UpdateBookingStatus_Success(t *testing.T) {
	env := setupRouter(t)
	id := uuid.New().String()

	env.bookingSvc.EXPECT().UpdateStatus(mock.Anything, id, hostID, "APPROVED").
		Return(sampleBooking(id, uuid.New().String(), domain.BookingStatusApproved), nil)

	w := env.do(http.MethodPatch, "/api/bookings/"+id+"/status", map[string]string{"status": "APPROVED"}, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "APPROVED")
}

func TestHandler_UpdateBookingStatus_Errors(t *testing.T) {
	cases := map[string]struct {
		err  error
		code int
	}{
		"invalid transition": {
			fmt.Errorf("%w: cannot change status from REJECTED to APPROVED", domain.ErrInvalidTransition),
			http.StatusBadRequest,
		},
		"unknown status": {domain.ErrUnknownStatus, http.StatusBadRequest},
		"lost race":      {domain.ErrBookingStatusChanged, http.StatusConflict},
		"forbidden":      {domain.ErrForbidden, http.StatusForbidden},
		"not found":      {domain.ErrBookingNotFound, http.StatusNotFound},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			env := setupRouter(t)
			id := uuid.New().String()

			env.bookingSvc.EXPECT().UpdateStatus(mock.Anything, id, hostID, mock.Anything).Return(nil, tc.err)

			w := env.do(http.MethodPatch, "/api/bookings/"+id+"/status", map[string]string{"status": "APPROVED"}, true)

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestHandler_DeleteBooking(t *testing.T) {
	env := setupRouter(t)
	id := uuid.New().String()

	env.bookingSvc.EXPECT().Delete(mock.Anything, id, hostID).Return(nil)

	w := env.do(http.MethodDelete, "/api/bookings/"+id, nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	env := setupRouter(t)

	env.bookingSvc.EXPECT().ListByOwner(mock.Anything, hostID).Return(nil, errors.New("connection reset"))

	w := env.do(http.MethodGet, "/api/bookings", nil, true)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestRouter_Health(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodGet, "/health", nil, false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
