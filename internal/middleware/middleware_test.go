package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stpnv0/LazyReserve/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func setupRouter(t *testing.T, tokens AccessTokenParser) http.Handler {
	t.Helper()
	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(newTestLogger(t)), Recovery(newTestLogger(t)))

	r.GET("/me", Auth(tokens), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"user_id": UserID(c)})
	})
	r.GET("/panic", func(c *ginext.Context) {
		panic("boom")
	})

	return r
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := auth.NewManager("secret", time.Minute, time.Hour)
	pair, err := tokens.Issue("user-1")
	require.NoError(t, err)
	r := setupRouter(t, tokens)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestAuth_Rejects(t *testing.T) {
	tokens := auth.NewManager("secret", time.Minute, time.Hour)
	pair, err := tokens.Issue("user-1")
	require.NoError(t, err)
	r := setupRouter(t, tokens)

	for name, header := range map[string]string{
		"missing":       "",
		"not bearer":    "Basic abc",
		"garbage":       "Bearer garbage",
		"refresh token": "Bearer " + pair.RefreshToken,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequestID(t *testing.T) {
	r := setupRouter(t, auth.NewManager("secret", time.Minute, time.Hour))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	const id = "7b0a4a3e-6c1f-4d0e-9a56-2f7d7a1b9c11"
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(RequestIDHeader, id)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, id, w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := setupRouter(t, auth.NewManager("secret", time.Minute, time.Hour))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestRecovery_ExposesPanicToRequestLog(t *testing.T) {
	var logged string
	r := ginext.New("test")
	r.Use(RequestID(), func(c *ginext.Context) {
		c.Next()
		logged = c.GetString(ErrorKey)
	}, Recovery(newTestLogger(t)))
	r.GET("/panic", func(c *ginext.Context) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "panic: boom", logged)
	assert.Contains(t, w.Body.String(), w.Header().Get(RequestIDHeader))
	assert.NotContains(t, w.Body.String(), "boom")
}
