package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
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

func setupRecoveryRouter(t *testing.T) http.Handler {
	t.Helper()

	r := ginext.New("test")
	r.Use(RequestID(), Recovery(newTestLogger(t)))
	r.GET("/boom", func(c *ginext.Context) {
		panic("handler blew up")
	})
	r.GET("/ok", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"request_id": c.GetString("request_id")})
	})
	return r
}

func TestRecovery_PanicBecomesInternalError(t *testing.T) {
	r := setupRecoveryRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "internal server error"}`, w.Body.String())
}

func TestRecovery_PanicStillCarriesRequestID(t *testing.T) {
	r := setupRecoveryRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestRequestID_EchoesCallerID(t *testing.T) {
	r := setupRecoveryRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-7", w.Header().Get(RequestIDHeader))
	assert.JSONEq(t, `{"request_id": "req-7"}`, w.Body.String())
}

func TestRequestID_MintsWhenAbsent(t *testing.T) {
	r := setupRecoveryRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}
