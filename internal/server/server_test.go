package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func serve(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "127.0.0.1:5555"
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := serve(t, NewServer(":0", nil), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
}

func TestReadyz(t *testing.T) {
	t.Run("ready without a checker", func(t *testing.T) {
		rec := serve(t, NewServer(":0", nil), "/readyz")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ready"}`, rec.Body.String())
	})

	t.Run("ready when the backend answers", func(t *testing.T) {
		rec := serve(t, NewServer(":0", pingFunc(func(context.Context) error { return nil })), "/readyz")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unavailable when the backend fails", func(t *testing.T) {
		rec := serve(t, NewServer(":0", pingFunc(func(context.Context) error { return errors.New("connection refused") })), "/readyz")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"unavailable","error":"connection refused"}`, rec.Body.String())
	})
}

func TestMetricsEndpoint(t *testing.T) {
	s := NewServer(":0", nil)
	serve(t, s, "/healthz")

	rec := serve(t, s, "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestRun_StopsOnCancel(t *testing.T) {
	s := NewServer("127.0.0.1:0", nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	cancel()

	assert.NoError(t, <-done)
}
