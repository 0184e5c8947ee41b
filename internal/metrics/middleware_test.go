package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/saves/{slot}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	pattern := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/saves/{slot}", "202")
	unmatched := HTTPRequestsTotal.WithLabelValues(http.MethodGet, UnmatchedRoute, "404")
	beforePattern := testutil.ToFloat64(pattern)
	beforeUnmatched := testutil.ToFloat64(unmatched)

	for _, path := range []string{"/saves/a", "/saves/b", "/nope"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, beforePattern+2, testutil.ToFloat64(pattern))
	assert.Equal(t, beforeUnmatched+1, testutil.ToFloat64(unmatched))
	assert.Equal(t, float64(0), testutil.ToFloat64(HTTPRequestsInFlight))
}
