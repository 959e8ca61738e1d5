package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"akademikform/internal/auth"
	"akademikform/internal/middleware"
)

func TestMiddlewareRecordsRoutePattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Same chain shape as the server: auth outside, metrics wrapping the
	// mux directly. Auth forwards a request copy, so the pattern the mux
	// records is only visible to a layer inside it.
	var h http.Handler = Middleware(mux)
	h = middleware.Auth(auth.NewStaticResolver())(h)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/projects/abc", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	matched := testutil.ToFloat64(requestTotal.WithLabelValues("GET", "/api/v1/projects/{id}", "200"))
	if matched != 1 {
		t.Errorf("requests_total{path=\"/api/v1/projects/{id}\"} = %v, want 1", matched)
	}
	fallback := testutil.ToFloat64(requestTotal.WithLabelValues("GET", "unmatched", "200"))
	if fallback != 0 {
		t.Errorf("requests_total{path=\"unmatched\"} = %v, want 0", fallback)
	}
}

func TestMiddlewareRecordsStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/v1/projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := Middleware(mux)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/projects/abc", nil))

	got := testutil.ToFloat64(requestTotal.WithLabelValues("DELETE", "/api/v1/projects/{id}", "204"))
	if got != 1 {
		t.Errorf("requests_total{status=\"204\"} = %v, want 1", got)
	}
}
