package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"akademikform/internal/auth"
	"akademikform/internal/httputil"
)

// failingResolver rejects every request.
type failingResolver struct{}

func (failingResolver) Resolve(r *http.Request) (string, error) {
	return "", fmt.Errorf("no principal")
}

func TestAuthInjectsUserID(t *testing.T) {
	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = httputil.GetUserID(r)
	})

	handler := Auth(auth.NewStaticResolver())(next)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if gotUserID != auth.MockUserID {
		t.Errorf("userID = %q, want %q", gotUserID, auth.MockUserID)
	}
}

func TestAuthRejectsWithoutPrincipal(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached without a principal")
	})

	handler := Auth(failingResolver{})(next)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthSkipsPublicPaths(t *testing.T) {
	publicPaths := []string{"/", "/health", "/ready", "/live", "/metrics", "/api/v1/health"}

	for _, path := range publicPaths {
		t.Run(path, func(t *testing.T) {
			reached := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
			})

			handler := Auth(failingResolver{})(next)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			if !reached {
				t.Errorf("%s was gated behind principal resolution", path)
			}
		})
	}
}
