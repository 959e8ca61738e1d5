package middleware

import (
	"net/http"

	"akademikform/internal/auth"
	"akademikform/internal/httputil"
)

// Auth resolves the acting principal and stores its id in the request
// context. Health probes and metrics stay reachable without a principal.
func Auth(resolver auth.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := resolver.Resolve(r)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "unauthorized", err.Error())
				return
			}

			next.ServeHTTP(w, httputil.WithUserID(r, userID))
		})
	}
}

func isPublicPath(path string) bool {
	switch path {
	case "/", "/health", "/ready", "/live", "/metrics",
		"/api/v1/health", "/api/v1/ready", "/api/v1/live":
		return true
	}
	return false
}
