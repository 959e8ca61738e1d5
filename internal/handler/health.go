package handler

import (
	"context"
	"net/http"
	"time"

	"akademikform/internal/httputil"
)

// ServiceVersion is reported by the probes and the root banner.
const ServiceVersion = "1.0.0"

// DBPinger reports database reachability. Nil when the server runs on the
// in-memory store.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness/readiness probes and the root banner.
type HealthHandler struct {
	environment       string
	providerAvailable bool
	db                DBPinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(environment string, providerAvailable bool, db DBPinger) *HealthHandler {
	return &HealthHandler{
		environment:       environment,
		providerAvailable: providerAvailable,
		db:                db,
	}
}

// Root is the service banner
// GET /
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]any{
		"message": "AkademikForm API çalışıyor!",
		"status":  "active",
		"version": ServiceVersion,
	})
}

// Health reports basic service health
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]any{
		"status":      "healthy",
		"service":     "akademikform-api",
		"version":     ServiceVersion,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.environment,
	})
}

// Ready reports whether dependencies are ready to take traffic
// GET /ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{
		"api": "ready",
	}
	if h.providerAvailable {
		checks["text_provider"] = "configured"
	} else {
		checks["text_provider"] = "not_configured"
	}
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			checks["database"] = "disconnected"
		} else {
			checks["database"] = "connected"
		}
	}

	status := "ready"
	for _, v := range checks {
		if v != "ready" && v != "configured" && v != "connected" {
			status = "not_ready"
			break
		}
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]any{
		"status":    status,
		"checks":    checks,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Live is the liveness probe
// GET /live
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]any{
		"status":    "alive",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
