package handler

import (
	"errors"
	"fmt"
	"net/http"

	"akademikform/internal/domain"
	"akademikform/internal/httputil"
)

// debug controls whether 500 bodies carry fault detail. Set once at
// startup; never enabled in production.
var debug bool

// SetDebug configures fault detail exposure for the whole handler layer.
func SetDebug(enabled bool) {
	debug = enabled
}

// handleError converts domain errors to the standard {error, message}
// response. Every lookup miss surfaces as a 404 naming the missing
// resource kind; anything unanticipated is a generic 500.
func handleError(w http.ResponseWriter, err error) {
	var notFound *domain.NotFoundError

	switch {
	case errors.As(err, &notFound):
		kind := fmt.Sprintf("%s_not_found", notFound.Resource)
		httputil.RespondError(w, http.StatusNotFound, kind, notFound.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, domain.ErrConflict):
		httputil.RespondError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, "unauthorized", err.Error())
	default:
		message := "Bir hata oluştu. Lütfen daha sonra tekrar deneyin."
		if debug {
			message = err.Error()
		}
		httputil.RespondError(w, http.StatusInternalServerError, "internal_server_error", message)
	}
}
