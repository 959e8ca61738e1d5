package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation failed")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrConflict            = errors.New("conflict")
	ErrProviderUnavailable = errors.New("text provider not configured")
	ErrProvider            = errors.New("text provider request failed")
)

// NotFoundError carries the kind of the missing resource so the API layer
// can emit a machine-readable error tag (project_not_found, etc.).
// An ownership mismatch is reported the same way as a missing resource.
type NotFoundError struct {
	Resource string // "template", "project", "section"
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("'%s' ID'li %s bulunamadı.", e.ID, resourceLabel(e.Resource))
}

// Is allows errors.Is() to match against ErrNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func resourceLabel(resource string) string {
	switch resource {
	case "template":
		return "şablon"
	case "project":
		return "proje"
	case "section":
		return "bölüm"
	default:
		return resource
	}
}
