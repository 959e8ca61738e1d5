package service

import (
	"github.com/google/uuid"
)

// newID generates an entity id carrying the entity-kind prefix used
// throughout the API (project-, section-, ws-, rm-, rf-, wi-, rev-).
func newID(prefix string) string {
	return prefix + uuid.NewString()
}
