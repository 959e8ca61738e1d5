// Package auth resolves the acting principal for a request. The core only
// ever sees an opaque user id; how that id is established (static stub or
// bearer token) is decided here at the API boundary.
package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// MockUserID is the principal used until real account management lands.
const MockUserID = "user-mock-123"

// Resolver establishes the acting user for a request.
type Resolver interface {
	Resolve(r *http.Request) (string, error)
}

// StaticResolver returns a fixed user id for every request.
type StaticResolver struct {
	UserID string
}

// NewStaticResolver creates a resolver pinned to the mock user.
func NewStaticResolver() *StaticResolver {
	return &StaticResolver{UserID: MockUserID}
}

// Resolve returns the configured user id.
func (s *StaticResolver) Resolve(r *http.Request) (string, error) {
	return s.UserID, nil
}

// JWTResolver verifies HS256 bearer tokens and uses the subject claim as
// the user id.
type JWTResolver struct {
	secret []byte
}

// NewJWTResolver creates a resolver backed by a shared signing secret.
func NewJWTResolver(secret string) *JWTResolver {
	return &JWTResolver{secret: []byte(secret)}
}

// Resolve extracts and verifies the bearer token from the Authorization
// header.
func (j *JWTResolver) Resolve(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", fmt.Errorf("missing Authorization header")
	}
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return "", fmt.Errorf("Authorization header is not a bearer token")
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return j.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return subject, nil
}
