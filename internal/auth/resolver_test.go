package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret, subject string, method jwt.SigningMethod) string {
	t.Helper()
	token := jwt.NewWithClaims(method, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestStaticResolver(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)

	userID, err := NewStaticResolver().Resolve(r)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if userID != MockUserID {
		t.Errorf("userID = %q, want %q", userID, MockUserID)
	}
}

func TestJWTResolver(t *testing.T) {
	const secret = "test-secret"
	resolver := NewJWTResolver(secret)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	r.Header.Set("Authorization", "Bearer "+signToken(t, secret, "user-42", jwt.SigningMethodHS256))

	userID, err := resolver.Resolve(r)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if userID != "user-42" {
		t.Errorf("userID = %q, want user-42", userID)
	}
}

func TestJWTResolverRejects(t *testing.T) {
	const secret = "test-secret"
	resolver := NewJWTResolver(secret)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", "user-42", jwt.SigningMethodHS256)},
		{"no subject", "Bearer " + signToken(t, secret, "", jwt.SigningMethodHS256)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			if _, err := resolver.Resolve(r); err == nil {
				t.Error("Resolve() succeeded, want error")
			}
		})
	}
}
