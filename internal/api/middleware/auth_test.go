package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

type stubTokenService struct {
	verifyFn func(token string) (*ports.Claims, error)
}

func (s *stubTokenService) Issue(*domain.User) (string, error) {
	return "", nil
}

func (s *stubTokenService) Verify(token string) (*ports.Claims, error) {
	return s.verifyFn(token)
}

func runAuth(tokens ports.TokenService, header string) (echo.Context, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/todos/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(tokens)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func TestAuth_ValidToken(t *testing.T) {
	claims := &ports.Claims{
		Username:  "alice",
		UserID:    42,
		Role:      domain.RoleAdmin,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	tokens := &stubTokenService{verifyFn: func(token string) (*ports.Claims, error) {
		if token != "good-token" {
			t.Fatalf("unexpected token passed to verify: %q", token)
		}
		return claims, nil
	}}

	c, err := runAuth(tokens, "Bearer good-token")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got, _ := c.Get(ClaimsKey).(*ports.Claims); got != claims {
		t.Fatalf("claims not stored in context")
	}
	if c.Get("username") != "alice" || c.Get("role") != "admin" {
		t.Fatalf("username/role not stored: %v %v", c.Get("username"), c.Get("role"))
	}
}

func TestAuth_CaseInsensitiveScheme(t *testing.T) {
	tokens := &stubTokenService{verifyFn: func(string) (*ports.Claims, error) {
		return &ports.Claims{Username: "bob", UserID: 1, Role: domain.RoleUser}, nil
	}}
	if _, err := runAuth(tokens, "bearer some-token"); err != nil {
		t.Fatalf("lowercase scheme should be accepted, got %v", err)
	}
}

func TestAuth_Failures(t *testing.T) {
	tokens := &stubTokenService{verifyFn: func(string) (*ports.Claims, error) {
		return nil, domain.ErrInvalidToken
	}}

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"no token", "Bearer"},
		{"rejected token", "Bearer expired-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runAuth(tokens, tt.header)
			he, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected echo.HTTPError, got %v", err)
			}
			if he.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", he.Code)
			}
		})
	}
}
