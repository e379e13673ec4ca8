package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runRequireRole(role string, allowed ...string) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/todos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}

	handler := RequireRole(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func TestRequireRole(t *testing.T) {
	if err := runRequireRole("admin", "admin"); err != nil {
		t.Fatalf("matching role should pass, got %v", err)
	}
	if err := runRequireRole("user", "admin", "user"); err != nil {
		t.Fatalf("any allowed role should pass, got %v", err)
	}
}

func TestRequireRole_Mismatch(t *testing.T) {
	tests := []struct {
		name string
		role string
	}{
		{"plain user", "user"},
		{"no role set", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runRequireRole(tt.role, "admin")
			he, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected echo.HTTPError, got %v", err)
			}
			// Role mismatch answers 401, matching the login failure path.
			if he.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", he.Code)
			}
		})
	}
}
