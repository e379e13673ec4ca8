package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/todo-api/internal/core/domain"
)

func TestUserHandler_Profile(t *testing.T) {
	svc := &stubAuthService{profileFn: func(_ context.Context, userID int64) (*domain.User, error) {
		if userID != 7 {
			t.Fatalf("unexpected user id %d", userID)
		}
		return &domain.User{
			ID:        7,
			Username:  "alice",
			Email:     "alice@example.com",
			FirstName: "Alice",
			LastName:  "Smith",
			Role:      domain.RoleUser,
			IsActive:  true,
		}, nil
	}}
	h := NewUserHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/api/user/", "", "")
	authenticate(c, 7, domain.RoleUser)

	if err := h.Profile(c); err != nil {
		t.Fatalf("profile: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp profileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != 7 || resp.Username != "alice" || !resp.IsActive {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestUserHandler_Profile_MissingClaims(t *testing.T) {
	h := NewUserHandler(&stubAuthService{})

	c, _ := newTestContext(http.MethodGet, "/api/user/", "", "")
	err := h.Profile(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}

func TestUserHandler_ChangePassword(t *testing.T) {
	var gotOld, gotNew string
	svc := &stubAuthService{changePasswordFn: func(_ context.Context, userID int64, oldPassword, newPassword string) error {
		if userID != 7 {
			t.Fatalf("unexpected user id %d", userID)
		}
		gotOld, gotNew = oldPassword, newPassword
		return nil
	}}
	h := NewUserHandler(svc)

	body := `{"password":"old-pass","new_password":"new-pass-1"}`
	c, rec := newTestContext(http.MethodPut, "/api/user/change_password", body, echo.MIMEApplicationJSON)
	authenticate(c, 7, domain.RoleUser)

	if err := h.ChangePassword(c); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if gotOld != "old-pass" || gotNew != "new-pass-1" {
		t.Fatalf("unexpected passwords forwarded: %q %q", gotOld, gotNew)
	}
}

func TestUserHandler_ChangePassword_Validation(t *testing.T) {
	h := NewUserHandler(&stubAuthService{})

	tests := []struct {
		name string
		body string
	}{
		{"missing current password", `{"new_password":"new-pass-1"}`},
		{"new password too short", `{"password":"old","new_password":"short"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPut, "/api/user/change_password", tt.body, echo.MIMEApplicationJSON)
			authenticate(c, 7, domain.RoleUser)
			err := h.ChangePassword(c)
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %v", err)
			}
		})
	}
}

func TestUserHandler_ChangePassword_WrongOld(t *testing.T) {
	svc := &stubAuthService{changePasswordFn: func(context.Context, int64, string, string) error {
		return domain.ErrInvalidCredentials
	}}
	h := NewUserHandler(svc)

	body := `{"password":"wrong","new_password":"new-pass-1"}`
	c, _ := newTestContext(http.MethodPut, "/api/user/change_password", body, echo.MIMEApplicationJSON)
	authenticate(c, 7, domain.RoleUser)

	if err := h.ChangePassword(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}
