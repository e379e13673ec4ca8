package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn       func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	loginFn          func(ctx context.Context, username, password string) (string, error)
	changePasswordFn func(ctx context.Context, userID int64, oldPassword, newPassword string) error
	profileFn        func(ctx context.Context, userID int64) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	return s.changePasswordFn(ctx, userID, oldPassword, newPassword)
}

func (s *stubAuthService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.profileFn(ctx, userID)
}

func newTestContext(method, target, body, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func validRegisterBody() string {
	return `{"username":"alice","email":"alice@example.com","first_name":"Alice","last_name":"Smith","password":"pw123456","role":"user"}`
}

func TestAuthHandler_Register_Created(t *testing.T) {
	var got ports.RegisterInput
	svc := &stubAuthService{registerFn: func(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
		got = input
		return &domain.User{ID: 1, Username: input.Username}, nil
	}}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(http.MethodPost, "/api/auth/", validRegisterBody(), echo.MIMEApplicationJSON)
	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %s", rec.Body.String())
	}
	if got.Username != "alice" || got.Email != "alice@example.com" || got.Role != "user" {
		t.Fatalf("unexpected input forwarded: %+v", got)
	}
}

func TestAuthHandler_Register_BadPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(http.MethodPost, "/api/auth/", "{not json", echo.MIMEApplicationJSON)
	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	tests := []struct {
		name string
		body string
	}{
		{"short username", `{"username":"ab","email":"a@b.com","first_name":"A","last_name":"B","password":"pw"}`},
		{"bad email", `{"username":"alice","email":"nope","first_name":"A","last_name":"B","password":"pw"}`},
		{"missing password", `{"username":"alice","email":"a@b.com","first_name":"A","last_name":"B"}`},
		{"bad role", `{"username":"alice","email":"a@b.com","first_name":"A","last_name":"B","password":"pw","role":"root"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPost, "/api/auth/", tt.body, echo.MIMEApplicationJSON)
			err := h.Register(c)
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %v", err)
			}
		})
	}
}

func TestAuthHandler_Register_ServiceError(t *testing.T) {
	svc := &stubAuthService{registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
		return nil, domain.ErrUserExists
	}}
	h := NewAuthHandler(svc)

	c, _ := newTestContext(http.MethodPost, "/api/auth/", validRegisterBody(), echo.MIMEApplicationJSON)
	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists to propagate, got %v", err)
	}
}

func TestAuthHandler_Token_Success(t *testing.T) {
	svc := &stubAuthService{loginFn: func(_ context.Context, username, password string) (string, error) {
		if username != "alice" || password != "pw123456" {
			t.Fatalf("unexpected credentials: %s/%s", username, password)
		}
		return "signed-token", nil
	}}
	h := NewAuthHandler(svc)

	form := url.Values{"username": {"alice"}, "password": {"pw123456"}}
	c, rec := newTestContext(http.MethodPost, "/api/auth/token", form.Encode(), echo.MIMEApplicationForm)
	if err := h.Token(c); err != nil {
		t.Fatalf("token: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AccessToken != "signed-token" || resp.TokenType != "bearer" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Token_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	form := url.Values{"username": {"alice"}}
	c, _ := newTestContext(http.MethodPost, "/api/auth/token", form.Encode(), echo.MIMEApplicationForm)
	err := h.Token(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestAuthHandler_Token_ServiceError(t *testing.T) {
	svc := &stubAuthService{loginFn: func(context.Context, string, string) (string, error) {
		return "", domain.ErrInvalidCredentials
	}}
	h := NewAuthHandler(svc)

	form := url.Values{"username": {"alice"}, "password": {"wrong"}}
	c, _ := newTestContext(http.MethodPost, "/api/auth/token", form.Encode(), echo.MIMEApplicationForm)
	if err := h.Token(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}
