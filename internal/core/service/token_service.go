package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

// TokenService issues and verifies HS256-signed access tokens. The signing
// secret is read once at startup and never changes afterwards.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue encodes the user's username, id, and role into a signed token that
// expires ttl from now.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.Username,
		"id":   user.ID,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry and extracts the identity claims.
// Tokens missing the subject or id claim are rejected even when the
// signature is valid.
func (s *TokenService) Verify(tokenString string) (*ports.Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tkn.Valid {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	username, err := claims.GetSubject()
	if err != nil || username == "" {
		return nil, fmt.Errorf("%w: missing subject", domain.ErrInvalidToken)
	}
	id, ok := claims["id"].(float64)
	if !ok || id < 1 {
		return nil, fmt.Errorf("%w: missing subject id", domain.ErrInvalidToken)
	}

	// Role is optional in the payload, but when present it must be a
	// recognised value.
	var role domain.Role
	if raw, ok := claims["role"]; ok {
		str, _ := raw.(string)
		role, err = domain.ParseRole(str)
		if err != nil {
			return nil, fmt.Errorf("%w: unrecognised role %q", domain.ErrInvalidToken, str)
		}
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, fmt.Errorf("%w: missing expiry", domain.ErrInvalidToken)
	}

	return &ports.Claims{
		Username:  username,
		UserID:    int64(id),
		Role:      role,
		ExpiresAt: exp.Time,
	}, nil
}
