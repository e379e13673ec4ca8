package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

// LoginThrottle limits repeated failed logins per username. Implementations
// are expected to fail open: a throttle error never blocks a login.
type LoginThrottle interface {
	TooMany(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// AuthService implements registration, login, and account self-service.
type AuthService struct {
	repo     ports.UserRepository
	tokens   ports.TokenService
	throttle LoginThrottle       // nil disables throttling
	audit    ports.AuditRecorder // nil disables the audit trail
	log      zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, throttle LoginThrottle, audit ports.AuditRecorder, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, throttle: throttle, audit: audit, log: log}
}

// Register creates a new active account with a bcrypt hash of the password.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, input.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:          input.Email,
		Username:       input.Username,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		HashedPassword: string(hash),
		IsActive:       true,
		Role:           role,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.record(domain.AuditEntry{ActorID: created.ID, Action: domain.AuditUserRegistered})
	s.log.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Login verifies credentials and returns a signed access token. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		tooMany, err := s.throttle.TooMany(ctx, username)
		if err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("throttle check failed, allowing login")
		} else if tooMany {
			return "", domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, username)
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		s.recordFailure(ctx, username)
		return "", domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, username); err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("failed to reset throttle counter")
		}
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// ChangePassword re-verifies the old password before storing a hash of the
// new one.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(oldPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}

	s.record(domain.AuditEntry{ActorID: userID, Action: domain.AuditPasswordChanged})
	return nil
}

// Profile returns the caller's own account record.
func (s *AuthService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
	}
}

func (s *AuthService) record(entry domain.AuditEntry) {
	if s.audit == nil {
		return
	}
	entry.OccurredAt = time.Now().UTC()
	s.audit.Record(entry)
}
