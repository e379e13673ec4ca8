package domain

import "errors"

// Role is the closed set of roles a user may hold. The wire format is a
// plain string; ParseRole is the only way an external value becomes a Role.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
)

// ParseRole maps a free-form role string onto the closed role set.
// An empty string defaults to RoleUser.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case "":
		return RoleUser, nil
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", ErrInvalidRole
}

// User models a registered account. HashedPassword never leaves the server
// and never holds a plaintext value.
type User struct {
	ID             int64  `json:"id" bson:"_id,omitempty"`
	Email          string `json:"email" bson:"email"`
	Username       string `json:"username" bson:"username"`
	FirstName      string `json:"first_name" bson:"first_name"`
	LastName       string `json:"last_name" bson:"last_name"`
	HashedPassword string `json:"-" bson:"hashed_password"`
	IsActive       bool   `json:"is_active" bson:"is_active"`
	Role           Role   `json:"role" bson:"role"`
}
