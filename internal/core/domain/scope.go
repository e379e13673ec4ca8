package domain

import "errors"

// Policy selects how todo access is authorized. Exactly one policy is active
// per deployment, chosen at startup.
type Policy string

const (
	// PolicyOwnerScoped restricts non-admin callers to rows they own.
	PolicyOwnerScoped Policy = "owner_scoped"
	// PolicyUnscoped is the legacy mode: authenticated callers see all rows.
	PolicyUnscoped Policy = "unscoped"
)

var ErrInvalidPolicy = errors.New("invalid authorization policy")

// ParsePolicy validates a configured policy string.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyOwnerScoped, PolicyUnscoped:
		return Policy(s), nil
	}
	return "", ErrInvalidPolicy
}

// Scope is the resolved authorization context of a request: who is calling
// and which rows they may act upon.
type Scope struct {
	UserID int64
	Role   Role
	Policy Policy
}

// Owner returns the owner id the caller is restricted to, and whether any
// restriction applies. Admins and the unscoped policy see everything.
func (s Scope) Owner() (int64, bool) {
	if s.Policy == PolicyUnscoped || s.Role == RoleAdmin {
		return 0, false
	}
	return s.UserID, true
}

// StampsOwner reports whether newly created todos are stamped with the
// caller's id under this scope.
func (s Scope) StampsOwner() bool {
	return s.Policy == PolicyOwnerScoped
}
