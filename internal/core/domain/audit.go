package domain

import "time"

// Audit actions recorded for account and todo mutations.
const (
	AuditUserRegistered  = "user_registered"
	AuditPasswordChanged = "password_changed"
	AuditTodoCreated     = "todo_created"
	AuditTodoUpdated     = "todo_updated"
	AuditTodoDeleted     = "todo_deleted"
)

// AuditEntry records a single mutation for the audit trail.
type AuditEntry struct {
	ActorID    int64
	Action     string
	TodoID     int64 // zero for account-level actions
	OccurredAt time.Time
}
