package ports

import (
	"context"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// AuditRepository persists audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}

// AuditRecorder accepts entries for asynchronous, best-effort persistence.
// Recording must never fail the originating request.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}
