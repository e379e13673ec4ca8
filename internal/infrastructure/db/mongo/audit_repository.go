package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

const auditCollection = "audit_events"

// AuditRepository appends mutation records to the audit_events collection.
type AuditRepository struct {
	db *mongo.Database
}

func NewAuditRepository(db *mongo.Database) ports.AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	doc := bson.M{
		"actor_id":    entry.ActorID,
		"action":      entry.Action,
		"occurred_at": entry.OccurredAt.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if entry.TodoID != 0 {
		doc["todo_id"] = entry.TodoID
	}

	_, err := r.db.Collection(auditCollection).InsertOne(ctx, doc)
	return err
}
