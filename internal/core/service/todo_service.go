package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

// TodoService implements the scoped CRUD use cases. All ownership decisions
// are carried by the scope the caller resolved at the request boundary; the
// service itself never looks at who is asking beyond that.
type TodoService struct {
	repo  ports.TodoRepository
	audit ports.AuditRecorder // nil disables the audit trail
	log   zerolog.Logger
}

func NewTodoService(repo ports.TodoRepository, audit ports.AuditRecorder, log zerolog.Logger) *TodoService {
	return &TodoService{repo: repo, audit: audit, log: log}
}

func (s *TodoService) List(ctx context.Context, scope domain.Scope) ([]*domain.Todo, error) {
	todos, err := s.repo.List(ctx, scope)
	if err != nil {
		return nil, err
	}
	// The original service answered 404 for an empty collection. Kept for
	// compatibility; ErrNoTodos stays distinct from ErrTodoNotFound so the
	// behaviour can be revisited in one place.
	if len(todos) == 0 {
		return nil, domain.ErrNoTodos
	}
	return todos, nil
}

func (s *TodoService) Get(ctx context.Context, id int64, scope domain.Scope) (*domain.Todo, error) {
	return s.repo.FindByID(ctx, id, scope)
}

func (s *TodoService) Create(ctx context.Context, input ports.TodoInput, scope domain.Scope) (*domain.Todo, error) {
	todo := &domain.Todo{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Completed:   input.Completed,
	}
	if scope.StampsOwner() {
		todo.OwnerID = scope.UserID
	}

	if err := todo.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, todo)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create todo")
		return nil, err
	}

	s.record(domain.AuditEntry{ActorID: scope.UserID, Action: domain.AuditTodoCreated, TodoID: created.ID})
	s.log.Info().Int64("todo_id", created.ID).Int64("owner_id", created.OwnerID).Msg("todo created")
	return created, nil
}

func (s *TodoService) Update(ctx context.Context, id int64, input ports.TodoInput, scope domain.Scope) error {
	todo := &domain.Todo{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Completed:   input.Completed,
	}
	if err := todo.Validate(); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, todo, scope); err != nil {
		return err
	}

	s.record(domain.AuditEntry{ActorID: scope.UserID, Action: domain.AuditTodoUpdated, TodoID: id})
	return nil
}

func (s *TodoService) Delete(ctx context.Context, id int64, scope domain.Scope) error {
	if err := s.repo.Delete(ctx, id, scope); err != nil {
		return err
	}

	s.record(domain.AuditEntry{ActorID: scope.UserID, Action: domain.AuditTodoDeleted, TodoID: id})
	return nil
}

func (s *TodoService) record(entry domain.AuditEntry) {
	if s.audit == nil {
		return
	}
	entry.OccurredAt = time.Now().UTC()
	s.audit.Record(entry)
}
