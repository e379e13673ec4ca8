package ports

import (
	"context"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// TodoInput is the DTO passed from the transport layer for create and update.
type TodoInput struct {
	Title       string
	Description string
	Priority    int
	Completed   bool
}

// TodoService defines the scoped CRUD use cases for todos.
type TodoService interface {
	// List returns the todos visible under scope. An empty result yields
	// domain.ErrNoTodos, replicating the original service's behaviour.
	List(ctx context.Context, scope domain.Scope) ([]*domain.Todo, error)
	Get(ctx context.Context, id int64, scope domain.Scope) (*domain.Todo, error)
	Create(ctx context.Context, input TodoInput, scope domain.Scope) (*domain.Todo, error)
	Update(ctx context.Context, id int64, input TodoInput, scope domain.Scope) error
	Delete(ctx context.Context, id int64, scope domain.Scope) error
}
