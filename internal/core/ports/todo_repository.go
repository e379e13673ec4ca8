package ports

import (
	"context"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// TodoRepository defines persistence operations for todos. Every read and
// mutation takes the caller's scope; when the scope restricts to an owner,
// rows belonging to other users are indistinguishable from missing rows.
type TodoRepository interface {
	// Create persists a new todo and returns it with its assigned id.
	Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	FindByID(ctx context.Context, id int64, scope domain.Scope) (*domain.Todo, error)
	List(ctx context.Context, scope domain.Scope) ([]*domain.Todo, error)
	// Update overwrites title, description, priority, and completed on the
	// matching row. domain.ErrTodoNotFound when no row matches id + scope.
	Update(ctx context.Context, id int64, todo *domain.Todo, scope domain.Scope) error
	Delete(ctx context.Context, id int64, scope domain.Scope) error
}
