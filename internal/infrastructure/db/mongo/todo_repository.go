package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhive/todo-api/internal/core/domain"
)

const todosCollection = "todos"

// TodoRepository implements ports.TodoRepository backed by the todos
// collection. Ownership filtering happens in the query itself, so a scoped
// caller can never observe another user's rows.
type TodoRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewTodoRepository(db *mongo.Database) *TodoRepository {
	return &TodoRepository{db: db, coll: db.Collection(todosCollection)}
}

// scopeFilter builds the match filter for a single row under scope.
func scopeFilter(id int64, scope domain.Scope) bson.M {
	filter := bson.M{"_id": id}
	if owner, ok := scope.Owner(); ok {
		filter["owner_id"] = owner
	}
	return filter
}

func (r *TodoRepository) Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, todosCollection)
	if err != nil {
		return nil, err
	}

	created := *todo
	created.ID = id

	if _, err := r.coll.InsertOne(ctx, &created); err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}
	return &created, nil
}

func (r *TodoRepository) FindByID(ctx context.Context, id int64, scope domain.Scope) (*domain.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var todo domain.Todo
	if err := r.coll.FindOne(ctx, scopeFilter(id, scope)).Decode(&todo); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, fmt.Errorf("find todo: %w", err)
	}
	return &todo, nil
}

func (r *TodoRepository) List(ctx context.Context, scope domain.Scope) ([]*domain.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if owner, ok := scope.Owner(); ok {
		filter["owner_id"] = owner
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer cursor.Close(ctx)

	todos := make([]*domain.Todo, 0)
	if err := cursor.All(ctx, &todos); err != nil {
		return nil, fmt.Errorf("decode todos: %w", err)
	}
	return todos, nil
}

func (r *TodoRepository) Update(ctx context.Context, id int64, todo *domain.Todo, scope domain.Scope) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, scopeFilter(id, scope), bson.M{
		"$set": bson.M{
			"title":       todo.Title,
			"description": todo.Description,
			"priority":    todo.Priority,
			"completed":   todo.Completed,
		},
	})
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, id int64, scope domain.Scope) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, scopeFilter(id, scope))
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}
