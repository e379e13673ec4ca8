package domain

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	ErrTodoNotFound = errors.New("todo not found")
	ErrNoTodos      = errors.New("no todos found")
	ErrValidation   = errors.New("validation failed")
)

// Todo is a single task owned by a user. OwnerID is zero only under the
// legacy unscoped policy, where rows carry no ownership.
type Todo struct {
	ID          int64  `json:"id" bson:"_id,omitempty"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Priority    int    `json:"priority" bson:"priority"`
	Completed   bool   `json:"completed" bson:"completed"`
	OwnerID     int64  `json:"owner_id,omitempty" bson:"owner_id,omitempty"`
}

// Validate checks the field invariants: title at least 3 characters,
// description 1-100 characters, priority in [1,5].
func (t *Todo) Validate() error {
	if utf8.RuneCountInString(t.Title) < 3 {
		return fmt.Errorf("%w: title must be at least 3 characters", ErrValidation)
	}
	if n := utf8.RuneCountInString(t.Description); n < 1 || n > 100 {
		return fmt.Errorf("%w: description must be between 1 and 100 characters", ErrValidation)
	}
	if t.Priority < 1 || t.Priority > 5 {
		return fmt.Errorf("%w: priority must be between 1 and 5", ErrValidation)
	}
	return nil
}
