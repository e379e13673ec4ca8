package handler

import (
	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

func toTodoInput(req todoRequest) ports.TodoInput {
	return ports.TodoInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Completed:   req.Completed,
	}
}

func toTodoResponse(t *domain.Todo) todoResponse {
	return todoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Completed:   t.Completed,
		OwnerID:     t.OwnerID,
	}
}

func toTodoListResponse(todos []*domain.Todo) []todoResponse {
	out := make([]todoResponse, len(todos))
	for i, t := range todos {
		out[i] = toTodoResponse(t)
	}
	return out
}
