package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/todo-api/internal/api/metrics"
	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

// TodoHandler handles the caller-scoped todo CRUD surface. The deployment's
// authorization policy is fixed at construction time.
type TodoHandler struct {
	service ports.TodoService
	policy  domain.Policy
}

func NewTodoHandler(service ports.TodoService, policy domain.Policy) *TodoHandler {
	return &TodoHandler{service: service, policy: policy}
}

// List returns the caller's visible todos.
//
// @Summary      List todos
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   todoResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/todos/ [get]
func (h *TodoHandler) List(c echo.Context) error {
	scope, err := ctxScope(c, h.policy)
	if err != nil {
		return err
	}

	todos, err := h.service.List(c.Request().Context(), scope)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTodoListResponse(todos))
}

// Get returns a single todo by id.
//
// @Summary      Get a todo
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Todo id"
// @Success      200  {object}  todoResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/todos/{id} [get]
func (h *TodoHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	scope, err := ctxScope(c, h.policy)
	if err != nil {
		return err
	}

	todo, err := h.service.Get(c.Request().Context(), id, scope)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTodoResponse(todo))
}

// Create persists a new todo owned by the caller.
//
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      todoRequest  true  "Todo fields"
// @Success      201   {object}  todoResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/todos/create [post]
func (h *TodoHandler) Create(c echo.Context) error {
	var req todoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	scope, err := ctxScope(c, h.policy)
	if err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), toTodoInput(req), scope)
	if err != nil {
		return err
	}

	metrics.TodosCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toTodoResponse(created))
}

// Update overwrites all four mutable fields of a todo.
//
// @Summary      Update a todo
// @Tags         todos
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int          true  "Todo id"
// @Param        body  body  todoRequest  true  "Todo fields"
// @Success      204   "no content"
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/todos/update/{id} [put]
func (h *TodoHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req todoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	scope, err := ctxScope(c, h.policy)
	if err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), id, toTodoInput(req), scope); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete removes a todo.
//
// @Summary      Delete a todo
// @Tags         todos
// @Security     BearerAuth
// @Param        id  path  int  true  "Todo id"
// @Success      204  "no content"
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/todos/delete/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	scope, err := ctxScope(c, h.policy)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id, scope); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
