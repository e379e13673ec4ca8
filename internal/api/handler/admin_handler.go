package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

// AdminHandler exposes the admin-only surface. The RequireRole middleware
// guards these routes; the admin role lifts the owner filter in the scope,
// so the same service operations see every row.
type AdminHandler struct {
	service ports.TodoService
	policy  domain.Policy
}

func NewAdminHandler(service ports.TodoService, policy domain.Policy) *AdminHandler {
	return &AdminHandler{service: service, policy: policy}
}

// List returns every todo regardless of owner.
//
// @Summary      List all todos (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   todoResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/todos [get]
func (h *AdminHandler) List(c echo.Context) error {
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

// Delete removes any todo regardless of owner.
//
// @Summary      Delete any todo (admin)
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  int  true  "Todo id"
// @Success      204  "no content"
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/todo/delete/{id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
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
