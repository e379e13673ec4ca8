package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/todo-api/internal/core/ports"
)

// UserHandler handles account self-service for the authenticated caller.
type UserHandler struct {
	service ports.AuthService
}

func NewUserHandler(service ports.AuthService) *UserHandler {
	return &UserHandler{service: service}
}

// Profile returns the caller's own account.
//
// @Summary      Read own profile
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/user/ [get]
func (h *UserHandler) Profile(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.service.Profile(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
	})
}

// ChangePassword re-verifies the current password and stores a new one.
//
// @Summary      Change own password
// @Tags         user
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  changePasswordRequest  true  "Current and new password"
// @Success      204   "no content"
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/user/change_password [put]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.service.ChangePassword(c.Request().Context(), claims.UserID, req.Password, req.NewPassword); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
