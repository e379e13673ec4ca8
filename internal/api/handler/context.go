package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/todo-api/internal/api/middleware"
	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

// ctxClaims extracts the claims injected by the Auth middleware and performs
// a fast-fail check before any service call: subject and id must be present,
// otherwise the token was structurally valid but operationally unusable.
func ctxClaims(c echo.Context) (*ports.Claims, error) {
	claims, _ := c.Get(middleware.ClaimsKey).(*ports.Claims)
	if claims == nil || claims.Username == "" || claims.UserID < 1 {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}

// ctxScope resolves the verified claims into the caller's authorization
// scope under the configured policy.
func ctxScope(c echo.Context, policy domain.Policy) (domain.Scope, error) {
	claims, err := ctxClaims(c)
	if err != nil {
		return domain.Scope{}, err
	}
	return domain.Scope{UserID: claims.UserID, Role: claims.Role, Policy: policy}, nil
}

// pathID parses a numeric id path parameter. Ids below 1 are rejected with
// 422, matching the original service's path constraint.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusUnprocessableEntity, name+" must be a positive integer")
	}
	return id, nil
}
