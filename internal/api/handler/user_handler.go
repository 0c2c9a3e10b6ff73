package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsepoint/wellness-api/internal/core/domain"
	"github.com/pulsepoint/wellness-api/internal/core/ports"
)

type UserHandler struct {
	authService ports.AuthService
}

func NewUserHandler(authService ports.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// GrantRole adds a role to a user. Granting a held role succeeds.
//
// @Summary      Grant a role
// @Tags         users
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int               true  "User ID"
// @Param        body  body  grantRoleRequest  true  "Role"
// @Success      204
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/users/{id}/roles [post]
func (h *UserHandler) GrantRole(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req grantRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.authService.GrantRole(c.Request().Context(), id, req.Role); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": domain.ErrUserNotFound.Error()})
		case errors.Is(err, domain.ErrUnknownRole):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": domain.ErrUnknownRole.Error()})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
