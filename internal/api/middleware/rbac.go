package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulsepoint/wellness-api/internal/core/domain"
)

// RBAC lets the request through when the principal holds at least one of the
// allowed roles. It must run after Auth.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := c.Get(PrincipalKey).(domain.Principal)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing authentication claims"})
			}
			if !p.Roles.HasAny(allowedRoles...) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
