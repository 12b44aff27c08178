package middlewares

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminSecretHeader carries the shared admin credential. This is a single
// static capability, not per-user authorization.
const AdminSecretHeader = "X-Admin-Secret"

// RequireAdminSecret gates admin routes on the configured shared secret.
func RequireAdminSecret(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			given := c.Request().Header.Get(AdminSecretHeader)
			if secret == "" || subtle.ConstantTimeCompare([]byte(given), []byte(secret)) != 1 {
				return echo.NewHTTPError(http.StatusForbidden, map[string]any{"error": "admin access denied"})
			}
			return next(c)
		}
	}
}
