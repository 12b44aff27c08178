package middlewares

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ramya05916-rgb/Hostel-Leave-Management-System/auth"
)

func extractBearer(c echo.Context) (string, error) {
	h := c.Request().Header.Get("Authorization")
	if h == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "missing authorization header"})
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "invalid authorization header"})
	}
	return parts[1], nil
}

// RequireAuth verifies the bearer token and attaches the student identity to
// the request context.
func RequireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok, err := extractBearer(c)
			if err != nil {
				return err
			}
			claims, err := auth.ParseToken(secret, tok)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "invalid or expired token"})
			}
			c.Set("student_id", claims.ID)
			c.Set("email", claims.Email)
			return next(c)
		}
	}
}

// StudentID reads the identity attached by RequireAuth.
func StudentID(c echo.Context) (uint, bool) {
	id, ok := c.Get("student_id").(uint)
	return id, ok
}
