package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminOnly gates a route on the admin role taken from the verified
// token. Must run after Auth.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if role != "admin" {
				return c.JSON(http.StatusForbidden, map[string]string{"message": "Access denied. Admin rights required."})
			}
			return next(c)
		}
	}
}
