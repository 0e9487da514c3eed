package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bloodlink/coordination-api/internal/core/domain"
	"github.com/bloodlink/coordination-api/internal/core/ports"
)

// Context keys under which the verified identity is stored.
const (
	CtxID    = "id"
	CtxEmail = "email"
	CtxRole  = "role"
)

// Auth validates the bearer token and injects the verified identity
// into the request context. The identity comes entirely from the
// token's claims; storage is never consulted, so a role change only
// takes effect once the holder logs in again.
func Auth(verifier ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := verifier.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxID, identity.ID)
			c.Set(CtxEmail, identity.Email)
			c.Set(CtxRole, identity.Role)

			return next(c)
		}
	}
}

// Identity reassembles the domain identity injected by Auth.
func Identity(c echo.Context) domain.Identity {
	id, _ := c.Get(CtxID).(string)
	email, _ := c.Get(CtxEmail).(string)
	role, _ := c.Get(CtxRole).(string)
	return domain.Identity{ID: id, Email: email, Role: role}
}
