package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trailconnect/web-gateway/internal/core/domain"
)

// RequireAuth rejects requests whose session is not authenticated. It is
// the gate that keeps unauthenticated sessions away from the role router:
// the guide-view fallback must never be reached by an anonymous visitor.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := c.Get(ContextKeySession).(domain.Session)
			if !ok || !session.IsAuthenticated {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			}
			return next(c)
		}
	}
}

// RequireRole enforces role-based access control on top of RequireAuth
// semantics: 401 without a session, 403 with the wrong role.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := c.Get(ContextKeySession).(domain.Session)
			if !ok || !session.IsAuthenticated || session.User == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			}
			if _, ok := allowed[session.User.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
