package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/registrydesk/object-service/internal/core/domain"
	"github.com/registrydesk/object-service/internal/metrics"
)

// RequireRole enforces role-based access on routes already behind Auth.
// Denial is a 403, distinct from the 401 the Auth stage produces: the caller
// is known, just not entitled.
func RequireRole(required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(domain.Role)
			if !ok {
				// Route was registered without the Auth stage.
				metrics.AuthRejectedTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}
			if !role.Satisfies(required) {
				metrics.AuthRejectedTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
