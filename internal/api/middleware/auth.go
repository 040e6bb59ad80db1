package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/registrydesk/object-service/internal/core/domain"
	"github.com/registrydesk/object-service/internal/core/ports"
	"github.com/registrydesk/object-service/internal/metrics"
)

// Context keys set by Auth on successful verification.
const (
	ContextKeyIdentity = "identity"
	ContextKeySubject  = "subject"
	ContextKeyRole     = "role"
)

// Auth extracts the bearer token, verifies it, and injects the resulting
// identity into the Echo context. Every failure mode collapses to 401; the
// distinction between malformed, bad-signature, and expired tokens is kept
// in the rejection metric, not in the response.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				metrics.AuthRejectedTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectedTotal.WithLabelValues("bad_scheme").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := verifier.Verify(parts[1])
			if err != nil {
				metrics.AuthRejectedTotal.WithLabelValues(rejectionReason(err)).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ContextKeyIdentity, identity)
			c.Set(ContextKeySubject, identity.Subject)
			c.Set(ContextKeyRole, identity.Role)

			return next(c)
		}
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenSignatureInvalid):
		return "bad_signature"
	default:
		return "malformed"
	}
}
