package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/registrydesk/object-service/internal/api/middleware"
	"github.com/registrydesk/object-service/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a missing identity
// means the route was registered without the auth stage.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity, _ := c.Get(middleware.ContextKeyIdentity).(*domain.Identity)
	if identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
