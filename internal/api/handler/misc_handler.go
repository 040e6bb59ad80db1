package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// MiscHandler serves the unauthenticated diagnostic endpoints.
type MiscHandler struct{}

func NewMiscHandler() *MiscHandler {
	return &MiscHandler{}
}

// Root handles GET /.
//
// @Summary      Service banner
// @Tags         misc
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *MiscHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"service": "object-service",
		"message": "Hello from the object registry API",
	})
}

// Echo handles POST /echo: the raw request body comes straight back with the
// original content type.
//
// @Summary      Echo the request body
// @Tags         misc
// @Accept       plain
// @Produce      plain
// @Success      200  {string}  string
// @Router       /echo [post]
func (h *MiscHandler) Echo(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable body")
	}

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = echo.MIMETextPlain
	}
	return c.Blob(http.StatusOK, contentType, body)
}
