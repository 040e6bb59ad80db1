package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/registrydesk/object-service/internal/core/ports"
	"github.com/registrydesk/object-service/internal/metrics"
)

// ObjectHandler handles HTTP requests for the object resource.
type ObjectHandler struct {
	service ports.ObjectService
}

func NewObjectHandler(service ports.ObjectService) *ObjectHandler {
	return &ObjectHandler{service: service}
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}
	return id, nil
}

// List handles GET /objects.
//
// @Summary      List objects
// @Tags         objects
// @Produce      json
// @Security     BearerAuth
// @Param        name    query     string  false  "Filter by name (substring, case-insensitive)"
// @Param        limit   query     int     false  "Page size (default 50, max 500)"
// @Param        offset  query     int     false  "Page offset"
// @Success      200     {object}  listObjectsResponse
// @Failure      401     {object}  errorResponse
// @Router       /objects [get]
func (h *ObjectHandler) List(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	result, err := h.service.List(c.Request().Context(), ports.ListObjectsInput{
		Name:   c.QueryParam("name"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toObjectList(result.Items, result.Total, result.Limit, result.Offset))
}

// Get handles GET /objects/:id.
//
// @Summary      Get an object by id
// @Tags         objects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Object id"
// @Success      200  {object}  objectResponse
// @Failure      404  {object}  errorResponse
// @Router       /objects/{id} [get]
func (h *ObjectHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	obj, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toObjectResponse(obj))
}

// Create handles POST /objects.
//
// @Summary      Create an object
// @Tags         objects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createObjectRequest  true  "Object fields"
// @Success      201   {object}  objectResponse
// @Failure      400   {object}  errorResponse
// @Router       /objects [post]
func (h *ObjectHandler) Create(c echo.Context) error {
	var req createObjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	obj, err := h.service.Create(c.Request().Context(), ports.CreateObjectInput{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	})
	if err != nil {
		return err
	}

	metrics.ObjectsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toObjectResponse(obj))
}

// Replace handles PUT /objects/:id. All fields are required; age may be null
// and replacing with a null age clears it.
//
// @Summary      Replace an object
// @Tags         objects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Object id"
// @Param        body  body      createObjectRequest  true  "Full object fields"
// @Success      200   {object}  objectResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /objects/{id} [put]
func (h *ObjectHandler) Replace(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req createObjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	obj, err := h.service.Replace(c.Request().Context(), id, ports.CreateObjectInput{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toObjectResponse(obj))
}

// Patch handles PATCH /objects/:id. Only provided fields change.
//
// @Summary      Patch an object
// @Tags         objects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Object id"
// @Param        body  body      patchObjectRequest  true  "Fields to change"
// @Success      200   {object}  objectResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /objects/{id} [patch]
func (h *ObjectHandler) Patch(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req patchObjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Name == nil && req.Email == nil && req.Age == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "at least one field must be provided")
	}

	obj, err := h.service.Patch(c.Request().Context(), id, ports.UpdateObjectInput{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toObjectResponse(obj))
}

// Delete handles DELETE /objects/:id.
//
// @Summary      Delete an object
// @Tags         objects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Object id"
// @Success      200  {object}  deleteResponse
// @Failure      404  {object}  errorResponse
// @Router       /objects/{id} [delete]
func (h *ObjectHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteResponse{Message: "object deleted"})
}

// Profile handles GET /objects/:id/profile.
//
// @Summary      Get an object profile projection
// @Tags         objects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Object id"
// @Success      200  {object}  objectProfileResponse
// @Failure      404  {object}  errorResponse
// @Router       /objects/{id}/profile [get]
func (h *ObjectHandler) Profile(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	profile, err := h.service.Profile(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, objectProfileResponse{
		Object:     toObjectResponse(&profile.Object),
		ProfileURL: profile.ProfileURL,
	})
}
