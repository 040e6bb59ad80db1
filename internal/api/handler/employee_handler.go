package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/registrydesk/object-service/internal/core/domain"
	"github.com/registrydesk/object-service/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for the employee directory.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

func toEmployeeResponse(e *domain.Employee) employeeResponse {
	return employeeResponse{
		ID:         e.ID,
		ExternalID: e.ExternalID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		StoreID:    e.StoreID,
	}
}

func toEmployeeList(items []domain.Employee, total int64, limit, offset int) listEmployeesResponse {
	out := make([]employeeResponse, 0, len(items))
	for i := range items {
		out = append(out, toEmployeeResponse(&items[i]))
	}
	return listEmployeesResponse{Items: out, Total: total, Limit: limit, Offset: offset}
}

// List handles GET /employees.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        store_id    query     int     false  "Filter by store"
// @Param        first_name  query     string  false  "Filter by first name (substring)"
// @Param        last_name   query     string  false  "Filter by last name (substring)"
// @Param        limit       query     int     false  "Page size (default 50, max 500)"
// @Param        offset      query     int     false  "Page offset"
// @Success      200         {object}  listEmployeesResponse
// @Router       /employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	in := ports.ListEmployeesInput{
		FirstName: c.QueryParam("first_name"),
		LastName:  c.QueryParam("last_name"),
		Limit:     limit,
		Offset:    offset,
	}
	if raw := c.QueryParam("store_id"); raw != "" {
		storeID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "store_id must be an integer")
		}
		in.StoreID = &storeID
	}

	result, err := h.service.List(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeList(result.Items, result.Total, result.Limit, result.Offset))
}

// Get handles GET /employees/:id.
//
// @Summary      Get an employee by id
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Employee id"
// @Success      200  {object}  employeeResponse
// @Failure      404  {object}  errorResponse
// @Router       /employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	emp, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(emp))
}

// ListByStore handles GET /employees/stores/:store_id.
//
// @Summary      List employees for a store
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        store_id  path      int  true   "Store id"
// @Param        limit     query     int  false  "Page size (default 50, max 500)"
// @Param        offset    query     int  false  "Page offset"
// @Success      200       {object}  listEmployeesResponse
// @Router       /employees/stores/{store_id} [get]
func (h *EmployeeHandler) ListByStore(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	storeID, err := strconv.ParseInt(c.Param("store_id"), 10, 64)
	if err != nil || storeID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "store_id must be a positive integer")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	result, err := h.service.ListByStore(c.Request().Context(), storeID, ports.ListEmployeesInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeList(result.Items, result.Total, result.Limit, result.Offset))
}

// CreateBatch handles POST /employees (admin only).
//
// @Summary      Create employees in bulk
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEmployeesRequest  true  "Employees to create"
// @Success      201   {object}  listEmployeesResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /employees [post]
func (h *EmployeeHandler) CreateBatch(c echo.Context) error {
	var req createEmployeesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := make([]ports.CreateEmployeeInput, 0, len(req.Employees))
	for _, e := range req.Employees {
		in = append(in, ports.CreateEmployeeInput{
			ExternalID: e.ExternalID,
			FirstName:  e.FirstName,
			LastName:   e.LastName,
			StoreID:    e.StoreID,
		})
	}

	created, err := h.service.CreateBatch(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toEmployeeList(created, int64(len(created)), len(created), 0))
}
