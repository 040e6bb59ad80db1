package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/registrydesk/object-service/internal/core/domain"
	"github.com/registrydesk/object-service/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

func toTaskResponse(t *domain.Task) taskResponse {
	resp := taskResponse{
		ID:         t.ID,
		Title:      t.Title,
		Status:     string(t.Status),
		AssignedTo: t.AssignedTo,
		CreatedAt:  t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  t.UpdatedAt.UTC().Format(time.RFC3339),
	}
	resp.Description = t.Description
	if t.Priority != nil {
		p := string(*t.Priority)
		resp.Priority = &p
	}
	if t.CompletedAt != nil {
		done := t.CompletedAt.UTC().Format(time.RFC3339)
		resp.CompletedAt = &done
	}
	return resp
}

func taskPriorityPtr(s *string) *domain.TaskPriority {
	if s == nil {
		return nil
	}
	p := domain.TaskPriority(*s)
	return &p
}

func taskStatusPtr(s *string) *domain.TaskStatus {
	if s == nil {
		return nil
	}
	st := domain.TaskStatus(*s)
	return &st
}

// List handles GET /tasks.
//
// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        title        query     string  false  "Filter by title (substring, case-insensitive)"
// @Param        status       query     string  false  "Filter by status"
// @Param        priority     query     string  false  "Filter by priority"
// @Param        assigned_to  query     int     false  "Filter by assignee"
// @Param        limit        query     int     false  "Page size (default 50, max 500)"
// @Param        offset       query     int     false  "Page offset"
// @Success      200          {object}  listTasksResponse
// @Router       /tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	in := ports.ListTasksInput{
		Title:  c.QueryParam("title"),
		Limit:  limit,
		Offset: offset,
	}
	if raw := c.QueryParam("status"); raw != "" {
		status := domain.TaskStatus(raw)
		if !status.IsValid() {
			return echo.NewHTTPError(http.StatusBadRequest, "status must be one of: todo in_progress done")
		}
		in.Status = &status
	}
	if raw := c.QueryParam("priority"); raw != "" {
		priority := domain.TaskPriority(raw)
		if !priority.IsValid() {
			return echo.NewHTTPError(http.StatusBadRequest, "priority must be one of: low medium high")
		}
		in.Priority = &priority
	}
	if raw := c.QueryParam("assigned_to"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "assigned_to must be an integer")
		}
		in.AssignedTo = &id
	}

	result, err := h.service.List(c.Request().Context(), in)
	if err != nil {
		return err
	}

	items := make([]taskResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, toTaskResponse(&result.Items[i]))
	}
	return c.JSON(http.StatusOK, listTasksResponse{
		Items: items, Total: result.Total, Limit: result.Limit, Offset: result.Offset,
	})
}

// Get handles GET /tasks/:id.
//
// @Summary      Get a task by id
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Task id"
// @Success      200  {object}  taskResponse
// @Failure      404  {object}  errorResponse
// @Router       /tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	task, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Create handles POST /tasks.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task fields"
// @Success      201   {object}  taskResponse
// @Failure      400   {object}  errorResponse
// @Router       /tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.service.Create(c.Request().Context(), ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    taskPriorityPtr(req.Priority),
		Status:      taskStatusPtr(req.Status),
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toTaskResponse(task))
}

// Update handles PUT /tasks/:id. Only provided fields change; moving a task
// into done stamps completed_at.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Task id"
// @Param        body  body      updateTaskRequest  true  "Fields to change"
// @Success      200   {object}  taskResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.service.Update(c.Request().Context(), id, ports.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    taskPriorityPtr(req.Priority),
		Status:      taskStatusPtr(req.Status),
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete handles DELETE /tasks/:id (soft delete).
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Task id"
// @Success      200  {object}  deleteResponse
// @Failure      404  {object}  errorResponse
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteResponse{Message: "task deleted"})
}
