package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/registrydesk/object-service/internal/core/ports"
)

// StatsHandler serves the admin-only aggregate snapshot.
type StatsHandler struct {
	service ports.StatsService
}

func NewStatsHandler(service ports.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

type statsResponse struct {
	TotalObjects   int64   `json:"total_objects"`
	ObjectsWithAge int64   `json:"objects_with_age"`
	AverageAge     float64 `json:"average_age"`
	TotalTasks     int64   `json:"total_tasks"`
	TotalEmployees int64   `json:"total_employees"`
}

// Get handles GET /stats.
//
// @Summary      Aggregate statistics
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Failure      403  {object}  errorResponse
// @Router       /stats [get]
func (h *StatsHandler) Get(c echo.Context) error {
	stats, err := h.service.Snapshot(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statsResponse{
		TotalObjects:   stats.TotalObjects,
		ObjectsWithAge: stats.ObjectsWithAge,
		AverageAge:     stats.AverageAge,
		TotalTasks:     stats.TotalTasks,
		TotalEmployees: stats.TotalEmployees,
	})
}
