package domain

// Stats is the aggregate snapshot served by the admin stats endpoint.
type Stats struct {
	TotalObjects   int64   `json:"total_objects"`
	ObjectsWithAge int64   `json:"objects_with_age"`
	AverageAge     float64 `json:"average_age"`
	TotalTasks     int64   `json:"total_tasks"`
	TotalEmployees int64   `json:"total_employees"`
}
