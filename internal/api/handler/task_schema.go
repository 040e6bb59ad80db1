package handler

type createTaskRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"    validate:"omitempty,oneof=low medium high"`
	Status      *string `json:"status"      validate:"omitempty,oneof=todo in_progress done"`
	AssignedTo  *int64  `json:"assigned_to" validate:"omitempty,gt=0"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"    validate:"omitempty,oneof=low medium high"`
	Status      *string `json:"status"      validate:"omitempty,oneof=todo in_progress done"`
	AssignedTo  *int64  `json:"assigned_to" validate:"omitempty,gt=0"`
}

type taskResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Status      string  `json:"status"`
	AssignedTo  *int64  `json:"assigned_to,omitempty"`
	CompletedAt *string `json:"completed_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type listTasksResponse struct {
	Items  []taskResponse `json:"items"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}
