package ports

import (
	"context"

	"github.com/registrydesk/object-service/internal/core/domain"
)

// CreateTaskInput carries the fields accepted when creating a task.
type CreateTaskInput struct {
	Title       string
	Description *string
	Priority    *domain.TaskPriority
	Status      *domain.TaskStatus
	AssignedTo  *int64
}

// UpdateTaskInput is a partial task update; nil fields keep their value.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Priority    *domain.TaskPriority
	Status      *domain.TaskStatus
	AssignedTo  *int64
}

// ListTasksInput filters and pages the task listing.
type ListTasksInput struct {
	Title      string
	Status     *domain.TaskStatus
	Priority   *domain.TaskPriority
	AssignedTo *int64
	Limit      int
	Offset     int
}

// ListTasksResult is a page of live (non-deleted) tasks.
type ListTasksResult struct {
	Items  []domain.Task
	Total  int64
	Limit  int
	Offset int
}

// TaskService defines the use-case operations over tasks.
type TaskService interface {
	Create(ctx context.Context, in CreateTaskInput) (*domain.Task, error)
	Get(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context, in ListTasksInput) (*ListTasksResult, error)
	Update(ctx context.Context, id int64, in UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

// TaskRepository persists tasks. Delete is a soft delete; deleted rows are
// invisible to every other method.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id int64) (*domain.Task, error)
	FindAll(ctx context.Context, in ListTasksInput) ([]domain.Task, int64, error)
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}
