package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/registrydesk/object-service/internal/core/domain"
	"github.com/registrydesk/object-service/internal/core/ports"
	"github.com/registrydesk/object-service/internal/metrics"
)

// TaskService implements the task use cases: CRUD with soft deletion and
// completion stamping.
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger, now: time.Now}
}

func (s *TaskService) Create(ctx context.Context, in ports.CreateTaskInput) (*domain.Task, error) {
	task := &domain.Task{
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Status:      domain.TaskStatusToDo,
		AssignedTo:  in.AssignedTo,
	}
	if in.Status != nil {
		task.Status = *in.Status
	}
	if task.Status == domain.TaskStatusDone {
		now := s.now().UTC()
		task.CompletedAt = &now
		metrics.TasksCompletedTotal.Inc()
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Msg("task create failed")
		return nil, err
	}
	s.logger.Info().Int64("task_id", created.ID).Msg("task created")
	return created, nil
}

func (s *TaskService) Get(ctx context.Context, id int64) (*domain.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) List(ctx context.Context, in ports.ListTasksInput) (*ports.ListTasksResult, error) {
	in.Limit, in.Offset = clampPage(in.Limit, in.Offset)

	items, total, err := s.repo.FindAll(ctx, in)
	if err != nil {
		return nil, err
	}
	return &ports.ListTasksResult{
		Items:  items,
		Total:  total,
		Limit:  in.Limit,
		Offset: in.Offset,
	}, nil
}

// Update applies the provided fields to the stored task. Moving a task into
// done stamps completed_at; moving it out clears the stamp.
func (s *TaskService) Update(ctx context.Context, id int64, in ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = in.Description
	}
	if in.Priority != nil {
		task.Priority = in.Priority
	}
	if in.AssignedTo != nil {
		task.AssignedTo = in.AssignedTo
	}
	if in.Status != nil && *in.Status != task.Status {
		task.Status = *in.Status
		if task.Status == domain.TaskStatusDone {
			now := s.now().UTC()
			task.CompletedAt = &now
			metrics.TasksCompletedTotal.Inc()
		} else {
			task.CompletedAt = nil
		}
	}

	return s.repo.Update(ctx, task)
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("task_id", id).Msg("task deleted")
	return nil
}
