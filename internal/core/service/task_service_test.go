package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/registrydesk/object-service/internal/core/domain"
	"github.com/registrydesk/object-service/internal/core/ports"
)

type stubTaskRepo struct {
	tasks  map[int64]*domain.Task
	nextID int64
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[int64]*domain.Task), nextID: 1}
}

func (r *stubTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	now := time.Now().UTC()
	clone := *task
	clone.ID = r.nextID
	clone.CreatedAt = now
	clone.UpdatedAt = now
	r.tasks[clone.ID] = &clone
	r.nextID++
	out := clone
	return &out, nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id int64) (*domain.Task, error) {
	task, ok := r.tasks[id]
	if !ok || task.DeletedAt != nil {
		return nil, domain.ErrTaskNotFound
	}
	clone := *task
	return &clone, nil
}

func (r *stubTaskRepo) FindAll(_ context.Context, _ ports.ListTasksInput) ([]domain.Task, int64, error) {
	var out []domain.Task
	for _, task := range r.tasks {
		if task.DeletedAt == nil {
			out = append(out, *task)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubTaskRepo) Update(_ context.Context, task *domain.Task) (*domain.Task, error) {
	if _, ok := r.tasks[task.ID]; !ok {
		return nil, domain.ErrTaskNotFound
	}
	clone := *task
	clone.UpdatedAt = time.Now().UTC()
	r.tasks[task.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id int64) error {
	task, ok := r.tasks[id]
	if !ok || task.DeletedAt != nil {
		return domain.ErrTaskNotFound
	}
	now := time.Now().UTC()
	task.DeletedAt = &now
	return nil
}

func TestTaskService_CreateDefaultsToToDo(t *testing.T) {
	svc := NewTaskService(newStubTaskRepo(), zerolog.Nop())

	task, err := svc.Create(context.Background(), ports.CreateTaskInput{Title: "write report"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.Status != domain.TaskStatusToDo {
		t.Fatalf("expected todo status, got %s", task.Status)
	}
	if task.CompletedAt != nil {
		t.Fatalf("new task must not be completed")
	}
}

func TestTaskService_CompletionStamping(t *testing.T) {
	svc := NewTaskService(newStubTaskRepo(), zerolog.Nop())

	task, _ := svc.Create(context.Background(), ports.CreateTaskInput{Title: "ship it"})

	done := domain.TaskStatusDone
	updated, err := svc.Update(context.Background(), task.ID, ports.UpdateTaskInput{Status: &done})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != domain.TaskStatusDone || updated.CompletedAt == nil {
		t.Fatalf("completed_at not stamped: %+v", updated)
	}

	reopened := domain.TaskStatusInProgress
	updated, err = svc.Update(context.Background(), task.ID, ports.UpdateTaskInput{Status: &reopened})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.CompletedAt != nil {
		t.Fatalf("completed_at must clear when task is reopened")
	}
}

func TestTaskService_UpdateKeepsOmittedFields(t *testing.T) {
	svc := NewTaskService(newStubTaskRepo(), zerolog.Nop())

	desc := "original description"
	prio := domain.TaskPriorityHigh
	task, _ := svc.Create(context.Background(), ports.CreateTaskInput{
		Title:       "original",
		Description: &desc,
		Priority:    &prio,
	})

	title := "renamed"
	updated, err := svc.Update(context.Background(), task.ID, ports.UpdateTaskInput{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "renamed" {
		t.Fatalf("title not updated: %+v", updated)
	}
	if updated.Description == nil || *updated.Description != desc {
		t.Fatalf("description changed unexpectedly: %+v", updated)
	}
	if updated.Priority == nil || *updated.Priority != domain.TaskPriorityHigh {
		t.Fatalf("priority changed unexpectedly: %+v", updated)
	}
}

func TestTaskService_DeleteHidesTask(t *testing.T) {
	svc := NewTaskService(newStubTaskRepo(), zerolog.Nop())

	task, _ := svc.Create(context.Background(), ports.CreateTaskInput{Title: "temp"})
	if err := svc.Delete(context.Background(), task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), task.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), task.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("double delete must report not found, got %v", err)
	}
}
