package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/registrydesk/object-service/internal/core/domain"
	"github.com/registrydesk/object-service/internal/core/ports"
)

const taskColumns = "id, title, description, priority_level, status, assigned_to, completed_at, created_at, updated_at"

// TaskRepository persists tasks. Deletes are soft: deleted_at is stamped and
// every read filters deleted rows out, so a deleted id behaves as not found.
type TaskRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db, now: time.Now}
}

func scanTask(row interface{ Scan(...any) error }) (*domain.Task, error) {
	var t domain.Task
	var description sql.NullString
	var priority sql.NullString
	var status string
	var assignedTo sql.NullInt64
	var completedAt sql.NullTime
	err := row.Scan(&t.ID, &t.Title, &description, &priority, &status,
		&assignedTo, &completedAt, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if description.Valid {
		t.Description = &description.String
	}
	if priority.Valid {
		p := domain.TaskPriority(priority.String)
		t.Priority = &p
	}
	t.Status = domain.TaskStatus(status)
	if assignedTo.Valid {
		t.AssignedTo = &assignedTo.Int64
	}
	if completedAt.Valid {
		t.CompletedAt = &completedAt.Time
	}
	return &t, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	const query = `
		INSERT INTO tasks (title, description, priority_level, status, assigned_to, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING ` + taskColumns

	now := r.now().UTC()
	created, err := scanTask(r.db.QueryRowContext(ctx, query,
		task.Title, task.Description, task.Priority, string(task.Status),
		task.AssignedTo, task.CompletedAt, now))
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return created, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	const query = `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND deleted_at IS NULL`

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return task, nil
}

func (r *TaskRepository) FindAll(ctx context.Context, in ports.ListTasksInput) ([]domain.Task, int64, error) {
	where := " WHERE deleted_at IS NULL"
	args := []any{}
	if in.Title != "" {
		args = append(args, "%"+in.Title+"%")
		where += fmt.Sprintf(" AND title ILIKE $%d", len(args))
	}
	if in.Status != nil {
		args = append(args, string(*in.Status))
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if in.Priority != nil {
		args = append(args, string(*in.Priority))
		where += fmt.Sprintf(" AND priority_level = $%d", len(args))
	}
	if in.AssignedTo != nil {
		args = append(args, *in.AssignedTo)
		where += fmt.Sprintf(" AND assigned_to = $%d", len(args))
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tasks"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	query := fmt.Sprintf("SELECT %s FROM tasks%s ORDER BY id ASC LIMIT $%d OFFSET $%d",
		taskColumns, where, len(args)+1, len(args)+2)
	args = append(args, in.Limit, in.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, total, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	const query = `
		UPDATE tasks
		SET title = $1, description = $2, priority_level = $3, status = $4,
		    assigned_to = $5, completed_at = $6, updated_at = $7
		WHERE id = $8 AND deleted_at IS NULL
		RETURNING ` + taskColumns

	updated, err := scanTask(r.db.QueryRowContext(ctx, query,
		task.Title, task.Description, task.Priority, string(task.Status),
		task.AssignedTo, task.CompletedAt, r.now().UTC(), task.ID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return updated, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	const query = `UPDATE tasks SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, r.now().UTC(), id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
