package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/registrydesk/object-service/internal/core/domain"
)

type StatsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Collect aggregates across the three tables. Each aggregate is its own
// query; a stats read is not transactionally consistent and does not need
// to be.
func (r *StatsRepository) Collect(ctx context.Context) (*domain.Stats, error) {
	const objectsQuery = `
		SELECT COUNT(*), COUNT(age), COALESCE(AVG(age), 0)
		FROM objects`

	var s domain.Stats
	err := r.db.QueryRowContext(ctx, objectsQuery).Scan(&s.TotalObjects, &s.ObjectsWithAge, &s.AverageAge)
	if err != nil {
		return nil, fmt.Errorf("collect object stats: %w", err)
	}

	err = r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tasks WHERE deleted_at IS NULL").Scan(&s.TotalTasks)
	if err != nil {
		return nil, fmt.Errorf("collect task stats: %w", err)
	}

	err = r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM employees").Scan(&s.TotalEmployees)
	if err != nil {
		return nil, fmt.Errorf("collect employee stats: %w", err)
	}
	return &s, nil
}
