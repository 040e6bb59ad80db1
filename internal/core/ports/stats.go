package ports

import (
	"context"

	"github.com/registrydesk/object-service/internal/core/domain"
)

// StatsService serves the aggregate snapshot for the admin stats endpoint.
type StatsService interface {
	Snapshot(ctx context.Context) (*domain.Stats, error)
}

// StatsRepository computes the aggregates from the store of record.
type StatsRepository interface {
	Collect(ctx context.Context) (*domain.Stats, error)
}

// StatsCache is an advisory cache in front of StatsRepository. A failing
// cache must never fail the request.
type StatsCache interface {
	Get(ctx context.Context) (*domain.Stats, error)
	Set(ctx context.Context, stats *domain.Stats) error
}
