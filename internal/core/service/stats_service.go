package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/registrydesk/object-service/internal/core/domain"
	"github.com/registrydesk/object-service/internal/core/ports"
	"github.com/registrydesk/object-service/internal/metrics"
)

// StatsService serves aggregate counts with a short-lived cache in front of
// the store. The cache is advisory: any cache failure falls through to the
// repository and never fails the request.
type StatsService struct {
	repo   ports.StatsRepository
	cache  ports.StatsCache
	logger zerolog.Logger
}

// NewStatsService builds a StatsService. cache may be nil, in which case
// every snapshot hits the repository.
func NewStatsService(repo ports.StatsRepository, cache ports.StatsCache, logger zerolog.Logger) *StatsService {
	return &StatsService{repo: repo, cache: cache, logger: logger}
}

func (s *StatsService) Snapshot(ctx context.Context) (*domain.Stats, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err == nil && cached != nil {
			metrics.StatsCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		} else if err != nil {
			s.logger.Debug().Err(err).Msg("stats cache read failed")
		}
		metrics.StatsCacheTotal.WithLabelValues("miss").Inc()
	}

	stats, err := s.repo.Collect(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats); err != nil {
			s.logger.Debug().Err(err).Msg("stats cache write failed")
		}
	}
	return stats, nil
}
