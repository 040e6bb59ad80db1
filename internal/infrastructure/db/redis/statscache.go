package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/registrydesk/object-service/internal/core/domain"
)

const (
	statsKey = "stats:snapshot"
	statsTTL = 30 * time.Second
)

// ErrCacheMiss is returned by Get when no snapshot is cached.
var ErrCacheMiss = errors.New("stats cache miss")

// StatsCache holds a short-lived JSON snapshot of the aggregate stats so
// repeated /stats reads do not hammer the database.
type StatsCache struct {
	client *redis.Client
}

func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

func (c *StatsCache) Get(ctx context.Context) (*domain.Stats, error) {
	payload, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var stats domain.Stats
	if err := json.Unmarshal(payload, &stats); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}
	return &stats, nil
}

func (c *StatsCache) Set(ctx context.Context, stats *domain.Stats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, statsKey, payload, statsTTL).Err()
}
