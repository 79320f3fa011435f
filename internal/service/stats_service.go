package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/campus-labs/college-enroll-api/internal/models"
	appErrors "github.com/campus-labs/college-enroll-api/pkg/errors"
)

const statsCacheKey = "stats:counts"

type statsRepository interface {
	Collect(ctx context.Context) (models.Stats, error)
}

// StatsService serves the dashboard counters, optionally fronted by a Redis
// TTL cache. Cache failures degrade to direct counts, never to errors.
type StatsService struct {
	repo    statsRepository
	cache   *redis.Client
	ttl     time.Duration
	metrics *MetricsService
	logger  *zap.Logger
}

// NewStatsService constructs the stats service. cache may be nil to disable
// caching entirely.
func NewStatsService(repo statsRepository, cache *redis.Client, ttl time.Duration, metrics *MetricsService, logger *zap.Logger) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{repo: repo, cache: cache, ttl: ttl, metrics: metrics, logger: logger}
}

// Get returns the current counters.
func (s *StatsService) Get(ctx context.Context) (models.Stats, error) {
	if s.cache != nil {
		if stats, ok := s.fromCache(ctx); ok {
			return stats, nil
		}
	}

	stats, err := s.repo.Collect(ctx)
	if err != nil {
		return models.Stats{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to collect stats")
	}

	if s.cache != nil {
		s.store(ctx, stats)
	}
	return stats, nil
}

func (s *StatsService) fromCache(ctx context.Context) (models.Stats, bool) {
	raw, err := s.cache.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("stats cache read failed", zap.Error(err))
		}
		s.metrics.RecordCacheOperation(false)
		return models.Stats{}, false
	}
	var stats models.Stats
	if err := json.Unmarshal(raw, &stats); err != nil {
		s.logger.Warn("stats cache entry malformed", zap.Error(err))
		s.metrics.RecordCacheOperation(false)
		return models.Stats{}, false
	}
	s.metrics.RecordCacheOperation(true)
	return stats, true
}

func (s *StatsService) store(ctx context.Context, stats models.Stats) {
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, statsCacheKey, raw, s.ttl).Err(); err != nil {
		s.logger.Warn("stats cache write failed", zap.Error(err))
	}
}
