package persistence

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/JanviSingh1712/portfolio/internal/domain/analytics"
	"github.com/JanviSingh1712/portfolio/pkg/apperror"
)

const viewCountersKey = "portfolio:views"

type redisViewCounter struct {
	rdb *redis.Client
}

func NewRedisViewCounter(rdb *redis.Client) analytics.Counter {
	return &redisViewCounter{rdb: rdb}
}

func (r *redisViewCounter) Increment(ctx context.Context, section string) error {
	if err := r.rdb.HIncrBy(ctx, viewCountersKey, section, 1).Err(); err != nil {
		return apperror.NewInternal("failed to increment view counter", err)
	}
	return nil
}

func (r *redisViewCounter) Counts(ctx context.Context) (map[string]int64, error) {
	raw, err := r.rdb.HGetAll(ctx, viewCountersKey).Result()
	if err != nil {
		return nil, apperror.NewInternal("failed to read view counters", err)
	}

	counts := make(map[string]int64, len(raw))
	for section, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, apperror.NewInternal("corrupt view counter for "+section, err)
		}
		counts[section] = n
	}
	return counts, nil
}
