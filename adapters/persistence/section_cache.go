package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JanviSingh1712/portfolio/internal/application/service"
	"github.com/JanviSingh1712/portfolio/pkg/apperror"
)

const sectionCachePrefix = "portfolio:section:"

type redisSectionCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisSectionCache stores rendered markup under portfolio:section:<key>.
// A zero ttl keeps entries until they are purged.
func NewRedisSectionCache(rdb *redis.Client, ttl time.Duration) service.SectionCache {
	return &redisSectionCache{rdb: rdb, ttl: ttl}
}

func (c *redisSectionCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.rdb.Get(ctx, sectionCachePrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, apperror.NewInternal("failed to read section cache", err)
	}
	return val, true, nil
}

func (c *redisSectionCache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.rdb.Set(ctx, sectionCachePrefix+key, value, c.ttl).Err(); err != nil {
		return apperror.NewInternal("failed to write section cache", err)
	}
	return nil
}

func (c *redisSectionCache) Purge(ctx context.Context) (int, error) {
	var (
		cursor  uint64
		removed int
	)
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, sectionCachePrefix+"*", 100).Result()
		if err != nil {
			return removed, apperror.NewInternal("failed to scan section cache", err)
		}
		if len(keys) > 0 {
			n, err := c.rdb.Del(ctx, keys...).Result()
			if err != nil {
				return removed, apperror.NewInternal("failed to purge section cache", err)
			}
			removed += int(n)
		}
		if next == 0 {
			return removed, nil
		}
		cursor = next
	}
}
