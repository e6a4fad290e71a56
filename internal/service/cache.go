package service

import (
	"Inkwell/internal/pkg/redis"
	"context"
	log "log/slog"
	"time"
)

type countFunc func(ctx context.Context) (int64, error)

// cachedCount 读穿缓存：命中直接返回，未命中查库后回写。缓存故障只记日志。
func cachedCount(ctx context.Context, key string, ttl time.Duration, fetch countFunc) (int64, error) {
	value, ok, err := redis.GetInt64(ctx, key)
	if err != nil {
		log.WarnContext(ctx, "count cache read failed", "key", key, "err", err)
	}
	if ok {
		return value, nil
	}

	count, err := fetch(ctx)
	if err != nil {
		return 0, err
	}
	if err = redis.SetWithExpiration(ctx, key, count, ttl); err != nil {
		log.WarnContext(ctx, "count cache write failed", "key", key, "err", err)
	}
	return count, nil
}

func invalidate(ctx context.Context, keys ...string) {
	if err := redis.DeleteKey(ctx, keys...); err != nil {
		log.WarnContext(ctx, "cache invalidation failed", "keys", keys, "err", err)
	}
}
