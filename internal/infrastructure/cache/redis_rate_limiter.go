package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const rateLimitKeyPrefix = "ratelimit:"

type redisRateLimiter struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisRateLimiter creates a RateLimiter that keeps one sorted set of attempt
// timestamps per key
func NewRedisRateLimiter(client *redis.Client) accounts.RateLimiter {
	return &redisRateLimiter{client: client, now: time.Now}
}

func (l *redisRateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := l.now()
	redisKey := rateLimitKeyPrefix + key
	cutoff := now.Add(-window).UnixNano()

	var card *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, redisKey, "-inf", strconv.FormatInt(cutoff, 10))
		pipe.ZAdd(ctx, redisKey, &redis.Z{
			Score:  float64(now.UnixNano()),
			Member: uuid.NewString(),
		})
		card = pipe.ZCard(ctx, redisKey)
		pipe.Expire(ctx, redisKey, window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to record attempt for %s: %w", key, err)
	}

	return card.Val() <= int64(limit), nil
}
