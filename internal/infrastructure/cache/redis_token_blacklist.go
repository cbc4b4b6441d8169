package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
	"github.com/go-redis/redis/v8"
)

const revokedKeyPrefix = "revoked:"

type redisTokenBlacklist struct {
	client *redis.Client
}

// NewRedisTokenBlacklist creates a TokenBlacklist whose entries expire with the token
func NewRedisTokenBlacklist(client *redis.Client) accounts.TokenBlacklist {
	return &redisTokenBlacklist{client: client}
}

func (b *redisTokenBlacklist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := b.client.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token %s: %w", tokenID, err)
	}
	return nil
}

func (b *redisTokenBlacklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	_, err := b.client.Get(ctx, revokedKeyPrefix+tokenID).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up token %s: %w", tokenID, err)
	}
	return true, nil
}
