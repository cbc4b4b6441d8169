package cache

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
	"github.com/MGTheTrain/scrimhub/internal/pkg/config"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"
)

// Stores bundles the rate limiter and token blacklist of one backend
type Stores struct {
	RateLimiter accounts.RateLimiter
	Blacklist   accounts.TokenBlacklist
	close       func() error
}

// NewStores builds the stores selected by settings.Type
func NewStores(ctx context.Context, settings *config.CacheSettings, logger logger.Logger) (*Stores, error) {
	switch settings.Type {
	case config.MemoryCacheType:
		logger.Info("Using in-memory rate limiter and token blacklist")
		return &Stores{
			RateLimiter: NewMemoryRateLimiter(),
			Blacklist:   NewMemoryTokenBlacklist(),
			close:       func() error { return nil },
		}, nil
	case config.RedisCacheType:
		client, err := NewRedisClient(ctx, settings)
		if err != nil {
			return nil, err
		}
		logger.Info("Connected to redis at ", settings.Addr)
		return &Stores{
			RateLimiter: NewRedisRateLimiter(client),
			Blacklist:   NewRedisTokenBlacklist(client),
			close:       client.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", settings.Type)
	}
}

// Close releases the backend connection
func (s *Stores) Close() error {
	return s.close()
}
