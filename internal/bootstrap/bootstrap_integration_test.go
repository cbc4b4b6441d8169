//go:build integration
// +build integration

package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
	"github.com/MGTheTrain/scrimhub/internal/pkg/config"
	"github.com/MGTheTrain/scrimhub/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.RestConfig {
	cfg := &config.RestConfig{
		Port:     "8080",
		Logger:   config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole},
		Database: config.DatabaseSettings{Type: config.SqliteDbType, DSN: ":memory:"},
		Auth: config.AuthSettings{
			JWTSecret:       "bootstrap-test-secret-0123456789",
			Issuer:          "scrimhub-test",
			AccessTokenTTL:  10 * time.Minute,
			RefreshTokenTTL: time.Hour,
			FrontendURL:     "https://app.example.com",
		},
		Cache:    config.CacheSettings{Type: config.MemoryCacheType},
		Broker:   config.BrokerSettings{Type: config.NoneBrokerType},
		Mail:     config.MailSettings{Type: config.ConsoleMailType},
		Payments: config.PaymentSettings{DefaultCurrency: "THB"},
	}
	cfg.Auth.ApplyDefaults()
	return cfg
}

func TestNew_WiresEveryService(t *testing.T) {
	log := testutil.SetupTestLogger(t)

	rt, err := New(context.Background(), testConfig(), log)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, rt.Close()) })

	require.NotNil(t, rt.Services)
	assert.NotNil(t, rt.Services.Auth)
	assert.NotNil(t, rt.Services.Scrimmages)
	assert.NotNil(t, rt.Services.Webhooks)
	assert.NotNil(t, rt.Hub)

	user, err := rt.Services.Auth.Register(context.Background(), accounts.RegisterInput{
		Email:    "wired@example.com",
		Password: "correct-horse-battery",
		FullName: "Wired User",
	})
	require.NoError(t, err)

	stored, err := rt.Repos.Users.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "wired@example.com", stored.Email)
}

func TestNew_RejectsUnknownCache(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	cfg := testConfig()
	cfg.Cache.Type = "memcached"

	_, err := New(context.Background(), cfg, log)
	assert.Error(t, err)
}
