//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/payments"
	"github.com/MGTheTrain/scrimhub/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletSqliteRepository_DepositWithdraw(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	userID := uuid.NewString()

	wallet, err := tc.WalletRepo.Deposit(ctx, userID, decimal.RequireFromString("100"), "topup")
	require.NoError(t, err)
	assert.True(t, wallet.Balance.Equal(decimal.NewFromInt(100)))

	wallet, err = tc.WalletRepo.Withdraw(ctx, userID, decimal.RequireFromString("30.50"), "scrimmage:abc")
	require.NoError(t, err)
	assert.Equal(t, "69.50", wallet.Balance.StringFixed(2))
	assert.Equal(t, "30.50", wallet.TotalSpent.StringFixed(2))

	entries, err := tc.WalletRepo.ListEntries(ctx, userID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		if e.Kind == payments.EntryDebit {
			assert.Equal(t, "69.50", e.BalanceAfter.StringFixed(2))
		}
	}
}

func TestWalletSqliteRepository_InsufficientCredits(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	userID := uuid.NewString()

	_, err := tc.WalletRepo.Deposit(ctx, userID, decimal.NewFromInt(10), "topup")
	require.NoError(t, err)

	_, err = tc.WalletRepo.Withdraw(ctx, userID, decimal.NewFromInt(11), "spend")
	assert.ErrorIs(t, err, payments.ErrInsufficientCredits)

	wallet, err := tc.WalletRepo.GetOrCreate(ctx, userID)
	require.NoError(t, err)
	assert.True(t, wallet.Balance.Equal(decimal.NewFromInt(10)))

	entries, err := tc.WalletRepo.ListEntries(ctx, userID, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWalletSqliteRepository_RejectsNonPositive(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	_, err := tc.WalletRepo.Deposit(context.Background(), uuid.NewString(), decimal.Zero, "topup")
	assert.ErrorIs(t, err, payments.ErrInvalidAmount)
}

func TestTransactorSqlite_RollsBackWalletAndTransaction(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	userID := uuid.NewString()

	boom := errors.New("boom")
	err := tc.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := tc.WalletRepo.Deposit(ctx, userID, decimal.NewFromInt(50), "topup"); err != nil {
			return err
		}
		txn := CreateTestTransaction(t, userID, payments.SourceWallet, "", decimal.NewFromInt(50))
		if err := tc.TransactionRepo.Create(ctx, txn); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	wallet, err := tc.WalletRepo.GetOrCreate(ctx, userID)
	require.NoError(t, err)
	assert.True(t, wallet.Balance.IsZero())

	txns, err := tc.TransactionRepo.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestTransactionSqliteRepository_ListByRelatedFiltersStatus(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	relatedID := uuid.NewString()
	paid := CreateTestTransaction(t, uuid.NewString(), payments.SourceScrimmage, relatedID, decimal.NewFromInt(5))
	refunded := CreateTestTransaction(t, uuid.NewString(), payments.SourceScrimmage, relatedID, decimal.NewFromInt(5))
	refunded.Status = payments.StatusRefunded
	require.NoError(t, tc.TransactionRepo.Create(ctx, paid))
	require.NoError(t, tc.TransactionRepo.Create(ctx, refunded))

	list, err := tc.TransactionRepo.ListByRelated(ctx, payments.SourceScrimmage, relatedID, []string{payments.StatusSucceeded})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, paid.ID, list[0].ID)

	all, err := tc.TransactionRepo.ListByRelated(ctx, payments.SourceScrimmage, relatedID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = tc.TransactionRepo.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, payments.ErrTransactionNotFound)
}

func TestWebhookEventSqliteRepository_CreateIfAbsent(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	event := &payments.WebhookEvent{Provider: payments.ProviderOmise, EventID: "evn_1", Type: "charge.complete", ProcessedAt: time.Now()}

	created, err := tc.WebhookEventRepo.CreateIfAbsent(ctx, event)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = tc.WebhookEventRepo.CreateIfAbsent(ctx, event)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestBonusTierSqliteRepository_HighestFirst(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	for _, threshold := range []int64{100, 1000, 500} {
		require.NoError(t, tc.BonusTierRepo.Create(ctx, &payments.BonusTier{
			ID:           uuid.NewString(),
			MinAmount:    decimal.NewFromInt(threshold),
			BonusPercent: decimal.NewFromInt(5),
			Active:       true,
			CreatedAt:    time.Now(),
		}))
	}

	tiers, err := tc.BonusTierRepo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, tiers, 3)
	assert.True(t, tiers[0].MinAmount.Equal(decimal.NewFromInt(1000)))
}
