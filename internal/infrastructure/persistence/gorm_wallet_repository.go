package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/payments"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormWalletRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormWalletRepository creates a new GORM-based WalletRepository implementation.
// Balance changes lock the wallet row and append a ledger entry in the same transaction
func NewGormWalletRepository(db *gorm.DB, logger logger.Logger) (payments.WalletRepository, error) {
	return &gormWalletRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormWalletRepository) GetOrCreate(ctx context.Context, userID string) (*payments.Wallet, error) {
	var model *models.WalletModel
	err := dbFrom(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		var err error
		model, err = lockWallet(tx, userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormWalletRepository) Deposit(ctx context.Context, userID string, amount decimal.Decimal, source string) (*payments.Wallet, error) {
	return r.apply(ctx, userID, amount, payments.EntryCredit, source)
}

// Withdraw fails with ErrInsufficientCredits and leaves the balance untouched when it would go negative
func (r *gormWalletRepository) Withdraw(ctx context.Context, userID string, amount decimal.Decimal, source string) (*payments.Wallet, error) {
	return r.apply(ctx, userID, amount, payments.EntryDebit, source)
}

func (r *gormWalletRepository) apply(ctx context.Context, userID string, amount decimal.Decimal, kind, source string) (*payments.Wallet, error) {
	if !amount.IsPositive() {
		return nil, payments.ErrInvalidAmount
	}

	var model *models.WalletModel
	err := dbFrom(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		var err error
		model, err = lockWallet(tx, userID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if kind == payments.EntryDebit {
			if model.Balance.LessThan(amount) {
				return payments.ErrInsufficientCredits
			}
			model.Balance = model.Balance.Sub(amount)
			model.TotalSpent = model.TotalSpent.Add(amount)
		} else {
			model.Balance = model.Balance.Add(amount)
			model.TotalEarned = model.TotalEarned.Add(amount)
		}
		model.UpdatedAt = now

		if err := tx.Save(model).Error; err != nil {
			return err
		}

		entry := &models.CreditEntryModel{
			ID:           uuid.NewString(),
			UserID:       userID,
			Amount:       amount,
			Kind:         kind,
			Source:       source,
			BalanceAfter: model.Balance,
			CreatedAt:    now,
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		if errors.Is(err, payments.ErrInsufficientCredits) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to %s wallet: %w", kind, err)
	}

	r.logger.Info("Wallet ", kind, " of ", amount.StringFixed(2), " for user ", userID, " (", source, ")")
	return model.ToDomain(), nil
}

func (r *gormWalletRepository) ListEntries(ctx context.Context, userID string, limit int) ([]*payments.CreditEntry, error) {
	query := dbFrom(ctx, r.db).Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var modelList []*models.CreditEntryModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch credit entries: %w", err)
	}

	domainList := make([]*payments.CreditEntry, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

// lockWallet selects the wallet row FOR UPDATE, creating an empty wallet first when missing
func lockWallet(tx *gorm.DB, userID string) (*models.WalletModel, error) {
	empty := &models.WalletModel{
		UserID:      userID,
		Balance:     decimal.Zero,
		TotalEarned: decimal.Zero,
		TotalSpent:  decimal.Zero,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(empty).Error; err != nil {
		return nil, err
	}

	var model models.WalletModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("user_id = ?", userID).First(&model).Error; err != nil {
		return nil, err
	}
	return &model, nil
}
