package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/scrimhub/internal/domain/payments"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormTransactionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTransactionRepository creates a new GORM-based TransactionRepository implementation
func NewGormTransactionRepository(db *gorm.DB, logger logger.Logger) (payments.TransactionRepository, error) {
	return &gormTransactionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTransactionRepository) Create(ctx context.Context, txn *payments.Transaction) error {
	if err := txn.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TransactionModel{}
	model.FromDomain(txn)

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	r.logger.Info("Created ", txn.Status, " transaction with id ", txn.ID)
	return nil
}

func (r *gormTransactionRepository) GetByID(ctx context.Context, transactionID string) (*payments.Transaction, error) {
	return r.get(dbFrom(ctx, r.db), transactionID)
}

func (r *gormTransactionRepository) GetByIDForUpdate(ctx context.Context, transactionID string) (*payments.Transaction, error) {
	return r.get(dbFrom(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}), transactionID)
}

func (r *gormTransactionRepository) get(db *gorm.DB, transactionID string) (*payments.Transaction, error) {
	var model models.TransactionModel
	if err := db.Where("id = ?", transactionID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("transaction with ID %s: %w", transactionID, payments.ErrTransactionNotFound)
		}
		return nil, fmt.Errorf("failed to fetch transaction: %w", err)
	}
	return model.ToDomain(), nil
}

// GetByProviderRef locks the row when called inside a transaction and returns nil when nothing matches
func (r *gormTransactionRepository) GetByProviderRef(ctx context.Context, provider, providerRef string) (*payments.Transaction, error) {
	var model models.TransactionModel
	err := dbFrom(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("provider = ? AND provider_ref = ?", provider, providerRef).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch transaction: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTransactionRepository) Update(ctx context.Context, txn *payments.Transaction) error {
	if err := txn.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TransactionModel{}
	model.FromDomain(txn)

	if err := dbFrom(ctx, r.db).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	r.logger.Info("Transaction ", txn.ID, " is now ", txn.Status)
	return nil
}

func (r *gormTransactionRepository) ListByUser(ctx context.Context, userID string) ([]*payments.Transaction, error) {
	var modelList []*models.TransactionModel
	if err := dbFrom(ctx, r.db).Where("user_id = ?", userID).Order("created_at DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	return transactionsToDomain(modelList), nil
}

// ListByRelated returns the transactions of one scrimmage, event or plan. No statuses means all
func (r *gormTransactionRepository) ListByRelated(ctx context.Context, appSource, relatedID string, statuses []string) ([]*payments.Transaction, error) {
	query := dbFrom(ctx, r.db).Where("app_source = ? AND related_id = ?", appSource, relatedID)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	var modelList []*models.TransactionModel
	if err := query.Order("created_at").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	return transactionsToDomain(modelList), nil
}

func transactionsToDomain(modelList []*models.TransactionModel) []*payments.Transaction {
	domainList := make([]*payments.Transaction, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList
}
