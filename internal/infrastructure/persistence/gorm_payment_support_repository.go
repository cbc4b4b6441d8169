package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/scrimhub/internal/domain/payments"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormBonusTierRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBonusTierRepository creates a new GORM-based BonusTierRepository implementation
func NewGormBonusTierRepository(db *gorm.DB, logger logger.Logger) (payments.BonusTierRepository, error) {
	return &gormBonusTierRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormBonusTierRepository) Create(ctx context.Context, tier *payments.BonusTier) error {
	if err := tier.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BonusTierModel{}
	model.FromDomain(tier)

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create bonus tier: %w", err)
	}

	r.logger.Info("Created bonus tier with id ", tier.ID)
	return nil
}

// ListActive returns active tiers with the highest threshold first
func (r *gormBonusTierRepository) ListActive(ctx context.Context) ([]*payments.BonusTier, error) {
	var modelList []*models.BonusTierModel
	if err := dbFrom(ctx, r.db).Where("active = ?", true).Order("min_amount DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch bonus tiers: %w", err)
	}

	domainList := make([]*payments.BonusTier, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

type gormOrganizerFeeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormOrganizerFeeRepository creates a new GORM-based OrganizerFeeRepository implementation
func NewGormOrganizerFeeRepository(db *gorm.DB, logger logger.Logger) (payments.OrganizerFeeRepository, error) {
	return &gormOrganizerFeeRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormOrganizerFeeRepository) Create(ctx context.Context, fee *payments.OrganizerFee) error {
	model := &models.OrganizerFeeModel{}
	model.FromDomain(fee)

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create organizer fee: %w", err)
	}

	r.logger.Info("Recorded organizer fee ", fee.Amount.StringFixed(2), " for ", fee.AppSource, " ", fee.RelatedID)
	return nil
}

func (r *gormOrganizerFeeRepository) ListPending(ctx context.Context, appSource, relatedID string) ([]*payments.OrganizerFee, error) {
	var modelList []*models.OrganizerFeeModel
	err := dbFrom(ctx, r.db).
		Where("app_source = ? AND related_id = ? AND status = ?", appSource, relatedID, payments.StatusPending).
		Order("created_at").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch organizer fees: %w", err)
	}

	domainList := make([]*payments.OrganizerFee, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormOrganizerFeeRepository) Update(ctx context.Context, fee *payments.OrganizerFee) error {
	model := &models.OrganizerFeeModel{}
	model.FromDomain(fee)

	if err := dbFrom(ctx, r.db).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update organizer fee: %w", err)
	}
	return nil
}

type gormWebhookEventRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormWebhookEventRepository creates a new GORM-based WebhookEventRepository implementation
func NewGormWebhookEventRepository(db *gorm.DB, logger logger.Logger) (payments.WebhookEventRepository, error) {
	return &gormWebhookEventRepository{
		db:     db,
		logger: logger,
	}, nil
}

// CreateIfAbsent records the event and reports false when it was already processed
func (r *gormWebhookEventRepository) CreateIfAbsent(ctx context.Context, event *payments.WebhookEvent) (bool, error) {
	model := &models.WebhookEventModel{}
	model.FromDomain(event)

	result := dbFrom(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(model)
	if result.Error != nil {
		return false, fmt.Errorf("failed to record webhook event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.Info("Skipping duplicate ", event.Provider, " webhook ", event.EventID)
		return false, nil
	}
	return true, nil
}
