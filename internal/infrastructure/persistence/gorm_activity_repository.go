package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormActivityRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormActivityRepository creates a new GORM-based ActivityRepository implementation
func NewGormActivityRepository(db *gorm.DB, logger logger.Logger) (accounts.ActivityRepository, error) {
	return &gormActivityRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormActivityRepository) CreateLoginActivity(ctx context.Context, activity *accounts.LoginActivity) error {
	model := &models.LoginActivityModel{}
	model.FromDomain(activity)

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to record login activity: %w", err)
	}
	return nil
}

func (r *gormActivityRepository) HasSuccessfulLogin(ctx context.Context, userID, ip, userAgent string) (bool, error) {
	var count int64
	err := dbFrom(ctx, r.db).
		Model(&models.LoginActivityModel{}).
		Where("user_id = ? AND ip = ? AND user_agent = ? AND successful = ?", userID, ip, userAgent, true).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to query login activity: %w", err)
	}
	return count > 0, nil
}

func (r *gormActivityRepository) ListLoginActivity(ctx context.Context, userID string, limit int) ([]*accounts.LoginActivity, error) {
	var modelList []*models.LoginActivityModel
	query := dbFrom(ctx, r.db).Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch login activity: %w", err)
	}

	domainList := make([]*accounts.LoginActivity, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormActivityRepository) CreateRequestLog(ctx context.Context, entry *accounts.AuthRequestLog) error {
	model := &models.AuthRequestLogModel{}
	model.FromDomain(entry)

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to record auth request: %w", err)
	}
	return nil
}

// ListRequestLogs returns the newest entries first. An empty userID lists all users
func (r *gormActivityRepository) ListRequestLogs(ctx context.Context, userID string, limit int) ([]*accounts.AuthRequestLog, error) {
	var modelList []*models.AuthRequestLogModel
	query := dbFrom(ctx, r.db).Order("created_at DESC")
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch auth request logs: %w", err)
	}

	domainList := make([]*accounts.AuthRequestLog, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
