package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCredentialRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCredentialRepository creates a new GORM-based CredentialRepository implementation
func NewGormCredentialRepository(db *gorm.DB, logger logger.Logger) (accounts.CredentialRepository, error) {
	return &gormCredentialRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCredentialRepository) CreateToken(ctx context.Context, token *accounts.OneTimeToken) error {
	if err := token.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OneTimeTokenModel{}
	model.FromDomain(token)

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create %s token: %w", token.Purpose, err)
	}

	r.logger.Info("Issued ", token.Purpose, " token for user ", token.UserID)
	return nil
}

// GetTokenByHash returns nil without error when no token matches
func (r *gormCredentialRepository) GetTokenByHash(ctx context.Context, purpose, tokenHash string) (*accounts.OneTimeToken, error) {
	var model models.OneTimeTokenModel
	if err := dbFrom(ctx, r.db).Where("purpose = ? AND token_hash = ?", purpose, tokenHash).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch token: %w", err)
	}
	return model.ToDomain(), nil
}

// MarkTokenUsed is a conditional update so concurrent redemptions of one token
// cannot both succeed
func (r *gormCredentialRepository) MarkTokenUsed(ctx context.Context, tokenID string) (bool, error) {
	result := dbFrom(ctx, r.db).Model(&models.OneTimeTokenModel{}).
		Where("id = ? AND used = ?", tokenID, false).
		Update("used", true)
	if result.Error != nil {
		return false, fmt.Errorf("failed to consume token: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *gormCredentialRepository) CreateCode(ctx context.Context, code *accounts.OneTimeCode) error {
	if err := code.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OneTimeCodeModel{}
	model.FromDomain(code)

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create %s code: %w", code.Channel, err)
	}

	r.logger.Info("Issued ", code.Channel, " code for user ", code.UserID)
	return nil
}

// GetLatestCode returns nil without error when no code was issued
func (r *gormCredentialRepository) GetLatestCode(ctx context.Context, userID, channel, purpose string) (*accounts.OneTimeCode, error) {
	var model models.OneTimeCodeModel
	err := dbFrom(ctx, r.db).
		Where("user_id = ? AND channel = ? AND purpose = ?", userID, channel, purpose).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch code: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCredentialRepository) UpdateCode(ctx context.Context, code *accounts.OneTimeCode) error {
	model := &models.OneTimeCodeModel{}
	model.FromDomain(code)

	if err := dbFrom(ctx, r.db).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update code: %w", err)
	}
	return nil
}

func (r *gormCredentialRepository) MarkCodeVerified(ctx context.Context, codeID string) (bool, error) {
	result := dbFrom(ctx, r.db).Model(&models.OneTimeCodeModel{}).
		Where("id = ? AND verified = ?", codeID, false).
		Update("verified", true)
	if result.Error != nil {
		return false, fmt.Errorf("failed to verify code: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}
