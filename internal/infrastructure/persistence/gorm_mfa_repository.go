package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormMFARepository struct {
	db     *gorm.DB
	sealer accounts.SecretSealer
	logger logger.Logger
}

// NewGormMFARepository creates a new GORM-based MFARepository implementation.
// Method secrets are sealed before they reach the database.
func NewGormMFARepository(db *gorm.DB, sealer accounts.SecretSealer, logger logger.Logger) (accounts.MFARepository, error) {
	if sealer == nil {
		return nil, fmt.Errorf("secret sealer is required")
	}
	return &gormMFARepository{
		db:     db,
		sealer: sealer,
		logger: logger,
	}, nil
}

func (r *gormMFARepository) toDomain(model *models.MFAMethodModel) (*accounts.MFAMethod, error) {
	method := model.ToDomain()
	secret, err := r.sealer.Open(model.Secret)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s secret for user %s: %w", model.Type, model.UserID, err)
	}
	method.Secret = secret
	return method, nil
}

func (r *gormMFARepository) ListMethods(ctx context.Context, userID string) ([]*accounts.MFAMethod, error) {
	var modelList []*models.MFAMethodModel
	if err := dbFrom(ctx, r.db).Where("user_id = ?", userID).Order("created_at").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch mfa methods: %w", err)
	}

	domainList := make([]*accounts.MFAMethod, len(modelList))
	for i, model := range modelList {
		method, err := r.toDomain(model)
		if err != nil {
			return nil, err
		}
		domainList[i] = method
	}
	return domainList, nil
}

// GetMethod returns nil without error when the user has no method of that type
func (r *gormMFARepository) GetMethod(ctx context.Context, userID, mfaType string) (*accounts.MFAMethod, error) {
	var model models.MFAMethodModel
	if err := dbFrom(ctx, r.db).Where("user_id = ? AND type = ?", userID, mfaType).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch mfa method: %w", err)
	}
	return r.toDomain(&model)
}

func (r *gormMFARepository) SaveMethod(ctx context.Context, method *accounts.MFAMethod) error {
	if err := method.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MFAMethodModel{}
	model.FromDomain(method)
	sealed, err := r.sealer.Seal(method.Secret)
	if err != nil {
		return fmt.Errorf("failed to seal mfa secret: %w", err)
	}
	model.Secret = sealed

	if err := dbFrom(ctx, r.db).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save mfa method: %w", err)
	}

	r.logger.Info("Saved ", method.Type, " mfa method for user ", method.UserID)
	return nil
}

func (r *gormMFARepository) DeleteMethod(ctx context.Context, userID, mfaType string) error {
	if err := dbFrom(ctx, r.db).Where("user_id = ? AND type = ?", userID, mfaType).Delete(&models.MFAMethodModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete mfa method: %w", err)
	}

	r.logger.Info("Deleted ", mfaType, " mfa method for user ", userID)
	return nil
}

func (r *gormMFARepository) ReplaceBackupCodes(ctx context.Context, userID string, codes []*accounts.BackupCode) error {
	err := dbFrom(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.BackupCodeModel{}).Error; err != nil {
			return err
		}
		if len(codes) == 0 {
			return nil
		}
		modelList := make([]*models.BackupCodeModel, len(codes))
		for i, code := range codes {
			modelList[i] = &models.BackupCodeModel{}
			modelList[i].FromDomain(code)
		}
		return tx.Create(&modelList).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace backup codes: %w", err)
	}
	return nil
}

// UseBackupCode burns a matching unused code and reports whether one was found
func (r *gormMFARepository) UseBackupCode(ctx context.Context, userID, codeHash string, now time.Time) (bool, error) {
	result := dbFrom(ctx, r.db).
		Model(&models.BackupCodeModel{}).
		Where("user_id = ? AND code_hash = ? AND used = ?", userID, codeHash, false).
		Updates(map[string]interface{}{"used": true, "used_at": now})
	if result.Error != nil {
		return false, fmt.Errorf("failed to use backup code: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
