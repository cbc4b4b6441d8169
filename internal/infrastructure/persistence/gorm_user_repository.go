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

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (accounts.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *accounts.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return accounts.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Info("Created user with id ", user.ID)
	return nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, userID string) (*accounts.User, error) {
	var model models.UserModel
	if err := dbFrom(ctx, r.db).Where("id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with ID %s: %w", userID, accounts.ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*accounts.User, error) {
	var model models.UserModel
	if err := dbFrom(ctx, r.db).Where("email = ?", accounts.NormalizeEmail(email)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with email %s: %w", email, accounts.ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) Update(ctx context.Context, user *accounts.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := dbFrom(ctx, r.db).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return accounts.ErrEmailTaken
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// DeleteByID removes the user together with the rows that only make sense for that user
func (r *gormUserRepository) DeleteByID(ctx context.Context, userID string) error {
	err := dbFrom(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		owned := []interface{}{
			&models.PasswordHistoryModel{},
			&models.MFAMethodModel{},
			&models.BackupCodeModel{},
			&models.OneTimeTokenModel{},
			&models.OneTimeCodeModel{},
			&models.LoginActivityModel{},
			&models.AuthPolicyModel{},
			&models.ProfileModel{},
			&models.NotificationModel{},
			&models.CalendarItemModel{},
		}
		for _, m := range owned {
			if err := tx.Where("user_id = ?", userID).Delete(m).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("follower_id = ? OR followee_id = ?", userID, userID).Delete(&models.FollowModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", userID).Delete(&models.UserModel{}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	r.logger.Info("Deleted user with id ", userID)
	return nil
}

func (r *gormUserRepository) ListStaff(ctx context.Context) ([]*accounts.User, error) {
	var modelList []*models.UserModel
	err := dbFrom(ctx, r.db).
		Where("is_staff = ? AND is_active = ? AND is_disabled = ? AND is_soft_deleted = ?", true, true, false, false).
		Order("created_at").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff users: %w", err)
	}

	domainList := make([]*accounts.User, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormUserRepository) AddPasswordHistory(ctx context.Context, entry *accounts.PasswordHistory) error {
	model := &models.PasswordHistoryModel{}
	model.FromDomain(entry)

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to record password history: %w", err)
	}
	return nil
}

func (r *gormUserRepository) RecentPasswordHashes(ctx context.Context, userID string, limit int) ([]string, error) {
	var hashes []string
	err := dbFrom(ctx, r.db).
		Model(&models.PasswordHistoryModel{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Pluck("password_hash", &hashes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch password history: %w", err)
	}
	return hashes, nil
}
