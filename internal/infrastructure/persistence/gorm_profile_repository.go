package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/scrimhub/internal/domain/profiles"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormProfileRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProfileRepository creates a new GORM-based ProfileRepository implementation
func NewGormProfileRepository(db *gorm.DB, logger logger.Logger) (profiles.ProfileRepository, error) {
	return &gormProfileRepository{
		db:     db,
		logger: logger,
	}, nil
}

// GetByUserID returns nil without error when the user never saved a profile
func (r *gormProfileRepository) GetByUserID(ctx context.Context, userID string) (*profiles.Profile, error) {
	var model models.ProfileModel
	if err := dbFrom(ctx, r.db).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormProfileRepository) Save(ctx context.Context, profile *profiles.Profile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProfileModel{}
	model.FromDomain(profile)

	if err := dbFrom(ctx, r.db).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	r.logger.Info("Saved profile for user ", profile.UserID)
	return nil
}

type gormFollowRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormFollowRepository creates a new GORM-based FollowRepository implementation
func NewGormFollowRepository(db *gorm.DB, logger logger.Logger) (profiles.FollowRepository, error) {
	return &gormFollowRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormFollowRepository) Exists(ctx context.Context, followerID, followeeID string) (bool, error) {
	var count int64
	err := dbFrom(ctx, r.db).
		Model(&models.FollowModel{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to query follow: %w", err)
	}
	return count > 0, nil
}

func (r *gormFollowRepository) Create(ctx context.Context, follow *profiles.Follow) error {
	model := &models.FollowModel{
		FollowerID: follow.FollowerID,
		FolloweeID: follow.FolloweeID,
		CreatedAt:  follow.CreatedAt,
	}
	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create follow: %w", err)
	}

	r.logger.Info("User ", follow.FollowerID, " followed ", follow.FolloweeID)
	return nil
}

func (r *gormFollowRepository) Delete(ctx context.Context, followerID, followeeID string) error {
	err := dbFrom(ctx, r.db).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.FollowModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}

	r.logger.Info("User ", followerID, " unfollowed ", followeeID)
	return nil
}

func (r *gormFollowRepository) Followers(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := dbFrom(ctx, r.db).
		Model(&models.FollowModel{}).
		Where("followee_id = ?", userID).
		Order("created_at").
		Pluck("follower_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch followers: %w", err)
	}
	return ids, nil
}

func (r *gormFollowRepository) Following(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := dbFrom(ctx, r.db).
		Model(&models.FollowModel{}).
		Where("follower_id = ?", userID).
		Order("created_at").
		Pluck("followee_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch followed users: %w", err)
	}
	return ids, nil
}
