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

type gormPolicyRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPolicyRepository creates a new GORM-based PolicyRepository implementation
func NewGormPolicyRepository(db *gorm.DB, logger logger.Logger) (accounts.PolicyRepository, error) {
	return &gormPolicyRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPolicyRepository) GetPolicy(ctx context.Context) (*accounts.Policy, error) {
	var model models.PolicyModel
	if err := dbFrom(ctx, r.db).Where("id = ?", 1).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return accounts.DefaultPolicy(), nil
		}
		return nil, fmt.Errorf("failed to fetch sign-in policy: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormPolicyRepository) SavePolicy(ctx context.Context, policy *accounts.Policy) error {
	model := &models.PolicyModel{}
	model.FromDomain(policy)

	if err := dbFrom(ctx, r.db).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save sign-in policy: %w", err)
	}

	r.logger.Info("Saved global sign-in policy")
	return nil
}

func (r *gormPolicyRepository) GetLockoutPolicy(ctx context.Context) (*accounts.LockoutPolicy, error) {
	var model models.LockoutPolicyModel
	if err := dbFrom(ctx, r.db).Where("id = ?", 1).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return accounts.DefaultLockoutPolicy(), nil
		}
		return nil, fmt.Errorf("failed to fetch lockout policy: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormPolicyRepository) SaveLockoutPolicy(ctx context.Context, policy *accounts.LockoutPolicy) error {
	if err := policy.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.LockoutPolicyModel{}
	model.FromDomain(policy)

	if err := dbFrom(ctx, r.db).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save lockout policy: %w", err)
	}

	r.logger.Info("Saved lockout policy")
	return nil
}

// GetAuthPolicy returns nil without error when no policy exists for the scope
func (r *gormPolicyRepository) GetAuthPolicy(ctx context.Context, scope string, userID *string) (*accounts.AuthPolicy, error) {
	query := dbFrom(ctx, r.db).Where("scope = ?", scope)
	if userID == nil {
		query = query.Where("user_id IS NULL")
	} else {
		query = query.Where("user_id = ?", *userID)
	}

	var model models.AuthPolicyModel
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch auth policy: %w", err)
	}
	return model.ToDomain(), nil
}

// SaveAuthPolicy replaces the policy stored for the same (scope, user) pair
func (r *gormPolicyRepository) SaveAuthPolicy(ctx context.Context, policy *accounts.AuthPolicy) error {
	if err := policy.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	existing, err := r.GetAuthPolicy(ctx, policy.Scope, policy.UserID)
	if err != nil {
		return err
	}
	if existing != nil {
		policy.ID = existing.ID
	}

	model := &models.AuthPolicyModel{}
	model.FromDomain(policy)

	if err := dbFrom(ctx, r.db).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save auth policy: %w", err)
	}

	r.logger.Info("Saved auth policy with id ", policy.ID)
	return nil
}
