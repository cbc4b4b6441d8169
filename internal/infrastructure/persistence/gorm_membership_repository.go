package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/scrimhub/internal/domain/memberships"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormPlanRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPlanRepository creates a new GORM-based PlanRepository implementation
func NewGormPlanRepository(db *gorm.DB, logger logger.Logger) (memberships.PlanRepository, error) {
	return &gormPlanRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPlanRepository) Create(ctx context.Context, plan *memberships.Plan) error {
	if err := plan.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PlanModel{}
	model.FromDomain(plan)

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}

	r.logger.Info("Created membership plan with id ", plan.ID)
	return nil
}

func (r *gormPlanRepository) GetByID(ctx context.Context, planID string) (*memberships.Plan, error) {
	var model models.PlanModel
	if err := dbFrom(ctx, r.db).Where("id = ?", planID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("plan with ID %s: %w", planID, memberships.ErrPlanNotFound)
		}
		return nil, fmt.Errorf("failed to fetch plan: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormPlanRepository) ListActive(ctx context.Context) ([]*memberships.Plan, error) {
	var modelList []*models.PlanModel
	if err := dbFrom(ctx, r.db).Where("is_active = ?", true).Order("price").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch plans: %w", err)
	}

	domainList := make([]*memberships.Plan, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormPlanRepository) Update(ctx context.Context, plan *memberships.Plan) error {
	if err := plan.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PlanModel{}
	model.FromDomain(plan)

	if err := dbFrom(ctx, r.db).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}

	r.logger.Info("Updated membership plan with id ", plan.ID)
	return nil
}

type gormMembershipRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormMembershipRepository creates a new GORM-based MembershipRepository implementation
func NewGormMembershipRepository(db *gorm.DB, logger logger.Logger) (memberships.MembershipRepository, error) {
	return &gormMembershipRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormMembershipRepository) Create(ctx context.Context, m *memberships.Membership) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MembershipModel{}
	model.FromDomain(m)

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create membership: %w", err)
	}

	r.logger.Info("Created membership with id ", m.ID)
	return nil
}

func (r *gormMembershipRepository) GetByID(ctx context.Context, membershipID string) (*memberships.Membership, error) {
	var model models.MembershipModel
	if err := dbFrom(ctx, r.db).Where("id = ?", membershipID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("membership with ID %s: %w", membershipID, memberships.ErrMembershipNotFound)
		}
		return nil, fmt.Errorf("failed to fetch membership: %w", err)
	}
	return model.ToDomain(), nil
}

// GetByUserAndPlan returns the newest membership for the pair, or nil when there is none
func (r *gormMembershipRepository) GetByUserAndPlan(ctx context.Context, userID, planID string) (*memberships.Membership, error) {
	var model models.MembershipModel
	err := dbFrom(ctx, r.db).
		Where("user_id = ? AND plan_id = ?", userID, planID).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch membership: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormMembershipRepository) ListByUser(ctx context.Context, userID string) ([]*memberships.Membership, error) {
	var modelList []*models.MembershipModel
	if err := dbFrom(ctx, r.db).Where("user_id = ?", userID).Order("created_at DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch memberships: %w", err)
	}

	domainList := make([]*memberships.Membership, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

// EarliestDue returns the active or past-due membership with the nearest due date, or nil
func (r *gormMembershipRepository) EarliestDue(ctx context.Context, userID string) (*memberships.Membership, error) {
	var model models.MembershipModel
	err := dbFrom(ctx, r.db).
		Where("user_id = ? AND status IN ? AND next_due_date IS NOT NULL", userID,
			[]string{memberships.StatusActive, memberships.StatusPastDue}).
		Order("next_due_date").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch due membership: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormMembershipRepository) Update(ctx context.Context, m *memberships.Membership) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MembershipModel{}
	model.FromDomain(m)

	if err := dbFrom(ctx, r.db).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update membership: %w", err)
	}

	r.logger.Info("Membership ", m.ID, " is now ", m.Status)
	return nil
}
