package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/scrimhub/internal/domain/groups"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormGroupRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormGroupRepository creates a new GORM-based GroupRepository implementation
func NewGormGroupRepository(db *gorm.DB, logger logger.Logger) (groups.GroupRepository, error) {
	return &gormGroupRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormGroupRepository) Create(ctx context.Context, group *groups.Group) error {
	if err := group.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.GroupModel{}
	model.FromDomain(group)

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", groups.ErrSlugTaken, group.Slug)
		}
		return fmt.Errorf("failed to create group: %w", err)
	}

	r.logger.Info("Created group with id ", group.ID)
	return nil
}

func (r *gormGroupRepository) GetByID(ctx context.Context, groupID string) (*groups.Group, error) {
	var model models.GroupModel
	if err := dbFrom(ctx, r.db).Where("id = ?", groupID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("group with ID %s: %w", groupID, groups.ErrGroupNotFound)
		}
		return nil, fmt.Errorf("failed to fetch group: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormGroupRepository) SlugsWithBase(ctx context.Context, base string) ([]string, error) {
	slugs, err := slugsWithBase(dbFrom(ctx, r.db).Model(&models.GroupModel{}), base)
	if err != nil {
		return nil, fmt.Errorf("failed to list group slugs: %w", err)
	}
	return slugs, nil
}

func (r *gormGroupRepository) List(ctx context.Context) ([]*groups.Group, error) {
	var modelList []*models.GroupModel
	if err := dbFrom(ctx, r.db).Order("name").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch groups: %w", err)
	}

	domainList := make([]*groups.Group, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormGroupRepository) Update(ctx context.Context, group *groups.Group) error {
	if err := group.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.GroupModel{}
	model.FromDomain(group)

	if err := dbFrom(ctx, r.db).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}

	r.logger.Info("Updated group with id ", group.ID)
	return nil
}

// DeleteByID removes the group and its member rows
func (r *gormGroupRepository) DeleteByID(ctx context.Context, groupID string) error {
	err := dbFrom(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", groupID).Delete(&models.GroupMemberModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", groupID).Delete(&models.GroupModel{}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	r.logger.Info("Deleted group with id ", groupID)
	return nil
}

type gormMemberRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormMemberRepository creates a new GORM-based MemberRepository implementation
func NewGormMemberRepository(db *gorm.DB, logger logger.Logger) (groups.MemberRepository, error) {
	return &gormMemberRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormMemberRepository) Create(ctx context.Context, member *groups.GroupMember) error {
	if err := member.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.GroupMemberModel{}
	model.FromDomain(member)

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to add group member: %w", err)
	}

	r.logger.Info("Added user ", member.UserID, " to group ", member.GroupID)
	return nil
}

// Get returns nil without error when the user is not a member
func (r *gormMemberRepository) Get(ctx context.Context, groupID, userID string) (*groups.GroupMember, error) {
	var model models.GroupMemberModel
	if err := dbFrom(ctx, r.db).Where("group_id = ? AND user_id = ?", groupID, userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch group member: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormMemberRepository) Delete(ctx context.Context, groupID, userID string) error {
	err := dbFrom(ctx, r.db).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&models.GroupMemberModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove group member: %w", err)
	}

	r.logger.Info("Removed user ", userID, " from group ", groupID)
	return nil
}

func (r *gormMemberRepository) ListByGroup(ctx context.Context, groupID string) ([]*groups.GroupMember, error) {
	var modelList []*models.GroupMemberModel
	if err := dbFrom(ctx, r.db).Where("group_id = ?", groupID).Order("joined_at").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch group members: %w", err)
	}

	domainList := make([]*groups.GroupMember, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
