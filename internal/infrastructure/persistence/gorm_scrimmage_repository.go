package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/scrimmages"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormScrimmageRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormScrimmageRepository creates a new GORM-based ScrimmageRepository implementation
func NewGormScrimmageRepository(db *gorm.DB, logger logger.Logger) (scrimmages.ScrimmageRepository, error) {
	return &gormScrimmageRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormScrimmageRepository) Create(ctx context.Context, scrim *scrimmages.Scrimmage) error {
	if err := scrim.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ScrimmageModel{}
	model.FromDomain(scrim)

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", scrimmages.ErrSlugTaken, scrim.Slug)
		}
		return fmt.Errorf("failed to create scrimmage: %w", err)
	}

	r.logger.Info("Created scrimmage with id ", scrim.ID)
	return nil
}

func (r *gormScrimmageRepository) GetByID(ctx context.Context, scrimmageID string) (*scrimmages.Scrimmage, error) {
	return r.get(dbFrom(ctx, r.db), scrimmageID)
}

func (r *gormScrimmageRepository) GetByIDForUpdate(ctx context.Context, scrimmageID string) (*scrimmages.Scrimmage, error) {
	return r.get(dbFrom(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}), scrimmageID)
}

func (r *gormScrimmageRepository) get(db *gorm.DB, scrimmageID string) (*scrimmages.Scrimmage, error) {
	var model models.ScrimmageModel
	if err := db.Where("id = ?", scrimmageID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("scrimmage with ID %s: %w", scrimmageID, scrimmages.ErrScrimmageNotFound)
		}
		return nil, fmt.Errorf("failed to fetch scrimmage: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormScrimmageRepository) SlugsWithBase(ctx context.Context, base string) ([]string, error) {
	slugs, err := slugsWithBase(dbFrom(ctx, r.db).Model(&models.ScrimmageModel{}), base)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrimmage slugs: %w", err)
	}
	return slugs, nil
}

// List returns the scrimmages the viewer may see, soonest first
func (r *gormScrimmageRepository) List(ctx context.Context, query *scrimmages.ScrimmageQuery) ([]*scrimmages.Scrimmage, error) {
	dbQuery := dbFrom(ctx, r.db).Model(&models.ScrimmageModel{})

	if !query.IsStaff {
		visible := "(visibility = ? AND status = ?)"
		if query.ViewerID != "" {
			dbQuery = dbQuery.Where(visible+" OR creator_id = ?", scrimmages.VisibilityPublic, scrimmages.StatusPublished, query.ViewerID)
		} else {
			dbQuery = dbQuery.Where(visible, scrimmages.VisibilityPublic, scrimmages.StatusPublished)
		}
	}
	if query.CategoryID != "" {
		dbQuery = dbQuery.Where("category_id = ?", query.CategoryID)
	}
	if query.TypeID != "" {
		dbQuery = dbQuery.Where("type_id = ?", query.TypeID)
	}
	if query.After != nil {
		dbQuery = dbQuery.Where("start_at >= ?", *query.After)
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	var modelList []*models.ScrimmageModel
	if err := dbQuery.Order("start_at").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch scrimmages: %w", err)
	}
	return scrimmagesToDomain(modelList), nil
}

// ListForUser returns scrimmages created by the user or with the user on the roster
func (r *gormScrimmageRepository) ListForUser(ctx context.Context, userID string, after *time.Time) ([]*scrimmages.Scrimmage, error) {
	db := dbFrom(ctx, r.db)
	roster := db.Session(&gorm.Session{NewDB: true}).
		Model(&models.ParticipationModel{}).
		Select("scrimmage_id").
		Where("user_id = ? AND status <> ?", userID, scrimmages.ParticipationDeclined)

	dbQuery := db.Where("creator_id = ? OR id IN (?)", userID, roster)
	if after != nil {
		dbQuery = dbQuery.Where("start_at >= ?", *after)
	}

	var modelList []*models.ScrimmageModel
	if err := dbQuery.Order("start_at").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch user scrimmages: %w", err)
	}
	return scrimmagesToDomain(modelList), nil
}

func (r *gormScrimmageRepository) Update(ctx context.Context, scrim *scrimmages.Scrimmage) error {
	if err := scrim.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ScrimmageModel{}
	model.FromDomain(scrim)

	if err := dbFrom(ctx, r.db).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update scrimmage: %w", err)
	}

	r.logger.Info("Updated scrimmage with id ", scrim.ID)
	return nil
}

// DeleteByID removes the scrimmage and its roster
func (r *gormScrimmageRepository) DeleteByID(ctx context.Context, scrimmageID string) error {
	err := dbFrom(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("scrimmage_id = ?", scrimmageID).Delete(&models.ParticipationModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", scrimmageID).Delete(&models.ScrimmageModel{}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete scrimmage: %w", err)
	}

	r.logger.Info("Deleted scrimmage with id ", scrimmageID)
	return nil
}

func scrimmagesToDomain(modelList []*models.ScrimmageModel) []*scrimmages.Scrimmage {
	domainList := make([]*scrimmages.Scrimmage, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList
}

type gormParticipationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormParticipationRepository creates a new GORM-based ParticipationRepository implementation
func NewGormParticipationRepository(db *gorm.DB, logger logger.Logger) (scrimmages.ParticipationRepository, error) {
	return &gormParticipationRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Get returns nil without error when the user has no roster entry
func (r *gormParticipationRepository) Get(ctx context.Context, scrimmageID, userID string) (*scrimmages.Participation, error) {
	var model models.ParticipationModel
	if err := dbFrom(ctx, r.db).Where("scrimmage_id = ? AND user_id = ?", scrimmageID, userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch participation: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormParticipationRepository) Save(ctx context.Context, participation *scrimmages.Participation) error {
	if err := participation.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ParticipationModel{}
	model.FromDomain(participation)

	if err := dbFrom(ctx, r.db).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save participation: %w", err)
	}

	r.logger.Info("User ", participation.UserID, " is ", participation.Status, " on scrimmage ", participation.ScrimmageID)
	return nil
}

func (r *gormParticipationRepository) Delete(ctx context.Context, scrimmageID, userID string) error {
	err := dbFrom(ctx, r.db).
		Where("scrimmage_id = ? AND user_id = ?", scrimmageID, userID).
		Delete(&models.ParticipationModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete participation: %w", err)
	}
	return nil
}

func (r *gormParticipationRepository) ListByScrimmage(ctx context.Context, scrimmageID string) ([]*scrimmages.Participation, error) {
	var modelList []*models.ParticipationModel
	if err := dbFrom(ctx, r.db).Where("scrimmage_id = ?", scrimmageID).Order("joined_at").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}

	domainList := make([]*scrimmages.Participation, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

// CountActive counts confirmed and checked-in participants
func (r *gormParticipationRepository) CountActive(ctx context.Context, scrimmageID string) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).
		Model(&models.ParticipationModel{}).
		Where("scrimmage_id = ? AND status IN ?", scrimmageID, []string{scrimmages.ParticipationConfirmed, scrimmages.ParticipationCheckedIn}).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count participants: %w", err)
	}
	return count, nil
}
