package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/scrimhub/internal/domain/scrimmages"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCategoryRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCategoryRepository creates a new GORM-based CategoryRepository implementation
func NewGormCategoryRepository(db *gorm.DB, logger logger.Logger) (scrimmages.CategoryRepository, error) {
	return &gormCategoryRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCategoryRepository) Create(ctx context.Context, category *scrimmages.Category) error {
	if err := category.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CategoryModel{}
	model.FromDomain(category)

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", scrimmages.ErrSlugTaken, category.Slug)
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	r.logger.Info("Created scrimmage category ", category.Slug)
	return nil
}

func (r *gormCategoryRepository) GetByID(ctx context.Context, categoryID string) (*scrimmages.Category, error) {
	var model models.CategoryModel
	if err := dbFrom(ctx, r.db).Where("id = ?", categoryID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category with ID %s: %w", categoryID, scrimmages.ErrCategoryNotFound)
		}
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCategoryRepository) SlugsWithBase(ctx context.Context, base string) ([]string, error) {
	slugs, err := slugsWithBase(dbFrom(ctx, r.db).Model(&models.CategoryModel{}), base)
	if err != nil {
		return nil, fmt.Errorf("failed to list category slugs: %w", err)
	}
	return slugs, nil
}

func (r *gormCategoryRepository) List(ctx context.Context) ([]*scrimmages.Category, error) {
	var modelList []*models.CategoryModel
	if err := dbFrom(ctx, r.db).Order("name").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	domainList := make([]*scrimmages.Category, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

type gormTypeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTypeRepository creates a new GORM-based TypeRepository implementation
func NewGormTypeRepository(db *gorm.DB, logger logger.Logger) (scrimmages.TypeRepository, error) {
	return &gormTypeRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTypeRepository) Create(ctx context.Context, typ *scrimmages.Type) error {
	if err := typ.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TypeModel{}
	model.FromDomain(typ)

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", scrimmages.ErrSlugTaken, typ.Slug)
		}
		return fmt.Errorf("failed to create scrimmage type: %w", err)
	}

	r.logger.Info("Created scrimmage type ", typ.Slug)
	return nil
}

func (r *gormTypeRepository) GetByID(ctx context.Context, typeID string) (*scrimmages.Type, error) {
	var model models.TypeModel
	if err := dbFrom(ctx, r.db).Where("id = ?", typeID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("scrimmage type with ID %s: %w", typeID, scrimmages.ErrTypeNotFound)
		}
		return nil, fmt.Errorf("failed to fetch scrimmage type: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTypeRepository) SlugsWithBase(ctx context.Context, base string) ([]string, error) {
	slugs, err := slugsWithBase(dbFrom(ctx, r.db).Model(&models.TypeModel{}), base)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrimmage type slugs: %w", err)
	}
	return slugs, nil
}

// List returns all types, or those of one category when categoryID is set
func (r *gormTypeRepository) List(ctx context.Context, categoryID string) ([]*scrimmages.Type, error) {
	query := dbFrom(ctx, r.db).Order("name")
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var modelList []*models.TypeModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch scrimmage types: %w", err)
	}

	domainList := make([]*scrimmages.Type, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
