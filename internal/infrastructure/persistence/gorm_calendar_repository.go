package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/calendar"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCalendarRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCalendarRepository creates a new GORM-based ItemRepository implementation
func NewGormCalendarRepository(db *gorm.DB, logger logger.Logger) (calendar.ItemRepository, error) {
	return &gormCalendarRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCalendarRepository) Create(ctx context.Context, item *calendar.Item) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CalendarItemModel{}
	model.FromDomain(item)

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create calendar item: %w", err)
	}

	r.logger.Info("Created calendar item with id ", item.ID)
	return nil
}

func (r *gormCalendarRepository) GetByID(ctx context.Context, itemID string) (*calendar.Item, error) {
	var model models.CalendarItemModel
	if err := dbFrom(ctx, r.db).Where("id = ?", itemID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("calendar item with ID %s: %w", itemID, calendar.ErrItemNotFound)
		}
		return nil, fmt.Errorf("failed to fetch calendar item: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCalendarRepository) ListByUser(ctx context.Context, userID string) ([]*calendar.Item, error) {
	var modelList []*models.CalendarItemModel
	if err := dbFrom(ctx, r.db).Where("user_id = ?", userID).Order("start_at").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch calendar items: %w", err)
	}
	return calendarItemsToDomain(modelList), nil
}

// ListOverlapping returns the user's items that intersect [start, end)
func (r *gormCalendarRepository) ListOverlapping(ctx context.Context, userID string, start, end time.Time) ([]*calendar.Item, error) {
	var modelList []*models.CalendarItemModel
	err := dbFrom(ctx, r.db).
		Where("user_id = ? AND start_at < ? AND end_at > ?", userID, end, start).
		Order("start_at").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch calendar items: %w", err)
	}
	return calendarItemsToDomain(modelList), nil
}

func (r *gormCalendarRepository) DeleteByID(ctx context.Context, itemID string) error {
	if err := dbFrom(ctx, r.db).Where("id = ?", itemID).Delete(&models.CalendarItemModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete calendar item: %w", err)
	}

	r.logger.Info("Deleted calendar item with id ", itemID)
	return nil
}

func (r *gormCalendarRepository) DeleteByRef(ctx context.Context, userID, refType, refID string) error {
	err := dbFrom(ctx, r.db).
		Where("user_id = ? AND ref_type = ? AND ref_id = ?", userID, refType, refID).
		Delete(&models.CalendarItemModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete calendar items: %w", err)
	}
	return nil
}

func calendarItemsToDomain(modelList []*models.CalendarItemModel) []*calendar.Item {
	domainList := make([]*calendar.Item, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList
}
