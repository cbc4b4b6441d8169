package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/scrimhub/internal/domain/events"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormEventRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormEventRepository creates a new GORM-based EventRepository implementation
func NewGormEventRepository(db *gorm.DB, logger logger.Logger) (events.EventRepository, error) {
	return &gormEventRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormEventRepository) Create(ctx context.Context, event *events.Event) error {
	if err := event.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.EventModel{}
	model.FromDomain(event)

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	r.logger.Info("Created event with id ", event.ID)
	return nil
}

func (r *gormEventRepository) GetByID(ctx context.Context, eventID string) (*events.Event, error) {
	return r.get(dbFrom(ctx, r.db), eventID)
}

func (r *gormEventRepository) GetByIDForUpdate(ctx context.Context, eventID string) (*events.Event, error) {
	return r.get(dbFrom(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}), eventID)
}

func (r *gormEventRepository) get(db *gorm.DB, eventID string) (*events.Event, error) {
	var model models.EventModel
	if err := db.Where("id = ?", eventID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("event with ID %s: %w", eventID, events.ErrEventNotFound)
		}
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	return model.ToDomain(), nil
}

// List returns the events the viewer may see, soonest first
func (r *gormEventRepository) List(ctx context.Context, query *events.EventQuery) ([]*events.Event, error) {
	dbQuery := dbFrom(ctx, r.db).Model(&models.EventModel{})

	if !query.IsStaff {
		visible := "(is_public = ? AND status = ?)"
		if query.ViewerID != "" {
			dbQuery = dbQuery.Where(visible+" OR host_id = ?", true, events.StatusPublished, query.ViewerID)
		} else {
			dbQuery = dbQuery.Where(visible, true, events.StatusPublished)
		}
	}
	if query.GroupID != "" {
		dbQuery = dbQuery.Where("group_id = ?", query.GroupID)
	}
	if query.From != nil {
		dbQuery = dbQuery.Where("start_at >= ?", *query.From)
	}
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	var modelList []*models.EventModel
	if err := dbQuery.Order("start_at").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	domainList := make([]*events.Event, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormEventRepository) Update(ctx context.Context, event *events.Event) error {
	if err := event.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.EventModel{}
	model.FromDomain(event)

	if err := dbFrom(ctx, r.db).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	r.logger.Info("Updated event with id ", event.ID)
	return nil
}

// DeleteByID removes the event and its RSVPs
func (r *gormEventRepository) DeleteByID(ctx context.Context, eventID string) error {
	err := dbFrom(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", eventID).Delete(&models.RSVPModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", eventID).Delete(&models.EventModel{}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	r.logger.Info("Deleted event with id ", eventID)
	return nil
}

type gormRSVPRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormRSVPRepository creates a new GORM-based RSVPRepository implementation
func NewGormRSVPRepository(db *gorm.DB, logger logger.Logger) (events.RSVPRepository, error) {
	return &gormRSVPRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Get returns nil without error when the user never responded
func (r *gormRSVPRepository) Get(ctx context.Context, eventID, userID string) (*events.RSVP, error) {
	var model models.RSVPModel
	if err := dbFrom(ctx, r.db).Where("event_id = ? AND user_id = ?", eventID, userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch rsvp: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormRSVPRepository) Save(ctx context.Context, rsvp *events.RSVP) error {
	if err := rsvp.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.RSVPModel{}
	model.FromDomain(rsvp)

	if err := dbFrom(ctx, r.db).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save rsvp: %w", err)
	}

	r.logger.Info("User ", rsvp.UserID, " is ", rsvp.Status, " for event ", rsvp.EventID)
	return nil
}

func (r *gormRSVPRepository) ListByEvent(ctx context.Context, eventID string) ([]*events.RSVP, error) {
	var modelList []*models.RSVPModel
	if err := dbFrom(ctx, r.db).Where("event_id = ?", eventID).Order("created_at").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch rsvps: %w", err)
	}

	domainList := make([]*events.RSVP, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

// CountAttending counts going and checked-in RSVPs
func (r *gormRSVPRepository) CountAttending(ctx context.Context, eventID string) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).
		Model(&models.RSVPModel{}).
		Where("event_id = ? AND status IN ?", eventID, []string{events.RSVPGoing, events.RSVPCheckedIn}).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count attendees: %w", err)
	}
	return count, nil
}

// FirstWaitlisted returns the oldest waitlisted RSVP, or nil when the waitlist is empty
func (r *gormRSVPRepository) FirstWaitlisted(ctx context.Context, eventID string) (*events.RSVP, error) {
	var model models.RSVPModel
	err := dbFrom(ctx, r.db).
		Where("event_id = ? AND status = ?", eventID, events.RSVPWaitlist).
		Order("updated_at").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch waitlist: %w", err)
	}
	return model.ToDomain(), nil
}
