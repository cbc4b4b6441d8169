package app

import (
	"context"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/calendar"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"github.com/google/uuid"
)

// calendarService implements the CalendarService interface
type calendarService struct {
	items  calendar.ItemRepository
	logger logger.Logger
}

// NewCalendarService creates a new instance of CalendarService
func NewCalendarService(items calendar.ItemRepository, logger logger.Logger) (calendar.CalendarService, error) {
	return &calendarService{items: items, logger: logger}, nil
}

func (s *calendarService) CreatePersonal(ctx context.Context, userID, title string, start, end time.Time) (*calendar.Item, error) {
	item := &calendar.Item{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      calendar.KindPersonal,
		Title:     title,
		StartAt:   start.UTC(),
		EndAt:     end.UTC(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *calendarService) AddGenerated(ctx context.Context, userID, title string, start, end time.Time, refType, refID string) (*calendar.Item, error) {
	item := &calendar.Item{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      calendar.KindEvent,
		Title:     title,
		StartAt:   start.UTC(),
		EndAt:     end.UTC(),
		RefType:   refType,
		RefID:     refID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *calendarService) RemoveGenerated(ctx context.Context, userID, refType, refID string) error {
	return s.items.DeleteByRef(ctx, userID, refType, refID)
}

func (s *calendarService) List(ctx context.Context, userID string) ([]*calendar.Item, error) {
	return s.items.ListByUser(ctx, userID)
}

func (s *calendarService) Delete(ctx context.Context, userID, itemID string) error {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.UserID != userID {
		return calendar.ErrForbidden
	}
	return s.items.DeleteByID(ctx, itemID)
}

func (s *calendarService) Feed(ctx context.Context, userID string, start, end time.Time) ([]*calendar.FeedItem, error) {
	if !end.After(start) {
		return nil, calendar.ErrInvalidWindow
	}
	items, err := s.items.ListOverlapping(ctx, userID, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}
	feed := make([]*calendar.FeedItem, len(items))
	for i, item := range items {
		feed[i] = item.ToFeed()
	}
	return feed, nil
}
