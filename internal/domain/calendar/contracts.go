package calendar

import (
	"context"
	"time"
)

// CalendarService defines calendar operations.
type CalendarService interface {
	// CreatePersonal adds a personal item to the user's calendar.
	CreatePersonal(ctx context.Context, userID, title string, start, end time.Time) (*Item, error)

	// AddGenerated adds an item produced by an event or scrimmage.
	AddGenerated(ctx context.Context, userID, title string, start, end time.Time, refType, refID string) (*Item, error)

	// RemoveGenerated deletes the user's items for a reference, if any.
	RemoveGenerated(ctx context.Context, userID, refType, refID string) error

	List(ctx context.Context, userID string) ([]*Item, error)
	Delete(ctx context.Context, userID, itemID string) error

	// Feed returns items overlapping [start, end) in calendar widget form.
	Feed(ctx context.Context, userID string, start, end time.Time) ([]*FeedItem, error)
}

// ItemRepository defines the interface for Item-related operations
type ItemRepository interface {
	Create(ctx context.Context, item *Item) error
	GetByID(ctx context.Context, itemID string) (*Item, error)
	ListByUser(ctx context.Context, userID string) ([]*Item, error)
	ListOverlapping(ctx context.Context, userID string, start, end time.Time) ([]*Item, error)
	DeleteByID(ctx context.Context, itemID string) error
	DeleteByRef(ctx context.Context, userID, refType, refID string) error
}
