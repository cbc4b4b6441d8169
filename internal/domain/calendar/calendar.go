package calendar

import (
	"fmt"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/pkg/validators"
)

// Item kinds
const (
	KindPersonal = "personal"
	KindEvent    = "event"
)

// Reference types for generated items
const (
	RefEvent     = "event"
	RefScrimmage = "scrimmage"
)

// Feed colors
const (
	ColorEvent    = "#2563eb"
	ColorPersonal = "#10b981"
)

// Item is an entry on a user's calendar
type Item struct {
	ID        string    `validate:"required,uuid4"`
	UserID    string    `validate:"required,uuid4"`
	Kind      string    `validate:"required,oneof=personal event"`
	Title     string    `validate:"required,max=200"`
	StartAt   time.Time `validate:"required"`
	EndAt     time.Time `validate:"required,gtfield=StartAt"`
	RefType   string    `validate:"omitempty,oneof=event scrimmage"`
	RefID     string    `validate:"required_with=RefType"`
	CreatedAt time.Time
}

// Validate for validating Item struct
func (i *Item) Validate() error {
	return validators.ValidateStruct(i)
}

// Overlaps reports whether the item intersects [start, end)
func (i *Item) Overlaps(start, end time.Time) bool {
	return i.StartAt.Before(end) && i.EndAt.After(start)
}

// FeedItem is the calendar widget representation of an item
type FeedItem struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Color string    `json:"color"`
	URL   string    `json:"url,omitempty"`
}

// ToFeed renders the item for a calendar widget
func (i *Item) ToFeed() *FeedItem {
	feed := &FeedItem{ID: i.ID, Title: i.Title, Start: i.StartAt, End: i.EndAt, Color: ColorPersonal}
	if i.Kind == KindEvent {
		feed.Color = ColorEvent
	}
	switch i.RefType {
	case RefEvent:
		feed.URL = fmt.Sprintf("/events/%s", i.RefID)
	case RefScrimmage:
		feed.URL = fmt.Sprintf("/scrimmages/%s", i.RefID)
	}
	return feed
}
