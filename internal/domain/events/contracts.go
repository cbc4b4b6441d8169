package events

import (
	"context"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/payments"
	"github.com/shopspring/decimal"
)

// EventInput carries the editable fields of an event
type EventInput struct {
	GroupID             *string
	Title               string
	Description         string
	LocationName        string
	Address             string
	StartAt             time.Time
	EndAt               time.Time
	IsPublic            bool
	Tags                []string
	Capacity            int
	EntryFee            decimal.Decimal
	Currency            string
	AutoPayEnabled      bool
	OrganizerFeePercent decimal.Decimal
	OrganizerFeeFlat    decimal.Decimal
	Status              string
}

// EventQuery filters event listings
type EventQuery struct {
	ViewerID string
	IsStaff  bool
	GroupID  string
	From     *time.Time
	Limit    int
	Offset   int
}

// EventService defines event and RSVP operations.
type EventService interface {
	// Create stores the event, adds it to the host's calendar and charges any setup fee.
	Create(ctx context.Context, hostID string, input EventInput) (*Event, error)

	List(ctx context.Context, query *EventQuery) ([]*Event, error)
	GetByID(ctx context.Context, viewerID string, isStaff bool, eventID string) (*Event, error)
	Update(ctx context.Context, actorID string, isStaff bool, eventID string, input EventInput) (*Event, error)
	Delete(ctx context.Context, actorID string, isStaff bool, eventID string) error

	// RSVP sets the caller's response. Going over capacity lands on the waitlist and
	// leaving a seat promotes the earliest waitlisted RSVP.
	RSVP(ctx context.Context, userID, eventID, status string) (*RSVP, error)

	CheckIn(ctx context.Context, userID, eventID string) (*RSVP, error)
	Attendees(ctx context.Context, eventID string) ([]*RSVP, error)

	// Cancel marks the event cancelled, refunds payments and notifies RSVPs.
	Cancel(ctx context.Context, actorID string, isStaff bool, eventID string) ([]*payments.RefundResult, error)
}

// EventRepository defines the interface for Event-related operations
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, eventID string) (*Event, error)
	// GetByIDForUpdate locks the event row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, eventID string) (*Event, error)
	List(ctx context.Context, query *EventQuery) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	DeleteByID(ctx context.Context, eventID string) error
}

// RSVPRepository defines the interface for RSVP-related operations
type RSVPRepository interface {
	Get(ctx context.Context, eventID, userID string) (*RSVP, error)
	Save(ctx context.Context, rsvp *RSVP) error
	ListByEvent(ctx context.Context, eventID string) ([]*RSVP, error)
	CountAttending(ctx context.Context, eventID string) (int64, error)
	FirstWaitlisted(ctx context.Context, eventID string) (*RSVP, error)
}
