package events

import (
	"time"

	"github.com/MGTheTrain/scrimhub/internal/pkg/validators"
	"github.com/shopspring/decimal"
)

// Event statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusCancelled = "cancelled"
)

// RSVP statuses
const (
	RSVPInterested = "interested"
	RSVPGoing      = "going"
	RSVPWaitlist   = "waitlist"
	RSVPCheckedIn  = "checked_in"
	RSVPCancelled  = "cancelled"
)

// Event is a hosted event people RSVP to
type Event struct {
	ID                  string    `validate:"required,uuid4"`
	HostID              string    `validate:"required,uuid4"`
	GroupID             *string   `validate:"omitempty,uuid4"`
	Title               string    `validate:"required,max=200"`
	Description         string    `validate:"max=5000"`
	LocationName        string    `validate:"max=200"`
	Address             string    `validate:"max=300"`
	StartAt             time.Time `validate:"required"`
	EndAt               time.Time `validate:"required,gtfield=StartAt"`
	IsPublic            bool
	Tags                []string        `validate:"max=20,dive,max=40"`
	Capacity            int             `validate:"gte=0"`
	GoingCount          int             `validate:"gte=0"`
	EntryFee            decimal.Decimal `validate:"gte=0"`
	Currency            string          `validate:"required,currency"`
	AutoPayEnabled      bool
	OrganizerFeePercent decimal.Decimal `validate:"gte=0,lte=100"`
	OrganizerFeeFlat    decimal.Decimal `validate:"gte=0"`
	Status              string          `validate:"required,oneof=draft published cancelled"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Validate for validating Event struct
func (e *Event) Validate() error {
	return validators.ValidateStruct(e)
}

// CanManage reports whether userID may edit or cancel the event
func (e *Event) CanManage(userID string, isStaff bool) bool {
	return isStaff || e.HostID == userID
}

// VisibleTo reports whether a viewer may see the event. Anonymous viewers pass ""
func (e *Event) VisibleTo(viewerID string, isStaff bool) bool {
	if e.CanManage(viewerID, isStaff) {
		return true
	}
	return e.IsPublic && e.Status == StatusPublished
}

// HasRoom reports whether another attendee fits. Capacity 0 is unlimited
func (e *Event) HasRoom() bool {
	return e.Capacity == 0 || e.GoingCount < e.Capacity
}

// RSVP is a user's response to an event. One per (user, event)
type RSVP struct {
	ID        string `validate:"required,uuid4"`
	EventID   string `validate:"required,uuid4"`
	UserID    string `validate:"required,uuid4"`
	Status    string `validate:"required,oneof=interested going waitlist checked_in cancelled"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate for validating RSVP struct
func (r *RSVP) Validate() error {
	return validators.ValidateStruct(r)
}

// Attending reports whether the RSVP holds a seat
func (r *RSVP) Attending() bool {
	return r.Status == RSVPGoing || r.Status == RSVPCheckedIn
}
