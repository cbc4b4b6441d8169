package scrimmages

import (
	"time"

	"github.com/MGTheTrain/scrimhub/internal/pkg/validators"
	"github.com/shopspring/decimal"
)

// Visibility values
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// Scrimmage statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusCancelled = "cancelled"
)

// Participation roles
const (
	RolePlayer   = "player"
	RoleCoach    = "coach"
	RoleReferee  = "referee"
	RoleObserver = "observer"
)

// Participation statuses
const (
	ParticipationInvited   = "invited"
	ParticipationConfirmed = "confirmed"
	ParticipationDeclined  = "declined"
	ParticipationCheckedIn = "checked_in"
)

// DefaultMaxParticipants applies when a scrimmage is created without a limit
const DefaultMaxParticipants = 10

// Category groups scrimmage types, e.g. basketball
type Category struct {
	ID        string `validate:"required,uuid4"`
	Name      string `validate:"required,max=80"`
	Slug      string `validate:"required,slug"`
	CreatedAt time.Time
}

// Validate for validating Category struct
func (c *Category) Validate() error {
	return validators.ValidateStruct(c)
}

// Type is a kind of scrimmage with its own custom field schema
type Type struct {
	ID                string `validate:"required,uuid4"`
	CategoryID        string `validate:"required,uuid4"`
	Name              string `validate:"required,max=120"`
	Slug              string `validate:"required,slug"`
	CustomFieldSchema Schema
	CreatedAt         time.Time
}

// Validate for validating Type struct
func (t *Type) Validate() error {
	if err := validators.ValidateStruct(t); err != nil {
		return err
	}
	return t.CustomFieldSchema.Validate()
}

// Scrimmage is a pick-up game with a roster
type Scrimmage struct {
	ID                  string  `validate:"required,uuid4"`
	CreatorID           string  `validate:"required,uuid4"`
	GroupID             *string `validate:"omitempty,uuid4"`
	Title               string  `validate:"required,max=255"`
	Slug                string  `validate:"required,slug"`
	Description         string
	TypeID              string `validate:"required,uuid4"`
	CategoryID          string `validate:"required,uuid4"`
	CustomFields        map[string]interface{}
	LocationName        string          `validate:"max=255"`
	Address             string          `validate:"max=512"`
	StartAt             time.Time       `validate:"required"`
	EndAt               time.Time       `validate:"required,gtfield=StartAt"`
	MaxParticipants     int             `validate:"gte=1"`
	Visibility          string          `validate:"required,oneof=public private"`
	Tags                []string        `validate:"max=20,dive,max=40"`
	EntryFee            decimal.Decimal `validate:"gte=0"`
	Currency            string          `validate:"required,currency"`
	AutoPayEnabled      bool
	TeamPayEnabled      bool
	OrganizerFeePercent decimal.Decimal `validate:"gte=0,lte=100"`
	OrganizerFeeFlat    decimal.Decimal `validate:"gte=0"`
	PrizePoolAmount     decimal.Decimal `validate:"gte=0"`
	Status              string          `validate:"required,oneof=draft published cancelled"`
	ChatThreadID        string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Validate for validating Scrimmage struct
func (s *Scrimmage) Validate() error {
	return validators.ValidateStruct(s)
}

// CanManage reports whether userID may edit, cancel or pay out the scrimmage
func (s *Scrimmage) CanManage(userID string, isStaff bool) bool {
	return isStaff || s.CreatorID == userID
}

// VisibleTo reports whether a viewer may see the scrimmage. Anonymous viewers pass ""
func (s *Scrimmage) VisibleTo(viewerID string, isStaff bool) bool {
	if s.CanManage(viewerID, isStaff) {
		return true
	}
	return s.Visibility == VisibilityPublic && s.Status == StatusPublished
}

// Participation is a user's place on a scrimmage roster
type Participation struct {
	ID          string `validate:"required,uuid4"`
	ScrimmageID string `validate:"required,uuid4"`
	UserID      string `validate:"required,uuid4"`
	Role        string `validate:"required,oneof=player coach referee observer"`
	Status      string `validate:"required,oneof=invited confirmed declined checked_in"`
	Rating      float64
	Notes       string
	JoinedAt    time.Time
}

// Validate for validating Participation struct
func (p *Participation) Validate() error {
	return validators.ValidateStruct(p)
}

// Active reports whether the participation takes a roster spot
func (p *Participation) Active() bool {
	return p.Status == ParticipationConfirmed || p.Status == ParticipationCheckedIn
}
