package scrimmages

import (
	"context"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/payments"
	"github.com/shopspring/decimal"
)

// ScrimmageInput carries the editable fields of a scrimmage
type ScrimmageInput struct {
	GroupID             *string
	Title               string
	Description         string
	TypeID              string
	CustomFields        map[string]interface{}
	LocationName        string
	Address             string
	StartAt             time.Time
	EndAt               time.Time
	MaxParticipants     int
	Visibility          string
	Tags                []string
	EntryFee            decimal.Decimal
	Currency            string
	AutoPayEnabled      bool
	TeamPayEnabled      bool
	OrganizerFeePercent decimal.Decimal
	OrganizerFeeFlat    decimal.Decimal
	PrizePoolAmount     decimal.Decimal
	Status              string
}

// ScrimmageQuery filters scrimmage listings
type ScrimmageQuery struct {
	ViewerID   string
	IsStaff    bool
	CategoryID string
	TypeID     string
	After      *time.Time
	Limit      int
	Offset     int
}

// ScrimmageService defines scrimmage, roster and catalog operations.
type ScrimmageService interface {
	// Create validates custom fields, stores the scrimmage, confirms the creator and
	// opens a chat thread for the roster.
	Create(ctx context.Context, creatorID string, input ScrimmageInput) (*Scrimmage, error)

	List(ctx context.Context, query *ScrimmageQuery) ([]*Scrimmage, error)
	GetByID(ctx context.Context, viewerID string, isStaff bool, scrimmageID string) (*Scrimmage, error)
	Update(ctx context.Context, actorID string, isStaff bool, scrimmageID string, input ScrimmageInput) (*Scrimmage, error)
	Delete(ctx context.Context, actorID string, isStaff bool, scrimmageID string) error

	// Mine lists scrimmages the user created or is on the roster of.
	Mine(ctx context.Context, userID string) ([]*Scrimmage, error)

	// Upcoming lists the user's scrimmages that have not started yet.
	Upcoming(ctx context.Context, userID string) ([]*Scrimmage, error)

	// Join confirms the user on the roster, charging the entry fee on first join.
	Join(ctx context.Context, userID, scrimmageID, role string) (*Participation, error)

	Leave(ctx context.Context, userID, scrimmageID string) error
	Invite(ctx context.Context, actorID string, isStaff bool, scrimmageID, targetUserID string) (*Participation, error)
	CheckIn(ctx context.Context, userID, scrimmageID string) (*Participation, error)
	Roster(ctx context.Context, scrimmageID string) ([]*Participation, error)

	// Cancel marks the scrimmage cancelled, refunds payments and notifies the roster.
	Cancel(ctx context.Context, actorID string, isStaff bool, scrimmageID string) ([]*payments.RefundResult, error)

	DistributePrizes(ctx context.Context, actorID string, isStaff bool, scrimmageID string, awards []payments.PrizeAward) ([]*payments.Transaction, error)

	CreateCategory(ctx context.Context, name string) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	CreateType(ctx context.Context, categoryID, name string, schema Schema) (*Type, error)
	ListTypes(ctx context.Context, categoryID string) ([]*Type, error)
}

// CategoryRepository defines the interface for Category-related operations
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, categoryID string) (*Category, error)
	// SlugsWithBase lists stored slugs equal to base or of the form base-N.
	SlugsWithBase(ctx context.Context, base string) ([]string, error)
	List(ctx context.Context) ([]*Category, error)
}

// TypeRepository defines the interface for Type-related operations
type TypeRepository interface {
	Create(ctx context.Context, scrimmageType *Type) error
	GetByID(ctx context.Context, typeID string) (*Type, error)
	// SlugsWithBase lists stored slugs equal to base or of the form base-N.
	SlugsWithBase(ctx context.Context, base string) ([]string, error)
	List(ctx context.Context, categoryID string) ([]*Type, error)
}

// ScrimmageRepository defines the interface for Scrimmage-related operations
type ScrimmageRepository interface {
	Create(ctx context.Context, scrimmage *Scrimmage) error
	GetByID(ctx context.Context, scrimmageID string) (*Scrimmage, error)
	// GetByIDForUpdate locks the scrimmage row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, scrimmageID string) (*Scrimmage, error)
	// SlugsWithBase lists stored slugs equal to base or of the form base-N.
	SlugsWithBase(ctx context.Context, base string) ([]string, error)
	List(ctx context.Context, query *ScrimmageQuery) ([]*Scrimmage, error)
	ListForUser(ctx context.Context, userID string, after *time.Time) ([]*Scrimmage, error)
	Update(ctx context.Context, scrimmage *Scrimmage) error
	DeleteByID(ctx context.Context, scrimmageID string) error
}

// ParticipationRepository defines the interface for Participation-related operations
type ParticipationRepository interface {
	Get(ctx context.Context, scrimmageID, userID string) (*Participation, error)
	Save(ctx context.Context, participation *Participation) error
	Delete(ctx context.Context, scrimmageID, userID string) error
	ListByScrimmage(ctx context.Context, scrimmageID string) ([]*Participation, error)
	CountActive(ctx context.Context, scrimmageID string) (int64, error)
}
