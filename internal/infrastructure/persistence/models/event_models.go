package models

import (
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/calendar"
	"github.com/MGTheTrain/scrimhub/internal/domain/events"
	"github.com/shopspring/decimal"
)

// EventModel is the GORM database model for events
type EventModel struct {
	ID                  string          `gorm:"primaryKey;type:uuid"`
	HostID              string          `gorm:"not null;index;type:uuid"`
	GroupID             *string         `gorm:"index;type:uuid"`
	Title               string          `gorm:"not null;type:varchar(200)"`
	Description         string          `gorm:"type:text"`
	LocationName        string          `gorm:"type:varchar(200)"`
	Address             string          `gorm:"type:varchar(300)"`
	StartAt             time.Time       `gorm:"not null;index"`
	EndAt               time.Time       `gorm:"not null"`
	IsPublic            bool            `gorm:"not null;index"`
	Tags                []string        `gorm:"serializer:json"`
	Capacity            int             `gorm:"not null;default:0"`
	GoingCount          int             `gorm:"not null;default:0"`
	EntryFee            decimal.Decimal `gorm:"not null;type:decimal(12,2)"`
	Currency            string          `gorm:"not null;type:char(3)"`
	AutoPayEnabled      bool            `gorm:"not null"`
	OrganizerFeePercent decimal.Decimal `gorm:"not null;type:decimal(5,2)"`
	OrganizerFeeFlat    decimal.Decimal `gorm:"not null;type:decimal(12,2)"`
	Status              string          `gorm:"not null;index;type:varchar(10)"`
	CreatedAt           time.Time       `gorm:"not null"`
	UpdatedAt           time.Time
}

// TableName specifies the table name for GORM
func (EventModel) TableName() string {
	return "events"
}

// ToDomain converts GORM model to domain entity
func (m *EventModel) ToDomain() *events.Event {
	return &events.Event{
		ID:                  m.ID,
		HostID:              m.HostID,
		GroupID:             m.GroupID,
		Title:               m.Title,
		Description:         m.Description,
		LocationName:        m.LocationName,
		Address:             m.Address,
		StartAt:             m.StartAt,
		EndAt:               m.EndAt,
		IsPublic:            m.IsPublic,
		Tags:                m.Tags,
		Capacity:            m.Capacity,
		GoingCount:          m.GoingCount,
		EntryFee:            m.EntryFee,
		Currency:            m.Currency,
		AutoPayEnabled:      m.AutoPayEnabled,
		OrganizerFeePercent: m.OrganizerFeePercent,
		OrganizerFeeFlat:    m.OrganizerFeeFlat,
		Status:              m.Status,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EventModel) FromDomain(e *events.Event) {
	m.ID = e.ID
	m.HostID = e.HostID
	m.GroupID = e.GroupID
	m.Title = e.Title
	m.Description = e.Description
	m.LocationName = e.LocationName
	m.Address = e.Address
	m.StartAt = e.StartAt
	m.EndAt = e.EndAt
	m.IsPublic = e.IsPublic
	m.Tags = e.Tags
	m.Capacity = e.Capacity
	m.GoingCount = e.GoingCount
	m.EntryFee = e.EntryFee
	m.Currency = e.Currency
	m.AutoPayEnabled = e.AutoPayEnabled
	m.OrganizerFeePercent = e.OrganizerFeePercent
	m.OrganizerFeeFlat = e.OrganizerFeeFlat
	m.Status = e.Status
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// RSVPModel is the GORM database model for event RSVPs
type RSVPModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	EventID   string    `gorm:"not null;uniqueIndex:idx_rsvp_event_user;type:uuid"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_rsvp_event_user;type:uuid"`
	Status    string    `gorm:"not null;index;type:varchar(12)"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (RSVPModel) TableName() string {
	return "event_rsvps"
}

// ToDomain converts GORM model to domain entity
func (m *RSVPModel) ToDomain() *events.RSVP {
	return &events.RSVP{
		ID:        m.ID,
		EventID:   m.EventID,
		UserID:    m.UserID,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *RSVPModel) FromDomain(r *events.RSVP) {
	m.ID = r.ID
	m.EventID = r.EventID
	m.UserID = r.UserID
	m.Status = r.Status
	m.CreatedAt = r.CreatedAt
	m.UpdatedAt = r.UpdatedAt
}

// CalendarItemModel is the GORM database model for calendar entries
type CalendarItemModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	UserID    string    `gorm:"not null;index:idx_calendar_user_start;type:uuid"`
	Kind      string    `gorm:"not null;type:varchar(10)"`
	Title     string    `gorm:"not null;type:varchar(200)"`
	StartAt   time.Time `gorm:"not null;index:idx_calendar_user_start"`
	EndAt     time.Time `gorm:"not null"`
	RefType   string    `gorm:"type:varchar(10);index:idx_calendar_ref"`
	RefID     string    `gorm:"type:varchar(36);index:idx_calendar_ref"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CalendarItemModel) TableName() string {
	return "calendar_items"
}

// ToDomain converts GORM model to domain entity
func (m *CalendarItemModel) ToDomain() *calendar.Item {
	return &calendar.Item{
		ID:        m.ID,
		UserID:    m.UserID,
		Kind:      m.Kind,
		Title:     m.Title,
		StartAt:   m.StartAt,
		EndAt:     m.EndAt,
		RefType:   m.RefType,
		RefID:     m.RefID,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CalendarItemModel) FromDomain(i *calendar.Item) {
	m.ID = i.ID
	m.UserID = i.UserID
	m.Kind = i.Kind
	m.Title = i.Title
	m.StartAt = i.StartAt
	m.EndAt = i.EndAt
	m.RefType = i.RefType
	m.RefID = i.RefID
	m.CreatedAt = i.CreatedAt
}
