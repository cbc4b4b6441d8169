package models

import (
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/scrimmages"
	"github.com/shopspring/decimal"
)

// CategoryModel is the GORM database model for scrimmage categories
type CategoryModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	Name      string    `gorm:"not null;type:varchar(80)"`
	Slug      string    `gorm:"not null;uniqueIndex;type:varchar(100)"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CategoryModel) TableName() string {
	return "scrimmage_categories"
}

// ToDomain converts GORM model to domain entity
func (m *CategoryModel) ToDomain() *scrimmages.Category {
	return &scrimmages.Category{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CategoryModel) FromDomain(c *scrimmages.Category) {
	m.ID = c.ID
	m.Name = c.Name
	m.Slug = c.Slug
	m.CreatedAt = c.CreatedAt
}

// TypeModel is the GORM database model for scrimmage types and their field schemas
type TypeModel struct {
	ID                string            `gorm:"primaryKey;type:uuid"`
	CategoryID        string            `gorm:"not null;index;type:uuid"`
	Name              string            `gorm:"not null;type:varchar(120)"`
	Slug              string            `gorm:"not null;uniqueIndex;type:varchar(140)"`
	CustomFieldSchema scrimmages.Schema `gorm:"serializer:json"`
	CreatedAt         time.Time         `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (TypeModel) TableName() string {
	return "scrimmage_types"
}

// ToDomain converts GORM model to domain entity
func (m *TypeModel) ToDomain() *scrimmages.Type {
	return &scrimmages.Type{
		ID:                m.ID,
		CategoryID:        m.CategoryID,
		Name:              m.Name,
		Slug:              m.Slug,
		CustomFieldSchema: m.CustomFieldSchema,
		CreatedAt:         m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TypeModel) FromDomain(t *scrimmages.Type) {
	m.ID = t.ID
	m.CategoryID = t.CategoryID
	m.Name = t.Name
	m.Slug = t.Slug
	m.CustomFieldSchema = t.CustomFieldSchema
	m.CreatedAt = t.CreatedAt
}

// ScrimmageModel is the GORM database model for scrimmages
type ScrimmageModel struct {
	ID                  string                 `gorm:"primaryKey;type:uuid"`
	CreatorID           string                 `gorm:"not null;index;type:uuid"`
	GroupID             *string                `gorm:"index;type:uuid"`
	Title               string                 `gorm:"not null;type:varchar(255)"`
	Slug                string                 `gorm:"not null;uniqueIndex;type:varchar(280)"`
	Description         string                 `gorm:"type:text"`
	TypeID              string                 `gorm:"not null;index;type:uuid"`
	CategoryID          string                 `gorm:"not null;index;type:uuid"`
	CustomFields        map[string]interface{} `gorm:"serializer:json"`
	LocationName        string                 `gorm:"type:varchar(255)"`
	Address             string                 `gorm:"type:varchar(512)"`
	StartAt             time.Time              `gorm:"not null;index"`
	EndAt               time.Time              `gorm:"not null"`
	MaxParticipants     int                    `gorm:"not null"`
	Visibility          string                 `gorm:"not null;index;type:varchar(10)"`
	Tags                []string               `gorm:"serializer:json"`
	EntryFee            decimal.Decimal        `gorm:"not null;type:decimal(12,2)"`
	Currency            string                 `gorm:"not null;type:char(3)"`
	AutoPayEnabled      bool                   `gorm:"not null"`
	TeamPayEnabled      bool                   `gorm:"not null"`
	OrganizerFeePercent decimal.Decimal        `gorm:"not null;type:decimal(5,2)"`
	OrganizerFeeFlat    decimal.Decimal        `gorm:"not null;type:decimal(12,2)"`
	PrizePoolAmount     decimal.Decimal        `gorm:"not null;type:decimal(12,2)"`
	Status              string                 `gorm:"not null;index;type:varchar(10)"`
	ChatThreadID        string                 `gorm:"type:varchar(36)"`
	CreatedAt           time.Time              `gorm:"not null"`
	UpdatedAt           time.Time
}

// TableName specifies the table name for GORM
func (ScrimmageModel) TableName() string {
	return "scrimmages"
}

// ToDomain converts GORM model to domain entity
func (m *ScrimmageModel) ToDomain() *scrimmages.Scrimmage {
	return &scrimmages.Scrimmage{
		ID:                  m.ID,
		CreatorID:           m.CreatorID,
		GroupID:             m.GroupID,
		Title:               m.Title,
		Slug:                m.Slug,
		Description:         m.Description,
		TypeID:              m.TypeID,
		CategoryID:          m.CategoryID,
		CustomFields:        m.CustomFields,
		LocationName:        m.LocationName,
		Address:             m.Address,
		StartAt:             m.StartAt,
		EndAt:               m.EndAt,
		MaxParticipants:     m.MaxParticipants,
		Visibility:          m.Visibility,
		Tags:                m.Tags,
		EntryFee:            m.EntryFee,
		Currency:            m.Currency,
		AutoPayEnabled:      m.AutoPayEnabled,
		TeamPayEnabled:      m.TeamPayEnabled,
		OrganizerFeePercent: m.OrganizerFeePercent,
		OrganizerFeeFlat:    m.OrganizerFeeFlat,
		PrizePoolAmount:     m.PrizePoolAmount,
		Status:              m.Status,
		ChatThreadID:        m.ChatThreadID,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ScrimmageModel) FromDomain(s *scrimmages.Scrimmage) {
	m.ID = s.ID
	m.CreatorID = s.CreatorID
	m.GroupID = s.GroupID
	m.Title = s.Title
	m.Slug = s.Slug
	m.Description = s.Description
	m.TypeID = s.TypeID
	m.CategoryID = s.CategoryID
	m.CustomFields = s.CustomFields
	m.LocationName = s.LocationName
	m.Address = s.Address
	m.StartAt = s.StartAt
	m.EndAt = s.EndAt
	m.MaxParticipants = s.MaxParticipants
	m.Visibility = s.Visibility
	m.Tags = s.Tags
	m.EntryFee = s.EntryFee
	m.Currency = s.Currency
	m.AutoPayEnabled = s.AutoPayEnabled
	m.TeamPayEnabled = s.TeamPayEnabled
	m.OrganizerFeePercent = s.OrganizerFeePercent
	m.OrganizerFeeFlat = s.OrganizerFeeFlat
	m.PrizePoolAmount = s.PrizePoolAmount
	m.Status = s.Status
	m.ChatThreadID = s.ChatThreadID
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
}

// ParticipationModel is the GORM database model for roster entries
type ParticipationModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	ScrimmageID string    `gorm:"not null;uniqueIndex:idx_participation;type:uuid"`
	UserID      string    `gorm:"not null;uniqueIndex:idx_participation;index;type:uuid"`
	Role        string    `gorm:"not null;type:varchar(10)"`
	Status      string    `gorm:"not null;type:varchar(12)"`
	Rating      float64   `gorm:"not null;default:0"`
	Notes       string    `gorm:"type:text"`
	JoinedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ParticipationModel) TableName() string {
	return "scrimmage_participations"
}

// ToDomain converts GORM model to domain entity
func (m *ParticipationModel) ToDomain() *scrimmages.Participation {
	return &scrimmages.Participation{
		ID:          m.ID,
		ScrimmageID: m.ScrimmageID,
		UserID:      m.UserID,
		Role:        m.Role,
		Status:      m.Status,
		Rating:      m.Rating,
		Notes:       m.Notes,
		JoinedAt:    m.JoinedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ParticipationModel) FromDomain(p *scrimmages.Participation) {
	m.ID = p.ID
	m.ScrimmageID = p.ScrimmageID
	m.UserID = p.UserID
	m.Role = p.Role
	m.Status = p.Status
	m.Rating = p.Rating
	m.Notes = p.Notes
	m.JoinedAt = p.JoinedAt
}
