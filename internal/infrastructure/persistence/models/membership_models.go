package models

import (
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/memberships"
	"github.com/shopspring/decimal"
)

// PlanModel is the GORM database model for membership plans
type PlanModel struct {
	ID          string          `gorm:"primaryKey;type:uuid"`
	Name        string          `gorm:"not null;type:varchar(120)"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(12,2)"`
	Currency    string          `gorm:"not null;type:char(3)"`
	Interval    string          `gorm:"not null;type:varchar(5)"`
	IsActive    bool            `gorm:"not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return "membership_plans"
}

// ToDomain converts GORM model to domain entity
func (m *PlanModel) ToDomain() *memberships.Plan {
	return &memberships.Plan{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Currency:    m.Currency,
		Interval:    m.Interval,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PlanModel) FromDomain(p *memberships.Plan) {
	m.ID = p.ID
	m.Name = p.Name
	m.Description = p.Description
	m.Price = p.Price
	m.Currency = p.Currency
	m.Interval = p.Interval
	m.IsActive = p.IsActive
	m.CreatedAt = p.CreatedAt
}

// MembershipModel is the GORM database model for plan subscriptions
type MembershipModel struct {
	ID               string    `gorm:"primaryKey;type:uuid"`
	UserID           string    `gorm:"not null;index:idx_membership_user_plan;type:uuid"`
	PlanID           string    `gorm:"not null;index:idx_membership_user_plan;type:uuid"`
	Status           string    `gorm:"not null;index;type:varchar(10)"`
	StartedAt        time.Time `gorm:"not null"`
	CurrentPeriodEnd *time.Time
	NextDueDate      *time.Time      `gorm:"index"`
	NextDueAmount    decimal.Decimal `gorm:"not null;type:decimal(12,2)"`
	AutoRenew        bool            `gorm:"not null"`
	ExternalRef      string          `gorm:"type:varchar(255)"`
	CreatedAt        time.Time       `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (MembershipModel) TableName() string {
	return "memberships"
}

// ToDomain converts GORM model to domain entity
func (m *MembershipModel) ToDomain() *memberships.Membership {
	return &memberships.Membership{
		ID:               m.ID,
		UserID:           m.UserID,
		PlanID:           m.PlanID,
		Status:           m.Status,
		StartedAt:        m.StartedAt,
		CurrentPeriodEnd: m.CurrentPeriodEnd,
		NextDueDate:      m.NextDueDate,
		NextDueAmount:    m.NextDueAmount,
		AutoRenew:        m.AutoRenew,
		ExternalRef:      m.ExternalRef,
		CreatedAt:        m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MembershipModel) FromDomain(ms *memberships.Membership) {
	m.ID = ms.ID
	m.UserID = ms.UserID
	m.PlanID = ms.PlanID
	m.Status = ms.Status
	m.StartedAt = ms.StartedAt
	m.CurrentPeriodEnd = ms.CurrentPeriodEnd
	m.NextDueDate = ms.NextDueDate
	m.NextDueAmount = ms.NextDueAmount
	m.AutoRenew = ms.AutoRenew
	m.ExternalRef = ms.ExternalRef
	m.CreatedAt = ms.CreatedAt
}
