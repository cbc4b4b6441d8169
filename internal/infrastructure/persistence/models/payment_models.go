package models

import (
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/payments"
	"github.com/shopspring/decimal"
)

// TransactionModel is the GORM database model for payment transactions
type TransactionModel struct {
	ID          string          `gorm:"primaryKey;type:uuid"`
	UserID      string          `gorm:"not null;index;type:uuid"`
	AppSource   string          `gorm:"not null;index:idx_txn_related;type:varchar(12)"`
	RelatedID   string          `gorm:"index:idx_txn_related;type:varchar(64)"`
	Amount      decimal.Decimal `gorm:"not null;type:decimal(12,2)"`
	Currency    string          `gorm:"not null;type:char(3)"`
	Provider    string          `gorm:"not null;index:idx_txn_provider_ref;type:varchar(10)"`
	Method      string          `gorm:"not null;type:varchar(10)"`
	ProviderRef string          `gorm:"index:idx_txn_provider_ref;type:varchar(255)"`
	Status      string          `gorm:"not null;index;type:varchar(10)"`
	Description string          `gorm:"type:varchar(255)"`
	CreatedAt   time.Time       `gorm:"not null;index"`
	ProcessedAt *time.Time
}

// TableName specifies the table name for GORM
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToDomain converts GORM model to domain entity
func (m *TransactionModel) ToDomain() *payments.Transaction {
	return &payments.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		AppSource:   m.AppSource,
		RelatedID:   m.RelatedID,
		Amount:      m.Amount,
		Currency:    m.Currency,
		Provider:    m.Provider,
		Method:      m.Method,
		ProviderRef: m.ProviderRef,
		Status:      m.Status,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		ProcessedAt: m.ProcessedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TransactionModel) FromDomain(t *payments.Transaction) {
	m.ID = t.ID
	m.UserID = t.UserID
	m.AppSource = t.AppSource
	m.RelatedID = t.RelatedID
	m.Amount = t.Amount
	m.Currency = t.Currency
	m.Provider = t.Provider
	m.Method = t.Method
	m.ProviderRef = t.ProviderRef
	m.Status = t.Status
	m.Description = t.Description
	m.CreatedAt = t.CreatedAt
	m.ProcessedAt = t.ProcessedAt
}

// WalletModel is the GORM database model for credit wallets
type WalletModel struct {
	UserID      string          `gorm:"primaryKey;type:uuid"`
	Balance     decimal.Decimal `gorm:"not null;type:decimal(12,2)"`
	TotalEarned decimal.Decimal `gorm:"not null;type:decimal(12,2)"`
	TotalSpent  decimal.Decimal `gorm:"not null;type:decimal(12,2)"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (WalletModel) TableName() string {
	return "credit_wallets"
}

// ToDomain converts GORM model to domain entity
func (m *WalletModel) ToDomain() *payments.Wallet {
	return &payments.Wallet{
		UserID:      m.UserID,
		Balance:     m.Balance,
		TotalEarned: m.TotalEarned,
		TotalSpent:  m.TotalSpent,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CreditEntryModel is the GORM database model for wallet ledger rows
type CreditEntryModel struct {
	ID           string          `gorm:"primaryKey;type:uuid"`
	UserID       string          `gorm:"not null;index:idx_credit_user_created;type:uuid"`
	Amount       decimal.Decimal `gorm:"not null;type:decimal(12,2)"`
	Kind         string          `gorm:"not null;type:varchar(6)"`
	Source       string          `gorm:"not null;type:varchar(120)"`
	BalanceAfter decimal.Decimal `gorm:"not null;type:decimal(12,2)"`
	CreatedAt    time.Time       `gorm:"not null;index:idx_credit_user_created"`
}

// TableName specifies the table name for GORM
func (CreditEntryModel) TableName() string {
	return "credit_entries"
}

// ToDomain converts GORM model to domain entity
func (m *CreditEntryModel) ToDomain() *payments.CreditEntry {
	return &payments.CreditEntry{
		ID:           m.ID,
		UserID:       m.UserID,
		Amount:       m.Amount,
		Kind:         m.Kind,
		Source:       m.Source,
		BalanceAfter: m.BalanceAfter,
		CreatedAt:    m.CreatedAt,
	}
}

// BonusTierModel is the GORM database model for top-up bonus tiers
type BonusTierModel struct {
	ID           string          `gorm:"primaryKey;type:uuid"`
	MinAmount    decimal.Decimal `gorm:"not null;type:decimal(12,2)"`
	BonusPercent decimal.Decimal `gorm:"not null;type:decimal(5,2)"`
	Active       bool            `gorm:"not null;index"`
	CreatedAt    time.Time       `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (BonusTierModel) TableName() string {
	return "credit_bonus_tiers"
}

// ToDomain converts GORM model to domain entity
func (m *BonusTierModel) ToDomain() *payments.BonusTier {
	return &payments.BonusTier{
		ID:           m.ID,
		MinAmount:    m.MinAmount,
		BonusPercent: m.BonusPercent,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BonusTierModel) FromDomain(t *payments.BonusTier) {
	m.ID = t.ID
	m.MinAmount = t.MinAmount
	m.BonusPercent = t.BonusPercent
	m.Active = t.Active
	m.CreatedAt = t.CreatedAt
}

// OrganizerFeeModel is the GORM database model for organizer fee payouts
type OrganizerFeeModel struct {
	ID          string          `gorm:"primaryKey;type:uuid"`
	OrganizerID string          `gorm:"not null;index;type:uuid"`
	AppSource   string          `gorm:"not null;index:idx_fee_related;type:varchar(12)"`
	RelatedID   string          `gorm:"not null;index:idx_fee_related;type:varchar(64)"`
	Amount      decimal.Decimal `gorm:"not null;type:decimal(12,2)"`
	Status      string          `gorm:"not null;index;type:varchar(10)"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (OrganizerFeeModel) TableName() string {
	return "organizer_fees"
}

// ToDomain converts GORM model to domain entity
func (m *OrganizerFeeModel) ToDomain() *payments.OrganizerFee {
	return &payments.OrganizerFee{
		ID:          m.ID,
		OrganizerID: m.OrganizerID,
		AppSource:   m.AppSource,
		RelatedID:   m.RelatedID,
		Amount:      m.Amount,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *OrganizerFeeModel) FromDomain(f *payments.OrganizerFee) {
	m.ID = f.ID
	m.OrganizerID = f.OrganizerID
	m.AppSource = f.AppSource
	m.RelatedID = f.RelatedID
	m.Amount = f.Amount
	m.Status = f.Status
	m.CreatedAt = f.CreatedAt
}

// WebhookEventModel records processed provider events for idempotency
type WebhookEventModel struct {
	Provider    string    `gorm:"primaryKey;type:varchar(10)"`
	EventID     string    `gorm:"primaryKey;type:varchar(255)"`
	Type        string    `gorm:"type:varchar(100)"`
	ProcessedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (WebhookEventModel) TableName() string {
	return "webhook_events"
}

// FromDomain converts domain entity to GORM model
func (m *WebhookEventModel) FromDomain(e *payments.WebhookEvent) {
	m.Provider = e.Provider
	m.EventID = e.EventID
	m.Type = e.Type
	m.ProcessedAt = e.ProcessedAt
}
