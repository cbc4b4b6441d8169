package payments

import (
	"time"

	"github.com/MGTheTrain/scrimhub/internal/pkg/validators"
	"github.com/shopspring/decimal"
)

// Transaction is a single money movement attempt
type Transaction struct {
	ID          string          `validate:"required,uuid4"`
	UserID      string          `validate:"required,uuid4"`
	AppSource   string          `validate:"required,oneof=membership scrimmage event wallet general"`
	RelatedID   string          `validate:"max=64"`
	Amount      decimal.Decimal `validate:"gt=0"`
	Currency    string          `validate:"required,currency"`
	Provider    string          `validate:"required,oneof=credits stripe paypal omise"`
	Method      string          `validate:"required,oneof=card wallet credits prize"`
	ProviderRef string
	Status      string `validate:"required,oneof=pending succeeded failed refunded"`
	Description string `validate:"max=255"`
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// Validate for validating Transaction struct
func (t *Transaction) Validate() error {
	return validators.ValidateStruct(t)
}

// Refundable reports whether a refund may be issued for the transaction. Prize
// payouts are never refundable
func (t *Transaction) Refundable() bool {
	if t.Method == MethodPrize {
		return false
	}
	return t.Status == StatusSucceeded || t.Status == StatusPending
}

// Wallet is a user's credit balance. One per user
type Wallet struct {
	UserID      string          `validate:"required,uuid4"`
	Balance     decimal.Decimal `validate:"gte=0"`
	TotalEarned decimal.Decimal `validate:"gte=0"`
	TotalSpent  decimal.Decimal `validate:"gte=0"`
	UpdatedAt   time.Time
}

// CreditEntry is an immutable ledger line with the balance it produced
type CreditEntry struct {
	ID           string          `validate:"required,uuid4"`
	UserID       string          `validate:"required,uuid4"`
	Amount       decimal.Decimal `validate:"gt=0"`
	Kind         string          `validate:"required,oneof=credit debit"`
	Source       string          `validate:"required,max=120"`
	BalanceAfter decimal.Decimal `validate:"gte=0"`
	CreatedAt    time.Time
}

// BonusTier grants extra credits on top-ups of at least MinAmount
type BonusTier struct {
	ID           string          `validate:"required,uuid4"`
	MinAmount    decimal.Decimal `validate:"gt=0"`
	BonusPercent decimal.Decimal `validate:"gt=0,lte=100"`
	Active       bool
	CreatedAt    time.Time
}

// Validate for validating BonusTier struct
func (b *BonusTier) Validate() error {
	return validators.ValidateStruct(b)
}

// OrganizerFee is owed to an organizer for a paid participation
type OrganizerFee struct {
	ID          string          `validate:"required,uuid4"`
	OrganizerID string          `validate:"required,uuid4"`
	AppSource   string          `validate:"required"`
	RelatedID   string          `validate:"required"`
	Amount      decimal.Decimal `validate:"gt=0"`
	Status      string          `validate:"required,oneof=pending succeeded"`
	CreatedAt   time.Time
}

// WebhookEvent records a processed provider event id
type WebhookEvent struct {
	Provider    string
	EventID     string
	Type        string
	ProcessedAt time.Time
}

// HistoryItem is a row of the merged ledger and transaction history
type HistoryItem struct {
	Kind        string          `json:"kind"`
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Direction   string          `json:"direction"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}
