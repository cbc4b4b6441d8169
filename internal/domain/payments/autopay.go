package payments

import "github.com/shopspring/decimal"

// AutoPayRequest describes a charge raised by a scrimmage, event or membership
type AutoPayRequest struct {
	UserID      string
	CreatorID   string
	TeamPay     bool
	AppSource   string
	RelatedID   string
	Amount      decimal.Decimal
	Currency    string
	OrganizerID string
	FeePercent  decimal.Decimal
	FeeFlat     decimal.Decimal
	Description string
}

// Payer is the creator when the team pays, otherwise the participant
func (r *AutoPayRequest) Payer() string {
	if r.TeamPay && r.CreatorID != "" {
		return r.CreatorID
	}
	return r.UserID
}

// AutoPayResult reports how a charge was settled
type AutoPayResult struct {
	Transaction     *Transaction
	Fee             *OrganizerFee
	PaidWithCredits bool
}

// IntentInput is a user-initiated card payment
type IntentInput struct {
	AppSource   string
	RelatedID   string
	Amount      decimal.Decimal
	Currency    string
	Provider    string
	Description string
}

// RefundResult is the per-transaction outcome of a bulk refund
type RefundResult struct {
	TransactionID string `json:"transaction_id"`
	UserID        string `json:"user_id"`
	Status        string `json:"status"`
	Error         string `json:"error,omitempty"`
}

// PrizeAward is one winner's share of a prize pool
type PrizeAward struct {
	UserID string
	Amount decimal.Decimal
}
