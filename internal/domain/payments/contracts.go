package payments

import (
	"context"

	"github.com/shopspring/decimal"
)

// WalletService defines credit wallet operations.
type WalletService interface {
	// Balance returns the user's wallet, creating an empty one on first access.
	Balance(ctx context.Context, userID string) (*Wallet, error)

	// TopUp credits the wallet.
	TopUp(ctx context.Context, userID string, amount decimal.Decimal, source string) (*Wallet, error)

	// TopUpWithBonus credits the wallet plus the bonus of the best matching tier.
	// It returns the wallet and the bonus granted.
	TopUpWithBonus(ctx context.Context, userID string, amount decimal.Decimal, source string) (*Wallet, decimal.Decimal, error)

	// Spend debits the wallet. It fails with ErrInsufficientCredits when the balance is too low.
	Spend(ctx context.Context, userID string, amount decimal.Decimal, source string) (*Wallet, error)

	// History returns ledger entries, newest first.
	History(ctx context.Context, userID string, limit int) ([]*CreditEntry, error)
}

// PaymentService defines transaction flows shared by every paid feature.
type PaymentService interface {
	// CreateIntent records a pending card payment for the user.
	CreateIntent(ctx context.Context, userID string, input IntentInput) (*Transaction, error)

	ListMine(ctx context.Context, userID string) ([]*Transaction, error)
	GetByID(ctx context.Context, userID string, isStaff bool, transactionID string) (*Transaction, error)

	// AutoPay charges the payer from credits when possible, otherwise leaves a pending card payment.
	AutoPay(ctx context.Context, req *AutoPayRequest) (*AutoPayResult, error)

	// SettleOrganizerFees credits organizers for pending fees of a related object.
	// It returns the number of fees settled.
	SettleOrganizerFees(ctx context.Context, appSource, relatedID string) (int, error)

	// RefundCredits returns a transaction's amount to the payer's wallet.
	RefundCredits(ctx context.Context, transactionID, reason string) (*Transaction, error)

	// RefundCard refunds a card transaction through the gateway.
	RefundCard(ctx context.Context, transactionID, reason string) (*Transaction, error)

	// BulkRefund refunds every succeeded or pending payment of a related object. Prize
	// payouts are left alone.
	BulkRefund(ctx context.Context, appSource, relatedID, reason string) ([]*RefundResult, error)

	// DistributePrizePool pays each award into the winner's wallet. All payouts for
	// relatedID together may not exceed pool.
	DistributePrizePool(ctx context.Context, appSource, relatedID string, pool decimal.Decimal, awards []PrizeAward) ([]*Transaction, error)

	// UnifiedHistory merges wallet ledger entries and transactions, newest first.
	UnifiedHistory(ctx context.Context, userID string) ([]*HistoryItem, error)

	AddBonusTier(ctx context.Context, minAmount, bonusPercent decimal.Decimal) (*BonusTier, error)
	ListBonusTiers(ctx context.Context) ([]*BonusTier, error)
}

// WebhookService processes provider callbacks.
type WebhookService interface {
	// Handle normalizes and applies a provider event. Duplicate event ids are ignored
	// and reported with processed=false.
	Handle(ctx context.Context, provider string, raw []byte) (event *NormalizedEvent, processed bool, err error)
}

// MembershipActivator lets webhooks drive membership state without importing memberships
type MembershipActivator interface {
	ActivateFromPayment(ctx context.Context, userID, planID string) error
	MarkPastDue(ctx context.Context, userID, planID string) error
}

// CardGateway refunds card payments at the provider
type CardGateway interface {
	// Refund returns the provider's refund id.
	Refund(ctx context.Context, providerRef string, amount decimal.Decimal, currency string) (string, error)
}

// Transactor runs fn in a database transaction carried by the returned context
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TransactionRepository defines the interface for Transaction-related operations
type TransactionRepository interface {
	Create(ctx context.Context, txn *Transaction) error
	GetByID(ctx context.Context, transactionID string) (*Transaction, error)
	GetByIDForUpdate(ctx context.Context, transactionID string) (*Transaction, error)
	GetByProviderRef(ctx context.Context, provider, providerRef string) (*Transaction, error)
	Update(ctx context.Context, txn *Transaction) error
	ListByUser(ctx context.Context, userID string) ([]*Transaction, error)
	ListByRelated(ctx context.Context, appSource, relatedID string, statuses []string) ([]*Transaction, error)
}

// WalletRepository defines wallet and ledger persistence. Deposit and Withdraw lock
// the wallet row and append a ledger entry in one database transaction
type WalletRepository interface {
	GetOrCreate(ctx context.Context, userID string) (*Wallet, error)
	Deposit(ctx context.Context, userID string, amount decimal.Decimal, source string) (*Wallet, error)
	Withdraw(ctx context.Context, userID string, amount decimal.Decimal, source string) (*Wallet, error)
	ListEntries(ctx context.Context, userID string, limit int) ([]*CreditEntry, error)
}

// BonusTierRepository defines the interface for BonusTier-related operations
type BonusTierRepository interface {
	Create(ctx context.Context, tier *BonusTier) error
	ListActive(ctx context.Context) ([]*BonusTier, error)
}

// OrganizerFeeRepository defines the interface for OrganizerFee-related operations
type OrganizerFeeRepository interface {
	Create(ctx context.Context, fee *OrganizerFee) error
	ListPending(ctx context.Context, appSource, relatedID string) ([]*OrganizerFee, error)
	Update(ctx context.Context, fee *OrganizerFee) error
}

// WebhookEventRepository records processed webhook events
type WebhookEventRepository interface {
	// CreateIfAbsent stores the event and reports false when it was already recorded.
	CreateIfAbsent(ctx context.Context, event *WebhookEvent) (bool, error)
}
