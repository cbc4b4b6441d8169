package payments

// App sources tie a transaction to the feature that created it
const (
	SourceMembership = "membership"
	SourceScrimmage  = "scrimmage"
	SourceEvent      = "event"
	SourceWallet     = "wallet"
	SourceGeneral    = "general"
)

// Providers
const (
	ProviderCredits = "credits"
	ProviderStripe  = "stripe"
	ProviderPaypal  = "paypal"
	ProviderOmise   = "omise"
)

// Methods
const (
	MethodCard    = "card"
	MethodWallet  = "wallet"
	MethodCredits = "credits"
	// MethodPrize marks a payout into a winner's wallet rather than a payment
	MethodPrize = "prize"
)

// Transaction statuses
const (
	StatusPending   = "pending"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
	StatusRefunded  = "refunded"
)

// Ledger entry kinds
const (
	EntryCredit = "credit"
	EntryDebit  = "debit"
)

// Ledger source prefixes
const (
	LedgerBonusPrefix        = "bonus:"
	LedgerRefundPrefix       = "refund:"
	LedgerPrizePrefix        = "prize:"
	LedgerOrganizerFeePrefix = "organizer_fee:"
)

// Normalized webhook outcomes
const (
	OutcomeSucceeded = "payment.succeeded"
	OutcomeFailed    = "payment.failed"
	OutcomeIgnored   = "ignored"
)

// Webhook metadata purposes
const PurposeCreditPurchase = "credit_purchase"
