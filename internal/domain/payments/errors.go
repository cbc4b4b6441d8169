package payments

import "errors"

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrNotRefundable       = errors.New("transaction cannot be refunded in its current status")
	ErrUnsupportedProvider = errors.New("unsupported payment provider")
	ErrMalformedWebhook    = errors.New("malformed webhook payload")
	ErrWebhookUnauthorized = errors.New("webhook token mismatch")
	ErrGatewayUnavailable  = errors.New("card gateway not configured")
	ErrForbidden           = errors.New("transaction belongs to another user")
	ErrNothingToDistribute = errors.New("no prize awards given")
	ErrPrizePoolExceeded   = errors.New("awards exceed the prize pool")
)
