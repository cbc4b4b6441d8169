package payments

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// WebhookMetadata is the metadata attached to a provider object when it was created
type WebhookMetadata struct {
	UserID        string `json:"user_id"`
	PlanID        string `json:"plan_id"`
	Purpose       string `json:"purpose"`
	TransactionID string `json:"transaction_id"`
	AppSource     string `json:"app_source"`
	RelatedID     string `json:"related_id"`
}

// NormalizedEvent is a provider webhook reduced to what the payment flow needs
type NormalizedEvent struct {
	Provider string
	ID       string
	Type     string
	Outcome  string
	ObjectID string
	Amount   decimal.Decimal
	Currency string
	Metadata WebhookMetadata
}

var stripeOutcomes = map[string]string{
	"payment_intent.succeeded":      OutcomeSucceeded,
	"checkout.session.completed":    OutcomeSucceeded,
	"charge.succeeded":              OutcomeSucceeded,
	"invoice.paid":                  OutcomeSucceeded,
	"payment_intent.payment_failed": OutcomeFailed,
	"charge.failed":                 OutcomeFailed,
	"invoice.payment_failed":        OutcomeFailed,
}

var paypalOutcomes = map[string]string{
	"PAYMENT.CAPTURE.COMPLETED": OutcomeSucceeded,
	"PAYMENT.SALE.COMPLETED":    OutcomeSucceeded,
	"CHECKOUT.ORDER.COMPLETED":  OutcomeSucceeded,
	"PAYMENT.CAPTURE.DENIED":    OutcomeFailed,
	"PAYMENT.CAPTURE.DECLINED":  OutcomeFailed,
	"PAYMENT.SALE.DENIED":       OutcomeFailed,
}

// NormalizeWebhook parses a raw provider payload
func NormalizeWebhook(provider string, raw []byte) (*NormalizedEvent, error) {
	switch provider {
	case ProviderStripe:
		return normalizeStripe(raw)
	case ProviderPaypal:
		return normalizePaypal(raw)
	case ProviderOmise:
		return normalizeOmise(raw)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, provider)
	}
}

func outcomeOf(table map[string]string, eventType string) string {
	if outcome, ok := table[eventType]; ok {
		return outcome
	}
	return OutcomeIgnored
}

func minorUnits(amount int64) decimal.Decimal {
	return decimal.New(amount, -2)
}

func normalizeStripe(raw []byte) (*NormalizedEvent, error) {
	var payload struct {
		ID   string `json:"id"`
		Type string `json:"type"`
		Data struct {
			Object struct {
				ID       string          `json:"id"`
				Amount   int64           `json:"amount"`
				Total    int64           `json:"amount_total"`
				Currency string          `json:"currency"`
				Metadata WebhookMetadata `json:"metadata"`
			} `json:"object"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWebhook, err)
	}
	if payload.ID == "" || payload.Type == "" {
		return nil, fmt.Errorf("%w: missing id or type", ErrMalformedWebhook)
	}

	obj := payload.Data.Object
	amount := obj.Amount
	if amount == 0 {
		amount = obj.Total
	}
	return &NormalizedEvent{
		Provider: ProviderStripe,
		ID:       payload.ID,
		Type:     payload.Type,
		Outcome:  outcomeOf(stripeOutcomes, payload.Type),
		ObjectID: obj.ID,
		Amount:   minorUnits(amount),
		Currency: strings.ToUpper(obj.Currency),
		Metadata: obj.Metadata,
	}, nil
}

func normalizePaypal(raw []byte) (*NormalizedEvent, error) {
	var payload struct {
		ID        string `json:"id"`
		EventType string `json:"event_type"`
		Resource  struct {
			ID     string `json:"id"`
			Amount struct {
				Value        string `json:"value"`
				CurrencyCode string `json:"currency_code"`
			} `json:"amount"`
			CustomID string `json:"custom_id"`
		} `json:"resource"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWebhook, err)
	}
	if payload.ID == "" || payload.EventType == "" {
		return nil, fmt.Errorf("%w: missing id or event_type", ErrMalformedWebhook)
	}

	res := payload.Resource
	amount := decimal.Zero
	if res.Amount.Value != "" {
		parsed, err := decimal.NewFromString(res.Amount.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: amount %q", ErrMalformedWebhook, res.Amount.Value)
		}
		amount = parsed
	}

	// custom_id carries the metadata as a JSON object
	var meta WebhookMetadata
	if res.CustomID != "" {
		if err := json.Unmarshal([]byte(res.CustomID), &meta); err != nil {
			meta.TransactionID = res.CustomID
		}
	}

	return &NormalizedEvent{
		Provider: ProviderPaypal,
		ID:       payload.ID,
		Type:     payload.EventType,
		Outcome:  outcomeOf(paypalOutcomes, payload.EventType),
		ObjectID: res.ID,
		Amount:   amount,
		Currency: strings.ToUpper(res.Amount.CurrencyCode),
		Metadata: meta,
	}, nil
}

func normalizeOmise(raw []byte) (*NormalizedEvent, error) {
	var payload struct {
		ID   string `json:"id"`
		Key  string `json:"key"`
		Data struct {
			ID       string          `json:"id"`
			Amount   int64           `json:"amount"`
			Currency string          `json:"currency"`
			Status   string          `json:"status"`
			Metadata WebhookMetadata `json:"metadata"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWebhook, err)
	}
	if payload.ID == "" || payload.Key == "" {
		return nil, fmt.Errorf("%w: missing id or key", ErrMalformedWebhook)
	}

	outcome := OutcomeIgnored
	if payload.Key == "charge.complete" {
		switch payload.Data.Status {
		case "successful":
			outcome = OutcomeSucceeded
		case "failed", "expired":
			outcome = OutcomeFailed
		}
	}

	return &NormalizedEvent{
		Provider: ProviderOmise,
		ID:       payload.ID,
		Type:     payload.Key,
		Outcome:  outcome,
		ObjectID: payload.Data.ID,
		Amount:   minorUnits(payload.Data.Amount),
		Currency: strings.ToUpper(payload.Data.Currency),
		Metadata: payload.Data.Metadata,
	}, nil
}
