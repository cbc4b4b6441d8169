//go:build unit
// +build unit

package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWebhook_Stripe(t *testing.T) {
	raw := `{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_1","amount":1250,"currency":"usd",
		"metadata":{"user_id":"u1","purpose":"credit_purchase"}}}}`

	ev, err := NormalizeWebhook(ProviderStripe, []byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "evt_1", ev.ID)
	assert.Equal(t, OutcomeSucceeded, ev.Outcome)
	assert.Equal(t, "pi_1", ev.ObjectID)
	assert.True(t, d("12.50").Equal(ev.Amount))
	assert.Equal(t, "USD", ev.Currency)
	assert.Equal(t, PurposeCreditPurchase, ev.Metadata.Purpose)
}

func TestNormalizeWebhook_Paypal(t *testing.T) {
	raw := `{"id":"WH-1","event_type":"PAYMENT.CAPTURE.DENIED","resource":{"id":"cap_1",
		"amount":{"value":"9.99","currency_code":"EUR"},"custom_id":"{\"plan_id\":\"p1\",\"user_id\":\"u1\"}"}}`

	ev, err := NormalizeWebhook(ProviderPaypal, []byte(raw))
	require.NoError(t, err)
	assert.Equal(t, OutcomeFailed, ev.Outcome)
	assert.True(t, d("9.99").Equal(ev.Amount))
	assert.Equal(t, "p1", ev.Metadata.PlanID)
}

func TestNormalizeWebhook_PaypalPlainCustomID(t *testing.T) {
	raw := `{"id":"WH-2","event_type":"PAYMENT.CAPTURE.COMPLETED","resource":{"id":"cap_2","custom_id":"txn-42"}}`

	ev, err := NormalizeWebhook(ProviderPaypal, []byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "txn-42", ev.Metadata.TransactionID)
}

func TestNormalizeWebhook_Omise(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"successful", OutcomeSucceeded},
		{"failed", OutcomeFailed},
		{"pending", OutcomeIgnored},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			raw := `{"id":"evnt_1","key":"charge.complete","data":{"id":"chrg_1","amount":150000,"currency":"thb","status":"` + tt.status + `"}}`
			ev, err := NormalizeWebhook(ProviderOmise, []byte(raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, ev.Outcome)
			assert.True(t, d("1500").Equal(ev.Amount))
		})
	}
}

func TestNormalizeWebhook_Errors(t *testing.T) {
	_, err := NormalizeWebhook("square", []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnsupportedProvider)

	_, err = NormalizeWebhook(ProviderStripe, []byte(`not json`))
	assert.ErrorIs(t, err, ErrMalformedWebhook)

	_, err = NormalizeWebhook(ProviderStripe, []byte(`{"type":"charge.succeeded"}`))
	assert.ErrorIs(t, err, ErrMalformedWebhook)

	ev, err := NormalizeWebhook(ProviderStripe, []byte(`{"id":"evt_2","type":"customer.created"}`))
	require.NoError(t, err)
	assert.Equal(t, OutcomeIgnored, ev.Outcome)
}
