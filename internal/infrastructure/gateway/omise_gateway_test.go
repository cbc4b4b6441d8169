//go:build unit
// +build unit

package gateway

import (
	"context"
	"testing"

	"github.com/MGTheTrain/scrimhub/internal/domain/payments"
	"github.com/MGTheTrain/scrimhub/internal/pkg/config"
	"github.com/MGTheTrain/scrimhub/internal/pkg/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1999), MinorUnits(decimal.RequireFromString("19.99")))
	assert.Equal(t, int64(500), MinorUnits(decimal.NewFromInt(5)))
	assert.Equal(t, int64(1), MinorUnits(decimal.RequireFromString("0.005")))
}

func TestNewCardGateway_Unavailable(t *testing.T) {
	g, err := NewCardGateway(&config.PaymentSettings{DefaultCurrency: "USD"}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = g.Refund(context.Background(), "chrg_test", decimal.NewFromInt(10), "USD")
	assert.ErrorIs(t, err, payments.ErrGatewayUnavailable)
}

func TestOmiseGateway_MissingReference(t *testing.T) {
	g, err := NewOmiseGateway("pkey_test_123", "skey_test_123", testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = g.Refund(context.Background(), "", decimal.NewFromInt(10), "THB")
	assert.ErrorIs(t, err, payments.ErrNotRefundable)
}
