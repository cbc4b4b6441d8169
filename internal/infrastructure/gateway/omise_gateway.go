package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/MGTheTrain/scrimhub/internal/domain/payments"
	"github.com/MGTheTrain/scrimhub/internal/pkg/config"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"
	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
	"github.com/shopspring/decimal"
)

type omiseGateway struct {
	client *omise.Client
	logger logger.Logger
}

// NewOmiseGateway creates a CardGateway backed by the Omise API
func NewOmiseGateway(publicKey, secretKey string, logger logger.Logger) (payments.CardGateway, error) {
	client, err := omise.NewClient(publicKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create omise client: %w", err)
	}
	client.SetDebug(false)
	return &omiseGateway{client: client, logger: logger}, nil
}

func (g *omiseGateway) Refund(_ context.Context, providerRef string, amount decimal.Decimal, currency string) (string, error) {
	if providerRef == "" {
		return "", fmt.Errorf("%w: missing charge reference", payments.ErrNotRefundable)
	}

	refund := &omise.Refund{}
	op := &operations.CreateRefund{
		ChargeID: providerRef,
		Amount:   MinorUnits(amount),
	}
	if err := g.client.Do(refund, op); err != nil {
		return "", fmt.Errorf("%w: %v", payments.ErrGatewayUnavailable, err)
	}

	g.logger.Info(fmt.Sprintf("Refunded %s %s on charge %s as %s", amount.StringFixed(2), strings.ToUpper(currency), providerRef, refund.ID))
	return refund.ID, nil
}

// MinorUnits converts a major-unit amount to the provider's smallest unit
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

type unavailableGateway struct{}

func (unavailableGateway) Refund(context.Context, string, decimal.Decimal, string) (string, error) {
	return "", payments.ErrGatewayUnavailable
}

// NewCardGateway returns the Omise gateway when keys are configured and a gateway
// that always fails with ErrGatewayUnavailable otherwise
func NewCardGateway(settings *config.PaymentSettings, logger logger.Logger) (payments.CardGateway, error) {
	if !settings.CardGatewayEnabled() {
		logger.Warn("No card provider keys configured, card refunds are unavailable")
		return unavailableGateway{}, nil
	}
	return NewOmiseGateway(settings.OmisePublicKey, settings.OmiseSecretKey, logger)
}
