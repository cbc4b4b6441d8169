package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// PaymentSettings configures the card provider and webhook intake
type PaymentSettings struct {
	DefaultCurrency string `mapstructure:"default_currency" validate:"required,len=3"`
	OmisePublicKey  string `mapstructure:"omise_public_key"`
	OmiseSecretKey  string `mapstructure:"omise_secret_key" validate:"required_with=OmisePublicKey"`
	WebhookToken    string `mapstructure:"webhook_token"`
}

// CardGatewayEnabled reports whether card refunds can be sent to the provider
func (s *PaymentSettings) CardGatewayEnabled() bool {
	return s.OmisePublicKey != "" && s.OmiseSecretKey != ""
}

// Validate checks that all fields in PaymentSettings are valid
func (s *PaymentSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for PaymentSettings: %w", err)
	}
	return nil
}
