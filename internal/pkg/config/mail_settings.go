package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Mail backends
const (
	ConsoleMailType  = "console"
	SendgridMailType = "sendgrid"
)

// MailSettings configures outbound mail
type MailSettings struct {
	Type      string `mapstructure:"type" validate:"required,oneof=console sendgrid"`
	APIKey    string `mapstructure:"api_key" validate:"required_if=Type sendgrid"`
	FromName  string `mapstructure:"from_name"`
	FromEmail string `mapstructure:"from_email" validate:"required_if=Type sendgrid,omitempty,email"`
}

// Validate checks that all fields in MailSettings are valid
func (s *MailSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for MailSettings: %w", err)
	}
	return nil
}
