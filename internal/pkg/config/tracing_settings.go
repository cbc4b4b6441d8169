package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// TracingSettings configures OpenTelemetry export
type TracingSettings struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint" validate:"required_if=Enabled true"`
	ServiceName string `mapstructure:"service_name" validate:"required_if=Enabled true"`
	Environment string `mapstructure:"environment"`
}

// Validate checks that all fields in TracingSettings are valid
func (s *TracingSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for TracingSettings: %w", err)
	}
	return nil
}
