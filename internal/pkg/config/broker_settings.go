package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Broker backends
const (
	AmqpBrokerType = "amqp"
	NatsBrokerType = "nats"
	NoneBrokerType = "none"
)

// BrokerSettings configures where domain events are published
type BrokerSettings struct {
	Type     string `mapstructure:"type" validate:"required,oneof=amqp nats none"`
	URL      string `mapstructure:"url" validate:"required_unless=Type none"`
	Exchange string `mapstructure:"exchange" validate:"required_if=Type amqp"`
	Queue    string `mapstructure:"queue"`
	Prefetch int    `mapstructure:"prefetch" validate:"min=0"`
}

// Validate checks that all fields in BrokerSettings are valid
func (s *BrokerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for BrokerSettings: %w", err)
	}
	return nil
}
