package messaging

import (
	"fmt"

	"github.com/MGTheTrain/scrimhub/internal/domain/notifications"
	"github.com/MGTheTrain/scrimhub/internal/pkg/config"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"
)

// NewPublisher builds the publisher selected by settings.Type
func NewPublisher(settings *config.BrokerSettings, logger logger.Logger) (notifications.EventPublisher, error) {
	switch settings.Type {
	case config.AmqpBrokerType:
		p, err := NewAmqpPublisher(settings.URL, settings.Exchange)
		if err != nil {
			return nil, err
		}
		logger.Info("Publishing events to exchange ", settings.Exchange)
		return p, nil
	case config.NatsBrokerType:
		p, err := NewNatsPublisher(settings.URL)
		if err != nil {
			return nil, err
		}
		logger.Info("Publishing events to nats at ", settings.URL)
		return p, nil
	case config.NoneBrokerType:
		logger.Warn("No message broker configured, events will not be published")
		return NewNoopPublisher(), nil
	default:
		return nil, fmt.Errorf("unsupported broker type: %s", settings.Type)
	}
}

// NewConsumer builds the consumer selected by settings.Type
func NewConsumer(settings *config.BrokerSettings, bindings []string, logger logger.Logger) (notifications.EventConsumer, error) {
	switch settings.Type {
	case config.AmqpBrokerType:
		return NewAmqpConsumer(settings.URL, settings.Exchange, settings.Queue, bindings, settings.Prefetch, logger)
	case config.NatsBrokerType:
		return NewNatsConsumer(settings.URL, settings.Queue, bindings, logger)
	case config.NoneBrokerType:
		return nil, ErrNoBroker
	default:
		return nil, fmt.Errorf("unsupported broker type: %s", settings.Type)
	}
}
