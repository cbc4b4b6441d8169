package messaging

import (
	"context"
	"errors"

	"github.com/MGTheTrain/scrimhub/internal/domain/notifications"
)

// ErrNoBroker is returned by consumers when no broker is configured
var ErrNoBroker = errors.New("no message broker configured")

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event
func NewNoopPublisher() notifications.EventPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, string, interface{}) error { return nil }

func (noopPublisher) Close() error { return nil }
