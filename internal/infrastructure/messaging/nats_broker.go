package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MGTheTrain/scrimhub/internal/domain/notifications"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"
	"github.com/nats-io/nats.go"
)

type natsPublisher struct {
	nc *nats.Conn
}

// NewNatsPublisher connects to NATS. Routing keys are used as subjects
func NewNatsPublisher(url string) (notifications.EventPublisher, error) {
	nc, err := nats.Connect(url, nats.Name("scrimhub-publisher"))
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return &natsPublisher{nc: nc}, nil
}

func (p *natsPublisher) Publish(_ context.Context, routingKey string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", routingKey, err)
	}
	if err := p.nc.Publish(routingKey, body); err != nil {
		return fmt.Errorf("failed to publish %s: %w", routingKey, err)
	}
	return nil
}

func (p *natsPublisher) Close() error {
	if err := p.nc.Drain(); err != nil {
		p.nc.Close()
		return err
	}
	return nil
}

type natsConsumer struct {
	nc       *nats.Conn
	queue    string
	subjects []string
	logger   logger.Logger
}

// NewNatsConsumer joins a queue group on every binding. Topic wildcards are
// translated to NATS wildcards ("#" becomes ">")
func NewNatsConsumer(url, queue string, bindings []string, logger logger.Logger) (notifications.EventConsumer, error) {
	nc, err := nats.Connect(url, nats.Name("scrimhub-consumer"))
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}

	subjects := make([]string, len(bindings))
	for i, b := range bindings {
		subjects[i] = ToNatsSubject(b)
	}
	return &natsConsumer{nc: nc, queue: queue, subjects: subjects, logger: logger}, nil
}

// ToNatsSubject converts an AMQP topic binding to a NATS subject
func ToNatsSubject(binding string) string {
	parts := strings.Split(binding, ".")
	for i, p := range parts {
		if p == "#" {
			parts[i] = ">"
		}
	}
	return strings.Join(parts, ".")
}

// Consume blocks until ctx is done. Core NATS has no redelivery, so handler
// errors are logged and the message is dropped
func (c *natsConsumer) Consume(ctx context.Context, handle func(ctx context.Context, routingKey string, body []byte) error) error {
	subs := make([]*nats.Subscription, 0, len(c.subjects))
	defer func() {
		for _, s := range subs {
			_ = s.Unsubscribe()
		}
	}()

	for _, subject := range c.subjects {
		sub, err := c.nc.QueueSubscribe(subject, c.queue, func(m *nats.Msg) {
			if err := handle(ctx, m.Subject, m.Data); err != nil {
				c.logger.Warn(fmt.Sprintf("handle error subject=%s err=%v", m.Subject, err))
			}
		})
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", subject, err)
		}
		subs = append(subs, sub)
	}

	<-ctx.Done()
	return nil
}

func (c *natsConsumer) Close() error {
	c.nc.Close()
	return nil
}
