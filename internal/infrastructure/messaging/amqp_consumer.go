package messaging

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/scrimhub/internal/domain/notifications"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"
	amqp "github.com/rabbitmq/amqp091-go"
)

type amqpConsumer struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	queue  string
	logger logger.Logger
}

// NewAmqpConsumer declares a durable queue bound to exchange for every binding key
func NewAmqpConsumer(url, exchange, queue string, bindings []string, prefetch int, logger logger.Logger) (notifications.EventConsumer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	fail := func(step string, err error) (notifications.EventConsumer, error) {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%s: %w", step, err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return fail("declare exchange", err)
	}
	q, err := ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return fail("declare queue", err)
	}
	for _, key := range bindings {
		if err := ch.QueueBind(q.Name, key, exchange, false, nil); err != nil {
			return fail(fmt.Sprintf("bind %s", key), err)
		}
	}
	if prefetch <= 0 {
		prefetch = 8
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return fail("set qos", err)
	}

	return &amqpConsumer{conn: conn, ch: ch, queue: q.Name, logger: logger}, nil
}

// Consume blocks until ctx is done or the delivery channel closes. Handler
// errors nack the delivery with requeue
func (c *amqpConsumer) Consume(ctx context.Context, handle func(ctx context.Context, routingKey string, body []byte) error) error {
	msgs, err := c.ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume failed: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := handle(ctx, d.RoutingKey, d.Body); err != nil {
				c.logger.Warn(fmt.Sprintf("handle error key=%s err=%v, requeueing", d.RoutingKey, err))
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *amqpConsumer) Close() error {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
