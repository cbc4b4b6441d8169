package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MGTheTrain/scrimhub/internal/domain/notifications"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"
)

// NotificationMailer turns broker notification events into emails
type NotificationMailer struct {
	mailer      notifications.Mailer
	frontendURL string
	logger      logger.Logger
}

// NewNotificationMailer creates a NotificationMailer. frontendURL prefixes relative notification links.
func NewNotificationMailer(mailer notifications.Mailer, frontendURL string, logger logger.Logger) (*NotificationMailer, error) {
	if mailer == nil {
		return nil, fmt.Errorf("mailer is required")
	}
	return &NotificationMailer{
		mailer:      mailer,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		logger:      logger,
	}, nil
}

// Handle is an EventConsumer callback. Malformed payloads and events without an address
// are dropped; only mailer failures are returned so the broker redelivers.
func (m *NotificationMailer) Handle(ctx context.Context, routingKey string, body []byte) error {
	if routingKey != notifications.RoutingKeyCreated {
		m.logger.Warn("Ignoring event with routing key ", routingKey)
		return nil
	}

	var event notifications.CreatedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		m.logger.Error("Dropping malformed notification event: ", err)
		return nil
	}
	if event.Email == "" {
		m.logger.Warn("Notification ", event.NotificationID, " has no recipient address, skipping")
		return nil
	}

	msg := m.compose(&event)
	if err := msg.Validate(); err != nil {
		m.logger.Error("Dropping notification ", event.NotificationID, ": ", err)
		return nil
	}

	if err := m.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to mail notification %s: %w", event.NotificationID, err)
	}
	m.logger.Info("Mailed notification ", event.NotificationID, " to user ", event.UserID)
	return nil
}

func (m *NotificationMailer) compose(event *notifications.CreatedEvent) *notifications.Message {
	text := event.Body
	if text == "" {
		text = event.Title
	}
	if event.URL != "" {
		link := event.URL
		if strings.HasPrefix(link, "/") && m.frontendURL != "" {
			link = m.frontendURL + link
		}
		text += "\n\n" + link
	}
	return &notifications.Message{
		To:      event.Email,
		Subject: event.Title,
		Text:    text,
	}
}
