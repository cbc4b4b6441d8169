package mailer

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/scrimhub/internal/domain/notifications"
	"github.com/MGTheTrain/scrimhub/internal/pkg/config"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"
)

type consoleMailer struct {
	logger logger.Logger
}

// NewConsoleMailer creates a Mailer that logs messages instead of sending them
func NewConsoleMailer(logger logger.Logger) notifications.Mailer {
	return &consoleMailer{logger: logger}
}

func (m *consoleMailer) Send(_ context.Context, msg *notifications.Message) error {
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	m.logger.Info(fmt.Sprintf("mail to=%s subject=%q body=%q", msg.To, msg.Subject, msg.Text))
	return nil
}

// NewMailer builds the mailer selected by settings.Type
func NewMailer(settings *config.MailSettings, logger logger.Logger) (notifications.Mailer, error) {
	switch settings.Type {
	case config.ConsoleMailType:
		return NewConsoleMailer(logger), nil
	case config.SendgridMailType:
		return NewSendgridMailer(settings.APIKey, settings.FromName, settings.FromEmail, logger)
	default:
		return nil, fmt.Errorf("unsupported mail type: %s", settings.Type)
	}
}
