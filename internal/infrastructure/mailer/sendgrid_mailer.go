package mailer

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/scrimhub/internal/domain/notifications"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendgridMailer struct {
	client *sendgrid.Client
	from   *mail.Email
	logger logger.Logger
}

// NewSendgridMailer creates a Mailer that sends through the SendGrid v3 API
func NewSendgridMailer(apiKey, fromName, fromEmail string, logger logger.Logger) (notifications.Mailer, error) {
	if apiKey == "" || fromEmail == "" {
		return nil, fmt.Errorf("sendgrid api key and sender address are required")
	}
	return &sendgridMailer{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail(fromName, fromEmail),
		logger: logger,
	}, nil
}

func (m *sendgridMailer) Send(ctx context.Context, msg *notifications.Message) error {
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	html := msg.HTML
	if html == "" {
		html = msg.Text
	}
	message := mail.NewSingleEmail(m.from, msg.Subject, mail.NewEmail("", msg.To), msg.Text, html)

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", msg.To, err)
	}
	if response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid rejected mail to %s: status %d: %s", msg.To, response.StatusCode, response.Body)
	}

	m.logger.Info(fmt.Sprintf("Sent mail %q to %s", msg.Subject, msg.To))
	return nil
}
