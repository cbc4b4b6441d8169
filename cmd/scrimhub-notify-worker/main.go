// Package main runs the notification worker. It consumes notification events from the
// message broker and mails them through the configured mailer.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MGTheTrain/scrimhub/internal/app"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/mailer"
	"github.com/MGTheTrain/scrimhub/internal/infrastructure/messaging"
	"github.com/MGTheTrain/scrimhub/internal/pkg/config"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"
)

// notificationBinding matches every notification routing key
const notificationBinding = "notification.#"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Worker error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	cfg, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	mail, err := mailer.NewMailer(&cfg.Mail, log)
	if err != nil {
		return fmt.Errorf("failed to initialize mailer: %w", err)
	}

	handler, err := app.NewNotificationMailer(mail, cfg.Auth.FrontendURL, log)
	if err != nil {
		return err
	}

	consumer, err := messaging.NewConsumer(&cfg.Broker, []string{notificationBinding}, log)
	if errors.Is(err, messaging.ErrNoBroker) {
		log.Warn("No message broker configured, nothing to consume")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to initialize consumer: %w", err)
	}
	defer func() {
		if err := consumer.Close(); err != nil {
			log.Error("Failed to close consumer: ", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("Notification worker consuming ", notificationBinding)
	if err := consumer.Consume(ctx, handler.Handle); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("consumer stopped: %w", err)
	}

	log.Info("Notification worker stopped")
	return nil
}
