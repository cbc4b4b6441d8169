package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/notifications"
	"github.com/MGTheTrain/scrimhub/internal/domain/payments"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"github.com/google/uuid"
)

// webhookService implements the WebhookService interface
type webhookService struct {
	events       payments.WebhookEventRepository
	transactions payments.TransactionRepository
	wallet       payments.WalletService
	payments     payments.PaymentService
	activator    payments.MembershipActivator
	transactor   payments.Transactor
	notifier     notifications.Notifier
	logger       logger.Logger
}

// NewWebhookService creates a new instance of WebhookService
func NewWebhookService(
	eventRepo payments.WebhookEventRepository,
	transactionRepo payments.TransactionRepository,
	wallet payments.WalletService,
	paymentService payments.PaymentService,
	activator payments.MembershipActivator,
	transactor payments.Transactor,
	notifier notifications.Notifier,
	logger logger.Logger,
) (payments.WebhookService, error) {
	return &webhookService{
		events:       eventRepo,
		transactions: transactionRepo,
		wallet:       wallet,
		payments:     paymentService,
		activator:    activator,
		transactor:   transactor,
		notifier:     notifier,
		logger:       logger,
	}, nil
}

// webhookOutcome is what to tell the payer once the transaction commits
type webhookOutcome struct {
	userID string
	title  string
	body   string
	url    string
}

func (s *webhookService) Handle(ctx context.Context, provider string, raw []byte) (*payments.NormalizedEvent, bool, error) {
	event, err := payments.NormalizeWebhook(provider, raw)
	if err != nil {
		return nil, false, err
	}

	processed := false
	var outcome *webhookOutcome
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		created, err := s.events.CreateIfAbsent(ctx, &payments.WebhookEvent{
			Provider:    event.Provider,
			EventID:     event.ID,
			Type:        event.Type,
			ProcessedAt: time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		if !created {
			return nil
		}
		processed = true

		switch event.Outcome {
		case payments.OutcomeSucceeded:
			outcome, err = s.applySuccess(ctx, event)
		case payments.OutcomeFailed:
			outcome, err = s.applyFailure(ctx, event)
		}
		return err
	})
	if err != nil {
		return event, false, fmt.Errorf("failed to process %s webhook %s: %w", provider, event.ID, err)
	}

	if !processed {
		s.logger.Info("Ignoring duplicate ", provider, " webhook ", event.ID)
		return event, false, nil
	}
	if outcome != nil && outcome.userID != "" {
		if _, err := s.notifier.Notify(ctx, outcome.userID, notifications.KindPayment, outcome.title, outcome.body, outcome.url); err != nil {
			s.logger.Warn("Failed to notify user ", outcome.userID, ": ", err)
		}
	}
	s.logger.Info("Processed ", provider, " webhook ", event.ID, " (", event.Type, ")")
	return event, true, nil
}

// findTransaction resolves the transaction a webhook refers to, by id from the
// metadata or by the provider object id
func (s *webhookService) findTransaction(ctx context.Context, event *payments.NormalizedEvent) (*payments.Transaction, error) {
	if id := event.Metadata.TransactionID; id != "" {
		txn, err := s.transactions.GetByID(ctx, id)
		if err == nil {
			return txn, nil
		}
		if !errors.Is(err, payments.ErrTransactionNotFound) {
			return nil, err
		}
	}
	if event.ObjectID == "" {
		return nil, nil
	}
	return s.transactions.GetByProviderRef(ctx, event.Provider, event.ObjectID)
}

func (s *webhookService) applySuccess(ctx context.Context, event *payments.NormalizedEvent) (*webhookOutcome, error) {
	meta := event.Metadata
	txn, err := s.findTransaction(ctx, event)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	switch {
	case txn != nil && txn.Status == payments.StatusPending:
		txn.Status = payments.StatusSucceeded
		txn.Provider = event.Provider
		if txn.ProviderRef == "" {
			txn.ProviderRef = event.ObjectID
		}
		txn.ProcessedAt = &now
		if err := s.transactions.Update(ctx, txn); err != nil {
			return nil, err
		}
	case txn != nil:
		s.logger.Info("Transaction ", txn.ID, " already ", txn.Status)
		return nil, nil
	default:
		if meta.UserID == "" || !event.Amount.IsPositive() {
			s.logger.Warn("Webhook ", event.ID, " references no known transaction or user")
			return nil, nil
		}
		txn = &payments.Transaction{
			ID:          uuid.NewString(),
			UserID:      meta.UserID,
			AppSource:   sourceFromMetadata(meta),
			RelatedID:   meta.RelatedID,
			Amount:      payments.Cents(event.Amount),
			Currency:    event.Currency,
			Provider:    event.Provider,
			Method:      payments.MethodCard,
			ProviderRef: event.ObjectID,
			Status:      payments.StatusSucceeded,
			Description: event.Type,
			CreatedAt:   now,
			ProcessedAt: &now,
		}
		if err := s.transactions.Create(ctx, txn); err != nil {
			return nil, err
		}
	}

	if txn.RelatedID != "" {
		if _, err := s.payments.SettleOrganizerFees(ctx, txn.AppSource, txn.RelatedID); err != nil {
			return nil, err
		}
	}

	userID := txn.UserID
	if meta.Purpose == payments.PurposeCreditPurchase {
		if _, _, err := s.wallet.TopUpWithBonus(ctx, userID, txn.Amount, "purchase:"+event.Provider); err != nil {
			return nil, err
		}
	}
	if meta.PlanID != "" {
		if err := s.activator.ActivateFromPayment(ctx, userID, meta.PlanID); err != nil {
			return nil, err
		}
	}

	return &webhookOutcome{
		userID: userID,
		title:  "Payment succeeded",
		body:   fmt.Sprintf("Your payment of %s %s was received.", txn.Amount.StringFixed(2), txn.Currency),
		url:    "/payments/transactions/" + txn.ID,
	}, nil
}

func (s *webhookService) applyFailure(ctx context.Context, event *payments.NormalizedEvent) (*webhookOutcome, error) {
	meta := event.Metadata
	txn, err := s.findTransaction(ctx, event)
	if err != nil {
		return nil, err
	}

	userID := meta.UserID
	url := "/payments/transactions"
	if txn != nil {
		userID = txn.UserID
		url = "/payments/transactions/" + txn.ID
		if txn.Status == payments.StatusPending {
			now := time.Now().UTC()
			txn.Status = payments.StatusFailed
			txn.ProcessedAt = &now
			if txn.ProviderRef == "" {
				txn.ProviderRef = event.ObjectID
			}
			if err := s.transactions.Update(ctx, txn); err != nil {
				return nil, err
			}
		}
	}

	if meta.PlanID != "" && userID != "" {
		if err := s.activator.MarkPastDue(ctx, userID, meta.PlanID); err != nil {
			return nil, err
		}
	}

	return &webhookOutcome{
		userID: userID,
		title:  "Payment failed",
		body:   "Your payment could not be completed. Please try again.",
		url:    url,
	}, nil
}

func sourceFromMetadata(meta payments.WebhookMetadata) string {
	switch {
	case meta.AppSource != "":
		return meta.AppSource
	case meta.PlanID != "":
		return payments.SourceMembership
	case meta.Purpose == payments.PurposeCreditPurchase:
		return payments.SourceWallet
	default:
		return payments.SourceGeneral
	}
}
