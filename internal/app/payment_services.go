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
	"github.com/shopspring/decimal"
)

// cardProvider is recorded on card transactions created before the provider calls back
const cardProvider = payments.ProviderOmise

// walletService implements the WalletService interface
type walletService struct {
	wallets    payments.WalletRepository
	tiers      payments.BonusTierRepository
	transactor payments.Transactor
	logger     logger.Logger
}

// NewWalletService creates a new instance of WalletService
func NewWalletService(
	walletRepo payments.WalletRepository,
	tierRepo payments.BonusTierRepository,
	transactor payments.Transactor,
	logger logger.Logger,
) (payments.WalletService, error) {
	return &walletService{
		wallets:    walletRepo,
		tiers:      tierRepo,
		transactor: transactor,
		logger:     logger,
	}, nil
}

func (s *walletService) Balance(ctx context.Context, userID string) (*payments.Wallet, error) {
	return s.wallets.GetOrCreate(ctx, userID)
}

func (s *walletService) TopUp(ctx context.Context, userID string, amount decimal.Decimal, source string) (*payments.Wallet, error) {
	if source == "" {
		source = "topup"
	}
	return s.wallets.Deposit(ctx, userID, payments.Cents(amount), source)
}

func (s *walletService) TopUpWithBonus(ctx context.Context, userID string, amount decimal.Decimal, source string) (*payments.Wallet, decimal.Decimal, error) {
	if !amount.IsPositive() {
		return nil, decimal.Zero, payments.ErrInvalidAmount
	}
	if source == "" {
		source = "topup"
	}
	tiers, err := s.tiers.ListActive(ctx)
	if err != nil {
		return nil, decimal.Zero, err
	}
	bonus, tier := payments.BonusFor(tiers, amount)

	var wallet *payments.Wallet
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if wallet, err = s.wallets.Deposit(ctx, userID, payments.Cents(amount), source); err != nil {
			return err
		}
		if bonus.IsPositive() {
			wallet, err = s.wallets.Deposit(ctx, userID, bonus, payments.LedgerBonusPrefix+source)
		}
		return err
	})
	if err != nil {
		return nil, decimal.Zero, err
	}
	if tier != nil {
		s.logger.Info("Granted bonus ", bonus.StringFixed(2), " from tier ", tier.ID, " to user ", userID)
	}
	return wallet, bonus, nil
}

func (s *walletService) Spend(ctx context.Context, userID string, amount decimal.Decimal, source string) (*payments.Wallet, error) {
	if source == "" {
		source = "spend"
	}
	return s.wallets.Withdraw(ctx, userID, payments.Cents(amount), source)
}

func (s *walletService) History(ctx context.Context, userID string, limit int) ([]*payments.CreditEntry, error) {
	return s.wallets.ListEntries(ctx, userID, limit)
}

// paymentService implements the PaymentService interface
type paymentService struct {
	transactions    payments.TransactionRepository
	wallets         payments.WalletRepository
	fees            payments.OrganizerFeeRepository
	tiers           payments.BonusTierRepository
	gateway         payments.CardGateway
	transactor      payments.Transactor
	notifier        notifications.Notifier
	defaultCurrency string
	logger          logger.Logger
}

// NewPaymentService creates a new instance of PaymentService
func NewPaymentService(
	transactionRepo payments.TransactionRepository,
	walletRepo payments.WalletRepository,
	feeRepo payments.OrganizerFeeRepository,
	tierRepo payments.BonusTierRepository,
	gateway payments.CardGateway,
	transactor payments.Transactor,
	notifier notifications.Notifier,
	defaultCurrency string,
	logger logger.Logger,
) (payments.PaymentService, error) {
	if gateway == nil || transactor == nil || notifier == nil {
		return nil, fmt.Errorf("card gateway, transactor and notifier are required")
	}
	if defaultCurrency == "" {
		defaultCurrency = "USD"
	}
	return &paymentService{
		transactions:    transactionRepo,
		wallets:         walletRepo,
		fees:            feeRepo,
		tiers:           tierRepo,
		gateway:         gateway,
		transactor:      transactor,
		notifier:        notifier,
		defaultCurrency: defaultCurrency,
		logger:          logger,
	}, nil
}

func (s *paymentService) notify(ctx context.Context, userID, title, body, url string) {
	if _, err := s.notifier.Notify(ctx, userID, notifications.KindPayment, title, body, url); err != nil {
		s.logger.Warn("Failed to notify user ", userID, ": ", err)
	}
}

func (s *paymentService) currency(c string) string {
	if c == "" {
		return s.defaultCurrency
	}
	return c
}

func (s *paymentService) CreateIntent(ctx context.Context, userID string, input payments.IntentInput) (*payments.Transaction, error) {
	if !input.Amount.IsPositive() {
		return nil, payments.ErrInvalidAmount
	}
	provider := input.Provider
	if provider == "" {
		provider = cardProvider
	}
	if provider == payments.ProviderCredits {
		return nil, payments.ErrUnsupportedProvider
	}
	appSource := input.AppSource
	if appSource == "" {
		appSource = payments.SourceGeneral
	}

	txn := &payments.Transaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		AppSource:   appSource,
		RelatedID:   input.RelatedID,
		Amount:      payments.Cents(input.Amount),
		Currency:    s.currency(input.Currency),
		Provider:    provider,
		Method:      payments.MethodCard,
		Status:      payments.StatusPending,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.transactions.Create(ctx, txn); err != nil {
		return nil, err
	}

	s.notify(ctx, userID, "Payment initiated",
		fmt.Sprintf("A payment of %s %s is awaiting confirmation.", txn.Amount.StringFixed(2), txn.Currency),
		"/payments/transactions/"+txn.ID)
	return txn, nil
}

func (s *paymentService) ListMine(ctx context.Context, userID string) ([]*payments.Transaction, error) {
	return s.transactions.ListByUser(ctx, userID)
}

func (s *paymentService) GetByID(ctx context.Context, userID string, isStaff bool, transactionID string) (*payments.Transaction, error) {
	txn, err := s.transactions.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if !isStaff && txn.UserID != userID {
		return nil, payments.ErrForbidden
	}
	return txn, nil
}

func (s *paymentService) AutoPay(ctx context.Context, req *payments.AutoPayRequest) (*payments.AutoPayResult, error) {
	if !req.Amount.IsPositive() {
		return nil, payments.ErrInvalidAmount
	}
	payer := req.Payer()
	amount := payments.Cents(req.Amount)

	feeAmount := decimal.Zero
	if req.OrganizerID != "" && req.OrganizerID != payer {
		feeAmount = payments.OrganizerFeeFor(amount, req.FeePercent, req.FeeFlat)
		if feeAmount.GreaterThan(amount) {
			feeAmount = amount
		}
	}
	ref := fmt.Sprintf("%s:%s", req.AppSource, req.RelatedID)

	wallet, err := s.wallets.GetOrCreate(ctx, payer)
	if err != nil {
		return nil, err
	}

	result := &payments.AutoPayResult{}
	if wallet.Balance.GreaterThanOrEqual(amount) {
		err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
			if _, err := s.wallets.Withdraw(ctx, payer, amount, ref); err != nil {
				return err
			}
			now := time.Now().UTC()
			txn := s.newTransaction(req, payer, amount, payments.ProviderCredits, payments.MethodCredits, payments.StatusSucceeded)
			txn.ProcessedAt = &now
			if err := s.transactions.Create(ctx, txn); err != nil {
				return err
			}
			result.Transaction = txn
			result.PaidWithCredits = true

			if !feeAmount.IsPositive() {
				return nil
			}
			if _, err := s.wallets.Deposit(ctx, req.OrganizerID, feeAmount, payments.LedgerOrganizerFeePrefix+ref); err != nil {
				return err
			}
			result.Fee = s.newFee(req, feeAmount, payments.StatusSucceeded)
			return s.fees.Create(ctx, result.Fee)
		})
		if err == nil {
			s.notify(ctx, payer, "Payment completed",
				fmt.Sprintf("%s credits were charged for %s.", amount.StringFixed(2), req.Description), "/wallet")
			if result.Fee != nil {
				s.notify(ctx, req.OrganizerID, "Organizer fee received",
					fmt.Sprintf("You earned %s credits.", feeAmount.StringFixed(2)), "/wallet")
			}
			s.logger.Info("Auto-paid ", ref, " from credits of user ", payer)
			return result, nil
		}
		if !errors.Is(err, payments.ErrInsufficientCredits) {
			return nil, err
		}
		// the balance moved between the check and the locked withdraw
		result = &payments.AutoPayResult{}
	}

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		txn := s.newTransaction(req, payer, amount, cardProvider, payments.MethodCard, payments.StatusPending)
		if err := s.transactions.Create(ctx, txn); err != nil {
			return err
		}
		result.Transaction = txn
		if !feeAmount.IsPositive() {
			return nil
		}
		result.Fee = s.newFee(req, feeAmount, payments.StatusPending)
		return s.fees.Create(ctx, result.Fee)
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, payer, "Payment required",
		fmt.Sprintf("Complete the card payment of %s %s for %s.", amount.StringFixed(2), result.Transaction.Currency, req.Description),
		"/payments/transactions/"+result.Transaction.ID)
	s.logger.Info("Created pending card payment for ", ref, " for user ", payer)
	return result, nil
}

func (s *paymentService) newTransaction(req *payments.AutoPayRequest, payer string, amount decimal.Decimal, provider, method, status string) *payments.Transaction {
	return &payments.Transaction{
		ID:          uuid.NewString(),
		UserID:      payer,
		AppSource:   req.AppSource,
		RelatedID:   req.RelatedID,
		Amount:      amount,
		Currency:    s.currency(req.Currency),
		Provider:    provider,
		Method:      method,
		Status:      status,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}
}

func (s *paymentService) newFee(req *payments.AutoPayRequest, amount decimal.Decimal, status string) *payments.OrganizerFee {
	return &payments.OrganizerFee{
		ID:          uuid.NewString(),
		OrganizerID: req.OrganizerID,
		AppSource:   req.AppSource,
		RelatedID:   req.RelatedID,
		Amount:      amount,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}
}

func (s *paymentService) SettleOrganizerFees(ctx context.Context, appSource, relatedID string) (int, error) {
	var settled []*payments.OrganizerFee
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		pending, err := s.fees.ListPending(ctx, appSource, relatedID)
		if err != nil {
			return err
		}
		ref := fmt.Sprintf("%s%s:%s", payments.LedgerOrganizerFeePrefix, appSource, relatedID)
		for _, fee := range pending {
			if _, err := s.wallets.Deposit(ctx, fee.OrganizerID, fee.Amount, ref); err != nil {
				return err
			}
			fee.Status = payments.StatusSucceeded
			if err := s.fees.Update(ctx, fee); err != nil {
				return err
			}
			settled = append(settled, fee)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to settle organizer fees: %w", err)
	}

	for _, fee := range settled {
		s.notify(ctx, fee.OrganizerID, "Organizer fee received",
			fmt.Sprintf("You earned %s credits.", fee.Amount.StringFixed(2)), "/wallet")
	}
	return len(settled), nil
}

func (s *paymentService) RefundCredits(ctx context.Context, transactionID, reason string) (*payments.Transaction, error) {
	var txn *payments.Transaction
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if txn, err = s.transactions.GetByIDForUpdate(ctx, transactionID); err != nil {
			return err
		}
		if !txn.Refundable() {
			return payments.ErrNotRefundable
		}
		// pending payments never moved money and are only voided
		if txn.Status == payments.StatusSucceeded {
			if _, err := s.wallets.Deposit(ctx, txn.UserID, txn.Amount, payments.LedgerRefundPrefix+txn.ID); err != nil {
				return err
			}
		}
		return s.markRefunded(ctx, txn, reason)
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, txn.UserID, "Refund issued",
		fmt.Sprintf("%s credits were refunded: %s", txn.Amount.StringFixed(2), reason), "/wallet")
	return txn, nil
}

func (s *paymentService) markRefunded(ctx context.Context, txn *payments.Transaction, reason string) error {
	now := time.Now().UTC()
	txn.Status = payments.StatusRefunded
	txn.ProcessedAt = &now
	if reason != "" && txn.Description == "" {
		txn.Description = reason
	}
	return s.transactions.Update(ctx, txn)
}

func (s *paymentService) RefundCard(ctx context.Context, transactionID, reason string) (*payments.Transaction, error) {
	txn, err := s.transactions.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if !txn.Refundable() {
		return nil, payments.ErrNotRefundable
	}

	if txn.Status == payments.StatusSucceeded {
		refundID, err := s.gateway.Refund(ctx, txn.ProviderRef, txn.Amount, txn.Currency)
		if err != nil {
			s.notify(ctx, txn.UserID, "Refund failed",
				fmt.Sprintf("We could not refund %s %s to your card. Support has been informed.", txn.Amount.StringFixed(2), txn.Currency),
				"/payments/transactions/"+txn.ID)
			return nil, fmt.Errorf("failed to refund transaction %s: %w", txn.ID, err)
		}
		s.logger.Info("Card refund ", refundID, " issued for transaction ", txn.ID)
	}

	if err := s.markRefunded(ctx, txn, reason); err != nil {
		return nil, err
	}
	s.notify(ctx, txn.UserID, "Refund issued",
		fmt.Sprintf("%s %s was refunded to your card: %s", txn.Amount.StringFixed(2), txn.Currency, reason),
		"/payments/transactions/"+txn.ID)
	return txn, nil
}

func (s *paymentService) BulkRefund(ctx context.Context, appSource, relatedID, reason string) ([]*payments.RefundResult, error) {
	txns, err := s.transactions.ListByRelated(ctx, appSource, relatedID, []string{payments.StatusSucceeded, payments.StatusPending})
	if err != nil {
		return nil, err
	}

	results := make([]*payments.RefundResult, 0, len(txns))
	for _, txn := range txns {
		if txn.Method == payments.MethodPrize {
			continue
		}
		result := &payments.RefundResult{TransactionID: txn.ID, UserID: txn.UserID, Status: payments.StatusRefunded}
		var refundErr error
		if txn.Method == payments.MethodCard {
			_, refundErr = s.RefundCard(ctx, txn.ID, reason)
		} else {
			_, refundErr = s.RefundCredits(ctx, txn.ID, reason)
		}
		if refundErr != nil {
			result.Status = payments.StatusFailed
			result.Error = refundErr.Error()
			s.logger.Error("Refund of transaction ", txn.ID, " failed: ", refundErr)
		}
		results = append(results, result)
	}

	s.logger.Info("Bulk refund for ", appSource, ":", relatedID, " processed ", len(results), " transactions")
	return results, nil
}

func (s *paymentService) DistributePrizePool(ctx context.Context, appSource, relatedID string, pool decimal.Decimal, awards []payments.PrizeAward) ([]*payments.Transaction, error) {
	if len(awards) == 0 {
		return nil, payments.ErrNothingToDistribute
	}
	total := decimal.Zero
	for _, award := range awards {
		if !award.Amount.IsPositive() {
			return nil, payments.ErrInvalidAmount
		}
		total = total.Add(payments.Cents(award.Amount))
	}
	if !pool.IsPositive() {
		return nil, fmt.Errorf("%w: no prize pool for %s %s", payments.ErrPrizePoolExceeded, appSource, relatedID)
	}

	var txns []*payments.Transaction
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		paid, err := s.paidOut(ctx, appSource, relatedID)
		if err != nil {
			return err
		}
		if paid.Add(total).GreaterThan(pool) {
			return fmt.Errorf("%w: %s already paid, %s requested, pool %s", payments.ErrPrizePoolExceeded,
				paid.StringFixed(2), total.StringFixed(2), pool.StringFixed(2))
		}

		for _, award := range awards {
			amount := payments.Cents(award.Amount)
			if _, err := s.wallets.Deposit(ctx, award.UserID, amount, payments.LedgerPrizePrefix+relatedID); err != nil {
				return err
			}
			now := time.Now().UTC()
			txn := &payments.Transaction{
				ID:          uuid.NewString(),
				UserID:      award.UserID,
				AppSource:   appSource,
				RelatedID:   relatedID,
				Amount:      amount,
				Currency:    s.defaultCurrency,
				Provider:    payments.ProviderCredits,
				Method:      payments.MethodPrize,
				Status:      payments.StatusSucceeded,
				Description: "Prize payout",
				CreatedAt:   now,
				ProcessedAt: &now,
			}
			if err := s.transactions.Create(ctx, txn); err != nil {
				return err
			}
			txns = append(txns, txn)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to distribute prizes: %w", err)
	}

	for _, txn := range txns {
		s.notify(ctx, txn.UserID, "Prize awarded",
			fmt.Sprintf("You won %s credits.", txn.Amount.StringFixed(2)), "/wallet")
	}
	return txns, nil
}

// paidOut sums the prize payouts already made for a related object
func (s *paymentService) paidOut(ctx context.Context, appSource, relatedID string) (decimal.Decimal, error) {
	txns, err := s.transactions.ListByRelated(ctx, appSource, relatedID, []string{payments.StatusSucceeded})
	if err != nil {
		return decimal.Zero, err
	}
	paid := decimal.Zero
	for _, txn := range txns {
		if txn.Method == payments.MethodPrize {
			paid = paid.Add(txn.Amount)
		}
	}
	return paid, nil
}

func (s *paymentService) UnifiedHistory(ctx context.Context, userID string) ([]*payments.HistoryItem, error) {
	entries, err := s.wallets.ListEntries(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	txns, err := s.transactions.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return payments.MergeHistory(entries, txns), nil
}

func (s *paymentService) AddBonusTier(ctx context.Context, minAmount, bonusPercent decimal.Decimal) (*payments.BonusTier, error) {
	tier := &payments.BonusTier{
		ID:           uuid.NewString(),
		MinAmount:    payments.Cents(minAmount),
		BonusPercent: bonusPercent,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.tiers.Create(ctx, tier); err != nil {
		return nil, err
	}
	return tier, nil
}

func (s *paymentService) ListBonusTiers(ctx context.Context) ([]*payments.BonusTier, error) {
	return s.tiers.ListActive(ctx)
}
