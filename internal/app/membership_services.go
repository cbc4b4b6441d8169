package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/memberships"
	"github.com/MGTheTrain/scrimhub/internal/domain/notifications"
	"github.com/MGTheTrain/scrimhub/internal/domain/payments"
	"github.com/MGTheTrain/scrimhub/internal/pkg/logger"

	"github.com/google/uuid"
)

// membershipService implements the MembershipService interface
type membershipService struct {
	plans        memberships.PlanRepository
	memberships  memberships.MembershipRepository
	wallets      payments.WalletRepository
	transactions payments.TransactionRepository
	transactor   payments.Transactor
	notifier     notifications.Notifier
	logger       logger.Logger
}

// NewMembershipService creates a new instance of MembershipService
func NewMembershipService(
	planRepo memberships.PlanRepository,
	membershipRepo memberships.MembershipRepository,
	walletRepo payments.WalletRepository,
	transactionRepo payments.TransactionRepository,
	transactor payments.Transactor,
	notifier notifications.Notifier,
	logger logger.Logger,
) (memberships.MembershipService, error) {
	return &membershipService{
		plans:        planRepo,
		memberships:  membershipRepo,
		wallets:      walletRepo,
		transactions: transactionRepo,
		transactor:   transactor,
		notifier:     notifier,
		logger:       logger,
	}, nil
}

func (s *membershipService) ListPlans(ctx context.Context) ([]*memberships.Plan, error) {
	return s.plans.ListActive(ctx)
}

func (s *membershipService) CreatePlan(ctx context.Context, input memberships.PlanInput) (*memberships.Plan, error) {
	plan := &memberships.Plan{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       payments.Cents(input.Price),
		Currency:    input.Currency,
		Interval:    input.Interval,
		IsActive:    input.IsActive,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *membershipService) UpdatePlan(ctx context.Context, planID string, input memberships.PlanInput) (*memberships.Plan, error) {
	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	plan.Name = input.Name
	plan.Description = input.Description
	plan.Price = payments.Cents(input.Price)
	plan.Currency = input.Currency
	plan.Interval = input.Interval
	plan.IsActive = input.IsActive
	if err := s.plans.Update(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// membershipFor returns the user's membership of plan, or a new inactive one
func membershipFor(ctx context.Context, repo memberships.MembershipRepository, userID string, plan *memberships.Plan) (*memberships.Membership, bool, error) {
	m, err := repo.GetByUserAndPlan(ctx, userID, plan.ID)
	if err != nil {
		return nil, false, err
	}
	if m != nil {
		return m, false, nil
	}
	now := time.Now().UTC()
	return &memberships.Membership{
		ID:            uuid.NewString(),
		UserID:        userID,
		PlanID:        plan.ID,
		Status:        memberships.StatusInactive,
		StartedAt:     now,
		NextDueAmount: plan.Price,
		AutoRenew:     true,
		CreatedAt:     now,
	}, true, nil
}

func saveMembership(ctx context.Context, repo memberships.MembershipRepository, m *memberships.Membership, isNew bool) error {
	if isNew {
		return repo.Create(ctx, m)
	}
	return repo.Update(ctx, m)
}

func (s *membershipService) Subscribe(ctx context.Context, userID, planID string, payWithCredits bool) (*memberships.SubscribeResult, error) {
	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if !plan.IsActive {
		return nil, memberships.ErrPlanInactive
	}

	result := &memberships.SubscribeResult{}
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		m, isNew, err := membershipFor(ctx, s.memberships, userID, plan)
		if err != nil {
			return err
		}
		now := time.Now().UTC()

		txn := &payments.Transaction{
			ID:          uuid.NewString(),
			UserID:      userID,
			AppSource:   payments.SourceMembership,
			RelatedID:   m.ID,
			Currency:    plan.Currency,
			Description: fmt.Sprintf("Membership: %s", plan.Name),
			CreatedAt:   now,
		}

		if payWithCredits {
			price := plan.CreditPrice()
			if _, err := s.wallets.Withdraw(ctx, userID, price, "membership:"+plan.ID); err != nil {
				return err
			}
			txn.Amount = price
			txn.Provider = payments.ProviderCredits
			txn.Method = payments.MethodCredits
			txn.Status = payments.StatusSucceeded
			txn.ProcessedAt = &now
			m.AutoRenew = true
			m.ExtendPeriod(plan, now)
		} else {
			txn.Amount = plan.Price
			txn.Provider = cardProvider
			txn.Method = payments.MethodCard
			txn.Status = payments.StatusPending
		}

		if err := saveMembership(ctx, s.memberships, m, isNew); err != nil {
			return err
		}
		if err := s.transactions.Create(ctx, txn); err != nil {
			return err
		}
		result.Membership = m
		result.TransactionID = txn.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	if payWithCredits {
		s.notify(ctx, userID, "Membership activated", fmt.Sprintf("Your %s membership is active.", plan.Name))
	} else {
		s.notify(ctx, userID, "Membership payment pending", fmt.Sprintf("Complete the card payment to activate %s.", plan.Name))
	}
	s.logger.Info("User ", userID, " subscribed to plan ", plan.ID)
	return result, nil
}

func (s *membershipService) Cancel(ctx context.Context, userID, membershipID string) (*memberships.Membership, error) {
	m, err := s.memberships.GetByID(ctx, membershipID)
	if err != nil {
		return nil, err
	}
	if m.UserID != userID {
		return nil, memberships.ErrForbidden
	}
	m.Cancel()
	if err := s.memberships.Update(ctx, m); err != nil {
		return nil, err
	}
	s.notify(ctx, userID, "Membership cancelled", "Your membership will not renew.")
	return m, nil
}

func (s *membershipService) Due(ctx context.Context, userID string) (*memberships.Membership, error) {
	m, err := s.memberships.EarliestDue(ctx, userID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, memberships.ErrMembershipNotFound
	}
	return m, nil
}

func (s *membershipService) ListMine(ctx context.Context, userID string) ([]*memberships.Membership, error) {
	return s.memberships.ListByUser(ctx, userID)
}

func (s *membershipService) notify(ctx context.Context, userID, title, body string) {
	if _, err := s.notifier.Notify(ctx, userID, notifications.KindMembership, title, body, "/memberships"); err != nil {
		s.logger.Warn("Failed to notify user ", userID, ": ", err)
	}
}

// membershipActivator applies payment outcomes to memberships
type membershipActivator struct {
	plans       memberships.PlanRepository
	memberships memberships.MembershipRepository
	logger      logger.Logger
}

// NewMembershipActivator creates the MembershipActivator used by webhook processing
func NewMembershipActivator(
	planRepo memberships.PlanRepository,
	membershipRepo memberships.MembershipRepository,
	logger logger.Logger,
) payments.MembershipActivator {
	return &membershipActivator{plans: planRepo, memberships: membershipRepo, logger: logger}
}

func (a *membershipActivator) ActivateFromPayment(ctx context.Context, userID, planID string) error {
	plan, err := a.plans.GetByID(ctx, planID)
	if err != nil {
		return err
	}
	m, isNew, err := membershipFor(ctx, a.memberships, userID, plan)
	if err != nil {
		return err
	}
	m.AutoRenew = true
	m.ExtendPeriod(plan, time.Now().UTC())
	if err := saveMembership(ctx, a.memberships, m, isNew); err != nil {
		return err
	}
	a.logger.Info("Activated membership ", m.ID, " until ", m.CurrentPeriodEnd.Format(time.RFC3339))
	return nil
}

func (a *membershipActivator) MarkPastDue(ctx context.Context, userID, planID string) error {
	m, err := a.memberships.GetByUserAndPlan(ctx, userID, planID)
	if err != nil {
		return err
	}
	if m == nil {
		return nil
	}
	m.Status = memberships.StatusPastDue
	return a.memberships.Update(ctx, m)
}
