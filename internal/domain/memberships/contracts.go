package memberships

import (
	"context"

	"github.com/shopspring/decimal"
)

// PlanInput carries the editable fields of a plan
type PlanInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Currency    string
	Interval    string
	IsActive    bool
}

// SubscribeResult is a membership and, for card payments, the pending transaction id
type SubscribeResult struct {
	Membership    *Membership
	TransactionID string
}

// MembershipService defines plan and subscription operations.
type MembershipService interface {
	ListPlans(ctx context.Context) ([]*Plan, error)
	CreatePlan(ctx context.Context, input PlanInput) (*Plan, error)
	UpdatePlan(ctx context.Context, planID string, input PlanInput) (*Plan, error)

	// Subscribe pays from credits at a discount and activates immediately, or leaves an
	// inactive membership with a pending card transaction.
	Subscribe(ctx context.Context, userID, planID string, payWithCredits bool) (*SubscribeResult, error)

	// Cancel turns off renewal for one of the user's memberships.
	Cancel(ctx context.Context, userID, membershipID string) (*Membership, error)

	// Due returns the user's active or past-due membership with the earliest due date.
	Due(ctx context.Context, userID string) (*Membership, error)

	ListMine(ctx context.Context, userID string) ([]*Membership, error)
}

// PlanRepository defines the interface for Plan-related operations
type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, planID string) (*Plan, error)
	ListActive(ctx context.Context) ([]*Plan, error)
	Update(ctx context.Context, plan *Plan) error
}

// MembershipRepository defines the interface for Membership-related operations
type MembershipRepository interface {
	Create(ctx context.Context, m *Membership) error
	GetByID(ctx context.Context, membershipID string) (*Membership, error)
	GetByUserAndPlan(ctx context.Context, userID, planID string) (*Membership, error)
	ListByUser(ctx context.Context, userID string) ([]*Membership, error)
	EarliestDue(ctx context.Context, userID string) (*Membership, error)
	Update(ctx context.Context, m *Membership) error
}
