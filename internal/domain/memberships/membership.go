package memberships

import (
	"time"

	"github.com/MGTheTrain/scrimhub/internal/pkg/validators"
	"github.com/shopspring/decimal"
)

// Billing intervals
const (
	IntervalMonth = "month"
	IntervalYear  = "year"
)

// Membership statuses
const (
	StatusActive   = "active"
	StatusPastDue  = "past_due"
	StatusCanceled = "canceled"
	StatusInactive = "inactive"
)

// CreditDiscountPercent is taken off the plan price when paying with credits
var CreditDiscountPercent = decimal.NewFromInt(5)

// Plan is a purchasable membership plan
type Plan struct {
	ID          string          `validate:"required,uuid4"`
	Name        string          `validate:"required,max=120"`
	Description string          `validate:"max=2000"`
	Price       decimal.Decimal `validate:"gt=0"`
	Currency    string          `validate:"required,currency"`
	Interval    string          `validate:"required,oneof=month year"`
	IsActive    bool
	CreatedAt   time.Time
}

// Validate for validating Plan struct
func (p *Plan) Validate() error {
	return validators.ValidateStruct(p)
}

// CreditPrice is the discounted price when paying from the wallet
func (p *Plan) CreditPrice() decimal.Decimal {
	discount := p.Price.Mul(CreditDiscountPercent).Div(decimal.NewFromInt(100))
	return p.Price.Sub(discount).Round(2)
}

// Membership is a user's subscription to a plan
type Membership struct {
	ID               string `validate:"required,uuid4"`
	UserID           string `validate:"required,uuid4"`
	PlanID           string `validate:"required,uuid4"`
	Status           string `validate:"required,oneof=active past_due canceled inactive"`
	StartedAt        time.Time
	CurrentPeriodEnd *time.Time
	NextDueDate      *time.Time
	NextDueAmount    decimal.Decimal
	AutoRenew        bool
	ExternalRef      string
	CreatedAt        time.Time
}

// Validate for validating Membership struct
func (m *Membership) Validate() error {
	return validators.ValidateStruct(m)
}

// ExtendPeriod adds one plan interval starting from the later of now and the
// current period end, and marks the membership active
func (m *Membership) ExtendPeriod(plan *Plan, now time.Time) {
	start := now
	if m.CurrentPeriodEnd != nil && m.CurrentPeriodEnd.After(now) {
		start = *m.CurrentPeriodEnd
	}

	var end time.Time
	if plan.Interval == IntervalYear {
		end = start.AddDate(1, 0, 0)
	} else {
		end = start.AddDate(0, 1, 0)
	}

	m.CurrentPeriodEnd = &end
	due := end
	m.NextDueDate = &due
	m.NextDueAmount = plan.Price
	m.Status = StatusActive
}

// Cancel stops renewal
func (m *Membership) Cancel() {
	m.AutoRenew = false
	m.Status = StatusCanceled
}
