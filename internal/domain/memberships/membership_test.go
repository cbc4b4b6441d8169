//go:build unit
// +build unit

package memberships

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPlan_CreditPrice(t *testing.T) {
	plan := &Plan{Price: decimal.RequireFromString("19.99")}
	assert.Equal(t, "18.99", plan.CreditPrice().StringFixed(2))
}

func TestMembership_ExtendPeriod(t *testing.T) {
	now := time.Date(2026, 1, 31, 10, 0, 0, 0, time.UTC)
	monthly := &Plan{Price: decimal.NewFromInt(10), Interval: IntervalMonth}
	yearly := &Plan{Price: decimal.NewFromInt(100), Interval: IntervalYear}

	t.Run("fresh membership starts now", func(t *testing.T) {
		m := &Membership{Status: StatusInactive}
		m.ExtendPeriod(monthly, now)

		assert.Equal(t, StatusActive, m.Status)
		assert.Equal(t, now.AddDate(0, 1, 0), *m.CurrentPeriodEnd)
		assert.Equal(t, *m.CurrentPeriodEnd, *m.NextDueDate)
		assert.True(t, monthly.Price.Equal(m.NextDueAmount))
	})

	t.Run("running period is extended from its end", func(t *testing.T) {
		end := now.Add(72 * time.Hour)
		m := &Membership{Status: StatusActive, CurrentPeriodEnd: &end}
		m.ExtendPeriod(yearly, now)

		assert.Equal(t, end.AddDate(1, 0, 0), *m.CurrentPeriodEnd)
	})

	t.Run("lapsed period restarts now", func(t *testing.T) {
		end := now.Add(-72 * time.Hour)
		m := &Membership{Status: StatusPastDue, CurrentPeriodEnd: &end}
		m.ExtendPeriod(monthly, now)

		assert.Equal(t, now.AddDate(0, 1, 0), *m.CurrentPeriodEnd)
		assert.Equal(t, StatusActive, m.Status)
	})
}

func TestMembership_Cancel(t *testing.T) {
	m := &Membership{ID: uuid.NewString(), Status: StatusActive, AutoRenew: true}
	m.Cancel()
	assert.False(t, m.AutoRenew)
	assert.Equal(t, StatusCanceled, m.Status)
}

func TestPlan_Validate(t *testing.T) {
	plan := &Plan{ID: uuid.NewString(), Name: "Pro", Price: decimal.NewFromInt(10), Currency: "USD", Interval: IntervalMonth}
	assert.NoError(t, plan.Validate())

	plan.Interval = "week"
	assert.Error(t, plan.Validate())
}
