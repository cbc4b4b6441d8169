//go:build unit
// +build unit

package payments

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestOrganizerFeeFor(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		percent string
		flat    string
		want    string
	}{
		{"percent wins", "100", "10", "5", "10"},
		{"flat wins", "20", "10", "5", "5"},
		{"rounded to cents", "33.33", "7.5", "0", "2.5"},
		{"no fee", "50", "0", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OrganizerFeeFor(d(tt.amount), d(tt.percent), d(tt.flat))
			assert.True(t, d(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestBonusFor(t *testing.T) {
	tiers := []*BonusTier{
		{MinAmount: d("10"), BonusPercent: d("5"), Active: true},
		{MinAmount: d("50"), BonusPercent: d("10"), Active: true},
		{MinAmount: d("100"), BonusPercent: d("50"), Active: false},
	}

	bonus, tier := BonusFor(tiers, d("5"))
	assert.True(t, bonus.IsZero())
	assert.Nil(t, tier)

	bonus, tier = BonusFor(tiers, d("20"))
	assert.True(t, d("1").Equal(bonus))
	require.NotNil(t, tier)
	assert.True(t, d("10").Equal(tier.MinAmount))

	// inactive tier is skipped even though it would match
	bonus, tier = BonusFor(tiers, d("150.55"))
	assert.True(t, d("15.06").Equal(bonus), "got %s", bonus)
	assert.True(t, d("50").Equal(tier.MinAmount))
}

func TestMergeHistory(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	entries := []*CreditEntry{
		{ID: "e1", Amount: d("10"), Kind: EntryCredit, Source: "topup", CreatedAt: base},
		{ID: "e2", Amount: d("4"), Kind: EntryDebit, Source: "spend", CreatedAt: base.Add(2 * time.Hour)},
	}
	txns := []*Transaction{
		{ID: "t1", Amount: d("4"), Status: StatusSucceeded, Description: "Entry fee", CreatedAt: base.Add(time.Hour)},
	}

	items := MergeHistory(entries, txns)
	require.Len(t, items, 3)
	assert.Equal(t, "e2", items[0].ID)
	assert.Equal(t, "out", items[0].Direction)
	assert.Equal(t, "t1", items[1].ID)
	assert.Equal(t, "payment", items[1].Kind)
	assert.Equal(t, "e1", items[2].ID)
}

func TestAutoPayRequest_Payer(t *testing.T) {
	req := &AutoPayRequest{UserID: "joiner", CreatorID: "creator"}
	assert.Equal(t, "joiner", req.Payer())

	req.TeamPay = true
	assert.Equal(t, "creator", req.Payer())
}
