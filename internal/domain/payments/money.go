package payments

import (
	"sort"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Cents rounds an amount to two decimal places
func Cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Percent returns amount*percent/100 rounded to cents
func Percent(amount, percent decimal.Decimal) decimal.Decimal {
	return Cents(amount.Mul(percent).Div(hundred))
}

// OrganizerFeeFor returns the larger of the percentage fee and the flat fee
func OrganizerFeeFor(amount, percent, flat decimal.Decimal) decimal.Decimal {
	fee := Percent(amount, percent)
	if flat.GreaterThan(fee) {
		return Cents(flat)
	}
	return fee
}

// BonusFor picks the active tier with the highest MinAmount not above amount and
// returns the bonus it grants. It returns zero and nil when no tier applies
func BonusFor(tiers []*BonusTier, amount decimal.Decimal) (decimal.Decimal, *BonusTier) {
	var best *BonusTier
	for _, tier := range tiers {
		if !tier.Active || tier.MinAmount.GreaterThan(amount) {
			continue
		}
		if best == nil || tier.MinAmount.GreaterThan(best.MinAmount) {
			best = tier
		}
	}
	if best == nil {
		return decimal.Zero, nil
	}
	return Percent(amount, best.BonusPercent), best
}

// MergeHistory combines ledger entries and transactions into one list, newest first
func MergeHistory(entries []*CreditEntry, txns []*Transaction) []*HistoryItem {
	items := make([]*HistoryItem, 0, len(entries)+len(txns))
	for _, e := range entries {
		direction := "in"
		if e.Kind == EntryDebit {
			direction = "out"
		}
		items = append(items, &HistoryItem{
			Kind:        "credit",
			ID:          e.ID,
			Amount:      e.Amount,
			Direction:   direction,
			Description: e.Source,
			Status:      StatusSucceeded,
			CreatedAt:   e.CreatedAt,
		})
	}
	for _, t := range txns {
		items = append(items, &HistoryItem{
			Kind:        "payment",
			ID:          t.ID,
			Amount:      t.Amount,
			Direction:   "out",
			Description: t.Description,
			Status:      t.Status,
			CreatedAt:   t.CreatedAt,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items
}
