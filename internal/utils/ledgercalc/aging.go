package ledgercalc

import (
	"time"

	"github.com/electrotrade/eterp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AgingBuckets partitions a customer's outstanding balance by time since
// invoice. Buckets always sum exactly to Total.
type AgingBuckets struct {
	Current    decimal.Decimal // 0-30 days
	Days30     decimal.Decimal // 31-60 days
	Days60     decimal.Decimal // 61-90 days
	Days90Plus decimal.Decimal // 91+ days
	Total      decimal.Decimal
}

// Aging computes the outstanding contribution of each still-open charge in a
// customer's normalized ledger as of the given date. Credits (payments in,
// sale returns, credit-side opening balances) are allocated FIFO against the
// oldest charges first; the remaining charge amounts are bucketed by age.
// Entries dated after asOf are ignored. If credits exceed charges, the excess
// lands in Current as a negative amount so the bucket-sum invariant holds for
// overpaid customers too.
func Aging(entries []domain.LedgerEntry, asOf time.Time) AgingBuckets {
	var buckets AgingBuckets
	buckets.Current = decimal.Zero
	buckets.Days30 = decimal.Zero
	buckets.Days60 = decimal.Zero
	buckets.Days90Plus = decimal.Zero

	type charge struct {
		date   time.Time
		amount decimal.Decimal
	}
	charges := make([]charge, 0, len(entries))
	credits := decimal.Zero
	for _, e := range entries {
		if e.Date.After(asOf) {
			continue
		}
		if e.Debit.Sign() > 0 {
			charges = append(charges, charge{date: e.Date, amount: e.Debit})
		}
		if e.Credit.Sign() > 0 {
			credits = credits.Add(e.Credit)
		}
	}

	// Entries arrive chronologically ordered, so charges are already
	// oldest-first for the FIFO walk.
	for _, c := range charges {
		applied := decimal.Min(c.amount, credits)
		credits = credits.Sub(applied)
		outstanding := c.amount.Sub(applied)
		if outstanding.IsZero() {
			continue
		}
		switch days := daysBetween(c.date, asOf); {
		case days <= 30:
			buckets.Current = buckets.Current.Add(outstanding)
		case days <= 60:
			buckets.Days30 = buckets.Days30.Add(outstanding)
		case days <= 90:
			buckets.Days60 = buckets.Days60.Add(outstanding)
		default:
			buckets.Days90Plus = buckets.Days90Plus.Add(outstanding)
		}
	}

	// Unapplied credit means the customer is in advance; carry it in Current
	// so the buckets still reconcile with the total balance.
	if credits.Sign() > 0 {
		buckets.Current = buckets.Current.Sub(credits)
	}

	buckets.Total = buckets.Current.Add(buckets.Days30).Add(buckets.Days60).Add(buckets.Days90Plus)
	return buckets
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
