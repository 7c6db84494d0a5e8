// Package ledgercalc turns heterogeneous stored transaction records into
// normalized ledger entries, running balances and aging buckets. Everything
// here is a pure function over immutable facts: balances are folds over
// entries, never cached fields, so a recomputation can never drift from the
// stored history.
package ledgercalc

import (
	"sort"

	"github.com/electrotrade/eterp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Perspective selects which side of a transaction a ledger is being built
// for. Accounts grow on credits (cash coming in); parties grow on debits
// (receivable or payable building up).
type Perspective int

const (
	AccountPerspective Perspective = iota
	PartyPerspective
)

// Normalize maps raw source records into a single chronologically ordered
// ledger entry sequence for the given perspective. Records whose source type
// does not affect this perspective are skipped. Records without a date are
// excluded rather than sorted arbitrarily; the count of exclusions is
// returned so the caller can flag the data-integrity problem.
func Normalize(records []domain.SourceRecord, p Perspective) ([]domain.LedgerEntry, int) {
	sorted := make([]domain.SourceRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].SourceID < sorted[j].SourceID
	})

	entries := make([]domain.LedgerEntry, 0, len(sorted))
	dropped := 0
	for _, rec := range sorted {
		if rec.Date.IsZero() {
			dropped++
			continue
		}
		debit, credit, ok := entryEffect(rec, p)
		if !ok {
			continue
		}
		entries = append(entries, domain.LedgerEntry{
			Date:      rec.Date,
			Type:      rec.Type,
			Reference: rec.Reference,
			Debit:     debit,
			Credit:    credit,
		})
	}
	return entries, dropped
}

// entryEffect applies the sign conventions. Account ledgers: credits increase
// cash/bank, debits decrease it. Party ledgers: debits increase the
// receivable/payable, credits reduce it. Opening balances take whichever side
// increases the balance when positive.
func entryEffect(rec domain.SourceRecord, p Perspective) (debit, credit decimal.Decimal, ok bool) {
	zero := decimal.Zero
	switch p {
	case AccountPerspective:
		switch rec.Type {
		case domain.SourcePaymentIn, domain.SourceAdjustmentIn, domain.SourceTransferIn:
			return zero, rec.Amount, true
		case domain.SourcePaymentOut, domain.SourceAdjustmentOut, domain.SourceTransferOut:
			return rec.Amount, zero, true
		case domain.SourceOpeningBalance:
			if rec.Amount.Sign() < 0 {
				return rec.Amount.Abs(), zero, true
			}
			return zero, rec.Amount, true
		}
	case PartyPerspective:
		switch rec.Type {
		case domain.SourceSale, domain.SourcePurchase:
			return rec.Amount, zero, true
		case domain.SourcePaymentIn, domain.SourcePaymentOut,
			domain.SourceSaleReturn, domain.SourcePurchaseReturn:
			return zero, rec.Amount, true
		case domain.SourceOpeningBalance:
			if rec.Amount.Sign() < 0 {
				return zero, rec.Amount.Abs(), true
			}
			return rec.Amount, zero, true
		}
	}
	return zero, zero, false
}

// Delta returns the signed effect of one entry on a balance under the given
// perspective.
func Delta(e domain.LedgerEntry, p Perspective) decimal.Decimal {
	if p == AccountPerspective {
		return e.Credit.Sub(e.Debit)
	}
	return e.Debit.Sub(e.Credit)
}
