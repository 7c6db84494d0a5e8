package ledgercalc

import (
	"time"

	"github.com/electrotrade/eterp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Window is an optional inclusive date range. A nil bound means unbounded on
// that side.
type Window struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if w.Start != nil && t.Before(*w.Start) {
		return false
	}
	if w.End != nil && t.After(*w.End) {
		return false
	}
	return true
}

// RunningBalance folds a normalized, ordered entry sequence into a statement.
// The opening balance is the fold of every entry dated strictly before the
// window start (explicit opening-balance records are ordinary entries, so
// they participate in the same fold). Each in-window entry is annotated with
// the balance after applying it. There is no separate recomputation path for
// windowed and unwindowed statements: windowing is only a restriction of the
// one fold, which is what makes chaining [A,B] into [B,C] agree with [A,C].
func RunningBalance(entries []domain.LedgerEntry, p Perspective, w Window) domain.Statement {
	opening := decimal.Zero
	if w.Start != nil {
		for _, e := range entries {
			if e.Date.Before(*w.Start) {
				opening = opening.Add(Delta(e, p))
			}
		}
	}

	balance := opening
	lines := make([]domain.StatementLine, 0, len(entries))
	for _, e := range entries {
		if !w.Contains(e.Date) {
			continue
		}
		balance = balance.Add(Delta(e, p))
		lines = append(lines, domain.StatementLine{LedgerEntry: e, Balance: balance})
	}

	return domain.Statement{
		OpeningBalance: opening,
		ClosingBalance: balance,
		Lines:          lines,
	}
}

// BalanceAsOf folds the full entry sequence up to and including the given
// date. Used for point-in-time snapshots on reports.
func BalanceAsOf(entries []domain.LedgerEntry, p Perspective, asOf time.Time) decimal.Decimal {
	balance := decimal.Zero
	for _, e := range entries {
		if e.Date.After(asOf) {
			continue
		}
		balance = balance.Add(Delta(e, p))
	}
	return balance
}
