package ledgercalc_test

import (
	"testing"
	"time"

	"github.com/electrotrade/eterp_backend/internal/core/domain"
	"github.com/electrotrade/eterp_backend/internal/utils/ledgercalc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func creditEntry(d time.Time, amount string) domain.LedgerEntry {
	return domain.LedgerEntry{Date: d, Type: domain.SourcePaymentIn, Credit: amt(amount), Debit: decimal.Zero}
}

func debitEntry(d time.Time, amount string) domain.LedgerEntry {
	return domain.LedgerEntry{Date: d, Type: domain.SourcePaymentOut, Debit: amt(amount), Credit: decimal.Zero}
}

func TestRunningBalance_AccountFold(t *testing.T) {
	entries := []domain.LedgerEntry{
		creditEntry(day(0), "100"),
		creditEntry(day(1), "50"),
		debitEntry(day(2), "30"),
	}

	statement := ledgercalc.RunningBalance(entries, ledgercalc.AccountPerspective, ledgercalc.Window{})

	assert.True(t, statement.OpeningBalance.IsZero())
	require.Len(t, statement.Lines, 3)
	assert.True(t, statement.Lines[0].Balance.Equal(amt("100")))
	assert.True(t, statement.Lines[1].Balance.Equal(amt("150")))
	assert.True(t, statement.Lines[2].Balance.Equal(amt("120")))
	assert.True(t, statement.ClosingBalance.Equal(amt("120")))
}

func TestRunningBalance_OpeningBalanceIsAnOrdinaryEntry(t *testing.T) {
	// An explicit opening-balance record participates in the same fold as any
	// other entry; a window starting after it folds it into OpeningBalance.
	entries := []domain.LedgerEntry{
		{Date: day(0), Type: domain.SourceOpeningBalance, Credit: amt("500"), Debit: decimal.Zero},
		creditEntry(day(5), "100"),
	}

	start := day(3)
	statement := ledgercalc.RunningBalance(entries, ledgercalc.AccountPerspective, ledgercalc.Window{Start: &start})

	assert.True(t, statement.OpeningBalance.Equal(amt("500")))
	require.Len(t, statement.Lines, 1)
	assert.True(t, statement.ClosingBalance.Equal(amt("600")))
}

func TestRunningBalance_WindowChainingAgrees(t *testing.T) {
	// Replaying [A,C] must agree with replaying [A,B] then [B,C]: the closing
	// balance of the first window equals the opening of the second, and the
	// final closing matches the one-shot replay.
	entries := []domain.LedgerEntry{
		creditEntry(day(0), "100"),
		debitEntry(day(3), "20"),
		creditEntry(day(6), "45.5"),
		debitEntry(day(9), "5.25"),
	}

	a, b, c := day(0), day(5), day(10)
	bNext := b.AddDate(0, 0, 1)

	full := ledgercalc.RunningBalance(entries, ledgercalc.AccountPerspective, ledgercalc.Window{Start: &a, End: &c})
	first := ledgercalc.RunningBalance(entries, ledgercalc.AccountPerspective, ledgercalc.Window{Start: &a, End: &b})
	second := ledgercalc.RunningBalance(entries, ledgercalc.AccountPerspective, ledgercalc.Window{Start: &bNext, End: &c})

	assert.True(t, first.ClosingBalance.Equal(second.OpeningBalance),
		"closing of [A,B] = %s, opening of [B,C] = %s", first.ClosingBalance, second.OpeningBalance)
	assert.True(t, second.ClosingBalance.Equal(full.ClosingBalance),
		"chained closing = %s, one-shot closing = %s", second.ClosingBalance, full.ClosingBalance)
}

func TestRunningBalance_ClosingMinusOpeningEqualsNetMovement(t *testing.T) {
	entries := []domain.LedgerEntry{
		creditEntry(day(0), "80"),
		creditEntry(day(4), "120"),
		debitEntry(day(5), "70"),
		debitEntry(day(8), "10"),
	}

	start := day(2)
	end := day(6)
	statement := ledgercalc.RunningBalance(entries, ledgercalc.AccountPerspective, ledgercalc.Window{Start: &start, End: &end})

	net := decimal.Zero
	for _, line := range statement.Lines {
		net = net.Add(line.Credit).Sub(line.Debit)
	}
	assert.True(t, statement.ClosingBalance.Sub(statement.OpeningBalance).Equal(net))
}

func TestRunningBalance_PartyPerspectiveSigns(t *testing.T) {
	// A sale builds the receivable, a payment in reduces it.
	entries := []domain.LedgerEntry{
		{Date: day(0), Type: domain.SourceSale, Debit: amt("200"), Credit: decimal.Zero},
		{Date: day(1), Type: domain.SourcePaymentIn, Credit: amt("150"), Debit: decimal.Zero},
	}

	statement := ledgercalc.RunningBalance(entries, ledgercalc.PartyPerspective, ledgercalc.Window{})
	assert.True(t, statement.ClosingBalance.Equal(amt("50")))
}

func TestBalanceAsOf(t *testing.T) {
	entries := []domain.LedgerEntry{
		creditEntry(day(0), "100"),
		debitEntry(day(5), "40"),
		creditEntry(day(10), "25"),
	}

	assert.True(t, ledgercalc.BalanceAsOf(entries, ledgercalc.AccountPerspective, day(0)).Equal(amt("100")))
	assert.True(t, ledgercalc.BalanceAsOf(entries, ledgercalc.AccountPerspective, day(7)).Equal(amt("60")))
	assert.True(t, ledgercalc.BalanceAsOf(entries, ledgercalc.AccountPerspective, day(30)).Equal(amt("85")))
	assert.True(t, ledgercalc.BalanceAsOf(entries, ledgercalc.AccountPerspective, day(-1)).IsZero())
}
