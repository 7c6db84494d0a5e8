package dto

import (
	"github.com/electrotrade/eterp_backend/internal/core/domain"
	"github.com/electrotrade/eterp_backend/internal/utils/money"
)

// StatementLineResponse is one ledger entry with its running balance, money
// fields formatted at the display scale.
type StatementLineResponse struct {
	Date      string            `json:"date"`
	Type      domain.SourceType `json:"type"`
	Reference string            `json:"reference"`
	Debit     string            `json:"debit"`
	Credit    string            `json:"credit"`
	Balance   string            `json:"balance"`
}

// StatementResponse carries the entries of one account or party over a
// window, with the opening and closing balances of that window.
type StatementResponse struct {
	OpeningBalance string                  `json:"openingBalance"`
	ClosingBalance string                  `json:"closingBalance"`
	Lines          []StatementLineResponse `json:"lines"`
}

// ToStatementResponse formats a domain.Statement for the wire at the given
// display scale. Formatting happens only here, at the boundary; the decimals
// inside the statement keep full precision.
func ToStatementResponse(s *domain.Statement, scale int32) StatementResponse {
	lines := make([]StatementLineResponse, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = StatementLineResponse{
			Date:      l.Date.Format(DateLayout),
			Type:      l.Type,
			Reference: l.Reference,
			Debit:     money.Format(l.Debit, scale),
			Credit:    money.Format(l.Credit, scale),
			Balance:   money.Format(l.Balance, scale),
		}
	}
	return StatementResponse{
		OpeningBalance: money.Format(s.OpeningBalance, scale),
		ClosingBalance: money.Format(s.ClosingBalance, scale),
		Lines:          lines,
	}
}
