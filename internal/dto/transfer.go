package dto

import (
	"github.com/electrotrade/eterp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransferRequest moves funds between two internal accounts.
type CreateTransferRequest struct {
	TransferDate  string `json:"transferDate" binding:"required"`
	FromAccountID string `json:"fromAccountID" binding:"required"`
	ToAccountID   string `json:"toAccountID" binding:"required"`
	Amount        string `json:"amount" binding:"required"`
	Notes         string `json:"notes"`
}

// TransferResponse is the stored transfer record.
type TransferResponse struct {
	TransferID    string          `json:"transferID"`
	FromAccountID string          `json:"fromAccountID"`
	ToAccountID   string          `json:"toAccountID"`
	Amount        decimal.Decimal `json:"amount"`
	TransferDate  string          `json:"transferDate"`
	Notes         string          `json:"notes"`
}

// ToTransferResponse converts a domain.AccountTransfer to its response DTO.
func ToTransferResponse(t *domain.AccountTransfer) TransferResponse {
	return TransferResponse{
		TransferID:    t.TransferID,
		FromAccountID: t.FromAccountID,
		ToAccountID:   t.ToAccountID,
		Amount:        t.Amount,
		TransferDate:  t.TransferDate.Format(DateLayout),
		Notes:         t.Notes,
	}
}

// ToListTransferResponse converts a slice of transfers to response DTOs.
func ToListTransferResponse(transfers []domain.AccountTransfer) []TransferResponse {
	res := make([]TransferResponse, len(transfers))
	for i := range transfers {
		res[i] = ToTransferResponse(&transfers[i])
	}
	return res
}
