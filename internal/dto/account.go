package dto

import (
	"time"

	"github.com/electrotrade/eterp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name         string             `json:"name" binding:"required"`
	AccountType  domain.AccountType `json:"accountType" binding:"required,oneof=CASH BANK"`
	CurrencyCode string             `json:"currencyCode" binding:"required,currencycode"`
	Description  string             `json:"description"` // Optional
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID    string             `json:"accountID"`
	Name         string             `json:"name"`
	AccountType  domain.AccountType `json:"accountType"`
	CurrencyCode string             `json:"currencyCode"`
	Description  string             `json:"description"`
	IsActive     bool               `json:"isActive"`
	Balance      decimal.Decimal    `json:"balance"`
	CreatedAt    time.Time          `json:"createdAt"`
	CreatedBy    string             `json:"createdBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:    acc.AccountID,
		Name:         acc.Name,
		AccountType:  acc.AccountType,
		CurrencyCode: acc.CurrencyCode,
		Description:  acc.Description,
		IsActive:     acc.IsActive,
		Balance:      acc.Balance,
		CreatedAt:    acc.CreatedAt,
		CreatedBy:    acc.CreatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// OpeningBalanceRequest establishes an explicit baseline balance record for
// an account or a party.
type OpeningBalanceRequest struct {
	Amount string `json:"amount" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Notes  string `json:"notes"`
}

// AdjustmentRequest is a manual balance correction. Reason is required
// non-empty as an audit trail, enforced here and again in the service.
type AdjustmentRequest struct {
	Amount    string `json:"amount" binding:"required"`
	Direction string `json:"direction" binding:"required,oneof=IN OUT"`
	Date      string `json:"date" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}
