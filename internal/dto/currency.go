package dto

import (
	"github.com/electrotrade/eterp_backend/internal/core/domain"
)

// CreateCurrencyRequest registers a currency with its display precision.
type CreateCurrencyRequest struct {
	Code          string `json:"code" binding:"required,currencycode"`
	Name          string `json:"name" binding:"required"`
	DecimalPlaces int    `json:"decimalPlaces" binding:"min=0,max=6"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	DecimalPlaces int    `json:"decimalPlaces"`
}

// ToCurrencyResponse converts a domain.Currency to its response DTO.
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{Code: c.Code, Name: c.Name, DecimalPlaces: c.DecimalPlaces}
}

// ToListCurrencyResponse converts a slice of domain.Currency to DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
