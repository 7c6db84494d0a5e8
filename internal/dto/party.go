package dto

import (
	"time"

	"github.com/electrotrade/eterp_backend/internal/core/domain"
)

// CreatePartyRequest defines the data needed to register a customer or
// supplier.
type CreatePartyRequest struct {
	Name      string           `json:"name" binding:"required"`
	PartyType domain.PartyType `json:"partyType" binding:"required,oneof=CUSTOMER SUPPLIER"`
	Phone     string           `json:"phone"`
}

// PartyResponse defines the data returned for a party.
type PartyResponse struct {
	PartyID   string           `json:"partyID"`
	Name      string           `json:"name"`
	PartyType domain.PartyType `json:"partyType"`
	Phone     string           `json:"phone"`
	IsActive  bool             `json:"isActive"`
	CreatedAt time.Time        `json:"createdAt"`
}

// ToPartyResponse converts a domain.Party to PartyResponse DTO.
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID:   p.PartyID,
		Name:      p.Name,
		PartyType: p.PartyType,
		Phone:     p.Phone,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
	}
}

// ToListPartyResponse converts a slice of domain.Party to response DTOs.
func ToListPartyResponse(parties []domain.Party) []PartyResponse {
	res := make([]PartyResponse, len(parties))
	for i := range parties {
		res[i] = ToPartyResponse(&parties[i])
	}
	return res
}
