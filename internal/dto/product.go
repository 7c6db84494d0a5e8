package dto

import (
	"time"

	"github.com/electrotrade/eterp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest registers a catalogue item. Prices and quantity are
// decimal strings; quantity may be zero for a not-yet-stocked item.
type CreateProductRequest struct {
	Name      string `json:"name" binding:"required"`
	CostPrice string `json:"costPrice" binding:"required"`
	SalePrice string `json:"salePrice" binding:"required"`
	Quantity  string `json:"quantity" binding:"required"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	CostPrice decimal.Decimal `json:"costPrice"`
	SalePrice decimal.Decimal `json:"salePrice"`
	Quantity  decimal.Decimal `json:"quantity"`
	CreatedAt time.Time       `json:"createdAt"`
	CreatedBy string          `json:"createdBy"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID: p.ProductID,
		Name:      p.Name,
		CostPrice: p.CostPrice,
		SalePrice: p.SalePrice,
		Quantity:  p.Quantity,
		CreatedAt: p.CreatedAt,
		CreatedBy: p.CreatedBy,
	}
}

// ToListProductResponse converts a slice of domain.Product to response DTOs.
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}
