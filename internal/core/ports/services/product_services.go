package services

import (
	"context"

	"github.com/electrotrade/eterp_backend/internal/core/domain"
	"github.com/electrotrade/eterp_backend/internal/dto"
)

// ProductSvcFacade defines operations for the product catalogue feeding the
// stock value metric.
type ProductSvcFacade interface {
	// CreateProduct registers a product with its cost, sale price and
	// starting stock quantity.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.Product, error)

	// GetProductByID retrieves a product by its unique identifier.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves a paginated list of products.
	ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error)
}
