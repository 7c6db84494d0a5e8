package repositories

import (
	"context"

	"github.com/electrotrade/eterp_backend/internal/core/domain"
)

// ProductRepositoryFacade defines operations for the product catalogue.
type ProductRepositoryFacade interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// FindProductByID retrieves a product by its unique identifier.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves a paginated list of products.
	ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error)
}
