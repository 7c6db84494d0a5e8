package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/electrotrade/eterp_backend/internal/apperrors"
	"github.com/electrotrade/eterp_backend/internal/core/domain"
	portsrepo "github.com/electrotrade/eterp_backend/internal/core/ports/repositories"
	portssvc "github.com/electrotrade/eterp_backend/internal/core/ports/services"
	"github.com/electrotrade/eterp_backend/internal/dto"
	"github.com/electrotrade/eterp_backend/internal/utils/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// productService implements the ProductSvcFacade interface.
type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new product service.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

// Ensure productService implements the ProductSvcFacade interface
var _ portssvc.ProductSvcFacade = (*productService)(nil)

// parseNonNegativeAmount parses an amount that must be zero or greater.
func parseNonNegativeAmount(field, value string) (decimal.Decimal, error) {
	d, err := parseAmount(field, value)
	if err != nil {
		return decimal.Zero, err
	}
	if d.Sign() < 0 {
		return decimal.Zero, fmt.Errorf("%w: %s must not be negative", apperrors.ErrValidation, field)
	}
	return d, nil
}

// CreateProduct validates and persists a catalogue item. Prices are stored
// rounded at the display scale; quantity keeps whatever precision the caller
// supplied.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be blank", apperrors.ErrValidation)
	}
	costPrice, err := parseNonNegativeAmount("costPrice", req.CostPrice)
	if err != nil {
		return nil, err
	}
	salePrice, err := parseNonNegativeAmount("salePrice", req.SalePrice)
	if err != nil {
		return nil, err
	}
	quantity, err := parseNonNegativeAmount("quantity", req.Quantity)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := domain.Product{
		ProductID: uuid.NewString(),
		Name:      name,
		CostPrice: money.RoundTo(costPrice, money.KWDScale),
		SalePrice: money.RoundTo(salePrice, money.KWDScale),
		Quantity:  quantity,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("product_name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Product created", slog.String("product_id", product.ProductID))
	return &product, nil
}

// GetProductByID retrieves a specific product.
func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return s.productRepo.FindProductByID(ctx, productID)
}

// ListProducts retrieves a paginated list of products.
func (s *productService) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	return s.productRepo.ListProducts(ctx, limit, offset)
}
