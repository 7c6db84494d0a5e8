package services

import (
	"context"

	"github.com/electrotrade/eterp_backend/internal/core/domain"
	"github.com/electrotrade/eterp_backend/internal/dto"
)

// TransferSvcFacade defines operations for inter-account transfers.
type TransferSvcFacade interface {
	// CreateTransfer validates and executes an atomic transfer between two
	// accounts. Validation failures reject the request before any mutation.
	CreateTransfer(ctx context.Context, req dto.CreateTransferRequest, userID string) (*domain.AccountTransfer, error)

	// ListTransfers retrieves a paginated list of transfers.
	ListTransfers(ctx context.Context, limit int, offset int) ([]domain.AccountTransfer, error)
}
