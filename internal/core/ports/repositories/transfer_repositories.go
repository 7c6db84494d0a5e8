package repositories

import (
	"context"

	"github.com/electrotrade/eterp_backend/internal/core/domain"
)

// TransferRepositoryFacade defines operations for account transfers.
type TransferRepositoryFacade interface {
	// CreateTransfer inserts the transfer record and applies the opposite
	// balance mutations to both accounts atomically: all three writes commit
	// together or none do.
	CreateTransfer(ctx context.Context, transfer domain.AccountTransfer) error

	// ListTransfers retrieves a paginated list of transfers, newest first.
	ListTransfers(ctx context.Context, limit int, offset int) ([]domain.AccountTransfer, error)
}
