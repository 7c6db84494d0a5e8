package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/electrotrade/eterp_backend/internal/apperrors"
	"github.com/electrotrade/eterp_backend/internal/core/domain"
	portsrepo "github.com/electrotrade/eterp_backend/internal/core/ports/repositories"
	portssvc "github.com/electrotrade/eterp_backend/internal/core/ports/services"
	"github.com/electrotrade/eterp_backend/internal/dto"
	"github.com/google/uuid"
)

// transferService implements the TransferSvcFacade interface.
type transferService struct {
	BaseService
	transferRepo portsrepo.TransferRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
}

// NewTransferService creates a new transfer service.
func NewTransferService(
	transferRepo portsrepo.TransferRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
) portssvc.TransferSvcFacade {
	return &transferService{
		transferRepo: transferRepo,
		accountRepo:  accountRepo,
	}
}

// Ensure transferService implements the TransferSvcFacade interface
var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// CreateTransfer validates and executes a transfer between two accounts. All
// validation happens before any mutation; the repository commits the transfer
// row and both balance updates in one transaction.
func (s *transferService) CreateTransfer(ctx context.Context, req dto.CreateTransferRequest, userID string) (*domain.AccountTransfer, error) {
	amount, err := parsePositiveAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}
	if req.FromAccountID == req.ToAccountID {
		return nil, fmt.Errorf("%w: source and destination accounts must differ", apperrors.ErrValidation)
	}
	transferDate, err := dto.ParseDate("transferDate", req.TransferDate)
	if err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, []string{req.FromAccountID, req.ToAccountID})
	if err != nil {
		return nil, err
	}
	for _, id := range []string{req.FromAccountID, req.ToAccountID} {
		if _, ok := accounts[id]; !ok {
			return nil, fmt.Errorf("account %s: %w", id, apperrors.ErrNotFound)
		}
	}

	now := time.Now().UTC()
	transfer := domain.AccountTransfer{
		TransferID:    uuid.NewString(),
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        amount,
		TransferDate:  transferDate,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.transferRepo.CreateTransfer(ctx, transfer); err != nil {
		s.LogError(ctx, err, "Failed to create transfer",
			slog.String("from_account_id", req.FromAccountID),
			slog.String("to_account_id", req.ToAccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Transfer created",
		slog.String("transfer_id", transfer.TransferID),
		slog.String("amount", amount.String()))
	return &transfer, nil
}

// ListTransfers retrieves a paginated list of transfers.
func (s *transferService) ListTransfers(ctx context.Context, limit int, offset int) ([]domain.AccountTransfer, error) {
	return s.transferRepo.ListTransfers(ctx, limit, offset)
}
