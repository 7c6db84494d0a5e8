package pgsql

import (
	portsrepo "github.com/electrotrade/eterp_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	partyRepo := newPgxPartyRepository(dbPool)
	currencyRepo := newPgxCurrencyRepository(dbPool)
	orderRepo := newPgxOrderRepository(dbPool)
	productRepo := newPgxProductRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool, accountRepo)
	transferRepo := newPgxTransferRepository(dbPool, accountRepo)
	sourceRepo := newPgxLedgerSourceRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:   accountRepo,
		PartyRepo:     partyRepo,
		CurrencyRepo:  currencyRepo,
		OrderRepo:     orderRepo,
		ProductRepo:   productRepo,
		PaymentRepo:   paymentRepo,
		TransferRepo:  transferRepo,
		SourceRepo:    sourceRepo,
		ReportingRepo: reportingRepo,
	}
}
