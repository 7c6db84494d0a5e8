package services

import (
	portsrepo "github.com/electrotrade/eterp_backend/internal/core/ports/repositories"
	portssvc "github.com/electrotrade/eterp_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Account = NewAccountService(repos.AccountRepo, repos.CurrencyRepo, repos.SourceRepo)
	container.Party = NewPartyService(repos.PartyRepo, repos.SourceRepo)
	container.Trade = NewTradeService(repos.OrderRepo, repos.PaymentRepo, repos.PartyRepo, repos.AccountRepo)
	container.Transfer = NewTransferService(repos.TransferRepo, repos.AccountRepo)
	container.Product = NewProductService(repos.ProductRepo)
	container.Reporting = NewReportingService(repos.SourceRepo, repos.PartyRepo, repos.ReportingRepo)

	return container
}
