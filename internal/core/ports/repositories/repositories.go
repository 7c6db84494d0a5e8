package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo   AccountRepositoryFacade
	PartyRepo     PartyRepositoryFacade
	CurrencyRepo  CurrencyRepositoryFacade
	OrderRepo     OrderRepositoryFacade
	ProductRepo   ProductRepositoryFacade
	PaymentRepo   PaymentRepositoryFacade
	TransferRepo  TransferRepositoryFacade
	SourceRepo    LedgerSourceRepository
	ReportingRepo ReportingRepository
}
