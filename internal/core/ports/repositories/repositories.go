package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// A provider is bound to one store session.
type RepositoryProvider struct {
	SessionRepo   SessionRepositoryFacade
	RequestRepo   PaymentRequestRepositoryFacade
	ApprovalRepo  ApprovalRepositoryFacade
	LimitRepo     LimitRepositoryFacade
	ReferenceRepo ReferenceRepositoryFacade
}
