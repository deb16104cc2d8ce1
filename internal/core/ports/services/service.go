package services

// ServiceContainer holds instances of all the application services.
// One container serves one store session and is used by the handlers.
type ServiceContainer struct {
	Session   SessionSvcFacade
	Request   RequestSvcFacade
	Approval  ApprovalSvcFacade
	Limit     LimitSvcFacade
	Reference ReferenceSvcFacade
}
