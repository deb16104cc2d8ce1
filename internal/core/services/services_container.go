package services

import (
	portsrepo "github.com/VShkaberda/Payments-contol/internal/core/ports/repositories"
	portssvc "github.com/VShkaberda/Payments-contol/internal/core/ports/services"
	"github.com/VShkaberda/Payments-contol/internal/faultguard"
	"github.com/VShkaberda/Payments-contol/internal/utils/validation"
)

// NewServiceContainer wires every service of one session to its repositories.
func NewServiceContainer(repos portsrepo.RepositoryProvider, guard *faultguard.Guard) *portssvc.ServiceContainer {
	base := BaseService{Guard: guard}
	validate := validation.New()

	return &portssvc.ServiceContainer{
		Session:   NewSessionService(base, repos.SessionRepo),
		Request:   NewRequestService(base, repos.RequestRepo, repos.ApprovalRepo, validate),
		Approval:  NewApprovalService(base, repos.RequestRepo, repos.ApprovalRepo),
		Limit:     NewLimitService(base, repos.LimitRepo, validate),
		Reference: NewReferenceService(base, repos.ReferenceRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.SessionSvcFacade   = (*SessionService)(nil)
	_ portssvc.RequestSvcFacade   = (*RequestService)(nil)
	_ portssvc.ApprovalSvcFacade  = (*ApprovalService)(nil)
	_ portssvc.LimitSvcFacade     = (*LimitService)(nil)
	_ portssvc.ReferenceSvcFacade = (*ReferenceService)(nil)
)
