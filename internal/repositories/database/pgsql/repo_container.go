package pgsql

import (
	portsrepo "github.com/VShkaberda/Payments-contol/internal/core/ports/repositories"
	"github.com/VShkaberda/Payments-contol/internal/dbx"
)

// NewRepositoryProvider binds every repository to one session connection.
func NewRepositoryProvider(db dbx.Conn, rules ListingRules) portsrepo.RepositoryProvider {
	base := BaseRepository{DB: db}

	return portsrepo.RepositoryProvider{
		SessionRepo:   newPgxSessionRepository(base),
		RequestRepo:   newPgxPaymentRequestRepository(base, rules),
		ApprovalRepo:  newPgxApprovalRepository(base),
		LimitRepo:     newPgxLimitRepository(base),
		ReferenceRepo: newPgxReferenceRepository(base),
	}
}
