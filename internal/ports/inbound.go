package ports

import (
	"context"

	"github.com/sufield/signet/internal/domain"
)

// VerificationService is the inbound port the routing layer drives.
// Implemented by internal/app.Service.
//
// Error Contract:
//   - Verify returns the domain sentinel matching the failure cause
//     (domain.ErrDeclarationNotFound, domain.ErrUpstreamUnreachable,
//     domain.ErrMalformedDeclaration, domain.ErrInvalidAddress,
//     domain.ErrSigningUnavailable) or *domain.UpstreamStatusError.
//     Bookkeeping failures never surface here; a signed result is returned
//     even when recording fails.
//   - Count and History only fail on storage errors.
type VerificationService interface {
	// Verify runs the end-to-end verification of one gateway identifier and
	// returns the signed approval. The caller-supplied context deadline is
	// propagated to the declaration fetch.
	Verify(ctx context.Context, identifier string) (*domain.ApprovalResult, error)

	// Count returns how many distinct gateways have ever been verified.
	Count(ctx context.Context) (uint64, error)

	// History returns the identifier's audit entries in recording order.
	// Returns an empty slice for an identifier never verified.
	History(ctx context.Context, identifier string) ([]domain.IndexRecord, error)

	// View returns the raw stored ledger document for a key, for the
	// passthrough view endpoint. found is false when the key is absent.
	View(ctx context.Context, key string) (value []byte, found bool, err error)
}
