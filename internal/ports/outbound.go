package ports

import (
	"context"

	"github.com/sufield/signet/internal/domain"
)

// AddressValidator validates candidate ethereum address strings.
// This port abstracts SDK-specific parsing (go-ethereum's hex and EIP-55
// checksum handling) to avoid duplicating SDK logic in the domain layer.
//
// Error Contract:
//   - Validate returns domain.ErrInvalidAddress for bad length, charset, or a
//     mixed-case string whose casing does not match the EIP-55 checksum.
//     All-lowercase and all-uppercase hex are accepted as checksum-agnostic.
type AddressValidator interface {
	// Validate checks candidate and returns its canonical checksummed form.
	// Pure: no side effects, same output for same input.
	Validate(candidate string) (domain.Address, error)
}

// DeclarationFetcher retrieves the remote declaration document for an
// identifier. One outbound read per call; no retries at this layer.
//
// Error Contract:
//   - Returns domain.ErrDeclarationNotFound on HTTP 404.
//   - Returns *domain.UpstreamStatusError for any other non-200 status.
//   - Returns domain.ErrUpstreamUnreachable on network-level failure
//     (timeout, DNS, TLS).
//   - Returns domain.ErrMalformedDeclaration when the body is not valid JSON
//     or the signer field is absent.
type DeclarationFetcher interface {
	FetchDeclaration(ctx context.Context, identifier string) (*domain.GatewayDeclaration, error)
}

// ApprovalSigner signs approval messages with the process's approver key.
// The key is loaded once at startup; a missing or malformed key fails
// construction with domain.ErrSigningUnavailable, never a per-request call.
type ApprovalSigner interface {
	// Address returns the approver's own checksummed address.
	Address() domain.Address

	// SignMessage returns the 0x-hex EIP-191 personal-message signature over
	// message. Deterministic inputs aside from the signature nonce; the
	// private key is never logged or returned.
	SignMessage(message string) (string, error)
}

// KeyValueStore is the durable byte store backing counters and the ledger.
// A successful Put has durably persisted before returning. The store offers
// no transactionality beyond per-call atomicity; per-key ordering is the
// caller's responsibility (see Counters).
type KeyValueStore interface {
	Put(ctx context.Context, bucket, key string, value []byte) error

	// Get returns the stored value, or found=false for an absent key or
	// bucket. The returned slice is the caller's to keep.
	Get(ctx context.Context, bucket, key string) (value []byte, found bool, err error)
}

// Counters is the durable counter surface. Implementations must serialize
// operations per key: at most one increment is in flight against a given key
// at any instant, so read-modify-write never loses an update. Operations on
// different keys proceed independently.
//
// Error Contract:
//   - Get returns 0 for a key never incremented.
//   - Increment returns the post-increment value; on error the counter is
//     unchanged or durably holds the new value (no torn state).
type Counters interface {
	Get(ctx context.Context, key string) (uint64, error)
	Increment(ctx context.Context, key string) (uint64, error)
}

// VerificationRecorder is the per-identifier idempotency ledger.
//
// Error Contract:
//   - RecordVerification wraps storage failures in domain.ErrBookkeeping.
//     Counters may have advanced even when an error is returned; callers must
//     not assume the audit log and counters are always in lockstep.
type VerificationRecorder interface {
	// RecordVerification accounts for one successful verification: bumps the
	// global counter iff this is the identifier's first recorded
	// verification, always bumps the identifier's own counter, and appends
	// an audit entry. Returns the appended entry.
	RecordVerification(ctx context.Context, identifier string) (domain.IndexRecord, error)

	// History returns the identifier's audit entries in recording order.
	History(ctx context.Context, identifier string) ([]domain.IndexRecord, error)

	// Count returns the global distinct-gateway counter.
	Count(ctx context.Context) (uint64, error)

	// View returns the raw stored ledger document for a key.
	View(ctx context.Context, key string) (value []byte, found bool, err error)
}
