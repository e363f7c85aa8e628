package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for verification failures
// Use with errors.Is() for checking and fmt.Errorf("%w", ...) for wrapping with context

var (
	// ErrDeclarationNotFound indicates the gateway's verify.json returned 404
	ErrDeclarationNotFound = errors.New("gateway declaration not found")

	// ErrUpstreamUnreachable indicates a network-level failure (timeout, DNS, TLS)
	// reaching the gateway host
	ErrUpstreamUnreachable = errors.New("gateway host unreachable")

	// ErrMalformedDeclaration indicates the declaration document was not valid JSON
	// or is missing the signer field
	ErrMalformedDeclaration = errors.New("malformed gateway declaration")

	// ErrInvalidAddress indicates the declared signer is not a valid ethereum address
	ErrInvalidAddress = errors.New("invalid ethereum signer address")

	// ErrSigningUnavailable indicates the approver key is absent or malformed.
	// This is a fatal configuration error surfaced at startup, not per request.
	ErrSigningUnavailable = errors.New("approver signing key unavailable")

	// ErrBookkeeping indicates a counter or ledger write failed after an approval
	// was already signed. Non-fatal relative to the caller: the orchestrator logs
	// it and still returns the signed approval.
	ErrBookkeeping = errors.New("verification bookkeeping failed")
)

// UpstreamStatusError indicates the declaration endpoint answered with an
// unexpected HTTP status (anything other than 200 or 404).
// Use with errors.As() to inspect the status code.
type UpstreamStatusError struct {
	Status int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("unexpected upstream status %d", e.Status)
}
