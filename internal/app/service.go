// Package app wires the verification core together: fetch the gateway's
// declaration, validate the declared signer, sign the approval statement,
// and record the event in the durable ledger.
package app

import (
	"context"
	"log/slog"

	"github.com/sufield/signet/internal/domain"
	"github.com/sufield/signet/internal/ports"
)

// Service is the verification orchestrator. Implements
// ports.VerificationService.
//
// Each external call is attempted exactly once per Verify invocation; any
// failure in fetch, validate, or sign aborts the operation with the matching
// domain error. Bookkeeping failures do NOT abort: once a valid approval has
// been signed it is returned regardless of accounting outcome, and the
// failure is logged instead.
type Service struct {
	validator ports.AddressValidator
	fetcher   ports.DeclarationFetcher
	signer    ports.ApprovalSigner
	recorder  ports.VerificationRecorder
	resolver  string
	chainID   uint64
	log       *slog.Logger
}

// New creates the orchestrator. A nil logger falls back to slog.Default().
func New(
	validator ports.AddressValidator,
	fetcher ports.DeclarationFetcher,
	signer ports.ApprovalSigner,
	recorder ports.VerificationRecorder,
	resolver string,
	chainID uint64,
	log *slog.Logger,
) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		validator: validator,
		fetcher:   fetcher,
		signer:    signer,
		recorder:  recorder,
		resolver:  resolver,
		chainID:   chainID,
		log:       log,
	}
}

// Verify runs the end-to-end verification of one gateway identifier.
func (s *Service) Verify(ctx context.Context, identifier string) (*domain.ApprovalResult, error) {
	id := domain.NormalizeIdentifier(identifier)

	decl, err := s.fetcher.FetchDeclaration(ctx, id)
	if err != nil {
		return nil, err
	}

	signerAddr, err := s.validator.Validate(decl.Signer)
	if err != nil {
		return nil, err
	}

	payload := domain.BuildApprovalMessage(id, s.resolver, s.chainID, signerAddr)
	sig, err := s.signer.SignMessage(payload)
	if err != nil {
		return nil, err
	}

	// The approval is valid regardless of bookkeeping outcome. Record with a
	// detached context so a caller disconnect after signing cannot abort the
	// accounting, and swallow failures after logging them: drift between
	// approvals issued and counters recorded must be observable, not fatal.
	if _, err := s.recorder.RecordVerification(context.WithoutCancel(ctx), id); err != nil {
		s.log.Error("bookkeeping failed after approval was signed",
			"identifier", id,
			"error", err,
		)
	}

	return &domain.ApprovalResult{
		Gateway:     domain.GatewayHost(id),
		Payload:     payload,
		Approver:    s.signer.Address().String(),
		ApprovedFor: signerAddr.String(),
		ApprovalSig: sig,
	}, nil
}

// Count returns how many distinct gateways have ever been verified.
func (s *Service) Count(ctx context.Context) (uint64, error) {
	return s.recorder.Count(ctx)
}

// History returns the identifier's audit entries in recording order.
func (s *Service) History(ctx context.Context, identifier string) ([]domain.IndexRecord, error) {
	return s.recorder.History(ctx, domain.NormalizeIdentifier(identifier))
}

// View returns the raw stored ledger document for key.
func (s *Service) View(ctx context.Context, key string) ([]byte, bool, error) {
	return s.recorder.View(ctx, domain.NormalizeIdentifier(key))
}
