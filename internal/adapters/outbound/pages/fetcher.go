// Package pages implements the DeclarationFetcher port against GitHub Pages:
// one GET of https://{identifier}.github.io/verify.json per call, with
// failure modes classified into the domain error taxonomy.
package pages

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sufield/signet/internal/domain"
)

// DefaultTimeout bounds the outbound fetch when the caller supplies no
// deadline of its own.
const DefaultTimeout = 10 * time.Second

// DeclarationEndpoint is the default URL pattern; %s is the identifier.
const DeclarationEndpoint = "https://%s.github.io" + domain.DeclarationPath

// Declaration documents are tiny; cap reads so a misbehaving origin cannot
// make us buffer arbitrary data.
const maxDeclarationBytes = 1 << 20

// Fetcher retrieves gateway declaration documents.
// Implements ports.DeclarationFetcher. No retries at this layer; the caller
// decides whether to re-invoke.
type Fetcher struct {
	client   *http.Client
	endpoint string
	timeout  time.Duration
}

// New creates a fetcher for the public GitHub Pages endpoint.
// A zero timeout means DefaultTimeout.
func New(timeout time.Duration) *Fetcher {
	return NewWithEndpoint(&http.Client{}, DeclarationEndpoint, timeout)
}

// NewWithEndpoint creates a fetcher with an explicit client and URL pattern
// (one %s verb for the identifier). Used by tests to point at a local server.
func NewWithEndpoint(client *http.Client, endpoint string, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{client: client, endpoint: endpoint, timeout: timeout}
}

// FetchDeclaration issues the single outbound read and parses the result.
// The caller's context deadline is honored; absent one, the fetcher's own
// timeout applies.
func (f *Fetcher) FetchDeclaration(ctx context.Context, identifier string) (*domain.GatewayDeclaration, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	url := fmt.Sprintf(f.endpoint, identifier)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for %s: %v", domain.ErrUpstreamUnreachable, url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnreachable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to parsing
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", domain.ErrDeclarationNotFound, url)
	default:
		return nil, &domain.UpstreamStatusError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDeclarationBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading declaration body: %v", domain.ErrUpstreamUnreachable, err)
	}

	var decl domain.GatewayDeclaration
	if err := json.Unmarshal(body, &decl); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedDeclaration, err)
	}
	if decl.Signer == "" {
		return nil, fmt.Errorf("%w: declaration has no signer field", domain.ErrMalformedDeclaration)
	}

	return &decl, nil
}
