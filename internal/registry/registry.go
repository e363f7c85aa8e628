// Package registry is the per-identifier idempotency ledger: it decides
// whether a verification is an identifier's first ever (bump the global
// counter) or a repeat (don't), and appends an audit entry either way.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/sufield/signet/internal/domain"
	"github.com/sufield/signet/internal/ports"
)

// TotalKey is the global distinct-gateway counter key.
const TotalKey = "TOTAL"

// Per-identifier counter keys are namespaced so an identifier literally
// named "TOTAL" cannot collide with the global counter.
const identifierKeyPrefix = "id:"

const ledgerBucket = "ledger"

// Registry implements ports.VerificationRecorder.
//
// Lifecycle policy: the audit log is APPEND-ONLY. Every verification appends
// one IndexRecord to the identifier's entry list; History returns the full
// ordered list. (The alternative latest-wins policy was rejected so repeat
// verifications keep their trail; see DESIGN.md.)
//
// First-seen predicate: an identifier is "new" iff it has no prior audit
// record, checked before any counter mutation. The check deliberately reads
// the ledger, not the per-identifier counter, so the two signals cannot
// disagree about which event was first.
//
// Concurrency: the whole check-increment-append sequence holds the
// identifier's lock, so concurrent verifications of one identifier cannot
// both observe an empty ledger (the global counter bumps exactly once per
// identifier) and ledger appends never overwrite each other. Different
// identifiers proceed independently.
type Registry struct {
	counters ports.Counters
	kv       ports.KeyValueStore
	now      func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a registry over the given counters and store.
func New(counters ports.Counters, kv ports.KeyValueStore) *Registry {
	return &Registry{
		counters: counters,
		kv:       kv,
		now:      time.Now,
		locks:    make(map[string]*sync.Mutex),
	}
}

// lock returns the identifier's mutex, creating it on first use. Entries are
// never evicted; the map is bounded by the set of identifiers ever verified,
// same as the counter actors.
func (r *Registry) lock(identifier string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[identifier]
	if !ok {
		l = &sync.Mutex{}
		r.locks[identifier] = l
	}
	return l
}

// RecordVerification accounts for one successful verification of identifier
// and returns the appended audit entry.
//
// If the ledger append fails after the counters advanced, the counters are
// ahead of the audit log. That gap is accepted (at-least-once counting);
// the returned error wraps domain.ErrBookkeeping and the caller logs it.
func (r *Registry) RecordVerification(ctx context.Context, identifier string) (domain.IndexRecord, error) {
	l := r.lock(identifier)
	l.Lock()
	defer l.Unlock()

	history, err := r.loadHistory(ctx, identifier)
	if err != nil {
		return domain.IndexRecord{}, fmt.Errorf("%w: reading ledger for %q: %v", domain.ErrBookkeeping, identifier, err)
	}

	if len(history) == 0 {
		if _, err := r.counters.Increment(ctx, TotalKey); err != nil {
			return domain.IndexRecord{}, fmt.Errorf("%w: global counter: %v", domain.ErrBookkeeping, err)
		}
	}

	index, err := r.counters.Increment(ctx, identifierKeyPrefix+identifier)
	if err != nil {
		return domain.IndexRecord{}, fmt.Errorf("%w: counter for %q: %v", domain.ErrBookkeeping, identifier, err)
	}

	record := domain.IndexRecord{
		State:     true,
		Index:     index,
		Timestamp: r.now().UnixMilli(),
	}

	history = append(history, record)
	raw, err := json.Marshal(history)
	if err != nil {
		return record, fmt.Errorf("%w: encoding ledger for %q: %v", domain.ErrBookkeeping, identifier, err)
	}
	if err := r.kv.Put(ctx, ledgerBucket, identifier, raw); err != nil {
		return record, fmt.Errorf("%w: appending ledger for %q: %v", domain.ErrBookkeeping, identifier, err)
	}

	return record, nil
}

// History returns the identifier's audit entries in recording order, empty
// for an identifier never verified.
func (r *Registry) History(ctx context.Context, identifier string) ([]domain.IndexRecord, error) {
	return r.loadHistory(ctx, identifier)
}

// Count returns the global distinct-gateway counter.
func (r *Registry) Count(ctx context.Context) (uint64, error) {
	return r.counters.Get(ctx, TotalKey)
}

// View returns the raw stored ledger document for key, for the passthrough
// view endpoint.
func (r *Registry) View(ctx context.Context, key string) ([]byte, bool, error) {
	return r.kv.Get(ctx, ledgerBucket, key)
}

func (r *Registry) loadHistory(ctx context.Context, identifier string) ([]domain.IndexRecord, error) {
	raw, found, err := r.kv.Get(ctx, ledgerBucket, identifier)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var history []domain.IndexRecord
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil, fmt.Errorf("corrupt ledger entry for %q: %w", identifier, err)
	}
	return history, nil
}
