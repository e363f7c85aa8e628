// Package testhelpers provides shared fakes for package tests.
package testhelpers

import (
	"context"
	"sync"
)

// MemKV is an in-memory ports.KeyValueStore for tests. Safe for concurrent
// use. FailBucket/PutErr inject write failures for a single bucket so tests
// can fail the ledger while counters keep working (or vice versa).
type MemKV struct {
	mu      sync.Mutex
	buckets map[string]map[string][]byte

	// When PutErr is non-nil, Put calls against FailBucket (or all buckets if
	// FailBucket is empty) fail with it.
	FailBucket string
	PutErr     error
}

// NewMemKV creates an empty in-memory store.
func NewMemKV() *MemKV {
	return &MemKV{buckets: make(map[string]map[string][]byte)}
}

// Put stores a copy of value under bucket/key.
func (m *MemKV) Put(_ context.Context, bucket, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PutErr != nil && (m.FailBucket == "" || m.FailBucket == bucket) {
		return m.PutErr
	}
	b, ok := m.buckets[bucket]
	if !ok {
		b = make(map[string][]byte)
		m.buckets[bucket] = b
	}
	b[key] = append([]byte(nil), value...)
	return nil
}

// Get returns a copy of the stored value, or found=false when absent.
func (m *MemKV) Get(_ context.Context, bucket, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.buckets[bucket]
	if !ok {
		return nil, false, nil
	}
	v, ok := b[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// InjectPutError makes subsequent Put calls against bucket fail with err.
func (m *MemKV) InjectPutError(bucket string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FailBucket = bucket
	m.PutErr = err
}
