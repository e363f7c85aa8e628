// Package counter provides durable, per-key strictly serialized counters on
// top of a KeyValueStore.
//
// Each counter key is owned by a dedicated goroutine (an actor): every get
// and increment for that key funnels through the actor's mailbox, so the
// read-modify-write cycle of an increment can never interleave with another
// operation on the same key. Counters for different keys run independently
// and concurrently.
package counter

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/sufield/signet/internal/ports"
)

// ErrClosed is returned for operations issued after Close.
var ErrClosed = errors.New("counter store closed")

const bucket = "counters"

type response struct {
	value uint64
	err   error
}

type request struct {
	ctx       context.Context
	increment bool
	reply     chan response
}

// Store implements ports.Counters. Values are monotonically non-decreasing
// and survive restarts: an increment durably persists via the underlying
// KeyValueStore before its new value is returned.
type Store struct {
	kv ports.KeyValueStore

	mu     sync.Mutex
	actors map[string]chan request
	closed bool

	done chan struct{}
	wg   sync.WaitGroup
}

// New creates a counter store over kv.
func New(kv ports.KeyValueStore) *Store {
	return &Store{
		kv:     kv,
		actors: make(map[string]chan request),
		done:   make(chan struct{}),
	}
}

// Get returns the counter's current value, 0 for a key never incremented.
func (s *Store) Get(ctx context.Context, key string) (uint64, error) {
	return s.send(ctx, key, false)
}

// Increment atomically adds 1 to the counter, persists the new value, and
// returns it. Increments against the same key are serialized by the key's
// actor; no update is ever lost.
func (s *Store) Increment(ctx context.Context, key string) (uint64, error) {
	return s.send(ctx, key, true)
}

// Close stops all key actors and rejects further operations.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.done)
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Store) send(ctx context.Context, key string, increment bool) (uint64, error) {
	mailbox, err := s.mailbox(key)
	if err != nil {
		return 0, err
	}

	req := request{ctx: ctx, increment: increment, reply: make(chan response, 1)}
	select {
	case mailbox <- req:
	case <-s.done:
		return 0, ErrClosed
	case <-ctx.Done():
		return 0, ctx.Err()
	}

	// Once accepted, the operation runs to completion inside the actor even
	// if the caller gives up waiting; an increment is never half-applied.
	select {
	case res := <-req.reply:
		return res.value, res.err
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// mailbox returns the key's actor channel, spawning the actor on first use.
func (s *Store) mailbox(key string) (chan request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	mb, ok := s.actors[key]
	if !ok {
		mb = make(chan request)
		s.actors[key] = mb
		s.wg.Add(1)
		go s.run(key, mb)
	}
	return mb, nil
}

func (s *Store) run(key string, mailbox chan request) {
	defer s.wg.Done()
	for {
		select {
		case req := <-mailbox:
			req.reply <- s.handle(req.ctx, key, req.increment)
		case <-s.done:
			return
		}
	}
}

func (s *Store) handle(ctx context.Context, key string, increment bool) response {
	value, err := s.load(ctx, key)
	if err != nil {
		return response{err: err}
	}
	if increment {
		value++
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], value)
		if err := s.kv.Put(ctx, bucket, key, buf[:]); err != nil {
			return response{err: fmt.Errorf("persist counter %q: %w", key, err)}
		}
	}
	return response{value: value}
}

func (s *Store) load(ctx context.Context, key string) (uint64, error) {
	raw, found, err := s.kv.Get(ctx, bucket, key)
	if err != nil {
		return 0, fmt.Errorf("load counter %q: %w", key, err)
	}
	if !found {
		return 0, nil
	}
	if len(raw) != 8 {
		return 0, fmt.Errorf("counter %q has corrupt value of %d bytes", key, len(raw))
	}
	return binary.BigEndian.Uint64(raw), nil
}
