// Package boltstore implements the KeyValueStore port on bbolt.
//
// bbolt fsyncs on every write transaction commit, so a successful Put has
// durably persisted before it returns - the durability guarantee the counter
// and ledger layers build on.
package boltstore

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Store is a bbolt-backed durable key/value store.
// Implements ports.KeyValueStore. Safe for concurrent use; bbolt serializes
// write transactions internally.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the database file at path.
// The open blocks up to one second waiting for a file lock so a stale
// process holding the file fails fast instead of hanging startup.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Put durably writes value under bucket/key, creating the bucket on demand.
func (s *Store) Put(ctx context.Context, bucket, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return fmt.Errorf("create bucket %q: %w", bucket, err)
		}
		return b.Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", bucket, key, err)
	}
	return nil
}

// Get returns the value stored under bucket/key, or found=false when either
// the bucket or the key is absent. The returned slice is a copy the caller
// may keep.
func (s *Store) Get(ctx context.Context, bucket, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	var value []byte
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return nil
		}
		v := b.Get([]byte(key))
		if v == nil {
			return nil
		}
		value = append([]byte(nil), v...)
		found = true
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("get %s/%s: %w", bucket, key, err)
	}
	return value, found, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}
