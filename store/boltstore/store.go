// Package boltstore is an implementation of store.Store that persists each
// workflow's last-known-good snapshot in a BoltDB database.
package boltstore

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/dogmatiq/mirror/internal/x/bboltx"
	"github.com/dogmatiq/mirror/snapshot"
	"github.com/dogmatiq/mirror/store"
	"go.etcd.io/bbolt"
)

// bucketName is the name of the bucket that contains the workflow records.
var bucketName = []byte("workflows")

// Store is an implementation of store.Store that uses a BoltDB database.
type Store struct {
	db    *bbolt.DB
	close func() error

	m      sync.RWMutex
	closed bool
}

var _ store.Store = (*Store)(nil)

// New returns a store that uses an existing open database.
//
// Closing the store does not close db.
func New(db *bbolt.DB) *Store {
	return &Store{
		db:    db,
		close: func() error { return nil },
	}
}

// Open opens or creates the database file at the given path and returns a
// store that uses it.
//
// If mode is zero, 0600 (owner read/write only) is used. If opts is nil,
// bbolt.DefaultOptions is used. Closing the store closes the database.
func Open(
	ctx context.Context,
	path string,
	mode os.FileMode,
	opts *bbolt.Options,
) (*Store, error) {
	db, err := bboltx.Open(ctx, path, mode, opts)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:    db,
		close: db.Close,
	}, nil
}

// Get returns the record for the given workflow.
func (s *Store) Get(_ context.Context, id string) (rec store.Record, ok bool, err error) {
	s.m.RLock()
	defer s.m.RUnlock()

	if s.closed {
		return store.Record{}, false, store.ErrClosed
	}

	err = bboltx.View(
		s.db,
		func(tx *bbolt.Tx) {
			b := bboltx.Bucket(tx, bucketName)
			if b == nil {
				return
			}

			data := b.Get([]byte(id))
			if data == nil {
				return
			}

			rec, err = unmarshalRecord(id, data)
			bboltx.Must(err)
			ok = true
		},
	)

	return rec, ok, err
}

// IDs returns the IDs of all workflows in the store.
func (s *Store) IDs(context.Context) (ids []string, err error) {
	s.m.RLock()
	defer s.m.RUnlock()

	if s.closed {
		return nil, store.ErrClosed
	}

	err = bboltx.View(
		s.db,
		func(tx *bbolt.Tx) {
			b := bboltx.Bucket(tx, bucketName)
			if b == nil {
				return
			}

			// BoltDB keys are ordered bytewise, which matches string
			// ordering.
			bboltx.Must(b.ForEach(func(k, _ []byte) error {
				ids = append(ids, string(k))
				return nil
			}))
		},
	)

	return ids, err
}

// Put replaces the snapshot for the given workflow.
func (s *Store) Put(_ context.Context, id string, snap *snapshot.Snapshot) error {
	if snap == nil {
		return errors.New("snapshot must not be nil")
	}

	s.m.RLock()
	defer s.m.RUnlock()

	if s.closed {
		return store.ErrClosed
	}

	return bboltx.Update(
		s.db,
		func(tx *bbolt.Tx) {
			b := bboltx.CreateBucketIfNotExists(tx, bucketName)
			k := []byte(id)

			rev := uint64(1)
			if data := b.Get(k); data != nil {
				rev = unmarshalRevision(data) + 1
			}

			data, err := marshalRecord(rev, time.Now(), snap)
			bboltx.Must(err)

			bboltx.Put(b, k, data)
		},
	)
}

// Remove removes the given workflow from the store.
func (s *Store) Remove(_ context.Context, id string) error {
	s.m.RLock()
	defer s.m.RUnlock()

	if s.closed {
		return store.ErrClosed
	}

	return bboltx.Update(
		s.db,
		func(tx *bbolt.Tx) {
			if b := bboltx.Bucket(tx, bucketName); b != nil {
				bboltx.Delete(b, []byte(id))
			}
		},
	)
}

// Close closes the store.
//
// Any future calls to the store's methods return store.ErrClosed.
func (s *Store) Close() error {
	s.m.Lock()
	defer s.m.Unlock()

	if s.closed {
		return store.ErrClosed
	}

	s.closed = true

	return s.close()
}
