// Package memorystore is an in-memory implementation of store.Store.
package memorystore

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/dogmatiq/mirror/snapshot"
	"github.com/dogmatiq/mirror/store"
)

// Store is an implementation of store.Store that keeps records in memory.
//
// The zero-value is an empty store.
type Store struct {
	m       sync.RWMutex
	records map[string]*store.Record
}

var _ store.Store = (*Store)(nil)

// Get returns the record for the given workflow.
func (s *Store) Get(_ context.Context, id string) (store.Record, bool, error) {
	s.m.RLock()
	rec, ok := s.records[id]
	s.m.RUnlock()

	if !ok {
		return store.Record{}, false, nil
	}

	return *rec, true, nil
}

// IDs returns the IDs of all workflows in the store.
func (s *Store) IDs(context.Context) ([]string, error) {
	s.m.RLock()
	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	s.m.RUnlock()

	sort.Strings(ids)

	return ids, nil
}

// Put replaces the snapshot for the given workflow.
//
// The snapshot is copied, so the caller may continue to use snap after Put
// returns.
func (s *Store) Put(_ context.Context, id string, snap *snapshot.Snapshot) error {
	if snap == nil {
		return errors.New("snapshot must not be nil")
	}

	// Each record is immutable once stored, so the new record is built in full
	// before it is made visible to readers.
	rec := &store.Record{
		WorkflowID: id,
		Snapshot:   snap.Clone(),
		Revision:   1,
		UpdatedAt:  time.Now(),
	}

	s.m.Lock()
	defer s.m.Unlock()

	if prev, ok := s.records[id]; ok {
		rec.Revision = prev.Revision + 1
	}

	if s.records == nil {
		s.records = map[string]*store.Record{}
	}

	s.records[id] = rec

	return nil
}

// Remove removes the given workflow from the store.
func (s *Store) Remove(_ context.Context, id string) error {
	s.m.Lock()
	defer s.m.Unlock()

	delete(s.records, id)

	return nil
}
