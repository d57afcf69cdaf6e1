package fixtures

import (
	"context"

	"github.com/dogmatiq/mirror/snapshot"
	"github.com/dogmatiq/mirror/store"
)

// StoreStub is a test implementation of the store.Store interface.
type StoreStub struct {
	store.Store

	GetFunc    func(context.Context, string) (store.Record, bool, error)
	IDsFunc    func(context.Context) ([]string, error)
	PutFunc    func(context.Context, string, *snapshot.Snapshot) error
	RemoveFunc func(context.Context, string) error
}

// Get returns the record for the given workflow.
func (s *StoreStub) Get(ctx context.Context, id string) (store.Record, bool, error) {
	if s.GetFunc != nil {
		return s.GetFunc(ctx, id)
	}

	if s.Store != nil {
		return s.Store.Get(ctx, id)
	}

	return store.Record{}, false, nil
}

// IDs returns the IDs of all workflows in the store.
func (s *StoreStub) IDs(ctx context.Context) ([]string, error) {
	if s.IDsFunc != nil {
		return s.IDsFunc(ctx)
	}

	if s.Store != nil {
		return s.Store.IDs(ctx)
	}

	return nil, nil
}

// Put replaces the snapshot for the given workflow.
func (s *StoreStub) Put(ctx context.Context, id string, snap *snapshot.Snapshot) error {
	if s.PutFunc != nil {
		return s.PutFunc(ctx, id, snap)
	}

	if s.Store != nil {
		return s.Store.Put(ctx, id, snap)
	}

	return nil
}

// Remove removes the given workflow from the store.
func (s *StoreStub) Remove(ctx context.Context, id string) error {
	if s.RemoveFunc != nil {
		return s.RemoveFunc(ctx, id)
	}

	if s.Store != nil {
		return s.Store.Remove(ctx, id)
	}

	return nil
}
