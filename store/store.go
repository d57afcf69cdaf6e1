// Package store defines the interface for storing the mirrored state of each
// workflow.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/dogmatiq/mirror/snapshot"
)

// ErrClosed is returned when using a store that has been closed.
var ErrClosed = errors.New("store is closed")

// Record is the stored state of a single workflow.
type Record struct {
	// WorkflowID is the ID of the workflow.
	WorkflowID string

	// Snapshot is the most recent successfully synchronized state of the
	// workflow. It must not be modified.
	Snapshot *snapshot.Snapshot

	// Revision is incremented each time the snapshot is replaced. The first
	// revision of each workflow is 1.
	Revision uint64

	// UpdatedAt is the time at which the snapshot was written.
	UpdatedAt time.Time
}

// Reader is an interface for reading the mirrored state of workflows.
//
// It is safe to read from a store while it is being written.
type Reader interface {
	// Get returns the record for the given workflow.
	//
	// ok is false if no snapshot has been stored for the workflow. A reader
	// always sees either the complete previous record or the complete new
	// one, never a combination of the two.
	Get(ctx context.Context, id string) (rec Record, ok bool, err error)

	// IDs returns the IDs of all workflows in the store, in order.
	IDs(ctx context.Context) ([]string, error)
}

// Store is an interface for storing the mirrored state of workflows.
type Store interface {
	Reader

	// Put atomically replaces the snapshot for the given workflow.
	Put(ctx context.Context, id string, s *snapshot.Snapshot) error

	// Remove removes the given workflow from the store. It is not an error
	// to remove a workflow that is not in the store.
	Remove(ctx context.Context, id string) error
}
