// Package resync mirrors the state of many remote workflows into a local
// store.
package resync

import (
	"context"
	"sync"

	"github.com/dogmatiq/dodeca/logging"
	"github.com/dogmatiq/mirror/endpoint"
	"github.com/dogmatiq/mirror/internal/mlog"
	"github.com/dogmatiq/mirror/registry"
	"github.com/dogmatiq/mirror/snapshot"
	"github.com/dogmatiq/mirror/store"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Manager synchronizes the mirrored state of each active workflow.
//
// A failure to synchronize one workflow never prevents the synchronization of
// any other. The failures are logged and returned as part of each Round, but
// the round itself never fails.
type Manager struct {
	// Registry is the source of the active workflows.
	Registry registry.Reader

	// Store is the store that the workflow snapshots are written to.
	Store store.Store

	// Decode converts a full-state payload into a snapshot. If it is nil,
	// snapshot.Decode() is used.
	Decode func([]byte) (*snapshot.Snapshot, error)

	// DecodeDelta converts an incremental update payload into a delta. If it
	// is nil, snapshot.DecodeDelta() is used.
	DecodeDelta func([]byte) (*snapshot.Delta, error)

	// Semaphore, if non-nil, limits the number of workflows that are
	// synchronized concurrently.
	Semaphore *semaphore.Weighted

	// Prune, if true, removes workflows from the store when they are no longer
	// in the registry.
	Prune bool

	// Logger is the target for log messages about each round.
	Logger logging.Logger

	m sync.Mutex
}

// unit is the work performed for a single workflow within a round.
//
// It updates *stage as it progresses so that the failing stage can be reported
// if the unit panics.
type unit func(ctx context.Context, roundID string, e registry.Entry, stage *Stage) error

// outcome is the result of a unit.
type outcome struct {
	stage Stage
	err   error
}

// SynchronizeAll replaces the stored snapshot of every active workflow with
// the full state reported by its scheduler.
//
// Each workflow is synchronized concurrently. It returns once every workflow
// has either been synchronized or has failed. Rounds on the same manager never
// overlap.
func (m *Manager) SynchronizeAll(ctx context.Context) Round {
	m.m.Lock()
	defer m.m.Unlock()

	entries := m.Registry.Snapshot()
	r := m.fanOut(ctx, entries, m.synchronize)

	if m.Prune {
		m.prune(ctx, entries, &r)
	}

	return r
}

// ApplyDeltas applies the incremental update reported by each active
// workflow's scheduler to its stored snapshot.
//
// It has the same concurrency and failure isolation behavior as
// SynchronizeAll(). A workflow that has no stored snapshot fails with
// ErrNoBaseSnapshot.
func (m *Manager) ApplyDeltas(ctx context.Context) Round {
	m.m.Lock()
	defer m.m.Unlock()

	return m.fanOut(ctx, m.Registry.Snapshot(), m.applyDelta)
}

// fanOut runs fn for each entry concurrently and waits for all of them to
// finish.
func (m *Manager) fanOut(
	ctx context.Context,
	entries []registry.Entry,
	fn unit,
) Round {
	r := Round{
		ID: uuid.NewString(),
	}

	outcomes := make([]outcome, len(entries))
	var g errgroup.Group

	for i, e := range entries {
		i, e := i, e // capture loop variables
		r.Targets = append(r.Targets, e.WorkflowID)

		g.Go(func() error {
			outcomes[i] = m.run(ctx, r.ID, e, fn)
			return nil
		})
	}

	g.Wait() // units never return an error

	for i, e := range entries {
		o := outcomes[i]

		if o.err == nil {
			r.Succeeded = append(r.Succeeded, e.WorkflowID)
			continue
		}

		r.Failures = append(r.Failures, Failure{e.WorkflowID, o.stage, o.err})
		mlog.LogSyncFailure(m.Logger, r.ID, e.WorkflowID, string(o.stage), o.err)
	}

	return r
}

// run executes fn for a single entry, converting a panic into a failure.
func (m *Manager) run(
	ctx context.Context,
	roundID string,
	e registry.Entry,
	fn unit,
) (o outcome) {
	o.stage = StageRequest

	if m.Semaphore != nil {
		if err := m.Semaphore.Acquire(ctx, 1); err != nil {
			o.err = err
			return o
		}
		defer m.Semaphore.Release(1)
	}

	defer func() {
		if v := recover(); v != nil {
			o.err = PanicError{v}
		}
	}()

	o.err = fn(ctx, roundID, e, &o.stage)

	return o
}

// synchronize fetches the full state of a single workflow and replaces its
// stored snapshot.
func (m *Manager) synchronize(
	ctx context.Context,
	roundID string,
	e registry.Entry,
	stage *Stage,
) error {
	*stage = StageRequest
	data, err := e.Client.Request(ctx, endpoint.EntireWorkflow, nil)
	if err != nil {
		return err
	}

	*stage = StageDecode
	s, err := m.decode(data)
	if err != nil {
		return err
	}

	if id := s.WorkflowID(); id != e.WorkflowID {
		return IdentityMismatchError{e.WorkflowID, id}
	}

	*stage = StageStore
	if err := m.Store.Put(ctx, e.WorkflowID, s); err != nil {
		return err
	}

	if logging.IsDebug(m.Logger) {
		if rec, ok, err := m.Store.Get(ctx, e.WorkflowID); err == nil && ok {
			mlog.LogSynchronized(m.Logger, roundID, e.WorkflowID, rec.Revision)
		}
	}

	return nil
}

// applyDelta fetches an incremental update for a single workflow and applies
// it to the stored snapshot.
func (m *Manager) applyDelta(
	ctx context.Context,
	roundID string,
	e registry.Entry,
	stage *Stage,
) error {
	*stage = StageStore
	rec, ok, err := m.Store.Get(ctx, e.WorkflowID)
	if err != nil {
		return err
	}

	if !ok {
		*stage = StageApply
		return ErrNoBaseSnapshot
	}

	*stage = StageRequest
	data, err := e.Client.Request(ctx, endpoint.DataElements, nil)
	if err != nil {
		return err
	}

	*stage = StageDecode
	d, err := m.decodeDelta(data)
	if err != nil {
		return err
	}

	if d.Workflow != nil && d.Workflow.ID != e.WorkflowID {
		return IdentityMismatchError{e.WorkflowID, d.Workflow.ID}
	}

	if d.IsEmpty() {
		return nil
	}

	*stage = StageApply
	s, err := d.ApplyTo(rec.Snapshot)
	if err != nil {
		return err
	}

	*stage = StageStore
	if err := m.Store.Put(ctx, e.WorkflowID, s); err != nil {
		return err
	}

	mlog.LogDeltaApplied(m.Logger, roundID, e.WorkflowID, rec.Revision+1)

	return nil
}

// prune removes the workflows that are not among the round's targets from
// the store.
//
// It is only called once every unit of the round has finished.
func (m *Manager) prune(
	ctx context.Context,
	entries []registry.Entry,
	r *Round,
) {
	ids, err := m.Store.IDs(ctx)
	if err != nil {
		logging.Log(m.Logger, "unable to list stored workflows for pruning: %s", err)
		return
	}

	active := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		active[e.WorkflowID] = struct{}{}
	}

	for _, id := range ids {
		if _, ok := active[id]; ok {
			continue
		}

		if err := m.Store.Remove(ctx, id); err != nil {
			r.Failures = append(r.Failures, Failure{id, StageStore, err})
			mlog.LogSyncFailure(m.Logger, r.ID, id, string(StageStore), err)
			continue
		}

		r.Pruned = append(r.Pruned, id)
		mlog.LogPruned(m.Logger, r.ID, id)
	}
}

func (m *Manager) decode(data []byte) (*snapshot.Snapshot, error) {
	if m.Decode != nil {
		return m.Decode(data)
	}
	return snapshot.Decode(data)
}

func (m *Manager) decodeDelta(data []byte) (*snapshot.Delta, error) {
	if m.DecodeDelta != nil {
		return m.DecodeDelta(data)
	}
	return snapshot.DecodeDelta(data)
}
