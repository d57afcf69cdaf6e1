// Package mirror maintains a local copy of the state of many independently
// running workflows.
package mirror

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dogmatiq/dodeca/logging"
	"github.com/dogmatiq/mirror/internal/x/loggingx"
	"github.com/dogmatiq/mirror/registry"
	"github.com/dogmatiq/mirror/resync"
	"github.com/dogmatiq/mirror/store"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Mirror periodically synchronizes the state of each workflow in a registry
// into a store.
type Mirror struct {
	opts    *mirrorOptions
	manager *resync.Manager
}

// New returns a new mirror.
func New(options ...Option) *Mirror {
	opts := resolveOptions(options...)

	return &Mirror{
		opts: opts,
		manager: &resync.Manager{
			Registry:  opts.Registry,
			Store:     opts.Store,
			Semaphore: semaphore.NewWeighted(int64(opts.ConcurrencyLimit)),
			Prune:     opts.Prune,
			Logger:    loggingx.WithPrefix(opts.Logger, "[resync] "),
		},
	}
}

// Run synchronizes the workflows in the registry until ctx is canceled or an
// error occurs.
func Run(ctx context.Context, options ...Option) error {
	return New(options...).Run(ctx)
}

// Registry returns the registry of active workflows.
func (m *Mirror) Registry() *registry.Registry {
	return m.opts.Registry
}

// Store returns the store that contains the mirrored state of each workflow.
func (m *Mirror) Store() store.Reader {
	return m.opts.Store
}

// SynchronizeAll performs a single full synchronization round.
//
// It may be called while Run() is executing, in which case it waits for any
// round that is already in progress.
func (m *Mirror) SynchronizeAll(ctx context.Context) resync.Round {
	return m.manager.SynchronizeAll(ctx)
}

// Run synchronizes the workflows in the registry until ctx is canceled or an
// error occurs.
func (m *Mirror) Run(ctx context.Context) error {
	parent := ctx
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return m.poll(ctx, "sync", m.manager.SynchronizeAll, m.opts.SyncInterval)
	})

	if m.opts.DeltaInterval > 0 {
		g.Go(func() error {
			return m.poll(ctx, "delta", m.manager.ApplyDeltas, m.opts.DeltaInterval)
		})
	}

	if m.opts.Discoverer != nil {
		g.Go(func() error {
			return m.discover(ctx)
		})
	}

	err := g.Wait()

	if parent.Err() != nil {
		return parent.Err()
	}

	return err
}

// poll performs rounds of the given kind at a fixed interval.
func (m *Mirror) poll(
	ctx context.Context,
	kind string,
	round func(context.Context) resync.Round,
	interval time.Duration,
) error {
	p := &resync.Poller{
		Round:    round,
		Interval: interval,
		Logger:   loggingx.WithPrefix(m.opts.Logger, "[%s] ", kind),
	}

	return p.Run(ctx)
}

// discover runs the discoverer, if configured.
func (m *Mirror) discover(ctx context.Context) error {
	logger := loggingx.WithPrefix(m.opts.Logger, "[discovery] ")

	logging.Debug(logger, "discoverer started")

	if err := m.opts.Discoverer(ctx, m.opts.Registry, logger); err != nil {
		return fmt.Errorf("discoverer stopped: %w", err)
	}

	return errors.New("discoverer stopped unexpectedly")
}
