package mirror

import (
	"context"
	"runtime"
	"time"

	"github.com/dogmatiq/dodeca/logging"
	"github.com/dogmatiq/mirror/registry"
	"github.com/dogmatiq/mirror/store"
	"github.com/dogmatiq/mirror/store/memorystore"
)

var (
	// DefaultSyncInterval is the default interval between full
	// synchronization rounds.
	//
	// It is overridden by the WithSyncInterval() option.
	DefaultSyncInterval = 5 * time.Second

	// DefaultConcurrencyLimit is the default number of workflows to
	// synchronize concurrently.
	//
	// It is overridden by the WithConcurrencyLimit() option.
	DefaultConcurrencyLimit = uint(runtime.GOMAXPROCS(0) * 8)

	// DefaultLogger is the default target for log messages produced by the
	// mirror.
	//
	// It is overridden by the WithLogger() option.
	DefaultLogger = logging.DefaultLogger
)

// Discoverer is a function that keeps a registry up-to-date as workflows start
// and stop.
//
// It blocks until ctx is canceled or a fatal error occurs.
type Discoverer func(ctx context.Context, r *registry.Registry, l logging.Logger) error

// Option configures the behavior of a mirror.
type Option func(*mirrorOptions)

// WithRegistry returns an option that sets the registry of active workflows.
//
// If this option is omitted or r is nil, a new empty registry is used.
func WithRegistry(r *registry.Registry) Option {
	return func(opts *mirrorOptions) {
		opts.Registry = r
	}
}

// WithStore returns an option that sets the store that workflow snapshots are
// written to.
//
// If this option is omitted or s is nil, a new in-memory store is used.
func WithStore(s store.Store) Option {
	return func(opts *mirrorOptions) {
		opts.Store = s
	}
}

// WithSyncInterval returns an option that sets the interval between full
// synchronization rounds.
//
// If this option is omitted or d is zero, DefaultSyncInterval is used.
func WithSyncInterval(d time.Duration) Option {
	if d < 0 {
		panic("duration must not be negative")
	}

	return func(opts *mirrorOptions) {
		opts.SyncInterval = d
	}
}

// WithDeltaInterval returns an option that sets the interval between
// incremental update rounds.
//
// If this option is omitted or d is zero, incremental updates are not
// requested and each workflow is only updated by full synchronization.
func WithDeltaInterval(d time.Duration) Option {
	if d < 0 {
		panic("duration must not be negative")
	}

	return func(opts *mirrorOptions) {
		opts.DeltaInterval = d
	}
}

// WithConcurrencyLimit returns an option that limits the number of workflows
// that are synchronized at the same time.
//
// If this option is omitted or n is zero, DefaultConcurrencyLimit is used.
func WithConcurrencyLimit(n uint) Option {
	return func(opts *mirrorOptions) {
		opts.ConcurrencyLimit = n
	}
}

// WithPruning returns an option that controls whether workflows are removed
// from the store once they are no longer in the registry.
//
// Pruning is disabled by default.
func WithPruning(enabled bool) Option {
	return func(opts *mirrorOptions) {
		opts.Prune = enabled
	}
}

// WithDiscoverer returns an option that sets the discoverer used to maintain
// the registry.
//
// If this option is omitted or d is nil, the registry is only changed by the
// caller.
func WithDiscoverer(d Discoverer) Option {
	return func(opts *mirrorOptions) {
		opts.Discoverer = d
	}
}

// WithLogger returns an option that sets the target for log messages produced
// by the mirror.
//
// If this option is omitted or l is nil DefaultLogger is used.
func WithLogger(l logging.Logger) Option {
	return func(opts *mirrorOptions) {
		opts.Logger = l
	}
}

// mirrorOptions is a container for a fully-resolved set of mirror options.
type mirrorOptions struct {
	Registry         *registry.Registry
	Store            store.Store
	SyncInterval     time.Duration
	DeltaInterval    time.Duration
	ConcurrencyLimit uint
	Prune            bool
	Discoverer       Discoverer
	Logger           logging.Logger
}

// resolveOptions returns a fully-populated set of mirror options built from
// the given set of option functions.
func resolveOptions(options ...Option) *mirrorOptions {
	opts := &mirrorOptions{}

	for _, o := range options {
		o(opts)
	}

	if opts.Registry == nil {
		opts.Registry = &registry.Registry{}
	}

	if opts.Store == nil {
		opts.Store = &memorystore.Store{}
	}

	if opts.SyncInterval == 0 {
		opts.SyncInterval = DefaultSyncInterval
	}

	if opts.ConcurrencyLimit == 0 {
		opts.ConcurrencyLimit = DefaultConcurrencyLimit
	}

	if opts.Logger == nil {
		opts.Logger = DefaultLogger
	}

	return opts
}
