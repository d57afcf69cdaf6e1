package main

import (
	"context"
	"time"

	"github.com/dogmatiq/dodeca/logging"
	"github.com/dogmatiq/mirror"
	"github.com/dogmatiq/mirror/registry"
	"github.com/dogmatiq/mirror/registry/fileregistry"
	"github.com/dogmatiq/mirror/store/boltstore"
	"github.com/spf13/cobra"
)

// runConfig is the configuration of the "run" command.
type runConfig struct {
	RegistryPath  string
	Interval      time.Duration
	DeltaInterval time.Duration
	Timeout       time.Duration
	Concurrency   uint
	Prune         bool
	BoltPath      string
	Debug         bool
}

func newRunCmd() *cobra.Command {
	var cfg runConfig

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Synchronize the workflows listed in a registry file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.RegistryPath, "registry", "", "path to the registry file")
	f.DurationVar(&cfg.Interval, "interval", mirror.DefaultSyncInterval, "interval between full synchronization rounds")
	f.DurationVar(&cfg.DeltaInterval, "delta-interval", 0, "interval between incremental update rounds, 0 disables them")
	f.DurationVar(&cfg.Timeout, "timeout", 0, "per-request timeout, 0 uses the client default")
	f.UintVar(&cfg.Concurrency, "concurrency", 0, "maximum number of workflows to synchronize at once, 0 uses the default")
	f.BoolVar(&cfg.Prune, "prune", false, "remove workflows that are no longer in the registry from the store")
	f.StringVar(&cfg.BoltPath, "bolt", "", "persist snapshots to a BoltDB file at this path")
	f.BoolVar(&cfg.Debug, "debug", false, "enable debug logging")

	if err := cmd.MarkFlagRequired("registry"); err != nil {
		panic(err)
	}

	return cmd
}

// run mirrors the workflows in the registry file until ctx is canceled.
func run(ctx context.Context, cfg runConfig) error {
	logger := logging.DefaultLogger
	if cfg.Debug {
		logger = logging.DebugLogger
	}

	options := []mirror.Option{
		mirror.WithLogger(logger),
		mirror.WithSyncInterval(cfg.Interval),
		mirror.WithDeltaInterval(cfg.DeltaInterval),
		mirror.WithConcurrencyLimit(cfg.Concurrency),
		mirror.WithPruning(cfg.Prune),
		mirror.WithDiscoverer(fileDiscoverer(cfg.RegistryPath, cfg.Timeout)),
	}

	if cfg.BoltPath != "" {
		s, err := boltstore.Open(ctx, cfg.BoltPath, 0, nil)
		if err != nil {
			return err
		}
		defer s.Close()

		options = append(options, mirror.WithStore(s))
	}

	return mirror.Run(ctx, options...)
}

// fileDiscoverer returns a discoverer that maintains the registry from the
// file at the given path.
func fileDiscoverer(path string, timeout time.Duration) mirror.Discoverer {
	return func(ctx context.Context, r *registry.Registry, l logging.Logger) error {
		w := &fileregistry.Watcher{
			Path:     path,
			Registry: r,
			Connect:  fileregistry.DialGRPC(timeout),
			Logger:   l,
		}

		return w.Run(ctx)
	}
}
