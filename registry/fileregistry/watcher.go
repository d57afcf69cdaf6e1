package fileregistry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/dogmatiq/dodeca/logging"
	"github.com/dogmatiq/linger"
	"github.com/dogmatiq/linger/backoff"
	"github.com/dogmatiq/mirror/endpoint"
	"github.com/dogmatiq/mirror/endpoint/grpcendpoint"
	"github.com/dogmatiq/mirror/registry"
	"github.com/fsnotify/fsnotify"
)

// DefaultBackoffStrategy is the default strategy used to delay retries after
// the registry file can not be read or watched.
var DefaultBackoffStrategy backoff.Strategy = backoff.WithTransforms(
	backoff.Exponential(100*time.Millisecond),
	linger.FullJitter,
	linger.Limiter(0, 30*time.Second),
)

// Watcher keeps a registry in sync with the content of a registry file.
type Watcher struct {
	// Path is the path to the registry file.
	Path string

	// Registry is the registry to maintain.
	Registry *registry.Registry

	// Connect returns the client used to make requests to a workflow's
	// scheduler. If it is nil, DialGRPC(0) is used.
	Connect func(context.Context, Workflow) (endpoint.Client, error)

	// BackoffStrategy controls how long to wait between failures to read or
	// watch the file. If it is nil, DefaultBackoffStrategy is used.
	BackoffStrategy backoff.Strategy

	// Logger is the target for log messages about changes to the registry.
	// If it is nil, logging.DefaultLogger is used.
	Logger logging.Logger

	known   map[string]Workflow
	backoff backoff.Counter
}

// Run updates the registry each time the file changes, until ctx is canceled.
//
// The workflows added by the watcher are removed from the registry, and their
// clients closed, when Run returns.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.removeAll()

	w.backoff = backoff.Counter{
		Strategy: w.BackoffStrategy,
	}

	if w.backoff.Strategy == nil {
		w.backoff.Strategy = DefaultBackoffStrategy
	}

	for {
		err := w.watch(ctx)

		if ctx.Err() != nil {
			return ctx.Err()
		}

		logging.Log(
			w.Logger,
			"unable to watch registry file: %s",
			err,
		)

		if err := w.backoff.Sleep(ctx, err); err != nil {
			return err
		}
	}
}

// watch reconciles the registry and then again on each change to the file.
//
// It watches the directory containing the file, so that the file may be
// replaced atomically by renaming another file over it.
func (w *Watcher) watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	path := filepath.Clean(w.Path)

	if err := fw.Add(filepath.Dir(path)); err != nil {
		return err
	}

	if err := w.reload(ctx); err != nil {
		return err
	}

	w.backoff.Reset()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err, ok := <-fw.Errors:
			if !ok {
				return errors.New("file watcher closed unexpectedly")
			}
			return err

		case ev, ok := <-fw.Events:
			if !ok {
				return errors.New("file watcher closed unexpectedly")
			}

			if filepath.Clean(ev.Name) != path || ev.Op == fsnotify.Chmod {
				continue
			}

			if err := w.reload(ctx); err != nil {
				return err
			}
		}
	}
}

// reload reads the registry file and applies any changes to the registry.
func (w *Watcher) reload(ctx context.Context) error {
	workflows, err := Load(w.Path)
	if err != nil {
		return err
	}

	if w.known == nil {
		w.known = map[string]Workflow{}
	}

	listed := map[string]struct{}{}

	for _, wf := range workflows {
		listed[wf.ID] = struct{}{}

		if prev, ok := w.known[wf.ID]; ok && prev.equal(wf) {
			continue
		}

		if err := w.add(ctx, wf); err != nil {
			logging.Log(
				w.Logger,
				"unable to connect to workflow %s at %s: %s",
				wf.ID,
				wf.Address,
				err,
			)
		}
	}

	for id := range w.known {
		if _, ok := listed[id]; !ok {
			w.remove(id)
		}
	}

	return nil
}

// add connects to wf and adds it to the registry, replacing any previous
// entry for the same workflow.
func (w *Watcher) add(ctx context.Context, wf Workflow) error {
	connect := w.Connect
	if connect == nil {
		connect = DialGRPC(0)
	}

	c, err := connect(ctx, wf)
	if err != nil {
		return err
	}

	prev, replaced := w.Registry.Get(wf.ID)

	w.Registry.Add(registry.Entry{
		WorkflowID: wf.ID,
		Client:     c,
		Session: registry.Session{
			Address: wf.Address,
			Owner:   wf.Owner,
			Labels:  wf.Labels,
		},
	})
	w.known[wf.ID] = wf

	if replaced {
		closeClient(w.Logger, prev)
		logging.Log(w.Logger, "workflow %s moved to %s", wf.ID, wf.Address)
	} else {
		logging.Log(w.Logger, "workflow %s added at %s", wf.ID, wf.Address)
	}

	return nil
}

// remove removes the workflow with the given ID from the registry.
func (w *Watcher) remove(id string) {
	delete(w.known, id)

	if e, ok := w.Registry.Remove(id); ok {
		closeClient(w.Logger, e)
	}

	logging.Log(w.Logger, "workflow %s removed", id)
}

// removeAll removes every workflow added by the watcher.
func (w *Watcher) removeAll() {
	for id := range w.known {
		delete(w.known, id)

		if e, ok := w.Registry.Remove(id); ok {
			closeClient(w.Logger, e)
		}
	}
}

// closeClient closes the client of e, if it is closable.
func closeClient(log logging.Logger, e registry.Entry) {
	if c, ok := e.Client.(io.Closer); ok {
		if err := c.Close(); err != nil {
			logging.Log(
				log,
				"unable to close connection to workflow %s: %s",
				e.WorkflowID,
				err,
			)
		}
	}
}

// DialGRPC returns a Connect function that dials each workflow's scheduler
// using gRPC, with the given per-request timeout.
//
// If timeout is zero, grpcendpoint.DefaultTimeout is used.
func DialGRPC(timeout time.Duration) func(context.Context, Workflow) (endpoint.Client, error) {
	return func(ctx context.Context, wf Workflow) (endpoint.Client, error) {
		c, err := grpcendpoint.Dial(ctx, wf.Address, timeout)
		if err != nil {
			return nil, fmt.Errorf("workflow %s: %w", wf.ID, err)
		}
		return c, nil
	}
}
