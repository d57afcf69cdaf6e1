// Package registry tracks the set of workflows that are currently being
// mirrored.
package registry

import (
	"sort"
	"sync"

	"github.com/dogmatiq/mirror/endpoint"
)

// Entry describes an active workflow and how to reach its scheduler.
type Entry struct {
	// WorkflowID is the unique identifier of the workflow.
	WorkflowID string

	// Client is used to make requests to the workflow's scheduler.
	Client endpoint.Client

	// Session contains information about the connection to the scheduler.
	Session Session
}

// Session is metadata about the connection to a workflow's scheduler.
type Session struct {
	Address string
	Owner   string
	Labels  map[string]string
}

// Reader is an interface for reading the set of active workflows.
type Reader interface {
	// Snapshot returns the entries that are active at the time of the call.
	//
	// The returned slice is not modified by subsequent changes to the
	// registry.
	Snapshot() []Entry
}

// Registry is a concurrency-safe set of active workflows, keyed by workflow
// ID.
//
// The zero-value is an empty registry.
type Registry struct {
	m       sync.RWMutex
	entries map[string]Entry
}

// Add adds an entry to the registry, replacing any existing entry for the
// same workflow.
//
// It panics if e has an empty workflow ID or a nil client.
func (r *Registry) Add(e Entry) {
	if e.WorkflowID == "" {
		panic("workflow ID must not be empty")
	}

	if e.Client == nil {
		panic("client must not be nil")
	}

	e.Session.Labels = cloneLabels(e.Session.Labels)

	r.m.Lock()
	defer r.m.Unlock()

	if r.entries == nil {
		r.entries = map[string]Entry{}
	}

	r.entries[e.WorkflowID] = e
}

// Remove removes the entry for the given workflow.
//
// It returns the removed entry, if any.
func (r *Registry) Remove(id string) (Entry, bool) {
	r.m.Lock()
	defer r.m.Unlock()

	e, ok := r.entries[id]
	delete(r.entries, id)

	return e, ok
}

// Get returns the entry for the given workflow.
func (r *Registry) Get(id string) (Entry, bool) {
	r.m.RLock()
	defer r.m.RUnlock()

	e, ok := r.entries[id]
	e.Session.Labels = cloneLabels(e.Session.Labels)

	return e, ok
}

// Len returns the number of active workflows.
func (r *Registry) Len() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.entries)
}

// Snapshot returns the currently active entries, ordered by workflow ID.
func (r *Registry) Snapshot() []Entry {
	r.m.RLock()
	entries := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		e.Session.Labels = cloneLabels(e.Session.Labels)
		entries = append(entries, e)
	}
	r.m.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].WorkflowID < entries[j].WorkflowID
	})

	return entries
}

// cloneLabels returns a copy of labels, so that the registry never shares a
// map with its callers.
func cloneLabels(labels map[string]string) map[string]string {
	if labels == nil {
		return nil
	}

	c := make(map[string]string, len(labels))
	for k, v := range labels {
		c[k] = v
	}

	return c
}
