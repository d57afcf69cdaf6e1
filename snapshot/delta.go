package snapshot

import (
	"errors"
	"fmt"

	"github.com/dogmatiq/mirror/snapshot/internal/pb"
	"google.golang.org/protobuf/proto"
)

// ErrNoBase is returned by Delta.ApplyTo() when there is no snapshot to apply
// the delta to.
var ErrNoBase = errors.New("no base snapshot to apply delta to")

// Delta is an incremental update to a workflow's snapshot.
//
// Elements are replaced or removed whole, by ID. A delta never merges the
// fields of an individual element.
type Delta struct {
	// Workflow, if non-nil, replaces the snapshot's workflow record.
	Workflow *Workflow

	// Upserted contains elements that are added to the snapshot, replacing
	// any existing element with the same ID.
	Upserted Elements

	// Pruned contains the IDs of elements that are removed from the snapshot.
	Pruned ElementIDs
}

// ElementIDs is a set of element IDs, grouped by element type.
type ElementIDs struct {
	Tasks         []string
	TaskProxies   []string
	Jobs          []string
	Families      []string
	FamilyProxies []string
	Edges         []string
}

// IsEmpty returns true if the delta makes no changes.
func (d *Delta) IsEmpty() bool {
	p := d.Pruned

	return d.Workflow == nil &&
		d.Upserted.IsEmpty() &&
		len(p.Tasks) == 0 &&
		len(p.TaskProxies) == 0 &&
		len(p.Jobs) == 0 &&
		len(p.Families) == 0 &&
		len(p.FamilyProxies) == 0 &&
		len(p.Edges) == 0
}

// ApplyTo returns a new snapshot that is the result of applying d to base.
//
// base itself is never modified. Upserts are applied before prunes, so an
// element that appears in both is removed.
func (d *Delta) ApplyTo(base *Snapshot) (*Snapshot, error) {
	if base == nil {
		return nil, ErrNoBase
	}

	s := base.Clone()

	if d.Workflow != nil {
		if s.Workflow != nil && d.Workflow.ID != s.Workflow.ID {
			return nil, fmt.Errorf(
				"delta for workflow %s can not be applied to workflow %s",
				d.Workflow.ID,
				s.Workflow.ID,
			)
		}

		s.Workflow = d.Workflow.Clone()
	}

	u := d.Upserted.Clone()
	s.Tasks = upsert(s.Tasks, u.Tasks)
	s.TaskProxies = upsert(s.TaskProxies, u.TaskProxies)
	s.Jobs = upsert(s.Jobs, u.Jobs)
	s.Families = upsert(s.Families, u.Families)
	s.FamilyProxies = upsert(s.FamilyProxies, u.FamilyProxies)
	s.Edges = upsert(s.Edges, u.Edges)

	p := d.Pruned
	s.Tasks = prune(s.Tasks, p.Tasks)
	s.TaskProxies = prune(s.TaskProxies, p.TaskProxies)
	s.Jobs = prune(s.Jobs, p.Jobs)
	s.Families = prune(s.Families, p.Families)
	s.FamilyProxies = prune(s.FamilyProxies, p.FamilyProxies)
	s.Edges = prune(s.Edges, p.Edges)

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// upsert replaces elements of s that have the same ID as an element in elems,
// and appends the rest.
func upsert[E element](s, elems []E) []E {
	if len(elems) == 0 {
		return s
	}

	index := make(map[string]int, len(s))
	for i, x := range s {
		index[x.elementID()] = i
	}

	for _, e := range elems {
		id := e.elementID()

		if i, ok := index[id]; ok {
			s[i] = e
			continue
		}

		index[id] = len(s)
		s = append(s, e)
	}

	return s
}

// prune removes elements of s with any of the given IDs, preserving order.
func prune[E element](s []E, ids []string) []E {
	if len(ids) == 0 {
		return s
	}

	remove := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		remove[id] = struct{}{}
	}

	kept := s[:0]
	for _, e := range s {
		if _, ok := remove[e.elementID()]; !ok {
			kept = append(kept, e)
		}
	}

	return kept
}

// DecodeDelta unmarshals an incremental update payload.
func DecodeDelta(data []byte) (*Delta, error) {
	m := &pb.WorkflowDelta{}

	if err := proto.Unmarshal(data, m); err != nil {
		return nil, &DecodeError{"delta", err}
	}

	d := &Delta{
		Workflow: workflowFromPB(m.GetWorkflow()),
		Upserted: elementsFromPB(m.GetUpserted()),
		Pruned:   elementIDsFromPB(m.GetPruned()),
	}

	if d.Workflow != nil && d.Workflow.ID == "" {
		return nil, &DecodeError{"delta", errors.New("workflow ID must not be empty")}
	}

	return d, nil
}

// MarshalDelta encodes d into its binary representation.
//
// It returns an error if any of the delta's strings are not valid UTF-8.
func MarshalDelta(d *Delta) ([]byte, error) {
	m := &pb.WorkflowDelta{
		Workflow: workflowToPB(d.Workflow),
		Pruned:   elementIDsToPB(d.Pruned),
	}

	if !d.Upserted.IsEmpty() {
		m.Upserted = elementsToPB(d.Upserted)
	}

	return marshalOptions.Marshal(m)
}
