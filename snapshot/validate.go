package snapshot

import (
	"errors"
	"fmt"
)

// ErrMissingWorkflow is returned by Validate() if a snapshot does not contain a
// workflow record.
var ErrMissingWorkflow = errors.New("snapshot does not contain a workflow record")

// Validate returns an error if s is not a well-formed snapshot.
//
// A well-formed snapshot has a workflow record with a non-empty ID, and every
// element has an ID that is unique within its collection.
func (s *Snapshot) Validate() error {
	if s.Workflow == nil {
		return ErrMissingWorkflow
	}

	if s.Workflow.ID == "" {
		return errors.New("workflow ID must not be empty")
	}

	return s.Elements.validate()
}

func (e *Elements) validate() error {
	if err := validateIDs("task", e.Tasks); err != nil {
		return err
	}

	if err := validateIDs("task proxy", e.TaskProxies); err != nil {
		return err
	}

	if err := validateIDs("job", e.Jobs); err != nil {
		return err
	}

	if err := validateIDs("family", e.Families); err != nil {
		return err
	}

	if err := validateIDs("family proxy", e.FamilyProxies); err != nil {
		return err
	}

	return validateIDs("edge", e.Edges)
}

func validateIDs[E element](kind string, elems []E) error {
	seen := make(map[string]struct{}, len(elems))

	for _, e := range elems {
		id := e.elementID()

		if id == "" {
			return fmt.Errorf("%s ID must not be empty", kind)
		}

		if _, ok := seen[id]; ok {
			return fmt.Errorf("duplicate %s ID: %s", kind, id)
		}

		seen[id] = struct{}{}
	}

	return nil
}
