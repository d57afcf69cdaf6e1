package resync

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Stage identifies the step of a workflow's synchronization that failed.
type Stage string

const (
	// StageRequest is the stage in which the scheduler is queried.
	StageRequest Stage = "request"

	// StageDecode is the stage in which the scheduler's response is decoded.
	StageDecode Stage = "decode"

	// StageApply is the stage in which an incremental update is applied to
	// the stored snapshot.
	StageApply Stage = "apply"

	// StageStore is the stage in which the result is written to, or removed
	// from, the store.
	StageStore Stage = "store"
)

// ErrNoBaseSnapshot is the cause of an incremental update failure for a
// workflow that has not yet been fully synchronized.
var ErrNoBaseSnapshot = errors.New("no snapshot to apply the update to, awaiting full synchronization")

// Round is the outcome of a single synchronization round.
type Round struct {
	// ID uniquely identifies the round.
	ID string

	// Targets is the IDs of the workflows that were active when the round
	// began, in order.
	Targets []string

	// Succeeded is the IDs of the workflows that were synchronized.
	Succeeded []string

	// Failures contains one entry for each workflow that could not be
	// synchronized, and for each workflow that could not be pruned.
	Failures []Failure

	// Pruned is the IDs of the workflows that were removed from the store
	// because they were no longer active.
	Pruned []string
}

// Err returns an error combining the causes of all failures in the round.
//
// It returns nil if there were no failures.
func (r Round) Err() error {
	var err error
	for _, f := range r.Failures {
		err = multierr.Append(err, f)
	}
	return err
}

// Failure describes a workflow that could not be synchronized.
type Failure struct {
	WorkflowID string
	Stage      Stage
	Cause      error
}

func (f Failure) Error() string {
	return fmt.Sprintf(
		"%s: %s failed: %s",
		f.WorkflowID,
		f.Stage,
		f.Cause,
	)
}

func (f Failure) Unwrap() error {
	return f.Cause
}

// PanicError is the cause of a failure that occurred because the endpoint
// client or decoder panicked.
type PanicError struct {
	Value interface{}
}

func (e PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// IdentityMismatchError is the cause of a failure that occurred because a
// scheduler returned the state of a different workflow.
type IdentityMismatchError struct {
	Expected string
	Actual   string
}

func (e IdentityMismatchError) Error() string {
	return fmt.Sprintf(
		"response describes workflow %q, expected %q",
		e.Actual,
		e.Expected,
	)
}
