// Package snapshot defines the mirrored representation of a single workflow's
// state and the binary wire format used by schedulers to transmit it.
//
// A Snapshot is the complete state of one workflow at a point in time. A Delta
// is an incremental update that replaces or removes individual elements of an
// existing snapshot.
//
// Snapshots are treated as immutable once they have been decoded. Operations
// that produce a modified snapshot, such as Delta.ApplyTo(), always operate on
// a clone.
package snapshot
