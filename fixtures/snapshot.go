package fixtures

import (
	"fmt"

	"github.com/dogmatiq/mirror/snapshot"
)

// NewSnapshot returns a small but complete snapshot of the workflow with the
// given ID.
//
// stamp is used as the Stamp of every record, allowing tests to distinguish
// between successive versions of the same workflow.
func NewSnapshot(id, stamp string) *snapshot.Snapshot {
	tp := func(name string) string {
		return fmt.Sprintf("%s//20240101T00/%s", id, name)
	}

	return &snapshot.Snapshot{
		Workflow: &snapshot.Workflow{
			ID:          id,
			Stamp:       stamp,
			Name:        id,
			Status:      "running",
			StatusMsg:   "running",
			Host:        "scheduler.example.org",
			Port:        43001,
			Owner:       "alice",
			RunMode:     "live",
			LastUpdated: 1704067200.5,
			StateTotals: map[string]int32{
				"running":   1,
				"succeeded": 1,
				"waiting":   0,
			},
		},
		Elements: snapshot.Elements{
			Tasks: []snapshot.Task{
				{ID: id + "//$namespace|prep", Stamp: stamp, Name: "prep", MeanElapsedTime: 12.5, Depth: 1, Parents: []string{"root"}},
				{ID: id + "//$namespace|model", Stamp: stamp, Name: "model", MeanElapsedTime: 300, Depth: 1, Parents: []string{"root"}},
			},
			TaskProxies: []snapshot.TaskProxy{
				{ID: tp("prep"), Stamp: stamp, Task: "prep", State: "succeeded", CyclePoint: "20240101T00", JobSubmits: 1, Jobs: []string{tp("prep") + "/01"}, FirstParent: "root"},
				{ID: tp("model"), Stamp: stamp, Task: "model", State: "running", CyclePoint: "20240101T00", JobSubmits: 2, Jobs: []string{tp("model") + "/01", tp("model") + "/02"}, FirstParent: "root", IsHeld: true},
			},
			Jobs: []snapshot.Job{
				{ID: tp("prep") + "/01", Stamp: stamp, SubmitNum: 1, State: "succeeded", TaskProxy: tp("prep"), SubmittedTime: "2024-01-01T00:00:05Z", StartedTime: "2024-01-01T00:00:06Z", FinishedTime: "2024-01-01T00:00:18Z", JobRunnerName: "background", JobID: "1234", Platform: "localhost"},
				{ID: tp("model") + "/02", Stamp: stamp, SubmitNum: 2, State: "running", TaskProxy: tp("model"), SubmittedTime: "2024-01-01T00:01:00Z", StartedTime: "2024-01-01T00:01:02Z", JobRunnerName: "slurm", JobID: "98765", Platform: "hpc"},
			},
			Families: []snapshot.Family{
				{ID: id + "//$namespace|root", Stamp: stamp, Name: "root", ChildTasks: []string{"prep", "model"}},
			},
			FamilyProxies: []snapshot.FamilyProxy{
				{ID: id + "//20240101T00/root", Stamp: stamp, Family: "root", CyclePoint: "20240101T00", State: "running", ChildTasks: []string{tp("prep"), tp("model")}},
			},
			Edges: []snapshot.Edge{
				{ID: id + "//@edge.prep.model", Stamp: stamp, Source: tp("prep"), Target: tp("model")},
			},
		},
	}
}

// NewPayload returns the binary encoding of NewSnapshot(id, stamp).
func NewPayload(id, stamp string) []byte {
	data, err := snapshot.Marshal(NewSnapshot(id, stamp))
	if err != nil {
		panic(err)
	}

	return data
}

// NewDeltaPayload returns the binary encoding of NewDelta(id, stamp).
func NewDeltaPayload(id, stamp string) []byte {
	data, err := snapshot.MarshalDelta(NewDelta(id, stamp))
	if err != nil {
		panic(err)
	}

	return data
}

// NewDelta returns a delta that marks the "model" task of the workflow
// returned by NewSnapshot(id, ...) as succeeded, adds a "post" task proxy and
// prunes the edge between "prep" and "model".
func NewDelta(id, stamp string) *snapshot.Delta {
	tp := func(name string) string {
		return fmt.Sprintf("%s//20240101T00/%s", id, name)
	}

	w := NewSnapshot(id, stamp).Workflow
	w.StateTotals = map[string]int32{
		"succeeded": 2,
		"waiting":   1,
	}

	return &snapshot.Delta{
		Workflow: w,
		Upserted: snapshot.Elements{
			TaskProxies: []snapshot.TaskProxy{
				{ID: tp("model"), Stamp: stamp, Task: "model", State: "succeeded", CyclePoint: "20240101T00", JobSubmits: 2, Jobs: []string{tp("model") + "/01", tp("model") + "/02"}, FirstParent: "root"},
				{ID: tp("post"), Stamp: stamp, Task: "post", State: "waiting", CyclePoint: "20240101T00", FirstParent: "root"},
			},
		},
		Pruned: snapshot.ElementIDs{
			Edges: []string{id + "//@edge.prep.model"},
		},
	}
}
