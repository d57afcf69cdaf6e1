package mlog

import (
	"fmt"

	"github.com/dogmatiq/dodeca/logging"
)

// LogSynchronized logs a debug message indicating that a workflow's full
// state was written to the store.
func LogSynchronized(
	log logging.Logger,
	roundID, workflowID string,
	revision uint64,
) {
	if !logging.IsDebug(log) {
		return
	}

	logging.DebugString(
		log,
		formatLine(
			[]IconWithLabel{
				RoundIDIcon.WithID(roundID),
				WorkflowIDIcon.WithID(workflowID),
			},
			[]Icon{
				SyncIcon,
				"",
			},
			"synchronized",
			fmt.Sprintf("revision %d", revision),
		),
	)
}

// LogDeltaApplied logs a debug message indicating that an incremental update
// was applied to a workflow's mirrored state.
func LogDeltaApplied(
	log logging.Logger,
	roundID, workflowID string,
	revision uint64,
) {
	if !logging.IsDebug(log) {
		return
	}

	logging.DebugString(
		log,
		formatLine(
			[]IconWithLabel{
				RoundIDIcon.WithID(roundID),
				WorkflowIDIcon.WithID(workflowID),
			},
			[]Icon{
				DeltaIcon,
				"",
			},
			"delta applied",
			fmt.Sprintf("revision %d", revision),
		),
	)
}

// LogSyncFailure logs a message indicating that a workflow could not be
// synchronized during a round.
//
// stage describes the step that failed, such as "request" or "decode".
func LogSyncFailure(
	log logging.Logger,
	roundID, workflowID string,
	stage string,
	cause error,
) {
	logging.LogString(
		log,
		formatLine(
			[]IconWithLabel{
				RoundIDIcon.WithID(roundID),
				WorkflowIDIcon.WithID(workflowID),
			},
			[]Icon{
				SyncErrorIcon,
				ErrorIcon,
			},
			stage+" failed",
			cause.Error(),
		),
	)
}

// LogPruned logs a message indicating that a workflow's mirrored state was
// removed from the store because the workflow is no longer active.
func LogPruned(
	log logging.Logger,
	roundID, workflowID string,
) {
	logging.LogString(
		log,
		formatLine(
			[]IconWithLabel{
				RoundIDIcon.WithID(roundID),
				WorkflowIDIcon.WithID(workflowID),
			},
			[]Icon{
				PruneIcon,
				"",
			},
			"pruned",
			"workflow is no longer active",
		),
	)
}
