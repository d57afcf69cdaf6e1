package mlog

import (
	"fmt"
	"io"

	"github.com/dogmatiq/iago/must"
)

const (
	// RoundIDIcon is the icon shown directly before a synchronization round
	// ID. It is a circle with a dot in the center, indicating a single "turn"
	// of the synchronization cycle.
	RoundIDIcon Icon = "⨀"

	// WorkflowIDIcon is the icon shown directly before a workflow ID. It is an
	// "equals sign", indicating that the line relates to exactly the displayed
	// workflow.
	WorkflowIDIcon Icon = "="

	// SyncIcon is the icon shown when a workflow's full state has been
	// mirrored into the store. It is a downward pointing arrow, as the state is
	// "downloaded" from the scheduler.
	SyncIcon Icon = "▼"

	// SyncErrorIcon is a variant of SyncIcon used when synchronization fails.
	// It is a hollow version of SyncIcon, indicating that the requirement
	// remains "unfulfilled".
	SyncErrorIcon Icon = "▽"

	// DeltaIcon is the icon shown when an incremental update has been applied
	// to a workflow's mirrored state.
	DeltaIcon Icon = "Δ"

	// PruneIcon is the icon shown when a workflow's mirrored state is removed
	// from the store.
	PruneIcon Icon = "⌫"

	// ErrorIcon is the icon shown when logging information about an error.
	// It is a heavy cross, indicating a failure.
	ErrorIcon Icon = "✖"

	// SeparatorIcon is an icon used to separate strings of unrelated text inside a
	// log message. It is a large bullet, intended to have a large visual impact.
	SeparatorIcon Icon = "●"
)

// Icon is a unicode symbol used as an icon in log messages.
type Icon string

func (i Icon) String() string {
	return string(i)
}

// WriteTo writes a string representation of the icon to w.
// If i is the zero-value, a single space is rendered.
func (i Icon) WriteTo(w io.Writer) (int64, error) {
	s := i.String()
	if i == "" {
		s = " "
	}

	n, err := io.WriteString(w, s)
	return int64(n), err
}

// WithLabel return an IconWithLabel containing this icon and the given label.
func (i Icon) WithLabel(f string, v ...interface{}) IconWithLabel {
	return IconWithLabel{
		i,
		formatLabel(fmt.Sprintf(f, v...)),
	}
}

// WithID return an IconWithLabel containing this icon and an ID as its label.
//
// The id is formatted using FormatID().
func (i Icon) WithID(id string) IconWithLabel {
	return i.WithLabel("%s", FormatID(id))
}

// IconWithLabel is a container for an icon and its associated text label.
type IconWithLabel struct {
	Icon  Icon
	Label string
}

func (i IconWithLabel) String() string {
	return i.Icon.String() + " " + i.Label
}

// WriteTo writes a string representation of the icon and its label to w.
func (i IconWithLabel) WriteTo(w io.Writer) (_ int64, err error) {
	defer must.Recover(&err)

	n := must.WriteTo(w, i.Icon)
	n += must.Write(w, space1)
	n += must.WriteString(w, i.Label)

	return int64(n), err
}

// formatLabel formats a label for display.
func formatLabel(label string) string {
	if label == "" {
		return "-"
	}

	return label
}
