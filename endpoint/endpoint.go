// Package endpoint defines the interface used to request state from a
// workflow's scheduler.
package endpoint

import (
	"context"
)

const (
	// EntireWorkflow is the name of the endpoint that returns a complete
	// snapshot of a workflow's state.
	EntireWorkflow = "pb_entire_workflow"

	// DataElements is the name of the endpoint that returns the changes made to
	// a workflow's state since the previous request.
	DataElements = "pb_data_elements"
)

// Client performs requests against a single workflow's scheduler.
//
// Implementations must be safe for concurrent use. Any failure, whether it
// occurs at the connection level, the protocol level or within the scheduler
// itself, is returned as an error.
type Client interface {
	// Request invokes the named endpoint and returns the binary payload of the
	// response.
	Request(ctx context.Context, endpoint string, args map[string]string) ([]byte, error)
}

// ClientFunc is an adaptor to allow the use of an ordinary function as a
// Client.
type ClientFunc func(ctx context.Context, endpoint string, args map[string]string) ([]byte, error)

// Request calls fn(ctx, endpoint, args).
func (fn ClientFunc) Request(
	ctx context.Context,
	endpoint string,
	args map[string]string,
) ([]byte, error) {
	return fn(ctx, endpoint, args)
}
