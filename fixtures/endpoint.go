package fixtures

import (
	"context"
	"sync/atomic"

	"github.com/dogmatiq/mirror/endpoint"
)

// EndpointClientStub is a test implementation of the endpoint.Client
// interface.
type EndpointClientStub struct {
	endpoint.Client

	RequestFunc func(context.Context, string, map[string]string) ([]byte, error)

	requests int64
}

// Request invokes the named endpoint.
func (c *EndpointClientStub) Request(
	ctx context.Context,
	ep string,
	args map[string]string,
) ([]byte, error) {
	atomic.AddInt64(&c.requests, 1)

	if c.RequestFunc != nil {
		return c.RequestFunc(ctx, ep, args)
	}

	if c.Client != nil {
		return c.Client.Request(ctx, ep, args)
	}

	return nil, nil
}

// Requests returns the number of calls made to Request().
func (c *EndpointClientStub) Requests() int {
	return int(atomic.LoadInt64(&c.requests))
}

// NewSchedulerStub returns a client stub that responds to requests for the
// full state of a workflow with NewPayload(id, stamp).
func NewSchedulerStub(id, stamp string) *EndpointClientStub {
	return &EndpointClientStub{
		RequestFunc: func(_ context.Context, ep string, _ map[string]string) ([]byte, error) {
			if ep == endpoint.EntireWorkflow {
				return NewPayload(id, stamp), nil
			}
			return nil, nil
		},
	}
}
