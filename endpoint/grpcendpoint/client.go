package grpcendpoint

import (
	"context"
	"fmt"
	"time"

	"github.com/dogmatiq/linger"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	serviceName   = "flowmirror.scheduler.v1.Scheduler"
	requestMethod = "/" + serviceName + "/Request"
)

// DefaultTimeout is the default timeout for a single request.
var DefaultTimeout = 10 * time.Second

// Client is an implementation of endpoint.Client that makes requests to a
// scheduler via gRPC.
type Client struct {
	// Conn is the connection to the scheduler.
	Conn grpc.ClientConnInterface

	// Timeout is the maximum duration of a single request. If it is zero,
	// DefaultTimeout is used.
	Timeout time.Duration
}

// Request invokes the named endpoint and returns the binary payload of the
// response.
func (c *Client) Request(
	ctx context.Context,
	endpoint string,
	args map[string]string,
) ([]byte, error) {
	ctx, cancel := linger.ContextWithTimeout(ctx, c.Timeout, DefaultTimeout)
	defer cancel()

	req, err := marshalRequest(endpoint, args)
	if err != nil {
		return nil, err
	}

	res := &wrapperspb.BytesValue{}

	if err := c.Conn.Invoke(ctx, requestMethod, req, res); err != nil {
		return nil, fmt.Errorf("%s request failed: %w", endpoint, err)
	}

	return res.GetValue(), nil
}

// Close closes the underlying connection, if it is a *grpc.ClientConn.
func (c *Client) Close() error {
	if conn, ok := c.Conn.(*grpc.ClientConn); ok {
		return conn.Close()
	}

	return nil
}

// marshalRequest builds the request message for a call to the given
// endpoint.
func marshalRequest(endpoint string, args map[string]string) (*structpb.Struct, error) {
	fields := make(map[string]interface{}, len(args))
	for k, v := range args {
		fields[k] = v
	}

	req, err := structpb.NewStruct(map[string]interface{}{
		"endpoint": endpoint,
		"args":     fields,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to build %s request: %w", endpoint, err)
	}

	return req, nil
}

// unmarshalRequest is the inverse of marshalRequest().
func unmarshalRequest(req *structpb.Struct) (string, map[string]string, error) {
	fields := req.GetFields()

	endpoint, ok := fields["endpoint"].GetKind().(*structpb.Value_StringValue)
	if !ok || endpoint.StringValue == "" {
		return "", nil, fmt.Errorf("endpoint name must be a non-empty string")
	}

	args := map[string]string{}

	for k, v := range fields["args"].GetStructValue().GetFields() {
		s, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return "", nil, fmt.Errorf("argument %q must be a string", k)
		}

		args[k] = s.StringValue
	}

	return endpoint.StringValue, args, nil
}
