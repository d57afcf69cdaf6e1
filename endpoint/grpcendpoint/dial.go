package grpcendpoint

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Dial returns a client that makes requests to the scheduler at the given
// address.
//
// The connection is established lazily, so Dial does not fail if the scheduler
// is unreachable. Such failures are instead reported by each request.
func Dial(
	ctx context.Context,
	address string,
	timeout time.Duration,
	options ...grpc.DialOption,
) (*Client, error) {
	options = append(
		[]grpc.DialOption{
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		},
		options...,
	)

	conn, err := grpc.DialContext(ctx, address, options...)
	if err != nil {
		return nil, fmt.Errorf("unable to dial %s: %w", address, err)
	}

	return &Client{
		Conn:    conn,
		Timeout: timeout,
	}, nil
}
