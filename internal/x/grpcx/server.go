package grpcx

import (
	"context"
	"net"

	"google.golang.org/grpc"
)

// Serve runs s until ctx is canceled or an error occurs.
//
// The caller must never call s.Stop() or s.GracefulStop().
func Serve(
	ctx context.Context,
	lis net.Listener,
	s *grpc.Server,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	err := s.Serve(lis)

	// Serve() only returns nil after Stop() is called, which only happens when
	// ctx is canceled.
	if err == nil {
		<-ctx.Done()
		err = ctx.Err()
	}

	return err
}
