package main

import (
	"context"
	"fmt"
	"net"

	"github.com/dogmatiq/dodeca/logging"
	"github.com/dogmatiq/mirror/endpoint"
	"github.com/dogmatiq/mirror/endpoint/grpcendpoint"
	"github.com/dogmatiq/mirror/internal/x/grpcx"
	"github.com/dogmatiq/mirror/snapshot"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
)

func newServeCmd() *cobra.Command {
	var listen, path string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a snapshot described by a YAML file as if it were a running workflow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lis, err := net.Listen("tcp", listen)
			if err != nil {
				return err
			}

			logging.Log(
				logging.DefaultLogger,
				"serving %s on %s",
				path,
				lis.Addr(),
			)

			return serve(cmd.Context(), lis, path)
		},
	}

	f := cmd.Flags()
	f.StringVar(&listen, "listen", "127.0.0.1:43210", "address to listen on")
	f.StringVar(&path, "snapshot", "", "path to the YAML snapshot file")

	if err := cmd.MarkFlagRequired("snapshot"); err != nil {
		panic(err)
	}

	return cmd
}

// serve runs a fixture scheduler on lis until ctx is canceled.
func serve(ctx context.Context, lis net.Listener, path string) error {
	if _, err := loadSnapshot(path); err != nil {
		return err
	}

	s := grpc.NewServer()
	grpcendpoint.RegisterServer(s, fixtureHandler(path))

	return grpcx.Serve(ctx, lis, s)
}

// fixtureHandler returns a handler that answers full state requests with the
// snapshot in the file at the given path.
//
// The file is read on each request, so that it can be edited while the server
// is running.
func fixtureHandler(path string) grpcendpoint.Handler {
	return grpcendpoint.HandlerFunc(
		func(_ context.Context, ep string, _ map[string]string) ([]byte, error) {
			if ep != endpoint.EntireWorkflow {
				return nil, fmt.Errorf("%s: %w", ep, grpcendpoint.ErrUnknownEndpoint)
			}

			s, err := loadSnapshot(path)
			if err != nil {
				return nil, err
			}

			return snapshot.Marshal(s)
		},
	)
}
