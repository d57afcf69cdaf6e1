package grpcendpoint

import (
	"context"
	"errors"

	"github.com/dogmatiq/mirror/internal/x/grpcx"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ErrUnknownEndpoint is returned by a Handler that does not implement the
// requested endpoint.
var ErrUnknownEndpoint = errors.New("unknown endpoint")

// Handler handles requests on the scheduler side of the protocol.
type Handler interface {
	// HandleRequest returns the binary payload produced by the named
	// endpoint.
	//
	// It returns an error that wraps ErrUnknownEndpoint if the endpoint is not
	// implemented.
	HandleRequest(ctx context.Context, endpoint string, args map[string]string) ([]byte, error)
}

// HandlerFunc is an adaptor to allow the use of an ordinary function as a
// Handler.
type HandlerFunc func(ctx context.Context, endpoint string, args map[string]string) ([]byte, error)

// HandleRequest calls fn(ctx, endpoint, args).
func (fn HandlerFunc) HandleRequest(
	ctx context.Context,
	endpoint string,
	args map[string]string,
) ([]byte, error) {
	return fn(ctx, endpoint, args)
}

// RegisterServer registers h as the scheduler service on s.
func RegisterServer(s *grpc.Server, h Handler) {
	s.RegisterService(&serviceDesc, h)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*Handler)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Request",
			Handler:    handleRequest,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "flowmirror/scheduler/v1/scheduler.proto",
}

func handleRequest(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	req := &structpb.Struct{}
	if err := dec(req); err != nil {
		return nil, err
	}

	h := srv.(Handler)

	if interceptor == nil {
		return serve(ctx, h, req)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: requestMethod,
	}

	return interceptor(
		ctx,
		req,
		info,
		func(ctx context.Context, req interface{}) (interface{}, error) {
			return serve(ctx, h, req.(*structpb.Struct))
		},
	)
}

// serve dispatches req to h and maps the result to a gRPC response.
func serve(
	ctx context.Context,
	h Handler,
	req *structpb.Struct,
) (*wrapperspb.BytesValue, error) {
	endpoint, args, err := unmarshalRequest(req)
	if err != nil {
		return nil, grpcx.Errorf(codes.InvalidArgument, nil, "%s", err)
	}

	data, err := h.HandleRequest(ctx, endpoint, args)
	if err != nil {
		if errors.Is(err, ErrUnknownEndpoint) {
			return nil, grpcx.Errorf(codes.Unimplemented, nil, "%s: %s", endpoint, err)
		}

		return nil, grpcx.Errorf(codes.Internal, nil, "%s: %s", endpoint, err)
	}

	return wrapperspb.Bytes(data), nil
}
