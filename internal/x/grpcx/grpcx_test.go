package grpcx_test

import (
	"context"
	"net"
	"time"

	. "github.com/dogmatiq/mirror/internal/x/grpcx"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

var _ = Describe("func Errorf()", func() {
	It("returns a status error with the given code and message", func() {
		err := Errorf(codes.NotFound, nil, "unknown endpoint: %s", "<name>")

		s, ok := status.FromError(err)
		Expect(ok).To(BeTrue())
		Expect(s.Code()).To(Equal(codes.NotFound))
		Expect(s.Message()).To(Equal("unknown endpoint: <name>"))
		Expect(s.Details()).To(BeEmpty())
	})

	It("attaches the detail messages", func() {
		err := Errorf(
			codes.Unimplemented,
			[]proto.Message{
				wrapperspb.String("<name>"),
			},
			"unknown endpoint",
		)

		s, ok := status.FromError(err)
		Expect(ok).To(BeTrue())
		Expect(s.Details()).To(HaveLen(1))

		d, ok := s.Details()[0].(*wrapperspb.StringValue)
		Expect(ok).To(BeTrue())
		Expect(d.GetValue()).To(Equal("<name>"))
	})
})

var _ = Describe("func Serve()", func() {
	It("returns the context error when ctx is canceled", func() {
		lis, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).ShouldNot(HaveOccurred())

		ctx, cancel := context.WithCancel(context.Background())

		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()

		err = Serve(ctx, lis, grpc.NewServer())
		Expect(err).To(Equal(context.Canceled))
	})
})
