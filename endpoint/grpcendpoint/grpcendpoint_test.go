package grpcendpoint_test

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/dogmatiq/mirror/endpoint"
	. "github.com/dogmatiq/mirror/endpoint/grpcendpoint"
	"github.com/dogmatiq/mirror/internal/x/grpcx"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

var _ endpoint.Client = (*Client)(nil)

var _ = Describe("type Client", func() {
	var (
		ctx     context.Context
		cancel  context.CancelFunc
		handler HandlerFunc
		client  *Client
		done    chan error
	)

	BeforeEach(func() {
		ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)

		handler = func(
			context.Context,
			string,
			map[string]string,
		) ([]byte, error) {
			return []byte("<payload>"), nil
		}

		lis, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).ShouldNot(HaveOccurred())

		server := grpc.NewServer()
		RegisterServer(
			server,
			HandlerFunc(func(
				ctx context.Context,
				ep string,
				args map[string]string,
			) ([]byte, error) {
				return handler(ctx, ep, args)
			}),
		)

		done = make(chan error, 1)
		go func() {
			done <- grpcx.Serve(ctx, lis, server)
		}()

		client, err = Dial(ctx, lis.Addr().String(), 0)
		Expect(err).ShouldNot(HaveOccurred())
	})

	AfterEach(func() {
		client.Close()
		cancel()
		Eventually(done).Should(Receive())
	})

	Describe("func Request()", func() {
		It("returns the payload produced by the handler", func() {
			data, err := client.Request(ctx, endpoint.EntireWorkflow, nil)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(data).To(Equal([]byte("<payload>")))
		})

		It("passes the endpoint name and arguments to the handler", func() {
			var (
				name string
				args map[string]string
			)

			handler = func(
				_ context.Context,
				ep string,
				a map[string]string,
			) ([]byte, error) {
				name, args = ep, a
				return nil, nil
			}

			_, err := client.Request(
				ctx,
				endpoint.DataElements,
				map[string]string{"<key>": "<value>"},
			)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(name).To(Equal(endpoint.DataElements))
			Expect(args).To(Equal(map[string]string{"<key>": "<value>"}))
		})

		It("returns an empty payload if the handler returns nil", func() {
			handler = func(
				context.Context,
				string,
				map[string]string,
			) ([]byte, error) {
				return nil, nil
			}

			data, err := client.Request(ctx, endpoint.EntireWorkflow, nil)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(data).To(BeEmpty())
		})

		It("returns an error if the endpoint is not implemented", func() {
			handler = func(
				context.Context,
				string,
				map[string]string,
			) ([]byte, error) {
				return nil, ErrUnknownEndpoint
			}

			_, err := client.Request(ctx, "<unknown>", nil)
			Expect(err).To(MatchError(ContainSubstring("code = Unimplemented")))
			Expect(err).To(MatchError(HavePrefix("<unknown> request failed: ")))
		})

		It("returns an error if the handler fails", func() {
			handler = func(
				context.Context,
				string,
				map[string]string,
			) ([]byte, error) {
				return nil, errors.New("<error>")
			}

			_, err := client.Request(ctx, endpoint.EntireWorkflow, nil)
			Expect(err).To(MatchError(ContainSubstring("code = Internal")))
			Expect(err).To(MatchError(ContainSubstring("<error>")))
		})

		It("returns an error if the request exceeds the timeout", func() {
			client.Timeout = 10 * time.Millisecond

			handler = func(
				ctx context.Context,
				_ string,
				_ map[string]string,
			) ([]byte, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			}

			_, err := client.Request(ctx, endpoint.EntireWorkflow, nil)
			Expect(err).To(MatchError(ContainSubstring("code = DeadlineExceeded")))
		})

		It("returns an error if the scheduler is unreachable", func() {
			lis, err := net.Listen("tcp", "127.0.0.1:0")
			Expect(err).ShouldNot(HaveOccurred())
			addr := lis.Addr().String()
			lis.Close()

			c, err := Dial(ctx, addr, 100*time.Millisecond)
			Expect(err).ShouldNot(HaveOccurred())
			defer c.Close()

			_, err = c.Request(ctx, endpoint.EntireWorkflow, nil)
			Expect(err).Should(HaveOccurred())
		})
	})

	Describe("server", func() {
		It("rejects requests without an endpoint name", func() {
			req, err := structpb.NewStruct(map[string]interface{}{
				"args": map[string]interface{}{},
			})
			Expect(err).ShouldNot(HaveOccurred())

			err = client.Conn.Invoke(
				ctx,
				"/flowmirror.scheduler.v1.Scheduler/Request",
				req,
				&wrapperspb.BytesValue{},
			)
			Expect(err).To(MatchError(ContainSubstring("code = InvalidArgument")))
		})

		It("rejects requests with non-string arguments", func() {
			req, err := structpb.NewStruct(map[string]interface{}{
				"endpoint": endpoint.EntireWorkflow,
				"args": map[string]interface{}{
					"<key>": 123,
				},
			})
			Expect(err).ShouldNot(HaveOccurred())

			err = client.Conn.Invoke(
				ctx,
				"/flowmirror.scheduler.v1.Scheduler/Request",
				req,
				&wrapperspb.BytesValue{},
			)
			Expect(err).To(MatchError(ContainSubstring(`argument "<key>" must be a string`)))
		})
	})
})
