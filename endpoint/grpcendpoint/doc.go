// Package grpcendpoint is a gRPC implementation of the scheduler request
// protocol.
//
// Each request is a single unary call to the
// flowmirror.scheduler.v1.Scheduler/Request method. The request message is a
// google.protobuf.Struct containing the endpoint name and its string arguments,
// and the response is a google.protobuf.BytesValue containing the endpoint's
// binary payload.
package grpcendpoint
