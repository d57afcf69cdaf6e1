// Package pb contains the protocol buffers messages that make up the wire
// format used by schedulers.
package pb

//go:generate protoc --proto_path=../../.. --go_out=../../.. --go_opt=paths=source_relative snapshot/internal/pb/scheduler.proto
