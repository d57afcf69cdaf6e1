// Package pb contains the protocol buffers messages used to persist records.
package pb

//go:generate protoc --proto_path=../../../.. --go_out=../../../.. --go_opt=paths=source_relative store/boltstore/internal/pb/record.proto
