package boltstore

import (
	"fmt"
	"time"

	"github.com/dogmatiq/mirror/snapshot"
	"github.com/dogmatiq/mirror/store"
	"github.com/dogmatiq/mirror/store/boltstore/internal/pb"
	"google.golang.org/protobuf/proto"
)

// marshalRecord returns the binary representation of a stored record.
func marshalRecord(rev uint64, t time.Time, s *snapshot.Snapshot) ([]byte, error) {
	data, err := snapshot.Marshal(s)
	if err != nil {
		return nil, err
	}

	return proto.Marshal(
		&pb.Record{
			Revision:  rev,
			UpdatedAt: t.UnixNano(),
			Snapshot:  data,
		},
	)
}

// unmarshalRecord decodes a record produced by marshalRecord().
func unmarshalRecord(id string, data []byte) (store.Record, error) {
	m := &pb.Record{}
	if err := proto.Unmarshal(data, m); err != nil {
		return store.Record{}, fmt.Errorf("stored record for %s is corrupt: %w", id, err)
	}

	s, err := snapshot.Unmarshal(m.GetSnapshot())
	if err != nil {
		return store.Record{}, fmt.Errorf("stored record for %s is corrupt: %w", id, err)
	}

	return store.Record{
		WorkflowID: id,
		Snapshot:   s,
		Revision:   m.GetRevision(),
		UpdatedAt:  time.Unix(0, m.GetUpdatedAt()),
	}, nil
}

// unmarshalRevision returns the revision of an encoded record, or zero if it
// can not be decoded.
func unmarshalRevision(data []byte) uint64 {
	m := &pb.Record{}
	if err := proto.Unmarshal(data, m); err != nil {
		return 0
	}

	return m.GetRevision()
}
