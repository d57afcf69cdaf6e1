package snapshot

import (
	"fmt"

	"github.com/dogmatiq/mirror/snapshot/internal/pb"
	"google.golang.org/protobuf/proto"
)

// DecodeError is returned when a binary payload can not be decoded.
type DecodeError struct {
	// Type is the name of the message type that was being decoded.
	Type string

	// Cause is the underlying parse or validation error.
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to decode %s: %s", e.Type, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Decode unmarshals a full-state payload and validates the result.
//
// It is the default decoder used to convert a scheduler's response into a
// snapshot.
func Decode(data []byte) (*Snapshot, error) {
	s, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}

	if err := s.Validate(); err != nil {
		return nil, &DecodeError{"snapshot", err}
	}

	return s, nil
}

// Unmarshal decodes a snapshot from its binary representation.
//
// Unrecognized fields are ignored. Unmarshal does not validate the result.
func Unmarshal(data []byte) (*Snapshot, error) {
	m := &pb.EntireWorkflow{}

	if err := proto.Unmarshal(data, m); err != nil {
		return nil, &DecodeError{"snapshot", err}
	}

	return &Snapshot{
		Workflow: workflowFromPB(m.GetWorkflow()),
		Elements: elementsFromPB(m),
	}, nil
}

// Marshal encodes s into its binary representation.
//
// It returns an error if any of the snapshot's strings are not valid UTF-8.
func Marshal(s *Snapshot) ([]byte, error) {
	m := elementsToPB(s.Elements)
	m.Workflow = workflowToPB(s.Workflow)

	return marshalOptions.Marshal(m)
}

// marshalOptions produces the same output for equivalent values.
var marshalOptions = proto.MarshalOptions{Deterministic: true}
