package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dogmatiq/mirror/snapshot"
	"gopkg.in/yaml.v3"
)

// loadSnapshot reads a snapshot from a YAML file.
func loadSnapshot(path string) (*snapshot.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s, err := parseSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// parseSnapshot parses a YAML description of a snapshot.
func parseSnapshot(data []byte) (*snapshot.Snapshot, error) {
	s := &snapshot.Snapshot{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("unable to parse snapshot: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}
