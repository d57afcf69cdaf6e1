// Package fileregistry maintains a registry of active workflows from a YAML
// file.
package fileregistry

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Workflow describes a workflow listed in a registry file.
type Workflow struct {
	ID      string            `yaml:"id"`
	Address string            `yaml:"address"`
	Owner   string            `yaml:"owner,omitempty"`
	Labels  map[string]string `yaml:"labels,omitempty"`
}

// file is the top-level structure of a registry file.
type file struct {
	Workflows []Workflow `yaml:"workflows"`
}

// Parse parses the content of a registry file.
//
// An empty document describes an empty set of workflows.
func Parse(data []byte) ([]Workflow, error) {
	var f file

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to parse registry: %w", err)
	}

	seen := map[string]struct{}{}

	for i, w := range f.Workflows {
		if w.ID == "" {
			return nil, fmt.Errorf("workflow #%d has an empty ID", i+1)
		}

		if _, ok := seen[w.ID]; ok {
			return nil, fmt.Errorf("workflow %s is listed more than once", w.ID)
		}
		seen[w.ID] = struct{}{}

		if w.Address == "" {
			return nil, fmt.Errorf("workflow %s has an empty address", w.ID)
		}
	}

	return f.Workflows, nil
}

// Load reads and parses the registry file at the given path.
func Load(path string) ([]Workflow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	workflows, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return workflows, nil
}

// equal returns true if w and o describe the same connection.
func (w Workflow) equal(o Workflow) bool {
	if w.ID != o.ID || w.Address != o.Address || w.Owner != o.Owner {
		return false
	}

	if len(w.Labels) != len(o.Labels) {
		return false
	}

	for k, v := range w.Labels {
		if x, ok := o.Labels[k]; !ok || x != v {
			return false
		}
	}

	return true
}
