package timew

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// ProjectsKey is the header key holding the JSON array of project labels.
const ProjectsKey = "timesheet.projects"

// Registry is the ordered list of labels an interval may be filed under.
type Registry struct {
	labels []string
}

// LoadRegistry parses value as a JSON array of project labels. Duplicates are
// kept as given. An empty array loads fine but builds nothing.
func LoadRegistry(value string) (*Registry, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(value), &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedProjectsConfig, err)
	}
	if elems == nil {
		// literal null
		return nil, fmt.Errorf("%w: not an array", ErrMalformedProjectsConfig)
	}

	r := &Registry{labels: make([]string, 0, len(elems))}
	for i, raw := range elems {
		label, err := labelOf(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrMalformedProjectsConfig, i, err)
		}
		if label == "" {
			return nil, fmt.Errorf("%w: element %d is an empty label", ErrMalformedProjectsConfig, i)
		}
		r.labels = append(r.labels, label)
	}
	return r, nil
}

// labelOf returns the string value of a JSON string, or the compact JSON text
// of any other element.
func labelOf(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", err
	}
	return strings.Trim(buf.String(), `"`), nil
}

// Contains reports whether label is a registered project.
func (r *Registry) Contains(label string) bool {
	if r == nil {
		return false
	}
	for _, l := range r.labels {
		if l == label {
			return true
		}
	}
	return false
}

// Len returns the number of labels, duplicates included.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.labels)
}

// Labels returns a copy of the labels in configuration order.
func (r *Registry) Labels() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.labels)
}
