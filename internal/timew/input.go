package timew

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

type parseState int

const (
	stateHeader parseState = iota
	stateBody
)

// Input is everything read from a timewarrior extension stream.
type Input struct {
	// Config holds every header pair, recognized or not.
	Config map[string]string
	// Registry is loaded from ProjectsKey at the "[" line. Nil if the body
	// never started.
	Registry *Registry
	// Intervals in input order.
	Intervals []Interval
	// Bytes is the number of bytes consumed.
	Bytes int64
}

// Read consumes r line by line: "key: value" header lines up to a line
// holding only "[", then one JSON inclusion per line. Processing stops at
// the first error and no partial input is returned.
func Read(r io.Reader, decoder *Decoder) (*Input, error) {
	in := &Input{Config: make(map[string]string)}
	state := stateHeader
	var builder *Builder

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read input: %w", err)
		}
		if raw == "" && err != nil {
			break
		}
		lineNo++
		in.Bytes += int64(len(raw))

		line := strings.TrimSpace(raw)
		if line == "" || line == "]" {
			continue
		}

		switch state {
		case stateHeader:
			if line == "[" {
				value, ok := in.Config[ProjectsKey]
				if !ok {
					return nil, fmt.Errorf("line %d: %w: %q missing from header", lineNo, ErrNoProjectsConfigured, ProjectsKey)
				}
				reg, err := LoadRegistry(value)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				in.Registry = reg
				builder = NewBuilder(reg, decoder)
				state = stateBody
				continue
			}
			key, value, err := SplitConfigLine(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			in.Config[key] = value

		case stateBody:
			iv, err := builder.Build(strings.Trim(line, ","))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			in.Intervals = append(in.Intervals, iv)
		}
	}
	return in, nil
}

// SplitConfigLine splits a header line at its first colon. The key loses
// surrounding whitespace and colons, the value surrounding whitespace.
func SplitConfigLine(line string) (key, value string, err error) {
	k, v, ok := strings.Cut(line, ":")
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedConfigLine, line)
	}
	return strings.Trim(strings.TrimSpace(k), ":"), strings.TrimSpace(v), nil
}
