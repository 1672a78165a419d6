package timew

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Inclusion is one interval record as exported by timewarrior.
type Inclusion struct {
	ID         int32
	Start      string
	End        string // empty while the interval is still open
	Tags       []string
	Annotation string
}

// ParseInclusion decodes a single JSON object. id and start are required.
// Keys match exactly; "ID" or "Tags" are unknown fields and ignored. A null
// value is rejected for every known field.
func ParseInclusion(record string) (Inclusion, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(record), &fields); err != nil {
		return Inclusion{}, fmt.Errorf("%w: %v", ErrMalformedIntervalRecord, err)
	}
	if fields == nil {
		return Inclusion{}, fmt.Errorf("%w: record is null", ErrMalformedIntervalRecord)
	}

	var (
		inc  Inclusion
		tags []*string
	)
	if err := decodeField(fields, "id", &inc.ID, true); err != nil {
		return Inclusion{}, err
	}
	if err := decodeField(fields, "start", &inc.Start, true); err != nil {
		return Inclusion{}, err
	}
	if err := decodeField(fields, "end", &inc.End, false); err != nil {
		return Inclusion{}, err
	}
	if err := decodeField(fields, "tags", &tags, false); err != nil {
		return Inclusion{}, err
	}
	if err := decodeField(fields, "annotation", &inc.Annotation, false); err != nil {
		return Inclusion{}, err
	}

	inc.Tags = make([]string, 0, len(tags))
	for i, tag := range tags {
		if tag == nil {
			return Inclusion{}, fmt.Errorf("%w: tags[%d] is null", ErrMalformedIntervalRecord, i)
		}
		inc.Tags = append(inc.Tags, *tag)
	}
	return inc, nil
}

func decodeField(fields map[string]json.RawMessage, key string, dst any, required bool) error {
	raw, ok := fields[key]
	if !ok {
		if required {
			return fmt.Errorf("%w: missing field %q", ErrMalformedIntervalRecord, key)
		}
		return nil
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return fmt.Errorf("%w: field %q is null", ErrMalformedIntervalRecord, key)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: field %q: %v", ErrMalformedIntervalRecord, key, err)
	}
	return nil
}

// wholeSeconds is end minus start truncated toward zero. Unix seconds
// avoid the roughly 292 year ceiling of time.Duration.
func wholeSeconds(start, end time.Time) int64 {
	secs := end.Unix() - start.Unix()
	nanos := end.Nanosecond() - start.Nanosecond()
	switch {
	case secs < 0 && nanos > 0:
		secs++
	case secs > 0 && nanos < 0:
		secs--
	}
	return secs
}

// Interval is a validated inclusion reduced to what the report needs.
type Interval struct {
	project string
	seconds int64
	weekday int
}

// NewInterval builds an interval directly. Used by callers that already
// know the project and duration.
func NewInterval(project string, seconds int64, weekday time.Weekday) Interval {
	wd := int(weekday)
	if wd == 0 {
		wd = 7
	}
	return Interval{project: project, seconds: seconds, weekday: wd - 1}
}

// Project is the single registered tag of the interval.
func (i Interval) Project() string { return i.project }

// Seconds is end minus start in whole seconds. It may be negative.
func (i Interval) Seconds() int64 { return i.seconds }

// Weekday is the local weekday of the start, 0 = Monday .. 6 = Sunday.
func (i Interval) Weekday() int { return i.weekday }

// Builder validates inclusions against a registry.
type Builder struct {
	registry *Registry
	decoder  *Decoder
}

func NewBuilder(registry *Registry, decoder *Decoder) *Builder {
	return &Builder{registry: registry, decoder: decoder}
}

// Build parses record and resolves its project, duration and weekday.
func (b *Builder) Build(record string) (Interval, error) {
	if b.registry.Len() == 0 {
		return Interval{}, ErrNoProjectsConfigured
	}

	inc, err := ParseInclusion(record)
	if err != nil {
		return Interval{}, err
	}

	project, err := b.resolve(inc.Tags)
	if err != nil {
		return Interval{}, fmt.Errorf("interval %d: %w", inc.ID, err)
	}

	start, err := b.decoder.Decode(inc.Start)
	if err != nil {
		return Interval{}, fmt.Errorf("interval %d start: %w", inc.ID, err)
	}
	end, err := b.decoder.Decode(inc.End)
	if err != nil {
		return Interval{}, fmt.Errorf("interval %d end: %w", inc.ID, err)
	}

	return Interval{
		project: project,
		seconds: wholeSeconds(start, end),
		weekday: WeekdayIndex(start),
	}, nil
}

// resolve returns the one tag that is a registered project.
func (b *Builder) resolve(tags []string) (string, error) {
	var (
		project string
		found   bool
	)
	for _, tag := range tags {
		if !b.registry.Contains(tag) {
			continue
		}
		if found {
			return "", fmt.Errorf("%w: %q and %q", ErrAmbiguousProject, project, tag)
		}
		project, found = tag, true
	}
	if !found {
		return "", fmt.Errorf("%w: tags %q", ErrNoProjectMatched, tags)
	}
	return project, nil
}
