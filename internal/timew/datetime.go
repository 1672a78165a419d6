package timew

import (
	"fmt"
	"time"
)

// TimestampLayout is the compact UTC form timewarrior writes, e.g. 20240108T090000Z.
const TimestampLayout = "20060102T150405Z"

// Clock supplies the current instant for intervals that are still open.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock returns the wall clock.
func SystemClock() Clock {
	return ClockFunc(time.Now)
}

// Decoder turns timestamp strings into instants in a fixed location.
type Decoder struct {
	Clock    Clock
	Location *time.Location
}

// NewDecoder returns a decoder for loc. A nil clock means the wall clock and
// a nil location means time.Local.
func NewDecoder(clock Clock, loc *time.Location) *Decoder {
	if clock == nil {
		clock = SystemClock()
	}
	if loc == nil {
		loc = time.Local
	}
	return &Decoder{Clock: clock, Location: loc}
}

// Decode parses s strictly as TimestampLayout in UTC and converts it to the
// decoder's location. The empty string yields the clock's current instant.
func (d *Decoder) Decode(s string) (time.Time, error) {
	if s == "" {
		return d.Clock.Now().In(d.Location), nil
	}
	if !wellFormed(s) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
	}
	t, err := time.ParseInLocation(TimestampLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrMalformedTimestamp, s, err)
	}
	return t.In(d.Location), nil
}

// wellFormed checks the shape YYYYMMDDTHHMMSSZ. time.Parse alone accepts
// single-digit hours, so the digit positions are checked first.
func wellFormed(s string) bool {
	if len(s) != len(TimestampLayout) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch i {
		case 8:
			if c != 'T' {
				return false
			}
		case 15:
			if c != 'Z' {
				return false
			}
		default:
			if c < '0' || c > '9' {
				return false
			}
		}
	}
	return true
}

// WeekdayIndex maps t's weekday to 0..6 with Monday as 0.
func WeekdayIndex(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 { // Sunday
		wd = 7
	}
	return wd - 1
}
