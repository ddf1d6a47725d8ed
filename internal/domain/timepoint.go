package domain

import (
	"fmt"
	"strings"
	"time"
)

// LogTimeLayout is the timestamp layout of a log line, e.g. 2017/01/17-08:30.
const LogTimeLayout = "2006/01/02-15:04"

type EventKind string

const (
	EventStart  EventKind = "Start"
	EventStop   EventKind = "Stop"
	EventLock   EventKind = "Lock"
	EventUnlock EventKind = "Unlock"
)

func ParseEventKind(raw string) (EventKind, error) {
	switch kind := EventKind(raw); kind {
	case EventStart, EventStop, EventLock, EventUnlock:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: unknown event kind %q", ErrMalformedLogLine, raw)
	}
}

func (k EventKind) Valid() bool {
	switch k {
	case EventStart, EventStop, EventLock, EventUnlock:
		return true
	default:
		return false
	}
}

// IsResuming reports whether the interval that begins at this event is work.
func (k EventKind) IsResuming() bool {
	switch k {
	case EventStart, EventUnlock:
		return true
	default:
		return false
	}
}

// IsSuspending reports whether the interval that begins at this event is rest.
func (k EventKind) IsSuspending() bool {
	switch k {
	case EventStop, EventLock:
		return true
	default:
		return false
	}
}

type Timepoint struct {
	Instant time.Time
	Kind    EventKind
}

func (tp Timepoint) IsResuming() bool {
	return tp.Kind.IsResuming()
}

func (tp Timepoint) IsSuspending() bool {
	return tp.Kind.IsSuspending()
}

// String returns the log line representation without the trailing newline.
func (tp Timepoint) String() string {
	return tp.Instant.Format(LogTimeLayout) + " " + string(tp.Kind)
}

// ParseTimepoint parses a single "<YYYY/MM/DD-HH:MM> <Kind>" log line.
// The timestamp is interpreted in loc; a nil loc means time.Local.
func ParseTimepoint(line string, loc *time.Location) (Timepoint, error) {
	if loc == nil {
		loc = time.Local
	}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Timepoint{}, fmt.Errorf("%w: expected \"<timestamp> <kind>\", got %q", ErrMalformedLogLine, strings.TrimSpace(line))
	}

	// time.Parse accepts a single-digit hour for "15"; the log format is fixed width.
	if len(fields[0]) != len(LogTimeLayout) {
		return Timepoint{}, fmt.Errorf("%w: bad timestamp %q", ErrMalformedLogLine, fields[0])
	}

	instant, err := time.ParseInLocation(LogTimeLayout, fields[0], loc)
	if err != nil {
		return Timepoint{}, fmt.Errorf("%w: bad timestamp %q", ErrMalformedLogLine, fields[0])
	}

	kind, err := ParseEventKind(fields[1])
	if err != nil {
		return Timepoint{}, err
	}

	return Timepoint{Instant: instant, Kind: kind}, nil
}
