package models

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeWindow is a wall-clock [Start, End) interval within a single day,
// both bounds in "HH:MM" 24-hour format.
type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ParseClock converts an "HH:MM" string to minutes since midnight
func ParseClock(value string) (int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", value)
	}
	return hour*60 + minute, nil
}

// Validate checks the window is well-formed and ends after it starts
func (w TimeWindow) Validate() error {
	start, err := ParseClock(w.Start)
	if err != nil {
		return err
	}
	end, err := ParseClock(w.End)
	if err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("end time %s must be after start time %s", w.End, w.Start)
	}
	return nil
}

// Overlaps reports whether two windows share any time. Windows that
// merely touch at an endpoint (a.End == b.Start) do not overlap.
// Both windows must already be validated.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	aStart, _ := ParseClock(w.Start)
	aEnd, _ := ParseClock(w.End)
	bStart, _ := ParseClock(other.Start)
	bEnd, _ := ParseClock(other.End)
	return aStart < bEnd && bStart < aEnd
}

// Contains reports whether other lies entirely within w (inclusive bounds)
func (w TimeWindow) Contains(other TimeWindow) bool {
	aStart, _ := ParseClock(w.Start)
	aEnd, _ := ParseClock(w.End)
	bStart, _ := ParseClock(other.Start)
	bEnd, _ := ParseClock(other.End)
	return aStart <= bStart && bEnd <= aEnd
}

// String returns the window in "HH:MM-HH:MM" form
func (w TimeWindow) String() string {
	return w.Start + "-" + w.End
}
