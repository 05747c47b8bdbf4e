package domain

import "time"

// Interval is a half-open busy span [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration returns the length of the interval
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// IsEmpty returns true for zero-length (or inverted) intervals, which carry no busy time
func (i Interval) IsEmpty() bool {
	return !i.End.After(i.Start)
}

// Overlaps returns true if both intervals share at least one instant.
// [a,b) and [b,c) only touch and do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// BusyRecord is one line of the busy-time log
type BusyRecord struct {
	ParticipantID string // not used by the search itself
	Interval      Interval
}

// Intervals extracts busy intervals from records
func Intervals(records []BusyRecord) []Interval {
	intervals := make([]Interval, len(records))
	for i, r := range records {
		intervals[i] = r.Interval
	}
	return intervals
}

// CountParticipants returns the number of distinct participant IDs
func CountParticipants(records []BusyRecord) int {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		seen[r.ParticipantID] = struct{}{}
	}
	return len(seen)
}
