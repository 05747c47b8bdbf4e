package domain

import "time"

// ResultKind tells how a free window was determined
type ResultKind string

const (
	// ResultFound is a concrete best gap between busy intervals
	ResultFound ResultKind = "found"
	// ResultFullDay means the whole daily window of Date is free
	ResultFullDay ResultKind = "full_day"
	// ResultNone means busy time covers every daily window in the horizon
	ResultNone ResultKind = "none"
)

// FreeWindowResult is the outcome of the gap scan
type FreeWindowResult struct {
	Kind  ResultKind
	Start time.Time // ResultFound only
	End   time.Time // ResultFound only
	Date  time.Time // ResultFullDay only, midnight of the free day
}

// Found builds a concrete result
func Found(start, end time.Time) FreeWindowResult {
	return FreeWindowResult{Kind: ResultFound, Start: start, End: end}
}

// FullDay builds a full-free-day result for date's calendar day
func FullDay(date time.Time) FreeWindowResult {
	return FreeWindowResult{Kind: ResultFullDay, Date: StartOfDate(date)}
}

// NoWindow builds the empty result
func NoWindow() FreeWindowResult {
	return FreeWindowResult{Kind: ResultNone}
}

// IsFound returns true if a free window exists
func (r FreeWindowResult) IsFound() bool {
	return r.Kind == ResultFound || r.Kind == ResultFullDay
}

// Bounds returns the concrete free interval. A full day expands to the daily window of its date.
func (r FreeWindowResult) Bounds(w SearchWindow) (time.Time, time.Time) {
	switch r.Kind {
	case ResultFound:
		return r.Start, r.End
	case ResultFullDay:
		return w.DayStart(r.Date), w.DayEnd(r.Date)
	default:
		return time.Time{}, time.Time{}
	}
}

// Duration returns the free time the result offers
func (r FreeWindowResult) Duration(w SearchWindow) time.Duration {
	start, end := r.Bounds(w)
	return end.Sub(start)
}
