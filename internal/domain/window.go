package domain

import (
	"time"

	"github.com/m04kA/SMC-MeetingWindow/pkg/types"
)

// SearchWindow bounds the search: allowed hours within each day and the overall horizon.
// It is computed once per run from the clock and never modified.
type SearchWindow struct {
	DailyStart   types.TimeString
	DailyEnd     types.TimeString
	HorizonStart time.Time // the instant of invocation
	HorizonEnd   time.Time
}

// NewSearchWindow builds a window that starts at now and spans horizonDays calendar days
func NewSearchWindow(now time.Time, dailyStart, dailyEnd types.TimeString, horizonDays int) SearchWindow {
	return SearchWindow{
		DailyStart:   dailyStart,
		DailyEnd:     dailyEnd,
		HorizonStart: now,
		HorizonEnd:   now.AddDate(0, 0, horizonDays),
	}
}

// Now returns the instant the search starts from
func (w SearchWindow) Now() time.Time {
	return w.HorizonStart
}

// DayStart returns the opening boundary of t's calendar day
func (w SearchWindow) DayStart(t time.Time) time.Time {
	return w.DailyStart.On(t)
}

// DayEnd returns the closing boundary of t's calendar day
func (w SearchWindow) DayEnd(t time.Time) time.Time {
	return w.DailyEnd.On(t)
}

// DailyLength is the longest bounded gap a single day can offer
func (w SearchWindow) DailyLength() time.Duration {
	return time.Duration(w.DailyEnd.Minutes()-w.DailyStart.Minutes()) * time.Minute
}

// StartOfDate returns midnight of t's calendar day in t's location
func StartOfDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NextDate returns midnight of the calendar day after t
func NextDate(t time.Time) time.Time {
	return StartOfDate(t).AddDate(0, 0, 1)
}

// DaysBetween returns the number of calendar days from a's date to b's date.
// Dates are compared as civil dates, so DST transitions do not skew the result.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
