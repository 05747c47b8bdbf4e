package find_free_window

import (
	"time"

	"github.com/m04kA/SMC-MeetingWindow/internal/domain"
	"github.com/m04kA/SMC-MeetingWindow/pkg/types"
)

// at возвращает момент day дней после понедельника 2017-06-05 (UTC)
func at(day, hour, minute int) time.Time {
	return time.Date(2017, 6, 5+day, hour, minute, 0, 0, time.UTC)
}

func span(start, end time.Time) domain.Interval {
	return domain.Interval{Start: start, End: end}
}

func testWindow(now time.Time) domain.SearchWindow {
	return domain.NewSearchWindow(now, types.MustTimeString("08:00"), types.MustTimeString("22:00"), 7)
}
