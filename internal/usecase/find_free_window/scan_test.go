package find_free_window

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-MeetingWindow/internal/domain"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name     string
		now      [3]int // day, hour, minute
		schedule []domain.Interval
		expected domain.FreeWindowResult
	}{
		{
			name:     "empty schedule before daily start - today",
			now:      [3]int{0, 7, 59},
			schedule: []domain.Interval{},
			expected: domain.FullDay(at(0, 0, 0)),
		},
		{
			name:     "empty schedule at daily start - tomorrow",
			now:      [3]int{0, 8, 0},
			schedule: []domain.Interval{},
			expected: domain.FullDay(at(1, 0, 0)),
		},
		{
			name: "evening of first day beats morning of next",
			now:  [3]int{0, 7, 0},
			schedule: []domain.Interval{
				span(at(0, 6, 0), at(0, 20, 0)),
				span(at(1, 9, 0), at(1, 23, 0)),
			},
			expected: domain.Found(at(0, 20, 0), at(0, 22, 0)),
		},
		{
			name: "morning of next day beats shorter evening",
			now:  [3]int{0, 7, 0},
			schedule: []domain.Interval{
				span(at(0, 6, 0), at(0, 21, 0)),
				span(at(1, 11, 0), at(1, 12, 0)),
			},
			expected: domain.Found(at(1, 8, 0), at(1, 11, 0)),
		},
		{
			name: "cross-night gap is never counted whole",
			now:  [3]int{0, 7, 0},
			schedule: []domain.Interval{
				span(at(0, 6, 0), at(0, 20, 0)),
				span(at(1, 10, 0), at(1, 11, 0)),
			},
			expected: domain.Found(at(0, 20, 0), at(0, 22, 0)),
		},
		{
			name: "full free day dominates shorter gaps",
			now:  [3]int{0, 10, 0},
			schedule: []domain.Interval{
				span(at(0, 10, 30), at(0, 21, 0)),
				span(at(2, 9, 0), at(2, 10, 0)),
			},
			expected: domain.FullDay(at(1, 0, 0)),
		},
		{
			name: "full free day is the day after now even before daily start",
			now:  [3]int{0, 7, 0},
			schedule: []domain.Interval{
				span(at(2, 9, 0), at(2, 10, 0)),
			},
			expected: domain.FullDay(at(1, 0, 0)),
		},
		{
			name:     "single interval with nothing after it",
			now:      [3]int{0, 7, 0},
			schedule: []domain.Interval{span(at(0, 10, 0), at(0, 11, 0))},
			expected: domain.Found(at(0, 8, 0), at(0, 10, 0)),
		},
		{
			name:     "free time after the last interval is not considered",
			now:      [3]int{0, 10, 0},
			schedule: []domain.Interval{span(at(0, 11, 0), at(0, 12, 0))},
			expected: domain.Found(at(0, 10, 0), at(0, 11, 0)),
		},
		{
			name: "busy time spanning midnight blocks both windows",
			now:  [3]int{0, 7, 0},
			schedule: []domain.Interval{
				span(at(0, 6, 0), at(0, 12, 0)),
				span(at(0, 21, 0), at(1, 9, 0)),
				span(at(1, 10, 0), at(1, 11, 0)),
			},
			expected: domain.Found(at(0, 12, 0), at(0, 21, 0)),
		},
		{
			name: "gap clipped to daily window",
			now:  [3]int{0, 7, 0},
			schedule: []domain.Interval{
				span(at(0, 6, 0), at(0, 7, 30)),
				span(at(0, 23, 0), at(1, 23, 0)),
			},
			expected: domain.Found(at(0, 8, 0), at(0, 22, 0)),
		},
		{
			name: "ties prefer the earliest gap",
			now:  [3]int{0, 7, 0},
			schedule: []domain.Interval{
				span(at(0, 6, 0), at(0, 10, 0)),
				span(at(0, 12, 0), at(0, 20, 0)),
				span(at(0, 23, 0), at(1, 23, 0)),
			},
			expected: domain.Found(at(0, 10, 0), at(0, 12, 0)),
		},
		{
			name:     "gap starts at now",
			now:      [3]int{0, 9, 15},
			schedule: []domain.Interval{span(at(0, 10, 0), at(0, 11, 0))},
			expected: domain.Found(at(0, 9, 15), at(0, 10, 0)),
		},
		{
			name:     "invoked after daily end - next morning",
			now:      [3]int{0, 23, 0},
			schedule: []domain.Interval{span(at(1, 9, 0), at(1, 10, 0))},
			expected: domain.Found(at(1, 8, 0), at(1, 9, 0)),
		},
		{
			name:     "busy through the whole horizon",
			now:      [3]int{0, 7, 0},
			schedule: []domain.Interval{span(at(0, 0, 0), at(9, 0, 0))},
			expected: domain.NoWindow(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := testWindow(at(tt.now[0], tt.now[1], tt.now[2]))
			assert.Equal(t, tt.expected, scan(tt.schedule, window))
		})
	}
}

func TestScan_FullDayBounds(t *testing.T) {
	window := testWindow(at(0, 10, 0))

	result := scan([]domain.Interval{
		span(at(0, 11, 0), at(0, 12, 0)),
		span(at(2, 9, 0), at(2, 10, 0)),
	}, window)
	start, end := result.Bounds(window)

	assert.Equal(t, at(1, 8, 0), start)
	assert.Equal(t, at(1, 22, 0), end)
	assert.Equal(t, window.DailyLength(), result.Duration(window))
}

func TestCandidateGap(t *testing.T) {
	window := testWindow(at(0, 7, 0))

	gap, ok := candidateGap(at(0, 20, 0), at(0, 21, 0), window)
	assert.True(t, ok)
	assert.Equal(t, span(at(0, 20, 0), at(0, 21, 0)), gap)

	// Интервал начался раньше курсора
	_, ok = candidateGap(at(1, 9, 0), at(0, 21, 0), window)
	assert.False(t, ok)

	// Целиком после дневного окна
	_, ok = candidateGap(at(0, 22, 30), at(0, 23, 0), window)
	assert.False(t, ok)

	// Ночь без утренней и вечерней части
	_, ok = candidateGap(at(0, 22, 0), at(1, 8, 0), window)
	assert.False(t, ok)
}
