package find_free_window

import (
	"time"

	"github.com/m04kA/SMC-MeetingWindow/internal/domain"
)

// scan ищет самый длинный свободный промежуток между нормализованными интервалами занятости.
// Один линейный проход; свободное время после последнего интервала не рассматривается.
//
// Правила для промежутка [prevEnd, busy.Start):
// - в пределах одного дня → промежуток, обрезанный дневным окном
// - соседние дни → большая из половин: вечер первого дня или утро второго (ночь не считается)
// - между ними есть целый день → сразу возвращаем первый полностью свободный день
func scan(schedule []domain.Interval, window domain.SearchWindow) domain.FreeWindowResult {
	now := window.Now()

	// Никто не занят - свободен сегодняшний день (если он еще не начался) или завтрашний
	if len(schedule) == 0 {
		return firstFullDay(now, window)
	}

	prevEnd := now
	var best domain.Interval
	found := false

	for _, busy := range schedule {
		if domain.DaysBetween(prevEnd, busy.Start) > 1 {
			// Целый свободный день всегда не хуже любого промежутка внутри одного дня
			return domain.FullDay(domain.NextDate(prevEnd))
		}

		gap, ok := candidateGap(prevEnd, busy.Start, window)
		if ok && (!found || gap.Duration() > best.Duration()) {
			best = gap
			found = true
		}

		if busy.End.After(prevEnd) {
			prevEnd = busy.End
		}
	}

	if !found {
		return domain.NoWindow()
	}

	return domain.Found(best.Start, best.End)
}

// candidateGap возвращает бронируемую часть промежутка [from, to)
// Промежуток, пересекающий ночь, никогда не возвращается целиком.
func candidateGap(from, to time.Time, window domain.SearchWindow) (domain.Interval, bool) {
	switch domain.DaysBetween(from, to) {
	case 0:
		return clip(latest(from, window.DayStart(from)), earliest(to, window.DayEnd(from)))

	case 1:
		evening, eveningOK := clip(latest(from, window.DayStart(from)), window.DayEnd(from))
		morning, morningOK := clip(window.DayStart(to), earliest(to, window.DayEnd(to)))

		switch {
		case eveningOK && morningOK:
			// При равенстве предпочитаем более раннее окно
			if morning.Duration() > evening.Duration() {
				return morning, true
			}
			return evening, true
		case eveningOK:
			return evening, true
		case morningOK:
			return morning, true
		default:
			return domain.Interval{}, false
		}

	default:
		// to раньше from (интервал начался до текущего момента) - промежутка нет
		return domain.Interval{}, false
	}
}

// firstFullDay возвращает свободный день для пустого расписания:
// день t, если его дневное окно еще не началось, иначе следующий
func firstFullDay(t time.Time, window domain.SearchWindow) domain.FreeWindowResult {
	if t.Before(window.DayStart(t)) {
		return domain.FullDay(t)
	}
	return domain.FullDay(domain.NextDate(t))
}

// clip возвращает интервал [start, end), если он непустой
func clip(start, end time.Time) (domain.Interval, bool) {
	if !end.After(start) {
		return domain.Interval{}, false
	}
	return domain.Interval{Start: start, End: end}, true
}

func latest(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earliest(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
