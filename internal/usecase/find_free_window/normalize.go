package find_free_window

import (
	"sort"

	"github.com/m04kA/SMC-MeetingWindow/internal/domain"
)

// normalize превращает сырые интервалы занятости в отсортированный список
// непересекающихся интервалов, каждый из которых пересекается с горизонтом поиска.
// Входной срез не изменяется. Повторный вызов на результате возвращает тот же результат.
//
// Обрезка по дневному окну (08:00-22:00) здесь НЕ выполняется: интервал 21:00-09:00
// блокирует части двух разных дней, это учитывает scan.
func normalize(raw []domain.Interval, window domain.SearchWindow) []domain.Interval {
	if len(raw) == 0 {
		return []domain.Interval{}
	}

	// Шаг 1: Копируем, отбрасывая интервалы нулевой длины - они не дают занятого времени
	sorted := make([]domain.Interval, 0, len(raw))
	for _, interval := range raw {
		if interval.IsEmpty() {
			continue
		}
		sorted = append(sorted, interval)
	}

	// Шаг 2: Сортируем по началу, при равенстве - по концу
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Start.Equal(sorted[j].Start) {
			return sorted[i].Start.Before(sorted[j].Start)
		}
		return sorted[i].End.Before(sorted[j].End)
	})

	// Шаг 3: Сливаем пересекающиеся и соприкасающиеся интервалы
	merged := mergeSorted(sorted)

	// Шаг 4: Оставляем только то, что пересекается с горизонтом
	return filterByHorizon(merged, window)
}

// mergeSorted сливает отсортированные интервалы одним проходом с накопителем "текущий интервал"
//
// Примеры:
// - [1,5) + [3,4) → [1,5) (вложенный интервал не укорачивает текущий)
// - [1,5) + [4,6) → [1,6)
// - [1,5) + [5,6) → [1,6) (соприкасаются)
// - [1,5) + [7,8) → [1,5), [7,8)
func mergeSorted(sorted []domain.Interval) []domain.Interval {
	result := make([]domain.Interval, 0, len(sorted))
	if len(sorted) == 0 {
		return result
	}

	current := sorted[0]
	for _, next := range sorted[1:] {
		if !next.Start.After(current.End) {
			// Расширяем текущий, только если следующий заканчивается позже
			if next.End.After(current.End) {
				current.End = next.End
			}
			continue
		}

		result = append(result, current)
		current = next
	}

	return append(result, current)
}

// filterByHorizon отбрасывает интервалы, целиком лежащие в прошлом или за горизонтом
func filterByHorizon(intervals []domain.Interval, window domain.SearchWindow) []domain.Interval {
	horizon := domain.Interval{Start: window.HorizonStart, End: window.HorizonEnd}

	result := make([]domain.Interval, 0, len(intervals))
	for _, interval := range intervals {
		// Закончился до начала поиска или начинается после горизонта
		if !interval.Overlaps(horizon) {
			continue
		}
		result = append(result, interval)
	}
	return result
}
