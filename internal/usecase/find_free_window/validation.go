package find_free_window

import (
	"fmt"

	"github.com/m04kA/SMC-MeetingWindow/internal/domain"
)

// validateRequest валидирует параметры окна поиска
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	// Дневное окно должно быть непустым
	if !req.DailyStart.IsBefore(req.DailyEnd) {
		return fmt.Errorf("%w: daily start %s must be before daily end %s", ErrInvalidInput, req.DailyStart, req.DailyEnd)
	}

	if req.HorizonDays < domain.MinHorizonDays || req.HorizonDays > domain.MaxHorizonDays {
		return fmt.Errorf("%w: horizon must be between %d and %d days", ErrInvalidInput,
			domain.MinHorizonDays, domain.MaxHorizonDays)
	}

	return nil
}
