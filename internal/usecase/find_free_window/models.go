package find_free_window

import (
	"time"

	"github.com/m04kA/SMC-MeetingWindow/internal/domain"
	"github.com/m04kA/SMC-MeetingWindow/pkg/types"
)

// Request параметры окна поиска
type Request struct {
	DailyStart  types.TimeString // Начало допустимых часов внутри дня (например, "08:00")
	DailyEnd    types.TimeString // Конец допустимых часов внутри дня (например, "22:00")
	HorizonDays int              // Сколько дней вперед от текущего момента ищем
}

// Response модель ответа с найденным свободным окном
type Response struct {
	Result            domain.FreeWindowResult // Как было найдено окно (промежуток или целый день)
	Window            domain.SearchWindow     // Окно поиска, использованное в прогоне
	Start             time.Time               // Начало свободного окна
	End               time.Time               // Конец свободного окна
	RecordsCount      int                     // Прочитано записей
	ParticipantsCount int                     // Различных участников
	NormalizedCount   int                     // Интервалов после слияния и фильтрации
}
