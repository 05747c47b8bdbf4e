package find_free_window

import (
	"github.com/m04kA/SMC-MeetingWindow/internal/domain"
	findFreeWindow "github.com/m04kA/SMC-MeetingWindow/internal/usecase/find_free_window"
	"github.com/m04kA/SMC-MeetingWindow/pkg/types"
)

// FreeWindowOutput две строки вывода: начало и конец окна
type FreeWindowOutput struct {
	Start string
	End   string
}

// Lines возвращает строки в порядке вывода
func (o *FreeWindowOutput) Lines() []string {
	return []string{o.Start, o.End}
}

// FromUseCaseResponse конвертирует ответ use case в вывод
func FromUseCaseResponse(resp *findFreeWindow.Response) *FreeWindowOutput {
	return &FreeWindowOutput{
		Start: resp.Start.Format(domain.TimestampFormat),
		End:   resp.End.Format(domain.TimestampFormat),
	}
}

// ToUseCaseRequest создает запрос use case из настроек окна
func ToUseCaseRequest(dailyStart, dailyEnd types.TimeString, horizonDays int) *findFreeWindow.Request {
	return &findFreeWindow.Request{
		DailyStart:  dailyStart,
		DailyEnd:    dailyEnd,
		HorizonDays: horizonDays,
	}
}
