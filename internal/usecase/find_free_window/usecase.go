package find_free_window

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-MeetingWindow/internal/domain"
	csvSource "github.com/m04kA/SMC-MeetingWindow/internal/infra/source/csvfile"
	busyRepo "github.com/m04kA/SMC-MeetingWindow/internal/infra/storage/busy"
)

// Run outcomes reported to metrics
const (
	outcomeError = "error"
)

// UseCase use case поиска самого длинного общего свободного окна
type UseCase struct {
	source       RecordSource
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// Если timeProvider не передан, используется реальное время; без metrics метрики не собираются
func NewUseCase(
	source RecordSource,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &UseCase{
		source:       source,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case поиска свободного окна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	startedAt := time.Now()

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindFreeWindow: validation failed: %v", err)
		uc.metrics.IncRun(outcomeError)
		return nil, err
	}

	// 2. Фиксируем текущий момент - все границы окна считаются от него один раз
	now := uc.timeProvider.Now()
	window := domain.NewSearchWindow(now, req.DailyStart, req.DailyEnd, req.HorizonDays)

	uc.logger.Info("FindFreeWindow: now=%s, daily=%s-%s, horizon_end=%s",
		now.Format(domain.TimestampFormat), req.DailyStart, req.DailyEnd, window.HorizonEnd.Format(domain.TimestampFormat))

	// 3. Загружаем записи о занятости
	records, err := uc.source.LoadRecords(ctx, window)
	if err != nil {
		uc.metrics.IncRun(outcomeError)
		return nil, uc.classifyLoadError(err)
	}
	uc.metrics.AddRecordsRead(len(records))

	participants := domain.CountParticipants(records)
	uc.logger.Info("FindFreeWindow: loaded %d records for %d participants", len(records), participants)

	// 4. Сортируем, сливаем и отбрасываем интервалы вне горизонта
	schedule := normalize(domain.Intervals(records), window)
	uc.metrics.SetNormalizedIntervals(len(schedule))

	if len(schedule) == 0 {
		uc.logger.Info("FindFreeWindow: no busy intervals within the horizon, everyone is free")
	}

	// 5. Ищем максимальный промежуток
	result := scan(schedule, window)
	if !result.IsFound() {
		uc.logger.Warn("FindFreeWindow: busy time covers every daily window until %s",
			window.HorizonEnd.Format(domain.TimestampFormat))
		uc.metrics.IncRun(string(result.Kind))
		return nil, ErrNoFreeWindow
	}

	start, end := result.Bounds(window)
	if result.Kind == domain.ResultFullDay {
		uc.logger.Info("FindFreeWindow: %s is completely free", result.Date.Format(domain.DateFormat))
	}

	uc.metrics.IncRun(string(result.Kind))
	uc.metrics.ObserveRunDuration(startedAt)
	uc.logger.Info("FindFreeWindow: %s window %s - %s (%s) from %d normalized intervals",
		result.Kind, start.Format(domain.TimestampFormat), end.Format(domain.TimestampFormat),
		end.Sub(start), len(schedule))

	return &Response{
		Result:            result,
		Window:            window,
		Start:             start,
		End:               end,
		RecordsCount:      len(records),
		ParticipantsCount: participants,
		NormalizedCount:   len(schedule),
	}, nil
}

// classifyLoadError приводит ошибки источников к ошибкам use case
// Недоступный источник никогда не превращается в "никто не занят"
func (uc *UseCase) classifyLoadError(err error) error {
	switch {
	case errors.Is(err, csvSource.ErrInputUnavailable),
		errors.Is(err, busyRepo.ErrExecQuery):
		uc.logger.Error("FindFreeWindow: record source unavailable: %v", err)
		return fmt.Errorf("%w: %v", ErrInputUnavailable, err)

	case errors.Is(err, csvSource.ErrMalformedRecord),
		errors.Is(err, busyRepo.ErrScanRow),
		errors.Is(err, busyRepo.ErrInvalidTimestamp),
		errors.Is(err, busyRepo.ErrInvalidInterval):
		uc.logger.Error("FindFreeWindow: malformed record: %v", err)
		return fmt.Errorf("%w: %v", ErrMalformedRecord, err)

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		uc.logger.Warn("FindFreeWindow: loading records interrupted: %v", err)
		return fmt.Errorf("%w: %v", ErrInputUnavailable, err)

	default:
		uc.logger.Error("FindFreeWindow: failed to load records: %v", err)
		return fmt.Errorf("%w: failed to load records: %v", ErrInternal, err)
	}
}
