package find_free_window

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MeetingWindow/internal/domain"
)

// RecordSource источник записей о занятости (CSV файл или база данных)
type RecordSource interface {
	// LoadRecords загружает все записи, которые могут пересекаться с окном поиска.
	// Источник вправе вернуть и лишние записи - нормализация их отбросит.
	LoadRecords(ctx context.Context, window domain.SearchWindow) ([]domain.BusyRecord, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Metrics интерфейс для сбора метрик прогона
type Metrics interface {
	AddRecordsRead(n int)
	SetNormalizedIntervals(n int)
	IncRun(outcome string)
	ObserveRunDuration(start time.Time)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type noopMetrics struct{}

func (noopMetrics) AddRecordsRead(int)           {}
func (noopMetrics) SetNormalizedIntervals(int)   {}
func (noopMetrics) IncRun(string)                {}
func (noopMetrics) ObserveRunDuration(time.Time) {}
