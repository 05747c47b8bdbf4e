package csvfile

// Metrics интерфейс для учета пропущенных записей
type Metrics interface {
	IncRecordsSkipped()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
