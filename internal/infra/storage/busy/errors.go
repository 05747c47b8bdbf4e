package busy

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("busy.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("busy.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("busy.repository: failed to scan row")

	// ErrInvalidTimestamp возвращается, когда значение start_at/end_at не является временем
	ErrInvalidTimestamp = errors.New("busy.repository: invalid timestamp")

	// ErrInvalidInterval возвращается, когда end_at раньше start_at
	ErrInvalidInterval = errors.New("busy.repository: end before start")
)
