package find_free_window

import "errors"

var (
	// ErrInputUnavailable возвращается, когда источник записей недоступен (файл не открылся, БД не отвечает)
	// Это НЕ то же самое, что "никто не занят" - результат не вычисляется
	ErrInputUnavailable = errors.New("input unavailable")

	// ErrMalformedRecord возвращается, когда запись не разбирается в два корректных момента времени
	ErrMalformedRecord = errors.New("malformed record")

	// ErrNoFreeWindow возвращается, когда занятость покрывает все дневные окна горизонта
	ErrNoFreeWindow = errors.New("no free window within the horizon")

	// ErrInvalidInput возвращается при некорректных параметрах окна поиска
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
