package csvfile

import "errors"

var (
	// ErrInputUnavailable возвращается, когда файл не удалось открыть или прочитать
	ErrInputUnavailable = errors.New("csvfile.source: input unavailable")

	// ErrMalformedRecord возвращается, когда строка не разбирается в запись о занятости
	ErrMalformedRecord = errors.New("csvfile.source: malformed record")
)
