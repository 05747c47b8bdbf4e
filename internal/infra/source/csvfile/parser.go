package csvfile

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-MeetingWindow/internal/domain"
)

const (
	fieldSeparator = ","
	fieldsCount    = 3 // <id>,<start>,<end>
	utf8BOM        = "\ufeff"
)

// ParseRecord разбирает одну строку формата "<id>,<yyyy-MM-dd HH:mm:ss>,<yyyy-MM-dd HH:mm:ss>"
// Пробелы вокруг полей игнорируются, время интерпретируется в loc.
//
// Примеры:
// - "100, 2017-04-03 13:30:00, 2017-04-03 14:30:00" → OK
// - "100,2017-04-03 13:30:00" → ошибка (не хватает поля)
// - "100,2017-04-03 14:30:00,2017-04-03 13:30:00" → ошибка (конец раньше начала)
func ParseRecord(line string, loc *time.Location) (domain.BusyRecord, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != fieldsCount {
		return domain.BusyRecord{}, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRecord, fieldsCount, len(fields))
	}

	id := strings.TrimSpace(fields[0])

	start, err := parseTimestamp(fields[1], loc)
	if err != nil {
		return domain.BusyRecord{}, fmt.Errorf("%w: start: %v", ErrMalformedRecord, err)
	}

	end, err := parseTimestamp(fields[2], loc)
	if err != nil {
		return domain.BusyRecord{}, fmt.Errorf("%w: end: %v", ErrMalformedRecord, err)
	}

	if end.Before(start) {
		return domain.BusyRecord{}, fmt.Errorf("%w: end %s is before start %s", ErrMalformedRecord,
			end.Format(domain.TimestampFormat), start.Format(domain.TimestampFormat))
	}

	return domain.BusyRecord{
		ParticipantID: id,
		Interval:      domain.Interval{Start: start, End: end},
	}, nil
}

func parseTimestamp(raw string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(domain.TimestampFormat, strings.TrimSpace(raw), loc)
}
