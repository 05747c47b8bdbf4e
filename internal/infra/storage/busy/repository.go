package busy

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-MeetingWindow/internal/domain"
	"github.com/m04kA/SMC-MeetingWindow/pkg/psqlbuilder"
)

const tableName = "busy_intervals"

// Repository репозиторий записей о занятости
type Repository struct {
	db      DBExecutor
	builder squirrel.StatementBuilderType
	loc     *time.Location
	timeout time.Duration
}

// NewRepository создает новый экземпляр репозитория
// dialect определяет формат плейсхолдеров (postgres: $1, sqlite: ?)
// loc - зона, в которой интерпретируются значения start_at/end_at
// timeout = 0 означает отсутствие ограничения на запрос
func NewRepository(db DBExecutor, dialect string, loc *time.Location, timeout time.Duration) *Repository {
	if loc == nil {
		loc = time.Local
	}
	return &Repository{
		db:      db,
		builder: psqlbuilder.ForDialect(dialect),
		loc:     loc,
		timeout: timeout,
	}
}

// LoadRecords получает записи, пересекающиеся с горизонтом окна поиска
// Условие: end_at > HorizonStart AND start_at < HorizonEnd
func (r *Repository) LoadRecords(ctx context.Context, window domain.SearchWindow) ([]domain.BusyRecord, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	query, args, err := r.builder.Select(
		"participant_id",
		"start_at",
		"end_at",
	).
		From(tableName).
		Where(squirrel.Gt{"end_at": r.formatTimestamp(window.HorizonStart)}).
		Where(squirrel.Lt{"start_at": r.formatTimestamp(window.HorizonEnd)}).
		OrderBy("start_at ASC", "end_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: LoadRecords - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadRecords - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]domain.BusyRecord, 0)
	for rows.Next() {
		var (
			participantID    string
			rawStart, rawEnd interface{}
		)
		if err := rows.Scan(&participantID, &rawStart, &rawEnd); err != nil {
			return nil, fmt.Errorf("%w: LoadRecords - scan row: %v", ErrScanRow, err)
		}

		start, err := r.parseTimestamp(rawStart)
		if err != nil {
			return nil, fmt.Errorf("LoadRecords - participant %s start_at: %w", participantID, err)
		}
		end, err := r.parseTimestamp(rawEnd)
		if err != nil {
			return nil, fmt.Errorf("LoadRecords - participant %s end_at: %w", participantID, err)
		}
		if end.Before(start) {
			return nil, fmt.Errorf("%w: LoadRecords - participant %s: %s < %s", ErrInvalidInterval, participantID,
				end.Format(domain.TimestampFormat), start.Format(domain.TimestampFormat))
		}

		records = append(records, domain.BusyRecord{
			ParticipantID: participantID,
			Interval:      domain.Interval{Start: start, End: end},
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: LoadRecords - rows error: %v", ErrExecQuery, err)
	}

	return records, nil
}

// formatTimestamp приводит момент к локальному времени хранилища
func (r *Repository) formatTimestamp(t time.Time) string {
	return t.In(r.loc).Format(domain.TimestampFormat)
}

// parseTimestamp принимает значения, которые драйверы возвращают для временных колонок:
// time.Time (lib/pq, колонки timestamp) или текст (sqlite, колонки TEXT)
func (r *Repository) parseTimestamp(raw interface{}) (time.Time, error) {
	switch v := raw.(type) {
	case time.Time:
		// timestamp without time zone хранит "настенное" время - переносим его в loc без сдвига
		return time.Date(v.Year(), v.Month(), v.Day(), v.Hour(), v.Minute(), v.Second(), v.Nanosecond(), r.loc), nil
	case string:
		return r.parseText(v)
	case []byte:
		return r.parseText(string(v))
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidTimestamp, raw)
	}
}

func (r *Repository) parseText(s string) (time.Time, error) {
	t, err := time.ParseInLocation(domain.TimestampFormat, s, r.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimestamp, s, err)
	}
	return t, nil
}
