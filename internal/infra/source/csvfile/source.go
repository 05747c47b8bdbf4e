package csvfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/m04kA/SMC-MeetingWindow/internal/domain"
)

// Source источник записей о занятости из CSV файла
type Source struct {
	path          string
	loc           *time.Location
	skipMalformed bool
	metrics       Metrics
	logger        Logger
}

// NewSource создает новый источник
// skipMalformed = false: первая некорректная строка прерывает прогон (строгий режим)
// skipMalformed = true: некорректные строки пропускаются с предупреждением
func NewSource(path string, loc *time.Location, skipMalformed bool, metrics Metrics, logger Logger) *Source {
	if loc == nil {
		loc = time.Local
	}
	return &Source{
		path:          path,
		loc:           loc,
		skipMalformed: skipMalformed,
		metrics:       metrics,
		logger:        logger,
	}
}

// LoadRecords читает весь файл. Окно поиска не используется - фильтрация выполняется при нормализации.
// Файл закрывается на любом пути выхода.
func (s *Source) LoadRecords(ctx context.Context, _ domain.SearchWindow) ([]domain.BusyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadRecords - open %s: %v", ErrInputUnavailable, s.path, err)
	}
	defer file.Close()

	records, err := s.ReadRecords(file)
	if err != nil {
		return nil, fmt.Errorf("LoadRecords - %s: %w", s.path, err)
	}

	s.logger.Info("LoadRecords: read %d records from %s", len(records), s.path)
	return records, nil
}

// ReadRecords разбирает записи из r. Пустые строки пропускаются.
func (s *Source) ReadRecords(r io.Reader) ([]domain.BusyRecord, error) {
	scanner := bufio.NewScanner(r)
	records := make([]domain.BusyRecord, 0)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		record, err := ParseRecord(line, s.loc)
		if err != nil {
			if !s.skipMalformed || !errors.Is(err, ErrMalformedRecord) {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			s.logger.Warn("ReadRecords: skipping line %d: %v", lineNo, err)
			if s.metrics != nil {
				s.metrics.IncRecordsSkipped()
			}
			continue
		}

		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: ReadRecords - read line %d: %v", ErrInputUnavailable, lineNo+1, err)
	}

	return records, nil
}
