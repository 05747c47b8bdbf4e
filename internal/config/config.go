package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-MeetingWindow/internal/domain"
	"github.com/m04kA/SMC-MeetingWindow/pkg/types"
)

// ErrInvalidConfig возвращается при ошибке чтения или проверки конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Виды источников записей о занятости
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

var logLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Config конфигурация приложения
type Config struct {
	Window   WindowConfig   `toml:"window"`
	Source   SourceConfig   `toml:"source"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

// WindowConfig окно поиска: часы внутри дня и горизонт в днях
type WindowConfig struct {
	DailyStart  types.TimeString `toml:"daily_start"`
	DailyEnd    types.TimeString `toml:"daily_end"`
	HorizonDays int              `toml:"horizon_days"`
}

// SourceConfig откуда читать записи о занятости
type SourceConfig struct {
	Kind          string `toml:"kind"`
	CSVPath       string `toml:"csv_path"`
	SkipMalformed bool   `toml:"skip_malformed"`
}

// DatabaseConfig подключение к БД (для kind = postgres | sqlite)
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	SQLitePath      string `toml:"sqlite_path"`
	QueryTimeout    int    `toml:"query_timeout"` // секунды
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"` // пусто - stderr
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled      bool   `toml:"enabled"`
	ServiceName  string `toml:"service_name"`
	TextfilePath string `toml:"textfile_path"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			DailyStart:  types.MustTimeString(domain.DefaultDailyStart),
			DailyEnd:    types.MustTimeString(domain.DefaultDailyEnd),
			HorizonDays: domain.DefaultHorizonDays,
		},
		Source: SourceConfig{
			Kind:    SourceCSV,
			CSVPath: "calendar.csv",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			SQLitePath:      "calendar.db",
			QueryTimeout:    10,
			MaxOpenConns:    2,
			MaxIdleConns:    1,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName:  "meeting_window",
			TextfilePath: "meeting_window.prom",
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию
// Отсутствующий файл не является ошибкой - используются значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrInvalidConfig, path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if !c.Window.DailyStart.IsBefore(c.Window.DailyEnd) {
		return fmt.Errorf("%w: window.daily_start %s must be before window.daily_end %s",
			ErrInvalidConfig, c.Window.DailyStart, c.Window.DailyEnd)
	}

	if c.Window.HorizonDays < domain.MinHorizonDays || c.Window.HorizonDays > domain.MaxHorizonDays {
		return fmt.Errorf("%w: window.horizon_days must be in [%d, %d], got %d",
			ErrInvalidConfig, domain.MinHorizonDays, domain.MaxHorizonDays, c.Window.HorizonDays)
	}

	switch c.Source.Kind {
	case SourceCSV:
		if c.Source.CSVPath == "" {
			return fmt.Errorf("%w: source.csv_path is required for csv source", ErrInvalidConfig)
		}
	case SourcePostgres:
		if c.Database.DBName == "" {
			return fmt.Errorf("%w: database.dbname is required for postgres source", ErrInvalidConfig)
		}
	case SourceSQLite:
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("%w: database.sqlite_path is required for sqlite source", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown source.kind %q", ErrInvalidConfig, c.Source.Kind)
	}

	if c.Database.QueryTimeout < 0 {
		return fmt.Errorf("%w: database.query_timeout must not be negative", ErrInvalidConfig)
	}

	if _, ok := logLevels[c.Logs.Level]; !ok {
		return fmt.Errorf("%w: unknown logs.level %q", ErrInvalidConfig, c.Logs.Level)
	}

	if c.Metrics.Enabled && c.Metrics.TextfilePath == "" {
		return fmt.Errorf("%w: metrics.textfile_path is required when metrics are enabled", ErrInvalidConfig)
	}

	return nil
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// DriverName имя драйвера database/sql для вида источника
func (d DatabaseConfig) DriverName(kind string) string {
	if kind == SourceSQLite {
		return "sqlite"
	}
	return "postgres"
}

// DataSource строка подключения для вида источника
func (d DatabaseConfig) DataSource(kind string) string {
	if kind == SourceSQLite {
		return d.SQLitePath
	}
	return d.DSN()
}

// Timeout ограничение на запрос к БД
func (d DatabaseConfig) Timeout() time.Duration {
	return time.Duration(d.QueryTimeout) * time.Second
}
