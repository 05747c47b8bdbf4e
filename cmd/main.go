package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-MeetingWindow/internal/api/handlers"
	findFreeWindowHandler "github.com/m04kA/SMC-MeetingWindow/internal/api/handlers/find_free_window"
	"github.com/m04kA/SMC-MeetingWindow/internal/config"
	csvSource "github.com/m04kA/SMC-MeetingWindow/internal/infra/source/csvfile"
	busyRepo "github.com/m04kA/SMC-MeetingWindow/internal/infra/storage/busy"
	findFreeWindowUC "github.com/m04kA/SMC-MeetingWindow/internal/usecase/find_free_window"
	"github.com/m04kA/SMC-MeetingWindow/pkg/dbmetrics"
	"github.com/m04kA/SMC-MeetingWindow/pkg/logger"
	"github.com/m04kA/SMC-MeetingWindow/pkg/metrics"
)

const configPath = "config.toml"

func main() {
	os.Exit(run())
}

func run() int {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return handlers.ExitFailure
	}

	// Инициализируем логгер (stdout занят результатом)
	baseLog, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return handlers.ExitFailure
	}
	defer baseLog.Close()

	log := baseLog.With("run_id", uuid.NewString())
	log.Info("Starting SMC-MeetingWindow (source=%s)...", cfg.Source.Kind)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled, textfile %s", cfg.Metrics.TextfilePath)
	}

	// Инициализируем источник записей
	source, closeSource, err := newRecordSource(ctx, cfg, metricsCollector, log)
	if err != nil {
		log.Error("Failed to initialize record source: %v", err)
		if err := handlers.RespondError(os.Stderr, "источник данных о занятости недоступен"); err != nil {
			log.Error("Failed to write error message: %v", err)
		}
		return handlers.ExitInputUnavailable
	}
	defer closeSource()

	// Инициализируем use case и handler
	useCase := findFreeWindowUC.NewUseCase(source, &findFreeWindowUC.RealTimeProvider{}, metricsCollector, log)
	handler := findFreeWindowHandler.NewHandler(useCase, os.Stdout, os.Stderr, log)

	code := handler.Handle(ctx, findFreeWindowHandler.ToUseCaseRequest(
		cfg.Window.DailyStart,
		cfg.Window.DailyEnd,
		cfg.Window.HorizonDays,
	))

	if cfg.Metrics.Enabled {
		if err := metricsCollector.WriteToTextfile(cfg.Metrics.TextfilePath); err != nil {
			log.Error("Failed to write metrics to %s: %v", cfg.Metrics.TextfilePath, err)
		}
	}

	log.Info("Finished with exit code %d", code)
	return code
}

// newRecordSource создает источник по source.kind
// Возвращает функцию освобождения ресурсов, которую нужно вызвать после прогона
func newRecordSource(
	ctx context.Context,
	cfg *config.Config,
	metricsCollector *metrics.Metrics,
	log *logger.Logger,
) (findFreeWindowUC.RecordSource, func(), error) {
	if cfg.Source.Kind == config.SourceCSV {
		log.Info("Reading busy records from %s (skip_malformed=%t)", cfg.Source.CSVPath, cfg.Source.SkipMalformed)
		source := csvSource.NewSource(cfg.Source.CSVPath, time.Local, cfg.Source.SkipMalformed, metricsCollector, log)
		return source, func() {}, nil
	}

	// sql.Open для sqlite создаст пустой файл вместо отсутствующего
	if cfg.Source.Kind == config.SourceSQLite {
		if _, err := os.Stat(cfg.Database.SQLitePath); err != nil {
			return nil, nil, fmt.Errorf("sqlite database %s: %w", cfg.Database.SQLitePath, err)
		}
	}

	// Подключаемся к базе данных
	db, err := sql.Open(cfg.Database.DriverName(cfg.Source.Kind), cfg.Database.DataSource(cfg.Source.Kind))
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	pingCtx := ctx
	if timeout := cfg.Database.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to %s database", cfg.Source.Kind)

	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Warn("Failed to close database: %v", err)
		}
	}

	// Репозиторий с обёрткой метрик или без
	var executor busyRepo.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.Wrap(db, metricsCollector)
		log.Info("Database metrics collection started")
	}

	repository := busyRepo.NewRepository(executor, cfg.Source.Kind, time.Local, cfg.Database.Timeout())
	return repository, closeDB, nil
}
