package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/numrent/numrent/internal/config"
	"github.com/numrent/numrent/internal/worker"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App представляет приложение
type App struct {
	config     *config.Config
	logger     *zap.Logger
	db         *pgxpool.Pool
	rdb        *redis.Client
	router     *chi.Mux
	workerPool *worker.Pool
	reconciler *worker.Reconciler
	pricing    pricingReloader
	server     *http.Server
}

type pricingReloader interface {
	Reload(ctx context.Context) error
}

// NewApp создает новое приложение
func NewApp() (*App, error) {
	ctx := context.Background()

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// Инициализация базы данных и миграций
	dbPool, err := initDatabase(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database")

	// Инициализация Redis
	rdb, err := initRedis(ctx, cfg.RedisURL)
	if err != nil {
		dbPool.Close()
		return nil, err
	}
	logger.Info("connected to redis")

	// Инициализация зависимостей
	deps := initDependencies(cfg, dbPool, rdb, logger)

	// Настройка роутера
	router := setupRouter(deps, deps.jwtManager, logger)

	// Создание HTTP сервера
	server := createServer(cfg.RunAddress, router)

	return &App{
		config:     cfg,
		logger:     logger,
		db:         dbPool,
		rdb:        rdb,
		router:     router,
		workerPool: deps.workerPool,
		reconciler: deps.reconciler,
		pricing:    deps.services.pricing,
		server:     server,
	}, nil
}

// Run запускает приложение
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Прогрев конфигурации ценообразования
	if err := a.pricing.Reload(ctx); err != nil {
		return fmt.Errorf("failed to load pricing config: %w", err)
	}

	// Запуск worker pool опроса активаций
	a.workerPool.Start(ctx)
	a.logger.Info("worker pool started")

	// Запуск реконсилера возвратов
	if err := a.reconciler.Start(ctx); err != nil {
		return fmt.Errorf("failed to start refund reconciler: %w", err)
	}

	// Запуск HTTP сервера и ожидание сигнала завершения
	if err := a.runServer(ctx); err != nil {
		return err
	}

	// Graceful shutdown
	a.shutdown(cancel)

	return nil
}
