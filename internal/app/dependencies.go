package app

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/numrent/numrent/internal/cache"
	"github.com/numrent/numrent/internal/config"
	"github.com/numrent/numrent/internal/domain"
	"github.com/numrent/numrent/internal/handlers"
	"github.com/numrent/numrent/internal/provider"
	"github.com/numrent/numrent/internal/repository/postgres"
	"github.com/numrent/numrent/internal/service"
	"github.com/numrent/numrent/internal/utils/jwt"
	"github.com/numrent/numrent/internal/utils/password"
	"github.com/numrent/numrent/internal/worker"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// repositories содержит все репозитории приложения
type repositories struct {
	user    domain.UserRepository
	wallet  domain.WalletRepository
	order   domain.OrderRepository
	refund  domain.RefundRepository
	pricing domain.PricingRepository
}

// services содержит все сервисы приложения
type services struct {
	auth    domain.AuthService
	wallet  domain.WalletService
	pricing *service.PricingService
	rental  domain.RentalService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth    *handlers.AuthHandler
	wallet  *handlers.WalletHandler
	numbers *handlers.NumbersHandler
	admin   *handlers.AdminHandler
	health  *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos      *repositories
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	registry   *provider.Registry
	workerPool *worker.Pool
	reconciler *worker.Reconciler
	rateLimit  *handlers.RateLimiter
}

// providerConfig переводит конфигурацию приложения в настройки адаптера
func providerConfig(pc config.ProviderConfig) provider.Config {
	return provider.Config{
		BaseURL:   pc.BaseURL,
		APIKey:    pc.APIKey,
		CoinToUSD: pc.CoinToUSD,
		RPS:       pc.RPS,
	}
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, rdb *redis.Client, logger *zap.Logger) *dependencies {
	// Создание репозиториев
	repos := &repositories{
		user:    postgres.NewUserRepository(dbPool),
		wallet:  postgres.NewWalletRepository(dbPool),
		order:   postgres.NewOrderRepository(dbPool),
		refund:  postgres.NewRefundRepository(dbPool),
		pricing: postgres.NewPricingRepository(dbPool),
	}

	// Создание утилит
	passwordHasher := password.NewBCryptHasher(password.DefaultCost)
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	// Реестр адаптеров провайдеров
	registry := provider.NewRegistry(
		provider.NewDaisySMS(providerConfig(cfg.DaisySMS)),
		provider.NewSMSPool(providerConfig(cfg.SMSPool)),
		provider.NewTigerSMS(providerConfig(cfg.TigerSMS)),
		provider.NewFiveSim(providerConfig(cfg.FiveSim)),
	)

	// Кэш каталога сервисов
	serviceCache := cache.NewServiceCache(rdb, cfg.ServicesCacheTTL)

	// Создание сервисов
	pricingService := service.NewPricingService(registry, serviceCache, repos.pricing, logger)
	svcs := &services{
		auth:    service.NewAuthService(repos.user, passwordHasher, jwtManager),
		wallet:  service.NewWalletService(repos.wallet, logger),
		pricing: pricingService,
		rental:  service.NewRentalService(registry, pricingService, repos.pricing, repos.wallet, repos.order, repos.refund, logger),
	}

	// Создание handlers
	hdlrs := &handlerSet{
		auth:    handlers.NewAuthHandler(svcs.auth, logger),
		wallet:  handlers.NewWalletHandler(svcs.wallet, logger),
		numbers: handlers.NewNumbersHandler(svcs.pricing, svcs.rental, logger),
		admin:   handlers.NewAdminHandler(pricingService, logger),
		health:  handlers.NewHealthHandler(dbPool, rdb, logger),
	}

	// Создание worker pool и реконсилера возвратов
	workerPool := worker.NewPool(cfg.WorkerPoolSize, cfg.WorkerQueueSize, repos.order, repos.refund, registry, logger)
	reconciler := worker.NewReconciler(repos.refund, cfg.ReconcilerSchedule, logger)

	return &dependencies{
		repos:      repos,
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		registry:   registry,
		workerPool: workerPool,
		reconciler: reconciler,
		rateLimit:  handlers.NewRateLimiter(rate.Limit(cfg.APIRateLimit), cfg.APIRateBurst),
	}
}
