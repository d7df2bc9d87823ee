package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ProviderConfig содержит настройки одного upstream-провайдера
type ProviderConfig struct {
	BaseURL   string  // Базовый URL API провайдера
	APIKey    string  // Ключ API
	CoinToUSD float64 // Курс монеты провайдера к USD (только 5sim)
	RPS       float64 // Лимит запросов в секунду к API провайдера
}

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress  string        // Адрес и порт запуска сервиса
	DatabaseURI string        // URI подключения к БД
	RedisURL    string        // URL подключения к Redis
	JWTSecret   string        // Секретный ключ для JWT
	JWTTokenTTL time.Duration // Время жизни JWT токена
	LogLevel    string        // Уровень логирования

	// Провайдеры номеров
	DaisySMS ProviderConfig
	SMSPool  ProviderConfig
	TigerSMS ProviderConfig
	FiveSim  ProviderConfig

	// Кэш каталога сервисов
	ServicesCacheTTL time.Duration

	// Worker Pool конфигурация
	WorkerPoolSize  int // Количество воркеров опроса
	WorkerQueueSize int // Размер очереди заказов

	// Расписание починки возвратов
	ReconcilerSchedule string

	// Rate limiting публичного API
	APIRateLimit float64 // Запросов в секунду с одного IP
	APIRateBurst int
}

// Load загружает конфигурацию из переменных окружения и флагов.
// Приоритет: env переменные > флаги > дефолтные значения.
func Load() (*Config, error) {
	// .env удобен при локальной разработке; в проде файла нет
	_ = godotenv.Load()

	cfg := &Config{
		JWTTokenTTL:        24 * time.Hour,
		LogLevel:           "info",
		ServicesCacheTTL:   10 * time.Minute,
		WorkerPoolSize:     4,
		WorkerQueueSize:    100,
		ReconcilerSchedule: "@every 5m",
		APIRateLimit:       10,
		APIRateBurst:       20,
	}

	// Определяем флаги
	flag.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.StringVar(&cfg.RedisURL, "r", "redis://localhost:6379/0", "redis URL")
	flag.Parse()

	// Переменные окружения имеют приоритет над флагами
	if envRunAddr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = envRunAddr
	}

	if envDBURI, ok := os.LookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = envDBURI
	}

	if envRedisURL, ok := os.LookupEnv("REDIS_URL"); ok {
		cfg.RedisURL = envRedisURL
	}

	// JWT секрет (только из env, не из флагов для безопасности)
	if envJWTSecret, ok := os.LookupEnv("JWT_SECRET"); ok {
		cfg.JWTSecret = envJWTSecret
	} else {
		cfg.JWTSecret = "default-secret-key-change-in-production"
	}

	// Уровень логирования
	if envLogLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}

	// Провайдеры номеров
	cfg.DaisySMS = loadProvider("DAISYSMS", "https://daisysms.com/stubs/handler_api.php")
	cfg.SMSPool = loadProvider("SMSPOOL", "https://api.smspool.net")
	cfg.TigerSMS = loadProvider("TIGERSMS", "https://api.tiger-sms.com/stubs/handler_api.php")
	cfg.FiveSim = loadProvider("FIVESIM", "https://5sim.net")

	if envCoinRate, ok := os.LookupEnv("FIVESIM_COIN_TO_USD"); ok {
		if rate, err := strconv.ParseFloat(envCoinRate, 64); err == nil && rate > 0 {
			cfg.FiveSim.CoinToUSD = rate
		}
	}

	// Кэш каталога
	if envCacheTTL, ok := os.LookupEnv("SERVICES_CACHE_TTL"); ok {
		if ttl, err := time.ParseDuration(envCacheTTL); err == nil && ttl > 0 {
			cfg.ServicesCacheTTL = ttl
		}
	}

	// Worker Pool конфигурация из env
	if envWorkerPoolSize, ok := os.LookupEnv("WORKER_POOL_SIZE"); ok {
		if size, err := strconv.Atoi(envWorkerPoolSize); err == nil && size > 0 {
			cfg.WorkerPoolSize = size
		}
	}

	if envWorkerQueueSize, ok := os.LookupEnv("WORKER_QUEUE_SIZE"); ok {
		if size, err := strconv.Atoi(envWorkerQueueSize); err == nil && size > 0 {
			cfg.WorkerQueueSize = size
		}
	}

	if envSchedule, ok := os.LookupEnv("RECONCILER_SCHEDULE"); ok {
		cfg.ReconcilerSchedule = envSchedule
	}

	// Rate limiting
	if envRate, ok := os.LookupEnv("API_RATE_LIMIT"); ok {
		if limit, err := strconv.ParseFloat(envRate, 64); err == nil && limit > 0 {
			cfg.APIRateLimit = limit
		}
	}

	if envBurst, ok := os.LookupEnv("API_RATE_BURST"); ok {
		if burst, err := strconv.Atoi(envBurst); err == nil && burst > 0 {
			cfg.APIRateBurst = burst
		}
	}

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	return cfg, nil
}

// loadProvider читает настройки провайдера из env с общим префиксом
func loadProvider(prefix, defaultBaseURL string) ProviderConfig {
	pc := ProviderConfig{BaseURL: defaultBaseURL}

	if envBaseURL, ok := os.LookupEnv(prefix + "_BASE_URL"); ok {
		pc.BaseURL = envBaseURL
	}
	if envAPIKey, ok := os.LookupEnv(prefix + "_API_KEY"); ok {
		pc.APIKey = envAPIKey
	}
	if envRPS, ok := os.LookupEnv(prefix + "_RPS"); ok {
		if rps, err := strconv.ParseFloat(envRPS, 64); err == nil && rps > 0 {
			pc.RPS = rps
		}
	}

	return pc
}
