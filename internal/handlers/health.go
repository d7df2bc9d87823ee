package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	db     *pgxpool.Pool
	rdb    *redis.Client
	logger *zap.Logger
}

// NewHealthHandler создает новый HealthHandler
func NewHealthHandler(db *pgxpool.Pool, rdb *redis.Client, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		rdb:    rdb,
		logger: logger,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

// Health возвращает статус приложения и его зависимостей
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:   "ok",
		Database: "ok",
		Redis:    "ok",
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		response.Status = "degraded"
		response.Database = "unavailable"
		h.logger.Warn("health check: database unavailable", zap.Error(err))
	}

	// Redis деградирует мягко: без кэша цены перечитываются у провайдеров
	if err := h.rdb.Ping(ctx).Err(); err != nil {
		response.Status = "degraded"
		response.Redis = "unavailable"
		h.logger.Warn("health check: redis unavailable", zap.Error(err))
	}

	status := http.StatusOK
	if response.Database == "unavailable" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, h.logger, status, response)
}

// Ready возвращает готовность приложения принимать трафик
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("readiness check failed: database unavailable", zap.Error(err))
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
