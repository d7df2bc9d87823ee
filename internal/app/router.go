package app

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/numrent/numrent/internal/handlers"
	"github.com/numrent/numrent/internal/utils/jwt"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, jwtManager *jwt.Manager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, deps, logger)

	// Маршруты
	setupRoutes(r, deps, jwtManager)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, deps *dependencies, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(deps.rateLimit.Limit)
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies, jwtManager *jwt.Manager) {
	// Health check эндпоинты
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)

	// Публичные эндпоинты
	r.Post("/api/user/register", deps.handlers.auth.Register)
	r.Post("/api/user/login", deps.handlers.auth.Login)

	// Защищенные эндпоинты
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))

		r.Get("/api/user/balance", deps.handlers.wallet.GetBalance)
		r.Get("/api/user/transactions", deps.handlers.wallet.GetTransactions)
		r.Post("/api/user/deposit", deps.handlers.wallet.Deposit)

		r.Get("/api/numbers/{provider}/countries", deps.handlers.numbers.GetCountries)
		r.Get("/api/numbers/{provider}/services", deps.handlers.numbers.GetServices)
		r.Post("/api/numbers/price", deps.handlers.numbers.GetPrice)
		r.Post("/api/numbers/purchase", deps.handlers.numbers.Purchase)
		r.Get("/api/numbers/orders", deps.handlers.numbers.GetOrders)
		r.Post("/api/numbers/cancel/{activation_id}", deps.handlers.numbers.Cancel)
	})

	// Административные эндпоинты
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))
		r.Use(handlers.AdminMiddleware())

		r.Put("/api/admin/pricing", deps.handlers.admin.UpdatePricing)
		r.Post("/api/admin/promos", deps.handlers.admin.CreatePromo)
	})
}
