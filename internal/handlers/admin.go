package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/numrent/numrent/internal/domain"
	"github.com/numrent/numrent/internal/service"
	"go.uber.org/zap"
)

type AdminHandler struct {
	pricingService *service.PricingService
	logger         *zap.Logger
}

func NewAdminHandler(pricingService *service.PricingService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		pricingService: pricingService,
		logger:         logger,
	}
}

// UpdatePricing заменяет конфигурацию ценообразования
func (h *AdminHandler) UpdatePricing(w http.ResponseWriter, r *http.Request) {
	var cfg domain.PricingConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.pricingService.UpdateConfig(r.Context(), &cfg); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			writeError(w, h.logger, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to update pricing config", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// CreatePromo создает промокод
func (h *AdminHandler) CreatePromo(w http.ResponseWriter, r *http.Request) {
	var promo domain.PromoCode
	if err := json.NewDecoder(r.Body).Decode(&promo); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.pricingService.CreatePromo(r.Context(), &promo); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			writeError(w, h.logger, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to create promo code", zap.String("code", promo.Code), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, promo)
}
