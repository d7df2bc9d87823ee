package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/numrent/numrent/internal/domain"
	"go.uber.org/zap"
)

type NumbersHandler struct {
	pricingService domain.PricingService
	rentalService  domain.RentalService
	logger         *zap.Logger
}

func NewNumbersHandler(pricingService domain.PricingService, rentalService domain.RentalService, logger *zap.Logger) *NumbersHandler {
	return &NumbersHandler{
		pricingService: pricingService,
		rentalService:  rentalService,
		logger:         logger,
	}
}

// mapDomainError переводит доменные ошибки в HTTP статусы.
// Единая таблица для всех операций аренды.
func (h *NumbersHandler) mapDomainError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, domain.ErrUnknownProvider):
		writeError(w, h.logger, http.StatusNotFound, "unknown provider")
	case errors.Is(err, domain.ErrOrderNotFound):
		writeError(w, h.logger, http.StatusNotFound, "order not found")
	case errors.Is(err, domain.ErrNotYourOrder):
		writeError(w, h.logger, http.StatusForbidden, "order belongs to another user")
	case errors.Is(err, domain.ErrInsufficientFunds):
		writeError(w, h.logger, http.StatusPaymentRequired, "insufficient wallet balance")
	case errors.Is(err, domain.ErrInvalidPromoCode):
		writeError(w, h.logger, http.StatusBadRequest, "invalid promo code")
	case errors.Is(err, domain.ErrCancelTooEarly):
		writeError(w, h.logger, http.StatusConflict, "order cannot be cancelled yet")
	case errors.Is(err, domain.ErrOrderHasOTP):
		writeError(w, h.logger, http.StatusConflict, "order already received an otp")
	case errors.Is(err, domain.ErrAlreadyTerminal):
		writeError(w, h.logger, http.StatusConflict, "order is already closed")
	case errors.Is(err, domain.ErrProviderRejected):
		writeError(w, h.logger, http.StatusConflict, "provider rejected the request")
	case errors.Is(err, domain.ErrNoNumbersAvailable):
		writeError(w, h.logger, http.StatusServiceUnavailable, "no numbers available, try again later")
	case errors.Is(err, domain.ErrInsufficientUpstreamBalance):
		writeError(w, h.logger, http.StatusServiceUnavailable, "service temporarily unavailable")
	case errors.Is(err, domain.ErrServiceUnavailable):
		writeError(w, h.logger, http.StatusServiceUnavailable, "service price is unavailable")
	case errors.Is(err, domain.ErrProviderUnavailable):
		writeError(w, h.logger, http.StatusBadGateway, "provider is unavailable")
	default:
		return false
	}
	return true
}

func (h *NumbersHandler) GetCountries(w http.ResponseWriter, r *http.Request) {
	provider := chi.URLParam(r, "provider")

	countries, err := h.pricingService.ListCountries(r.Context(), provider)
	if err != nil {
		if h.mapDomainError(w, err) {
			return
		}
		h.logger.Error("failed to list countries", zap.String("provider", provider), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, countries)
}

func (h *NumbersHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	provider := chi.URLParam(r, "provider")
	country := r.URL.Query().Get("country")
	if country == "" {
		writeError(w, h.logger, http.StatusBadRequest, "country query parameter is required")
		return
	}

	services, err := h.pricingService.ListServices(r.Context(), provider, country)
	if err != nil {
		if h.mapDomainError(w, err) {
			return
		}
		h.logger.Error("failed to list services",
			zap.String("provider", provider),
			zap.String("country", country),
			zap.Error(err),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, services)
}

type priceRequest struct {
	Provider  string `json:"provider"`
	Service   string `json:"service"`
	Country   string `json:"country"`
	Operator  string `json:"operator"`
	PromoCode string `json:"promo_code"`
}

func (h *NumbersHandler) GetPrice(w http.ResponseWriter, r *http.Request) {
	var req priceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if req.Provider == "" || req.Service == "" || req.Country == "" {
		writeError(w, h.logger, http.StatusBadRequest, "provider, service and country are required")
		return
	}

	quote, err := h.pricingService.CalculatePrice(r.Context(), req.Provider, req.Service, req.Country, req.Operator, req.PromoCode)
	if err != nil {
		if h.mapDomainError(w, err) {
			return
		}
		h.logger.Error("failed to calculate price", zap.String("provider", req.Provider), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, quote)
}

func (h *NumbersHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req priceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if req.Provider == "" || req.Service == "" || req.Country == "" {
		writeError(w, h.logger, http.StatusBadRequest, "provider, service and country are required")
		return
	}

	order, err := h.rentalService.Purchase(r.Context(), userID, req.Provider, req.Service, req.Country, req.Operator, req.PromoCode)
	if err != nil {
		if h.mapDomainError(w, err) {
			return
		}
		h.logger.Error("failed to purchase number",
			zap.Int64("user_id", userID),
			zap.String("provider", req.Provider),
			zap.Error(err),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, order)
}

func (h *NumbersHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	orders, err := h.rentalService.GetOrders(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to get orders", zap.Int64("user_id", userID), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, orders)
}

func (h *NumbersHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	activationID := chi.URLParam(r, "activation_id")
	if activationID == "" {
		writeError(w, h.logger, http.StatusBadRequest, "activation_id is required")
		return
	}

	receipt, err := h.rentalService.CancelByActivation(r.Context(), userID, activationID)
	if err != nil {
		if h.mapDomainError(w, err) {
			return
		}
		h.logger.Error("failed to cancel order",
			zap.Int64("user_id", userID),
			zap.String("activation_id", activationID),
			zap.Error(err),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, receipt)
}
