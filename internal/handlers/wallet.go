package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/numrent/numrent/internal/domain"
	"github.com/numrent/numrent/internal/service"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type WalletHandler struct {
	walletService domain.WalletService
	logger        *zap.Logger
}

func NewWalletHandler(walletService domain.WalletService, logger *zap.Logger) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		logger:        logger,
	}
}

func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	balance, err := h.walletService.GetBalance(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to get balance", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, balance)
}

func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	transactions, err := h.walletService.GetTransactions(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to get transactions", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(transactions) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, transactions)
}

type depositRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference"`
}

// Deposit пополняет кошелек. Сюда приходит callback платежного шлюза
// либо ручное пополнение.
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.walletService.Deposit(r.Context(), userID, req.Amount, req.Reference); err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			writeError(w, h.logger, http.StatusBadRequest, "amount must be positive")
			return
		}
		h.logger.Error("failed to deposit", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
