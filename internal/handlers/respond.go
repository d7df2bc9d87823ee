package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// writeJSON сериализует ответ с заданным статусом
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError сериализует ошибку с заданным статусом
func writeError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	writeJSON(w, logger, status, errorResponse{Error: message})
}
