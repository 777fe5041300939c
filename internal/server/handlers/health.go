package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping() error
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger  *slog.Logger
	db      Pinger
	version string
}

// NewHealthHandler создает новый handler для health check.
// db может быть nil, тогда проверка хранилища пропускается
func NewHealthHandler(logger *slog.Logger, db Pinger, version string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		db:      db,
		version: version,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// Health обрабатывает GET /api/v1/health
// Клиентский sync-движок использует этот endpoint как пробу доступности,
// поэтому при недоступном хранилище отвечаем 503
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	resp := HealthResponse{
		Status:  "ok",
		Version: h.version,
	}

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			h.logger.Error("health check: storage unavailable", slog.Any("error", err))
			status = http.StatusServiceUnavailable
			resp.Status = "unavailable"
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode health response", slog.Any("error", err))
	}
}
