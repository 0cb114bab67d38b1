package handlers

import (
	"net/http"

	"github.com/pitchrank/ladder/pkg/database"
	"github.com/pitchrank/ladder/pkg/logger"
)

// HealthHandler reports service and database health
type HealthHandler struct {
	db     *database.DB
	logger *logger.Logger
}

func NewHealthHandler(db *database.DB, log *logger.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: log}
}

// Health returns service status plus pool statistics
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, err := h.db.HealthCheck(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Health check failed")
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":  "degraded",
			"service": "pitchrank-api",
			"error":   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"service":  "pitchrank-api",
		"database": status,
	})
}
