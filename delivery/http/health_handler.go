// Package http contains HTTP delivery implementations for the application
package http

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/lDirtyl/goit-final-aws-email-db/pkg/api"
	"github.com/lDirtyl/goit-final-aws-email-db/pkg/logger"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	// DB is probed by the database health check
	DB *gorm.DB
	// Logger is used for logging operations within the handler
	Logger logger.LoggerInterface
	// API provides standardized API response patterns
	API api.Api
}

// NewHealthHandler creates a new instance of HealthHandler
func NewHealthHandler(db *gorm.DB, logger logger.LoggerInterface) *HealthHandler {
	return &HealthHandler{
		DB:     db,
		Logger: logger,
		API:    api.New(),
	}
}

// HealthCheckHandler handles HTTP requests for liveness checks
// It returns a JSON response indicating the service status
func (h *HealthHandler) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Health check endpoint called")

	healthData := map[string]interface{}{
		"status":  "healthy",
		"message": "Service is running",
	}

	h.API.Success(ctx, w, healthData)
}

// DBHealthCheckHandler handles HTTP requests for database readiness checks
// It issues a trivial query and returns 503 when the database is unreachable
func (h *HealthHandler) DBHealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Database health check endpoint called")

	var one int
	if err := h.DB.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error; err != nil {
		h.Logger.ErrorContext(ctx, "Database health check failed", "error", err)
		h.API.ServiceUnavailable(ctx, w, "Database is unreachable")
		return
	}

	h.API.Success(ctx, w, map[string]interface{}{
		"status": "healthy",
	})
}
