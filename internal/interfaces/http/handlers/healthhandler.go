package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chennai-a11y/prefsync/internal/shared/utils"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HealthCheck godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string "Service is up"
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, gin.H{"status": "ok"})
}

// NotFound answers unmatched routes.
func (h *HealthHandler) NotFound(c *gin.Context) {
	utils.ErrorResponse(c, http.StatusNotFound, "Not found")
}
