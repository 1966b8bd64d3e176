package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/isaireyesmejia/camion-tracker/module/core/domain"
)

type healthService interface {
	Check(ctx context.Context) *domain.HealthReport
}

type HealthHandler struct {
	svc healthService
}

func NewHealthHandler(svc healthService) *HealthHandler {
	return &HealthHandler{svc: svc}
}

func (h *HealthHandler) Register(r *gin.RouterGroup) {
	r.GET("/health", h.Health)
}

func (h *HealthHandler) Health(c *gin.Context) {
	report := h.svc.Check(c.Request.Context())
	if report == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	code := http.StatusOK
	if report.Status == domain.StatusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, report)
}
