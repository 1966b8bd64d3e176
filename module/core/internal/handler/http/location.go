package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/isaireyesmejia/camion-tracker/module/core/domain"
	"github.com/isaireyesmejia/camion-tracker/module/core/service"
)

type locationService interface {
	Register(ctx context.Context, body []byte) (*domain.LocationReport, error)
}

type registerResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	CamionID  string `json:"camionId"`
	Timestamp string `json:"timestamp"`
}

type LocationHandler struct {
	svc locationService
}

func NewLocationHandler(svc locationService) *LocationHandler {
	return &LocationHandler{svc: svc}
}

func (h *LocationHandler) Register(r *gin.RouterGroup) {
	r.POST("/location", h.RegisterLocation)
}

func (h *LocationHandler) RegisterLocation(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	report, err := h.svc.Register(c.Request.Context(), body)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, registerResponse{
		Success:   true,
		Message:   "location registered",
		CamionID:  report.CamionID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *LocationHandler) renderError(c *gin.Context, err error) {
	var verr *service.ValidationError
	var gerr *service.GateUnavailableError
	var perr *service.PrimaryStoreError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"errors": verr.Errors,
		})
	case errors.As(err, &gerr):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": gerr.Error()})
	case errors.As(err, &perr):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to save to primary store",
			"details": perr.Err.Error(),
		})
	default:
		// Internal detail must not leak on this path.
		log.Printf("register location: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
