package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"observer-portal/backend/internal/service"
	"observer-portal/backend/pkg/response"
)

// MetricsHandler serves the astronomical timings strip.
type MetricsHandler struct {
	metricsSvc service.MetricsService
}

// NewMetricsHandler creates a MetricsHandler.
func NewMetricsHandler(metricsSvc service.MetricsService) *MetricsHandler {
	return &MetricsHandler{metricsSvc: metricsSvc}
}

// Tonight returns the timings for the current operational night.
// GET /api/v1/metrics/tonight
func (h *MetricsHandler) Tonight(c *gin.Context) {
	resp, err := h.metricsSvc.Tonight(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrMetricsUnavailable) {
			response.BadGateway(c, 16001, "metrics service unavailable")
		} else {
			response.InternalError(c)
		}
		return
	}
	response.OK(c, resp)
}
