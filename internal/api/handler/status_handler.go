package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"observer-portal/backend/internal/service"
	"observer-portal/backend/pkg/response"
)

// StatusHandler serves the instrument status board.
type StatusHandler struct {
	statusSvc service.StatusService
}

// NewStatusHandler creates a StatusHandler.
func NewStatusHandler(statusSvc service.StatusService) *StatusHandler {
	return &StatusHandler{statusSvc: statusSvc}
}

// Board returns tonight's classified instrument availability.
// GET /api/v1/instruments/status
func (h *StatusHandler) Board(c *gin.Context) {
	resp, err := h.statusSvc.Board(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrStatusUnavailable) {
			response.BadGateway(c, 12001, "instrument status unavailable")
		} else {
			response.InternalError(c)
		}
		return
	}
	response.OK(c, resp)
}
