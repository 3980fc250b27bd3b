package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"observer-portal/backend/internal/service"
	"observer-portal/backend/pkg/response"
)

// LogsHandler serves the My Observation Logs view.
type LogsHandler struct {
	logSvc service.LogService
}

// NewLogsHandler creates a LogsHandler.
func NewLogsHandler(logSvc service.LogService) *LogsHandler {
	return &LogsHandler{logSvc: logSvc}
}

// List returns the observer's logs for the selected semester, or across the
// aggregate range for "All Logs".
// GET /api/v1/logs?semester=2025B
func (h *LogsHandler) List(c *gin.Context) {
	observer, ok := MustGetObserver(c)
	if !ok {
		return
	}

	resp, err := h.logSvc.List(c.Request.Context(), observer.ID, c.Query("semester"))
	if err != nil {
		if errors.Is(err, service.ErrSemesterUnavailable) {
			response.BadGateway(c, 14001, "semester service unavailable")
		} else {
			response.InternalError(c)
		}
		return
	}
	response.OK(c, resp)
}
