package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"observer-portal/backend/internal/service"
	"observer-portal/backend/pkg/response"
)

// ScheduleHandler serves the combined schedule view.
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// MySchedule returns the observer's upcoming nights joined with night staff.
// GET /api/v1/schedule
func (h *ScheduleHandler) MySchedule(c *gin.Context) {
	observer, ok := MustGetObserver(c)
	if !ok {
		return
	}

	resp, err := h.scheduleSvc.MySchedule(c.Request.Context(), observer.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrScheduleUnavailable):
			response.BadGateway(c, 11001, "schedule service unavailable")
		case errors.Is(err, service.ErrStaffUnavailable):
			response.BadGateway(c, 11002, "staffing service unavailable")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, resp)
}
