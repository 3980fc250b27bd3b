package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"observer-portal/backend/internal/service"
	"observer-portal/backend/pkg/response"
)

// CoverSheetHandler serves the My Cover Sheets view.
type CoverSheetHandler struct {
	coverSheetSvc service.CoverSheetService
}

// NewCoverSheetHandler creates a CoverSheetHandler.
func NewCoverSheetHandler(coverSheetSvc service.CoverSheetService) *CoverSheetHandler {
	return &CoverSheetHandler{coverSheetSvc: coverSheetSvc}
}

// List returns the observer's programs for the selected semester.
// GET /api/v1/coversheets?semester=2025B
func (h *CoverSheetHandler) List(c *gin.Context) {
	observer, ok := MustGetObserver(c)
	if !ok {
		return
	}

	resp, err := h.coverSheetSvc.List(c.Request.Context(), observer.ID, c.Query("semester"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSemesterUnavailable):
			response.BadGateway(c, 13001, "semester service unavailable")
		case errors.Is(err, service.ErrProgramsUnavailable):
			response.BadGateway(c, 13002, "proposal service unavailable")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, resp)
}
