package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"observer-portal/backend/internal/service"
	"observer-portal/backend/pkg/response"
)

// RequestsHandler serves the My Requests view.
type RequestsHandler struct {
	requestSvc service.RequestService
}

// NewRequestsHandler creates a RequestsHandler.
func NewRequestsHandler(requestSvc service.RequestService) *RequestsHandler {
	return &RequestsHandler{requestSvc: requestSvc}
}

// List returns the observer's observing requests, newest first.
// GET /api/v1/requests?semester=all
func (h *RequestsHandler) List(c *gin.Context) {
	observer, ok := MustGetObserver(c)
	if !ok {
		return
	}

	resp, err := h.requestSvc.List(c.Request.Context(), observer.ID, c.Query("semester"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSemesterUnavailable):
			response.BadGateway(c, 15001, "semester service unavailable")
		case errors.Is(err, service.ErrRequestsUnavailable):
			response.BadGateway(c, 15002, "observing request service unavailable")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, resp)
}
