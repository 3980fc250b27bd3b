package handler

import (
	"github.com/gin-gonic/gin"

	"observer-portal/backend/internal/api/middleware"
	"observer-portal/backend/internal/navigation"
	"observer-portal/backend/internal/service"
	"observer-portal/backend/pkg/response"
)

// ObserverHandler serves the authenticated observer's profile and session
// lifecycle.
type ObserverHandler struct {
	observerSvc service.ObserverService
	logoutURL   string
}

// NewObserverHandler creates an ObserverHandler.
func NewObserverHandler(observerSvc service.ObserverService, logoutURL string) *ObserverHandler {
	return &ObserverHandler{observerSvc: observerSvc, logoutURL: logoutURL}
}

// Me returns the observer's profile.
// GET /api/v1/me
func (h *ObserverHandler) Me(c *gin.Context) {
	observer, ok := MustGetObserver(c)
	if !ok {
		return
	}
	response.OK(c, h.observerSvc.Profile(observer))
}

// Links returns the observer's personalised external links, possibly empty.
// GET /api/v1/me/links
func (h *ObserverHandler) Links(c *gin.Context) {
	observer, ok := MustGetObserver(c)
	if !ok {
		return
	}
	links, _ := h.observerSvc.Links(c.Request.Context(), observer.ID)
	response.OK(c, links)
}

// Logout forgets the cached session and tells the client where to complete
// the facility-wide logout.
// POST /api/v1/logout
func (h *ObserverHandler) Logout(c *gin.Context) {
	if cookie := c.GetString(middleware.SessionKey); cookie != "" {
		h.observerSvc.DropSession(cookie)
	}
	response.OK(c, navigation.Logout(h.logoutURL))
}
