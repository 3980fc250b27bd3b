package handler

import (
	"github.com/gin-gonic/gin"

	"observer-portal/backend/internal/api/middleware"
	"observer-portal/backend/internal/model"
	"observer-portal/backend/pkg/response"
)

// MustGetObserver extracts the authenticated observer injected by the
// session middleware. Returns false after writing a 401 when the middleware
// did not run; callers should return immediately.
func MustGetObserver(c *gin.Context) (*model.Observer, bool) {
	v, exists := c.Get(middleware.ObserverKey)
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return nil, false
	}
	observer, ok := v.(*model.Observer)
	if !ok || observer == nil {
		response.Unauthorized(c, 10002, "not authenticated")
		return nil, false
	}
	return observer, true
}
