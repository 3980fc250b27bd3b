package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"observer-portal/backend/internal/service"
	"observer-portal/backend/pkg/response"
)

const (
	// ObserverKey is the gin context key holding the authenticated observer.
	ObserverKey = "observer"
	// SessionKey is the gin context key holding the raw session cookie pair.
	SessionKey = "session_cookie"
)

// SessionAuth resolves the facility session cookie to an observer profile
// and injects it into the request context. The gateway never mints its own
// credentials; the cookie pair is forwarded verbatim to the identity
// service, and its verdict is cached per session.
func SessionAuth(observers service.ObserverService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(cookieName)
		if err != nil || value == "" {
			response.Unauthorized(c, 10001, "missing session cookie")
			c.Abort()
			return
		}
		cookie := cookieName + "=" + value

		observer, err := observers.ByCookie(c.Request.Context(), cookie)
		if err != nil {
			if errors.Is(err, service.ErrNoSession) {
				response.Unauthorized(c, 10001, "missing session cookie")
			} else {
				response.Unauthorized(c, 10002, "session not accepted")
			}
			c.Abort()
			return
		}

		c.Set(ObserverKey, observer)
		c.Set(SessionKey, cookie)

		c.Next()
	}
}
