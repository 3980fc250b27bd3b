package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"observer-portal/backend/config"
	"observer-portal/backend/internal/api/handler"
	"observer-portal/backend/internal/api/middleware"
	"observer-portal/backend/internal/service"
)

// maxBodyBytes caps request bodies; the gateway only receives small
// navigation dispatch payloads.
const maxBodyBytes = 64 << 10

// Setup builds the gin engine with the full route table.
func Setup(cfg *config.Config, h *handler.Handler, svc *service.Service, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.RateLimit(cfg.Server.RateLimit.PerSecond, cfg.Server.RateLimit.Burst))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")

	// Public: the instrument board and night metrics are facility-wide, not
	// tied to an observer.
	v1.GET("/instruments/status", h.Status.Board)
	v1.GET("/metrics/tonight", h.Metrics.Tonight)

	// Everything else requires the facility session cookie.
	authorized := v1.Group("")
	authorized.Use(middleware.SessionAuth(svc.Observer, cfg.Session.CookieName))
	{
		authorized.GET("/me", h.Observer.Me)
		authorized.GET("/me/links", h.Observer.Links)
		authorized.POST("/logout", h.Observer.Logout)

		authorized.GET("/schedule", h.Schedule.MySchedule)
		authorized.GET("/coversheets", h.CoverSheet.List)
		authorized.GET("/logs", h.Logs.List)
		authorized.GET("/requests", h.Requests.List)

		navigation := authorized.Group("/navigation")
		{
			navigation.GET("", h.Navigation.Initial)
			navigation.GET("/menu", h.Navigation.Menu)
			navigation.POST("/dispatch", h.Navigation.Dispatch)
		}

		export := authorized.Group("/export")
		{
			export.GET("/schedule.ics", h.Export.ScheduleICS)
			export.GET("/schedule.xlsx", h.Export.ScheduleXLSX)
		}
	}

	return r
}
