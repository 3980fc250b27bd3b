package handler

import (
	"observer-portal/backend/config"
	"observer-portal/backend/internal/service"
)

// Handler aggregates every HTTP handler.
type Handler struct {
	Observer   *ObserverHandler
	Schedule   *ScheduleHandler
	Status     *StatusHandler
	CoverSheet *CoverSheetHandler
	Logs       *LogsHandler
	Requests   *RequestsHandler
	Metrics    *MetricsHandler
	Navigation *NavigationHandler
	Export     *ExportHandler
}

// NewHandler creates the handler aggregate.
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	return &Handler{
		Observer:   NewObserverHandler(svc.Observer, cfg.Links.Logout),
		Schedule:   NewScheduleHandler(svc.Schedule),
		Status:     NewStatusHandler(svc.Status),
		CoverSheet: NewCoverSheetHandler(svc.CoverSheet),
		Logs:       NewLogsHandler(svc.Logs),
		Requests:   NewRequestsHandler(svc.Requests),
		Metrics:    NewMetricsHandler(svc.Metrics),
		Navigation: NewNavigationHandler(&cfg.Links),
		Export:     NewExportHandler(svc.Export),
	}
}
