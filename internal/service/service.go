package service

import (
	"go.uber.org/zap"

	"observer-portal/backend/config"
	"observer-portal/backend/internal/upstream"
)

// Service aggregates every portal service.
type Service struct {
	Observer   ObserverService
	Schedule   ScheduleService
	Status     StatusService
	CoverSheet CoverSheetService
	Logs       LogService
	Requests   RequestService
	Metrics    MetricsService
	Export     ExportService
}

// NewService wires the service aggregate.
func NewService(cfg *config.Config, clients *upstream.Clients, logger *zap.Logger) *Service {
	scheduleSvc := NewScheduleService(cfg, clients, logger)

	return &Service{
		Observer:   NewObserverService(cfg, clients, logger),
		Schedule:   scheduleSvc,
		Status:     NewStatusService(cfg, clients, logger),
		CoverSheet: NewCoverSheetService(cfg, clients, logger),
		Logs:       NewLogService(cfg, clients, logger),
		Requests:   NewRequestService(cfg, clients, logger),
		Metrics:    NewMetricsService(cfg, clients, logger),
		Export:     NewExportService(cfg, scheduleSvc, logger),
	}
}
