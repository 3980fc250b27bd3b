package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"observer-portal/backend/config"
	"observer-portal/backend/internal/dto"
	"observer-portal/backend/internal/upstream"
	"observer-portal/backend/pkg/nightdate"
)

var ErrMetricsUnavailable = errors.New("failed to fetch night metrics")

// MetricsService serves the astronomical timings strip for tonight.
type MetricsService interface {
	Tonight(ctx context.Context) (*dto.MetricsResponse, error)
}

type metricsService struct {
	clients *upstream.Clients
	rule    nightdate.Rule
	now     func() time.Time
	logger  *zap.Logger
}

// NewMetricsService creates a MetricsService.
func NewMetricsService(cfg *config.Config, clients *upstream.Clients, logger *zap.Logger) MetricsService {
	return &metricsService{
		clients: clients,
		rule:    nightRule(cfg),
		now:     time.Now,
		logger:  logger,
	}
}

// Tonight fetches the metrics row for the current operational night. The
// metrics service keys nights by UT date, not local date.
func (s *metricsService) Tonight(ctx context.Context) (*dto.MetricsResponse, error) {
	dates := s.rule.Shifted(s.now())
	date := dates.UTCString()

	rows, err := s.clients.Metrics.NightMetrics(ctx, date)
	if err != nil {
		s.logger.Error("night metrics fetch failed", zap.String("date", date), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrMetricsUnavailable, err)
	}

	resp := &dto.MetricsResponse{Date: date}
	if len(rows) > 0 {
		resp.Metrics = &rows[0]
	}
	return resp, nil
}
