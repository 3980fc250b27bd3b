package service

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"

	"observer-portal/backend/config"
	"observer-portal/backend/internal/dto"
	"observer-portal/backend/internal/model"
	"observer-portal/backend/internal/upstream"
	"observer-portal/backend/pkg/nightdate"
	"observer-portal/backend/pkg/semester"
)

// AllLogs is the virtual aggregate semester: the current semester plus a
// configured number of prior ones, concatenated.
const AllLogs = "All Logs"

// LogService builds the My Observation Logs view.
type LogService interface {
	// List returns the observer's logs for one semester, or for the
	// AllLogs sentinel the concatenation across the expanded semester
	// range. Per-semester failures contribute an empty slice and never
	// fail the aggregate.
	List(ctx context.Context, obsID int, selected string) (*dto.LogsResponse, error)
}

type logService struct {
	clients  *upstream.Clients
	rule     nightdate.Rule
	now      func() time.Time
	lookBack int
	viewBase string
	logger   *zap.Logger
}

// NewLogService creates a LogService.
func NewLogService(cfg *config.Config, clients *upstream.Clients, logger *zap.Logger) LogService {
	return &logService{
		clients:  clients,
		rule:     nightRule(cfg),
		now:      time.Now,
		lookBack: cfg.Night.LogSemesters,
		viewBase: cfg.Links.LogView,
		logger:   logger,
	}
}

func (s *logService) List(ctx context.Context, obsID int, selected string) (*dto.LogsResponse, error) {
	dates := s.rule.Shifted(s.now())

	current, err := currentSemester(ctx, s.clients.Schedule, dates)
	if err != nil {
		s.logger.Error("current semester lookup failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrSemesterUnavailable, err)
	}
	if selected == "" {
		selected = current
	}

	var logs []model.ObsLog
	if selected == AllLogs {
		logs = s.fetchAll(ctx, obsID, current)
	} else {
		logs = s.fetchOne(ctx, obsID, selected)
	}

	entries := make([]dto.LogEntry, 0, len(logs))
	for _, log := range logs {
		entries = append(entries, dto.LogEntry{
			Title:   log.Title,
			ViewURL: s.viewBase + url.PathEscape(log.Filename),
		})
	}

	options := append([]string{AllLogs}, semester.Options(current, "", s.lookBack)...)

	return &dto.LogsResponse{
		Semester: selected,
		Options:  options,
		Logs:     entries,
	}, nil
}

// fetchAll expands the sentinel to current + lookBack previous semesters
// and fetches each in parallel. Result order follows the expansion order,
// not completion order; a failed semester contributes nothing.
func (s *logService) fetchAll(ctx context.Context, obsID int, current string) []model.ObsLog {
	semesters := append([]string{current}, semester.Previous(current, s.lookBack)...)

	perSemester := make([][]model.ObsLog, len(semesters))
	var wg sync.WaitGroup
	for i, sem := range semesters {
		wg.Add(1)
		go func(i int, sem string) {
			defer wg.Done()
			perSemester[i] = s.fetchOne(ctx, obsID, sem)
		}(i, sem)
	}
	wg.Wait()

	var all []model.ObsLog
	for _, logs := range perSemester {
		all = append(all, logs...)
	}
	return all
}

func (s *logService) fetchOne(ctx context.Context, obsID int, sem string) []model.ObsLog {
	logs, err := s.clients.Proposals.ObsLogs(ctx, obsID, sem)
	if err != nil {
		s.logger.Warn("observing log fetch failed",
			zap.Int("obsid", obsID), zap.String("semester", sem), zap.Error(err))
		return nil
	}
	return logs
}
