package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"observer-portal/backend/config"
	"observer-portal/backend/internal/dto"
	"observer-portal/backend/internal/upstream"
	"observer-portal/backend/pkg/nightdate"
	"observer-portal/backend/pkg/semester"
)

var ErrRequestsUnavailable = errors.New("failed to fetch observing requests")

// AllSemesters disables the semester filter on the requests view.
const AllSemesters = "all"

// RequestService builds the My Requests view.
type RequestService interface {
	List(ctx context.Context, obsID int, selected string) (*dto.RequestsResponse, error)
}

type requestService struct {
	clients  *upstream.Clients
	rule     nightdate.Rule
	now      func() time.Time
	options  int
	editBase string
	logger   *zap.Logger
}

// NewRequestService creates a RequestService.
func NewRequestService(cfg *config.Config, clients *upstream.Clients, logger *zap.Logger) RequestService {
	return &requestService{
		clients:  clients,
		rule:     nightRule(cfg),
		now:      time.Now,
		options:  cfg.Night.OptionSemesters,
		editBase: cfg.Links.RequestEdit,
		logger:   logger,
	}
}

func (s *requestService) List(ctx context.Context, obsID int, selected string) (*dto.RequestsResponse, error) {
	dates := s.rule.Shifted(s.now())

	current, err := currentSemester(ctx, s.clients.Schedule, dates)
	if err != nil {
		s.logger.Error("current semester lookup failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrSemesterUnavailable, err)
	}
	if selected == "" {
		selected = current
	}

	newest, err := s.clients.Proposals.NewestSemester(ctx)
	if err != nil {
		s.logger.Warn("newest semester lookup failed", zap.Error(err))
		newest = ""
	}

	requests, err := s.clients.Observing.Requests(ctx, obsID)
	if err != nil {
		s.logger.Error("request list fetch failed", zap.Int("obsid", obsID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrRequestsUnavailable, err)
	}

	// Upstream returns oldest first; the view shows newest first.
	rows := make([]dto.RequestRow, 0, len(requests))
	for i := len(requests) - 1; i >= 0; i-- {
		req := requests[i]
		if selected != AllSemesters && req.Semester != selected {
			continue
		}
		rows = append(rows, dto.RequestRow{
			FromDate:   req.FromDate,
			NumNights:  req.NumNights,
			Telescope:  req.Telescope,
			Instrument: req.Instrument,
			Principal:  req.Principal,
			Observers:  req.ObserverNames,
			ProjCode:   req.ProjCode,
			ReqNo:      req.ReqNo,
			Status:     req.Status,
			Semester:   req.Semester,
			EditURL:    s.editBase + "ReqNo=" + strconv.Itoa(req.ReqNo),
		})
	}

	options := append([]string{AllSemesters}, semester.Options(current, newest, s.options)...)

	return &dto.RequestsResponse{
		Semester: selected,
		Options:  options,
		Requests: rows,
	}, nil
}
