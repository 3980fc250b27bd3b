package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"observer-portal/backend/config"
	"observer-portal/backend/internal/dto"
	"observer-portal/backend/internal/model"
	"observer-portal/backend/internal/upstream"
	"observer-portal/backend/pkg/nightdate"
)

// ── status module errors ──

var ErrStatusUnavailable = errors.New("failed to fetch instrument status")

// StatusService classifies tonight's instrument availability.
type StatusService interface {
	Board(ctx context.Context) (*dto.InstrumentStatusResponse, error)
}

type statusService struct {
	clients *upstream.Clients
	rule    nightdate.Rule
	now     func() time.Time
	logger  *zap.Logger
}

// NewStatusService creates a StatusService.
func NewStatusService(cfg *config.Config, clients *upstream.Clients, logger *zap.Logger) StatusService {
	return &statusService{
		clients: clients,
		rule:    nightRule(cfg),
		now:     time.Now,
		logger:  logger,
	}
}

// Board fetches and classifies the instrument flags for the current
// operational date, then enriches Ready instruments with their live ready
// state. The live lookups are best-effort: a failed lookup leaves that
// instrument's ready state absent and never fails the board.
func (s *statusService) Board(ctx context.Context) (*dto.InstrumentStatusResponse, error) {
	dates := s.rule.Shifted(s.now())
	date := dates.LocalString()

	flags, err := s.clients.Schedule.InstrumentStatus(ctx, date)
	if err != nil {
		s.logger.Error("instrument status fetch failed", zap.String("date", date), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStatusUnavailable, err)
	}

	statuses := make([]model.InstrumentStatus, 0, len(flags))
	for name, f := range flags {
		status := model.InstrumentStatus{
			Instrument: name,
			State:      model.ClassifyInstrument(f),
		}
		if f != nil {
			status.TelNr = f.TelNr
		}
		statuses = append(statuses, status)
	}

	// The upstream map is unordered; sort by telescope then name so the
	// board is deterministic across requests.
	sort.Slice(statuses, func(i, j int) bool {
		if statuses[i].TelNr != statuses[j].TelNr {
			return statuses[i].TelNr < statuses[j].TelNr
		}
		return statuses[i].Instrument < statuses[j].Instrument
	})

	// Live ready-state lookups, only for Ready instruments (bounds the
	// fan-out to the instruments actually usable tonight).
	var wg sync.WaitGroup
	for i := range statuses {
		if !statuses[i].State.Ready() {
			continue
		}
		wg.Add(1)
		go func(st *model.InstrumentStatus) {
			defer wg.Done()
			ready, err := s.clients.Schedule.InstrumentReadyState(ctx, st.Instrument)
			if err != nil {
				s.logger.Debug("ready state lookup failed",
					zap.String("instrument", st.Instrument), zap.Error(err))
				return
			}
			st.ReadyState = ready
		}(&statuses[i])
	}
	wg.Wait()

	rows := make([]dto.InstrumentRow, 0, len(statuses))
	for _, st := range statuses {
		rows = append(rows, dto.InstrumentRow{
			Instrument: st.Instrument,
			TelNr:      st.TelNr,
			State:      string(st.State),
			Ready:      st.State.Ready(),
			ReadyState: st.ReadyState,
		})
	}

	return &dto.InstrumentStatusResponse{Date: date, Instruments: rows}, nil
}
