package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"observer-portal/backend/config"
	"observer-portal/backend/internal/dto"
	"observer-portal/backend/internal/upstream"
	"observer-portal/backend/pkg/nightdate"
	"observer-portal/backend/pkg/semester"
)

// ── cover sheet module errors ──

var (
	ErrProgramsUnavailable = errors.New("failed to fetch program list")
	ErrSemesterUnavailable = errors.New("failed to resolve current semester")
)

// engineeringMarker marks engineering-extension program ids, e.g.
// "2025B_E007". The marker is scoped to a semester: sel+engineeringMarker.
const engineeringMarker = "_E"

// CoverSheetService builds the My Cover Sheets view.
type CoverSheetService interface {
	// List returns the observer's programs for one semester, enriched with
	// cover-sheet metadata. Enrichment is partial-success: a failed
	// metadata lookup leaves that row bare instead of failing the list —
	// the deliberate opposite of the schedule+staff join's contract.
	List(ctx context.Context, obsID int, selected string) (*dto.CoverSheetsResponse, error)
}

type coverSheetService struct {
	clients *upstream.Clients
	rule    nightdate.Rule
	now     func() time.Time
	options int
	logger  *zap.Logger
}

// NewCoverSheetService creates a CoverSheetService.
func NewCoverSheetService(cfg *config.Config, clients *upstream.Clients, logger *zap.Logger) CoverSheetService {
	return &coverSheetService{
		clients: clients,
		rule:    nightRule(cfg),
		now:     time.Now,
		options: cfg.Night.OptionSemesters,
		logger:  logger,
	}
}

func (s *coverSheetService) List(ctx context.Context, obsID int, selected string) (*dto.CoverSheetsResponse, error) {
	dates := s.rule.Shifted(s.now())

	current, err := currentSemester(ctx, s.clients.Schedule, dates)
	if err != nil {
		s.logger.Error("current semester lookup failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrSemesterUnavailable, err)
	}
	if selected == "" {
		selected = current
	}

	// The newest submission-open semester gates edit eligibility; when the
	// lookup fails no row is editable, but the list still renders.
	newest, err := s.clients.Proposals.NewestSemester(ctx)
	if err != nil {
		s.logger.Warn("newest semester lookup failed", zap.Error(err))
		newest = ""
	}

	programs, err := s.clients.Proposals.Programs(ctx, obsID)
	if err != nil {
		s.logger.Error("program list fetch failed", zap.Int("obsid", obsID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrProgramsUnavailable, err)
	}

	// Substring match, not equality: semester-qualified ids carry suffix
	// variants ("2025B_E007") that must still count as 2025B.
	rows := make([]dto.CoverSheetRow, 0, len(programs))
	for _, p := range programs {
		if !strings.Contains(p.ID, selected) {
			continue
		}
		rows = append(rows, dto.CoverSheetRow{
			No:       len(rows) + 1,
			KTN:      p.ID,
			Editable: s.editable(p.ID, selected, current, newest),
		})
	}

	// Metadata enrichment in parallel, failures tolerated per row.
	var wg sync.WaitGroup
	for i := range rows {
		wg.Add(1)
		go func(row *dto.CoverSheetRow) {
			defer wg.Done()
			sheet, err := s.clients.Proposals.CoverSheet(ctx, row.KTN)
			if err != nil {
				s.logger.Debug("cover sheet lookup failed",
					zap.String("ktn", row.KTN), zap.Error(err))
				return
			}
			row.Title = sheet.Title
			row.Type = sheet.Type
		}(&rows[i])
	}
	wg.Wait()

	return &dto.CoverSheetsResponse{
		Semester: selected,
		Options:  semester.Options(current, newest, s.options),
		Rows:     rows,
	}, nil
}

// editable implements the submission-window rule: everything in the newest
// semester is editable; in the current semester only engineering-extension
// programs scoped to it remain open.
func (s *coverSheetService) editable(programID, selected, current, newest string) bool {
	if newest != "" && selected == newest {
		return true
	}
	if selected == current || selected == newest {
		return strings.Contains(programID, selected+engineeringMarker)
	}
	return false
}
