package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"observer-portal/backend/config"
	"observer-portal/backend/internal/dto"
	"observer-portal/backend/internal/model"
	"observer-portal/backend/internal/upstream"
	"observer-portal/backend/pkg/nightdate"
)

// ── schedule module errors ──

var (
	ErrScheduleUnavailable = errors.New("failed to fetch observing schedule")
	ErrStaffUnavailable    = errors.New("failed to fetch night staff")
)

// scheduleWindowMonths is the forward window of the combined schedule:
// from the current operational date through six calendar months.
const scheduleWindowMonths = 6

// ScheduleService builds the combined schedule+staff view.
type ScheduleService interface {
	// Combined joins the observer's upcoming nights with their night staff.
	// The join is all-or-nothing: any night whose staff lookup fails fails
	// the whole aggregation; no partial list is returned.
	Combined(ctx context.Context, obsID int) ([]model.CombinedScheduleEntry, error)
	// MySchedule renders Combined into the view model, filtering staff to
	// the OA/SA roles shown to observers.
	MySchedule(ctx context.Context, obsID int) (*dto.MyScheduleResponse, error)
}

type scheduleService struct {
	clients *upstream.Clients
	rule    nightdate.Rule
	now     func() time.Time
	logger  *zap.Logger
}

// NewScheduleService creates a ScheduleService.
func NewScheduleService(cfg *config.Config, clients *upstream.Clients, logger *zap.Logger) ScheduleService {
	return &scheduleService{
		clients: clients,
		rule:    nightRule(cfg),
		now:     time.Now,
		logger:  logger,
	}
}

func (s *scheduleService) Combined(ctx context.Context, obsID int) ([]model.CombinedScheduleEntry, error) {
	dates := s.rule.Shifted(s.now())
	start := dates.LocalString()
	end := nightdate.AddCalendarMonths(dates.Local, scheduleWindowMonths).Format(nightdate.Layout)

	nights, err := s.clients.Schedule.ScheduleByObserver(ctx, obsID, start, end)
	if err != nil {
		s.logger.Error("schedule fetch failed", zap.Int("obsid", obsID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrScheduleUnavailable, err)
	}

	// Staff lookups run in parallel; completion order is irrelevant because
	// each night writes its own slot, preserving the schedule's order.
	entries := make([]model.CombinedScheduleEntry, len(nights))
	g, gctx := errgroup.WithContext(ctx)
	for i, night := range nights {
		i, night := i, night
		g.Go(func() error {
			staff, err := s.clients.Employee.NightStaff(gctx, night.Date)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrStaffUnavailable, night.Date, err)
			}

			nightDate, err := nightdate.ParseDate(night.Date)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrScheduleUnavailable, err)
			}

			entries[i] = model.CombinedScheduleEntry{
				ScheduledNight: night,
				Staff:          staff,
				// Negative for past-dated nights a lenient upstream may
				// return; deliberately not clamped.
				DaysUntil: nightdate.DaysBetween(nightDate, dates.Local),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("night staff join failed", zap.Int("obsid", obsID), zap.Error(err))
		return nil, err
	}

	return entries, nil
}

func (s *scheduleService) MySchedule(ctx context.Context, obsID int) (*dto.MyScheduleResponse, error) {
	combined, err := s.Combined(ctx, obsID)
	if err != nil {
		return nil, err
	}

	nights := make([]dto.ScheduleEntry, 0, len(combined))
	instruments := make([]string, 0, 4)
	seen := make(map[string]bool)

	for _, entry := range combined {
		staff := make([]dto.StaffMember, 0, len(entry.Staff))
		for _, member := range entry.Staff {
			role := strings.ToLower(member.Type)
			if role != "oa" && role != "sa" {
				continue
			}
			staff = append(staff, dto.StaffMember{
				Name:  member.FirstName,
				Role:  strings.ToUpper(role),
				Email: member.Email,
			})
		}

		nights = append(nights, dto.ScheduleEntry{
			Date:       entry.Date,
			StartTime:  entry.StartTime,
			EndTime:    entry.EndTime,
			TelNr:      entry.TelNr,
			Principal:  entry.Principal,
			Observers:  entry.Observers,
			Instrument: entry.Instrument,
			ProjCode:   entry.ProjCode,
			Staff:      staff,
			DaysUntil:  entry.DaysUntil,
		})

		if entry.Instrument != "" && !seen[entry.Instrument] {
			seen[entry.Instrument] = true
			instruments = append(instruments, entry.Instrument)
		}
	}

	return &dto.MyScheduleResponse{Nights: nights, Instruments: instruments}, nil
}
