package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"observer-portal/backend/config"
	"observer-portal/backend/internal/model"
	"observer-portal/backend/pkg/nightdate"
)

// ── export module errors ──

var (
	ErrExportNoNights     = errors.New("no scheduled nights to export")
	ErrExportGenerateFail = errors.New("failed to generate export file")
)

// ExportService renders the combined schedule into downloadable files.
//
// Both formats build on the same Combined aggregation, so an export carries
// exactly what the schedule view shows, staff included. Files are returned
// as buffers; the handler layer sets the response headers and streams them.
type ExportService interface {
	// ScheduleICS exports the upcoming schedule as an iCalendar file, one
	// VEVENT per night in the summit's fixed offset.
	ScheduleICS(ctx context.Context, obsID int) (*bytes.Buffer, string, error)
	// ScheduleXLSX exports the upcoming schedule as a spreadsheet, one row
	// per night.
	ScheduleXLSX(ctx context.Context, obsID int) (*bytes.Buffer, string, error)
}

type exportService struct {
	schedule ScheduleService
	zone     *time.Location
	logger   *zap.Logger
}

// NewExportService creates an ExportService on top of the schedule service.
func NewExportService(cfg *config.Config, schedule ScheduleService, logger *zap.Logger) ExportService {
	offset := cfg.Night.UTCOffsetHours * 3600
	return &exportService{
		schedule: schedule,
		zone:     time.FixedZone("summit", offset),
		logger:   logger,
	}
}

// defaultStart/defaultEnd cover nights whose allocation carries no explicit
// times; observing runs dusk to dawn.
const (
	defaultStart = "18:00"
	defaultEnd   = "06:00"
)

func (s *exportService) ScheduleICS(ctx context.Context, obsID int) (*bytes.Buffer, string, error) {
	entries, err := s.schedule.Combined(ctx, obsID)
	if err != nil {
		return nil, "", err
	}
	if len(entries) == 0 {
		return nil, "", ErrExportNoNights
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Observer Portal//Schedule Export//EN")

	for i, entry := range entries {
		start, end, err := s.nightSpan(entry.ScheduledNight)
		if err != nil {
			s.logger.Error("bad night times", zap.String("date", entry.Date), zap.Error(err))
			return nil, "", fmt.Errorf("%w: %v", ErrExportGenerateFail, err)
		}

		uid := fmt.Sprintf("%s-%d-%d@observer-portal", entry.Date, obsID, i)
		evt := cal.AddEvent(uid)
		evt.SetStartAt(start)
		evt.SetEndAt(end)
		evt.SetSummary(fmt.Sprintf("%s (%s)", entry.Instrument, entry.ProjCode))
		evt.SetLocation("Telescope " + strconv.Itoa(entry.TelNr))
		evt.SetDescription(s.eventDescription(entry))
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("observing_schedule_%d.ics", obsID)
	return buf, filename, nil
}

func (s *exportService) ScheduleXLSX(ctx context.Context, obsID int) (*bytes.Buffer, string, error) {
	entries, err := s.schedule.Combined(ctx, obsID)
	if err != nil {
		return nil, "", err
	}
	if len(entries) == 0 {
		return nil, "", ErrExportNoNights
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Schedule"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrExportGenerateFail, err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "C", 8)
	f.SetColWidth(sheetName, "D", "D", 6)
	f.SetColWidth(sheetName, "E", "E", 14)
	f.SetColWidth(sheetName, "F", "F", 12)
	f.SetColWidth(sheetName, "G", "H", 24)
	f.SetColWidth(sheetName, "I", "I", 28)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"Date", "Start", "End", "Tel", "Instrument", "Project", "Principal", "Observers", "Support Staff"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, col+"1", h)
		f.SetCellStyle(sheetName, col+"1", col+"1", headerStyle)
	}

	for r, entry := range entries {
		row := r + 2
		values := []interface{}{
			entry.Date,
			entry.StartTime,
			entry.EndTime,
			entry.TelNr,
			entry.Instrument,
			entry.ProjCode,
			entry.Principal,
			entry.Observers,
			staffSummary(entry.Staff),
		}
		for c, v := range values {
			col, _ := excelize.ColumnNumberToName(c + 1)
			f.SetCellValue(sheetName, col+strconv.Itoa(row), v)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("spreadsheet write failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("observing_schedule_%d.xlsx", obsID)
	return buf, filename, nil
}

// nightSpan resolves a night's wall-clock span in the summit zone. An end
// time at or before the start rolls to the next day: observing crosses
// midnight.
func (s *exportService) nightSpan(night model.ScheduledNight) (time.Time, time.Time, error) {
	startClock := night.StartTime
	if startClock == "" {
		startClock = defaultStart
	}
	endClock := night.EndTime
	if endClock == "" {
		endClock = defaultEnd
	}

	start, err := time.ParseInLocation(nightdate.Layout+" 15:04", night.Date+" "+startClock, s.zone)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.ParseInLocation(nightdate.Layout+" 15:04", night.Date+" "+endClock, s.zone)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end, nil
}

func (s *exportService) eventDescription(entry model.CombinedScheduleEntry) string {
	desc := "PI: " + entry.Principal
	if entry.Observers != "" {
		desc += "\nObservers: " + entry.Observers
	}
	if staff := staffSummary(entry.Staff); staff != "" {
		desc += "\nSupport: " + staff
	}
	return desc
}

func staffSummary(staff []model.NightStaff) string {
	var out string
	for _, member := range staff {
		if out != "" {
			out += ", "
		}
		out += member.FirstName + " (" + member.Type + ")"
	}
	return out
}
