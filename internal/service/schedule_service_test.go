package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"observer-portal/backend/internal/model"
)

func setupTestScheduleService(ups *testUpstreams) *scheduleService {
	svc := NewScheduleService(testConfig(), ups.toClients(), zap.NewNop()).(*scheduleService)
	svc.now = fixedNow
	return svc
}

func seedNights(ups *testUpstreams, dates ...string) {
	for _, date := range dates {
		ups.schedule.nights = append(ups.schedule.nights, model.ScheduledNight{
			Date:       date,
			TelNr:      1,
			Instrument: "HIRES",
			ProjCode:   "2025B_N042",
			Principal:  "Vera",
		})
		ups.employee.staff[date] = []model.NightStaff{
			{FirstName: "Pat", Type: "oa", Email: "pat@example.org", TelNr: "1"},
			{FirstName: "Kim", Type: "sa", Email: "kim@example.org", TelNr: "1"},
		}
	}
}

func TestCombinedJoinsStaffInScheduleOrder(t *testing.T) {
	ups := newTestUpstreams()
	seedNights(ups, "2025-08-20", "2025-08-21", "2025-09-01")
	svc := setupTestScheduleService(ups)

	entries, err := svc.Combined(context.Background(), 42)
	if err != nil {
		t.Fatalf("Combined: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	wantDates := []string{"2025-08-20", "2025-08-21", "2025-09-01"}
	for i, entry := range entries {
		if entry.Date != wantDates[i] {
			t.Errorf("entry %d date = %s, want %s", i, entry.Date, wantDates[i])
		}
		if len(entry.Staff) != 2 {
			t.Errorf("entry %d staff = %d, want 2", i, len(entry.Staff))
		}
	}

	// Operational date is 2025-08-15 local.
	wantDays := []int{5, 6, 17}
	for i, entry := range entries {
		if entry.DaysUntil != wantDays[i] {
			t.Errorf("entry %d DaysUntil = %d, want %d", i, entry.DaysUntil, wantDays[i])
		}
	}
}

func TestCombinedFailsWholeJoinOnOneStaffFailure(t *testing.T) {
	ups := newTestUpstreams()
	seedNights(ups, "2025-08-20", "2025-08-21", "2025-08-22", "2025-08-23", "2025-08-24")
	ups.employee.staffFail["2025-08-22"] = true
	svc := setupTestScheduleService(ups)

	entries, err := svc.Combined(context.Background(), 42)
	if !errors.Is(err, ErrStaffUnavailable) {
		t.Fatalf("err = %v, want ErrStaffUnavailable", err)
	}
	if entries != nil {
		t.Fatalf("got partial entries on failure: %v", entries)
	}
}

func TestCombinedPropagatesScheduleError(t *testing.T) {
	ups := newTestUpstreams()
	ups.schedule.nightsErr = errUpstreamDown
	svc := setupTestScheduleService(ups)

	_, err := svc.Combined(context.Background(), 42)
	if !errors.Is(err, ErrScheduleUnavailable) {
		t.Fatalf("err = %v, want ErrScheduleUnavailable", err)
	}
}

func TestCombinedNegativeDaysForPastNights(t *testing.T) {
	ups := newTestUpstreams()
	seedNights(ups, "2025-08-10")
	svc := setupTestScheduleService(ups)

	entries, err := svc.Combined(context.Background(), 42)
	if err != nil {
		t.Fatalf("Combined: %v", err)
	}
	if entries[0].DaysUntil != -5 {
		t.Errorf("DaysUntil = %d, want -5", entries[0].DaysUntil)
	}
}

func TestMyScheduleFiltersStaffRoles(t *testing.T) {
	ups := newTestUpstreams()
	seedNights(ups, "2025-08-20")
	ups.employee.staff["2025-08-20"] = append(ups.employee.staff["2025-08-20"],
		model.NightStaff{FirstName: "Robin", Type: "admin", Email: "robin@example.org"},
		model.NightStaff{FirstName: "Lee", Type: "SA", Email: "lee@example.org"},
	)
	svc := setupTestScheduleService(ups)

	resp, err := svc.MySchedule(context.Background(), 42)
	if err != nil {
		t.Fatalf("MySchedule: %v", err)
	}
	if len(resp.Nights) != 1 {
		t.Fatalf("got %d nights, want 1", len(resp.Nights))
	}

	staff := resp.Nights[0].Staff
	if len(staff) != 3 {
		t.Fatalf("got %d staff, want 3 (admin filtered out)", len(staff))
	}
	for _, member := range staff {
		if member.Role != "OA" && member.Role != "SA" {
			t.Errorf("unexpected role %q in view", member.Role)
		}
	}
}

func TestMyScheduleCollectsDistinctInstruments(t *testing.T) {
	ups := newTestUpstreams()
	for _, night := range []struct{ date, instrument string }{
		{"2025-08-20", "HIRES"},
		{"2025-08-21", "KPF"},
		{"2025-08-22", "HIRES"},
	} {
		ups.schedule.nights = append(ups.schedule.nights, model.ScheduledNight{
			Date: night.date, Instrument: night.instrument,
		})
		ups.employee.staff[night.date] = nil
	}
	svc := setupTestScheduleService(ups)

	resp, err := svc.MySchedule(context.Background(), 42)
	if err != nil {
		t.Fatalf("MySchedule: %v", err)
	}
	if len(resp.Instruments) != 2 || resp.Instruments[0] != "HIRES" || resp.Instruments[1] != "KPF" {
		t.Errorf("instruments = %v, want [HIRES KPF]", resp.Instruments)
	}
}
