package nightdate

import (
	"testing"
	"time"
)

func TestShiftedAfternoonKeepsDate(t *testing.T) {
	// 22:00 UTC = 12:00 HST, well past the cutover.
	now := time.Date(2025, 8, 15, 22, 0, 0, 0, time.UTC)
	dates := Hawaii.Shifted(now)

	if got := dates.LocalString(); got != "2025-08-15" {
		t.Errorf("local = %s, want 2025-08-15", got)
	}
	if got := dates.UTCString(); got != "2025-08-15" {
		t.Errorf("utc = %s, want 2025-08-15", got)
	}
}

func TestShiftedCutoverBoundary(t *testing.T) {
	cases := []struct {
		name      string
		now       time.Time
		wantLocal string
		wantUTC   string
	}{
		{
			// 17:59:59 UTC = 07:59:59 HST, still last night. The rollback
			// applies to the instant, so the UTC representation moves too.
			name:      "just before cutover",
			now:       time.Date(2025, 8, 15, 17, 59, 59, 0, time.UTC),
			wantLocal: "2025-08-14",
			wantUTC:   "2025-08-14",
		},
		{
			// 18:00:00 UTC = 08:00:00 HST, the new night; 08:00 is inclusive.
			name:      "exactly at cutover",
			now:       time.Date(2025, 8, 15, 18, 0, 0, 0, time.UTC),
			wantLocal: "2025-08-15",
			wantUTC:   "2025-08-15",
		},
		{
			// 09:00 UTC = 23:00 HST previous day; local date lags UTC.
			name:      "late local evening",
			now:       time.Date(2025, 8, 15, 9, 0, 0, 0, time.UTC),
			wantLocal: "2025-08-14",
			wantUTC:   "2025-08-15",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dates := Hawaii.Shifted(tc.now)
			if got := dates.LocalString(); got != tc.wantLocal {
				t.Errorf("local = %s, want %s", got, tc.wantLocal)
			}
			if got := dates.UTCString(); got != tc.wantUTC {
				t.Errorf("utc = %s, want %s", got, tc.wantUTC)
			}
		})
	}
}

func TestShiftedRollsAcrossMonthAndYear(t *testing.T) {
	// 01:00 UTC Jan 1 = 15:00 HST Dec 31.
	now := time.Date(2026, 1, 1, 1, 0, 0, 0, time.UTC)
	dates := Hawaii.Shifted(now)
	if got := dates.LocalString(); got != "2025-12-31" {
		t.Errorf("local = %s, want 2025-12-31", got)
	}
}

func TestAddCalendarMonthsOverflowRolls(t *testing.T) {
	start := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	got := AddCalendarMonths(start, 6)
	if got.Format(Layout) != "2025-10-01" {
		t.Errorf("got %s, want 2025-10-01", got.Format(Layout))
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, 8, 20, 3, 0, 0, 0, time.UTC)
	b := time.Date(2025, 8, 15, 23, 0, 0, 0, time.UTC)
	if got := DaysBetween(a, b); got != 5 {
		t.Errorf("DaysBetween = %d, want 5 (time of day ignored)", got)
	}
	if got := DaysBetween(b, a); got != -5 {
		t.Errorf("reverse DaysBetween = %d, want -5", got)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("08/15/2025"); err == nil {
		t.Error("expected error for non-ISO date")
	}
	got, err := ParseDate("2025-08-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got.Format(Layout) != "2025-08-15" {
		t.Errorf("got %s", got.Format(Layout))
	}
}
