// Package nightdate computes the facility's operational "night of" date.
//
// The observatory labels each observing night with the local calendar date
// the night started on. Mornings before the cutover hour still belong to the
// previous night, so the label only rolls forward at 08:00 local.
package nightdate

import (
	"fmt"
	"time"
)

// Layout is the wire format for calendar dates across the facility APIs.
const Layout = "2006-01-02"

// Rule describes how wall-clock time maps to an operational date.
// Offset and cutover live together on purpose: comparing the local hour
// against CutoverHour and comparing the UTC hour against
// (CutoverHour − UTCOffsetHours) are only equivalent while the offset is
// fixed, so this package exclusively uses the local-hour formulation.
type Rule struct {
	UTCOffsetHours int // fixed offset from UTC, e.g. -10 for HST
	CutoverHour    int // local hour at which the label rolls forward; 08:00 itself is NOT shifted
}

// Hawaii is the facility default: HST with an 8am cutover.
var Hawaii = Rule{UTCOffsetHours: -10, CutoverHour: 8}

// Dates carries both representations of one operational date.
type Dates struct {
	// Local is the operational calendar date in facility-local time.
	Local time.Time
	// UTC is the calendar date of the same (possibly rolled-back) local
	// instant expressed back in UTC. This mirrors the upstream convention:
	// the shift is applied to the instant, not to local midnight.
	UTC time.Time
}

// LocalString returns the local operational date as YYYY-MM-DD.
func (d Dates) LocalString() string { return d.Local.Format(Layout) }

// UTCString returns the UTC-equivalent date as YYYY-MM-DD.
func (d Dates) UTCString() string { return d.UTC.Format(Layout) }

// Shifted maps an instant to its operational date.
// Algorithm: shift now into local time by the fixed offset; if the local
// hour is strictly before the cutover the night in progress started
// yesterday, so roll the local date back one day. The UTC representation
// shifts the (rolled) local instant back by the same offset.
func (r Rule) Shifted(now time.Time) Dates {
	offset := time.Duration(r.UTCOffsetHours) * time.Hour

	local := now.UTC().Add(offset)
	if local.Hour() < r.CutoverHour {
		local = local.AddDate(0, 0, -1)
	}
	utc := local.Add(-offset)

	return Dates{
		Local: DateOf(local),
		UTC:   DateOf(utc),
	}
}

// DateOf truncates an instant to its calendar date (midnight, UTC location).
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddCalendarMonths adds months to a calendar date.
// Overflow follows Go's AddDate convention and rolls into the following
// month (March 31 + 6 months = October 1), matching the upstream
// scheduling services. Days are not clamped.
func AddCalendarMonths(date time.Time, months int) time.Time {
	return DateOf(date.AddDate(0, months, 0))
}

// DaysBetween returns the calendar-day difference a − b.
// Negative results are meaningful: a past-dated a yields a negative count.
func DaysBetween(a, b time.Time) int {
	return int(DateOf(a).Sub(DateOf(b)).Hours() / 24)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}
