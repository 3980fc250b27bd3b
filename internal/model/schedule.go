package model

// ScheduledNight is one observing allocation from the telescope schedule
// service. Immutable once fetched; the gateway never edits schedules.
type ScheduledNight struct {
	Date       string `json:"Date"`
	StartTime  string `json:"StartTime"`
	EndTime    string `json:"EndTime"`
	TelNr      int    `json:"TelNr"`
	Principal  string `json:"Principal"`
	Observers  string `json:"Observers"`
	Instrument string `json:"Instrument"`
	ProjCode   string `json:"ProjCode"`
}

// NightStaff is one staff assignment for a given night. Type carries the
// role code: "oa" (operating assistant) or "sa" (support astronomer); other
// roles appear upstream but are not shown to observers.
type NightStaff struct {
	FirstName string `json:"FirstName"`
	Type      string `json:"Type"`
	Email     string `json:"Email"`
	TelNr     string `json:"TelNr"`
}

// CombinedScheduleEntry is a ScheduledNight joined with its night staff and
// the calendar-day distance from the current operational date. It is a
// derived view model, recomputed on every request, never stored.
type CombinedScheduleEntry struct {
	ScheduledNight
	Staff     []NightStaff `json:"staff"`
	DaysUntil int          `json:"DaysUntil"`
}
