package dto

// StaffMember is one night-staff row, already filtered to the roles shown
// to observers (OA/SA).
type StaffMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
}

// ScheduleEntry is one upcoming observing night joined with its staff.
type ScheduleEntry struct {
	Date       string        `json:"date"`
	StartTime  string        `json:"start_time"`
	EndTime    string        `json:"end_time"`
	TelNr      int           `json:"telnr"`
	Principal  string        `json:"principal"`
	Observers  string        `json:"observers"`
	Instrument string        `json:"instrument"`
	ProjCode   string        `json:"proj_code"`
	Staff      []StaffMember `json:"staff"`
	DaysUntil  int           `json:"days_until"`
}

// MyScheduleResponse is the My Observing Schedule view model.
// Instruments lists the distinct instruments appearing in the schedule,
// used for the per-instrument helpful links.
type MyScheduleResponse struct {
	Nights      []ScheduleEntry `json:"nights"`
	Instruments []string        `json:"instruments"`
}
