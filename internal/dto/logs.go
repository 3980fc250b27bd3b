package dto

// LogEntry is one observing log link.
type LogEntry struct {
	Title   string `json:"title"`
	ViewURL string `json:"view_url"`
}

// LogsResponse is the My Observation Logs view model. Semester echoes the
// selector, which may be the "All Logs" sentinel.
type LogsResponse struct {
	Semester string     `json:"semester"`
	Options  []string   `json:"options"`
	Logs     []LogEntry `json:"logs"`
}
