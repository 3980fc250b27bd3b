package model

// Program is one proposal identifier owned by an observer. The ID is
// semester-qualified (for example "2025B_N123", or "2025B_E007" for an
// engineering extension).
type Program struct {
	ID string `json:"ProjCode"`
}

// CoverSheet is the proposal-submission metadata looked up per program.
type CoverSheet struct {
	Title string `json:"Title"`
	Type  string `json:"Type"`
}

// ObsLog is one observing log: the stored filename and its display title.
type ObsLog struct {
	Filename string `json:"filename"`
	Title    string `json:"title"`
}
