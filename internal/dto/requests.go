package dto

// RequestRow is one observing request row, newest first.
type RequestRow struct {
	FromDate   string `json:"from_date"`
	NumNights  int    `json:"num_nights"`
	Telescope  string `json:"telescope"`
	Instrument string `json:"instrument"`
	Principal  string `json:"principal"`
	Observers  string `json:"observers"`
	ProjCode   string `json:"proj_code"`
	ReqNo      int    `json:"req_no"`
	Status     string `json:"status"`
	Semester   string `json:"semester"`
	EditURL    string `json:"edit_url"`
}

// RequestsResponse is the My Requests view model. Semester is the applied
// filter; "all" disables filtering.
type RequestsResponse struct {
	Semester string       `json:"semester"`
	Options  []string     `json:"options"`
	Requests []RequestRow `json:"requests"`
}
