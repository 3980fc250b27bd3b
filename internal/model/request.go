package model

// ObservingRequest is one time-allocation request as returned by the
// observing service.
type ObservingRequest struct {
	ID            int    `json:"Id"`
	ReqNo         int    `json:"ReqNo"`
	FromDate      string `json:"FromDate"`
	NumNights     int    `json:"NumNights"`
	Telescope     string `json:"Telescope"`
	Instrument    string `json:"Instrument"`
	Principal     string `json:"Principal"`
	Observers     string `json:"observers"`
	ObserverNames string `json:"observer_names"`
	Semester      string `json:"semester"`
	ProjCode      string `json:"ProjCode"`
	Status        string `json:"Status"`
}
