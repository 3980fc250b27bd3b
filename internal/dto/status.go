package dto

// InstrumentRow is one classified instrument on the landing view.
type InstrumentRow struct {
	Instrument string `json:"instrument"`
	TelNr      int    `json:"telnr"`
	State      string `json:"state"`
	Ready      bool   `json:"ready"`
	ReadyState string `json:"ready_state,omitempty"`
}

// InstrumentStatusResponse is the instrument board for one operational
// date, split per telescope by the consumer via TelNr.
type InstrumentStatusResponse struct {
	Date        string          `json:"date"`
	Instruments []InstrumentRow `json:"instruments"`
}
