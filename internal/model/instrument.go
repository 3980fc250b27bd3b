package model

// InstrumentState labels an instrument's availability for the night.
type InstrumentState string

const (
	StateNotAvailable InstrumentState = "Not Available"
	StateTDAReady     InstrumentState = "TDA Ready"
	StateScheduled    InstrumentState = "Scheduled"
	StateUnknown      InstrumentState = "Unknown"
)

// InstrumentFlags is the upstream per-instrument record: two 0/1 flags plus
// the telescope the instrument is mounted on.
type InstrumentFlags struct {
	Available int `json:"Available"`
	Scheduled int `json:"Scheduled"`
	TelNr     int `json:"TelNr"`
}

// ClassifyInstrument maps the upstream flag pair onto a state label.
// Decision table, in priority order:
//
//	missing record            → Unknown
//	Available == 0            → Not Available
//	Available == 1, Scheduled == 0 → TDA Ready
//	Available == 1, Scheduled == 1 → Scheduled
//
// Unavailability dominates: Available == 0 is Not Available regardless of
// the Scheduled flag.
func ClassifyInstrument(flags *InstrumentFlags) InstrumentState {
	if flags == nil {
		return StateUnknown
	}
	if flags.Available == 0 {
		return StateNotAvailable
	}
	if flags.Scheduled == 0 {
		return StateTDAReady
	}
	return StateScheduled
}

// Ready reports whether the state warrants a live ready-state lookup.
// Only TDA Ready and Scheduled instruments are polled, bounding the fan-out.
func (s InstrumentState) Ready() bool {
	return s == StateTDAReady || s == StateScheduled
}

// InstrumentStatus is the classified per-instrument row shown on the
// landing view. ReadyState is filled only for Ready instruments whose live
// lookup succeeded.
type InstrumentStatus struct {
	Instrument string          `json:"Instrument"`
	TelNr      int             `json:"TelNr"`
	State      InstrumentState `json:"State"`
	ReadyState string          `json:"ReadyState,omitempty"`
}
