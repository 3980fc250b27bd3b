package model

// NightMetrics holds the astronomical timings for one UT night, exactly as
// the metrics service reports them. All values are preformatted strings;
// the gateway passes them through without interpretation.
type NightMetrics struct {
	UDate            string `json:"udate"`
	Dusk12Deg        string `json:"dusk_12deg"`
	Dusk18Deg        string `json:"dusk_18deg"`
	Dawn18Deg        string `json:"dawn_18deg"`
	Dawn12Deg        string `json:"dawn_12deg"`
	Dark             string `json:"dark"`
	Sunset           string `json:"sunset"`
	Sunrise          string `json:"sunrise"`
	MoonRADEC        string `json:"moonRADEC"`
	Moonrise         string `json:"moonrise"`
	Moonset          string `json:"moonset"`
	MoonIllumination string `json:"moonillumination"`
	MoonPhase        string `json:"moonphase"`
	MoonBrightness   string `json:"moonbrightness"`
	Length           string `json:"length"`
	Midpoint         string `json:"midpoint"`
}
