package dto

// CoverSheetRow is one program row in the My Cover Sheets view. Title and
// Type stay empty when the per-program metadata lookup failed; the row is
// still listed.
type CoverSheetRow struct {
	No       int    `json:"no"`
	KTN      string `json:"ktn"`
	Type     string `json:"type,omitempty"`
	Title    string `json:"title,omitempty"`
	Editable bool   `json:"editable"`
}

// CoverSheetsResponse is the My Cover Sheets view model for one semester.
type CoverSheetsResponse struct {
	Semester string          `json:"semester"`
	Options  []string        `json:"options"`
	Rows     []CoverSheetRow `json:"rows"`
}
