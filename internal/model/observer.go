package model

// Observer is the authenticated user's profile record as returned by the
// facility identity service. Field tags follow the upstream wire names.
// The record is read-only in this layer; its absence gates every dependent
// view.
type Observer struct {
	ID                int    `json:"Id"`
	Title             string `json:"Title"`
	FirstName         string `json:"FirstName"`
	MiddleName        string `json:"MiddleName"`
	LastName          string `json:"LastName"`
	Email             string `json:"Email"`
	Affiliation       string `json:"Affiliation"`
	WorkArea          string `json:"WorkArea"`
	Interests         string `json:"Interests"`
	Street            string `json:"Street"`
	City              string `json:"City"`
	State             string `json:"State"`
	Country           string `json:"Country"`
	Zip               string `json:"Zip"`
	Phone             string `json:"Phone"`
	URL               string `json:"URL"`
	ProfilePictureURL string `json:"ProfilePictureURL"`
}

// FullName joins the non-empty name parts.
func (o *Observer) FullName() string {
	name := ""
	for _, part := range []string{o.FirstName, o.MiddleName, o.LastName} {
		if part == "" {
			continue
		}
		if name != "" {
			name += " "
		}
		name += part
	}
	return name
}

// EmployeeLink is a personalised external link offered to some observers.
type EmployeeLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
