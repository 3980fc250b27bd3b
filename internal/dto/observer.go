package dto

// ObserverResponse is the profile card shown on the landing view.
type ObserverResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Affiliation string `json:"affiliation"`
	WorkArea    string `json:"work_area"`
	Interests   string `json:"interests"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	URL         string `json:"url"`
	PictureURL  string `json:"picture_url,omitempty"`
}
