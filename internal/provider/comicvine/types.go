package comicvine

// Comic Vine wraps results in an envelope with an in-band status code;
// 1 means OK.
const statusOK = 1

type searchResponse struct {
	StatusCode int     `json:"status_code"`
	Error      string  `json:"error"`
	Results    []issue `json:"results"`
}

type issue struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"` // often null for unnamed issues
	IssueNumber string  `json:"issue_number"`
	Volume      volume  `json:"volume"`
	CoverDate   string  `json:"cover_date"`
	Deck        string  `json:"deck"`
	Image       image   `json:"image"`
	Person      persons `json:"person_credits"`
}

type volume struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type image struct {
	OriginalURL string `json:"original_url"`
	MediumURL   string `json:"medium_url"`
}

type persons []person

type person struct {
	Name string `json:"name"`
	Role string `json:"role"`
}
