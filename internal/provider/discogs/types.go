package discogs

// searchResponse is the Discogs database search payload.
type searchResponse struct {
	Results []searchResult `json:"results"`
}

// searchResult carries release summaries. Title is "Artist - Release".
type searchResult struct {
	ID         int      `json:"id"`
	Title      string   `json:"title"`
	Year       string   `json:"year"`
	Country    string   `json:"country"`
	Format     []string `json:"format"`
	Label      []string `json:"label"`
	CatNo      string   `json:"catno"`
	Barcode    []string `json:"barcode"`
	Genre      []string `json:"genre"`
	Style      []string `json:"style"`
	CoverImage string   `json:"cover_image"`
}
