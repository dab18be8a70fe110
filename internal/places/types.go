package places

// Venue is one search result. Optional fields are omitted from JSON when the
// tool did not report them.
type Venue struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	PlaceID string `json:"place_id,omitempty"`
	Rating  string `json:"rating,omitempty"`
	Types   string `json:"types,omitempty"`
	OpenNow *bool  `json:"open_now,omitempty"`
}

// Query describes one venue search.
type Query struct {
	Location  string
	Type      string
	MinRating float64
	// Limit caps the number of ranked venues returned; 0 means no cap.
	Limit int
}
