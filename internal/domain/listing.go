package domain

// Summary is one row of a directory or search listing.
type Summary struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	UpcomingCount int    `json:"upcoming_count"`
}

type SearchResult struct {
	SearchTerm string    `json:"search_term"`
	Count      int       `json:"count"`
	Data       []Summary `json:"data"`
}
