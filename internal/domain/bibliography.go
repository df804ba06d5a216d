package domain

// BibRecord is one ranked candidate returned by a bibliographic search provider.
type BibRecord struct {
	Provider  string   `json:"provider"`
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Year      int      `json:"year,omitempty"`
	Publisher string   `json:"publisher,omitempty"`
	ISBN      string   `json:"isbn,omitempty"`
	DOI       string   `json:"doi,omitempty"`
	URL       string   `json:"url,omitempty"`
	Score     float64  `json:"score"`
}

// ProviderFailure reports a provider that did not deliver results.
type ProviderFailure struct {
	Provider string `json:"provider"`
	Error    string `json:"error"`
}

// BibSearchResult is the fan-in of every queried provider.
type BibSearchResult struct {
	Query    string            `json:"query"`
	Records  []BibRecord       `json:"records"`
	Failures []ProviderFailure `json:"failures"`
	Cached   bool              `json:"cached"`
}
