package openlibrary

// searchResponse is the subset of /search.json used by the provider.
type searchResponse struct {
	NumFound int      `json:"numFound"`
	Docs     []apiDoc `json:"docs"`
}

type apiDoc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	FirstPublishYear int      `json:"first_publish_year"`
	Publisher        []string `json:"publisher"`
	ISBN             []string `json:"isbn"`
}
