package crossref

import "strings"

type worksResponse struct {
	Status  string `json:"status"`
	Message struct {
		Items []apiItem `json:"items"`
	} `json:"message"`
}

type apiItem struct {
	DOI       string      `json:"DOI"`
	Title     []string    `json:"title"`
	Author    []apiAuthor `json:"author"`
	Publisher string      `json:"publisher"`
	Issued    apiDate     `json:"issued"`
	URL       string      `json:"URL"`
	ISBN      []string    `json:"ISBN"`
	Score     float64     `json:"score"`
}

type apiAuthor struct {
	Given  string `json:"given"`
	Family string `json:"family"`
	Name   string `json:"name"`
}

// fullName prefers "Given Family"; organizations only carry Name.
func (a apiAuthor) fullName() string {
	full := strings.TrimSpace(strings.TrimSpace(a.Given) + " " + strings.TrimSpace(a.Family))
	if full != "" {
		return full
	}
	return strings.TrimSpace(a.Name)
}

// apiDate is Crossref's partial date: [[year, month, day]], any tail optional.
type apiDate struct {
	DateParts [][]*int `json:"date-parts"`
}

func (d apiDate) year() int {
	if len(d.DateParts) == 0 || len(d.DateParts[0]) == 0 || d.DateParts[0][0] == nil {
		return 0
	}
	return *d.DateParts[0][0]
}
