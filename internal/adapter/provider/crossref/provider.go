// Package crossref searches Crossref works metadata for bibliography
// candidates.
package crossref

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// Name identifies the provider in search results.
const Name = "crossref"

const defaultBaseURL = "https://api.crossref.org"

// Provider fetches work records from the Crossref REST API.
type Provider struct {
	baseURL    string
	mailto     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default Crossref URL. mailto, when
// set, routes requests to the polite pool.
func NewProvider(mailto string, logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, mailto, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL, mailto string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		mailto:     mailto,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", Name),
	}
}

func (p *Provider) Name() string { return Name }

// Search returns up to limit works matching query.
func (p *Provider) Search(ctx context.Context, query string, limit int) ([]domain.BibRecord, error) {
	params := url.Values{}
	params.Set("query.bibliographic", query)
	params.Set("rows", strconv.Itoa(limit))
	params.Set("select", "DOI,title,author,publisher,issued,URL,score,ISBN")
	if p.mailto != "" {
		params.Set("mailto", p.mailto)
	}
	reqURL := p.baseURL + "/works?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("crossref: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("crossref: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		p.log.WarnContext(ctx, "crossref rate limited", slog.String("query", query))
		return nil, fmt.Errorf("crossref: rate limited")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("crossref: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("crossref: read body: %w", err)
	}

	var wr worksResponse
	if err := json.Unmarshal(body, &wr); err != nil {
		return nil, fmt.Errorf("crossref: decode json: %w", err)
	}
	if wr.Status != "" && wr.Status != "ok" {
		return nil, fmt.Errorf("crossref: response status %q", wr.Status)
	}

	records := mapItems(wr.Message.Items, limit)

	p.log.DebugContext(ctx, "crossref response",
		slog.String("query", query),
		slog.Int("records", len(records)),
	)

	return records, nil
}

func mapItems(items []apiItem, limit int) []domain.BibRecord {
	out := make([]domain.BibRecord, 0, min(len(items), limit))
	for _, it := range items {
		if len(out) == limit {
			break
		}
		title := firstNonEmpty(it.Title)
		if title == "" {
			continue
		}
		rec := domain.BibRecord{
			Provider:  Name,
			ID:        it.DOI,
			Title:     title,
			Authors:   make([]string, 0, len(it.Author)),
			Year:      it.Issued.year(),
			Publisher: it.Publisher,
			ISBN:      firstNonEmpty(it.ISBN),
			DOI:       strings.ToLower(it.DOI),
			URL:       it.URL,
			Score:     it.Score,
		}
		for _, a := range it.Author {
			if name := a.fullName(); name != "" {
				rec.Authors = append(rec.Authors, name)
			}
		}
		out = append(out, rec)
	}
	return out
}

func firstNonEmpty(vals []string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
