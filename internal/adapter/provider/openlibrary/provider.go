// Package openlibrary searches the Open Library catalog for bibliography
// candidates.
package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// Name identifies the provider in search results.
const Name = "openlibrary"

const defaultBaseURL = "https://openlibrary.org"

// Provider fetches book records from the Open Library search API.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default Open Library URL.
func NewProvider(logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", Name),
	}
}

func (p *Provider) Name() string { return Name }

// Search returns up to limit records matching query, in API rank order.
func (p *Provider) Search(ctx context.Context, query string, limit int) ([]domain.BibRecord, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("fields", "key,title,author_name,first_publish_year,publisher,isbn")
	reqURL := p.baseURL + "/search.json?" + params.Encode()

	p.log.DebugContext(ctx, "openlibrary request", slog.String("query", query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("openlibrary: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.doWithRetry(ctx, req, query)
	if err != nil {
		return nil, fmt.Errorf("openlibrary: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openlibrary: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openlibrary: read body: %w", err)
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("openlibrary: decode json: %w", err)
	}

	records := mapDocs(sr.Docs, limit)

	p.log.DebugContext(ctx, "openlibrary response",
		slog.String("query", query),
		slog.Int("found", sr.NumFound),
		slog.Int("records", len(records)),
	)

	return records, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, query string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "openlibrary retry", slog.String("query", query), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(300 * time.Millisecond):
	}

	return p.httpClient.Do(req)
}

// mapDocs converts API docs into records. Rank decreases with position
// since the API does not expose scores.
func mapDocs(docs []apiDoc, limit int) []domain.BibRecord {
	out := make([]domain.BibRecord, 0, min(len(docs), limit))
	for i, d := range docs {
		if len(out) == limit {
			break
		}
		if d.Title == "" {
			continue
		}
		rec := domain.BibRecord{
			Provider: Name,
			ID:       d.Key,
			Title:    d.Title,
			Authors:  d.AuthorName,
			Year:     d.FirstPublishYear,
			Score:    1 / float64(i+1),
		}
		if rec.Authors == nil {
			rec.Authors = []string{}
		}
		if len(d.Publisher) > 0 {
			rec.Publisher = d.Publisher[0]
		}
		if len(d.ISBN) > 0 {
			rec.ISBN = d.ISBN[0]
		}
		if d.Key != "" {
			rec.URL = defaultBaseURL + d.Key
		}
		out = append(out, rec)
	}
	return out
}
