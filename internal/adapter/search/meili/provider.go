// Package meili searches the institutional library catalog indexed in
// Meilisearch.
package meili

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	meili "github.com/meilisearch/meilisearch-go"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// Name identifies the provider in search results.
const Name = "library"

// Provider queries a single Meilisearch index of library holdings.
type Provider struct {
	client meili.ServiceManager
	index  string
	log    *slog.Logger
}

// NewProvider creates a Provider for the given index.
func NewProvider(url, apiKey, index string, logger *slog.Logger) *Provider {
	return &Provider{
		client: meili.New(url, meili.WithAPIKey(apiKey)),
		index:  index,
		log:    logger.With("adapter", "meilisearch", "index", index),
	}
}

func (p *Provider) Name() string { return Name }

// Search returns up to limit holdings matching query, in ranking order.
func (p *Provider) Search(ctx context.Context, query string, limit int) ([]domain.BibRecord, error) {
	resp, err := p.client.Index(p.index).SearchWithContext(ctx, query, &meili.SearchRequest{
		Limit:            int64(limit),
		ShowRankingScore: true,
	})
	if err != nil {
		return nil, fmt.Errorf("meilisearch search %s: %w", p.index, err)
	}

	records := make([]domain.BibRecord, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		if len(records) == limit {
			break
		}
		rec := hitToRecord(hit)
		if rec.Title == "" {
			continue
		}
		records = append(records, rec)
	}

	p.log.DebugContext(ctx, "meilisearch response",
		slog.String("query", query),
		slog.Int("records", len(records)),
	)

	return records, nil
}

// Ping reports whether the Meilisearch server answers its health check.
func (p *Provider) Ping(ctx context.Context) error {
	if _, err := p.client.HealthWithContext(ctx); err != nil {
		return fmt.Errorf("meilisearch health: %w", err)
	}
	return nil
}

func hitToRecord(hit meili.Hit) domain.BibRecord {
	rec := domain.BibRecord{
		Provider:  Name,
		ID:        decodeString(hit, "id"),
		Title:     strings.TrimSpace(decodeString(hit, "title")),
		Authors:   decodeStrings(hit, "authors"),
		Publisher: decodeString(hit, "publisher"),
		ISBN:      decodeString(hit, "isbn"),
		DOI:       strings.ToLower(decodeString(hit, "doi")),
		URL:       decodeString(hit, "url"),
	}
	decode(hit, "year", &rec.Year)
	decode(hit, "_rankingScore", &rec.Score)
	return rec
}

func decode(hit meili.Hit, key string, dst any) {
	raw, ok := hit[key]
	if !ok {
		return
	}
	_ = json.Unmarshal(raw, dst)
}

func decodeString(hit meili.Hit, key string) string {
	var s string
	decode(hit, key, &s)
	return s
}

// decodeStrings accepts either a list or a single string.
func decodeStrings(hit meili.Hit, key string) []string {
	var list []string
	decode(hit, key, &list)
	if len(list) == 0 {
		if s := decodeString(hit, key); s != "" {
			list = []string{s}
		}
	}
	if list == nil {
		list = []string{}
	}
	return list
}
