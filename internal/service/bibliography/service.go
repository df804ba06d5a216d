// Package bibliography fans a reference search out to every configured
// provider and merges the answers.
package bibliography

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// Provider is one bibliographic search backend.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string, limit int) ([]domain.BibRecord, error)
}

type resultCache interface {
	Get(ctx context.Context, key string) (*domain.BibSearchResult, error)
	Set(ctx context.Context, key string, res domain.BibSearchResult) error
}

// Config holds search tuning.
type Config struct {
	ProviderTimeout time.Duration
	DefaultLimit    int
	MaxLimit        int
}

// Service implements bibliography search.
type Service struct {
	providers map[string]Provider
	names     []string
	cache     resultCache
	group     singleflight.Group
	cfg       Config
	log       *slog.Logger
}

// NewService creates a Service. cache may be nil, which disables caching.
func NewService(log *slog.Logger, cache resultCache, cfg Config, providers ...Provider) *Service {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 10
	}
	if cfg.MaxLimit < cfg.DefaultLimit {
		cfg.MaxLimit = cfg.DefaultLimit
	}
	if cfg.ProviderTimeout <= 0 {
		cfg.ProviderTimeout = 5 * time.Second
	}

	byName := make(map[string]Provider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	slices.Sort(names)

	return &Service{
		providers: byName,
		names:     names,
		cache:     cache,
		cfg:       cfg,
		log:       log.With("service", "bibliography"),
	}
}

// Providers returns the configured provider names, sorted.
func (s *Service) Providers() []string {
	return slices.Clone(s.names)
}
