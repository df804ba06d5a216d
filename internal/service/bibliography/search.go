package bibliography

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// Search queries the selected providers concurrently and merges their
// records. A provider that fails or times out is reported in Failures and
// never fails the search. Identical concurrent searches share one fan-out.
func (s *Service) Search(ctx context.Context, in SearchInput) (*domain.BibSearchResult, error) {
	p, err := s.validate(in)
	if err != nil {
		return nil, err
	}
	key := p.cacheKey()

	if cached := s.lookup(ctx, key); cached != nil {
		cached.Cached = true
		return cached, nil
	}

	// The shared fan-out outlives any single caller; each provider call is
	// still bounded by the provider timeout.
	ch := s.group.DoChan(key, func() (any, error) {
		return s.fanOut(context.WithoutCancel(ctx), p, key), nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		res := r.Val.(domain.BibSearchResult)
		return &res, nil
	}
}

func (s *Service) lookup(ctx context.Context, key string) *domain.BibSearchResult {
	if s.cache == nil {
		return nil
	}
	res, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "bibliography cache read failed", slog.String("error", err.Error()))
		return nil
	}
	return res
}

func (s *Service) fanOut(ctx context.Context, p plan, key string) domain.BibSearchResult {
	records := make([][]domain.BibRecord, len(p.providers))
	errs := make([]error, len(p.providers))

	var g errgroup.Group
	for i, name := range p.providers {
		provider := s.providers[name]
		g.Go(func() error {
			pctx, cancel := context.WithTimeout(ctx, s.cfg.ProviderTimeout)
			defer cancel()
			records[i], errs[i] = provider.Search(pctx, p.query, p.limit)
			return nil
		})
	}
	_ = g.Wait()

	res := domain.BibSearchResult{
		Query:    p.query,
		Failures: []domain.ProviderFailure{},
	}
	for i, err := range errs {
		if err == nil {
			continue
		}
		records[i] = nil
		s.log.WarnContext(ctx, "bibliography provider failed",
			slog.String("provider", p.providers[i]),
			slog.String("error", err.Error()),
		)
		res.Failures = append(res.Failures, domain.ProviderFailure{
			Provider: p.providers[i],
			Error:    err.Error(),
		})
	}
	res.Records = merge(records, p.limit)

	s.log.InfoContext(ctx, "bibliography search",
		slog.String("query", p.query),
		slog.Int("providers", len(p.providers)),
		slog.Int("failures", len(res.Failures)),
		slog.Int("records", len(res.Records)),
	)

	// Partial answers are not cached so a recovered provider is seen next time.
	if s.cache != nil && len(res.Failures) == 0 {
		if err := s.cache.Set(ctx, key, res); err != nil {
			s.log.WarnContext(ctx, "bibliography cache write failed", slog.String("error", err.Error()))
		}
	}

	return res
}

// merge interleaves the per-provider lists by rank (first of each provider,
// then second, ...) and folds duplicates into the earliest occurrence.
// Records are duplicates when they share an ISBN, a DOI, or a folded title
// with the same year.
func merge(lists [][]domain.BibRecord, limit int) []domain.BibRecord {
	out := make([]domain.BibRecord, 0, limit)
	index := make(map[string]int)

	for rank := 0; ; rank++ {
		progressed := false
		for _, list := range lists {
			if rank >= len(list) {
				continue
			}
			progressed = true
			rec := list[rank]

			keys := identityKeys(rec)
			if at, ok := firstIndexed(index, keys); ok {
				out[at] = combine(out[at], rec)
				for _, k := range identityKeys(out[at]) {
					index[k] = at
				}
				continue
			}
			if len(out) == limit {
				continue
			}
			out = append(out, rec)
			for _, k := range keys {
				index[k] = len(out) - 1
			}
		}
		if !progressed {
			return out
		}
	}
}

func firstIndexed(index map[string]int, keys []string) (int, bool) {
	for _, k := range keys {
		if at, ok := index[k]; ok {
			return at, true
		}
	}
	return 0, false
}

func identityKeys(r domain.BibRecord) []string {
	var keys []string
	if isbn := normalizeISBN(r.ISBN); isbn != "" {
		keys = append(keys, "isbn:"+isbn)
	}
	if doi := strings.ToLower(strings.TrimSpace(r.DOI)); doi != "" {
		keys = append(keys, "doi:"+doi)
	}
	if title := domain.FoldText(r.Title); title != "" {
		keys = append(keys, fmt.Sprintf("title:%s|%d", title, r.Year))
	}
	return keys
}

func normalizeISBN(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) || r == 'X' || r == 'x' {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// combine fills the gaps of kept with fields from dup.
func combine(kept, dup domain.BibRecord) domain.BibRecord {
	if len(kept.Authors) == 0 {
		kept.Authors = dup.Authors
	}
	if kept.Year == 0 {
		kept.Year = dup.Year
	}
	if kept.Publisher == "" {
		kept.Publisher = dup.Publisher
	}
	if kept.ISBN == "" {
		kept.ISBN = dup.ISBN
	}
	if kept.DOI == "" {
		kept.DOI = dup.DOI
	}
	if kept.URL == "" {
		kept.URL = dup.URL
	}
	return kept
}
