package bibliography

import (
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

const maxQueryLength = 300

// SearchInput is a bibliography search request.
type SearchInput struct {
	Query     string
	Providers []string
	Limit     int
}

// plan is a validated request: normalized query, sorted provider set, limit.
type plan struct {
	query     string
	folded    string
	providers []string
	limit     int
}

func (s *Service) validate(in SearchInput) (plan, error) {
	var errs []domain.FieldError

	p := plan{
		query:  domain.NormalizeText(in.Query),
		folded: domain.FoldText(in.Query),
		limit:  in.Limit,
	}

	if p.query == "" {
		errs = append(errs, domain.FieldError{Field: "q", Message: "required"})
	} else if len([]rune(p.query)) > maxQueryLength {
		errs = append(errs, domain.FieldError{Field: "q", Message: fmt.Sprintf("max %d characters", maxQueryLength)})
	}

	switch {
	case p.limit == 0:
		p.limit = s.cfg.DefaultLimit
	case p.limit < 0 || p.limit > s.cfg.MaxLimit:
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", s.cfg.MaxLimit)})
	}

	if len(in.Providers) == 0 {
		p.providers = s.Providers()
	} else {
		for _, name := range in.Providers {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "" {
				continue
			}
			if _, ok := s.providers[name]; !ok {
				errs = append(errs, domain.FieldError{Field: "providers", Message: "unknown provider " + name})
				continue
			}
			if !slices.Contains(p.providers, name) {
				p.providers = append(p.providers, name)
			}
		}
		slices.Sort(p.providers)
		if len(p.providers) == 0 && len(errs) == 0 {
			errs = append(errs, domain.FieldError{Field: "providers", Message: "at least one provider required"})
		}
	}

	if len(errs) > 0 {
		return plan{}, domain.NewValidationErrors(errs)
	}
	return p, nil
}

// cacheKey identifies equivalent searches: accent-folded query, sorted
// provider set and limit.
func (p plan) cacheKey() string {
	return fmt.Sprintf("%s|%s|%d", p.folded, strings.Join(p.providers, ","), p.limit)
}
