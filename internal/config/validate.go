package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0")
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Syllabus.validate(); err != nil {
		return fmt.Errorf("syllabus: %w", err)
	}
	if err := c.Bibliography.validate(); err != nil {
		return fmt.Errorf("bibliography: %w", err)
	}

	if c.Meilisearch.URL != "" && strings.TrimSpace(c.Meilisearch.Index) == "" {
		return fmt.Errorf("meilisearch.index is required when meilisearch.url is set")
	}

	return nil
}

func (s *SyllabusConfig) validate() error {
	if s.WeightBoundsEnabled && s.WeightMin > s.WeightMax {
		return fmt.Errorf("weight_min (%v) must not exceed weight_max (%v)", s.WeightMin, s.WeightMax)
	}

	cleaned := s.RestrictedCourses[:0]
	for _, code := range s.RestrictedCourses {
		if code = strings.TrimSpace(code); code != "" {
			cleaned = append(cleaned, code)
		}
	}
	s.RestrictedCourses = cleaned

	return nil
}

func (b *BibliographyConfig) validate() error {
	if b.ProviderTimeout <= 0 {
		return fmt.Errorf("provider_timeout must be > 0")
	}
	if b.DefaultLimit <= 0 || b.MaxLimit < b.DefaultLimit {
		return fmt.Errorf("limits must satisfy 0 < default_limit <= max_limit (got %d, %d)", b.DefaultLimit, b.MaxLimit)
	}
	if b.RateLimitPerMinute <= 0 {
		return fmt.Errorf("rate_limit_per_min must be > 0")
	}
	for name, raw := range map[string]string{"openlibrary_url": b.OpenLibraryURL, "crossref_url": b.CrossrefURL} {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s is not an absolute URL: %q", name, raw)
		}
	}
	return nil
}
