package syllabus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/syllabus-backend/internal/content"
	"github.com/heartmarshall/syllabus-backend/internal/domain"
	"github.com/heartmarshall/syllabus-backend/internal/service/tabs"
)

// Get returns a document by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.SyllabusDocument, error) {
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get syllabus: %w", err)
	}
	return doc, nil
}

// Sections returns the visible sections of a document in display order, as
// decided by the course's active layout. The custom section is included only
// when that layout allows it. Structured content that cannot be decoded is
// served as the section's empty state.
func (s *Service) Sections(ctx context.Context, id uuid.UUID) ([]domain.RenderedSection, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	restricted, err := s.isRestricted(ctx, doc.Curso)
	if err != nil {
		return nil, fmt.Errorf("resolve course restriction: %w", err)
	}

	active, err := s.layouts.GetActive(ctx, doc.Curso)
	if err != nil {
		return nil, fmt.Errorf("get active layout: %w", err)
	}

	ordered := tabs.Resolve(s.sections, restricted, active)
	if active.CustomTabsAllowed() {
		ordered = tabs.Inject(ordered, doc.Custom)
	}

	out := make([]domain.RenderedSection, 0, len(ordered))
	for _, d := range ordered {
		if d.ID == domain.SectionCustom {
			out = append(out, domain.RenderedSection{
				SectionDescriptor: d,
				Content:           doc.Custom.Content,
				Mode:              string(content.ModeFreeform),
			})
			continue
		}
		out = append(out, s.renderSection(ctx, doc, d))
	}
	return out, nil
}

func (s *Service) renderSection(ctx context.Context, doc *domain.SyllabusDocument, d domain.SectionDescriptor) domain.RenderedSection {
	raw := doc.Section(d.ID)
	mode := content.ModeOf(raw)
	rs := domain.RenderedSection{SectionDescriptor: d, Content: raw, Mode: string(mode)}

	if mode != content.ModeStructured {
		return rs
	}

	conv, ok := s.converters.For(d.ID)
	if !ok {
		// Structured content in a free-form only section.
		s.log.WarnContext(ctx, "structured content in free-form section",
			slog.String("syllabus_id", doc.ID.String()),
			slog.String("section", d.ID.String()),
		)
		rs.Content = ""
		rs.Mode = string(content.ModeFreeform)
		return rs
	}

	p, decodeErr := content.DecodeOrEmpty(conv, raw)
	if decodeErr == nil {
		return rs
	}

	s.log.WarnContext(ctx, "section content degraded to empty state",
		slog.String("syllabus_id", doc.ID.String()),
		slog.String("section", d.ID.String()),
		slog.String("error", decodeErr.Error()),
	)
	empty, err := content.Encode(p)
	if err != nil {
		empty = ""
	}
	rs.Content = empty
	return rs
}
