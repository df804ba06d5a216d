package syllabus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/syllabus-backend/internal/content"
	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// UpdateSection stores the content of one section. Rich text is stored as
// given. Structured content must carry the section's layout tag and pass
// range checks; it is stored re-encoded.
func (s *Service) UpdateSection(ctx context.Context, id uuid.UUID, section domain.SectionID, raw string) (*domain.SyllabusDocument, error) {
	if err := s.checkSection(section); err != nil {
		return nil, err
	}

	stored, err := s.normalizeContent(section, raw)
	if err != nil {
		return nil, err
	}

	doc, caller, err := s.loadForEdit(ctx, id)
	if err != nil {
		return nil, err
	}

	doc.SetSection(section, stored)
	if section == domain.SectionProfessors && content.ModeOf(stored) == content.ModeStructured {
		// Names the header lists stay on a structured roster.
		if err := s.syncProfessors(ctx, doc); err != nil {
			return nil, err
		}
	}

	updated, err := s.save(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("update section %s: %w", section, err)
	}

	s.log.InfoContext(ctx, "section updated",
		slog.String("user_id", caller.ID),
		slog.String("syllabus_id", id.String()),
		slog.String("section", section.String()),
		slog.String("mode", string(content.ModeOf(stored))),
	)

	return updated, nil
}

// SwitchMode rewrites a section into the requested representation using the
// section's converter. Undecodable structured content converts from the
// empty state. A switch to structured whose extracted values break range
// checks (evaluation weight bounds) is rejected and nothing is stored.
func (s *Service) SwitchMode(ctx context.Context, id uuid.UUID, section domain.SectionID, mode string) (*domain.SyllabusDocument, error) {
	if err := s.checkSection(section); err != nil {
		return nil, err
	}
	target, err := content.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	conv, ok := s.converters.For(section)
	if !ok {
		return nil, domain.NewValidationError("section", "section "+section.String()+" has no structured form")
	}

	doc, caller, err := s.loadForEdit(ctx, id)
	if err != nil {
		return nil, err
	}

	out, recovered, err := content.Switch(conv, doc.Section(section), target)
	if err != nil {
		return nil, fmt.Errorf("switch section %s: %w", section, err)
	}
	if recovered != nil {
		s.log.WarnContext(ctx, "section content degraded to empty state",
			slog.String("syllabus_id", id.String()),
			slog.String("section", section.String()),
			slog.String("error", recovered.Error()),
		)
	}
	if target == content.ModeStructured && out != doc.Section(section) {
		// Extracted values meet the same bounds as submitted ones.
		p, err := content.DecodeFor(conv, out)
		if err != nil {
			return nil, fmt.Errorf("switch section %s: %w", section, err)
		}
		if err := s.converters.Validate(p); err != nil {
			return nil, err
		}
	}

	doc.SetSection(section, out)
	updated, err := s.save(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("switch section %s: %w", section, err)
	}

	s.log.InfoContext(ctx, "section mode switched",
		slog.String("user_id", caller.ID),
		slog.String("syllabus_id", id.String()),
		slog.String("section", section.String()),
		slog.String("mode", string(target)),
	)

	return updated, nil
}

func (s *Service) checkSection(section domain.SectionID) error {
	if section == domain.SectionCustom {
		return domain.NewValidationError("section", "use the custom section endpoints")
	}
	if !s.sections.Has(section) {
		return domain.NewValidationError("section", "unknown section "+section.String())
	}
	return nil
}

// normalizeContent validates client content for a section and returns the
// form to store.
func (s *Service) normalizeContent(section domain.SectionID, raw string) (string, error) {
	if !content.IsStructured(raw) {
		return raw, nil
	}

	conv, ok := s.converters.For(section)
	if !ok {
		return "", domain.NewValidationError("content", "section "+section.String()+" has no structured form")
	}

	p, err := content.DecodeFor(conv, raw)
	if err != nil {
		var ce *domain.ConversionError
		if errors.As(err, &ce) {
			return "", domain.NewValidationError("content", ce.Error())
		}
		return "", err
	}
	if err := s.converters.Validate(p); err != nil {
		return "", err
	}
	return content.Encode(p)
}

// rewrite applies fn to a section's structured form. Empty sections start
// from the converter's empty state and become structured. Free-form content
// is opaque editor HTML and is left byte-for-byte as it is; applied is then
// false.
func (s *Service) rewrite(ctx context.Context, doc *domain.SyllabusDocument, section domain.SectionID, fn func(content.Payload) content.Payload) (applied bool, err error) {
	conv, ok := s.converters.For(section)
	if !ok {
		return false, nil
	}

	raw := doc.Section(section)
	var p content.Payload
	switch {
	case content.ModeOf(raw) == content.ModeStructured:
		var decodeErr error
		p, decodeErr = content.DecodeOrEmpty(conv, raw)
		if decodeErr != nil {
			s.log.WarnContext(ctx, "section content degraded to empty state",
				slog.String("syllabus_id", doc.ID.String()),
				slog.String("section", section.String()),
				slog.String("error", decodeErr.Error()),
			)
		}
	case strings.TrimSpace(raw) == "":
		p = conv.EmptyState()
	default:
		return false, nil
	}

	out, err := content.Encode(fn(p))
	if err != nil {
		return false, err
	}
	doc.SetSection(section, out)
	return true, nil
}
