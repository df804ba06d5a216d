package syllabus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// SetCustom adds or replaces the document's custom section. The course's
// active layout must allow custom sections.
func (s *Service) SetCustom(ctx context.Context, id uuid.UUID, input CustomInput) (*domain.SyllabusDocument, error) {
	if err := input.validate(s.sections); err != nil {
		return nil, err
	}

	doc, caller, err := s.loadForEdit(ctx, id)
	if err != nil {
		return nil, err
	}

	active, err := s.layouts.GetActive(ctx, doc.Curso)
	if err != nil {
		return nil, fmt.Errorf("get active layout: %w", err)
	}
	if !active.CustomTabsAllowed() {
		return nil, domain.NewConflictError("course %s does not allow custom sections", doc.Curso)
	}

	doc.Custom = input.tab()
	updated, err := s.save(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("set custom section: %w", err)
	}

	s.log.InfoContext(ctx, "custom section set",
		slog.String("user_id", caller.ID),
		slog.String("syllabus_id", id.String()),
		slog.String("position", doc.Custom.Position),
	)

	return updated, nil
}

// RemoveCustom deletes the document's custom section. Removing an absent
// section is a no-op.
func (s *Service) RemoveCustom(ctx context.Context, id uuid.UUID) (*domain.SyllabusDocument, error) {
	doc, caller, err := s.loadForEdit(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.Custom == nil {
		return doc, nil
	}

	doc.Custom = nil
	updated, err := s.save(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("remove custom section: %w", err)
	}

	s.log.InfoContext(ctx, "custom section removed",
		slog.String("user_id", caller.ID),
		slog.String("syllabus_id", id.String()),
	)

	return updated, nil
}
