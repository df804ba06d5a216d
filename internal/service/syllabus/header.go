package syllabus

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/syllabus-backend/internal/content"
	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// UpdateHeader replaces the document header and re-syncs the professor
// roster with the header's professor names.
func (s *Service) UpdateHeader(ctx context.Context, id uuid.UUID, header domain.Header) (*domain.SyllabusDocument, error) {
	if errs := validateHeader(header); len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	doc, caller, err := s.loadForEdit(ctx, id)
	if err != nil {
		return nil, err
	}

	doc.Header = header
	if err := s.syncProfessors(ctx, doc); err != nil {
		return nil, err
	}

	updated, err := s.save(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("update header: %w", err)
	}

	s.log.InfoContext(ctx, "syllabus header updated",
		slog.String("user_id", caller.ID),
		slog.String("syllabus_id", id.String()),
		slog.Int("professors", len(header.Professores)),
	)

	return updated, nil
}

// syncProfessors reconciles a structured or empty roster against the
// header's names. Details of listed professors are kept, unlisted ones are
// dropped and new names are appended with empty details. A free-form roster
// is the instructor's own text and is not touched.
func (s *Service) syncProfessors(ctx context.Context, doc *domain.SyllabusDocument) error {
	names := make([]string, 0, len(doc.Header.Professores))
	for _, n := range doc.Header.Professores {
		if n = strings.Join(strings.Fields(n), " "); n != "" {
			names = append(names, n)
		}
	}

	applied, err := s.rewrite(ctx, doc, domain.SectionProfessors, func(p content.Payload) content.Payload {
		roster, _ := p.(content.ProfessorRosterPayload)
		entries := domain.Reconcile(roster.Entries(), names,
			func(e content.ProfessorEntry) string { return e.Name },
			func(name string) content.ProfessorEntry { return content.ProfessorEntry{Name: name} },
		)
		return content.RosterFromEntries(entries)
	})
	if err != nil {
		return fmt.Errorf("sync professors: %w", err)
	}
	if !applied {
		s.log.DebugContext(ctx, "free-form roster left as written",
			slog.String("syllabus_id", doc.ID.String()),
		)
	}
	return nil
}
