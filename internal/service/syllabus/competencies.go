package syllabus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/syllabus-backend/internal/content"
	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// SyncCompetencies reconciles a structured or empty competency section with
// the course's canonical catalog. Grades of kept competencies are preserved;
// new ones start at grade 0. A free-form section is returned unchanged and
// nothing is written; the editor switches it to structured first.
func (s *Service) SyncCompetencies(ctx context.Context, id uuid.UUID) (*domain.SyllabusDocument, error) {
	doc, caller, err := s.loadForEdit(ctx, id)
	if err != nil {
		return nil, err
	}

	course, err := s.courses.GetByCode(ctx, doc.Curso)
	if err != nil {
		return nil, fmt.Errorf("get course catalog: %w", err)
	}

	canonical := make([]string, 0, len(course.Competencies))
	descriptions := make(map[string]string, len(course.Competencies))
	for _, c := range course.Competencies {
		canonical = append(canonical, c.ID)
		descriptions[c.ID] = c.Descricao
	}

	applied, err := s.rewrite(ctx, doc, domain.SectionCompetencies, func(p content.Payload) content.Payload {
		current, _ := p.(content.CompetencyPayload)
		rows := domain.Reconcile(current.Rows, canonical,
			func(r content.CompetencyRow) string { return r.ID },
			func(id string) content.CompetencyRow {
				return content.CompetencyRow{ID: id, Descricao: descriptions[id]}
			},
		)
		return content.CompetencyPayload{Rows: rows}
	})
	if err != nil {
		return nil, fmt.Errorf("sync competencies: %w", err)
	}
	if !applied {
		s.log.InfoContext(ctx, "competency sync skipped for free-form section",
			slog.String("user_id", caller.ID),
			slog.String("syllabus_id", id.String()),
		)
		return doc, nil
	}

	updated, err := s.save(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("sync competencies: %w", err)
	}

	s.log.InfoContext(ctx, "competencies synced",
		slog.String("user_id", caller.ID),
		slog.String("syllabus_id", id.String()),
		slog.Int("canonical", len(canonical)),
	)

	return updated, nil
}

// ValidateWeight parses an evaluation weight against the configured bounds
// and returns it as a percentage.
func (s *Service) ValidateWeight(weight string) (float64, error) {
	return content.ValidateWeight(weight, s.converters.Bounds())
}
