package syllabus

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
	"github.com/heartmarshall/syllabus-backend/pkg/ctxutil"
)

// Create starts a document owned by the caller with every registered section
// present and empty. The professor roster is seeded from the header.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.SyllabusDocument, error) {
	caller, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	doc := domain.NewSyllabusDocument(
		strings.TrimSpace(input.Curso),
		strings.TrimSpace(input.Title),
		caller.ID,
		input.Header,
		s.sections,
	)
	doc.ID = uuid.New()
	doc.CreatedAt = s.now()
	doc.UpdatedAt = doc.CreatedAt

	if err := s.syncProfessors(ctx, doc); err != nil {
		return nil, err
	}

	created, err := s.docs.Create(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("create syllabus: %w", err)
	}

	s.log.InfoContext(ctx, "syllabus created",
		slog.String("user_id", caller.ID),
		slog.String("syllabus_id", created.ID.String()),
		slog.String("curso", created.Curso),
	)

	return created, nil
}
