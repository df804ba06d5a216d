// Package syllabus composes syllabus documents: it stores per-section
// content, renders the visible section list under the course's active layout
// and keeps derived lists in sync with their canonical sources.
package syllabus

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/syllabus-backend/internal/content"
	"github.com/heartmarshall/syllabus-backend/internal/domain"
	"github.com/heartmarshall/syllabus-backend/pkg/ctxutil"
)

type documentRepo interface {
	Create(ctx context.Context, doc *domain.SyllabusDocument) (*domain.SyllabusDocument, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SyllabusDocument, error)
	Update(ctx context.Context, doc *domain.SyllabusDocument) (*domain.SyllabusDocument, error)
}

type courseRepo interface {
	GetByCode(ctx context.Context, code string) (*domain.Course, error)
}

// layoutReader returns the active model of a course, or nil when none.
type layoutReader interface {
	GetActive(ctx context.Context, curso string) (*domain.LayoutModel, error)
}

// Service provides syllabus document operations.
type Service struct {
	docs       documentRepo
	courses    courseRepo
	layouts    layoutReader
	sections   *domain.SectionRegistry
	converters *content.Registry
	restricted map[string]struct{}
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new syllabus Service. restrictedCourses lists course
// codes treated as restricted regardless of the catalog flag.
func NewService(
	log *slog.Logger,
	docs documentRepo,
	courses courseRepo,
	layouts layoutReader,
	sections *domain.SectionRegistry,
	converters *content.Registry,
	restrictedCourses []string,
) *Service {
	restricted := make(map[string]struct{}, len(restrictedCourses))
	for _, c := range restrictedCourses {
		if c = strings.TrimSpace(c); c != "" {
			restricted[c] = struct{}{}
		}
	}
	return &Service{
		docs:       docs,
		courses:    courses,
		layouts:    layouts,
		sections:   sections,
		converters: converters,
		restricted: restricted,
		log:        log.With("service", "syllabus"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// loadForEdit fetches a document the caller may modify: its owner or an admin.
func (s *Service) loadForEdit(ctx context.Context, id uuid.UUID) (*domain.SyllabusDocument, ctxutil.Caller, error) {
	caller, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return nil, ctxutil.Caller{}, domain.ErrUnauthorized
	}

	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, ctxutil.Caller{}, err
	}
	if doc.OwnerID != caller.ID && !caller.IsAdmin() {
		return nil, ctxutil.Caller{}, domain.ErrForbidden
	}
	return doc, caller, nil
}

func (s *Service) save(ctx context.Context, doc *domain.SyllabusDocument) (*domain.SyllabusDocument, error) {
	doc.UpdatedAt = s.now()
	return s.docs.Update(ctx, doc)
}

// isRestricted reports whether sections that require a non-restricted course
// are hidden. Courses missing from the catalog are unrestricted.
func (s *Service) isRestricted(ctx context.Context, curso string) (bool, error) {
	if _, ok := s.restricted[curso]; ok {
		return true, nil
	}
	c, err := s.courses.GetByCode(ctx, curso)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return c.Restricted, nil
}
