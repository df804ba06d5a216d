package layout

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// GetActive returns the active model of a course, or nil when the course
// has none.
func (s *Service) GetActive(ctx context.Context, curso string) (*domain.LayoutModel, error) {
	curso, err := requireCurso(curso)
	if err != nil {
		return nil, err
	}

	m, err := s.models.GetActive(ctx, curso)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active layout model: %w", err)
	}
	return m, nil
}

// ListModels returns every model of a course, newest first.
func (s *Service) ListModels(ctx context.Context, curso string) ([]*domain.LayoutModel, error) {
	curso, err := requireCurso(curso)
	if err != nil {
		return nil, err
	}

	models, err := s.models.ListByCourse(ctx, curso)
	if err != nil {
		return nil, fmt.Errorf("list layout models: %w", err)
	}
	return models, nil
}

// History returns the course's transitions, newest first.
func (s *Service) History(ctx context.Context, curso string) ([]domain.LayoutHistoryEntry, error) {
	curso, err := requireCurso(curso)
	if err != nil {
		return nil, err
	}

	entries, err := s.history.ListByCourse(ctx, curso)
	if err != nil {
		return nil, fmt.Errorf("list layout history: %w", err)
	}
	return entries, nil
}

func requireCurso(curso string) (string, error) {
	curso = strings.TrimSpace(curso)
	if curso == "" {
		return "", domain.NewValidationError("curso", "required")
	}
	return curso, nil
}
