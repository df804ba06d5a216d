// Package layout manages the per-course layout models that decide which
// syllabus sections are shown and in what order, and keeps their history.
package layout

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

type modelRepo interface {
	Create(ctx context.Context, m *domain.LayoutModel) (*domain.LayoutModel, error)
	Update(ctx context.Context, m *domain.LayoutModel) (*domain.LayoutModel, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LayoutModel, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.LayoutModel, error)
	GetActive(ctx context.Context, curso string) (*domain.LayoutModel, error)
	ListByCourse(ctx context.Context, curso string) ([]*domain.LayoutModel, error)
	LockCourse(ctx context.Context, curso string) error
	DeactivateOthers(ctx context.Context, curso string, keep uuid.UUID) error
	SetActive(ctx context.Context, id uuid.UUID, at time.Time) (*domain.LayoutModel, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type historyRepo interface {
	Append(ctx context.Context, entry domain.LayoutHistoryEntry) error
	ListByCourse(ctx context.Context, curso string) ([]domain.LayoutHistoryEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides layout model management.
type Service struct {
	models  modelRepo
	history historyRepo
	tx      txManager
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new layout Service.
func NewService(
	log *slog.Logger,
	models modelRepo,
	history historyRepo,
	tx txManager,
) *Service {
	return &Service{
		models:  models,
		history: history,
		tx:      tx,
		log:     log.With("service", "layout"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// appendHistory records a transition of m. Must run inside the mutation's
// transaction.
func (s *Service) appendHistory(ctx context.Context, action domain.LayoutAction, m *domain.LayoutModel, performedBy string) error {
	return s.history.Append(ctx, domain.LayoutHistoryEntry{
		ID:          uuid.New(),
		Curso:       m.Curso,
		ModelID:     m.ID,
		Action:      action,
		Snapshot:    *m,
		PerformedBy: performedBy,
		CreatedAt:   s.now(),
	})
}
