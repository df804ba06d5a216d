package layout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
	"github.com/heartmarshall/syllabus-backend/pkg/ctxutil"
)

// CreateOrUpdate saves a layout model. Without an ID a new inactive draft is
// created; with one, the existing model is replaced. Active models and
// course reassignment are rejected with a conflict.
func (s *Service) CreateOrUpdate(ctx context.Context, input CreateOrUpdateInput) (*domain.LayoutModel, error) {
	caller, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.ID == nil {
		return s.create(ctx, caller, input)
	}
	return s.update(ctx, caller, input)
}

func (s *Service) create(ctx context.Context, caller ctxutil.Caller, input CreateOrUpdateInput) (*domain.LayoutModel, error) {
	m := input.model()
	m.ID = uuid.New()
	m.IsActive = false
	m.CreatedAt = s.now()
	m.UpdatedAt = m.CreatedAt

	var created *domain.LayoutModel
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.models.Create(txCtx, m)
		if createErr != nil {
			return fmt.Errorf("create layout model: %w", createErr)
		}
		if err := s.appendHistory(txCtx, domain.LayoutActionCreated, created, caller.ID); err != nil {
			return fmt.Errorf("append history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "layout model created",
		slog.String("performed_by", caller.ID),
		slog.String("model_id", created.ID.String()),
		slog.String("curso", created.Curso),
	)

	return created, nil
}

func (s *Service) update(ctx context.Context, caller ctxutil.Caller, input CreateOrUpdateInput) (*domain.LayoutModel, error) {
	next := input.model()

	var updated *domain.LayoutModel
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, getErr := s.models.GetByIDForUpdate(txCtx, next.ID)
		if getErr != nil {
			return fmt.Errorf("get layout model: %w", getErr)
		}
		if current.IsActive {
			return domain.NewConflictError("layout model %s is active", current.ID)
		}
		if current.Curso != next.Curso {
			return domain.NewConflictError("layout model %s belongs to course %s", current.ID, current.Curso)
		}

		next.CreatedAt = current.CreatedAt
		next.UpdatedAt = s.now()

		var updateErr error
		updated, updateErr = s.models.Update(txCtx, next)
		if updateErr != nil {
			return fmt.Errorf("update layout model: %w", updateErr)
		}
		if err := s.appendHistory(txCtx, domain.LayoutActionUpdated, updated, caller.ID); err != nil {
			return fmt.Errorf("append history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "layout model updated",
		slog.String("performed_by", caller.ID),
		slog.String("model_id", updated.ID.String()),
		slog.String("curso", updated.Curso),
	)

	return updated, nil
}

// requireAdmin returns the caller when it may manage layout models.
func requireAdmin(ctx context.Context) (ctxutil.Caller, error) {
	caller, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return ctxutil.Caller{}, domain.ErrUnauthorized
	}
	if !caller.IsAdmin() {
		return ctxutil.Caller{}, domain.ErrForbidden
	}
	return caller, nil
}

// isNotFound reports whether err means the row does not exist.
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
