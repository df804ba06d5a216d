package layout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// Delete removes an inactive model. Its history is kept and a "deleted"
// entry carrying the last snapshot is appended.
func (s *Service) Delete(ctx context.Context, modelID uuid.UUID) error {
	caller, err := requireAdmin(ctx)
	if err != nil {
		return err
	}
	if modelID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	var deleted *domain.LayoutModel
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, getErr := s.models.GetByIDForUpdate(txCtx, modelID)
		if getErr != nil {
			return fmt.Errorf("get layout model: %w", getErr)
		}
		if current.IsActive {
			return domain.NewConflictError("layout model %s is active", current.ID)
		}

		if err := s.models.Delete(txCtx, modelID); err != nil {
			return fmt.Errorf("delete layout model: %w", err)
		}
		if err := s.appendHistory(txCtx, domain.LayoutActionDeleted, current, caller.ID); err != nil {
			return fmt.Errorf("append history: %w", err)
		}
		deleted = current
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "layout model deleted",
		slog.String("performed_by", caller.ID),
		slog.String("model_id", modelID.String()),
		slog.String("curso", deleted.Curso),
	)

	return nil
}
