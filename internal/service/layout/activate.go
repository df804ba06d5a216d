package layout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// Activate makes the model the single active layout of its course.
//
// Everything runs in one transaction serialised per course: the course lock
// is taken first, every other model of the course is deactivated, the target
// is activated and an "activated" entry is appended. A model that does not
// exist is a conflict. Re-activating the active model is allowed and still
// records one entry.
func (s *Service) Activate(ctx context.Context, modelID uuid.UUID) (*domain.LayoutModel, error) {
	caller, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if modelID == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	var activated *domain.LayoutModel
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		probe, getErr := s.models.GetByID(txCtx, modelID)
		if getErr != nil {
			if isNotFound(getErr) {
				return domain.NewConflictError("layout model %s does not exist", modelID)
			}
			return fmt.Errorf("get layout model: %w", getErr)
		}

		if err := s.models.LockCourse(txCtx, probe.Curso); err != nil {
			return fmt.Errorf("lock course %s: %w", probe.Curso, err)
		}

		// Re-read under the row lock: a concurrent delete may have won.
		target, getErr := s.models.GetByIDForUpdate(txCtx, modelID)
		if getErr != nil {
			if isNotFound(getErr) {
				return domain.NewConflictError("layout model %s does not exist", modelID)
			}
			return fmt.Errorf("lock layout model: %w", getErr)
		}

		if err := s.models.DeactivateOthers(txCtx, target.Curso, target.ID); err != nil {
			return fmt.Errorf("deactivate models of %s: %w", target.Curso, err)
		}

		var setErr error
		activated, setErr = s.models.SetActive(txCtx, target.ID, s.now())
		if setErr != nil {
			return fmt.Errorf("activate layout model: %w", setErr)
		}

		if err := s.appendHistory(txCtx, domain.LayoutActionActivated, activated, caller.ID); err != nil {
			return fmt.Errorf("append history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "layout model activated",
		slog.String("performed_by", caller.ID),
		slog.String("model_id", activated.ID.String()),
		slog.String("curso", activated.Curso),
	)

	return activated, nil
}
