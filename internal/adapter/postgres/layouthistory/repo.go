// Package layouthistory implements the append-only layout history log using
// PostgreSQL.
package layouthistory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/syllabus-backend/internal/adapter/postgres"
	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

const table = "layout_history"

type row struct {
	ID          uuid.UUID `db:"id"`
	Curso       string    `db:"curso"`
	ModelID     uuid.UUID `db:"model_id"`
	Action      string    `db:"action"`
	Snapshot    []byte    `db:"snapshot"`
	PerformedBy string    `db:"performed_by"`
	CreatedAt   time.Time `db:"created_at"`
}

// Repo provides layout history persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new layout history repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// Append inserts one history entry. Entries are never updated or deleted.
func (r *Repo) Append(ctx context.Context, e domain.LayoutHistoryEntry) error {
	if !e.Action.IsValid() {
		return domain.NewValidationError("action", "unknown layout action "+e.Action.String())
	}

	snapshot, err := json.Marshal(e.Snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "curso", "model_id", "action", "snapshot", "performed_by", "created_at").
		Values(e.ID, e.Curso, e.ModelID, e.Action.String(), string(snapshot), e.PerformedBy, e.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build append query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "layout history", e.ID.String())
	}
	return nil
}

// ListByCourse returns the course's entries newest first. Entries with the
// same timestamp are ordered by insertion, newest first.
func (r *Repo) ListByCourse(ctx context.Context, curso string) ([]domain.LayoutHistoryEntry, error) {
	sql, args, err := postgres.Builder().
		Select("id", "curso", "model_id", "action", "snapshot", "performed_by", "created_at").
		From(table).
		Where(squirrel.Eq{"curso": curso}).
		OrderBy("created_at DESC", "seq DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list layout history: %w", err)
	}

	entries := make([]domain.LayoutHistoryEntry, 0, len(rows))
	for _, rw := range rows {
		e := domain.LayoutHistoryEntry{
			ID:          rw.ID,
			Curso:       rw.Curso,
			ModelID:     rw.ModelID,
			Action:      domain.LayoutAction(rw.Action),
			PerformedBy: rw.PerformedBy,
			CreatedAt:   rw.CreatedAt,
		}
		if err := json.Unmarshal(rw.Snapshot, &e.Snapshot); err != nil {
			return nil, fmt.Errorf("decode snapshot of %s: %w", rw.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
