// Package layoutmodel implements the layout model repository using PostgreSQL.
// Section order and visibility are stored as JSONB.
package layoutmodel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/syllabus-backend/internal/adapter/postgres"
	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

const table = "layout_models"

var columns = []string{
	"id", "curso", "nome", "tabs_order", "tabs_visibility",
	"allow_custom_tabs", "is_active", "created_at", "updated_at", "activated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// ErrNoTx is returned by LockCourse outside a transaction.
var ErrNoTx = errors.New("layout model: course lock requires a transaction")

type row struct {
	ID              uuid.UUID  `db:"id"`
	Curso           string     `db:"curso"`
	Nome            string     `db:"nome"`
	TabsOrder       []byte     `db:"tabs_order"`
	TabsVisibility  []byte     `db:"tabs_visibility"`
	AllowCustomTabs bool       `db:"allow_custom_tabs"`
	IsActive        bool       `db:"is_active"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
	ActivatedAt     *time.Time `db:"activated_at"`
}

// Repo provides layout model persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new layout model repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a model by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LayoutModel, error) {
	return r.getOne(ctx, selectModels().Where(squirrel.Eq{"id": id}), id.String())
}

// GetByIDForUpdate is GetByID holding a row lock until the transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.LayoutModel, error) {
	return r.getOne(ctx, selectModels().Where(squirrel.Eq{"id": id}).Suffix("FOR UPDATE"), id.String())
}

// GetActive returns the active model of a course.
// Returns domain.ErrNotFound when the course has none.
func (r *Repo) GetActive(ctx context.Context, curso string) (*domain.LayoutModel, error) {
	q := selectModels().Where(squirrel.Eq{"curso": curso, "is_active": true})
	return r.getOne(ctx, q, curso)
}

// ListByCourse returns all models of a course, newest first.
// Returns an empty slice (not nil) when the course has none.
func (r *Repo) ListByCourse(ctx context.Context, curso string) ([]*domain.LayoutModel, error) {
	sql, args, err := selectModels().
		Where(squirrel.Eq{"curso": curso}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list layout models: %w", err)
	}

	models := make([]*domain.LayoutModel, 0, len(rows))
	for _, rw := range rows {
		m, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	return models, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a model and returns the persisted row.
func (r *Repo) Create(ctx context.Context, m *domain.LayoutModel) (*domain.LayoutModel, error) {
	order, visibility, err := encodeTabs(m)
	if err != nil {
		return nil, err
	}

	q := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(m.ID, m.Curso, m.Nome, order, visibility,
			m.AllowCustomTabs, m.IsActive, m.CreatedAt, m.UpdatedAt, m.ActivatedAt).
		Suffix(returning)

	return r.getOne(ctx, q, m.ID.String())
}

// Update replaces the editable fields of a model. Activation state is not
// touched.
func (r *Repo) Update(ctx context.Context, m *domain.LayoutModel) (*domain.LayoutModel, error) {
	order, visibility, err := encodeTabs(m)
	if err != nil {
		return nil, err
	}

	q := postgres.Builder().
		Update(table).
		Set("nome", m.Nome).
		Set("tabs_order", order).
		Set("tabs_visibility", visibility).
		Set("allow_custom_tabs", m.AllowCustomTabs).
		Set("updated_at", m.UpdatedAt).
		Where(squirrel.Eq{"id": m.ID}).
		Suffix(returning)

	return r.getOne(ctx, q, m.ID.String())
}

// LockCourse takes a transaction-scoped advisory lock on the course so
// activations of the same course serialise.
func (r *Repo) LockCourse(ctx context.Context, curso string) error {
	if !postgres.InTx(ctx) {
		return ErrNoTx
	}
	_, err := postgres.QuerierFromCtx(ctx, r.pool).
		Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", curso)
	if err != nil {
		return postgres.MapError(err, "course", curso)
	}
	return nil
}

// DeactivateOthers clears the active flag of every other model of the course.
func (r *Repo) DeactivateOthers(ctx context.Context, curso string, keep uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"curso": curso, "is_active": true}).
		Where(squirrel.NotEq{"id": keep}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build deactivate query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "course", curso)
	}
	return nil
}

// SetActive marks a model active and stamps activated_at.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, at time.Time) (*domain.LayoutModel, error) {
	q := postgres.Builder().
		Update(table).
		Set("is_active", true).
		Set("activated_at", at).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning)

	return r.getOne(ctx, q, id.String())
}

// Delete removes a model. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "layout model", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("layout model %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func selectModels() squirrel.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table)
}

func (r *Repo) getOne(ctx context.Context, q squirrel.Sqlizer, id string) (*domain.LayoutModel, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "layout model", id)
	}
	return toDomain(rw)
}

func encodeTabs(m *domain.LayoutModel) (string, string, error) {
	order := m.TabsOrder
	if order == nil {
		order = []domain.SectionID{}
	}
	orderJSON, err := json.Marshal(order)
	if err != nil {
		return "", "", fmt.Errorf("encode tabs_order: %w", err)
	}

	visibility := m.TabsVisibility
	if visibility == nil {
		visibility = map[domain.SectionID]bool{}
	}
	visibilityJSON, err := json.Marshal(visibility)
	if err != nil {
		return "", "", fmt.Errorf("encode tabs_visibility: %w", err)
	}

	return string(orderJSON), string(visibilityJSON), nil
}

func toDomain(rw row) (*domain.LayoutModel, error) {
	m := &domain.LayoutModel{
		ID:              rw.ID,
		Curso:           rw.Curso,
		Nome:            rw.Nome,
		AllowCustomTabs: rw.AllowCustomTabs,
		IsActive:        rw.IsActive,
		CreatedAt:       rw.CreatedAt,
		UpdatedAt:       rw.UpdatedAt,
		ActivatedAt:     rw.ActivatedAt,
	}
	if len(rw.TabsOrder) > 0 {
		if err := json.Unmarshal(rw.TabsOrder, &m.TabsOrder); err != nil {
			return nil, fmt.Errorf("decode tabs_order of %s: %w", rw.ID, err)
		}
	}
	if len(rw.TabsVisibility) > 0 {
		if err := json.Unmarshal(rw.TabsVisibility, &m.TabsVisibility); err != nil {
			return nil, fmt.Errorf("decode tabs_visibility of %s: %w", rw.ID, err)
		}
	}
	return m, nil
}
