// Package course implements the course catalog repository using PostgreSQL:
// the restricted flag and the ordered competency list of each course.
package course

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/syllabus-backend/internal/adapter/postgres"
	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

type courseRow struct {
	Code       string `db:"code"`
	Name       string `db:"name"`
	Restricted bool   `db:"restricted"`
}

type competencyRow struct {
	ID        string `db:"id"`
	Descricao string `db:"descricao"`
}

// Repo provides course catalog persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new course repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// GetByCode returns a course with its competencies in catalog order.
// Returns domain.ErrNotFound if the course is unknown.
func (r *Repo) GetByCode(ctx context.Context, code string) (*domain.Course, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("code", "name", "restricted").
		From("courses").
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build course query: %w", err)
	}

	var c courseRow
	if err := pgxscan.Get(ctx, q, &c, sql, args...); err != nil {
		return nil, postgres.MapError(err, "course", code)
	}

	sql, args, err = postgres.Builder().
		Select("id", "descricao").
		From("course_competencies").
		Where(squirrel.Eq{"course_code": code}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build competency query: %w", err)
	}

	var comps []competencyRow
	if err := pgxscan.Select(ctx, q, &comps, sql, args...); err != nil {
		return nil, fmt.Errorf("list competencies of %s: %w", code, err)
	}

	course := &domain.Course{
		Code:         c.Code,
		Name:         c.Name,
		Restricted:   c.Restricted,
		Competencies: make([]domain.Competency, 0, len(comps)),
	}
	for _, cr := range comps {
		course.Competencies = append(course.Competencies, domain.Competency{ID: cr.ID, Descricao: cr.Descricao})
	}
	return course, nil
}

// Upsert stores a course and replaces its competency list. Call it inside a
// transaction so readers never see a partial list.
func (r *Repo) Upsert(ctx context.Context, c domain.Course) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert("courses").
		Columns("code", "name", "restricted").
		Values(c.Code, c.Name, c.Restricted).
		Suffix("ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, restricted = EXCLUDED.restricted").
		ToSql()
	if err != nil {
		return fmt.Errorf("build course upsert: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "course", c.Code)
	}

	sql, args, err = postgres.Builder().
		Delete("course_competencies").
		Where(squirrel.Eq{"course_code": c.Code}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build competency delete: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "course", c.Code)
	}

	if len(c.Competencies) == 0 {
		return nil
	}

	insert := postgres.Builder().
		Insert("course_competencies").
		Columns("course_code", "id", "descricao", "position")
	for i, comp := range c.Competencies {
		insert = insert.Values(c.Code, comp.ID, comp.Descricao, i)
	}
	sql, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("build competency insert: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "course", c.Code)
	}
	return nil
}
