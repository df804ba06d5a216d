// Package syllabus implements the syllabus document repository using
// PostgreSQL. Header, sections and the custom section are JSONB columns.
package syllabus

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/syllabus-backend/internal/adapter/postgres"
	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

const table = "syllabi"

var columns = []string{
	"id", "curso", "title", "owner_id", "header", "sections", "custom_tab", "created_at", "updated_at",
}

type row struct {
	ID        uuid.UUID `db:"id"`
	Curso     string    `db:"curso"`
	Title     string    `db:"title"`
	OwnerID   string    `db:"owner_id"`
	Header    []byte    `db:"header"`
	Sections  []byte    `db:"sections"`
	CustomTab []byte    `db:"custom_tab"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Repo provides syllabus document persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new syllabus repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a document. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SyllabusDocument, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	return r.getOne(ctx, q, id)
}

// Create inserts a document and returns the persisted row.
func (r *Repo) Create(ctx context.Context, doc *domain.SyllabusDocument) (*domain.SyllabusDocument, error) {
	header, sections, custom, err := encode(doc)
	if err != nil {
		return nil, err
	}

	q := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(doc.ID, doc.Curso, doc.Title, doc.OwnerID, header, sections, custom, doc.CreatedAt, doc.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	return r.getOne(ctx, q, doc.ID)
}

// Update replaces title, header, sections and the custom section.
func (r *Repo) Update(ctx context.Context, doc *domain.SyllabusDocument) (*domain.SyllabusDocument, error) {
	header, sections, custom, err := encode(doc)
	if err != nil {
		return nil, err
	}

	q := postgres.Builder().
		Update(table).
		Set("title", doc.Title).
		Set("header", header).
		Set("sections", sections).
		Set("custom_tab", custom).
		Set("updated_at", doc.UpdatedAt).
		Where(squirrel.Eq{"id": doc.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	return r.getOne(ctx, q, doc.ID)
}

func (r *Repo) getOne(ctx context.Context, q squirrel.Sqlizer, id uuid.UUID) (*domain.SyllabusDocument, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, "syllabus", id.String())
	}
	return toDomain(rw)
}

// encode returns the JSONB arguments; a nil custom section is SQL NULL.
func encode(doc *domain.SyllabusDocument) (string, string, *string, error) {
	header, err := json.Marshal(doc.Header)
	if err != nil {
		return "", "", nil, fmt.Errorf("encode header: %w", err)
	}

	sectionsMap := doc.Sections
	if sectionsMap == nil {
		sectionsMap = map[domain.SectionID]string{}
	}
	sections, err := json.Marshal(sectionsMap)
	if err != nil {
		return "", "", nil, fmt.Errorf("encode sections: %w", err)
	}

	var custom *string
	if doc.Custom != nil {
		b, err := json.Marshal(doc.Custom)
		if err != nil {
			return "", "", nil, fmt.Errorf("encode custom section: %w", err)
		}
		s := string(b)
		custom = &s
	}

	return string(header), string(sections), custom, nil
}

func toDomain(rw row) (*domain.SyllabusDocument, error) {
	doc := &domain.SyllabusDocument{
		ID:        rw.ID,
		Curso:     rw.Curso,
		Title:     rw.Title,
		OwnerID:   rw.OwnerID,
		CreatedAt: rw.CreatedAt,
		UpdatedAt: rw.UpdatedAt,
	}
	if err := json.Unmarshal(rw.Header, &doc.Header); err != nil {
		return nil, fmt.Errorf("decode header of %s: %w", rw.ID, err)
	}
	if err := json.Unmarshal(rw.Sections, &doc.Sections); err != nil {
		return nil, fmt.Errorf("decode sections of %s: %w", rw.ID, err)
	}
	if len(rw.CustomTab) > 0 {
		doc.Custom = &domain.CustomTab{}
		if err := json.Unmarshal(rw.CustomTab, doc.Custom); err != nil {
			return nil, fmt.Errorf("decode custom section of %s: %w", rw.ID, err)
		}
	}
	return doc, nil
}
