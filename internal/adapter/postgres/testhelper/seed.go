package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCourse inserts a course with two competencies under a unique code.
func SeedCourse(t *testing.T, pool *pgxpool.Pool, restricted bool) domain.Course {
	t.Helper()
	ctx := context.Background()

	course := domain.Course{
		Code:       "CUR-" + uniqueSuffix(),
		Name:       "Curso de teste",
		Restricted: restricted,
		Competencies: []domain.Competency{
			{ID: "C1", Descricao: "Analisar problemas"},
			{ID: "C2", Descricao: "Comunicar resultados"},
		},
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO courses (code, name, restricted) VALUES ($1, $2, $3)`,
		course.Code, course.Name, course.Restricted,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCourse insert course: %v", err)
	}

	for i, c := range course.Competencies {
		_, err := pool.Exec(ctx,
			`INSERT INTO course_competencies (course_code, id, descricao, position) VALUES ($1, $2, $3, $4)`,
			course.Code, c.ID, c.Descricao, i,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedCourse insert competency: %v", err)
		}
	}

	return course
}

// SeedLayoutModel inserts an inactive layout model for curso with the
// default section order.
func SeedLayoutModel(t *testing.T, pool *pgxpool.Pool, curso string) domain.LayoutModel {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	m := domain.LayoutModel{
		ID:    uuid.New(),
		Curso: curso,
		Nome:  "Modelo " + uniqueSuffix(),
		TabsOrder: []domain.SectionID{
			domain.SectionHeader,
			domain.SectionAbout,
			domain.SectionEvaluation,
		},
		TabsVisibility: map[domain.SectionID]bool{domain.SectionAbout: false},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	order, err := json.Marshal(m.TabsOrder)
	if err != nil {
		t.Fatalf("testhelper: SeedLayoutModel marshal order: %v", err)
	}
	visibility, err := json.Marshal(m.TabsVisibility)
	if err != nil {
		t.Fatalf("testhelper: SeedLayoutModel marshal visibility: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO layout_models (id, curso, nome, tabs_order, tabs_visibility, allow_custom_tabs, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7, $8)`,
		m.ID, m.Curso, m.Nome, order, visibility, m.AllowCustomTabs, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLayoutModel insert: %v", err)
	}

	return m
}
