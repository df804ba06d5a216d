package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

type courseWriter interface {
	Upsert(ctx context.Context, c domain.Course) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result summarises an import run.
type Result struct {
	Courses      int
	Competencies int
	DryRun       bool
	Duration     time.Duration
}

// Importer writes a parsed catalog in a single transaction, so the catalog
// is replaced all-or-nothing.
type Importer struct {
	log     *slog.Logger
	courses courseWriter
	tx      txManager
}

// NewImporter creates an Importer.
func NewImporter(log *slog.Logger, courses courseWriter, tx txManager) *Importer {
	return &Importer{
		log:     log.With("service", "catalog"),
		courses: courses,
		tx:      tx,
	}
}

// Import upserts every course. In dry-run mode nothing is written.
func (im *Importer) Import(ctx context.Context, courses []domain.Course, dryRun bool) (Result, error) {
	start := time.Now()
	res := Result{DryRun: dryRun}
	for _, c := range courses {
		res.Courses++
		res.Competencies += len(c.Competencies)
	}

	if dryRun {
		res.Duration = time.Since(start)
		im.log.InfoContext(ctx, "catalog dry run",
			slog.Int("courses", res.Courses),
			slog.Int("competencies", res.Competencies),
		)
		return res, nil
	}

	err := im.tx.RunInTx(ctx, func(ctx context.Context) error {
		for _, c := range courses {
			if err := im.courses.Upsert(ctx, c); err != nil {
				return fmt.Errorf("upsert course %s: %w", c.Code, err)
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	res.Duration = time.Since(start)
	im.log.InfoContext(ctx, "catalog imported",
		slog.Int("courses", res.Courses),
		slog.Int("competencies", res.Competencies),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}
