// Command catalog imports the course catalog (courses, restricted flag and
// competency lists) from a YAML file. Courses already present are updated
// and their competency lists replaced.
//
// Flags:
//
//	--file     catalog file (default: syllabus.catalog_path)
//	--dry-run  validate the file without writing to the database
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/syllabus-backend/internal/adapter/postgres"
	"github.com/heartmarshall/syllabus-backend/internal/adapter/postgres/course"
	"github.com/heartmarshall/syllabus-backend/internal/app"
	"github.com/heartmarshall/syllabus-backend/internal/app/catalog"
	"github.com/heartmarshall/syllabus-backend/internal/config"
)

func main() {
	fileFlag := flag.String("file", "", "catalog YAML file")
	dryRun := flag.Bool("dry-run", false, "validate without writing to DB")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	path := *fileFlag
	if path == "" {
		path = cfg.Syllabus.CatalogPath
	}
	if path == "" {
		logger.Error("no catalog file: pass --file or set SYLLABUS_CATALOG_PATH")
		os.Exit(1)
	}

	courses, err := catalog.LoadFile(path)
	if err != nil {
		logger.Error("load catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	importer := catalog.NewImporter(logger, course.New(pool), txm)

	if _, err := importer.Import(ctx, courses, *dryRun); err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
