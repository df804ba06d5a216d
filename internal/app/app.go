package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/syllabus-backend/internal/adapter/cache/redis"
	"github.com/heartmarshall/syllabus-backend/internal/adapter/postgres"
	"github.com/heartmarshall/syllabus-backend/internal/adapter/postgres/course"
	"github.com/heartmarshall/syllabus-backend/internal/adapter/postgres/layouthistory"
	"github.com/heartmarshall/syllabus-backend/internal/adapter/postgres/layoutmodel"
	syllabusrepo "github.com/heartmarshall/syllabus-backend/internal/adapter/postgres/syllabus"
	"github.com/heartmarshall/syllabus-backend/internal/adapter/provider/crossref"
	"github.com/heartmarshall/syllabus-backend/internal/adapter/provider/openlibrary"
	"github.com/heartmarshall/syllabus-backend/internal/adapter/search/meili"
	"github.com/heartmarshall/syllabus-backend/internal/app/catalog"
	"github.com/heartmarshall/syllabus-backend/internal/auth"
	"github.com/heartmarshall/syllabus-backend/internal/config"
	"github.com/heartmarshall/syllabus-backend/internal/content"
	"github.com/heartmarshall/syllabus-backend/internal/domain"
	"github.com/heartmarshall/syllabus-backend/internal/service/bibliography"
	"github.com/heartmarshall/syllabus-backend/internal/service/layout"
	"github.com/heartmarshall/syllabus-backend/internal/service/syllabus"
	"github.com/heartmarshall/syllabus-backend/internal/transport/middleware"
	"github.com/heartmarshall/syllabus-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to
// PostgreSQL and the optional search backends, serves HTTP until ctx is
// canceled and then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	courses := course.New(pool)

	if cfg.Syllabus.CatalogPath != "" {
		if err := importCatalog(ctx, logger, cfg.Syllabus.CatalogPath, courses, txm); err != nil {
			return err
		}
	}

	layoutSvc := layout.NewService(logger, layoutmodel.New(pool), layouthistory.New(pool), txm)
	syllabusSvc := syllabus.NewService(
		logger,
		syllabusrepo.New(pool),
		courses,
		layoutSvc,
		domain.DefaultSectionRegistry(nil),
		content.NewRegistry(content.WeightBounds{
			Min:     cfg.Syllabus.WeightMin,
			Max:     cfg.Syllabus.WeightMax,
			Enabled: cfg.Syllabus.WeightBoundsEnabled,
		}),
		cfg.Syllabus.RestrictedCourses,
	)

	var healthOpts []rest.HealthOption
	bibSvc, components, closeBib := newBibliography(ctx, logger, cfg)
	defer closeBib()
	for name, p := range components {
		healthOpts = append(healthOpts, rest.WithComponent(name, p))
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	mux := rest.NewRouter(rest.Handlers{
		Health:       rest.NewHealthHandler(pool, BuildVersion(), healthOpts...),
		Layout:       rest.NewLayoutHandler(layoutSvc, logger),
		Syllabus:     rest.NewSyllabusHandler(syllabusSvc, logger),
		Bibliography: rest.NewBibliographyHandler(bibSvc, logger),
	}, limiter.Limit(cfg.Bibliography.RateLimitPerMinute))

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
		middleware.Except(middleware.Logger(logger), "/live", "/ready"),
		middleware.RequireCallerForWrites(),
	)(mux)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, logger, server, cfg.Server.ShutdownTimeout)
}

// serve runs server until ctx is done or ListenAndServe fails.
func serve(ctx context.Context, logger *slog.Logger, server *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return <-errCh
}

type pinger interface {
	Ping(ctx context.Context) error
}

// newBibliography wires the enabled search providers and the optional Redis
// cache. Backends that are unreachable at startup are left out with a warning
// so the document editor still starts. components are the optional backends
// reported by /health.
func newBibliography(ctx context.Context, logger *slog.Logger, cfg *config.Config) (*bibliography.Service, map[string]pinger, func()) {
	bc := cfg.Bibliography
	components := map[string]pinger{}
	closeFn := func() {}

	var providers []bibliography.Provider
	if bc.OpenLibraryEnabled {
		providers = append(providers, openlibrary.NewProviderWithURL(bc.OpenLibraryURL, logger))
	}
	if bc.CrossrefEnabled {
		providers = append(providers, crossref.NewProviderWithURL(bc.CrossrefURL, bc.CrossrefMailto, logger))
	}
	if cfg.Meilisearch.URL != "" {
		library := meili.NewProvider(cfg.Meilisearch.URL, cfg.Meilisearch.APIKey, cfg.Meilisearch.Index, logger)
		providers = append(providers, library)
		components["meilisearch"] = library
	}

	svcCfg := bibliography.Config{
		ProviderTimeout: bc.ProviderTimeout,
		DefaultLimit:    bc.DefaultLimit,
		MaxLimit:        bc.MaxLimit,
	}

	if cfg.Redis.URL == "" {
		return bibliography.NewService(logger, nil, svcCfg, providers...), components, closeFn
	}

	cache, err := redis.New(ctx, cfg.Redis.URL, bc.CacheTTL)
	if err != nil {
		logger.Warn("bibliography cache disabled", slog.String("error", err.Error()))
		return bibliography.NewService(logger, nil, svcCfg, providers...), components, closeFn
	}
	components["redis"] = cache
	closeFn = func() {
		if err := cache.Close(); err != nil {
			logger.Warn("close redis", slog.String("error", err.Error()))
		}
	}
	return bibliography.NewService(logger, cache, svcCfg, providers...), components, closeFn
}

func importCatalog(ctx context.Context, logger *slog.Logger, path string, courses *course.Repo, txm *postgres.TxManager) error {
	parsed, err := catalog.LoadFile(path)
	if err != nil {
		return err
	}
	if _, err := catalog.NewImporter(logger, courses, txm).Import(ctx, parsed, false); err != nil {
		return fmt.Errorf("import catalog: %w", err)
	}
	return nil
}
