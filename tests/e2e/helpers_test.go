//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	rediscache "github.com/heartmarshall/syllabus-backend/internal/adapter/cache/redis"
	"github.com/heartmarshall/syllabus-backend/internal/adapter/postgres"
	"github.com/heartmarshall/syllabus-backend/internal/adapter/postgres/course"
	"github.com/heartmarshall/syllabus-backend/internal/adapter/postgres/layouthistory"
	"github.com/heartmarshall/syllabus-backend/internal/adapter/postgres/layoutmodel"
	syllabusrepo "github.com/heartmarshall/syllabus-backend/internal/adapter/postgres/syllabus"
	"github.com/heartmarshall/syllabus-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/syllabus-backend/internal/adapter/provider/crossref"
	"github.com/heartmarshall/syllabus-backend/internal/adapter/provider/openlibrary"
	authpkg "github.com/heartmarshall/syllabus-backend/internal/auth"
	"github.com/heartmarshall/syllabus-backend/internal/config"
	"github.com/heartmarshall/syllabus-backend/internal/content"
	"github.com/heartmarshall/syllabus-backend/internal/domain"
	"github.com/heartmarshall/syllabus-backend/internal/service/bibliography"
	"github.com/heartmarshall/syllabus-backend/internal/service/layout"
	"github.com/heartmarshall/syllabus-backend/internal/service/syllabus"
	"github.com/heartmarshall/syllabus-backend/internal/transport/middleware"
	"github.com/heartmarshall/syllabus-backend/internal/transport/rest"
	"github.com/heartmarshall/syllabus-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Redis  *miniredis.Miniredis

	// upstream request counters of the fake bibliography providers
	OpenLibraryHits *atomic.Int64
	CrossrefHits    *atomic.Int64

	jwt *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper), miniredis and fake upstream
// bibliography APIs.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	courses := course.New(pool)
	layoutSvc := layout.NewService(logger, layoutmodel.New(pool), layouthistory.New(pool), txm)
	syllabusSvc := syllabus.NewService(
		logger,
		syllabusrepo.New(pool),
		courses,
		layoutSvc,
		domain.DefaultSectionRegistry(nil),
		content.NewRegistry(content.DefaultWeightBounds()),
		nil,
	)

	olHits, crHits := new(atomic.Int64), new(atomic.Int64)
	olSrv := httptest.NewServer(countingHandler(olHits, openLibraryBody))
	t.Cleanup(olSrv.Close)
	crSrv := httptest.NewServer(countingHandler(crHits, crossrefBody))
	t.Cleanup(crSrv.Close)

	mr := miniredis.RunT(t)
	cache, err := rediscache.New(context.Background(), "redis://"+mr.Addr(), time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	bibSvc := bibliography.NewService(logger, cache,
		bibliography.Config{ProviderTimeout: 2 * time.Second, DefaultLimit: 10, MaxLimit: 50},
		openlibrary.NewProviderWithURL(olSrv.URL, logger),
		crossref.NewProviderWithURL(crSrv.URL, "e2e@example.edu", logger),
	)

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	mux := rest.NewRouter(rest.Handlers{
		Health:       rest.NewHealthHandler(pool, "test-version", rest.WithComponent("redis", cache)),
		Layout:       rest.NewLayoutHandler(layoutSvc, logger),
		Syllabus:     rest.NewSyllabusHandler(syllabusSvc, logger),
		Bibliography: rest.NewBibliographyHandler(bibSvc, logger),
	}, limiter.Limit(600))

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(jwtMgr),
		middleware.Logger(logger),
		middleware.RequireCallerForWrites(),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:             srv.URL,
		Client:          srv.Client(),
		Pool:            pool,
		Redis:           mr,
		OpenLibraryHits: olHits,
		CrossrefHits:    crHits,
		jwt:             jwtMgr,
	}
}

func countingHandler(hits *atomic.Int64, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}
}

const openLibraryBody = `{"numFound":2,"docs":[
 {"key":"/works/OL1W","title":"Avaliação Formativa","author_name":["Ana Souza"],"first_publish_year":2019,"isbn":["9788535900000"]},
 {"key":"/works/OL2W","title":"Didática Geral","author_name":["Bruno Lima"],"first_publish_year":2015}
]}`

const crossrefBody = `{"status":"ok","message":{"items":[
 {"DOI":"10.1000/AF","title":["Avaliação formativa no ensino superior"],"author":[{"given":"Carla","family":"Dias"}],"issued":{"date-parts":[[2021]]}},
 {"DOI":"10.1000/dup","title":["Avaliação Formativa"],"ISBN":["978-85-359-0000-0"],"issued":{"date-parts":[[2019]]}}
]}}`

// token returns a bearer token for the given caller id and role.
func (ts *testServer) token(t *testing.T, sub, role string) string {
	t.Helper()
	tok, err := ts.jwt.GenerateAccessToken(sub, role)
	require.NoError(t, err)
	return tok
}

func (ts *testServer) adminToken(t *testing.T) string {
	return ts.token(t, "coord-"+t.Name(), ctxutil.RoleAdmin)
}

// do sends a JSON request and returns the status code and raw body.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// doJSON is do plus decoding of the response body into T.
func doJSON[T any](t *testing.T, ts *testServer, method, path string, body any, token string) (int, T) {
	t.Helper()
	status, raw := ts.do(t, method, path, body, token)
	var out T
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return status, out
}

// createModel saves a layout model as admin and returns it.
func createModel(t *testing.T, ts *testServer, token string, body map[string]any) domain.LayoutModel {
	t.Helper()
	status, m := doJSON[domain.LayoutModel](t, ts, http.MethodPost, "/api/layout/models", body, token)
	require.Equal(t, http.StatusCreated, status)
	return m
}
