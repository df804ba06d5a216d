package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRouter mounts the handlers under test; the rest get empty mocks.
func newTestRouter(t *testing.T, ls layoutService, ss syllabusService, bs bibliographyService) http.Handler {
	t.Helper()
	if ls == nil {
		ls = &layoutServiceMock{}
	}
	if ss == nil {
		ss = &syllabusServiceMock{}
	}
	if bs == nil {
		bs = &bibliographyServiceMock{}
	}
	return NewRouter(Handlers{
		Health:       NewHealthHandler(pingerStub{}, "test"),
		Layout:       NewLayoutHandler(ls, testLogger()),
		Syllabus:     NewSyllabusHandler(ss, testLogger()),
		Bibliography: NewBibliographyHandler(bs, testLogger()),
	}, nil)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
	return v
}
