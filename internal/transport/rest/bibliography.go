package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
	"github.com/heartmarshall/syllabus-backend/internal/service/bibliography"
)

type bibliographyService interface {
	Search(ctx context.Context, in bibliography.SearchInput) (*domain.BibSearchResult, error)
}

// BibliographyHandler serves reference search.
type BibliographyHandler struct {
	svc bibliographyService
	log *slog.Logger
}

// NewBibliographyHandler creates a BibliographyHandler.
func NewBibliographyHandler(svc bibliographyService, logger *slog.Logger) *BibliographyHandler {
	return &BibliographyHandler{svc: svc, log: logger.With("handler", "bibliography")}
}

// Search handles GET /api/bibliography/search?q=...&providers=a,b&limit=n.
func (h *BibliographyHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	in := bibliography.SearchInput{Query: q.Get("q")}
	if v := q.Get("providers"); v != "" {
		in.Providers = strings.Split(v, ",")
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("limit", "must be an integer"))
			return
		}
		in.Limit = n
	}

	res, err := h.svc.Search(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
