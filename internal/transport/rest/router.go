package rest

import "net/http"

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health       *HealthHandler
	Layout       *LayoutHandler
	Syllabus     *SyllabusHandler
	Bibliography *BibliographyHandler
}

// NewRouter registers all routes. search wraps the bibliography route,
// which calls external providers and is rate limited separately.
func NewRouter(h Handlers, search func(http.Handler) http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/layout/active", h.Layout.Active)
	mux.HandleFunc("GET /api/layout/models", h.Layout.Models)
	mux.HandleFunc("POST /api/layout/models", h.Layout.Save)
	mux.HandleFunc("POST /api/layout/models/{id}/activate", h.Layout.Activate)
	mux.HandleFunc("DELETE /api/layout/models/{id}", h.Layout.Delete)
	mux.HandleFunc("GET /api/layout/history/{curso}", h.Layout.History)

	mux.HandleFunc("POST /api/syllabi", h.Syllabus.Create)
	mux.HandleFunc("GET /api/syllabi/{id}", h.Syllabus.Get)
	mux.HandleFunc("GET /api/syllabi/{id}/sections", h.Syllabus.Sections)
	mux.HandleFunc("PUT /api/syllabi/{id}/sections/{section}", h.Syllabus.UpdateSection)
	mux.HandleFunc("POST /api/syllabi/{id}/sections/{section}/mode", h.Syllabus.SwitchMode)
	mux.HandleFunc("PUT /api/syllabi/{id}/header", h.Syllabus.UpdateHeader)
	mux.HandleFunc("PUT /api/syllabi/{id}/custom", h.Syllabus.SetCustom)
	mux.HandleFunc("DELETE /api/syllabi/{id}/custom", h.Syllabus.RemoveCustom)
	mux.HandleFunc("POST /api/syllabi/{id}/sync/competencias", h.Syllabus.SyncCompetencies)
	mux.HandleFunc("POST /api/syllabi/{id}/weights/validate", h.Syllabus.ValidateWeight)

	var bib http.Handler = http.HandlerFunc(h.Bibliography.Search)
	if search != nil {
		bib = search(bib)
	}
	mux.Handle("GET /api/bibliography/search", bib)

	return mux
}
