package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
	"github.com/heartmarshall/syllabus-backend/internal/service/syllabus"
)

type syllabusService interface {
	Create(ctx context.Context, input syllabus.CreateInput) (*domain.SyllabusDocument, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.SyllabusDocument, error)
	Sections(ctx context.Context, id uuid.UUID) ([]domain.RenderedSection, error)
	UpdateSection(ctx context.Context, id uuid.UUID, section domain.SectionID, raw string) (*domain.SyllabusDocument, error)
	SwitchMode(ctx context.Context, id uuid.UUID, section domain.SectionID, mode string) (*domain.SyllabusDocument, error)
	UpdateHeader(ctx context.Context, id uuid.UUID, header domain.Header) (*domain.SyllabusDocument, error)
	SetCustom(ctx context.Context, id uuid.UUID, input syllabus.CustomInput) (*domain.SyllabusDocument, error)
	RemoveCustom(ctx context.Context, id uuid.UUID) (*domain.SyllabusDocument, error)
	SyncCompetencies(ctx context.Context, id uuid.UUID) (*domain.SyllabusDocument, error)
	ValidateWeight(weight string) (float64, error)
}

// SyllabusHandler serves the document endpoints under /api/syllabi.
type SyllabusHandler struct {
	svc syllabusService
	log *slog.Logger
}

// NewSyllabusHandler creates a SyllabusHandler.
func NewSyllabusHandler(svc syllabusService, logger *slog.Logger) *SyllabusHandler {
	return &SyllabusHandler{svc: svc, log: logger.With("handler", "syllabus")}
}

type createSyllabusRequest struct {
	Curso  string        `json:"curso"`
	Title  string        `json:"title"`
	Header domain.Header `json:"header"`
}

type sectionContentRequest struct {
	Content string `json:"content"`
}

type modeRequest struct {
	Mode string `json:"mode"`
}

type customRequest struct {
	Name     string `json:"name"`
	Content  string `json:"content"`
	Position string `json:"position"`
}

type weightRequest struct {
	Weight string `json:"weight"`
}

type weightResponse struct {
	Weight float64 `json:"weight"`
}

// Create handles POST /api/syllabi.
func (h *SyllabusHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSyllabusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	doc, err := h.svc.Create(r.Context(), syllabus.CreateInput{
		Curso:  req.Curso,
		Title:  req.Title,
		Header: req.Header,
	})
	h.respond(w, r, http.StatusCreated, doc, err)
}

// Get handles GET /api/syllabi/{id}.
func (h *SyllabusHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	doc, err := h.svc.Get(r.Context(), id)
	h.respond(w, r, http.StatusOK, doc, err)
}

// Sections handles GET /api/syllabi/{id}/sections.
func (h *SyllabusHandler) Sections(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	sections, err := h.svc.Sections(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sections)
}

// UpdateSection handles PUT /api/syllabi/{id}/sections/{section}.
func (h *SyllabusHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req sectionContentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	doc, err := h.svc.UpdateSection(r.Context(), id, domain.SectionID(r.PathValue("section")), req.Content)
	h.respond(w, r, http.StatusOK, doc, err)
}

// SwitchMode handles POST /api/syllabi/{id}/sections/{section}/mode.
func (h *SyllabusHandler) SwitchMode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req modeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	doc, err := h.svc.SwitchMode(r.Context(), id, domain.SectionID(r.PathValue("section")), req.Mode)
	h.respond(w, r, http.StatusOK, doc, err)
}

// UpdateHeader handles PUT /api/syllabi/{id}/header.
func (h *SyllabusHandler) UpdateHeader(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var header domain.Header
	if !decodeBody(w, r, &header) {
		return
	}
	doc, err := h.svc.UpdateHeader(r.Context(), id, header)
	h.respond(w, r, http.StatusOK, doc, err)
}

// SetCustom handles PUT /api/syllabi/{id}/custom.
func (h *SyllabusHandler) SetCustom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req customRequest
	if !decodeBody(w, r, &req) {
		return
	}
	doc, err := h.svc.SetCustom(r.Context(), id, syllabus.CustomInput{
		Name:     req.Name,
		Content:  req.Content,
		Position: req.Position,
	})
	h.respond(w, r, http.StatusOK, doc, err)
}

// RemoveCustom handles DELETE /api/syllabi/{id}/custom.
func (h *SyllabusHandler) RemoveCustom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	doc, err := h.svc.RemoveCustom(r.Context(), id)
	h.respond(w, r, http.StatusOK, doc, err)
}

// SyncCompetencies handles POST /api/syllabi/{id}/sync/competencias.
func (h *SyllabusHandler) SyncCompetencies(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	doc, err := h.svc.SyncCompetencies(r.Context(), id)
	h.respond(w, r, http.StatusOK, doc, err)
}

// ValidateWeight handles POST /api/syllabi/{id}/weights/validate. It parses
// the weight an editor typed and answers the percentage it stands for.
func (h *SyllabusHandler) ValidateWeight(w http.ResponseWriter, r *http.Request) {
	if _, ok := pathUUID(w, r, "id"); !ok {
		return
	}
	var req weightRequest
	if !decodeBody(w, r, &req) {
		return
	}
	weight, err := h.svc.ValidateWeight(req.Weight)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, weightResponse{Weight: weight})
}

func (h *SyllabusHandler) respond(w http.ResponseWriter, r *http.Request, status int, doc *domain.SyllabusDocument, err error) {
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, status, doc)
}
