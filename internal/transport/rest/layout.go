package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
	"github.com/heartmarshall/syllabus-backend/internal/service/layout"
)

type layoutService interface {
	GetActive(ctx context.Context, curso string) (*domain.LayoutModel, error)
	ListModels(ctx context.Context, curso string) ([]*domain.LayoutModel, error)
	CreateOrUpdate(ctx context.Context, input layout.CreateOrUpdateInput) (*domain.LayoutModel, error)
	Activate(ctx context.Context, modelID uuid.UUID) (*domain.LayoutModel, error)
	Delete(ctx context.Context, modelID uuid.UUID) error
	History(ctx context.Context, curso string) ([]domain.LayoutHistoryEntry, error)
}

// LayoutHandler serves the layout model endpoints under /api/layout.
type LayoutHandler struct {
	svc layoutService
	log *slog.Logger
}

// NewLayoutHandler creates a LayoutHandler.
func NewLayoutHandler(svc layoutService, logger *slog.Logger) *LayoutHandler {
	return &LayoutHandler{svc: svc, log: logger.With("handler", "layout")}
}

type layoutModelRequest struct {
	ID              *string                   `json:"id"`
	Curso           string                    `json:"curso"`
	Nome            string                    `json:"nome"`
	TabsOrder       []domain.SectionID        `json:"tabsOrder"`
	TabsVisibility  map[domain.SectionID]bool `json:"tabsVisibility"`
	AllowCustomTabs bool                      `json:"allowCustomTabs"`
}

// Active handles GET /api/layout/active?curso=X. Responds null when the
// course has no active model.
func (h *LayoutHandler) Active(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.GetActive(r.Context(), r.URL.Query().Get("curso"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// Models handles GET /api/layout/models?curso=X.
func (h *LayoutHandler) Models(w http.ResponseWriter, r *http.Request) {
	models, err := h.svc.ListModels(r.Context(), r.URL.Query().Get("curso"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models)
}

// Save handles POST /api/layout/models. Without an id a new inactive model
// is created (201); with one the model is updated (200).
func (h *LayoutHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req layoutModelRequest
	if !decodeBody(w, r, &req) {
		return
	}

	input := layout.CreateOrUpdateInput{
		Curso:           req.Curso,
		Nome:            req.Nome,
		TabsOrder:       req.TabsOrder,
		TabsVisibility:  req.TabsVisibility,
		AllowCustomTabs: req.AllowCustomTabs,
	}
	if req.ID != nil && *req.ID != "" {
		id, err := uuid.Parse(*req.ID)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("id", "invalid uuid"))
			return
		}
		input.ID = &id
	}

	m, err := h.svc.CreateOrUpdate(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusOK
	if input.ID == nil {
		status = http.StatusCreated
	}
	writeJSON(w, status, m)
}

// Activate handles POST /api/layout/models/{id}/activate.
func (h *LayoutHandler) Activate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	m, err := h.svc.Activate(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// Delete handles DELETE /api/layout/models/{id}: 204, or 409 when active.
func (h *LayoutHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// History handles GET /api/layout/history/{curso}, newest first.
func (h *LayoutHandler) History(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.History(r.Context(), r.PathValue("curso"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
