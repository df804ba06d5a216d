package layout

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

const (
	maxNomeLength  = 200
	maxCursoLength = 100
)

// CreateOrUpdateInput holds the parameters for saving a layout model.
// A nil ID creates a new draft model.
type CreateOrUpdateInput struct {
	ID              *uuid.UUID
	Curso           string
	Nome            string
	TabsOrder       []domain.SectionID
	TabsVisibility  map[domain.SectionID]bool
	AllowCustomTabs bool
}

// Validate checks all fields and collects all errors.
func (i CreateOrUpdateInput) Validate() error {
	var errs []domain.FieldError

	curso := strings.TrimSpace(i.Curso)
	if curso == "" {
		errs = append(errs, domain.FieldError{Field: "curso", Message: "required"})
	}
	if len(curso) > maxCursoLength {
		errs = append(errs, domain.FieldError{Field: "curso", Message: "max 100 characters"})
	}

	nome := strings.TrimSpace(i.Nome)
	if nome == "" {
		errs = append(errs, domain.FieldError{Field: "nome", Message: "required"})
	}
	if len(nome) > maxNomeLength {
		errs = append(errs, domain.FieldError{Field: "nome", Message: "max 200 characters"})
	}

	if i.ID != nil && *i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "invalid"})
	}

	seen := make(map[domain.SectionID]struct{}, len(i.TabsOrder))
	for _, id := range i.TabsOrder {
		if strings.TrimSpace(id.String()) == "" {
			errs = append(errs, domain.FieldError{Field: "tabsOrder", Message: "empty section id"})
			continue
		}
		if id == domain.SectionCustom {
			errs = append(errs, domain.FieldError{Field: "tabsOrder", Message: "custom is reserved"})
			continue
		}
		if _, dup := seen[id]; dup {
			errs = append(errs, domain.FieldError{Field: "tabsOrder", Message: "duplicate section " + id.String()})
			continue
		}
		seen[id] = struct{}{}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// model builds the stored shape of the input. Visibility and order are
// copied so later caller mutations do not leak in.
func (i CreateOrUpdateInput) model() *domain.LayoutModel {
	order := make([]domain.SectionID, len(i.TabsOrder))
	copy(order, i.TabsOrder)

	visibility := make(map[domain.SectionID]bool, len(i.TabsVisibility))
	for k, v := range i.TabsVisibility {
		visibility[k] = v
	}

	m := &domain.LayoutModel{
		Curso:           strings.TrimSpace(i.Curso),
		Nome:            strings.TrimSpace(i.Nome),
		TabsOrder:       order,
		TabsVisibility:  visibility,
		AllowCustomTabs: i.AllowCustomTabs,
	}
	if i.ID != nil {
		m.ID = *i.ID
	}
	return m
}
