package domain

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SectionID identifies one section (tab) of a syllabus document.
type SectionID string

func (s SectionID) String() string { return string(s) }

const (
	SectionHeader       SectionID = "cabecalho"
	SectionAbout        SectionID = "sobre"
	SectionProfessors   SectionID = "professores"
	SectionCompetencies SectionID = "competencias"
	SectionODS          SectionID = "ods"
	SectionContent      SectionID = "conteudo"
	SectionMethodology  SectionID = "metodologia"
	SectionEvaluation   SectionID = "avaliacao"
	SectionBibliography SectionID = "bibliografia"
	SectionExpected     SectionID = "esperado"
	SectionEthics       SectionID = "etica"
	SectionContacts     SectionID = "contatos"

	// SectionCustom is reserved for the single ad-hoc section of a document.
	SectionCustom SectionID = "custom"
)

// SectionDescriptor is one entry of the static section catalog.
type SectionDescriptor struct {
	ID                          SectionID `json:"id"`
	LabelKey                    string    `json:"labelKey"`
	Label                       string    `json:"label"`
	RequiresNonRestrictedCourse bool      `json:"requiresNonRestrictedCourse"`
}

// LabelResolver maps a label key to display text.
type LabelResolver func(labelKey string) string

var defaultLabels = map[string]string{
	"syllabus.tab.cabecalho":    "Cabeçalho",
	"syllabus.tab.sobre":        "Sobre a disciplina",
	"syllabus.tab.professores":  "Professores",
	"syllabus.tab.competencias": "Competências",
	"syllabus.tab.ods":          "Objetivos de Desenvolvimento Sustentável",
	"syllabus.tab.conteudo":     "Conteúdo programático",
	"syllabus.tab.metodologia":  "Metodologia",
	"syllabus.tab.avaliacao":    "Avaliação",
	"syllabus.tab.bibliografia": "Bibliografia",
	"syllabus.tab.esperado":     "O que se espera do aluno",
	"syllabus.tab.etica":        "Código de ética",
	"syllabus.tab.contatos":     "Contatos",
}

// DefaultLabels resolves label keys using the built-in pt-BR table.
// Unknown keys resolve to themselves.
func DefaultLabels(labelKey string) string {
	if label, ok := defaultLabels[labelKey]; ok {
		return label
	}
	return labelKey
}

// SectionRegistry is the read-only catalog of sections available to a course.
type SectionRegistry struct {
	sections []SectionDescriptor
	index    map[SectionID]int
	labels   LabelResolver
}

// NewSectionRegistry builds a registry from descriptors in their natural order.
// Labels are filled from the resolver; a nil resolver means DefaultLabels.
func NewSectionRegistry(labels LabelResolver, descriptors ...SectionDescriptor) *SectionRegistry {
	if labels == nil {
		labels = DefaultLabels
	}
	r := &SectionRegistry{
		sections: make([]SectionDescriptor, 0, len(descriptors)),
		index:    make(map[SectionID]int, len(descriptors)),
		labels:   labels,
	}
	for _, d := range descriptors {
		if _, dup := r.index[d.ID]; dup {
			continue
		}
		d.Label = labels(d.LabelKey)
		r.index[d.ID] = len(r.sections)
		r.sections = append(r.sections, d)
	}
	return r
}

// DefaultSectionRegistry returns the catalog used by every course.
func DefaultSectionRegistry(labels LabelResolver) *SectionRegistry {
	return NewSectionRegistry(labels,
		SectionDescriptor{ID: SectionHeader, LabelKey: "syllabus.tab.cabecalho"},
		SectionDescriptor{ID: SectionAbout, LabelKey: "syllabus.tab.sobre"},
		SectionDescriptor{ID: SectionProfessors, LabelKey: "syllabus.tab.professores"},
		SectionDescriptor{ID: SectionCompetencies, LabelKey: "syllabus.tab.competencias"},
		SectionDescriptor{ID: SectionODS, LabelKey: "syllabus.tab.ods", RequiresNonRestrictedCourse: true},
		SectionDescriptor{ID: SectionContent, LabelKey: "syllabus.tab.conteudo"},
		SectionDescriptor{ID: SectionMethodology, LabelKey: "syllabus.tab.metodologia"},
		SectionDescriptor{ID: SectionEvaluation, LabelKey: "syllabus.tab.avaliacao"},
		SectionDescriptor{ID: SectionBibliography, LabelKey: "syllabus.tab.bibliografia"},
		SectionDescriptor{ID: SectionExpected, LabelKey: "syllabus.tab.esperado", RequiresNonRestrictedCourse: true},
		SectionDescriptor{ID: SectionEthics, LabelKey: "syllabus.tab.etica"},
		SectionDescriptor{ID: SectionContacts, LabelKey: "syllabus.tab.contatos"},
	)
}

// All returns a copy of the descriptors in natural order.
func (r *SectionRegistry) All() []SectionDescriptor {
	return slices.Clone(r.sections)
}

// Get looks up a descriptor by id.
func (r *SectionRegistry) Get(id SectionID) (SectionDescriptor, bool) {
	i, ok := r.index[id]
	if !ok {
		return SectionDescriptor{}, false
	}
	return r.sections[i], true
}

// Has reports whether id is a registered section.
func (r *SectionRegistry) Has(id SectionID) bool {
	_, ok := r.index[id]
	return ok
}

// Label resolves the display label of a registered section.
func (r *SectionRegistry) Label(id SectionID) string {
	if d, ok := r.Get(id); ok {
		return d.Label
	}
	return id.String()
}

// SortByLabel orders descriptors alphabetically by label using pt-BR
// collation, so accented labels sort next to their unaccented neighbours.
// Ties fall back to the section id.
func SortByLabel(descriptors []SectionDescriptor) {
	c := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	slices.SortStableFunc(descriptors, func(a, b SectionDescriptor) int {
		if cmp := c.CompareString(a.Label, b.Label); cmp != 0 {
			return cmp
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
}
