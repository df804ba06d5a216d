package domain

import (
	"time"

	"github.com/google/uuid"
)

// CustomTabPositionEnd places the custom section after every other section.
const CustomTabPositionEnd = "end"

// Header is the fixed cover block of a syllabus document.
type Header struct {
	Disciplina   string   `json:"disciplina"`
	Codigo       string   `json:"codigo"`
	Semestre     string   `json:"semestre"`
	CargaHoraria string   `json:"cargaHoraria"`
	Professores  []string `json:"professores"`
}

// CustomTab is the single ad-hoc section an instructor may add.
// Position is either CustomTabPositionEnd or the id of the anchor section.
type CustomTab struct {
	Name     string `json:"name"`
	Content  string `json:"content"`
	Position string `json:"position"`
}

// SyllabusDocument holds the per-section content of one syllabus.
// Each section value is raw HTML or a JSON object tagged with "layout".
type SyllabusDocument struct {
	ID        uuid.UUID            `json:"id"`
	Curso     string               `json:"curso"`
	Title     string               `json:"title"`
	OwnerID   string               `json:"ownerId"`
	Header    Header               `json:"header"`
	Sections  map[SectionID]string `json:"sections"`
	Custom    *CustomTab           `json:"custom,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// NewSyllabusDocument returns a document with every registered section
// present and empty.
func NewSyllabusDocument(curso, title, ownerID string, header Header, registry *SectionRegistry) *SyllabusDocument {
	sections := make(map[SectionID]string)
	for _, d := range registry.All() {
		sections[d.ID] = ""
	}
	return &SyllabusDocument{
		Curso:    curso,
		Title:    title,
		OwnerID:  ownerID,
		Header:   header,
		Sections: sections,
	}
}

// Section returns the stored content of a section ("" when absent).
func (d *SyllabusDocument) Section(id SectionID) string {
	if d.Sections == nil {
		return ""
	}
	return d.Sections[id]
}

// SetSection replaces the stored content of a section.
func (d *SyllabusDocument) SetSection(id SectionID, content string) {
	if d.Sections == nil {
		d.Sections = make(map[SectionID]string)
	}
	d.Sections[id] = content
}

// Course is the catalog view of a course: restriction flag plus the
// canonical, ordered competency list.
type Course struct {
	Code         string       `json:"code"`
	Name         string       `json:"name"`
	Restricted   bool         `json:"restricted"`
	Competencies []Competency `json:"competencies"`
}

// Competency is one entry of a course's official competency catalog.
type Competency struct {
	ID        string `json:"id"`
	Descricao string `json:"descricao"`
}

// RenderedSection is one visible section of a document, in display order.
type RenderedSection struct {
	SectionDescriptor
	Content string `json:"content"`
	Mode    string `json:"mode"`
}
