// Package content converts section content between its two representations:
// free-form rich text (HTML) and structured payloads (JSON tagged with a
// "layout" discriminator).
package content

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// Kind is the layout tag of a structured payload.
type Kind string

const (
	KindEvaluation     Kind = "avaliacao"
	KindCompetencies   Kind = "competencias"
	KindContentUnits   Kind = "conteudo"
	KindMethodology    Kind = "metodologia"
	KindEthics         Kind = "etica"
	KindChecklist      Kind = "checklist"
	KindODS            Kind = "ods"
	KindContacts       Kind = "contatos"
	KindDisciplineInfo Kind = "disciplina"
	KindProfessors     Kind = "professores"
)

func (k Kind) String() string { return string(k) }

// Payload is a structured section payload. The concrete type is selected by
// the layout tag.
type Payload interface {
	Layout() Kind
}

// ---------------------------------------------------------------------------
// Evaluation
// ---------------------------------------------------------------------------

type EvaluationRow struct {
	Instrumento string `json:"instrumento"`
	Descricao   string `json:"descricao"`
	Peso        string `json:"peso"`
	Data        string `json:"data"`
}

func (r EvaluationRow) empty() bool {
	return clean(r.Instrumento) == "" && clean(r.Descricao) == "" && clean(r.Peso) == "" && clean(r.Data) == ""
}

type EvaluationPayload struct {
	Rows []EvaluationRow `json:"rows"`
}

func (EvaluationPayload) Layout() Kind { return KindEvaluation }

func (p EvaluationPayload) MarshalJSON() ([]byte, error) {
	type alias EvaluationPayload
	return json.Marshal(struct {
		Layout Kind `json:"layout"`
		alias
	}{KindEvaluation, alias(p)})
}

// Validate checks every non-blank weight against the bounds.
func (p EvaluationPayload) Validate(bounds WeightBounds) error {
	var errs []domain.FieldError
	for i, row := range p.Rows {
		if clean(row.Peso) == "" {
			continue
		}
		if _, err := ValidateWeight(row.Peso, bounds); err != nil {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("rows[%d].peso", i),
				Message: weightMessage(err),
			})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Competencies
// ---------------------------------------------------------------------------

// MaxGrau is the highest contribution degree of a competency.
const MaxGrau = 3

type CompetencyRow struct {
	ID        string `json:"id"`
	Descricao string `json:"descricao"`
	Grau      int    `json:"grau"`
}

type CompetencyPayload struct {
	Rows []CompetencyRow `json:"rows"`
}

func (CompetencyPayload) Layout() Kind { return KindCompetencies }

func (p CompetencyPayload) MarshalJSON() ([]byte, error) {
	type alias CompetencyPayload
	return json.Marshal(struct {
		Layout Kind `json:"layout"`
		alias
	}{KindCompetencies, alias(p)})
}

func (p CompetencyPayload) Validate() error {
	var errs []domain.FieldError
	for i, row := range p.Rows {
		if row.Grau < 0 || row.Grau > MaxGrau {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("rows[%d].grau", i),
				Message: fmt.Sprintf("must be between 0 and %d", MaxGrau),
			})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Content units
// ---------------------------------------------------------------------------

type ContentUnit struct {
	Titulo  string   `json:"titulo"`
	Topicos []string `json:"topicos"`
}

type ContentUnitsPayload struct {
	Units []ContentUnit `json:"units"`
}

func (ContentUnitsPayload) Layout() Kind { return KindContentUnits }

func (p ContentUnitsPayload) MarshalJSON() ([]byte, error) {
	type alias ContentUnitsPayload
	return json.Marshal(struct {
		Layout Kind `json:"layout"`
		alias
	}{KindContentUnits, alias(p)})
}

// ---------------------------------------------------------------------------
// Methodology
// ---------------------------------------------------------------------------

type MethodologyPayload struct {
	Modalidade  string `json:"modalidade"`
	Estrategias string `json:"estrategias"`
	Recursos    string `json:"recursos"`
	Atividades  string `json:"atividades"`
}

func (MethodologyPayload) Layout() Kind { return KindMethodology }

func (p MethodologyPayload) MarshalJSON() ([]byte, error) {
	type alias MethodologyPayload
	return json.Marshal(struct {
		Layout Kind `json:"layout"`
		alias
	}{KindMethodology, alias(p)})
}

// ---------------------------------------------------------------------------
// Ethics
// ---------------------------------------------------------------------------

type EthicsPayload struct {
	Template     string   `json:"template"`
	Compromissos []string `json:"compromissos"`
}

func (EthicsPayload) Layout() Kind { return KindEthics }

func (p EthicsPayload) MarshalJSON() ([]byte, error) {
	type alias EthicsPayload
	return json.Marshal(struct {
		Layout Kind `json:"layout"`
		alias
	}{KindEthics, alias(p)})
}

// ---------------------------------------------------------------------------
// Checklist
// ---------------------------------------------------------------------------

type ChecklistItem struct {
	Texto   string `json:"texto"`
	Marcado bool   `json:"marcado"`
}

type ChecklistCategory struct {
	Nome  string          `json:"nome"`
	Items []ChecklistItem `json:"items"`
}

type ChecklistPayload struct {
	Categories []ChecklistCategory `json:"categories"`
}

func (ChecklistPayload) Layout() Kind { return KindChecklist }

func (p ChecklistPayload) MarshalJSON() ([]byte, error) {
	type alias ChecklistPayload
	return json.Marshal(struct {
		Layout Kind `json:"layout"`
		alias
	}{KindChecklist, alias(p)})
}

// ---------------------------------------------------------------------------
// Sustainable development goals
// ---------------------------------------------------------------------------

type ODSPayload struct {
	Selected      []int  `json:"selected"`
	Justificativa string `json:"justificativa"`
}

func (ODSPayload) Layout() Kind { return KindODS }

func (p ODSPayload) MarshalJSON() ([]byte, error) {
	type alias ODSPayload
	return json.Marshal(struct {
		Layout Kind `json:"layout"`
		alias
	}{KindODS, alias(p)})
}

func (p ODSPayload) Validate() error {
	var errs []domain.FieldError
	for i, n := range p.Selected {
		if n < 1 || n > len(odsGoals) {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("selected[%d]", i),
				Message: fmt.Sprintf("must be between 1 and %d", len(odsGoals)),
			})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Contacts
// ---------------------------------------------------------------------------

type ContactsPayload struct {
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Sala     string `json:"sala"`
	Horario  string `json:"horario"`
	Site     string `json:"site"`
}

func (ContactsPayload) Layout() Kind { return KindContacts }

func (p ContactsPayload) MarshalJSON() ([]byte, error) {
	type alias ContactsPayload
	return json.Marshal(struct {
		Layout Kind `json:"layout"`
		alias
	}{KindContacts, alias(p)})
}

// ---------------------------------------------------------------------------
// Discipline info
// ---------------------------------------------------------------------------

type DisciplineInfoPayload struct {
	Ementa               string `json:"ementa"`
	Objetivos            string `json:"objetivos"`
	ObjetivosEspecificos string `json:"objetivosEspecificos"`
	CargaHoraria         string `json:"cargaHoraria"`
}

func (DisciplineInfoPayload) Layout() Kind { return KindDisciplineInfo }

func (p DisciplineInfoPayload) MarshalJSON() ([]byte, error) {
	type alias DisciplineInfoPayload
	return json.Marshal(struct {
		Layout Kind `json:"layout"`
		alias
	}{KindDisciplineInfo, alias(p)})
}

// ---------------------------------------------------------------------------
// Professors
// ---------------------------------------------------------------------------

type ProfessorInfo struct {
	Email    string `json:"email"`
	Formacao string `json:"formacao"`
	Horario  string `json:"horario"`
	Lattes   string `json:"lattes"`
}

// ProfessorRosterPayload keys per-professor details by name. Order keeps
// display order; names missing from it follow in lexical order.
type ProfessorRosterPayload struct {
	Professors map[string]ProfessorInfo `json:"professors"`
	Order      []string                 `json:"order"`
}

func (ProfessorRosterPayload) Layout() Kind { return KindProfessors }

func (p ProfessorRosterPayload) MarshalJSON() ([]byte, error) {
	type alias ProfessorRosterPayload
	return json.Marshal(struct {
		Layout Kind `json:"layout"`
		alias
	}{KindProfessors, alias(p)})
}

// ProfessorEntry is one roster line in display order.
type ProfessorEntry struct {
	Name string
	Info ProfessorInfo
}

// Entries returns the roster in display order, each name once.
func (p ProfessorRosterPayload) Entries() []ProfessorEntry {
	seen := make(map[string]struct{}, len(p.Professors))
	out := make([]ProfessorEntry, 0, len(p.Professors))
	for _, name := range p.Order {
		info, ok := p.Professors[name]
		if !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, ProfessorEntry{Name: name, Info: info})
	}
	rest := make([]string, 0)
	for name := range p.Professors {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)
	for _, name := range rest {
		out = append(out, ProfessorEntry{Name: name, Info: p.Professors[name]})
	}
	return out
}

// RosterFromEntries builds a roster payload preserving entry order.
func RosterFromEntries(entries []ProfessorEntry) ProfessorRosterPayload {
	p := ProfessorRosterPayload{
		Professors: make(map[string]ProfessorInfo, len(entries)),
		Order:      make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		if _, dup := p.Professors[e.Name]; dup {
			continue
		}
		p.Professors[e.Name] = e.Info
		p.Order = append(p.Order, e.Name)
	}
	return p
}

// ---------------------------------------------------------------------------
// Tagged-union codec
// ---------------------------------------------------------------------------

// IsStructured reports whether raw stored content is a structured payload:
// a JSON object carrying a non-empty "layout" string. Anything else, including
// rich text that happens to open with a brace, is free-form HTML.
func IsStructured(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		return false
	}
	var tag struct {
		Layout *string `json:"layout"`
	}
	if err := json.Unmarshal([]byte(trimmed), &tag); err != nil {
		return false
	}
	return tag.Layout != nil && *tag.Layout != ""
}

// Decode parses a stored structured payload. Malformed JSON, a missing or
// unknown layout tag all yield a *domain.ConversionError.
func Decode(raw string) (Payload, error) {
	var probe struct {
		Layout Kind `json:"layout"`
	}
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return nil, &domain.ConversionError{Err: err}
	}

	var (
		p   Payload
		err error
	)
	switch probe.Layout {
	case KindEvaluation:
		p, err = decodeAs[EvaluationPayload](raw)
	case KindCompetencies:
		p, err = decodeAs[CompetencyPayload](raw)
	case KindContentUnits:
		p, err = decodeAs[ContentUnitsPayload](raw)
	case KindMethodology:
		p, err = decodeAs[MethodologyPayload](raw)
	case KindEthics:
		p, err = decodeAs[EthicsPayload](raw)
	case KindChecklist:
		p, err = decodeAs[ChecklistPayload](raw)
	case KindODS:
		p, err = decodeAs[ODSPayload](raw)
	case KindContacts:
		p, err = decodeAs[ContactsPayload](raw)
	case KindDisciplineInfo:
		p, err = decodeAs[DisciplineInfoPayload](raw)
	case KindProfessors:
		p, err = decodeAs[ProfessorRosterPayload](raw)
	case "":
		return nil, &domain.ConversionError{Err: fmt.Errorf("missing layout tag")}
	default:
		return nil, &domain.ConversionError{
			Layout: probe.Layout.String(),
			Err:    fmt.Errorf("unknown layout tag %q", probe.Layout),
		}
	}
	if err != nil {
		return nil, &domain.ConversionError{Layout: probe.Layout.String(), Err: err}
	}
	return p, nil
}

func decodeAs[P Payload](raw string) (Payload, error) {
	var p P
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, err
	}
	return p, nil
}

// Encode serialises a payload with its layout tag.
func Encode(p Payload) (string, error) {
	if p == nil {
		return "", fmt.Errorf("encode payload: nil payload")
	}
	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode %s payload: %w", p.Layout(), err)
	}
	return string(b), nil
}
