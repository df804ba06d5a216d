package content

import (
	"fmt"
	"strings"
)

var professorFields = []fieldSpec{
	{name: "email", match: prefixes("e-mail", "email")},
	{name: "formacao", match: prefixes("formacao", "titulacao")},
	{name: "horario", match: prefixes("horario", "atendimento")},
	{name: "lattes", match: prefixes("curriculo", "lattes", "cv")},
}

var professorNameLabel = prefixes("professor", "docente")

func newProfessorsConverter() Converter {
	return converter[ProfessorRosterPayload]{
		kind:   KindProfessors,
		parse:  parseProfessors,
		render: renderProfessors,
	}
}

// parseProfessors opens a roster entry at every heading (or "Professor:"
// line) and fills it from the labeled lines that follow.
func parseProfessors(f fragment) ProfessorRosterPayload {
	var entries []ProfessorEntry
	cur := -1

	for _, b := range f.blocks {
		if b.kind == blockHeading {
			entries = append(entries, ProfessorEntry{Name: b.text})
			cur = len(entries) - 1
			continue
		}
		label, value, ok := splitLabel(b.text)
		if !ok {
			continue
		}
		if professorNameLabel(label) {
			if value != "" {
				entries = append(entries, ProfessorEntry{Name: value})
				cur = len(entries) - 1
			}
			continue
		}
		if cur < 0 {
			continue
		}
		name, ok := matchField(professorFields, label)
		if !ok {
			continue
		}
		info := &entries[cur].Info
		switch name {
		case "email":
			info.Email = value
		case "formacao":
			info.Formacao = value
		case "horario":
			info.Horario = value
		case "lattes":
			info.Lattes = value
		}
	}

	return RosterFromEntries(entries)
}

func renderProfessors(p ProfessorRosterPayload) string {
	var b strings.Builder
	seen := make(map[string]struct{})
	for _, e := range p.Entries() {
		name := clean(e.Name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		fmt.Fprintf(&b, "<h4>%s</h4>", esc(name))
		renderLabeledList(&b, "professor", []labeledField{
			{"E-mail", e.Info.Email},
			{"Formação", e.Info.Formacao},
			{"Horário de atendimento", e.Info.Horario},
			{"Currículo Lattes", e.Info.Lattes},
		})
	}
	return b.String()
}
