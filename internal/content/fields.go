package content

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// labeledField is one rendered "heading + paragraph" field.
type labeledField struct {
	label string
	value string
}

func renderHeadedFields(fields []labeledField) string {
	var b strings.Builder
	for _, f := range fields {
		v := clean(f.value)
		if v == "" {
			continue
		}
		fmt.Fprintf(&b, "<h4>%s</h4><p>%s</p>", f.label, esc(v))
	}
	return b.String()
}

// renderLabeledList renders fields as "<strong>Label:</strong> value" items.
func renderLabeledList(b *strings.Builder, class string, fields []labeledField) {
	opened := false
	for _, f := range fields {
		v := clean(f.value)
		if v == "" {
			continue
		}
		if !opened {
			fmt.Fprintf(b, `<ul class="%s">`, class)
			opened = true
		}
		fmt.Fprintf(b, "<li><strong>%s:</strong> %s</li>", f.label, esc(v))
	}
	if opened {
		b.WriteString("</ul>")
	}
}

// ---------------------------------------------------------------------------
// Discipline info
// ---------------------------------------------------------------------------

var disciplineFields = []fieldSpec{
	{name: "ementa", match: prefixes("ementa", "sumula")},
	{name: "objetivosEspecificos", match: prefixes("objetivos especificos", "objetivo especifico")},
	{name: "objetivos", match: prefixes("objetivo")},
	{name: "cargaHoraria", match: func(l string) bool {
		return strings.HasPrefix(l, "carga horaria") || l == "ch" || l == "horas"
	}},
}

func newDisciplineInfoConverter() Converter {
	return converter[DisciplineInfoPayload]{
		kind:   KindDisciplineInfo,
		parse:  parseDisciplineInfo,
		render: renderDisciplineInfo,
	}
}

func parseDisciplineInfo(f fragment) DisciplineInfoPayload {
	v, _ := extractFields(f, disciplineFields)
	return DisciplineInfoPayload{
		Ementa:               v["ementa"],
		Objetivos:            v["objetivos"],
		ObjetivosEspecificos: v["objetivosEspecificos"],
		CargaHoraria:         v["cargaHoraria"],
	}
}

func renderDisciplineInfo(p DisciplineInfoPayload) string {
	return renderHeadedFields([]labeledField{
		{"Ementa", p.Ementa},
		{"Objetivos", p.Objetivos},
		{"Objetivos específicos", p.ObjetivosEspecificos},
		{"Carga horária", p.CargaHoraria},
	})
}

// ---------------------------------------------------------------------------
// Methodology
// ---------------------------------------------------------------------------

var methodologyFields = []fieldSpec{
	{name: "modalidade", match: prefixes("modalidade", "formato")},
	{name: "estrategias", match: prefixes("estrategia", "metodologia", "procedimento", "tecnica")},
	{name: "recursos", match: prefixes("recurso", "material", "ferramenta")},
	{name: "atividades", match: prefixes("atividade", "pratica")},
}

// modalityKeywords are checked in order; "semipresencial" must win over
// "presencial".
var modalityKeywords = []struct {
	re    *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`\b(hibrid\w*|semipresencia\w*)\b`), "Híbrida"},
	{regexp.MustCompile(`\b(a distancia|ead)\b`), "A distância"},
	{regexp.MustCompile(`\bremot\w*\b`), "Remota"},
	{regexp.MustCompile(`\bpresencia\w*\b`), "Presencial"},
}

func newMethodologyConverter() Converter {
	return converter[MethodologyPayload]{
		kind:   KindMethodology,
		parse:  parseMethodology,
		render: renderMethodology,
	}
}

// parseMethodology reads labeled fields. Unlabeled text only yields the
// teaching modality, when a modality keyword occurs in it.
func parseMethodology(f fragment) MethodologyPayload {
	v, found := extractFields(f, methodologyFields)
	p := MethodologyPayload{
		Modalidade:  v["modalidade"],
		Estrategias: v["estrategias"],
		Recursos:    v["recursos"],
		Atividades:  v["atividades"],
	}
	if found {
		return p
	}

	texts := make([]string, 0, len(f.blocks))
	for _, b := range f.blocks {
		texts = append(texts, b.text)
	}
	folded := domain.FoldText(strings.Join(texts, " "))
	for _, k := range modalityKeywords {
		if k.re.MatchString(folded) {
			p.Modalidade = k.label
			break
		}
	}
	return p
}

func renderMethodology(p MethodologyPayload) string {
	return renderHeadedFields([]labeledField{
		{"Modalidade", p.Modalidade},
		{"Estratégias de ensino", p.Estrategias},
		{"Recursos didáticos", p.Recursos},
		{"Atividades", p.Atividades},
	})
}

// ---------------------------------------------------------------------------
// Contacts
// ---------------------------------------------------------------------------

var contactFields = []fieldSpec{
	{name: "email", match: prefixes("e-mail", "email", "correio")},
	{name: "telefone", match: prefixes("telefone", "fone", "celular", "whatsapp", "tel")},
	{name: "sala", match: prefixes("sala", "local", "gabinete")},
	{name: "horario", match: prefixes("horario", "atendimento")},
	{name: "site", match: prefixes("site", "pagina", "url", "web")},
}

var (
	emailRe = regexp.MustCompile(`[\w.+-]+@[\w-]+(?:\.[\w-]+)+`)
	urlRe   = regexp.MustCompile(`(?:https?://|www\.)\S+`)
	phoneRe = regexp.MustCompile(`\+?\(?\d[\d\s().-]{6,}\d`)
)

func newContactsConverter() Converter {
	return converter[ContactsPayload]{
		kind:   KindContacts,
		parse:  parseContacts,
		render: renderContacts,
	}
}

// parseContacts reads "Label: value" lines first. Lines without a known
// label may still fill an empty field when they contain an e-mail address,
// a URL or a phone number.
func parseContacts(f fragment) ContactsPayload {
	v := make(map[string]string)
	var loose []string

	for _, b := range f.blocks {
		if b.kind == blockRow || b.text == "" {
			continue
		}
		if label, value, ok := splitLabel(b.text); ok {
			if name, ok := matchField(contactFields, label); ok {
				if v[name] == "" {
					v[name] = value
				}
				continue
			}
		}
		loose = append(loose, b.text)
	}

	for _, text := range loose {
		if v["email"] == "" {
			v["email"] = emailRe.FindString(text)
		}
		if v["site"] == "" {
			v["site"] = urlRe.FindString(text)
		}
		if v["telefone"] == "" {
			v["telefone"] = strings.TrimSpace(phoneRe.FindString(text))
		}
	}

	return ContactsPayload{
		Email:    v["email"],
		Telefone: v["telefone"],
		Sala:     v["sala"],
		Horario:  v["horario"],
		Site:     v["site"],
	}
}

func renderContacts(p ContactsPayload) string {
	var b strings.Builder
	renderLabeledList(&b, "contatos", []labeledField{
		{"E-mail", p.Email},
		{"Telefone", p.Telefone},
		{"Sala", p.Sala},
		{"Horário de atendimento", p.Horario},
		{"Site", p.Site},
	})
	return b.String()
}
