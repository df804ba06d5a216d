package content

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// odsGoals holds the pt-BR short names of the 17 goals, indexed by number-1.
var odsGoals = []string{
	"Erradicação da pobreza",
	"Fome zero e agricultura sustentável",
	"Saúde e bem-estar",
	"Educação de qualidade",
	"Igualdade de gênero",
	"Água potável e saneamento",
	"Energia limpa e acessível",
	"Trabalho decente e crescimento econômico",
	"Indústria, inovação e infraestrutura",
	"Redução das desigualdades",
	"Cidades e comunidades sustentáveis",
	"Consumo e produção responsáveis",
	"Ação contra a mudança global do clima",
	"Vida na água",
	"Vida terrestre",
	"Paz, justiça e instituições eficazes",
	"Parcerias e meios de implementação",
}

var (
	odsNumberRe  = regexp.MustCompile(`(?i)\b(?:ods|objetivo)\s*(?:n[º°o.]?\s*)?(\d{1,2})\b`)
	odsLeadingRe = regexp.MustCompile(`^(\d{1,2})\s*[-–—.:)]`)
	odsFolded    = foldAll(odsGoals)
)

func foldAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = domain.FoldText(s)
	}
	return out
}

// ODSGoalName returns the name of goal n, or "" when n is not a goal.
func ODSGoalName(n int) string {
	if n < 1 || n > len(odsGoals) {
		return ""
	}
	return odsGoals[n-1]
}

func newODSConverter() Converter {
	return converter[ODSPayload]{
		kind:   KindODS,
		parse:  parseODS,
		render: renderODS,
	}
}

// parseODS picks goals by number ("ODS 4") or by name. When the text has
// lists, only list items select goals and paragraphs form the
// justification; otherwise paragraphs that reference a goal select it and
// the remaining ones are the justification.
func parseODS(f fragment) ODSPayload {
	var (
		p    ODSPayload
		just []string
	)
	listMode := f.lists > 0

	for _, b := range f.blocks {
		switch b.kind {
		case blockItem:
			if listMode {
				p.Selected = append(p.Selected, goalsIn(b.text, true)...)
			}
		case blockParagraph:
			if listMode {
				just = append(just, b.text)
				continue
			}
			if goals := goalsIn(b.text, false); len(goals) > 0 {
				p.Selected = append(p.Selected, goals...)
				continue
			}
			just = append(just, b.text)
		}
	}

	p.Selected = normalizeGoals(p.Selected)
	p.Justificativa = clean(strings.Join(just, " "))
	return p
}

func goalsIn(text string, item bool) []int {
	var out []int
	for _, m := range odsNumberRe.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil {
			out = append(out, n)
		}
	}
	if item && len(out) == 0 {
		if m := odsLeadingRe.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				out = append(out, n)
			}
		}
	}
	if len(out) > 0 {
		return out
	}
	folded := domain.FoldText(text)
	for i, name := range odsFolded {
		if strings.Contains(folded, name) {
			out = append(out, i+1)
		}
	}
	return out
}

// normalizeGoals sorts, dedupes and drops numbers that are not goals.
func normalizeGoals(in []int) []int {
	out := make([]int, 0, len(in))
	for _, n := range in {
		if n >= 1 && n <= len(odsGoals) {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func renderODS(p ODSPayload) string {
	goals := normalizeGoals(p.Selected)
	just := clean(p.Justificativa)
	if len(goals) == 0 && just == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<ul class="ods">`)
	for _, n := range goals {
		fmt.Fprintf(&b, "<li>ODS %d – %s</li>", n, esc(ODSGoalName(n)))
	}
	b.WriteString("</ul>")
	if just != "" {
		fmt.Fprintf(&b, "<p>%s</p>", esc(just))
	}
	return b.String()
}
