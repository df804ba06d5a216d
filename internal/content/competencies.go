package content

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

var competencyColumns = []fieldSpec{
	{name: "id", match: prefixes("codigo", "cod", "id", "sigla")},
	{name: "descricao", match: prefixes("competencia", "descricao", "habilidade")},
	{name: "grau", match: prefixes("grau", "contribuicao", "nivel", "intensidade")},
}

// competencyLineRe matches loose lines such as "C1 - Comunicar ideias (2)".
var competencyLineRe = regexp.MustCompile(
	`(?i)^([a-z]{1,5}\s?\d+(?:\.\d+)*)\s*[-–—:.)]\s*(.+?)(?:\s*\((?:grau\s*:?\s*)?(\d)\))?$`)

var grauWords = []struct {
	prefix string
	grau   int
}{
	{"nenhum", 0}, {"nao", 0},
	{"baix", 1}, {"frac", 1},
	{"medi", 2}, {"moderad", 2},
	{"alt", 3}, {"fort", 3},
}

func newCompetenciesConverter() Converter {
	return converter[CompetencyPayload]{
		kind:   KindCompetencies,
		parse:  parseCompetencies,
		render: renderCompetencies,
	}
}

func parseCompetencies(f fragment) CompetencyPayload {
	var p CompetencyPayload

	if f.tables > 0 {
		for _, rec := range tableRecords(f, competencyColumns) {
			row := CompetencyRow{
				ID:        rec["id"],
				Descricao: rec["descricao"],
				Grau:      parseGrau(rec["grau"]),
			}
			if row.ID == "" && row.Descricao == "" {
				continue
			}
			p.Rows = append(p.Rows, row)
		}
		return p
	}

	for _, b := range f.blocks {
		if b.kind != blockItem && b.kind != blockParagraph {
			continue
		}
		m := competencyLineRe.FindStringSubmatch(b.text)
		if m == nil {
			continue
		}
		p.Rows = append(p.Rows, CompetencyRow{
			ID:        strings.ReplaceAll(m[1], " ", ""),
			Descricao: clean(m[2]),
			Grau:      parseGrau(m[3]),
		})
	}
	return p
}

// parseGrau reads a contribution degree from a digit or a pt-BR word,
// clamped to [0, MaxGrau]. Unreadable text is 0.
func parseGrau(s string) int {
	s = domain.FoldText(s)
	if s == "" {
		return 0
	}
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return clampGrau(int(r - '0'))
		}
	}
	for _, w := range grauWords {
		if strings.HasPrefix(s, w.prefix) {
			return w.grau
		}
	}
	return 0
}

func clampGrau(g int) int {
	return min(max(g, 0), MaxGrau)
}

func renderCompetencies(p CompetencyPayload) string {
	var b strings.Builder
	n := 0
	for _, r := range p.Rows {
		if clean(r.ID) == "" && clean(r.Descricao) == "" {
			continue
		}
		if n == 0 {
			b.WriteString(`<table class="competencias"><thead><tr>`)
			b.WriteString(`<th>Código</th><th>Competência</th><th>Grau de contribuição</th>`)
			b.WriteString(`</tr></thead><tbody>`)
		}
		n++
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%d</td></tr>",
			esc(r.ID), esc(r.Descricao), clampGrau(r.Grau))
	}
	if n == 0 {
		return ""
	}
	b.WriteString("</tbody></table>")
	return b.String()
}
