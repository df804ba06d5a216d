package content

import (
	"fmt"
	"regexp"
	"strings"
)

var evaluationColumns = []fieldSpec{
	{name: "instrumento", match: prefixes("instrumento", "avaliacao", "atividade", "tipo")},
	{name: "descricao", match: prefixes("descricao", "detalhe", "criterio")},
	{name: "peso", match: prefixes("peso", "valor", "pontuacao", "%")},
	{name: "data", match: prefixes("data", "prazo", "quando")},
}

// evaluationLineRe matches loose lines such as "Prova 1 - 40%" or
// "Trabalho final (peso 3/10)".
var evaluationLineRe = regexp.MustCompile(
	`(?i)^(.+?)\s*[-–—:(]\s*(?:peso\s*:?\s*)?(\d+(?:[.,]\d+)?\s*%|\d+(?:[.,]\d+)?\s*/\s*\d+(?:[.,]\d+)?|0?[.,]\d+)\s*\)?$`)

func newEvaluationConverter() Converter {
	return converter[EvaluationPayload]{
		kind:   KindEvaluation,
		parse:  parseEvaluation,
		render: renderEvaluation,
	}
}

func parseEvaluation(f fragment) EvaluationPayload {
	var p EvaluationPayload

	if f.tables > 0 {
		for _, rec := range tableRecords(f, evaluationColumns) {
			p.Rows = append(p.Rows, EvaluationRow{
				Instrumento: rec["instrumento"],
				Descricao:   rec["descricao"],
				Peso:        rec["peso"],
				Data:        rec["data"],
			})
		}
		return p
	}

	for _, b := range f.blocks {
		if b.kind != blockItem && b.kind != blockParagraph {
			continue
		}
		m := evaluationLineRe.FindStringSubmatch(b.text)
		if m == nil {
			continue
		}
		p.Rows = append(p.Rows, EvaluationRow{
			Instrumento: clean(m[1]),
			Peso:        strings.ReplaceAll(clean(m[2]), " ", ""),
		})
	}
	return p
}

func renderEvaluation(p EvaluationPayload) string {
	var b strings.Builder
	n := 0
	for _, r := range p.Rows {
		if r.empty() {
			continue
		}
		if n == 0 {
			b.WriteString(`<table class="avaliacao"><thead><tr>`)
			b.WriteString(`<th>Instrumento</th><th>Descrição</th><th>Peso</th><th>Data</th>`)
			b.WriteString(`</tr></thead><tbody>`)
		}
		n++
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			esc(r.Instrumento), esc(r.Descricao), esc(r.Peso), esc(r.Data))
	}
	if n == 0 {
		return ""
	}
	b.WriteString("</tbody></table>")
	return b.String()
}
