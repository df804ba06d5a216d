package content

import (
	"fmt"
	"strings"
)

func newEthicsConverter() Converter {
	return converter[EthicsPayload]{
		kind:   KindEthics,
		parse:  parseEthics,
		render: renderEthics,
	}
}

// parseEthics keeps paragraphs as the template text and list items as
// commitments. Headings are decoration and are dropped.
func parseEthics(f fragment) EthicsPayload {
	var (
		p         EthicsPayload
		paragraph []string
	)
	for _, b := range f.blocks {
		switch b.kind {
		case blockParagraph:
			paragraph = append(paragraph, b.text)
		case blockItem:
			if b.text != "" {
				p.Compromissos = append(p.Compromissos, b.text)
			}
		}
	}
	p.Template = clean(strings.Join(paragraph, " "))
	return p
}

func renderEthics(p EthicsPayload) string {
	var b strings.Builder
	if t := clean(p.Template); t != "" {
		fmt.Fprintf(&b, "<p>%s</p>", esc(t))
	}
	writeList(&b, "ul", "etica", nonEmpty(p.Compromissos))
	return b.String()
}
