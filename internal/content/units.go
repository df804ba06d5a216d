package content

import (
	"fmt"
	"regexp"
	"strings"
)

// unitPrefixRe strips a leading "Unidade 2 –" style numbering from a title.
var unitPrefixRe = regexp.MustCompile(`(?i)^(?:unidade|m[óo]dulo|parte|semana|aula)\s*\d+\s*(?:[-–—:.)]\s*)?`)

func newContentUnitsConverter() Converter {
	return converter[ContentUnitsPayload]{
		kind:   KindContentUnits,
		parse:  parseContentUnits,
		render: renderContentUnits,
	}
}

// parseContentUnits reads units in one of two shapes. When the text carries
// unit markers (headings, or paragraphs numbered like "Unidade 1"), each
// marker opens a unit and the list items and paragraphs after it are its
// topics. Otherwise top-level list items are units and nested items their
// topics.
func parseContentUnits(f fragment) ContentUnitsPayload {
	var p ContentUnitsPayload

	if hasUnitMarkers(f) {
		var cur *ContentUnit
		for _, b := range f.blocks {
			switch {
			case isUnitMarker(b):
				p.Units = append(p.Units, ContentUnit{Titulo: unitTitle(b.text)})
				cur = &p.Units[len(p.Units)-1]
			case b.kind == blockItem || b.kind == blockParagraph:
				if b.text == "" {
					continue
				}
				if cur == nil {
					p.Units = append(p.Units, ContentUnit{})
					cur = &p.Units[len(p.Units)-1]
				}
				cur.Topicos = append(cur.Topicos, b.text)
			}
		}
		return p
	}

	for _, b := range f.blocks {
		if b.kind != blockItem || b.text == "" {
			continue
		}
		if b.depth == 0 || len(p.Units) == 0 {
			p.Units = append(p.Units, ContentUnit{Titulo: unitTitle(b.text)})
			continue
		}
		last := &p.Units[len(p.Units)-1]
		last.Topicos = append(last.Topicos, b.text)
	}
	return p
}

func hasUnitMarkers(f fragment) bool {
	for _, b := range f.blocks {
		if isUnitMarker(b) {
			return true
		}
	}
	return false
}

func isUnitMarker(b block) bool {
	switch b.kind {
	case blockHeading:
		return true
	case blockParagraph:
		return unitPrefixRe.MatchString(b.text)
	}
	return false
}

func unitTitle(text string) string {
	return clean(unitPrefixRe.ReplaceAllString(text, ""))
}

func renderContentUnits(p ContentUnitsPayload) string {
	var b strings.Builder
	n := 0
	for _, u := range p.Units {
		topics := nonEmpty(u.Topicos)
		title := clean(u.Titulo)
		if title == "" && len(topics) == 0 {
			continue
		}
		n++
		if title == "" {
			fmt.Fprintf(&b, "<h3>Unidade %d</h3>", n)
		} else {
			fmt.Fprintf(&b, "<h3>Unidade %d – %s</h3>", n, esc(title))
		}
		writeList(&b, "ul", "", topics)
	}
	return b.String()
}

// nonEmpty returns the cleaned, non-blank entries of items.
func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if c := clean(it); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// writeList renders items as a flat list. Nothing is written for no items.
func writeList(b *strings.Builder, tag, class string, items []string) {
	if len(items) == 0 {
		return
	}
	if class == "" {
		fmt.Fprintf(b, "<%s>", tag)
	} else {
		fmt.Fprintf(b, `<%s class="%s">`, tag, class)
	}
	for _, it := range items {
		fmt.Fprintf(b, "<li>%s</li>", esc(it))
	}
	fmt.Fprintf(b, "</%s>", tag)
}
