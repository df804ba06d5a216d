package content

import (
	"fmt"
	"regexp"
	"strings"
)

// defaultCategory names items that appear before any category heading.
const defaultCategory = "Geral"

var checkMarkRe = regexp.MustCompile(`^(\[[ xX✓✔]?\]|☑|☒|☐|✅|✔|✓)\s*`)

func newChecklistConverter() Converter {
	return converter[ChecklistPayload]{
		kind:   KindChecklist,
		parse:  parseChecklist,
		render: renderChecklist,
	}
}

// parseChecklist groups list items under the nearest preceding heading.
// "[x]", check glyphs or a checked <input type="checkbox"> mark an item.
func parseChecklist(f fragment) ChecklistPayload {
	var p ChecklistPayload
	cur := -1

	for _, b := range f.blocks {
		switch b.kind {
		case blockHeading:
			p.Categories = append(p.Categories, ChecklistCategory{Nome: b.text})
			cur = len(p.Categories) - 1
		case blockItem:
			item, ok := parseCheckItem(b)
			if !ok {
				continue
			}
			if cur < 0 {
				p.Categories = append(p.Categories, ChecklistCategory{Nome: defaultCategory})
				cur = len(p.Categories) - 1
			}
			p.Categories[cur].Items = append(p.Categories[cur].Items, item)
		}
	}
	return p
}

func parseCheckItem(b block) (ChecklistItem, bool) {
	item := ChecklistItem{Marcado: b.checked}
	text := b.text
	if m := checkMarkRe.FindStringSubmatch(text); m != nil {
		text = text[len(m[0]):]
		switch m[1] {
		case "[ ]", "[]", "☐":
		default:
			item.Marcado = true
		}
	}
	item.Texto = clean(text)
	return item, item.Texto != ""
}

func renderChecklist(p ChecklistPayload) string {
	var b strings.Builder
	for _, c := range p.Categories {
		name := clean(c.Nome)
		if name == "" {
			name = defaultCategory
		}
		fmt.Fprintf(&b, "<h4>%s</h4>", esc(name))

		opened := false
		for _, it := range c.Items {
			text := clean(it.Texto)
			if text == "" {
				continue
			}
			if !opened {
				b.WriteString(`<ul class="checklist">`)
				opened = true
			}
			mark := "[ ]"
			if it.Marcado {
				mark = "[x]"
			}
			fmt.Fprintf(&b, "<li>%s %s</li>", mark, esc(text))
		}
		if opened {
			b.WriteString("</ul>")
		}
	}
	return b.String()
}
