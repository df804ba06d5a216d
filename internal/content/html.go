package content

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

type blockKind int

const (
	blockHeading blockKind = iota
	blockParagraph
	blockItem
	blockRow
)

// block is one unit of text recovered from an HTML fragment.
type block struct {
	kind    blockKind
	level   int      // heading level
	depth   int      // list nesting, 0 for top-level items
	text    string   // whitespace-collapsed text
	cells   []string // table row cells
	header  bool     // row made only of <th> cells
	checked bool     // list item carries a checked checkbox
}

// fragment is the flattened, document-order view of an HTML fragment
// that the heuristic extractors work on.
type fragment struct {
	blocks []block
	lists  int
	tables int
}

// parseFragment flattens rich-text HTML into blocks. Malformed markup is
// handled by the HTML5 parser's error recovery; it never fails.
func parseFragment(src string) fragment {
	var f fragment
	if strings.TrimSpace(src) == "" {
		return f
	}

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(src), body)
	if err != nil {
		return f
	}

	w := &walker{f: &f}
	for _, n := range nodes {
		w.walk(n, 0)
	}
	w.flush()
	return f
}

type walker struct {
	f      *fragment
	inline strings.Builder
}

func (w *walker) flush() {
	if text := clean(w.inline.String()); text != "" {
		w.f.blocks = append(w.f.blocks, block{kind: blockParagraph, text: text})
	}
	w.inline.Reset()
}

func (w *walker) walk(n *html.Node, depth int) {
	switch n.Type {
	case html.TextNode:
		w.inline.WriteString(n.Data)
		return
	case html.ElementNode:
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			w.walk(c, depth)
		}
		return
	}

	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Head:
		return
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		w.flush()
		if text := textOf(n, false); text != "" {
			w.f.blocks = append(w.f.blocks, block{
				kind:  blockHeading,
				level: int(n.Data[1] - '0'),
				text:  text,
			})
		}
	case atom.Br:
		w.flush()
	case atom.Hr:
		w.flush()
	case atom.Ul, atom.Ol:
		w.flush()
		w.f.lists++
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			w.walkList(c, depth)
		}
	case atom.Table:
		w.flush()
		w.f.tables++
		w.walkTable(n)
	case atom.P, atom.Div, atom.Section, atom.Article, atom.Blockquote, atom.Pre, atom.Body:
		w.flush()
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			w.walk(c, depth)
		}
		w.flush()
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			w.walk(c, depth)
		}
	}
}

func (w *walker) walkList(n *html.Node, depth int) {
	if n.Type != html.ElementNode {
		return
	}
	if n.DataAtom != atom.Li {
		// Stray markup between items: treat as nested content.
		w.walk(n, depth)
		w.flush()
		return
	}

	w.f.blocks = append(w.f.blocks, block{
		kind:    blockItem,
		depth:   depth,
		text:    textOf(n, true),
		checked: hasCheckedBox(n),
	})

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.DataAtom == atom.Ul || c.DataAtom == atom.Ol) {
			w.f.lists++
			for gc := c.FirstChild; gc != nil; gc = gc.NextSibling {
				w.walkList(gc, depth+1)
			}
		}
	}
}

func (w *walker) walkTable(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Thead, atom.Tbody, atom.Tfoot:
			w.walkTable(c)
		case atom.Tr:
			row := block{kind: blockRow, header: true}
			for cell := c.FirstChild; cell != nil; cell = cell.NextSibling {
				if cell.Type != html.ElementNode {
					continue
				}
				if cell.DataAtom != atom.Td && cell.DataAtom != atom.Th {
					continue
				}
				if cell.DataAtom == atom.Td {
					row.header = false
				}
				row.cells = append(row.cells, textOf(cell, false))
			}
			if len(row.cells) == 0 {
				continue
			}
			row.text = strings.Join(row.cells, " ")
			w.f.blocks = append(w.f.blocks, row)
		}
	}
}

// textOf returns the collapsed text content of n. With skipLists set,
// nested <ul>/<ol> subtrees are left out (used for list items).
func textOf(n *html.Node, skipLists bool) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style:
				return
			case atom.Br:
				b.WriteByte(' ')
				return
			case atom.Ul, atom.Ol:
				if skipLists {
					return
				}
			case atom.P, atom.Div, atom.Li, atom.Td, atom.Th:
				b.WriteByte(' ')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		visit(c)
	}
	return clean(b.String())
}

func hasCheckedBox(n *html.Node) bool {
	var found bool
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if found {
			return
		}
		if n.Type == html.ElementNode {
			if n.DataAtom == atom.Ul || n.DataAtom == atom.Ol {
				return
			}
			if n.DataAtom == atom.Input && attr(n, "type") == "checkbox" && hasAttr(n, "checked") {
				found = true
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		visit(c)
	}
	return found
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return strings.ToLower(a.Val)
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// clean collapses every whitespace run (including non-breaking spaces)
// into a single space and trims the result. Case is preserved.
func clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) || r == ' ' {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

// esc prepares user text for the fixed HTML templates.
func esc(s string) string {
	return html.EscapeString(clean(s))
}

var labelRe = regexp.MustCompile(`^([^:]{1,48}):\s*(.*)$`)

// splitLabel splits "Label: value" text. ok is false when no label is present.
func splitLabel(text string) (label, value string, ok bool) {
	m := labelRe.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	return domain.FoldText(m[1]), clean(m[2]), true
}

// fieldSpec matches a folded label to a named structured field.
type fieldSpec struct {
	name  string
	match func(label string) bool
}

func prefixes(ps ...string) func(string) bool {
	return func(label string) bool {
		for _, p := range ps {
			if strings.HasPrefix(label, p) {
				return true
			}
		}
		return false
	}
}

func matchField(specs []fieldSpec, label string) (string, bool) {
	for _, s := range specs {
		if s.match(label) {
			return s.name, true
		}
	}
	return "", false
}

// extractFields assigns text to named fields using two marker styles:
// a recognised heading opens a field that collects every following block
// until the next heading, and outside such a scope a "Label: value" block
// sets the field inline. found reports whether any marker was recognised.
func extractFields(f fragment, specs []fieldSpec) (values map[string]string, found bool) {
	values = make(map[string]string)
	parts := make(map[string][]string)
	open := ""

	for _, b := range f.blocks {
		if b.kind == blockHeading {
			open = ""
			if name, ok := matchField(specs, domain.FoldText(b.text)); ok {
				open = name
				found = true
			}
			continue
		}
		if open != "" {
			if b.text != "" {
				parts[open] = append(parts[open], b.text)
			}
			continue
		}
		label, value, ok := splitLabel(b.text)
		if !ok {
			continue
		}
		if name, ok := matchField(specs, label); ok {
			found = true
			if value != "" {
				parts[name] = append(parts[name], value)
			}
		}
	}

	for name, p := range parts {
		values[name] = clean(strings.Join(p, " "))
	}
	return values, found
}
