package content

import (
	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// tableRecords reads every table row of f as a field-name → text record.
// Columns are mapped from header rows (<th> rows, or a first row whose every
// cell names a known column); without a header, cells map by position in
// specs order. Rows with no text are skipped.
func tableRecords(f fragment, specs []fieldSpec) []map[string]string {
	var (
		cols  map[int]string
		first = true
		out   []map[string]string
	)

	for _, b := range f.blocks {
		if b.kind != blockRow {
			continue
		}
		if m, ok := headerColumns(b, specs, first); ok {
			cols = m
			first = false
			continue
		}
		first = false

		rec := make(map[string]string)
		for i, cell := range b.cells {
			if cell == "" {
				continue
			}
			name := ""
			switch {
			case cols != nil:
				name = cols[i]
			case i < len(specs):
				name = specs[i].name
			}
			if name == "" {
				continue
			}
			if prev := rec[name]; prev != "" {
				cell = prev + " " + cell
			}
			rec[name] = cell
		}
		if len(rec) > 0 {
			out = append(out, rec)
		}
	}
	return out
}

func headerColumns(b block, specs []fieldSpec, first bool) (map[int]string, bool) {
	if !b.header && !first {
		return nil, false
	}
	cols := make(map[int]string, len(b.cells))
	unmatched := 0
	for i, cell := range b.cells {
		if cell == "" {
			continue
		}
		name, ok := matchField(specs, domain.FoldText(cell))
		if !ok {
			unmatched++
			continue
		}
		cols[i] = name
	}
	if len(cols) == 0 {
		return nil, false
	}
	if !b.header && unmatched > 0 {
		return nil, false
	}
	return cols, true
}
