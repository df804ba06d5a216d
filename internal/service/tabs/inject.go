package tabs

import (
	"slices"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// Inject places the document's custom section into an ordered section list.
//
// A nil custom tab returns the input unchanged. Otherwise any existing custom
// entry is removed and the custom section is inserted right after the section
// named by Position, or appended when Position is "end" or names a section that
// is not in the list (hidden, restricted or unknown).
func Inject(ordered []domain.SectionDescriptor, custom *domain.CustomTab) []domain.SectionDescriptor {
	if custom == nil {
		return ordered
	}

	out := make([]domain.SectionDescriptor, 0, len(ordered)+1)
	for _, d := range ordered {
		if d.ID != domain.SectionCustom {
			out = append(out, d)
		}
	}

	entry := domain.SectionDescriptor{
		ID:    domain.SectionCustom,
		Label: custom.Name,
	}

	if custom.Position == domain.CustomTabPositionEnd {
		return append(out, entry)
	}

	anchor := slices.IndexFunc(out, func(d domain.SectionDescriptor) bool {
		return d.ID.String() == custom.Position
	})
	if anchor < 0 {
		return append(out, entry)
	}

	return slices.Insert(out, anchor+1, entry)
}
