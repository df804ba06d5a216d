// Package tabs computes the ordered, visible section list of a syllabus
// document from the section catalog and the course's active layout model.
package tabs

import (
	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// Resolve returns the sections a document of the course displays, in order.
//
// Sections that require a non-restricted course are removed for restricted
// courses. Without an active model the registry order is kept. With one, the
// model's TabsOrder is walked keeping known, visible, not-yet-seen ids; base
// sections the model does not mention are appended sorted by label. The header
// section is always first and always visible, whatever the model stores.
func Resolve(registry *domain.SectionRegistry, isRestrictedCourse bool, active *domain.LayoutModel) []domain.SectionDescriptor {
	base := baseSections(registry, isRestrictedCourse)

	if active == nil {
		return pinHeader(base, registry)
	}

	byID := make(map[domain.SectionID]domain.SectionDescriptor, len(base))
	for _, d := range base {
		byID[d.ID] = d
	}

	ordered := make([]domain.SectionDescriptor, 0, len(base))
	referenced := make(map[domain.SectionID]struct{}, len(active.TabsOrder))
	for _, id := range active.TabsOrder {
		if _, dup := referenced[id]; dup {
			continue
		}
		referenced[id] = struct{}{}

		d, ok := byID[id]
		if !ok {
			continue
		}
		if !active.IsVisible(id) && id != domain.SectionHeader {
			continue
		}
		ordered = append(ordered, d)
	}

	var fresh []domain.SectionDescriptor
	for _, d := range base {
		if _, ok := referenced[d.ID]; ok {
			continue
		}
		if d.ID == domain.SectionHeader {
			continue
		}
		fresh = append(fresh, d)
	}
	domain.SortByLabel(fresh)
	ordered = append(ordered, fresh...)

	return pinHeader(ordered, registry)
}

func baseSections(registry *domain.SectionRegistry, isRestrictedCourse bool) []domain.SectionDescriptor {
	all := registry.All()
	base := make([]domain.SectionDescriptor, 0, len(all))
	for _, d := range all {
		if isRestrictedCourse && d.RequiresNonRestrictedCourse {
			continue
		}
		base = append(base, d)
	}
	return base
}

// pinHeader moves the header to index 0, inserting it when a stored model
// dropped or hid it. Registries without a header are returned unchanged.
func pinHeader(sections []domain.SectionDescriptor, registry *domain.SectionRegistry) []domain.SectionDescriptor {
	header, ok := registry.Get(domain.SectionHeader)
	if !ok {
		return sections
	}

	out := make([]domain.SectionDescriptor, 0, len(sections)+1)
	out = append(out, header)
	for _, d := range sections {
		if d.ID == domain.SectionHeader {
			continue
		}
		out = append(out, d)
	}
	return out
}
