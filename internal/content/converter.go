package content

import (
	"fmt"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// Converter translates one section kind between rich text and its
// structured payload. ToStructured is best-effort and never fails; text it
// cannot attribute is dropped. ToFreeform is total and deterministic, and
// ToFreeform(ToStructured(h)) == h for every h that ToFreeform produced.
type Converter interface {
	Kind() Kind
	EmptyState() Payload
	ToStructured(html string) Payload
	ToFreeform(p Payload) string
}

type converter[P Payload] struct {
	kind   Kind
	parse  func(fragment) P
	render func(P) string
}

func (c converter[P]) Kind() Kind { return c.kind }

func (c converter[P]) EmptyState() Payload {
	var zero P
	return zero
}

func (c converter[P]) ToStructured(src string) Payload {
	return c.parse(parseFragment(src))
}

// ToFreeform renders p. A payload of another kind renders as the empty state.
func (c converter[P]) ToFreeform(p Payload) string {
	typed, ok := p.(P)
	if !ok {
		var zero P
		typed = zero
	}
	return c.render(typed)
}

// Mode is the representation a section's stored content is in.
type Mode string

const (
	ModeFreeform   Mode = "freeform"
	ModeStructured Mode = "structured"
)

// ParseMode validates a client-supplied mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFreeform, ModeStructured:
		return Mode(s), nil
	}
	return "", domain.NewValidationError("mode", "must be freeform or structured")
}

// ModeOf reports the representation raw stored content is in.
func ModeOf(raw string) Mode {
	if IsStructured(raw) {
		return ModeStructured
	}
	return ModeFreeform
}

// DecodeFor decodes raw and checks that the payload belongs to conv.
func DecodeFor(conv Converter, raw string) (Payload, error) {
	p, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	if p.Layout() != conv.Kind() {
		return nil, &domain.ConversionError{
			Layout: p.Layout().String(),
			Err:    fmt.Errorf("section expects layout %q", conv.Kind()),
		}
	}
	return p, nil
}

// DecodeOrEmpty decodes raw for conv, recovering any conversion error to the
// converter's empty state. The error, if any, is returned for logging only.
func DecodeOrEmpty(conv Converter, raw string) (Payload, error) {
	p, err := DecodeFor(conv, raw)
	if err != nil {
		return conv.EmptyState(), err
	}
	return p, nil
}

// Switch rewrites stored content into the target representation. Content
// already in the target mode is returned unchanged. A structured payload
// that cannot be decoded converts from the empty state; recovered is then
// the conversion error that was swallowed.
func Switch(conv Converter, raw string, target Mode) (out string, recovered error, err error) {
	current := ModeOf(raw)
	if current == target {
		return raw, nil, nil
	}

	switch target {
	case ModeStructured:
		out, err = Encode(conv.ToStructured(raw))
		return out, nil, err
	case ModeFreeform:
		p, decodeErr := DecodeOrEmpty(conv, raw)
		return conv.ToFreeform(p), decodeErr, nil
	}
	return "", nil, domain.NewValidationError("mode", "must be freeform or structured")
}

// Registry maps sections to their converters.
type Registry struct {
	bounds     WeightBounds
	converters map[domain.SectionID]Converter
}

// NewRegistry wires the converter of every section that has a structured
// representation. Sections without one (bibliography, custom) are
// free-form only.
func NewRegistry(bounds WeightBounds) *Registry {
	discipline := newDisciplineInfoConverter()
	return &Registry{
		bounds: bounds,
		converters: map[domain.SectionID]Converter{
			domain.SectionHeader:       discipline,
			domain.SectionAbout:        discipline,
			domain.SectionProfessors:   newProfessorsConverter(),
			domain.SectionCompetencies: newCompetenciesConverter(),
			domain.SectionODS:          newODSConverter(),
			domain.SectionContent:      newContentUnitsConverter(),
			domain.SectionMethodology:  newMethodologyConverter(),
			domain.SectionEvaluation:   newEvaluationConverter(),
			domain.SectionExpected:     newChecklistConverter(),
			domain.SectionEthics:       newEthicsConverter(),
			domain.SectionContacts:     newContactsConverter(),
		},
	}
}

// For returns the converter of a section.
func (r *Registry) For(id domain.SectionID) (Converter, bool) {
	c, ok := r.converters[id]
	return c, ok
}

// Bounds returns the configured evaluation weight bounds.
func (r *Registry) Bounds() WeightBounds {
	return r.bounds
}

// Validate checks range invariants the JSON shape cannot express.
func (r *Registry) Validate(p Payload) error {
	switch v := p.(type) {
	case EvaluationPayload:
		return v.Validate(r.bounds)
	case CompetencyPayload:
		return v.Validate()
	case ODSPayload:
		return v.Validate()
	}
	return nil
}
