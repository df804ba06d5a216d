package syllabus

import (
	"errors"
	"strconv"
	"strings"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

const (
	maxTitleLength      = 300
	maxCustomNameLength = 100
)

// CreateInput holds the parameters for a new document.
type CreateInput struct {
	Curso  string
	Title  string
	Header domain.Header
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Curso) == "" {
		errs = append(errs, domain.FieldError{Field: "curso", Message: "required"})
	}
	if len(i.Title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 300 characters"})
	}
	errs = append(errs, validateHeader(i.Header)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateHeader(h domain.Header) []domain.FieldError {
	var errs []domain.FieldError
	for i, name := range h.Professores {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, domain.FieldError{Field: "header.professores", Message: "empty name at position " + strconv.Itoa(i)})
		}
	}
	return errs
}

// CustomInput describes the custom section of a document.
type CustomInput struct {
	Name     string
	Content  string
	Position string
}

func (i CustomInput) validate(sections *domain.SectionRegistry) error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxCustomNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	pos := strings.TrimSpace(i.Position)
	if pos != "" && pos != domain.CustomTabPositionEnd && !sections.Has(domain.SectionID(pos)) {
		errs = append(errs, domain.FieldError{Field: "position", Message: "unknown section " + pos})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CustomInput) tab() *domain.CustomTab {
	pos := strings.TrimSpace(i.Position)
	if pos == "" {
		pos = domain.CustomTabPositionEnd
	}
	return &domain.CustomTab{
		Name:     strings.TrimSpace(i.Name),
		Content:  i.Content,
		Position: pos,
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
