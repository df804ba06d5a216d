// Package catalog imports the institution's course catalog (courses, the
// restricted flag and each course's ordered competency list) from a YAML file.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

type file struct {
	Courses []courseEntry `yaml:"courses"`
}

type courseEntry struct {
	Code         string            `yaml:"code"`
	Name         string            `yaml:"name"`
	Restricted   bool              `yaml:"restricted"`
	Competencies []competencyEntry `yaml:"competencies"`
}

type competencyEntry struct {
	ID        string `yaml:"id"`
	Descricao string `yaml:"descricao"`
}

// LoadFile reads a catalog file.
func LoadFile(path string) ([]domain.Course, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()

	courses, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return courses, nil
}

// Parse decodes and validates a catalog document. Unknown keys are rejected.
func Parse(r io.Reader) ([]domain.Course, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc file
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode: %w", err)
	}

	courses := make([]domain.Course, 0, len(doc.Courses))
	seen := make(map[string]bool, len(doc.Courses))
	for i, entry := range doc.Courses {
		c, err := entry.toDomain()
		if err != nil {
			return nil, fmt.Errorf("courses[%d]: %w", i, err)
		}
		if seen[c.Code] {
			return nil, fmt.Errorf("courses[%d]: duplicate code %q", i, c.Code)
		}
		seen[c.Code] = true
		courses = append(courses, c)
	}
	return courses, nil
}

func (e courseEntry) toDomain() (domain.Course, error) {
	code := strings.TrimSpace(e.Code)
	if code == "" {
		return domain.Course{}, errors.New("code is required")
	}

	c := domain.Course{
		Code:         code,
		Name:         strings.TrimSpace(e.Name),
		Restricted:   e.Restricted,
		Competencies: make([]domain.Competency, 0, len(e.Competencies)),
	}

	ids := make(map[string]bool, len(e.Competencies))
	for j, comp := range e.Competencies {
		id := strings.TrimSpace(comp.ID)
		if id == "" {
			return domain.Course{}, fmt.Errorf("competencies[%d]: id is required", j)
		}
		if ids[id] {
			return domain.Course{}, fmt.Errorf("competencies[%d]: duplicate id %q", j, id)
		}
		ids[id] = true
		c.Competencies = append(c.Competencies, domain.Competency{
			ID:        id,
			Descricao: strings.TrimSpace(comp.Descricao),
		})
	}
	return c, nil
}
