// Package content loads study content (domains, subtopics, flashcards,
// questions and the study plan) from a YAML file into the store.
package content

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/examprep/internal/apperr"
	"github.com/abhisek/examprep/internal/quiz"
)

// File is the top-level layout of a content file.
type File struct {
	Domains []Domain    `yaml:"domains"`
	Plan    []PlanBlock `yaml:"plan"`
}

// Domain is one exam domain with everything filed under it.
type Domain struct {
	Name        string      `yaml:"name"`
	Section     int         `yaml:"section"`
	Weight      float64     `yaml:"weight"`
	Description string      `yaml:"description"`
	Subtopics   []Subtopic  `yaml:"subtopics"`
	Flashcards  []Flashcard `yaml:"flashcards"`
	Questions   []Question  `yaml:"questions"`
}

type Subtopic struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type Flashcard struct {
	Front    string `yaml:"front"`
	Back     string `yaml:"back"`
	Subtopic string `yaml:"subtopic"`
}

type Question struct {
	Stem        string   `yaml:"stem"`
	Choices     []string `yaml:"choices"`
	Answer      string   `yaml:"answer"`
	Explanation string   `yaml:"explanation"`
	Subtopic    string   `yaml:"subtopic"`
}

// PlanBlock adds Days consecutive plan days for one domain. An empty Domain
// makes mixed review days.
type PlanBlock struct {
	Domain  string `yaml:"domain"`
	Days    int    `yaml:"days"`
	Reading string `yaml:"reading"`
}

// Parse decodes a content file and validates it.
func Parse(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// ParseFile reads and parses the content file at path.
func ParseFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content file: %w", err)
	}
	defer fh.Close()
	return Parse(fh)
}

// Validate checks names, references and answers.
func (f *File) Validate() error {
	if len(f.Domains) == 0 {
		return apperr.Invalid("domains", 0, "content file has no domains")
	}

	domains := make(map[string]bool, len(f.Domains))
	for _, d := range f.Domains {
		if strings.TrimSpace(d.Name) == "" {
			return apperr.Invalid("domain name", d.Name, "must not be empty")
		}
		if domains[d.Name] {
			return apperr.Invalid("domain name", d.Name, "duplicate domain")
		}
		domains[d.Name] = true

		subs := make(map[string]bool, len(d.Subtopics))
		for _, st := range d.Subtopics {
			if strings.TrimSpace(st.Name) == "" {
				return apperr.Invalid("subtopic name", st.Name, "must not be empty in domain "+d.Name)
			}
			subs[st.Name] = true
		}
		for i, fc := range d.Flashcards {
			if fc.Front == "" || fc.Back == "" {
				return apperr.Invalid("flashcard", i+1, "front and back are required in domain "+d.Name)
			}
			if fc.Subtopic != "" && !subs[fc.Subtopic] {
				return apperr.Invalid("flashcard subtopic", fc.Subtopic, "unknown in domain "+d.Name)
			}
		}
		for i, q := range d.Questions {
			if q.Stem == "" {
				return apperr.Invalid("question", i+1, "stem is required in domain "+d.Name)
			}
			if len(q.Choices) != len(quiz.Letters) {
				return apperr.Invalid("question choices", len(q.Choices), "exactly four choices are required")
			}
			if _, err := quiz.NormalizeAnswer(q.Answer); err != nil {
				return err
			}
			if q.Subtopic != "" && !subs[q.Subtopic] {
				return apperr.Invalid("question subtopic", q.Subtopic, "unknown in domain "+d.Name)
			}
		}
	}

	for _, p := range f.Plan {
		if p.Days <= 0 {
			return apperr.Invalid("plan days", p.Days, "must be positive")
		}
		if p.Domain != "" && !domains[p.Domain] {
			return apperr.Invalid("plan domain", p.Domain, "unknown domain")
		}
	}
	return nil
}
