package content

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadError reports malformed reference data. It is the one fatal error
// class: without valid content the portal cannot serve, so callers should
// fail fast at startup rather than continue.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads and validates the curriculum and question bank files.
func Load(curriculumPath, questionsPath string) (*Bank, error) {
	curriculum, err := os.ReadFile(curriculumPath)
	if err != nil {
		return nil, &LoadError{Source: curriculumPath, Err: err}
	}
	questions, err := os.ReadFile(questionsPath)
	if err != nil {
		return nil, &LoadError{Source: questionsPath, Err: err}
	}
	return Parse(curriculum, questions)
}

// Parse validates and decodes raw curriculum and question bank JSON.
func Parse(curriculum, questions []byte) (*Bank, error) {
	weeks, err := parseCurriculum(curriculum)
	if err != nil {
		return nil, &LoadError{Source: "curriculum", Err: err}
	}
	qs, err := parseQuestions(questions)
	if err != nil {
		return nil, &LoadError{Source: "question bank", Err: err}
	}

	b := &Bank{Weeks: weeks, Questions: qs}
	b.index()
	return b, nil
}

func parseCurriculum(raw []byte) ([]Week, error) {
	if err := validateJSON("curriculum", curriculumSchema, raw); err != nil {
		return nil, err
	}

	var weeks []Week
	if err := json.Unmarshal(raw, &weeks); err != nil {
		return nil, err
	}

	if len(weeks) != CurriculumWeeks {
		return nil, fmt.Errorf("curriculum has %d weeks, want %d", len(weeks), CurriculumWeeks)
	}
	seen := make(map[int]bool, len(weeks))
	for _, w := range weeks {
		if seen[w.Number] {
			return nil, fmt.Errorf("duplicate week number %d", w.Number)
		}
		seen[w.Number] = true
	}
	for n := 1; n <= CurriculumWeeks; n++ {
		if !seen[n] {
			return nil, fmt.Errorf("missing week number %d", n)
		}
	}
	return weeks, nil
}

func parseQuestions(raw []byte) ([]Question, error) {
	if err := validateJSON("questions", questionsSchema, raw); err != nil {
		return nil, err
	}

	var qs []Question
	if err := json.Unmarshal(raw, &qs); err != nil {
		return nil, err
	}
	if len(qs) == 0 {
		return nil, fmt.Errorf("question bank is empty")
	}

	seen := make(map[string]bool, len(qs))
	for _, q := range qs {
		if seen[q.ID] {
			return nil, fmt.Errorf("question %q: duplicate id", q.ID)
		}
		seen[q.ID] = true

		// The schema bounds correct_index below; the upper bound depends
		// on the option count, so it is checked here.
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return nil, fmt.Errorf("question %q: correct_index %d out of range for %d options",
				q.ID, q.CorrectIndex, len(q.Options))
		}
	}
	return qs, nil
}
