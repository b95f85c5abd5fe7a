// Package content loads the read-only reference data the portal serves:
// the 12-week curriculum and the question bank. Both are supplied as JSON
// at startup, validated once, and never mutated.
package content

import "fmt"

// CurriculumWeeks is the fixed length of the curriculum.
const CurriculumWeeks = 12

// Difficulty levels recognized in the question bank.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Week is one curriculum entry.
type Week struct {
	Number int    `json:"week_number"`
	Title  string `json:"title"`
}

// Question is one question-bank entry. CorrectIndex is a 0-based index
// into Options. DomainWeight is used only for exam-simulation sampling,
// never for scoring.
type Question struct {
	ID             string   `json:"id"`
	Domain         string   `json:"domain"`
	Difficulty     string   `json:"difficulty"`
	Text           string   `json:"question"`
	Options        []string `json:"options"`
	CorrectIndex   int      `json:"correct_index"`
	Explanation    string   `json:"explanation"`
	LegalReference string   `json:"legal_reference,omitempty"`
	DomainWeight   float64  `json:"domain_weight,omitempty"`
}

// Bank is the validated reference data set.
type Bank struct {
	Weeks     []Week
	Questions []Question

	byDomain map[string][]Question
}

// Domains returns the distinct domains present in the bank.
func (b *Bank) Domains() []string {
	out := make([]string, 0, len(b.byDomain))
	for d := range b.byDomain {
		out = append(out, d)
	}
	return out
}

// ByDomain returns the questions tagged with the given domain.
func (b *Bank) ByDomain(domain string) []Question {
	return b.byDomain[domain]
}

// WeekTitle returns the title for a week number, or an error for a
// number outside the curriculum.
func (b *Bank) WeekTitle(week int) (string, error) {
	for _, w := range b.Weeks {
		if w.Number == week {
			return w.Title, nil
		}
	}
	return "", fmt.Errorf("no curriculum week %d", week)
}

func (b *Bank) index() {
	b.byDomain = make(map[string][]Question)
	for _, q := range b.Questions {
		b.byDomain[q.Domain] = append(b.byDomain[q.Domain], q)
	}
}
