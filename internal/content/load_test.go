package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCurriculum(t *testing.T) []byte {
	t.Helper()
	weeks := make([]Week, 0, CurriculumWeeks)
	for n := 1; n <= CurriculumWeeks; n++ {
		weeks = append(weeks, Week{Number: n, Title: fmt.Sprintf("Week %d", n)})
	}
	raw, err := json.Marshal(weeks)
	require.NoError(t, err)
	return raw
}

func validQuestions(t *testing.T) []byte {
	t.Helper()
	qs := []Question{
		{
			ID: "q1", Domain: "AI Governance Fundamentals", Difficulty: DifficultyEasy,
			Text: "Which body enforces the EU AI Act?", Options: []string{"a", "b", "c", "d"},
			CorrectIndex: 2, Explanation: "See Article 70.", LegalReference: "Art. 70",
			DomainWeight: 0.2,
		},
		{
			ID: "q2", Domain: "Risk Management & Assessment", Difficulty: DifficultyHard,
			Text: "What triggers a conformity reassessment?", Options: []string{"a", "b"},
			CorrectIndex: 0, Explanation: "Substantial modification.",
		},
	}
	raw, err := json.Marshal(qs)
	require.NoError(t, err)
	return raw
}

func TestParseValid(t *testing.T) {
	bank, err := Parse(validCurriculum(t), validQuestions(t))
	require.NoError(t, err)

	assert.Len(t, bank.Weeks, CurriculumWeeks)
	assert.Len(t, bank.Questions, 2)
	assert.Len(t, bank.Domains(), 2)
	assert.Len(t, bank.ByDomain("AI Governance Fundamentals"), 1)
	assert.Empty(t, bank.ByDomain("No Such Domain"))

	title, err := bank.WeekTitle(3)
	require.NoError(t, err)
	assert.Equal(t, "Week 3", title)

	_, err = bank.WeekTitle(13)
	assert.Error(t, err)
}

func TestParseCurriculumErrors(t *testing.T) {
	tests := []struct {
		name  string
		weeks []Week
	}{
		{"too few weeks", []Week{{Number: 1, Title: "Week 1"}}},
		{"duplicate week", func() []Week {
			var ws []Week
			for n := 1; n <= CurriculumWeeks; n++ {
				ws = append(ws, Week{Number: n, Title: "t"})
			}
			ws[11].Number = 1
			return ws
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.weeks)
			require.NoError(t, err)

			_, err = Parse(raw, validQuestions(t))
			var le *LoadError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, "curriculum", le.Source)
		})
	}
}

func TestParseQuestionErrors(t *testing.T) {
	base := func() []Question {
		var qs []Question
		require.NoError(t, json.Unmarshal(validQuestions(t), &qs))
		return qs
	}

	tests := []struct {
		name   string
		mutate func([]Question) []Question
	}{
		{"empty bank", func(qs []Question) []Question { return nil }},
		{"duplicate id", func(qs []Question) []Question {
			qs[1].ID = qs[0].ID
			return qs
		}},
		{"correct_index out of range", func(qs []Question) []Question {
			qs[0].CorrectIndex = len(qs[0].Options)
			return qs
		}},
		{"single option", func(qs []Question) []Question {
			qs[0].Options = []string{"only"}
			qs[0].CorrectIndex = 0
			return qs
		}},
		{"unknown difficulty", func(qs []Question) []Question {
			qs[0].Difficulty = "Brutal"
			return qs
		}},
		{"missing domain", func(qs []Question) []Question {
			qs[0].Domain = ""
			return qs
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.mutate(base()))
			require.NoError(t, err)

			_, err = Parse(validCurriculum(t), raw)
			var le *LoadError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, "question bank", le.Source)
		})
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte("{not json"), validQuestions(t))
	var le *LoadError
	require.ErrorAs(t, err, &le)

	_, err = Parse(validCurriculum(t), []byte("[{]"))
	require.ErrorAs(t, err, &le)
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	curPath := filepath.Join(dir, "curriculum.json")
	qPath := filepath.Join(dir, "questions.json")
	require.NoError(t, os.WriteFile(curPath, validCurriculum(t), 0o644))
	require.NoError(t, os.WriteFile(qPath, validQuestions(t), 0o644))

	bank, err := Load(curPath, qPath)
	require.NoError(t, err)
	assert.Len(t, bank.Questions, 2)

	_, err = Load(filepath.Join(dir, "missing.json"), qPath)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
