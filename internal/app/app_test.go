package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fartec0/aigp-codex/internal/content"
	"github.com/fartec0/aigp-codex/internal/llm"
	"github.com/fartec0/aigp-codex/internal/quiz"
)

func writeContentFiles(t *testing.T, dir string) (string, string) {
	t.Helper()

	var weeks []content.Week
	for n := 1; n <= content.CurriculumWeeks; n++ {
		weeks = append(weeks, content.Week{Number: n, Title: fmt.Sprintf("Week %d", n)})
	}
	var questions []content.Question
	for i := 0; i < 6; i++ {
		questions = append(questions, content.Question{
			ID:           fmt.Sprintf("q%d", i),
			Domain:       "AI Governance Fundamentals",
			Difficulty:   content.DifficultyEasy,
			Text:         "?",
			Options:      []string{"a", "b", "c"},
			CorrectIndex: i % 3,
			Explanation:  "because",
		})
	}

	curPath := filepath.Join(dir, "curriculum.json")
	qPath := filepath.Join(dir, "questions.json")
	curJSON, _ := json.Marshal(weeks)
	qJSON, _ := json.Marshal(questions)
	if err := os.WriteFile(curPath, curJSON, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(qPath, qJSON, 0o644); err != nil {
		t.Fatal(err)
	}
	return curPath, qPath
}

func TestNewAndClose(t *testing.T) {
	dir := t.TempDir()
	curPath, qPath := writeContentFiles(t, dir)

	p, err := New(context.Background(), Options{
		DBPath:         filepath.Join(dir, "portal.db"),
		CurriculumPath: curPath,
		QuestionsPath:  qPath,
		LLM:            &llm.Config{Provider: llm.ProviderMock},
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer p.Close()

	if p.Auth == nil || p.Progress == nil || p.Notes == nil || p.Quiz == nil {
		t.Fatal("missing service")
	}
	if p.Tutor == nil {
		t.Fatal("tutor should be enabled with the mock provider")
	}

	// End to end: register, run a quiz, check it lands in statistics.
	ctx := context.Background()
	u, err := p.Auth.Register(ctx, "sam@example.org", "password123", nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	s, err := p.Quiz.Generate(quiz.Config{Mode: quiz.ModeQuickPractice})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for pos, q := range s.Questions {
		if err := s.Submit(pos, q.CorrectIndex); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	res, err := p.Quiz.Finalize(ctx, s, u)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if res.Score != 100.0 {
		t.Fatalf("score = %.1f", res.Score)
	}

	stats, err := p.Quiz.UserStatistics(ctx, u.ID)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.Count != 1 || stats.BestScore != 100.0 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestNewFailsFastOnBadContent(t *testing.T) {
	dir := t.TempDir()
	curPath := filepath.Join(dir, "curriculum.json")
	qPath := filepath.Join(dir, "questions.json")
	if err := os.WriteFile(curPath, []byte(`[]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(qPath, []byte(`[]`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := New(context.Background(), Options{
		DBPath:         filepath.Join(dir, "portal.db"),
		CurriculumPath: curPath,
		QuestionsPath:  qPath,
	})
	var le *content.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("err = %v, want LoadError", err)
	}
}

func TestTutorDisabledWithoutConfig(t *testing.T) {
	for _, key := range []string{"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(key, "")
	}

	dir := t.TempDir()
	curPath, qPath := writeContentFiles(t, dir)

	p, err := New(context.Background(), Options{
		DBPath:         filepath.Join(dir, "portal.db"),
		CurriculumPath: curPath,
		QuestionsPath:  qPath,
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer p.Close()

	if p.Tutor != nil {
		t.Fatal("tutor should be disabled without provider config")
	}
}
