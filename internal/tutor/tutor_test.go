package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fartec0/aigp-codex/internal/llm"
	"github.com/fartec0/aigp-codex/internal/store"
)

func sampleResult() *store.Result {
	return &store.Result{
		SessionID:         "sess-1",
		UserType:          "authenticated",
		Mode:              "domain_focus",
		DomainFocus:       "Risk Management & Assessment",
		TotalQuestions:    5,
		AnsweredQuestions: 5,
		CorrectAnswers:    3,
		Score:             60,
		CompletionRate:    100,
		Passed:            false,
		DomainPerformance: map[string]store.Performance{
			"Risk Management & Assessment": {Correct: 3, Total: 5, Percent: 60},
		},
		Recommendations: []string{
			"Focus additional study on Risk Management & Assessment (scored 60.0%).",
		},
	}
}

func TestGuide(t *testing.T) {
	canned := json.RawMessage(`{
		"summary": "Close to passing but risk management needs work.",
		"priorities": ["Risk Management & Assessment"],
		"next_steps": ["Re-read the risk classification criteria", "Retake a domain focus quiz"]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: canned})
	svc := NewService(mock)

	g, err := svc.Guide(context.Background(), sampleResult())
	if err != nil {
		t.Fatalf("guide: %v", err)
	}
	if g.Summary == "" || len(g.Priorities) != 1 || len(g.NextSteps) != 2 {
		t.Fatalf("guidance = %+v", g)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "study-guidance" {
		t.Fatalf("schema = %+v", req.Schema)
	}
	if len(req.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(req.Messages))
	}
	prompt := req.Messages[0].Content
	for _, want := range []string{"60.0%", "Risk Management & Assessment", "domain_focus"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestGuideProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue fails
	svc := NewService(mock)

	_, err := svc.Guide(context.Background(), sampleResult())
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
}

func TestGuideRejectsBadJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"just a string"`)})
	svc := NewService(mock)

	if _, err := svc.Guide(context.Background(), sampleResult()); err == nil {
		t.Fatal("expected decode error")
	}
}
