// Package tutor turns a graded quiz result into personalized study
// guidance using a language model. The model output is schema-validated
// JSON so the portal never renders free-form prose it didn't ask for.
package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/fartec0/aigp-codex/internal/llm"
	"github.com/fartec0/aigp-codex/internal/store"
)

const systemPrompt = `You are a study tutor for the AIGP (AI Governance
Professional) certification. You receive a learner's graded quiz result
and produce short, concrete study guidance. Be specific about which
domains to work on and why. Do not invent scores that are not in the
input.`

const maxGuidanceTokens = 1024

// Guidance is the structured advice generated for one quiz result.
type Guidance struct {
	Summary    string   `json:"summary"`
	Priorities []string `json:"priorities"`
	NextSteps  []string `json:"next_steps"`
}

// guidanceSchema constrains the model output.
var guidanceSchema = &llm.Schema{
	Name:        "study-guidance",
	Description: "Study guidance derived from a graded quiz result",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"summary", "priorities", "next_steps"},
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Two or three sentences on overall performance",
			},
			"priorities": map[string]any{
				"type":        "array",
				"description": "Domains to study first, weakest first",
				"items":       map[string]any{"type": "string"},
			},
			"next_steps": map[string]any{
				"type":        "array",
				"description": "Concrete actions for the coming week",
				"items":       map[string]any{"type": "string"},
			},
		},
	},
}

// Service generates guidance through an llm.Provider.
type Service struct {
	provider llm.Provider
}

func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// Guide produces study guidance for a graded result.
func (s *Service) Guide(ctx context.Context, res *store.Result) (*Guidance, error) {
	ctx = llm.WithPurpose(ctx, "study-guidance")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: describeResult(res)},
		},
		Schema:    guidanceSchema,
		MaxTokens: maxGuidanceTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate guidance: %w", err)
	}

	var g Guidance
	if err := json.Unmarshal(resp.Content, &g); err != nil {
		return nil, fmt.Errorf("decode guidance: %w", err)
	}
	return &g, nil
}

// describeResult renders the result as a compact plain-text report the
// model can reason over.
func describeResult(res *store.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Quiz mode: %s\n", res.Mode)
	if res.DomainFocus != "" {
		fmt.Fprintf(&b, "Domain focus: %s\n", res.DomainFocus)
	}
	fmt.Fprintf(&b, "Score: %.1f%% (%d of %d correct, %d answered)\n",
		res.Score, res.CorrectAnswers, res.TotalQuestions, res.AnsweredQuestions)
	fmt.Fprintf(&b, "Passed: %v\n", res.Passed)

	if len(res.DomainPerformance) > 0 {
		b.WriteString("Per-domain results:\n")
		domains := make([]string, 0, len(res.DomainPerformance))
		for d := range res.DomainPerformance {
			domains = append(domains, d)
		}
		sort.Strings(domains)
		for _, d := range domains {
			p := res.DomainPerformance[d]
			fmt.Fprintf(&b, "- %s: %d/%d (%.1f%%)\n", d, p.Correct, p.Total, p.Percent)
		}
	}

	if len(res.Recommendations) > 0 {
		b.WriteString("Rule-based recommendations already shown to the learner:\n")
		for _, r := range res.Recommendations {
			fmt.Fprintf(&b, "- %s\n", r)
		}
	}

	return b.String()
}
