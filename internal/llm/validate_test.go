package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func guidanceSchema() *Schema {
	return &Schema{
		Name:        "test-guidance",
		Description: "test schema",
		Definition: map[string]any{
			"type":     "object",
			"required": []any{"summary", "priorities"},
			"properties": map[string]any{
				"summary": map[string]any{"type": "string"},
				"priorities": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
		},
	}
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{"summary":"solid","priorities":["review week 3"]}`)
	if err := validateResponse(guidanceSchema(), raw); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateResponseRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{broken`},
		{"missing field", `{"summary":"s"}`},
		{"wrong type", `{"summary":1,"priorities":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(guidanceSchema(), json.RawMessage(tt.raw))
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("err = %v, want ErrInvalidResponse", err)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should pass: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"mock needs no key", func(c *Config) { c.Provider = ProviderMock }, false},
		{"anthropic without key", func(c *Config) { c.Provider = ProviderAnthropic }, true},
		{"anthropic with key", func(c *Config) {
			c.Provider = ProviderAnthropic
			c.Anthropic.APIKey = "k"
		}, false},
		{"openai without key", func(c *Config) { c.Provider = ProviderOpenAI }, true},
		{"unknown provider", func(c *Config) { c.Provider = "llamafarm" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := WithPurpose(t.Context(), "study-guidance")
	if got := PurposeFrom(ctx); got != "study-guidance" {
		t.Fatalf("purpose = %q", got)
	}
	if got := PurposeFrom(t.Context()); got != "unknown" {
		t.Fatalf("default purpose = %q", got)
	}
}
