// Package llm abstracts the hosted language models the study tutor calls.
// Providers return schema-validated JSON so callers never parse prose.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single entry point for model calls.
type Provider interface {
	// Generate sends one request and returns the model's output. When the
	// request carries a Schema, Content is JSON validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one model call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Tutor calls are single-turn, so this
	// is usually one user message.
	Messages []Message

	// Schema, when set, makes the provider use its native structured
	// output mechanism and validates the result. When nil, Content is
	// the raw text.
	Schema *Schema

	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Message is one turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must satisfy.
type Schema struct {
	// Name is kebab-case, e.g. "study-guidance". Used as the structured
	// output name where the SDK wants one.
	Name string

	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	Content json.RawMessage
	Usage   Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage reports token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
