package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fartec0/aigp-codex/internal/store"
)

// loggingProvider appends one ledger row per model call.
type loggingProvider struct {
	inner    Provider
	provider string
	events   store.TutorEventRepo
}

// WithLogging wraps a Provider with request-ledger logging. providerName
// is the configured backend ("anthropic", "openai", ...), distinct from
// the model id the backend reports.
func WithLogging(p Provider, providerName string, events store.TutorEventRepo) Provider {
	return &loggingProvider{inner: p, provider: providerName, events: events}
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	data := store.TutorRequestData{
		Provider:  l.provider,
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// A ledger write failure must not fail the request itself.
	if logErr := l.events.Append(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record tutor request: %v\n", logErr)
	}

	return resp, err
}

func (l *loggingProvider) ModelID() string {
	return l.inner.ModelID()
}
