package store

import (
	"context"
	"fmt"

	"github.com/fartec0/aigp-codex/ent"
)

// tutorEventRepo implements TutorEventRepo using the ent client.
type tutorEventRepo struct {
	client *ent.Client
}

func (r *tutorEventRepo) Append(ctx context.Context, data TutorRequestData) error {
	builder := r.client.TutorRequestEvent.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success)

	if data.ErrorMessage != "" {
		builder = builder.SetErrorMessage(data.ErrorMessage)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save tutor request event: %w", err)
	}
	return nil
}
