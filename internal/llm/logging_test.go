package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fartec0/aigp-codex/internal/store"
)

type fakeEventRepo struct {
	rows []store.TutorRequestData
	err  error
}

func (r *fakeEventRepo) Append(_ context.Context, data store.TutorRequestData) error {
	if r.err != nil {
		return r.err
	}
	r.rows = append(r.rows, data)
	return nil
}

func TestLoggingRecordsProviderAndModel(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 3, OutputTokens: 7},
	})
	events := &fakeEventRepo{}
	p := WithLogging(mock, ProviderMock, events)

	ctx := WithPurpose(context.Background(), "study-guidance")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(events.rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(events.rows))
	}
	row := events.rows[0]
	if row.Provider != ProviderMock {
		t.Fatalf("provider = %q, want %q", row.Provider, ProviderMock)
	}
	if row.Model != "mock" {
		t.Fatalf("model = %q, want %q", row.Model, "mock")
	}
	if row.Purpose != "study-guidance" {
		t.Fatalf("purpose = %q", row.Purpose)
	}
	if !row.Success || row.InputTokens != 3 || row.OutputTokens != 7 {
		t.Fatalf("row = %+v", row)
	}
}

func TestLoggingRecordsFailure(t *testing.T) {
	mock := NewMockProvider()
	events := &fakeEventRepo{}
	p := WithLogging(mock, ProviderMock, events)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error from empty mock queue")
	}

	if len(events.rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(events.rows))
	}
	row := events.rows[0]
	if row.Success || row.ErrorMessage == "" {
		t.Fatalf("row = %+v", row)
	}
}

func TestLoggingLedgerFailureDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	events := &fakeEventRepo{err: errors.New("disk full")}
	p := WithLogging(mock, ProviderMock, events)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
}
