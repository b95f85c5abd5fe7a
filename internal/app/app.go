// Package app wires the store, reference content, and services into one
// portal object. There is no ambient global state; callers construct a
// Portal at startup, pass it around, and close it at shutdown.
package app

import (
	"context"
	"fmt"

	"github.com/fartec0/aigp-codex/internal/auth"
	"github.com/fartec0/aigp-codex/internal/content"
	"github.com/fartec0/aigp-codex/internal/llm"
	"github.com/fartec0/aigp-codex/internal/notes"
	"github.com/fartec0/aigp-codex/internal/progress"
	"github.com/fartec0/aigp-codex/internal/quiz"
	"github.com/fartec0/aigp-codex/internal/store"
	"github.com/fartec0/aigp-codex/internal/tutor"
)

// Options configures portal startup.
type Options struct {
	DBPath string

	// CurriculumPath and QuestionsPath locate the reference data files.
	CurriculumPath string
	QuestionsPath  string

	// LLM selects the tutor's model provider. Leave zero to probe the
	// environment; the tutor stays disabled when nothing is configured.
	LLM *llm.Config
}

// Portal is the assembled application.
type Portal struct {
	Store    *store.Store
	Bank     *content.Bank
	Auth     *auth.Service
	Progress *progress.Service
	Notes    *notes.Service
	Quiz     *quiz.Engine

	// Tutor is nil when no LLM provider is configured.
	Tutor *tutor.Service
}

// New opens the database, loads and validates the reference content, and
// builds every service. A content load failure is fatal: the portal
// cannot serve without a valid question set.
func New(ctx context.Context, opts Options) (*Portal, error) {
	bank, err := content.Load(opts.CurriculumPath, opts.QuestionsPath)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(opts.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	p := &Portal{
		Store:    st,
		Bank:     bank,
		Auth:     auth.NewService(st.Users(), st.Sessions()),
		Progress: progress.NewService(st.Progress()),
		Notes:    notes.NewService(st.Notes()),
		Quiz:     quiz.NewEngine(bank, st.Results()),
	}

	if svc, err := buildTutor(ctx, opts.LLM, st.TutorEvents()); err != nil {
		_ = st.Close()
		return nil, err
	} else if svc != nil {
		p.Tutor = svc
	}

	return p, nil
}

// Close releases the portal's resources.
func (p *Portal) Close() error {
	return p.Store.Close()
}

func buildTutor(ctx context.Context, cfg *llm.Config, events store.TutorEventRepo) (*tutor.Service, error) {
	if cfg == nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, nil
		}
		cfg = &discovered
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("llm config: %w", err)
	}

	provider, err := llm.NewProvider(ctx, *cfg, events)
	if err != nil {
		return nil, fmt.Errorf("llm provider: %w", err)
	}
	return tutor.NewService(provider), nil
}
