package store

import (
	"context"
	"fmt"

	"github.com/fartec0/aigp-codex/ent"
	"github.com/fartec0/aigp-codex/ent/progressrecord"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Find(ctx context.Context, identifier string, week int) (*ProgressEntry, error) {
	row, err := r.client.ProgressRecord.Query().
		Where(
			progressrecord.Identifier(identifier),
			progressrecord.WeekNumber(week),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress record: %w", err)
	}
	return entProgressToEntry(row), nil
}

func (r *progressRepo) Create(ctx context.Context, identifier string, week int) (*ProgressEntry, error) {
	row, err := r.client.ProgressRecord.Create().
		SetIdentifier(identifier).
		SetWeekNumber(week).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create progress record: %w", err)
	}
	return entProgressToEntry(row), nil
}

func (r *progressRepo) Delete(ctx context.Context, identifier string, week int) error {
	_, err := r.client.ProgressRecord.Delete().
		Where(
			progressrecord.Identifier(identifier),
			progressrecord.WeekNumber(week),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete progress record: %w", err)
	}
	return nil
}

func (r *progressRepo) CompletedWeeks(ctx context.Context, identifier string) ([]int, error) {
	rows, err := r.client.ProgressRecord.Query().
		Where(progressrecord.Identifier(identifier)).
		Order(ent.Asc(progressrecord.FieldWeekNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completed weeks: %w", err)
	}
	weeks := make([]int, len(rows))
	for i, row := range rows {
		weeks[i] = row.WeekNumber
	}
	return weeks, nil
}

func entProgressToEntry(p *ent.ProgressRecord) *ProgressEntry {
	return &ProgressEntry{
		ID:          p.ID,
		Identifier:  p.Identifier,
		WeekNumber:  p.WeekNumber,
		CompletedAt: p.CompletedAt,
	}
}
