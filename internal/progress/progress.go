// Package progress tracks curriculum-week completion per identifier. The
// identifier is either an authenticated user id or an anonymous name; the
// ledger does not care which.
package progress

import (
	"context"
	"errors"
	"fmt"

	"github.com/fartec0/aigp-codex/internal/content"
	"github.com/fartec0/aigp-codex/internal/store"
)

// ErrInvalidWeek means the week number is outside the curriculum.
var ErrInvalidWeek = errors.New("week number outside curriculum")

// Summary is the answer to "what has this identifier finished".
type Summary struct {
	CompletedWeeks map[int]bool
	Percent        float64
}

// Service is the progress ledger.
type Service struct {
	records store.ProgressRepo
}

func NewService(records store.ProgressRepo) *Service {
	return &Service{records: records}
}

// UserIdentifier returns the ledger identifier for an authenticated user.
func UserIdentifier(userID int) string {
	return fmt.Sprintf("user:%d", userID)
}

// NameIdentifier returns the ledger identifier for an anonymous name.
func NameIdentifier(name string) string {
	return fmt.Sprintf("name:%s", name)
}

// MarkComplete records the week as finished. Marking an already-finished
// week returns the existing record unchanged.
func (s *Service) MarkComplete(ctx context.Context, identifier string, week int) (*store.ProgressEntry, error) {
	if err := checkWeek(week); err != nil {
		return nil, err
	}

	existing, err := s.records.Find(ctx, identifier, week)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	created, err := s.records.Create(ctx, identifier, week)
	if err != nil {
		// A concurrent mark can land between the lookup and the insert
		// and trip the unique index; the winner's row is the answer.
		if raced, findErr := s.records.Find(ctx, identifier, week); findErr == nil && raced != nil {
			return raced, nil
		}
		return nil, err
	}
	return created, nil
}

// Unmark deletes the completion record, for corrections. Unmarking a
// week that was never completed is a no-op.
func (s *Service) Unmark(ctx context.Context, identifier string, week int) error {
	if err := checkWeek(week); err != nil {
		return err
	}
	return s.records.Delete(ctx, identifier, week)
}

// GetProgress reports the completed weeks and the percent of the
// curriculum they cover.
func (s *Service) GetProgress(ctx context.Context, identifier string) (*Summary, error) {
	weeks, err := s.records.CompletedWeeks(ctx, identifier)
	if err != nil {
		return nil, err
	}

	completed := make(map[int]bool, len(weeks))
	for _, w := range weeks {
		completed[w] = true
	}
	return &Summary{
		CompletedWeeks: completed,
		Percent:        float64(len(completed)) / content.CurriculumWeeks * 100,
	}, nil
}

func checkWeek(week int) error {
	if week < 1 || week > content.CurriculumWeeks {
		return fmt.Errorf("%w: %d", ErrInvalidWeek, week)
	}
	return nil
}
