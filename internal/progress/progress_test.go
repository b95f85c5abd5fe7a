package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fartec0/aigp-codex/internal/store"
)

type fakeProgressRepo struct {
	nextID  int
	entries map[string]map[int]*store.ProgressEntry

	// findMisses makes the next n lookups report no row, simulating a
	// concurrent insert landing between a lookup and the insert.
	findMisses int
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{entries: make(map[string]map[int]*store.ProgressEntry)}
}

func (r *fakeProgressRepo) Find(_ context.Context, identifier string, week int) (*store.ProgressEntry, error) {
	if r.findMisses > 0 {
		r.findMisses--
		return nil, nil
	}
	return r.entries[identifier][week], nil
}

func (r *fakeProgressRepo) Create(_ context.Context, identifier string, week int) (*store.ProgressEntry, error) {
	if r.entries[identifier][week] != nil {
		return nil, errors.New("unique constraint: identifier+week")
	}
	r.nextID++
	e := &store.ProgressEntry{
		ID:          r.nextID,
		Identifier:  identifier,
		WeekNumber:  week,
		CompletedAt: time.Now(),
	}
	if r.entries[identifier] == nil {
		r.entries[identifier] = make(map[int]*store.ProgressEntry)
	}
	r.entries[identifier][week] = e
	return e, nil
}

func (r *fakeProgressRepo) Delete(_ context.Context, identifier string, week int) error {
	delete(r.entries[identifier], week)
	return nil
}

func (r *fakeProgressRepo) CompletedWeeks(_ context.Context, identifier string) ([]int, error) {
	var out []int
	for w := range r.entries[identifier] {
		out = append(out, w)
	}
	return out, nil
}

func TestMarkCompleteIdempotent(t *testing.T) {
	svc := NewService(newFakeProgressRepo())
	ctx := context.Background()
	id := UserIdentifier(1)

	first, err := svc.MarkComplete(ctx, id, 3)
	if err != nil {
		t.Fatalf("mark: %v", err)
	}

	second, err := svc.MarkComplete(ctx, id, 3)
	if err != nil {
		t.Fatalf("re-mark: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("re-mark created a new row: %d vs %d", second.ID, first.ID)
	}
	if !second.CompletedAt.Equal(first.CompletedAt) {
		t.Fatal("re-mark changed completed_at")
	}
}

func TestMarkCompleteConcurrentInsert(t *testing.T) {
	repo := newFakeProgressRepo()
	svc := NewService(repo)
	ctx := context.Background()
	id := UserIdentifier(1)

	first, err := svc.MarkComplete(ctx, id, 4)
	if err != nil {
		t.Fatalf("mark: %v", err)
	}

	// The row exists but the initial lookup misses it, so the insert
	// hits the unique index and the service must fall back to re-query.
	repo.findMisses = 1
	second, err := svc.MarkComplete(ctx, id, 4)
	if err != nil {
		t.Fatalf("racing mark: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("racing mark returned row %d, want %d", second.ID, first.ID)
	}
}

func TestMarkCompleteInvalidWeek(t *testing.T) {
	svc := NewService(newFakeProgressRepo())
	ctx := context.Background()

	for _, week := range []int{0, -1, 13, 100} {
		if _, err := svc.MarkComplete(ctx, UserIdentifier(1), week); !errors.Is(err, ErrInvalidWeek) {
			t.Errorf("week %d: err = %v, want ErrInvalidWeek", week, err)
		}
	}
}

func TestGetProgress(t *testing.T) {
	svc := NewService(newFakeProgressRepo())
	ctx := context.Background()
	id := NameIdentifier("sam")

	summary, err := svc.GetProgress(ctx, id)
	if err != nil {
		t.Fatalf("empty progress: %v", err)
	}
	if summary.Percent != 0 || len(summary.CompletedWeeks) != 0 {
		t.Fatalf("empty summary = %+v", summary)
	}

	for _, w := range []int{1, 2, 5} {
		if _, err := svc.MarkComplete(ctx, id, w); err != nil {
			t.Fatalf("mark %d: %v", w, err)
		}
	}

	summary, err = svc.GetProgress(ctx, id)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if len(summary.CompletedWeeks) != 3 {
		t.Fatalf("weeks = %v", summary.CompletedWeeks)
	}
	if !summary.CompletedWeeks[5] || summary.CompletedWeeks[4] {
		t.Fatalf("week set wrong: %v", summary.CompletedWeeks)
	}

	want := 3.0 / 12 * 100
	if diff := summary.Percent - want; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("percent = %f, want %f", summary.Percent, want)
	}
}

func TestUnmark(t *testing.T) {
	svc := NewService(newFakeProgressRepo())
	ctx := context.Background()
	id := UserIdentifier(2)

	if _, err := svc.MarkComplete(ctx, id, 7); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if err := svc.Unmark(ctx, id, 7); err != nil {
		t.Fatalf("unmark: %v", err)
	}
	// Unmarking again is a no-op.
	if err := svc.Unmark(ctx, id, 7); err != nil {
		t.Fatalf("second unmark: %v", err)
	}
	if err := svc.Unmark(ctx, id, 0); !errors.Is(err, ErrInvalidWeek) {
		t.Fatalf("invalid week: %v", err)
	}

	summary, err := svc.GetProgress(ctx, id)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if len(summary.CompletedWeeks) != 0 {
		t.Fatalf("weeks = %v, want empty", summary.CompletedWeeks)
	}
}

func TestIdentifiersScopeSeparately(t *testing.T) {
	svc := NewService(newFakeProgressRepo())
	ctx := context.Background()

	if _, err := svc.MarkComplete(ctx, UserIdentifier(1), 1); err != nil {
		t.Fatalf("mark user: %v", err)
	}
	if _, err := svc.MarkComplete(ctx, NameIdentifier("sam"), 2); err != nil {
		t.Fatalf("mark name: %v", err)
	}

	userSummary, _ := svc.GetProgress(ctx, UserIdentifier(1))
	nameSummary, _ := svc.GetProgress(ctx, NameIdentifier("sam"))
	if len(userSummary.CompletedWeeks) != 1 || !userSummary.CompletedWeeks[1] {
		t.Fatalf("user weeks = %v", userSummary.CompletedWeeks)
	}
	if len(nameSummary.CompletedWeeks) != 1 || !nameSummary.CompletedWeeks[2] {
		t.Fatalf("name weeks = %v", nameSummary.CompletedWeeks)
	}
}
