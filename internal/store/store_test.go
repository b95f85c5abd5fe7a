package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestUserCreateAndLookup(t *testing.T) {
	s := openTestStore(t)
	repo := s.Users()
	ctx := context.Background()

	u, err := repo.Create(ctx, NewUser{
		Email:        "student@example.org",
		PasswordHash: "deadbeef",
		Salt:         "cafe",
		Role:         "student",
		Profile:      map[string]string{"name": "Sam"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if !u.IsActive {
		t.Fatal("new users should be active")
	}

	got, err := repo.ByEmail(ctx, "student@example.org")
	if err != nil {
		t.Fatalf("by email: %v", err)
	}
	if got == nil || got.ID != u.ID {
		t.Fatalf("lookup mismatch: %+v", got)
	}

	missing, err := repo.ByEmail(ctx, "nobody@example.org")
	if err != nil {
		t.Fatalf("by email (missing): %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for unknown email")
	}
}

func TestUserDuplicateEmailRejected(t *testing.T) {
	s := openTestStore(t)
	repo := s.Users()
	ctx := context.Background()

	nu := NewUser{Email: "dup@example.org", PasswordHash: "h", Salt: "s", Role: "student"}
	if _, err := repo.Create(ctx, nu); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := repo.Create(ctx, nu); err == nil {
		t.Fatal("expected unique constraint violation on duplicate email")
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	sess := &Session{
		Token:     "tok-1",
		UserID:    7,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	if err := repo.Create(ctx, sess); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.ByToken(ctx, "tok-1")
	if err != nil {
		t.Fatalf("by token: %v", err)
	}
	if got == nil || got.UserID != 7 {
		t.Fatalf("lookup mismatch: %+v", got)
	}

	if err := repo.Delete(ctx, "tok-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	// Idempotent delete.
	if err := repo.Delete(ctx, "tok-1"); err != nil {
		t.Fatalf("second delete: %v", err)
	}

	got, err = repo.ByToken(ctx, "tok-1")
	if err != nil {
		t.Fatalf("by token after delete: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil after delete")
	}
}

func TestProgressUniquePerWeek(t *testing.T) {
	s := openTestStore(t)
	repo := s.Progress()
	ctx := context.Background()

	first, err := repo.Create(ctx, "user:1", 3)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// The (identifier, week) pair is unique at the schema level.
	if _, err := repo.Create(ctx, "user:1", 3); err == nil {
		t.Fatal("expected unique constraint violation")
	}

	found, err := repo.Find(ctx, "user:1", 3)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found == nil || !found.CompletedAt.Equal(first.CompletedAt) {
		t.Fatalf("find mismatch: %+v", found)
	}

	weeks, err := repo.CompletedWeeks(ctx, "user:1")
	if err != nil {
		t.Fatalf("completed weeks: %v", err)
	}
	if len(weeks) != 1 || weeks[0] != 3 {
		t.Fatalf("weeks = %v, want [3]", weeks)
	}
}

func TestNoteOwnership(t *testing.T) {
	s := openTestStore(t)
	repo := s.Notes()
	ctx := context.Background()

	uid := 42
	if _, err := repo.Create(ctx, &Note{UserID: &uid, WeekNumber: 1, Title: "a", Content: "x"}); err != nil {
		t.Fatalf("create authenticated note: %v", err)
	}
	if _, err := repo.Create(ctx, &Note{StudentName: "sam", WeekNumber: 1, Title: "b", Content: "y"}); err != nil {
		t.Fatalf("create anonymous note: %v", err)
	}

	byUser, err := repo.ListByUser(ctx, uid, 0)
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(byUser) != 1 || byUser[0].Title != "a" {
		t.Fatalf("byUser = %+v", byUser)
	}

	byName, err := repo.ListByName(ctx, "sam", 1)
	if err != nil {
		t.Fatalf("list by name: %v", err)
	}
	if len(byName) != 1 || byName[0].Title != "b" {
		t.Fatalf("byName = %+v", byName)
	}
}

func TestResultRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Results()
	ctx := context.Background()

	sel := 1
	res := &Result{
		SessionID:         "sess-1",
		UserType:          "anonymous",
		Mode:              "quick_practice",
		TotalQuestions:    2,
		AnsweredQuestions: 2,
		CorrectAnswers:    1,
		Score:             50,
		CompletionRate:    100,
		Passed:            false,
		DomainPerformance: map[string]Performance{
			"AI Governance Fundamentals": {Correct: 1, Total: 2, Percent: 50},
		},
		DifficultyPerformance: map[string]Performance{
			"Easy": {Correct: 1, Total: 2, Percent: 50},
		},
		Recommendations: []string{"review"},
		DetailedAnswers: []ResultAnswer{
			{QuestionID: "q1", Domain: "AI Governance Fundamentals", Difficulty: "Easy", SelectedIndex: &sel, CorrectIndex: 1, IsCorrect: true},
			{QuestionID: "q2", Domain: "AI Governance Fundamentals", Difficulty: "Easy", SelectedIndex: &sel, CorrectIndex: 0, IsCorrect: false},
		},
	}

	saved, err := repo.Save(ctx, res)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == 0 {
		t.Fatal("expected assigned id")
	}

	got, err := repo.BySession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if got == nil {
		t.Fatal("expected stored result")
	}
	if got.Score != 50 || len(got.DetailedAnswers) != 2 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.DomainPerformance["AI Governance Fundamentals"].Total != 2 {
		t.Fatalf("domain performance lost: %+v", got.DomainPerformance)
	}

	anon, err := repo.RecentAnonymous(ctx, 50)
	if err != nil {
		t.Fatalf("recent anonymous: %v", err)
	}
	if len(anon) != 1 {
		t.Fatalf("anon count = %d, want 1", len(anon))
	}
}
