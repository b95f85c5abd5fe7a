package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/fartec0/aigp-codex/internal/content"
	"github.com/fartec0/aigp-codex/internal/store"
)

type fakeResultRepo struct {
	nextID int
	saved  []*store.Result
}

func (r *fakeResultRepo) Save(_ context.Context, res *store.Result) (*store.Result, error) {
	r.nextID++
	res.ID = r.nextID
	res.CreatedAt = time.Now()
	// Newest first, like the real queries return.
	r.saved = append([]*store.Result{res}, r.saved...)
	return res, nil
}

func (r *fakeResultRepo) BySession(_ context.Context, sessionID string) (*store.Result, error) {
	for _, res := range r.saved {
		if res.SessionID == sessionID {
			return res, nil
		}
	}
	return nil, nil
}

func (r *fakeResultRepo) RecentByUser(_ context.Context, userID, limit int) ([]*store.Result, error) {
	var out []*store.Result
	for _, res := range r.saved {
		if res.UserID != nil && *res.UserID == userID {
			out = append(out, res)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (r *fakeResultRepo) RecentAnonymous(_ context.Context, limit int) ([]*store.Result, error) {
	var out []*store.Result
	for _, res := range r.saved {
		if res.UserID == nil {
			out = append(out, res)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

// testBank builds a bank with three domains of ten questions each.
func testBank(t *testing.T) *content.Bank {
	t.Helper()
	return testBankWeighted(t, map[string]float64{"A": 0, "B": 0, "C": 0})
}

func testBankWeighted(t *testing.T, domainWeights map[string]float64) *content.Bank {
	t.Helper()

	difficulties := []string{content.DifficultyEasy, content.DifficultyMedium, content.DifficultyHard}
	var qs []content.Question
	for domain, weight := range domainWeights {
		for i := 0; i < 10; i++ {
			qs = append(qs, content.Question{
				ID:           fmt.Sprintf("%s-%d", domain, i),
				Domain:       domain,
				Difficulty:   difficulties[i%len(difficulties)],
				Text:         "?",
				Options:      []string{"w", "x", "y", "z"},
				CorrectIndex: i % 4,
				Explanation:  "because",
				DomainWeight: weight,
			})
		}
	}

	var weeks []content.Week
	for n := 1; n <= content.CurriculumWeeks; n++ {
		weeks = append(weeks, content.Week{Number: n, Title: fmt.Sprintf("Week %d", n)})
	}

	return &content.Bank{Weeks: weeks, Questions: qs}
}

func newTestEngine(t *testing.T) (*Engine, *fakeResultRepo) {
	t.Helper()
	repo := &fakeResultRepo{}
	return NewEngine(testBank(t), repo), repo
}

func TestGenerateDomainFocus(t *testing.T) {
	e, _ := newTestEngine(t)

	s, err := e.Generate(Config{Mode: ModeDomainFocus, Domain: "A", NumQuestions: 5})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(s.Questions) != 5 {
		t.Fatalf("len = %d, want 5", len(s.Questions))
	}
	for _, q := range s.Questions {
		if q.Domain != "A" {
			t.Fatalf("question %s has domain %q, want A", q.ID, q.Domain)
		}
	}
	if s.ID == "" {
		t.Fatal("missing session id")
	}
}

func TestGenerateWithoutReplacement(t *testing.T) {
	e, _ := newTestEngine(t)

	s, err := e.Generate(Config{Mode: ModeDomainFocus, NumQuestions: 30})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	seen := make(map[string]bool)
	for _, q := range s.Questions {
		if seen[q.ID] {
			t.Fatalf("question %s selected twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestGenerateShrinksToPool(t *testing.T) {
	e, _ := newTestEngine(t)

	s, err := e.Generate(Config{Mode: ModeExamSimulation, Domain: "A", NumQuestions: 50})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(s.Questions) != 10 {
		t.Fatalf("len = %d, want 10 (pool size)", len(s.Questions))
	}
}

func TestGenerateEmptyPool(t *testing.T) {
	e, _ := newTestEngine(t)

	_, err := e.Generate(Config{Mode: ModeDomainFocus, Domain: "No Such Domain"})
	if !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("err = %v, want ErrEmptyPool", err)
	}
}

func TestGenerateModeDefaults(t *testing.T) {
	e, _ := newTestEngine(t)

	tests := []struct {
		mode        string
		wantCount   int
		wantMinutes int
	}{
		{ModeQuickPractice, 10, 15},
		{ModeDomainFocus, 20, 30},
		{ModeExamSimulation, 30, 60}, // 50 requested, 30 in the bank
	}

	for _, tt := range tests {
		s, err := e.Generate(Config{Mode: tt.mode})
		if err != nil {
			t.Fatalf("generate %s: %v", tt.mode, err)
		}
		if len(s.Questions) != tt.wantCount {
			t.Errorf("%s: len = %d, want %d", tt.mode, len(s.Questions), tt.wantCount)
		}
		if s.TimeLimitMinutes == nil || *s.TimeLimitMinutes != tt.wantMinutes {
			t.Errorf("%s: minutes = %v, want %d", tt.mode, s.TimeLimitMinutes, tt.wantMinutes)
		}
	}
}

func TestGenerateBoundsOverrides(t *testing.T) {
	e, _ := newTestEngine(t)

	three := 3
	s, err := e.Generate(Config{Mode: ModeQuickPractice, NumQuestions: 2, TimeLimitMinutes: &three})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(s.Questions) != MinQuestions {
		t.Errorf("len = %d, want clamp to %d", len(s.Questions), MinQuestions)
	}
	if s.TimeLimitMinutes == nil || *s.TimeLimitMinutes != MinMinutes {
		t.Errorf("minutes = %v, want clamp to %d", s.TimeLimitMinutes, MinMinutes)
	}

	unlimited := 0
	s, err = e.Generate(Config{Mode: ModeQuickPractice, TimeLimitMinutes: &unlimited})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if s.TimeLimitMinutes != nil {
		t.Errorf("minutes = %v, want unlimited", *s.TimeLimitMinutes)
	}
}

func TestExamSimulationStratification(t *testing.T) {
	repo := &fakeResultRepo{}
	bank := testBankWeighted(t, map[string]float64{"A": 0.5, "B": 0.3, "C": 0.2})
	e := NewEngine(bank, repo)

	s, err := e.Generate(Config{Mode: ModeExamSimulation, NumQuestions: 10})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	counts := make(map[string]int)
	for _, q := range s.Questions {
		counts[q.Domain]++
	}
	// Weights divide 10 exactly, so largest-remainder gives exact quotas.
	want := map[string]int{"A": 5, "B": 3, "C": 2}
	for d, n := range want {
		if counts[d] != n {
			t.Errorf("domain %s: %d questions, want %d (got %v)", d, counts[d], n, counts)
		}
	}
}

func TestSubmitValidation(t *testing.T) {
	e, _ := newTestEngine(t)

	s, err := e.Generate(Config{Mode: ModeDomainFocus, Domain: "A", NumQuestions: 5})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if err := s.Submit(5, 0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("position out of range: %v", err)
	}
	if err := s.Submit(-1, 0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("negative position: %v", err)
	}
	if err := s.Submit(0, 4); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("option out of range: %v", err)
	}

	if err := s.Submit(0, 1); err != nil {
		t.Fatalf("submit: %v", err)
	}
	// Last write wins.
	if err := s.Submit(0, 2); err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if got, ok := s.Answer(0); !ok || got != 2 {
		t.Fatalf("answer(0) = %d,%v, want 2,true", got, ok)
	}
	if s.Answered() != 1 {
		t.Fatalf("answered = %d, want 1", s.Answered())
	}
}

// answerSession answers the first correct questions correctly and the
// rest incorrectly.
func answerSession(t *testing.T, s *Session, correct int) {
	t.Helper()
	for pos, q := range s.Questions {
		opt := q.CorrectIndex
		if pos >= correct {
			opt = (q.CorrectIndex + 1) % len(q.Options)
		}
		if err := s.Submit(pos, opt); err != nil {
			t.Fatalf("submit %d: %v", pos, err)
		}
	}
}

func TestFinalizePerfectScore(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	s, err := e.Generate(Config{Mode: ModeDomainFocus, Domain: "A", NumQuestions: 5})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	answerSession(t, s, 5)

	res, err := e.Finalize(ctx, s, nil)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if res.Score != 100.0 || !res.Passed {
		t.Fatalf("score = %.1f passed = %v, want 100.0 true", res.Score, res.Passed)
	}
	if res.CompletionRate != 100.0 {
		t.Fatalf("completion = %.1f, want 100.0", res.CompletionRate)
	}
	perf, ok := res.DomainPerformance["A"]
	if !ok || perf.Correct != 5 || perf.Total != 5 || perf.Percent != 100.0 {
		t.Fatalf("domain performance = %+v", res.DomainPerformance)
	}
	if len(res.DomainPerformance) != 1 {
		t.Fatalf("absent domains must be omitted, got %v", res.DomainPerformance)
	}

	foundReady := false
	for _, r := range res.Recommendations {
		if strings.Contains(r, "exam-ready") {
			foundReady = true
		}
		if strings.Contains(r, "Focus additional study") {
			t.Fatalf("unexpected weakness message: %q", r)
		}
	}
	if !foundReady {
		t.Fatalf("missing exam-ready message: %v", res.Recommendations)
	}

	if res.UserType != "anonymous" || res.UserID != nil {
		t.Fatalf("user fields: type=%q id=%v", res.UserType, res.UserID)
	}
	if len(res.DetailedAnswers) != 5 {
		t.Fatalf("detailed answers = %d, want 5", len(res.DetailedAnswers))
	}
}

func TestFinalizePartialScore(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	s, err := e.Generate(Config{Mode: ModeDomainFocus, Domain: "A", NumQuestions: 5})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	answerSession(t, s, 3)

	res, err := e.Finalize(ctx, s, nil)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if res.Score != 60.0 || res.Passed {
		t.Fatalf("score = %.1f passed = %v, want 60.0 false", res.Score, res.Passed)
	}
	if len(res.Recommendations) < 2 {
		t.Fatalf("recommendations = %v", res.Recommendations)
	}
	if res.Recommendations[0] != "Focus additional study on A (scored 60.0%)." {
		t.Fatalf("first recommendation = %q", res.Recommendations[0])
	}
	if !strings.Contains(res.Recommendations[1], "Review the fundamentals") {
		t.Fatalf("second recommendation = %q", res.Recommendations[1])
	}
}

func TestRecommendationsWorstDomainFirst(t *testing.T) {
	domains := map[string]store.Performance{
		"Governance": {Correct: 1, Total: 5, Percent: 20.0},
		"Legal":      {Correct: 2, Total: 5, Percent: 40.0},
		"Risk":       {Correct: 3, Total: 5, Percent: 60.0},
		"Ethics":     {Correct: 5, Total: 5, Percent: 100.0},
	}

	recs := buildRecommendations(40.0, 80.0, domains)
	if len(recs) != 5 {
		t.Fatalf("recommendations = %v", recs)
	}

	want := []string{
		"Focus additional study on Governance (scored 20.0%).",
		"Focus additional study on Legal (scored 40.0%).",
		"Focus additional study on Risk (scored 60.0%).",
	}
	for i, w := range want {
		if recs[i] != w {
			t.Fatalf("recs[%d] = %q, want %q", i, recs[i], w)
		}
	}
	if !strings.Contains(recs[3], "Complete all questions") {
		t.Fatalf("recs[3] = %q, want completion message", recs[3])
	}
	if !strings.Contains(recs[4], "Review the fundamentals") {
		t.Fatalf("recs[4] = %q, want overall message", recs[4])
	}
	for _, r := range recs {
		if strings.Contains(r, "Ethics") {
			t.Fatalf("passing domain flagged: %q", r)
		}
	}
}

func TestRecommendationsEqualScoresOrderByDomain(t *testing.T) {
	domains := map[string]store.Performance{
		"Legal":      {Correct: 2, Total: 5, Percent: 40.0},
		"Governance": {Correct: 2, Total: 5, Percent: 40.0},
	}

	recs := buildRecommendations(40.0, 100.0, domains)
	if len(recs) < 2 {
		t.Fatalf("recommendations = %v", recs)
	}
	if recs[0] != "Focus additional study on Governance (scored 40.0%)." {
		t.Fatalf("recs[0] = %q", recs[0])
	}
	if recs[1] != "Focus additional study on Legal (scored 40.0%)." {
		t.Fatalf("recs[1] = %q", recs[1])
	}
}

func TestFinalizeUnansweredQuestions(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	s, err := e.Generate(Config{Mode: ModeDomainFocus, Domain: "A", NumQuestions: 5})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	// Answer 4 of 5 correctly, leave the last unanswered.
	for pos := 0; pos < 4; pos++ {
		if err := s.Submit(pos, s.Questions[pos].CorrectIndex); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	res, err := e.Finalize(ctx, s, nil)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if res.Score != 80.0 {
		t.Fatalf("score = %.1f, want 80.0", res.Score)
	}
	if res.CompletionRate != 80.0 {
		t.Fatalf("completion = %.1f, want 80.0", res.CompletionRate)
	}
	if res.AnsweredQuestions != 4 {
		t.Fatalf("answered = %d, want 4", res.AnsweredQuestions)
	}

	found := false
	for _, r := range res.Recommendations {
		if strings.Contains(r, "Complete all questions") {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing completion message: %v", res.Recommendations)
	}

	last := res.DetailedAnswers[4]
	if last.SelectedIndex != nil || last.IsCorrect {
		t.Fatalf("unanswered question recorded as %+v", last)
	}
}

func TestFinalizeTwice(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	s, err := e.Generate(Config{Mode: ModeQuickPractice})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := e.Finalize(ctx, s, nil); err != nil {
		t.Fatalf("first finalize: %v", err)
	}
	if _, err := e.Finalize(ctx, s, nil); !errors.Is(err, ErrAlreadyFinalized) {
		t.Fatalf("second finalize: %v, want ErrAlreadyFinalized", err)
	}
}

func TestFinalizeEmptySession(t *testing.T) {
	e, _ := newTestEngine(t)

	s := &Session{ID: "empty", Mode: ModeQuickPractice, StartedAt: time.Now()}
	if _, err := e.Finalize(context.Background(), s, nil); !errors.Is(err, ErrEmptySession) {
		t.Fatalf("err = %v, want ErrEmptySession", err)
	}
}

func TestFinalizeAuthenticatedOwner(t *testing.T) {
	e, repo := newTestEngine(t)
	ctx := context.Background()

	s, err := e.Generate(Config{Mode: ModeQuickPractice})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	u := &store.User{ID: 17, Email: "sam@example.org", Role: "student"}
	res, err := e.Finalize(ctx, s, u)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if res.UserType != "authenticated" || res.UserID == nil || *res.UserID != 17 {
		t.Fatalf("user fields: type=%q id=%v", res.UserType, res.UserID)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("saved = %d, want 1", len(repo.saved))
	}
}

func TestUserStatistics(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()
	u := &store.User{ID: 9, Role: "student"}

	scores := []int{5, 3, 4} // correct out of 5
	for _, correct := range scores {
		s, err := e.Generate(Config{Mode: ModeDomainFocus, Domain: "A", NumQuestions: 5})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		answerSession(t, s, correct)
		if _, err := e.Finalize(ctx, s, u); err != nil {
			t.Fatalf("finalize: %v", err)
		}
	}

	// One anonymous result must not leak into the user's statistics.
	s, _ := e.Generate(Config{Mode: ModeQuickPractice})
	if _, err := e.Finalize(ctx, s, nil); err != nil {
		t.Fatalf("finalize anon: %v", err)
	}

	stats, err := e.UserStatistics(ctx, u.ID)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.Count != 3 {
		t.Fatalf("count = %d, want 3", stats.Count)
	}
	if stats.BestScore != 100.0 {
		t.Fatalf("best = %.1f, want 100.0", stats.BestScore)
	}
	want := (100.0 + 60.0 + 80.0) / 3
	if diff := stats.AverageScore - want; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("average = %f, want %f", stats.AverageScore, want)
	}
	if len(stats.Recent) != 3 {
		t.Fatalf("recent = %d, want 3", len(stats.Recent))
	}
	if _, ok := stats.DomainTrend["A"]; !ok {
		t.Fatalf("domain trend missing A: %v", stats.DomainTrend)
	}
}

func TestAnonymousStatisticsScope(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		s, err := e.Generate(Config{Mode: ModeQuickPractice})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if _, err := e.Finalize(ctx, s, nil); err != nil {
			t.Fatalf("finalize: %v", err)
		}
	}
	// Authenticated rows stay out of the anonymous aggregate.
	s, _ := e.Generate(Config{Mode: ModeQuickPractice})
	if _, err := e.Finalize(ctx, s, &store.User{ID: 1}); err != nil {
		t.Fatalf("finalize auth: %v", err)
	}

	stats, err := e.AnonymousStatistics(ctx)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if stats.Count != 3 {
		t.Fatalf("count = %d, want 3", stats.Count)
	}
}

func TestScoreWithinBounds(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	for correct := 0; correct <= 5; correct++ {
		s, err := e.Generate(Config{Mode: ModeDomainFocus, Domain: "B", NumQuestions: 5})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		answerSession(t, s, correct)
		res, err := e.Finalize(ctx, s, nil)
		if err != nil {
			t.Fatalf("finalize: %v", err)
		}

		want := float64(correct) / 5 * 100
		if diff := res.Score - want; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("score = %f, want %f", res.Score, want)
		}
		if res.Score < 0 || res.Score > 100 {
			t.Fatalf("score %f outside [0,100]", res.Score)
		}
	}
}
