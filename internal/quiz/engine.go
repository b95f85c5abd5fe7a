package quiz

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/fartec0/aigp-codex/internal/content"
	"github.com/fartec0/aigp-codex/internal/store"
)

// PassingScore is the fixed pass threshold, in percent.
const PassingScore = 70.0

// examReadyScore is where the positive recommendation kicks in.
const examReadyScore = 90.0

// recentResultsCap bounds the recent-results window in statistics.
const recentResultsCap = 50

// Engine generates quiz sessions from the question bank, grades them,
// and answers statistics queries over persisted results.
type Engine struct {
	bank    *content.Bank
	results store.ResultRepo
	rng     *rand.Rand
	now     func() time.Time
}

// NewEngine creates a grading engine over the given bank and result store.
func NewEngine(bank *content.Bank, results store.ResultRepo) *Engine {
	return &Engine{
		bank:    bank,
		results: results,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:     time.Now,
	}
}

// Generate builds a new quiz session for the given configuration.
func (e *Engine) Generate(cfg Config) (*Session, error) {
	rc := cfg.resolve()

	pool := e.filterPool(rc.domain, rc.difficulty)
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: domain=%q difficulty=%q", ErrEmptyPool, rc.domain, rc.difficulty)
	}

	n := rc.questions
	if n > len(pool) {
		// A pool smaller than the request shrinks the session silently.
		n = len(pool)
	}

	var selected []content.Question
	if rc.mode == ModeExamSimulation && rc.domain == AnyDomain {
		selected = e.stratifiedSample(pool, n)
	} else {
		selected = e.uniformSample(pool, n)
	}

	return &Session{
		ID:               uuid.NewString(),
		Mode:             rc.mode,
		DomainFocus:      rc.domain,
		DifficultyLevel:  rc.difficulty,
		Questions:        selected,
		StartedAt:        e.now(),
		TimeLimitMinutes: rc.minutes,
	}, nil
}

func (e *Engine) filterPool(domain, difficulty string) []content.Question {
	var pool []content.Question
	for _, q := range e.bank.Questions {
		if domain != AnyDomain && q.Domain != domain {
			continue
		}
		if difficulty != AnyDifficulty && q.Difficulty != difficulty {
			continue
		}
		pool = append(pool, q)
	}
	return pool
}

// uniformSample draws n questions without replacement, uniformly.
func (e *Engine) uniformSample(pool []content.Question, n int) []content.Question {
	shuffled := make([]content.Question, len(pool))
	copy(shuffled, pool)
	e.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

// stratifiedSample apportions n across domains in proportion to each
// domain's weight using the largest-remainder method, then draws
// uniformly within each domain. Quotas a domain's pool cannot fill are
// topped up from the remaining questions, so the proportions are
// best-effort rather than guaranteed.
func (e *Engine) stratifiedSample(pool []content.Question, n int) []content.Question {
	byDomain := make(map[string][]content.Question)
	weights := make(map[string]float64)
	var domains []string
	for _, q := range pool {
		if _, seen := byDomain[q.Domain]; !seen {
			domains = append(domains, q.Domain)
		}
		byDomain[q.Domain] = append(byDomain[q.Domain], q)
		if q.DomainWeight > weights[q.Domain] {
			weights[q.Domain] = q.DomainWeight
		}
	}
	sort.Strings(domains)

	var totalWeight float64
	for _, d := range domains {
		if weights[d] <= 0 {
			weights[d] = 1
		}
		totalWeight += weights[d]
	}

	type share struct {
		domain   string
		quota    int
		fraction float64
	}
	shares := make([]share, 0, len(domains))
	assigned := 0
	for _, d := range domains {
		exact := float64(n) * weights[d] / totalWeight
		quota := int(exact)
		shares = append(shares, share{domain: d, quota: quota, fraction: exact - float64(quota)})
		assigned += quota
	}

	// Hand the leftover seats to the largest fractional remainders.
	sort.SliceStable(shares, func(i, j int) bool { return shares[i].fraction > shares[j].fraction })
	for i := 0; assigned < n; i = (i + 1) % len(shares) {
		shares[i].quota++
		assigned++
	}

	selected := make([]content.Question, 0, n)
	taken := make(map[string]bool, n)
	for _, sh := range shares {
		group := byDomain[sh.domain]
		quota := sh.quota
		if quota > len(group) {
			quota = len(group)
		}
		for _, q := range e.uniformSample(group, quota) {
			selected = append(selected, q)
			taken[q.ID] = true
		}
	}

	// Small or uneven domain pools can leave a shortfall; fill it from
	// whatever remains.
	if len(selected) < n {
		var rest []content.Question
		for _, q := range pool {
			if !taken[q.ID] {
				rest = append(rest, q)
			}
		}
		need := n - len(selected)
		if need > len(rest) {
			need = len(rest)
		}
		selected = append(selected, e.uniformSample(rest, need)...)
	}

	e.rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	return selected
}

// Finalize grades the session, persists the result, and consumes the
// session. user is nil for anonymous callers.
func (e *Engine) Finalize(ctx context.Context, s *Session, user *store.User) (*store.Result, error) {
	if s.consumed {
		return nil, ErrAlreadyFinalized
	}
	total := len(s.Questions)
	if total == 0 {
		return nil, ErrEmptySession
	}

	type tally struct{ correct, total int }
	byDomain := make(map[string]*tally)
	byDifficulty := make(map[string]*tally)
	answers := make([]store.ResultAnswer, 0, total)
	correct := 0

	for pos, q := range s.Questions {
		dTally := byDomain[q.Domain]
		if dTally == nil {
			dTally = &tally{}
			byDomain[q.Domain] = dTally
		}
		fTally := byDifficulty[q.Difficulty]
		if fTally == nil {
			fTally = &tally{}
			byDifficulty[q.Difficulty] = fTally
		}
		dTally.total++
		fTally.total++

		ans := store.ResultAnswer{
			QuestionID:   q.ID,
			Domain:       q.Domain,
			Difficulty:   q.Difficulty,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
			LegalRef:     q.LegalReference,
		}
		if sel, ok := s.answers[pos]; ok {
			selected := sel
			ans.SelectedIndex = &selected
			if sel == q.CorrectIndex {
				ans.IsCorrect = true
				correct++
				dTally.correct++
				fTally.correct++
			}
		}
		answers = append(answers, ans)
	}

	score := float64(correct) / float64(total) * 100
	completion := float64(len(s.answers)) / float64(total) * 100

	domainPerf := make(map[string]store.Performance, len(byDomain))
	for d, t := range byDomain {
		domainPerf[d] = store.Performance{
			Correct: t.correct,
			Total:   t.total,
			Percent: float64(t.correct) / float64(t.total) * 100,
		}
	}
	difficultyPerf := make(map[string]store.Performance, len(byDifficulty))
	for d, t := range byDifficulty {
		difficultyPerf[d] = store.Performance{
			Correct: t.correct,
			Total:   t.total,
			Percent: float64(t.correct) / float64(t.total) * 100,
		}
	}

	now := e.now()
	res := &store.Result{
		SessionID:             s.ID,
		UserType:              "anonymous",
		Mode:                  s.Mode,
		DomainFocus:           s.DomainFocus,
		DifficultyLevel:       s.DifficultyLevel,
		TotalQuestions:        total,
		AnsweredQuestions:     len(s.answers),
		CorrectAnswers:        correct,
		Score:                 score,
		CompletionRate:        completion,
		TimeTakenMinutes:      s.Elapsed(now).Minutes(),
		Passed:                score >= PassingScore,
		DomainPerformance:     domainPerf,
		DifficultyPerformance: difficultyPerf,
		Recommendations:       buildRecommendations(score, completion, domainPerf),
		DetailedAnswers:       answers,
	}
	if user != nil {
		uid := user.ID
		res.UserID = &uid
		res.UserType = "authenticated"
	}

	saved, err := e.results.Save(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("persist quiz result: %w", err)
	}
	s.consumed = true
	return saved, nil
}

// buildRecommendations produces the ordered guidance list: weak-domain
// messages worst first, then the completion message, then the overall
// message.
func buildRecommendations(score, completion float64, domains map[string]store.Performance) []string {
	type weak struct {
		domain  string
		percent float64
	}
	var weakest []weak
	for d, p := range domains {
		if p.Percent < PassingScore {
			weakest = append(weakest, weak{domain: d, percent: p.Percent})
		}
	}
	sort.Slice(weakest, func(i, j int) bool {
		if weakest[i].percent != weakest[j].percent {
			return weakest[i].percent < weakest[j].percent
		}
		return weakest[i].domain < weakest[j].domain
	})

	var recs []string
	for _, w := range weakest {
		recs = append(recs, fmt.Sprintf("Focus additional study on %s (scored %.1f%%).", w.domain, w.percent))
	}
	if completion < 100 {
		recs = append(recs, fmt.Sprintf("Complete all questions before relying on this score (answered %.1f%%).", completion))
	}
	switch {
	case score < PassingScore:
		recs = append(recs, "Overall score is below the passing threshold. Review the fundamentals before re-attempting.")
	case score >= examReadyScore:
		recs = append(recs, "Excellent performance. You are exam-ready.")
	}
	return recs
}

// Statistics summarizes a caller's result history.
type Statistics struct {
	Count        int
	AverageScore float64
	BestScore    float64
	Recent       []*store.Result
	DomainTrend  map[string]float64
}

// UserStatistics summarizes an authenticated user's full history. The
// recent window is capped, but count, average, and best cover everything.
func (e *Engine) UserStatistics(ctx context.Context, userID int) (*Statistics, error) {
	all, err := e.results.RecentByUser(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("query user results: %w", err)
	}
	return summarize(all), nil
}

// AnonymousStatistics summarizes the most recent anonymous results
// system-wide. Anonymous identity is a free-text name with no guarantee,
// so the scope is global and the window is the recent cap.
func (e *Engine) AnonymousStatistics(ctx context.Context) (*Statistics, error) {
	rows, err := e.results.RecentAnonymous(ctx, recentResultsCap)
	if err != nil {
		return nil, fmt.Errorf("query anonymous results: %w", err)
	}
	return summarize(rows), nil
}

// summarize reduces newest-first result rows into a Statistics value.
func summarize(rows []*store.Result) *Statistics {
	stats := &Statistics{DomainTrend: make(map[string]float64)}
	stats.Count = len(rows)
	if len(rows) == 0 {
		return stats
	}

	var sum float64
	for _, r := range rows {
		sum += r.Score
		if r.Score > stats.BestScore {
			stats.BestScore = r.Score
		}
	}
	stats.AverageScore = sum / float64(len(rows))

	recent := rows
	if len(recent) > recentResultsCap {
		recent = recent[:recentResultsCap]
	}
	stats.Recent = recent

	counts := make(map[string]int)
	for _, r := range recent {
		for d, p := range r.DomainPerformance {
			stats.DomainTrend[d] += p.Percent
			counts[d]++
		}
	}
	for d := range stats.DomainTrend {
		stats.DomainTrend[d] /= float64(counts[d])
	}
	return stats
}
