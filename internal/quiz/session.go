package quiz

import (
	"fmt"
	"time"

	"github.com/fartec0/aigp-codex/internal/content"
)

// Session is a generated, in-progress quiz. It is mutated only by the
// caller that created it and consumed exactly once by Finalize.
type Session struct {
	ID               string
	Mode             string
	DomainFocus      string
	DifficultyLevel  string
	Questions        []content.Question
	StartedAt        time.Time
	TimeLimitMinutes *int // nil = unlimited

	answers  map[int]int
	consumed bool
}

// Submit records the selected option for the question at the given
// position. Resubmitting a position replaces the earlier answer.
func (s *Session) Submit(position, optionIndex int) error {
	if position < 0 || position >= len(s.Questions) {
		return fmt.Errorf("%w: position %d of %d questions", ErrOutOfRange, position, len(s.Questions))
	}
	q := s.Questions[position]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return fmt.Errorf("%w: option %d of %d for question %s", ErrOutOfRange, optionIndex, len(q.Options), q.ID)
	}

	if s.answers == nil {
		s.answers = make(map[int]int)
	}
	s.answers[position] = optionIndex
	return nil
}

// SubmitBulk records answers for multiple positions at once. It stops at
// the first invalid entry; earlier entries in the map may already be
// recorded.
func (s *Session) SubmitBulk(answers map[int]int) error {
	for pos, opt := range answers {
		if err := s.Submit(pos, opt); err != nil {
			return err
		}
	}
	return nil
}

// Answer returns the recorded option for a position and whether one was
// recorded.
func (s *Session) Answer(position int) (int, bool) {
	opt, ok := s.answers[position]
	return opt, ok
}

// Answered reports how many questions have a recorded answer.
func (s *Session) Answered() int {
	return len(s.answers)
}

// Elapsed returns wall-clock time since the session started.
func (s *Session) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.StartedAt)
}

// TimeExpired reports whether the session's soft deadline has passed.
// The engine never rejects late answers; callers decide how to treat
// overruns.
func (s *Session) TimeExpired(now time.Time) bool {
	if s.TimeLimitMinutes == nil {
		return false
	}
	return s.Elapsed(now) > time.Duration(*s.TimeLimitMinutes)*time.Minute
}
