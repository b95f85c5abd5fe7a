package quiz

// Quiz modes.
const (
	ModeQuickPractice  = "quick_practice"
	ModeDomainFocus    = "domain_focus"
	ModeExamSimulation = "exam_simulation"
)

// Caller-supplied bounds.
const (
	MinQuestions = 5
	MaxQuestions = 100
	MinMinutes   = 5
	MaxMinutes   = 120
)

// Filter wildcards accepted for Domain and Difficulty.
const (
	AnyDomain     = ""
	AnyDifficulty = ""
	MixedLevel    = "Mixed"
)

// Config enumerates the recognized quiz options. Zero values mean
// "mode default"; a TimeLimitMinutes pointing at 0 means unlimited.
type Config struct {
	Mode             string
	NumQuestions     int
	Domain           string
	Difficulty       string
	TimeLimitMinutes *int
}

// modeDefault holds the per-mode question count and time limit.
type modeDefault struct {
	questions int
	minutes   int
}

var modeDefaults = map[string]modeDefault{
	ModeQuickPractice:  {questions: 10, minutes: 15},
	ModeDomainFocus:    {questions: 20, minutes: 30},
	ModeExamSimulation: {questions: 50, minutes: 60},
}

// resolved is a Config with defaults applied and overrides bounded.
type resolved struct {
	mode       string
	questions  int
	domain     string
	difficulty string
	minutes    *int // nil = unlimited
}

// resolve applies mode defaults and clamps caller overrides into range.
// Unknown modes fall back to quick_practice defaults.
func (c Config) resolve() resolved {
	def, ok := modeDefaults[c.Mode]
	mode := c.Mode
	if !ok {
		mode = ModeQuickPractice
		def = modeDefaults[ModeQuickPractice]
	}

	questions := def.questions
	if c.NumQuestions > 0 {
		questions = clamp(c.NumQuestions, MinQuestions, MaxQuestions)
	}

	var minutes *int
	switch {
	case c.TimeLimitMinutes == nil:
		m := def.minutes
		minutes = &m
	case *c.TimeLimitMinutes == 0:
		// Explicit zero means unlimited.
		minutes = nil
	default:
		m := clamp(*c.TimeLimitMinutes, MinMinutes, MaxMinutes)
		minutes = &m
	}

	difficulty := c.Difficulty
	if difficulty == MixedLevel {
		difficulty = AnyDifficulty
	}

	return resolved{
		mode:       mode,
		questions:  questions,
		domain:     c.Domain,
		difficulty: difficulty,
		minutes:    minutes,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
