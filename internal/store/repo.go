package store

import (
	"context"
	"time"
)

// User is an identity row without credential material.
type User struct {
	ID          int
	Email       string
	Role        string
	Profile     map[string]string
	CreatedAt   time.Time
	LastLoginAt *time.Time
	IsActive    bool
}

// Credentials is the credential material for one user, looked up only
// during authentication and password changes.
type Credentials struct {
	UserID       int
	PasswordHash string
	Salt         string
	IsActive     bool
}

// NewUser is the input for creating a user row.
type NewUser struct {
	Email        string
	PasswordHash string
	Salt         string
	Role         string
	Profile      map[string]string
}

// UserRepo manages identity rows. Lookups return (nil, nil) when no row
// matches.
type UserRepo interface {
	Create(ctx context.Context, nu NewUser) (*User, error)
	ByEmail(ctx context.Context, email string) (*User, error)
	ByID(ctx context.Context, id int) (*User, error)
	CredentialsByEmail(ctx context.Context, email string) (*Credentials, error)
	CredentialsByID(ctx context.Context, id int) (*Credentials, error)

	// TouchLogin sets last_login_at to now.
	TouchLogin(ctx context.Context, id int) error
	UpdateRole(ctx context.Context, id int, role string) error
	UpdatePassword(ctx context.Context, id int, passwordHash, salt string) error
	Deactivate(ctx context.Context, id int) error
	List(ctx context.Context) ([]*User, error)
}

// Session is an authentication session row.
type Session struct {
	Token     string
	UserID    int
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SessionRepo manages authentication sessions.
type SessionRepo interface {
	Create(ctx context.Context, sess *Session) error
	ByToken(ctx context.Context, token string) (*Session, error)

	// Delete is idempotent: deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes sessions that expired before the given time
	// and reports how many were removed.
	DeleteExpired(ctx context.Context, before time.Time) (int, error)
}

// Note is a free-text note attached to a curriculum week. UserID is set
// for authenticated owners, StudentName for anonymous owners; never both.
type Note struct {
	ID          int
	UserID      *int
	StudentName string
	WeekNumber  int
	Title       string
	Content     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NoteRepo manages week notes.
type NoteRepo interface {
	Create(ctx context.Context, n *Note) (*Note, error)

	// Update changes title and content only; updated_at refreshes.
	Update(ctx context.Context, id int, title, content string) (*Note, error)
	Delete(ctx context.Context, id int) error

	// ListByUser returns notes for an authenticated owner.
	// week == 0 means all weeks.
	ListByUser(ctx context.Context, userID, week int) ([]*Note, error)

	// ListByName returns notes for an anonymous owner name.
	ListByName(ctx context.Context, name string, week int) ([]*Note, error)
}

// ProgressEntry is one completed-week row.
type ProgressEntry struct {
	ID          int
	Identifier  string
	WeekNumber  int
	CompletedAt time.Time
}

// ProgressRepo manages curriculum completion rows.
type ProgressRepo interface {
	// Find returns (nil, nil) when the week is not yet completed.
	Find(ctx context.Context, identifier string, week int) (*ProgressEntry, error)
	Create(ctx context.Context, identifier string, week int) (*ProgressEntry, error)
	Delete(ctx context.Context, identifier string, week int) error
	CompletedWeeks(ctx context.Context, identifier string) ([]int, error)
}

// Performance is a per-domain or per-difficulty tally.
type Performance struct {
	Correct int
	Total   int
	Percent float64
}

// ResultAnswer is the per-question outcome recorded with a result.
type ResultAnswer struct {
	QuestionID    string
	Domain        string
	Difficulty    string
	SelectedIndex *int
	CorrectIndex  int
	IsCorrect     bool
	Explanation   string
	LegalRef      string
}

// Result is a graded, persisted quiz outcome.
type Result struct {
	ID                    int
	SessionID             string
	UserID                *int
	UserType              string
	Mode                  string
	DomainFocus           string
	DifficultyLevel       string
	TotalQuestions        int
	AnsweredQuestions     int
	CorrectAnswers        int
	Score                 float64
	CompletionRate        float64
	TimeTakenMinutes      float64
	Passed                bool
	DomainPerformance     map[string]Performance
	DifficultyPerformance map[string]Performance
	Recommendations       []string
	DetailedAnswers       []ResultAnswer
	CreatedAt             time.Time
}

// ResultRepo persists and queries graded quiz outcomes.
type ResultRepo interface {
	// Save writes the aggregate row and one response row per question.
	Save(ctx context.Context, res *Result) (*Result, error)

	// BySession returns (nil, nil) when no result exists for the session.
	BySession(ctx context.Context, sessionID string) (*Result, error)

	// RecentByUser returns a user's results, newest first.
	// limit == 0 means unbounded.
	RecentByUser(ctx context.Context, userID, limit int) ([]*Result, error)

	// RecentAnonymous returns the newest anonymous results system-wide.
	// Anonymous identity is untrustworthy, so this scope is deliberately
	// global rather than per-person.
	RecentAnonymous(ctx context.Context, limit int) ([]*Result, error)
}

// TutorRequestData captures one tutor LLM call for the request ledger.
type TutorRequestData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// TutorEventRepo appends tutor request events.
type TutorEventRepo interface {
	Append(ctx context.Context, data TutorRequestData) error
}
