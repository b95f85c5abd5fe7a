package quiz

import "errors"

var (
	// ErrEmptyPool means no question in the bank matched the requested
	// domain and difficulty filters.
	ErrEmptyPool = errors.New("no questions match the requested filters")

	// ErrOutOfRange means a submitted position or option index does not
	// exist in the session.
	ErrOutOfRange = errors.New("index out of range")

	// ErrEmptySession means finalize was called on a session with no
	// questions. Generation never produces one, so reaching this is a
	// caller bug.
	ErrEmptySession = errors.New("session has no questions")

	// ErrAlreadyFinalized means the session was already consumed by a
	// previous finalize call.
	ErrAlreadyFinalized = errors.New("session already finalized")
)
