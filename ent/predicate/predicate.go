// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuthSession is the predicate function for authsession builders.
type AuthSession func(*sql.Selector)

// Note is the predicate function for note builders.
type Note func(*sql.Selector)

// ProgressRecord is the predicate function for progressrecord builders.
type ProgressRecord func(*sql.Selector)

// QuizResponse is the predicate function for quizresponse builders.
type QuizResponse func(*sql.Selector)

// QuizResult is the predicate function for quizresult builders.
type QuizResult func(*sql.Selector)

// TutorRequestEvent is the predicate function for tutorrequestevent builders.
type TutorRequestEvent func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
