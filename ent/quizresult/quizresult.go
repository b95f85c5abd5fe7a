// Code generated by ent, DO NOT EDIT.

package quizresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quizresult type in the database.
	Label = "quiz_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldUserType holds the string denoting the user_type field in the database.
	FieldUserType = "user_type"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldDomainFocus holds the string denoting the domain_focus field in the database.
	FieldDomainFocus = "domain_focus"
	// FieldDifficultyLevel holds the string denoting the difficulty_level field in the database.
	FieldDifficultyLevel = "difficulty_level"
	// FieldTotalQuestions holds the string denoting the total_questions field in the database.
	FieldTotalQuestions = "total_questions"
	// FieldAnsweredQuestions holds the string denoting the answered_questions field in the database.
	FieldAnsweredQuestions = "answered_questions"
	// FieldCorrectAnswers holds the string denoting the correct_answers field in the database.
	FieldCorrectAnswers = "correct_answers"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldCompletionRate holds the string denoting the completion_rate field in the database.
	FieldCompletionRate = "completion_rate"
	// FieldTimeTakenMinutes holds the string denoting the time_taken_minutes field in the database.
	FieldTimeTakenMinutes = "time_taken_minutes"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldDomainPerformance holds the string denoting the domain_performance field in the database.
	FieldDomainPerformance = "domain_performance"
	// FieldDifficultyPerformance holds the string denoting the difficulty_performance field in the database.
	FieldDifficultyPerformance = "difficulty_performance"
	// FieldRecommendations holds the string denoting the recommendations field in the database.
	FieldRecommendations = "recommendations"
	// FieldDetailedAnswers holds the string denoting the detailed_answers field in the database.
	FieldDetailedAnswers = "detailed_answers"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the quizresult in the database.
	Table = "quiz_results"
)

// Columns holds all SQL columns for quizresult fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldUserID,
	FieldUserType,
	FieldMode,
	FieldDomainFocus,
	FieldDifficultyLevel,
	FieldTotalQuestions,
	FieldAnsweredQuestions,
	FieldCorrectAnswers,
	FieldScore,
	FieldCompletionRate,
	FieldTimeTakenMinutes,
	FieldPassed,
	FieldDomainPerformance,
	FieldDifficultyPerformance,
	FieldRecommendations,
	FieldDetailedAnswers,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultUserType holds the default value on creation for the "user_type" field.
	DefaultUserType string
	// ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	ModeValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the QuizResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByUserType orders the results by the user_type field.
func ByUserType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserType, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByDomainFocus orders the results by the domain_focus field.
func ByDomainFocus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomainFocus, opts...).ToFunc()
}

// ByDifficultyLevel orders the results by the difficulty_level field.
func ByDifficultyLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyLevel, opts...).ToFunc()
}

// ByTotalQuestions orders the results by the total_questions field.
func ByTotalQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQuestions, opts...).ToFunc()
}

// ByAnsweredQuestions orders the results by the answered_questions field.
func ByAnsweredQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnsweredQuestions, opts...).ToFunc()
}

// ByCorrectAnswers orders the results by the correct_answers field.
func ByCorrectAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswers, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByCompletionRate orders the results by the completion_rate field.
func ByCompletionRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionRate, opts...).ToFunc()
}

// ByTimeTakenMinutes orders the results by the time_taken_minutes field.
func ByTimeTakenMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeTakenMinutes, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
