// Code generated by ent, DO NOT EDIT.

package quizresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fartec0/aigp-codex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldUserID, v))
}

// UserType applies equality check predicate on the "user_type" field. It's identical to UserTypeEQ.
func UserType(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldUserType, v))
}

// Mode applies equality check predicate on the "mode" field. It's identical to ModeEQ.
func Mode(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldMode, v))
}

// DomainFocus applies equality check predicate on the "domain_focus" field. It's identical to DomainFocusEQ.
func DomainFocus(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldDomainFocus, v))
}

// DifficultyLevel applies equality check predicate on the "difficulty_level" field. It's identical to DifficultyLevelEQ.
func DifficultyLevel(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldDifficultyLevel, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldTotalQuestions, v))
}

// AnsweredQuestions applies equality check predicate on the "answered_questions" field. It's identical to AnsweredQuestionsEQ.
func AnsweredQuestions(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldAnsweredQuestions, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldCorrectAnswers, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldScore, v))
}

// CompletionRate applies equality check predicate on the "completion_rate" field. It's identical to CompletionRateEQ.
func CompletionRate(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldCompletionRate, v))
}

// TimeTakenMinutes applies equality check predicate on the "time_taken_minutes" field. It's identical to TimeTakenMinutesEQ.
func TimeTakenMinutes(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldTimeTakenMinutes, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldPassed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLTE(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotNull(FieldUserID))
}

// UserTypeEQ applies the EQ predicate on the "user_type" field.
func UserTypeEQ(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldUserType, v))
}

// UserTypeNEQ applies the NEQ predicate on the "user_type" field.
func UserTypeNEQ(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNEQ(FieldUserType, v))
}

// UserTypeIn applies the In predicate on the "user_type" field.
func UserTypeIn(vs ...string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIn(FieldUserType, vs...))
}

// UserTypeNotIn applies the NotIn predicate on the "user_type" field.
func UserTypeNotIn(vs ...string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotIn(FieldUserType, vs...))
}

// UserTypeGT applies the GT predicate on the "user_type" field.
func UserTypeGT(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGT(FieldUserType, v))
}

// UserTypeGTE applies the GTE predicate on the "user_type" field.
func UserTypeGTE(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGTE(FieldUserType, v))
}

// UserTypeLT applies the LT predicate on the "user_type" field.
func UserTypeLT(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLT(FieldUserType, v))
}

// UserTypeLTE applies the LTE predicate on the "user_type" field.
func UserTypeLTE(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLTE(FieldUserType, v))
}

// UserTypeContains applies the Contains predicate on the "user_type" field.
func UserTypeContains(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldContains(FieldUserType, v))
}

// UserTypeHasPrefix applies the HasPrefix predicate on the "user_type" field.
func UserTypeHasPrefix(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldHasPrefix(FieldUserType, v))
}

// UserTypeHasSuffix applies the HasSuffix predicate on the "user_type" field.
func UserTypeHasSuffix(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldHasSuffix(FieldUserType, v))
}

// UserTypeEqualFold applies the EqualFold predicate on the "user_type" field.
func UserTypeEqualFold(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEqualFold(FieldUserType, v))
}

// UserTypeContainsFold applies the ContainsFold predicate on the "user_type" field.
func UserTypeContainsFold(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldContainsFold(FieldUserType, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotIn(FieldMode, vs...))
}

// ModeGT applies the GT predicate on the "mode" field.
func ModeGT(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGT(FieldMode, v))
}

// ModeGTE applies the GTE predicate on the "mode" field.
func ModeGTE(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGTE(FieldMode, v))
}

// ModeLT applies the LT predicate on the "mode" field.
func ModeLT(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLT(FieldMode, v))
}

// ModeLTE applies the LTE predicate on the "mode" field.
func ModeLTE(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLTE(FieldMode, v))
}

// ModeContains applies the Contains predicate on the "mode" field.
func ModeContains(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldContains(FieldMode, v))
}

// ModeHasPrefix applies the HasPrefix predicate on the "mode" field.
func ModeHasPrefix(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldHasPrefix(FieldMode, v))
}

// ModeHasSuffix applies the HasSuffix predicate on the "mode" field.
func ModeHasSuffix(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldHasSuffix(FieldMode, v))
}

// ModeEqualFold applies the EqualFold predicate on the "mode" field.
func ModeEqualFold(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEqualFold(FieldMode, v))
}

// ModeContainsFold applies the ContainsFold predicate on the "mode" field.
func ModeContainsFold(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldContainsFold(FieldMode, v))
}

// DomainFocusEQ applies the EQ predicate on the "domain_focus" field.
func DomainFocusEQ(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldDomainFocus, v))
}

// DomainFocusNEQ applies the NEQ predicate on the "domain_focus" field.
func DomainFocusNEQ(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNEQ(FieldDomainFocus, v))
}

// DomainFocusIn applies the In predicate on the "domain_focus" field.
func DomainFocusIn(vs ...string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIn(FieldDomainFocus, vs...))
}

// DomainFocusNotIn applies the NotIn predicate on the "domain_focus" field.
func DomainFocusNotIn(vs ...string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotIn(FieldDomainFocus, vs...))
}

// DomainFocusGT applies the GT predicate on the "domain_focus" field.
func DomainFocusGT(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGT(FieldDomainFocus, v))
}

// DomainFocusGTE applies the GTE predicate on the "domain_focus" field.
func DomainFocusGTE(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGTE(FieldDomainFocus, v))
}

// DomainFocusLT applies the LT predicate on the "domain_focus" field.
func DomainFocusLT(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLT(FieldDomainFocus, v))
}

// DomainFocusLTE applies the LTE predicate on the "domain_focus" field.
func DomainFocusLTE(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLTE(FieldDomainFocus, v))
}

// DomainFocusContains applies the Contains predicate on the "domain_focus" field.
func DomainFocusContains(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldContains(FieldDomainFocus, v))
}

// DomainFocusHasPrefix applies the HasPrefix predicate on the "domain_focus" field.
func DomainFocusHasPrefix(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldHasPrefix(FieldDomainFocus, v))
}

// DomainFocusHasSuffix applies the HasSuffix predicate on the "domain_focus" field.
func DomainFocusHasSuffix(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldHasSuffix(FieldDomainFocus, v))
}

// DomainFocusIsNil applies the IsNil predicate on the "domain_focus" field.
func DomainFocusIsNil() predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIsNull(FieldDomainFocus))
}

// DomainFocusNotNil applies the NotNil predicate on the "domain_focus" field.
func DomainFocusNotNil() predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotNull(FieldDomainFocus))
}

// DomainFocusEqualFold applies the EqualFold predicate on the "domain_focus" field.
func DomainFocusEqualFold(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEqualFold(FieldDomainFocus, v))
}

// DomainFocusContainsFold applies the ContainsFold predicate on the "domain_focus" field.
func DomainFocusContainsFold(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldContainsFold(FieldDomainFocus, v))
}

// DifficultyLevelEQ applies the EQ predicate on the "difficulty_level" field.
func DifficultyLevelEQ(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldDifficultyLevel, v))
}

// DifficultyLevelNEQ applies the NEQ predicate on the "difficulty_level" field.
func DifficultyLevelNEQ(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNEQ(FieldDifficultyLevel, v))
}

// DifficultyLevelIn applies the In predicate on the "difficulty_level" field.
func DifficultyLevelIn(vs ...string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIn(FieldDifficultyLevel, vs...))
}

// DifficultyLevelNotIn applies the NotIn predicate on the "difficulty_level" field.
func DifficultyLevelNotIn(vs ...string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotIn(FieldDifficultyLevel, vs...))
}

// DifficultyLevelGT applies the GT predicate on the "difficulty_level" field.
func DifficultyLevelGT(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGT(FieldDifficultyLevel, v))
}

// DifficultyLevelGTE applies the GTE predicate on the "difficulty_level" field.
func DifficultyLevelGTE(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGTE(FieldDifficultyLevel, v))
}

// DifficultyLevelLT applies the LT predicate on the "difficulty_level" field.
func DifficultyLevelLT(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLT(FieldDifficultyLevel, v))
}

// DifficultyLevelLTE applies the LTE predicate on the "difficulty_level" field.
func DifficultyLevelLTE(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLTE(FieldDifficultyLevel, v))
}

// DifficultyLevelContains applies the Contains predicate on the "difficulty_level" field.
func DifficultyLevelContains(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldContains(FieldDifficultyLevel, v))
}

// DifficultyLevelHasPrefix applies the HasPrefix predicate on the "difficulty_level" field.
func DifficultyLevelHasPrefix(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldHasPrefix(FieldDifficultyLevel, v))
}

// DifficultyLevelHasSuffix applies the HasSuffix predicate on the "difficulty_level" field.
func DifficultyLevelHasSuffix(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldHasSuffix(FieldDifficultyLevel, v))
}

// DifficultyLevelIsNil applies the IsNil predicate on the "difficulty_level" field.
func DifficultyLevelIsNil() predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIsNull(FieldDifficultyLevel))
}

// DifficultyLevelNotNil applies the NotNil predicate on the "difficulty_level" field.
func DifficultyLevelNotNil() predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotNull(FieldDifficultyLevel))
}

// DifficultyLevelEqualFold applies the EqualFold predicate on the "difficulty_level" field.
func DifficultyLevelEqualFold(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEqualFold(FieldDifficultyLevel, v))
}

// DifficultyLevelContainsFold applies the ContainsFold predicate on the "difficulty_level" field.
func DifficultyLevelContainsFold(v string) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldContainsFold(FieldDifficultyLevel, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLTE(FieldTotalQuestions, v))
}

// AnsweredQuestionsEQ applies the EQ predicate on the "answered_questions" field.
func AnsweredQuestionsEQ(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldAnsweredQuestions, v))
}

// AnsweredQuestionsNEQ applies the NEQ predicate on the "answered_questions" field.
func AnsweredQuestionsNEQ(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNEQ(FieldAnsweredQuestions, v))
}

// AnsweredQuestionsIn applies the In predicate on the "answered_questions" field.
func AnsweredQuestionsIn(vs ...int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIn(FieldAnsweredQuestions, vs...))
}

// AnsweredQuestionsNotIn applies the NotIn predicate on the "answered_questions" field.
func AnsweredQuestionsNotIn(vs ...int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotIn(FieldAnsweredQuestions, vs...))
}

// AnsweredQuestionsGT applies the GT predicate on the "answered_questions" field.
func AnsweredQuestionsGT(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGT(FieldAnsweredQuestions, v))
}

// AnsweredQuestionsGTE applies the GTE predicate on the "answered_questions" field.
func AnsweredQuestionsGTE(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGTE(FieldAnsweredQuestions, v))
}

// AnsweredQuestionsLT applies the LT predicate on the "answered_questions" field.
func AnsweredQuestionsLT(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLT(FieldAnsweredQuestions, v))
}

// AnsweredQuestionsLTE applies the LTE predicate on the "answered_questions" field.
func AnsweredQuestionsLTE(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLTE(FieldAnsweredQuestions, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLTE(FieldCorrectAnswers, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLTE(FieldScore, v))
}

// CompletionRateEQ applies the EQ predicate on the "completion_rate" field.
func CompletionRateEQ(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldCompletionRate, v))
}

// CompletionRateNEQ applies the NEQ predicate on the "completion_rate" field.
func CompletionRateNEQ(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNEQ(FieldCompletionRate, v))
}

// CompletionRateIn applies the In predicate on the "completion_rate" field.
func CompletionRateIn(vs ...float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIn(FieldCompletionRate, vs...))
}

// CompletionRateNotIn applies the NotIn predicate on the "completion_rate" field.
func CompletionRateNotIn(vs ...float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotIn(FieldCompletionRate, vs...))
}

// CompletionRateGT applies the GT predicate on the "completion_rate" field.
func CompletionRateGT(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGT(FieldCompletionRate, v))
}

// CompletionRateGTE applies the GTE predicate on the "completion_rate" field.
func CompletionRateGTE(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGTE(FieldCompletionRate, v))
}

// CompletionRateLT applies the LT predicate on the "completion_rate" field.
func CompletionRateLT(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLT(FieldCompletionRate, v))
}

// CompletionRateLTE applies the LTE predicate on the "completion_rate" field.
func CompletionRateLTE(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLTE(FieldCompletionRate, v))
}

// TimeTakenMinutesEQ applies the EQ predicate on the "time_taken_minutes" field.
func TimeTakenMinutesEQ(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldTimeTakenMinutes, v))
}

// TimeTakenMinutesNEQ applies the NEQ predicate on the "time_taken_minutes" field.
func TimeTakenMinutesNEQ(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNEQ(FieldTimeTakenMinutes, v))
}

// TimeTakenMinutesIn applies the In predicate on the "time_taken_minutes" field.
func TimeTakenMinutesIn(vs ...float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIn(FieldTimeTakenMinutes, vs...))
}

// TimeTakenMinutesNotIn applies the NotIn predicate on the "time_taken_minutes" field.
func TimeTakenMinutesNotIn(vs ...float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotIn(FieldTimeTakenMinutes, vs...))
}

// TimeTakenMinutesGT applies the GT predicate on the "time_taken_minutes" field.
func TimeTakenMinutesGT(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGT(FieldTimeTakenMinutes, v))
}

// TimeTakenMinutesGTE applies the GTE predicate on the "time_taken_minutes" field.
func TimeTakenMinutesGTE(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGTE(FieldTimeTakenMinutes, v))
}

// TimeTakenMinutesLT applies the LT predicate on the "time_taken_minutes" field.
func TimeTakenMinutesLT(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLT(FieldTimeTakenMinutes, v))
}

// TimeTakenMinutesLTE applies the LTE predicate on the "time_taken_minutes" field.
func TimeTakenMinutesLTE(v float64) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLTE(FieldTimeTakenMinutes, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNEQ(FieldPassed, v))
}

// DomainPerformanceIsNil applies the IsNil predicate on the "domain_performance" field.
func DomainPerformanceIsNil() predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIsNull(FieldDomainPerformance))
}

// DomainPerformanceNotNil applies the NotNil predicate on the "domain_performance" field.
func DomainPerformanceNotNil() predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotNull(FieldDomainPerformance))
}

// DifficultyPerformanceIsNil applies the IsNil predicate on the "difficulty_performance" field.
func DifficultyPerformanceIsNil() predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIsNull(FieldDifficultyPerformance))
}

// DifficultyPerformanceNotNil applies the NotNil predicate on the "difficulty_performance" field.
func DifficultyPerformanceNotNil() predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotNull(FieldDifficultyPerformance))
}

// RecommendationsIsNil applies the IsNil predicate on the "recommendations" field.
func RecommendationsIsNil() predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIsNull(FieldRecommendations))
}

// RecommendationsNotNil applies the NotNil predicate on the "recommendations" field.
func RecommendationsNotNil() predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotNull(FieldRecommendations))
}

// DetailedAnswersIsNil applies the IsNil predicate on the "detailed_answers" field.
func DetailedAnswersIsNil() predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIsNull(FieldDetailedAnswers))
}

// DetailedAnswersNotNil applies the NotNil predicate on the "detailed_answers" field.
func DetailedAnswersNotNil() predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotNull(FieldDetailedAnswers))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QuizResult {
	return predicate.QuizResult(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizResult) predicate.QuizResult {
	return predicate.QuizResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizResult) predicate.QuizResult {
	return predicate.QuizResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizResult) predicate.QuizResult {
	return predicate.QuizResult(sql.NotPredicates(p))
}
