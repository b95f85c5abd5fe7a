// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fartec0/aigp-codex/ent/predicate"
	"github.com/fartec0/aigp-codex/ent/quizresult"
	"github.com/fartec0/aigp-codex/ent/schema"
)

// QuizResultUpdate is the builder for updating QuizResult entities.
type QuizResultUpdate struct {
	config
	hooks    []Hook
	mutation *QuizResultMutation
}

// Where appends a list predicates to the QuizResultUpdate builder.
func (_u *QuizResultUpdate) Where(ps ...predicate.QuizResult) *QuizResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QuizResultUpdate) SetSessionID(v string) *QuizResultUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableSessionID(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QuizResultUpdate) SetUserID(v int) *QuizResultUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableUserID(v *int) *QuizResultUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *QuizResultUpdate) AddUserID(v int) *QuizResultUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *QuizResultUpdate) ClearUserID() *QuizResultUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetUserType sets the "user_type" field.
func (_u *QuizResultUpdate) SetUserType(v string) *QuizResultUpdate {
	_u.mutation.SetUserType(v)
	return _u
}

// SetNillableUserType sets the "user_type" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableUserType(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetUserType(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *QuizResultUpdate) SetMode(v string) *QuizResultUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableMode(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetDomainFocus sets the "domain_focus" field.
func (_u *QuizResultUpdate) SetDomainFocus(v string) *QuizResultUpdate {
	_u.mutation.SetDomainFocus(v)
	return _u
}

// SetNillableDomainFocus sets the "domain_focus" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableDomainFocus(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetDomainFocus(*v)
	}
	return _u
}

// ClearDomainFocus clears the value of the "domain_focus" field.
func (_u *QuizResultUpdate) ClearDomainFocus() *QuizResultUpdate {
	_u.mutation.ClearDomainFocus()
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *QuizResultUpdate) SetDifficultyLevel(v string) *QuizResultUpdate {
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableDifficultyLevel(v *string) *QuizResultUpdate {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// ClearDifficultyLevel clears the value of the "difficulty_level" field.
func (_u *QuizResultUpdate) ClearDifficultyLevel() *QuizResultUpdate {
	_u.mutation.ClearDifficultyLevel()
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *QuizResultUpdate) SetTotalQuestions(v int) *QuizResultUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableTotalQuestions(v *int) *QuizResultUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *QuizResultUpdate) AddTotalQuestions(v int) *QuizResultUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetAnsweredQuestions sets the "answered_questions" field.
func (_u *QuizResultUpdate) SetAnsweredQuestions(v int) *QuizResultUpdate {
	_u.mutation.ResetAnsweredQuestions()
	_u.mutation.SetAnsweredQuestions(v)
	return _u
}

// SetNillableAnsweredQuestions sets the "answered_questions" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableAnsweredQuestions(v *int) *QuizResultUpdate {
	if v != nil {
		_u.SetAnsweredQuestions(*v)
	}
	return _u
}

// AddAnsweredQuestions adds value to the "answered_questions" field.
func (_u *QuizResultUpdate) AddAnsweredQuestions(v int) *QuizResultUpdate {
	_u.mutation.AddAnsweredQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *QuizResultUpdate) SetCorrectAnswers(v int) *QuizResultUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableCorrectAnswers(v *int) *QuizResultUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *QuizResultUpdate) AddCorrectAnswers(v int) *QuizResultUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizResultUpdate) SetScore(v float64) *QuizResultUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableScore(v *float64) *QuizResultUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizResultUpdate) AddScore(v float64) *QuizResultUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetCompletionRate sets the "completion_rate" field.
func (_u *QuizResultUpdate) SetCompletionRate(v float64) *QuizResultUpdate {
	_u.mutation.ResetCompletionRate()
	_u.mutation.SetCompletionRate(v)
	return _u
}

// SetNillableCompletionRate sets the "completion_rate" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableCompletionRate(v *float64) *QuizResultUpdate {
	if v != nil {
		_u.SetCompletionRate(*v)
	}
	return _u
}

// AddCompletionRate adds value to the "completion_rate" field.
func (_u *QuizResultUpdate) AddCompletionRate(v float64) *QuizResultUpdate {
	_u.mutation.AddCompletionRate(v)
	return _u
}

// SetTimeTakenMinutes sets the "time_taken_minutes" field.
func (_u *QuizResultUpdate) SetTimeTakenMinutes(v float64) *QuizResultUpdate {
	_u.mutation.ResetTimeTakenMinutes()
	_u.mutation.SetTimeTakenMinutes(v)
	return _u
}

// SetNillableTimeTakenMinutes sets the "time_taken_minutes" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillableTimeTakenMinutes(v *float64) *QuizResultUpdate {
	if v != nil {
		_u.SetTimeTakenMinutes(*v)
	}
	return _u
}

// AddTimeTakenMinutes adds value to the "time_taken_minutes" field.
func (_u *QuizResultUpdate) AddTimeTakenMinutes(v float64) *QuizResultUpdate {
	_u.mutation.AddTimeTakenMinutes(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *QuizResultUpdate) SetPassed(v bool) *QuizResultUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *QuizResultUpdate) SetNillablePassed(v *bool) *QuizResultUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetDomainPerformance sets the "domain_performance" field.
func (_u *QuizResultUpdate) SetDomainPerformance(v map[string]schema.PerformanceCell) *QuizResultUpdate {
	_u.mutation.SetDomainPerformance(v)
	return _u
}

// ClearDomainPerformance clears the value of the "domain_performance" field.
func (_u *QuizResultUpdate) ClearDomainPerformance() *QuizResultUpdate {
	_u.mutation.ClearDomainPerformance()
	return _u
}

// SetDifficultyPerformance sets the "difficulty_performance" field.
func (_u *QuizResultUpdate) SetDifficultyPerformance(v map[string]schema.PerformanceCell) *QuizResultUpdate {
	_u.mutation.SetDifficultyPerformance(v)
	return _u
}

// ClearDifficultyPerformance clears the value of the "difficulty_performance" field.
func (_u *QuizResultUpdate) ClearDifficultyPerformance() *QuizResultUpdate {
	_u.mutation.ClearDifficultyPerformance()
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *QuizResultUpdate) SetRecommendations(v []string) *QuizResultUpdate {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *QuizResultUpdate) AppendRecommendations(v []string) *QuizResultUpdate {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *QuizResultUpdate) ClearRecommendations() *QuizResultUpdate {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetDetailedAnswers sets the "detailed_answers" field.
func (_u *QuizResultUpdate) SetDetailedAnswers(v []schema.AnswerDetail) *QuizResultUpdate {
	_u.mutation.SetDetailedAnswers(v)
	return _u
}

// AppendDetailedAnswers appends value to the "detailed_answers" field.
func (_u *QuizResultUpdate) AppendDetailedAnswers(v []schema.AnswerDetail) *QuizResultUpdate {
	_u.mutation.AppendDetailedAnswers(v)
	return _u
}

// ClearDetailedAnswers clears the value of the "detailed_answers" field.
func (_u *QuizResultUpdate) ClearDetailedAnswers() *QuizResultUpdate {
	_u.mutation.ClearDetailedAnswers()
	return _u
}

// Mutation returns the QuizResultMutation object of the builder.
func (_u *QuizResultUpdate) Mutation() *QuizResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizResultUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quizresult.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizResult.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := quizresult.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "QuizResult.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresult.Table, quizresult.Columns, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(quizresult.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(quizresult.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(quizresult.FieldUserID, field.TypeInt, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(quizresult.FieldUserID, field.TypeInt)
	}
	if value, ok := _u.mutation.UserType(); ok {
		_spec.SetField(quizresult.FieldUserType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(quizresult.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DomainFocus(); ok {
		_spec.SetField(quizresult.FieldDomainFocus, field.TypeString, value)
	}
	if _u.mutation.DomainFocusCleared() {
		_spec.ClearField(quizresult.FieldDomainFocus, field.TypeString)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(quizresult.FieldDifficultyLevel, field.TypeString, value)
	}
	if _u.mutation.DifficultyLevelCleared() {
		_spec.ClearField(quizresult.FieldDifficultyLevel, field.TypeString)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(quizresult.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(quizresult.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnsweredQuestions(); ok {
		_spec.SetField(quizresult.FieldAnsweredQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnsweredQuestions(); ok {
		_spec.AddField(quizresult.FieldAnsweredQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(quizresult.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(quizresult.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizresult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizresult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletionRate(); ok {
		_spec.SetField(quizresult.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionRate(); ok {
		_spec.AddField(quizresult.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeTakenMinutes(); ok {
		_spec.SetField(quizresult.FieldTimeTakenMinutes, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeTakenMinutes(); ok {
		_spec.AddField(quizresult.FieldTimeTakenMinutes, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(quizresult.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DomainPerformance(); ok {
		_spec.SetField(quizresult.FieldDomainPerformance, field.TypeJSON, value)
	}
	if _u.mutation.DomainPerformanceCleared() {
		_spec.ClearField(quizresult.FieldDomainPerformance, field.TypeJSON)
	}
	if value, ok := _u.mutation.DifficultyPerformance(); ok {
		_spec.SetField(quizresult.FieldDifficultyPerformance, field.TypeJSON, value)
	}
	if _u.mutation.DifficultyPerformanceCleared() {
		_spec.ClearField(quizresult.FieldDifficultyPerformance, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(quizresult.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizresult.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(quizresult.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.DetailedAnswers(); ok {
		_spec.SetField(quizresult.FieldDetailedAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetailedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizresult.FieldDetailedAnswers, value)
		})
	}
	if _u.mutation.DetailedAnswersCleared() {
		_spec.ClearField(quizresult.FieldDetailedAnswers, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizResultUpdateOne is the builder for updating a single QuizResult entity.
type QuizResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizResultMutation
}

// SetSessionID sets the "session_id" field.
func (_u *QuizResultUpdateOne) SetSessionID(v string) *QuizResultUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableSessionID(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QuizResultUpdateOne) SetUserID(v int) *QuizResultUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableUserID(v *int) *QuizResultUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *QuizResultUpdateOne) AddUserID(v int) *QuizResultUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *QuizResultUpdateOne) ClearUserID() *QuizResultUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetUserType sets the "user_type" field.
func (_u *QuizResultUpdateOne) SetUserType(v string) *QuizResultUpdateOne {
	_u.mutation.SetUserType(v)
	return _u
}

// SetNillableUserType sets the "user_type" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableUserType(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetUserType(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *QuizResultUpdateOne) SetMode(v string) *QuizResultUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableMode(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetDomainFocus sets the "domain_focus" field.
func (_u *QuizResultUpdateOne) SetDomainFocus(v string) *QuizResultUpdateOne {
	_u.mutation.SetDomainFocus(v)
	return _u
}

// SetNillableDomainFocus sets the "domain_focus" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableDomainFocus(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetDomainFocus(*v)
	}
	return _u
}

// ClearDomainFocus clears the value of the "domain_focus" field.
func (_u *QuizResultUpdateOne) ClearDomainFocus() *QuizResultUpdateOne {
	_u.mutation.ClearDomainFocus()
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *QuizResultUpdateOne) SetDifficultyLevel(v string) *QuizResultUpdateOne {
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableDifficultyLevel(v *string) *QuizResultUpdateOne {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// ClearDifficultyLevel clears the value of the "difficulty_level" field.
func (_u *QuizResultUpdateOne) ClearDifficultyLevel() *QuizResultUpdateOne {
	_u.mutation.ClearDifficultyLevel()
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *QuizResultUpdateOne) SetTotalQuestions(v int) *QuizResultUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableTotalQuestions(v *int) *QuizResultUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *QuizResultUpdateOne) AddTotalQuestions(v int) *QuizResultUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetAnsweredQuestions sets the "answered_questions" field.
func (_u *QuizResultUpdateOne) SetAnsweredQuestions(v int) *QuizResultUpdateOne {
	_u.mutation.ResetAnsweredQuestions()
	_u.mutation.SetAnsweredQuestions(v)
	return _u
}

// SetNillableAnsweredQuestions sets the "answered_questions" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableAnsweredQuestions(v *int) *QuizResultUpdateOne {
	if v != nil {
		_u.SetAnsweredQuestions(*v)
	}
	return _u
}

// AddAnsweredQuestions adds value to the "answered_questions" field.
func (_u *QuizResultUpdateOne) AddAnsweredQuestions(v int) *QuizResultUpdateOne {
	_u.mutation.AddAnsweredQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *QuizResultUpdateOne) SetCorrectAnswers(v int) *QuizResultUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableCorrectAnswers(v *int) *QuizResultUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *QuizResultUpdateOne) AddCorrectAnswers(v int) *QuizResultUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizResultUpdateOne) SetScore(v float64) *QuizResultUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableScore(v *float64) *QuizResultUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizResultUpdateOne) AddScore(v float64) *QuizResultUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetCompletionRate sets the "completion_rate" field.
func (_u *QuizResultUpdateOne) SetCompletionRate(v float64) *QuizResultUpdateOne {
	_u.mutation.ResetCompletionRate()
	_u.mutation.SetCompletionRate(v)
	return _u
}

// SetNillableCompletionRate sets the "completion_rate" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableCompletionRate(v *float64) *QuizResultUpdateOne {
	if v != nil {
		_u.SetCompletionRate(*v)
	}
	return _u
}

// AddCompletionRate adds value to the "completion_rate" field.
func (_u *QuizResultUpdateOne) AddCompletionRate(v float64) *QuizResultUpdateOne {
	_u.mutation.AddCompletionRate(v)
	return _u
}

// SetTimeTakenMinutes sets the "time_taken_minutes" field.
func (_u *QuizResultUpdateOne) SetTimeTakenMinutes(v float64) *QuizResultUpdateOne {
	_u.mutation.ResetTimeTakenMinutes()
	_u.mutation.SetTimeTakenMinutes(v)
	return _u
}

// SetNillableTimeTakenMinutes sets the "time_taken_minutes" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillableTimeTakenMinutes(v *float64) *QuizResultUpdateOne {
	if v != nil {
		_u.SetTimeTakenMinutes(*v)
	}
	return _u
}

// AddTimeTakenMinutes adds value to the "time_taken_minutes" field.
func (_u *QuizResultUpdateOne) AddTimeTakenMinutes(v float64) *QuizResultUpdateOne {
	_u.mutation.AddTimeTakenMinutes(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *QuizResultUpdateOne) SetPassed(v bool) *QuizResultUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *QuizResultUpdateOne) SetNillablePassed(v *bool) *QuizResultUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetDomainPerformance sets the "domain_performance" field.
func (_u *QuizResultUpdateOne) SetDomainPerformance(v map[string]schema.PerformanceCell) *QuizResultUpdateOne {
	_u.mutation.SetDomainPerformance(v)
	return _u
}

// ClearDomainPerformance clears the value of the "domain_performance" field.
func (_u *QuizResultUpdateOne) ClearDomainPerformance() *QuizResultUpdateOne {
	_u.mutation.ClearDomainPerformance()
	return _u
}

// SetDifficultyPerformance sets the "difficulty_performance" field.
func (_u *QuizResultUpdateOne) SetDifficultyPerformance(v map[string]schema.PerformanceCell) *QuizResultUpdateOne {
	_u.mutation.SetDifficultyPerformance(v)
	return _u
}

// ClearDifficultyPerformance clears the value of the "difficulty_performance" field.
func (_u *QuizResultUpdateOne) ClearDifficultyPerformance() *QuizResultUpdateOne {
	_u.mutation.ClearDifficultyPerformance()
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *QuizResultUpdateOne) SetRecommendations(v []string) *QuizResultUpdateOne {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *QuizResultUpdateOne) AppendRecommendations(v []string) *QuizResultUpdateOne {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *QuizResultUpdateOne) ClearRecommendations() *QuizResultUpdateOne {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetDetailedAnswers sets the "detailed_answers" field.
func (_u *QuizResultUpdateOne) SetDetailedAnswers(v []schema.AnswerDetail) *QuizResultUpdateOne {
	_u.mutation.SetDetailedAnswers(v)
	return _u
}

// AppendDetailedAnswers appends value to the "detailed_answers" field.
func (_u *QuizResultUpdateOne) AppendDetailedAnswers(v []schema.AnswerDetail) *QuizResultUpdateOne {
	_u.mutation.AppendDetailedAnswers(v)
	return _u
}

// ClearDetailedAnswers clears the value of the "detailed_answers" field.
func (_u *QuizResultUpdateOne) ClearDetailedAnswers() *QuizResultUpdateOne {
	_u.mutation.ClearDetailedAnswers()
	return _u
}

// Mutation returns the QuizResultMutation object of the builder.
func (_u *QuizResultUpdateOne) Mutation() *QuizResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizResultUpdate builder.
func (_u *QuizResultUpdateOne) Where(ps ...predicate.QuizResult) *QuizResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizResultUpdateOne) Select(field string, fields ...string) *QuizResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizResult entity.
func (_u *QuizResultUpdateOne) Save(ctx context.Context) (*QuizResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResultUpdateOne) SaveX(ctx context.Context) *QuizResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizResultUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quizresult.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizResult.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := quizresult.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "QuizResult.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizResultUpdateOne) sqlSave(ctx context.Context) (_node *QuizResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresult.Table, quizresult.Columns, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizresult.FieldID)
		for _, f := range fields {
			if !quizresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(quizresult.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(quizresult.FieldUserID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(quizresult.FieldUserID, field.TypeInt, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(quizresult.FieldUserID, field.TypeInt)
	}
	if value, ok := _u.mutation.UserType(); ok {
		_spec.SetField(quizresult.FieldUserType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(quizresult.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.DomainFocus(); ok {
		_spec.SetField(quizresult.FieldDomainFocus, field.TypeString, value)
	}
	if _u.mutation.DomainFocusCleared() {
		_spec.ClearField(quizresult.FieldDomainFocus, field.TypeString)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(quizresult.FieldDifficultyLevel, field.TypeString, value)
	}
	if _u.mutation.DifficultyLevelCleared() {
		_spec.ClearField(quizresult.FieldDifficultyLevel, field.TypeString)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(quizresult.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(quizresult.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnsweredQuestions(); ok {
		_spec.SetField(quizresult.FieldAnsweredQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnsweredQuestions(); ok {
		_spec.AddField(quizresult.FieldAnsweredQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(quizresult.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(quizresult.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizresult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizresult.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletionRate(); ok {
		_spec.SetField(quizresult.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionRate(); ok {
		_spec.AddField(quizresult.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeTakenMinutes(); ok {
		_spec.SetField(quizresult.FieldTimeTakenMinutes, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeTakenMinutes(); ok {
		_spec.AddField(quizresult.FieldTimeTakenMinutes, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(quizresult.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DomainPerformance(); ok {
		_spec.SetField(quizresult.FieldDomainPerformance, field.TypeJSON, value)
	}
	if _u.mutation.DomainPerformanceCleared() {
		_spec.ClearField(quizresult.FieldDomainPerformance, field.TypeJSON)
	}
	if value, ok := _u.mutation.DifficultyPerformance(); ok {
		_spec.SetField(quizresult.FieldDifficultyPerformance, field.TypeJSON, value)
	}
	if _u.mutation.DifficultyPerformanceCleared() {
		_spec.ClearField(quizresult.FieldDifficultyPerformance, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(quizresult.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizresult.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(quizresult.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.DetailedAnswers(); ok {
		_spec.SetField(quizresult.FieldDetailedAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetailedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizresult.FieldDetailedAnswers, value)
		})
	}
	if _u.mutation.DetailedAnswersCleared() {
		_spec.ClearField(quizresult.FieldDetailedAnswers, field.TypeJSON)
	}
	_node = &QuizResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
