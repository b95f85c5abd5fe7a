// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fartec0/aigp-codex/ent/predicate"
	"github.com/fartec0/aigp-codex/ent/quizresponse"
)

// QuizResponseUpdate is the builder for updating QuizResponse entities.
type QuizResponseUpdate struct {
	config
	hooks    []Hook
	mutation *QuizResponseMutation
}

// Where appends a list predicates to the QuizResponseUpdate builder.
func (_u *QuizResponseUpdate) Where(ps ...predicate.QuizResponse) *QuizResponseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QuizResponseUpdate) SetSessionID(v string) *QuizResponseUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizResponseUpdate) SetNillableSessionID(v *string) *QuizResponseUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionIndex sets the "question_index" field.
func (_u *QuizResponseUpdate) SetQuestionIndex(v int) *QuizResponseUpdate {
	_u.mutation.ResetQuestionIndex()
	_u.mutation.SetQuestionIndex(v)
	return _u
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_u *QuizResponseUpdate) SetNillableQuestionIndex(v *int) *QuizResponseUpdate {
	if v != nil {
		_u.SetQuestionIndex(*v)
	}
	return _u
}

// AddQuestionIndex adds value to the "question_index" field.
func (_u *QuizResponseUpdate) AddQuestionIndex(v int) *QuizResponseUpdate {
	_u.mutation.AddQuestionIndex(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *QuizResponseUpdate) SetQuestionID(v string) *QuizResponseUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuizResponseUpdate) SetNillableQuestionID(v *string) *QuizResponseUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *QuizResponseUpdate) SetDomain(v string) *QuizResponseUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *QuizResponseUpdate) SetNillableDomain(v *string) *QuizResponseUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuizResponseUpdate) SetDifficulty(v string) *QuizResponseUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuizResponseUpdate) SetNillableDifficulty(v *string) *QuizResponseUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetSelectedIndex sets the "selected_index" field.
func (_u *QuizResponseUpdate) SetSelectedIndex(v int) *QuizResponseUpdate {
	_u.mutation.ResetSelectedIndex()
	_u.mutation.SetSelectedIndex(v)
	return _u
}

// SetNillableSelectedIndex sets the "selected_index" field if the given value is not nil.
func (_u *QuizResponseUpdate) SetNillableSelectedIndex(v *int) *QuizResponseUpdate {
	if v != nil {
		_u.SetSelectedIndex(*v)
	}
	return _u
}

// AddSelectedIndex adds value to the "selected_index" field.
func (_u *QuizResponseUpdate) AddSelectedIndex(v int) *QuizResponseUpdate {
	_u.mutation.AddSelectedIndex(v)
	return _u
}

// ClearSelectedIndex clears the value of the "selected_index" field.
func (_u *QuizResponseUpdate) ClearSelectedIndex() *QuizResponseUpdate {
	_u.mutation.ClearSelectedIndex()
	return _u
}

// SetCorrectIndex sets the "correct_index" field.
func (_u *QuizResponseUpdate) SetCorrectIndex(v int) *QuizResponseUpdate {
	_u.mutation.ResetCorrectIndex()
	_u.mutation.SetCorrectIndex(v)
	return _u
}

// SetNillableCorrectIndex sets the "correct_index" field if the given value is not nil.
func (_u *QuizResponseUpdate) SetNillableCorrectIndex(v *int) *QuizResponseUpdate {
	if v != nil {
		_u.SetCorrectIndex(*v)
	}
	return _u
}

// AddCorrectIndex adds value to the "correct_index" field.
func (_u *QuizResponseUpdate) AddCorrectIndex(v int) *QuizResponseUpdate {
	_u.mutation.AddCorrectIndex(v)
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *QuizResponseUpdate) SetIsCorrect(v bool) *QuizResponseUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *QuizResponseUpdate) SetNillableIsCorrect(v *bool) *QuizResponseUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// Mutation returns the QuizResponseMutation object of the builder.
func (_u *QuizResponseUpdate) Mutation() *QuizResponseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizResponseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResponseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizResponseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResponseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizResponseUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quizresponse.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizResponse.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := quizresponse.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuizResponse.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := quizresponse.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "QuizResponse.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := quizresponse.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "QuizResponse.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizResponseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresponse.Table, quizresponse.Columns, sqlgraph.NewFieldSpec(quizresponse.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(quizresponse.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionIndex(); ok {
		_spec.SetField(quizresponse.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIndex(); ok {
		_spec.AddField(quizresponse.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(quizresponse.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(quizresponse.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(quizresponse.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedIndex(); ok {
		_spec.SetField(quizresponse.FieldSelectedIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelectedIndex(); ok {
		_spec.AddField(quizresponse.FieldSelectedIndex, field.TypeInt, value)
	}
	if _u.mutation.SelectedIndexCleared() {
		_spec.ClearField(quizresponse.FieldSelectedIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.CorrectIndex(); ok {
		_spec.SetField(quizresponse.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectIndex(); ok {
		_spec.AddField(quizresponse.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(quizresponse.FieldIsCorrect, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizResponseUpdateOne is the builder for updating a single QuizResponse entity.
type QuizResponseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizResponseMutation
}

// SetSessionID sets the "session_id" field.
func (_u *QuizResponseUpdateOne) SetSessionID(v string) *QuizResponseUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizResponseUpdateOne) SetNillableSessionID(v *string) *QuizResponseUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionIndex sets the "question_index" field.
func (_u *QuizResponseUpdateOne) SetQuestionIndex(v int) *QuizResponseUpdateOne {
	_u.mutation.ResetQuestionIndex()
	_u.mutation.SetQuestionIndex(v)
	return _u
}

// SetNillableQuestionIndex sets the "question_index" field if the given value is not nil.
func (_u *QuizResponseUpdateOne) SetNillableQuestionIndex(v *int) *QuizResponseUpdateOne {
	if v != nil {
		_u.SetQuestionIndex(*v)
	}
	return _u
}

// AddQuestionIndex adds value to the "question_index" field.
func (_u *QuizResponseUpdateOne) AddQuestionIndex(v int) *QuizResponseUpdateOne {
	_u.mutation.AddQuestionIndex(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *QuizResponseUpdateOne) SetQuestionID(v string) *QuizResponseUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuizResponseUpdateOne) SetNillableQuestionID(v *string) *QuizResponseUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetDomain sets the "domain" field.
func (_u *QuizResponseUpdateOne) SetDomain(v string) *QuizResponseUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *QuizResponseUpdateOne) SetNillableDomain(v *string) *QuizResponseUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuizResponseUpdateOne) SetDifficulty(v string) *QuizResponseUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuizResponseUpdateOne) SetNillableDifficulty(v *string) *QuizResponseUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetSelectedIndex sets the "selected_index" field.
func (_u *QuizResponseUpdateOne) SetSelectedIndex(v int) *QuizResponseUpdateOne {
	_u.mutation.ResetSelectedIndex()
	_u.mutation.SetSelectedIndex(v)
	return _u
}

// SetNillableSelectedIndex sets the "selected_index" field if the given value is not nil.
func (_u *QuizResponseUpdateOne) SetNillableSelectedIndex(v *int) *QuizResponseUpdateOne {
	if v != nil {
		_u.SetSelectedIndex(*v)
	}
	return _u
}

// AddSelectedIndex adds value to the "selected_index" field.
func (_u *QuizResponseUpdateOne) AddSelectedIndex(v int) *QuizResponseUpdateOne {
	_u.mutation.AddSelectedIndex(v)
	return _u
}

// ClearSelectedIndex clears the value of the "selected_index" field.
func (_u *QuizResponseUpdateOne) ClearSelectedIndex() *QuizResponseUpdateOne {
	_u.mutation.ClearSelectedIndex()
	return _u
}

// SetCorrectIndex sets the "correct_index" field.
func (_u *QuizResponseUpdateOne) SetCorrectIndex(v int) *QuizResponseUpdateOne {
	_u.mutation.ResetCorrectIndex()
	_u.mutation.SetCorrectIndex(v)
	return _u
}

// SetNillableCorrectIndex sets the "correct_index" field if the given value is not nil.
func (_u *QuizResponseUpdateOne) SetNillableCorrectIndex(v *int) *QuizResponseUpdateOne {
	if v != nil {
		_u.SetCorrectIndex(*v)
	}
	return _u
}

// AddCorrectIndex adds value to the "correct_index" field.
func (_u *QuizResponseUpdateOne) AddCorrectIndex(v int) *QuizResponseUpdateOne {
	_u.mutation.AddCorrectIndex(v)
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *QuizResponseUpdateOne) SetIsCorrect(v bool) *QuizResponseUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *QuizResponseUpdateOne) SetNillableIsCorrect(v *bool) *QuizResponseUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// Mutation returns the QuizResponseMutation object of the builder.
func (_u *QuizResponseUpdateOne) Mutation() *QuizResponseMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizResponseUpdate builder.
func (_u *QuizResponseUpdateOne) Where(ps ...predicate.QuizResponse) *QuizResponseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizResponseUpdateOne) Select(field string, fields ...string) *QuizResponseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizResponse entity.
func (_u *QuizResponseUpdateOne) Save(ctx context.Context) (*QuizResponse, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizResponseUpdateOne) SaveX(ctx context.Context) *QuizResponse {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizResponseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizResponseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizResponseUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quizresponse.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizResponse.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := quizresponse.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuizResponse.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Domain(); ok {
		if err := quizresponse.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "QuizResponse.domain": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := quizresponse.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "QuizResponse.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizResponseUpdateOne) sqlSave(ctx context.Context) (_node *QuizResponse, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizresponse.Table, quizresponse.Columns, sqlgraph.NewFieldSpec(quizresponse.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizResponse.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizresponse.FieldID)
		for _, f := range fields {
			if !quizresponse.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizresponse.FieldID {
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
		_spec.SetField(quizresponse.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionIndex(); ok {
		_spec.SetField(quizresponse.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIndex(); ok {
		_spec.AddField(quizresponse.FieldQuestionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(quizresponse.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(quizresponse.FieldDomain, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(quizresponse.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedIndex(); ok {
		_spec.SetField(quizresponse.FieldSelectedIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelectedIndex(); ok {
		_spec.AddField(quizresponse.FieldSelectedIndex, field.TypeInt, value)
	}
	if _u.mutation.SelectedIndexCleared() {
		_spec.ClearField(quizresponse.FieldSelectedIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.CorrectIndex(); ok {
		_spec.SetField(quizresponse.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectIndex(); ok {
		_spec.AddField(quizresponse.FieldCorrectIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(quizresponse.FieldIsCorrect, field.TypeBool, value)
	}
	_node = &QuizResponse{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
