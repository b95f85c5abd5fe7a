// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fartec0/aigp-codex/ent/quizresult"
	"github.com/fartec0/aigp-codex/ent/schema"
)

// QuizResultCreate is the builder for creating a QuizResult entity.
type QuizResultCreate struct {
	config
	mutation *QuizResultMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *QuizResultCreate) SetSessionID(v string) *QuizResultCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *QuizResultCreate) SetUserID(v int) *QuizResultCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *QuizResultCreate) SetNillableUserID(v *int) *QuizResultCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetUserType sets the "user_type" field.
func (_c *QuizResultCreate) SetUserType(v string) *QuizResultCreate {
	_c.mutation.SetUserType(v)
	return _c
}

// SetNillableUserType sets the "user_type" field if the given value is not nil.
func (_c *QuizResultCreate) SetNillableUserType(v *string) *QuizResultCreate {
	if v != nil {
		_c.SetUserType(*v)
	}
	return _c
}

// SetMode sets the "mode" field.
func (_c *QuizResultCreate) SetMode(v string) *QuizResultCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetDomainFocus sets the "domain_focus" field.
func (_c *QuizResultCreate) SetDomainFocus(v string) *QuizResultCreate {
	_c.mutation.SetDomainFocus(v)
	return _c
}

// SetNillableDomainFocus sets the "domain_focus" field if the given value is not nil.
func (_c *QuizResultCreate) SetNillableDomainFocus(v *string) *QuizResultCreate {
	if v != nil {
		_c.SetDomainFocus(*v)
	}
	return _c
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_c *QuizResultCreate) SetDifficultyLevel(v string) *QuizResultCreate {
	_c.mutation.SetDifficultyLevel(v)
	return _c
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_c *QuizResultCreate) SetNillableDifficultyLevel(v *string) *QuizResultCreate {
	if v != nil {
		_c.SetDifficultyLevel(*v)
	}
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *QuizResultCreate) SetTotalQuestions(v int) *QuizResultCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetAnsweredQuestions sets the "answered_questions" field.
func (_c *QuizResultCreate) SetAnsweredQuestions(v int) *QuizResultCreate {
	_c.mutation.SetAnsweredQuestions(v)
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *QuizResultCreate) SetCorrectAnswers(v int) *QuizResultCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *QuizResultCreate) SetScore(v float64) *QuizResultCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetCompletionRate sets the "completion_rate" field.
func (_c *QuizResultCreate) SetCompletionRate(v float64) *QuizResultCreate {
	_c.mutation.SetCompletionRate(v)
	return _c
}

// SetTimeTakenMinutes sets the "time_taken_minutes" field.
func (_c *QuizResultCreate) SetTimeTakenMinutes(v float64) *QuizResultCreate {
	_c.mutation.SetTimeTakenMinutes(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *QuizResultCreate) SetPassed(v bool) *QuizResultCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetDomainPerformance sets the "domain_performance" field.
func (_c *QuizResultCreate) SetDomainPerformance(v map[string]schema.PerformanceCell) *QuizResultCreate {
	_c.mutation.SetDomainPerformance(v)
	return _c
}

// SetDifficultyPerformance sets the "difficulty_performance" field.
func (_c *QuizResultCreate) SetDifficultyPerformance(v map[string]schema.PerformanceCell) *QuizResultCreate {
	_c.mutation.SetDifficultyPerformance(v)
	return _c
}

// SetRecommendations sets the "recommendations" field.
func (_c *QuizResultCreate) SetRecommendations(v []string) *QuizResultCreate {
	_c.mutation.SetRecommendations(v)
	return _c
}

// SetDetailedAnswers sets the "detailed_answers" field.
func (_c *QuizResultCreate) SetDetailedAnswers(v []schema.AnswerDetail) *QuizResultCreate {
	_c.mutation.SetDetailedAnswers(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuizResultCreate) SetCreatedAt(v time.Time) *QuizResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuizResultCreate) SetNillableCreatedAt(v *time.Time) *QuizResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the QuizResultMutation object of the builder.
func (_c *QuizResultCreate) Mutation() *QuizResultMutation {
	return _c.mutation
}

// Save creates the QuizResult in the database.
func (_c *QuizResultCreate) Save(ctx context.Context) (*QuizResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizResultCreate) SaveX(ctx context.Context) *QuizResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizResultCreate) defaults() {
	if _, ok := _c.mutation.UserType(); !ok {
		v := quizresult.DefaultUserType
		_c.mutation.SetUserType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := quizresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizResultCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "QuizResult.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := quizresult.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizResult.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserType(); !ok {
		return &ValidationError{Name: "user_type", err: errors.New(`ent: missing required field "QuizResult.user_type"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "QuizResult.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := quizresult.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "QuizResult.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "QuizResult.total_questions"`)}
	}
	if _, ok := _c.mutation.AnsweredQuestions(); !ok {
		return &ValidationError{Name: "answered_questions", err: errors.New(`ent: missing required field "QuizResult.answered_questions"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "QuizResult.correct_answers"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "QuizResult.score"`)}
	}
	if _, ok := _c.mutation.CompletionRate(); !ok {
		return &ValidationError{Name: "completion_rate", err: errors.New(`ent: missing required field "QuizResult.completion_rate"`)}
	}
	if _, ok := _c.mutation.TimeTakenMinutes(); !ok {
		return &ValidationError{Name: "time_taken_minutes", err: errors.New(`ent: missing required field "QuizResult.time_taken_minutes"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "QuizResult.passed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuizResult.created_at"`)}
	}
	return nil
}

func (_c *QuizResultCreate) sqlSave(ctx context.Context) (*QuizResult, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuizResultCreate) createSpec() (*QuizResult, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizresult.Table, sqlgraph.NewFieldSpec(quizresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(quizresult.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(quizresult.FieldUserID, field.TypeInt, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.UserType(); ok {
		_spec.SetField(quizresult.FieldUserType, field.TypeString, value)
		_node.UserType = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(quizresult.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.DomainFocus(); ok {
		_spec.SetField(quizresult.FieldDomainFocus, field.TypeString, value)
		_node.DomainFocus = value
	}
	if value, ok := _c.mutation.DifficultyLevel(); ok {
		_spec.SetField(quizresult.FieldDifficultyLevel, field.TypeString, value)
		_node.DifficultyLevel = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(quizresult.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.AnsweredQuestions(); ok {
		_spec.SetField(quizresult.FieldAnsweredQuestions, field.TypeInt, value)
		_node.AnsweredQuestions = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(quizresult.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(quizresult.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.CompletionRate(); ok {
		_spec.SetField(quizresult.FieldCompletionRate, field.TypeFloat64, value)
		_node.CompletionRate = value
	}
	if value, ok := _c.mutation.TimeTakenMinutes(); ok {
		_spec.SetField(quizresult.FieldTimeTakenMinutes, field.TypeFloat64, value)
		_node.TimeTakenMinutes = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(quizresult.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.DomainPerformance(); ok {
		_spec.SetField(quizresult.FieldDomainPerformance, field.TypeJSON, value)
		_node.DomainPerformance = value
	}
	if value, ok := _c.mutation.DifficultyPerformance(); ok {
		_spec.SetField(quizresult.FieldDifficultyPerformance, field.TypeJSON, value)
		_node.DifficultyPerformance = value
	}
	if value, ok := _c.mutation.Recommendations(); ok {
		_spec.SetField(quizresult.FieldRecommendations, field.TypeJSON, value)
		_node.Recommendations = value
	}
	if value, ok := _c.mutation.DetailedAnswers(); ok {
		_spec.SetField(quizresult.FieldDetailedAnswers, field.TypeJSON, value)
		_node.DetailedAnswers = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(quizresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// QuizResultCreateBulk is the builder for creating many QuizResult entities in bulk.
type QuizResultCreateBulk struct {
	config
	err      error
	builders []*QuizResultCreate
}

// Save creates the QuizResult entities in the database.
func (_c *QuizResultCreateBulk) Save(ctx context.Context) ([]*QuizResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizResultMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuizResultCreateBulk) SaveX(ctx context.Context) []*QuizResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
