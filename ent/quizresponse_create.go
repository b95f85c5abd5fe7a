// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fartec0/aigp-codex/ent/quizresponse"
)

// QuizResponseCreate is the builder for creating a QuizResponse entity.
type QuizResponseCreate struct {
	config
	mutation *QuizResponseMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *QuizResponseCreate) SetSessionID(v string) *QuizResponseCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionIndex sets the "question_index" field.
func (_c *QuizResponseCreate) SetQuestionIndex(v int) *QuizResponseCreate {
	_c.mutation.SetQuestionIndex(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *QuizResponseCreate) SetQuestionID(v string) *QuizResponseCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetDomain sets the "domain" field.
func (_c *QuizResponseCreate) SetDomain(v string) *QuizResponseCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *QuizResponseCreate) SetDifficulty(v string) *QuizResponseCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetSelectedIndex sets the "selected_index" field.
func (_c *QuizResponseCreate) SetSelectedIndex(v int) *QuizResponseCreate {
	_c.mutation.SetSelectedIndex(v)
	return _c
}

// SetNillableSelectedIndex sets the "selected_index" field if the given value is not nil.
func (_c *QuizResponseCreate) SetNillableSelectedIndex(v *int) *QuizResponseCreate {
	if v != nil {
		_c.SetSelectedIndex(*v)
	}
	return _c
}

// SetCorrectIndex sets the "correct_index" field.
func (_c *QuizResponseCreate) SetCorrectIndex(v int) *QuizResponseCreate {
	_c.mutation.SetCorrectIndex(v)
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *QuizResponseCreate) SetIsCorrect(v bool) *QuizResponseCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuizResponseCreate) SetCreatedAt(v time.Time) *QuizResponseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuizResponseCreate) SetNillableCreatedAt(v *time.Time) *QuizResponseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the QuizResponseMutation object of the builder.
func (_c *QuizResponseCreate) Mutation() *QuizResponseMutation {
	return _c.mutation
}

// Save creates the QuizResponse in the database.
func (_c *QuizResponseCreate) Save(ctx context.Context) (*QuizResponse, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizResponseCreate) SaveX(ctx context.Context) *QuizResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizResponseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizResponseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizResponseCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := quizresponse.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizResponseCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "QuizResponse.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := quizresponse.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizResponse.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionIndex(); !ok {
		return &ValidationError{Name: "question_index", err: errors.New(`ent: missing required field "QuizResponse.question_index"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "QuizResponse.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := quizresponse.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuizResponse.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "QuizResponse.domain"`)}
	}
	if v, ok := _c.mutation.Domain(); ok {
		if err := quizresponse.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "QuizResponse.domain": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "QuizResponse.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := quizresponse.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "QuizResponse.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectIndex(); !ok {
		return &ValidationError{Name: "correct_index", err: errors.New(`ent: missing required field "QuizResponse.correct_index"`)}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "QuizResponse.is_correct"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuizResponse.created_at"`)}
	}
	return nil
}

func (_c *QuizResponseCreate) sqlSave(ctx context.Context) (*QuizResponse, error) {
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

func (_c *QuizResponseCreate) createSpec() (*QuizResponse, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizResponse{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizresponse.Table, sqlgraph.NewFieldSpec(quizresponse.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(quizresponse.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuestionIndex(); ok {
		_spec.SetField(quizresponse.FieldQuestionIndex, field.TypeInt, value)
		_node.QuestionIndex = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(quizresponse.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(quizresponse.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(quizresponse.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.SelectedIndex(); ok {
		_spec.SetField(quizresponse.FieldSelectedIndex, field.TypeInt, value)
		_node.SelectedIndex = &value
	}
	if value, ok := _c.mutation.CorrectIndex(); ok {
		_spec.SetField(quizresponse.FieldCorrectIndex, field.TypeInt, value)
		_node.CorrectIndex = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(quizresponse.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(quizresponse.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// QuizResponseCreateBulk is the builder for creating many QuizResponse entities in bulk.
type QuizResponseCreateBulk struct {
	config
	err      error
	builders []*QuizResponseCreate
}

// Save creates the QuizResponse entities in the database.
func (_c *QuizResponseCreateBulk) Save(ctx context.Context) ([]*QuizResponse, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizResponse, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizResponseMutation)
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
func (_c *QuizResponseCreateBulk) SaveX(ctx context.Context) []*QuizResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizResponseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizResponseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
