// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codifymate/caprep/ent/examevent"
	"github.com/codifymate/caprep/ent/predicate"
)

// ExamEventUpdate is the builder for updating ExamEvent entities.
type ExamEventUpdate struct {
	config
	hooks    []Hook
	mutation *ExamEventMutation
}

// Where appends a list predicates to the ExamEventUpdate builder.
func (_u *ExamEventUpdate) Where(ps ...predicate.ExamEvent) *ExamEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *ExamEventUpdate) SetAttemptID(v string) *ExamEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableAttemptID(v *string) *ExamEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetScorePercentage sets the "score_percentage" field.
func (_u *ExamEventUpdate) SetScorePercentage(v float64) *ExamEventUpdate {
	_u.mutation.ResetScorePercentage()
	_u.mutation.SetScorePercentage(v)
	return _u
}

// SetNillableScorePercentage sets the "score_percentage" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableScorePercentage(v *float64) *ExamEventUpdate {
	if v != nil {
		_u.SetScorePercentage(*v)
	}
	return _u
}

// AddScorePercentage adds value to the "score_percentage" field.
func (_u *ExamEventUpdate) AddScorePercentage(v float64) *ExamEventUpdate {
	_u.mutation.AddScorePercentage(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ExamEventUpdate) SetPassed(v bool) *ExamEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillablePassed(v *bool) *ExamEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *ExamEventUpdate) SetCorrectAnswers(v int) *ExamEventUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableCorrectAnswers(v *int) *ExamEventUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *ExamEventUpdate) AddCorrectAnswers(v int) *ExamEventUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetIncorrectAnswers sets the "incorrect_answers" field.
func (_u *ExamEventUpdate) SetIncorrectAnswers(v int) *ExamEventUpdate {
	_u.mutation.ResetIncorrectAnswers()
	_u.mutation.SetIncorrectAnswers(v)
	return _u
}

// SetNillableIncorrectAnswers sets the "incorrect_answers" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableIncorrectAnswers(v *int) *ExamEventUpdate {
	if v != nil {
		_u.SetIncorrectAnswers(*v)
	}
	return _u
}

// AddIncorrectAnswers adds value to the "incorrect_answers" field.
func (_u *ExamEventUpdate) AddIncorrectAnswers(v int) *ExamEventUpdate {
	_u.mutation.AddIncorrectAnswers(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *ExamEventUpdate) SetTotalQuestions(v int) *ExamEventUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableTotalQuestions(v *int) *ExamEventUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *ExamEventUpdate) AddTotalQuestions(v int) *ExamEventUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetTotalTimeSecs sets the "total_time_secs" field.
func (_u *ExamEventUpdate) SetTotalTimeSecs(v int) *ExamEventUpdate {
	_u.mutation.ResetTotalTimeSecs()
	_u.mutation.SetTotalTimeSecs(v)
	return _u
}

// SetNillableTotalTimeSecs sets the "total_time_secs" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableTotalTimeSecs(v *int) *ExamEventUpdate {
	if v != nil {
		_u.SetTotalTimeSecs(*v)
	}
	return _u
}

// AddTotalTimeSecs adds value to the "total_time_secs" field.
func (_u *ExamEventUpdate) AddTotalTimeSecs(v int) *ExamEventUpdate {
	_u.mutation.AddTotalTimeSecs(v)
	return _u
}

// Mutation returns the ExamEventMutation object of the builder.
func (_u *ExamEventUpdate) Mutation() *ExamEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamEventUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := examevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.attempt_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examevent.Table, examevent.Columns, sqlgraph.NewFieldSpec(examevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(examevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScorePercentage(); ok {
		_spec.SetField(examevent.FieldScorePercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScorePercentage(); ok {
		_spec.AddField(examevent.FieldScorePercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(examevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(examevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(examevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectAnswers(); ok {
		_spec.SetField(examevent.FieldIncorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectAnswers(); ok {
		_spec.AddField(examevent.FieldIncorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(examevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(examevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTimeSecs(); ok {
		_spec.SetField(examevent.FieldTotalTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTimeSecs(); ok {
		_spec.AddField(examevent.FieldTotalTimeSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamEventUpdateOne is the builder for updating a single ExamEvent entity.
type ExamEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *ExamEventUpdateOne) SetAttemptID(v string) *ExamEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableAttemptID(v *string) *ExamEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetScorePercentage sets the "score_percentage" field.
func (_u *ExamEventUpdateOne) SetScorePercentage(v float64) *ExamEventUpdateOne {
	_u.mutation.ResetScorePercentage()
	_u.mutation.SetScorePercentage(v)
	return _u
}

// SetNillableScorePercentage sets the "score_percentage" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableScorePercentage(v *float64) *ExamEventUpdateOne {
	if v != nil {
		_u.SetScorePercentage(*v)
	}
	return _u
}

// AddScorePercentage adds value to the "score_percentage" field.
func (_u *ExamEventUpdateOne) AddScorePercentage(v float64) *ExamEventUpdateOne {
	_u.mutation.AddScorePercentage(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ExamEventUpdateOne) SetPassed(v bool) *ExamEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillablePassed(v *bool) *ExamEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *ExamEventUpdateOne) SetCorrectAnswers(v int) *ExamEventUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableCorrectAnswers(v *int) *ExamEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *ExamEventUpdateOne) AddCorrectAnswers(v int) *ExamEventUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetIncorrectAnswers sets the "incorrect_answers" field.
func (_u *ExamEventUpdateOne) SetIncorrectAnswers(v int) *ExamEventUpdateOne {
	_u.mutation.ResetIncorrectAnswers()
	_u.mutation.SetIncorrectAnswers(v)
	return _u
}

// SetNillableIncorrectAnswers sets the "incorrect_answers" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableIncorrectAnswers(v *int) *ExamEventUpdateOne {
	if v != nil {
		_u.SetIncorrectAnswers(*v)
	}
	return _u
}

// AddIncorrectAnswers adds value to the "incorrect_answers" field.
func (_u *ExamEventUpdateOne) AddIncorrectAnswers(v int) *ExamEventUpdateOne {
	_u.mutation.AddIncorrectAnswers(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *ExamEventUpdateOne) SetTotalQuestions(v int) *ExamEventUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableTotalQuestions(v *int) *ExamEventUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *ExamEventUpdateOne) AddTotalQuestions(v int) *ExamEventUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetTotalTimeSecs sets the "total_time_secs" field.
func (_u *ExamEventUpdateOne) SetTotalTimeSecs(v int) *ExamEventUpdateOne {
	_u.mutation.ResetTotalTimeSecs()
	_u.mutation.SetTotalTimeSecs(v)
	return _u
}

// SetNillableTotalTimeSecs sets the "total_time_secs" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableTotalTimeSecs(v *int) *ExamEventUpdateOne {
	if v != nil {
		_u.SetTotalTimeSecs(*v)
	}
	return _u
}

// AddTotalTimeSecs adds value to the "total_time_secs" field.
func (_u *ExamEventUpdateOne) AddTotalTimeSecs(v int) *ExamEventUpdateOne {
	_u.mutation.AddTotalTimeSecs(v)
	return _u
}

// Mutation returns the ExamEventMutation object of the builder.
func (_u *ExamEventUpdateOne) Mutation() *ExamEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExamEventUpdate builder.
func (_u *ExamEventUpdateOne) Where(ps ...predicate.ExamEvent) *ExamEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamEventUpdateOne) Select(field string, fields ...string) *ExamEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExamEvent entity.
func (_u *ExamEventUpdateOne) Save(ctx context.Context) (*ExamEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamEventUpdateOne) SaveX(ctx context.Context) *ExamEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamEventUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := examevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.attempt_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamEventUpdateOne) sqlSave(ctx context.Context) (_node *ExamEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examevent.Table, examevent.Columns, sqlgraph.NewFieldSpec(examevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExamEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, examevent.FieldID)
		for _, f := range fields {
			if !examevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != examevent.FieldID {
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
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(examevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScorePercentage(); ok {
		_spec.SetField(examevent.FieldScorePercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScorePercentage(); ok {
		_spec.AddField(examevent.FieldScorePercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(examevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(examevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(examevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectAnswers(); ok {
		_spec.SetField(examevent.FieldIncorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectAnswers(); ok {
		_spec.AddField(examevent.FieldIncorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(examevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(examevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTimeSecs(); ok {
		_spec.SetField(examevent.FieldTotalTimeSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTimeSecs(); ok {
		_spec.AddField(examevent.FieldTotalTimeSecs, field.TypeInt, value)
	}
	_node = &ExamEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
