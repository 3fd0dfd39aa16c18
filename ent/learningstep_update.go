// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adina/skillpilot/ent/learningstep"
	"github.com/adina/skillpilot/ent/predicate"
)

// LearningStepUpdate is the builder for updating LearningStep entities.
type LearningStepUpdate struct {
	config
	hooks    []Hook
	mutation *LearningStepMutation
}

// Where appends a list predicates to the LearningStepUpdate builder.
func (_u *LearningStepUpdate) Where(ps ...predicate.LearningStep) *LearningStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSkill sets the "skill" field.
func (_u *LearningStepUpdate) SetSkill(v string) *LearningStepUpdate {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *LearningStepUpdate) SetNillableSkill(v *string) *LearningStepUpdate {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *LearningStepUpdate) SetCourseID(v string) *LearningStepUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *LearningStepUpdate) SetNillableCourseID(v *string) *LearningStepUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LearningStepUpdate) SetTitle(v string) *LearningStepUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LearningStepUpdate) SetNillableTitle(v *string) *LearningStepUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetHours sets the "hours" field.
func (_u *LearningStepUpdate) SetHours(v int) *LearningStepUpdate {
	_u.mutation.ResetHours()
	_u.mutation.SetHours(v)
	return _u
}

// SetNillableHours sets the "hours" field if the given value is not nil.
func (_u *LearningStepUpdate) SetNillableHours(v *int) *LearningStepUpdate {
	if v != nil {
		_u.SetHours(*v)
	}
	return _u
}

// AddHours adds value to the "hours" field.
func (_u *LearningStepUpdate) AddHours(v int) *LearningStepUpdate {
	_u.mutation.AddHours(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *LearningStepUpdate) SetCompleted(v bool) *LearningStepUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *LearningStepUpdate) SetNillableCompleted(v *bool) *LearningStepUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// Mutation returns the LearningStepMutation object of the builder.
func (_u *LearningStepUpdate) Mutation() *LearningStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LearningStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(learningstep.Table, learningstep.Columns, sqlgraph.NewFieldSpec(learningstep.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(learningstep.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(learningstep.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(learningstep.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hours(); ok {
		_spec.SetField(learningstep.FieldHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHours(); ok {
		_spec.AddField(learningstep.FieldHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(learningstep.FieldCompleted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningStepUpdateOne is the builder for updating a single LearningStep entity.
type LearningStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningStepMutation
}

// SetSkill sets the "skill" field.
func (_u *LearningStepUpdateOne) SetSkill(v string) *LearningStepUpdateOne {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *LearningStepUpdateOne) SetNillableSkill(v *string) *LearningStepUpdateOne {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *LearningStepUpdateOne) SetCourseID(v string) *LearningStepUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *LearningStepUpdateOne) SetNillableCourseID(v *string) *LearningStepUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LearningStepUpdateOne) SetTitle(v string) *LearningStepUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LearningStepUpdateOne) SetNillableTitle(v *string) *LearningStepUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetHours sets the "hours" field.
func (_u *LearningStepUpdateOne) SetHours(v int) *LearningStepUpdateOne {
	_u.mutation.ResetHours()
	_u.mutation.SetHours(v)
	return _u
}

// SetNillableHours sets the "hours" field if the given value is not nil.
func (_u *LearningStepUpdateOne) SetNillableHours(v *int) *LearningStepUpdateOne {
	if v != nil {
		_u.SetHours(*v)
	}
	return _u
}

// AddHours adds value to the "hours" field.
func (_u *LearningStepUpdateOne) AddHours(v int) *LearningStepUpdateOne {
	_u.mutation.AddHours(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *LearningStepUpdateOne) SetCompleted(v bool) *LearningStepUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *LearningStepUpdateOne) SetNillableCompleted(v *bool) *LearningStepUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// Mutation returns the LearningStepMutation object of the builder.
func (_u *LearningStepUpdateOne) Mutation() *LearningStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningStepUpdate builder.
func (_u *LearningStepUpdateOne) Where(ps ...predicate.LearningStep) *LearningStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningStepUpdateOne) Select(field string, fields ...string) *LearningStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningStep entity.
func (_u *LearningStepUpdateOne) Save(ctx context.Context) (*LearningStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningStepUpdateOne) SaveX(ctx context.Context) *LearningStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LearningStepUpdateOne) sqlSave(ctx context.Context) (_node *LearningStep, err error) {
	_spec := sqlgraph.NewUpdateSpec(learningstep.Table, learningstep.Columns, sqlgraph.NewFieldSpec(learningstep.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningstep.FieldID)
		for _, f := range fields {
			if !learningstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningstep.FieldID {
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
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(learningstep.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(learningstep.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(learningstep.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hours(); ok {
		_spec.SetField(learningstep.FieldHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHours(); ok {
		_spec.AddField(learningstep.FieldHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(learningstep.FieldCompleted, field.TypeBool, value)
	}
	_node = &LearningStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
