// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adina/skillpilot/ent/learningstep"
)

// LearningStepCreate is the builder for creating a LearningStep entity.
type LearningStepCreate struct {
	config
	mutation *LearningStepMutation
	hooks    []Hook
}

// SetPathID sets the "path_id" field.
func (_c *LearningStepCreate) SetPathID(v string) *LearningStepCreate {
	_c.mutation.SetPathID(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *LearningStepCreate) SetStepID(v string) *LearningStepCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetSkill sets the "skill" field.
func (_c *LearningStepCreate) SetSkill(v string) *LearningStepCreate {
	_c.mutation.SetSkill(v)
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *LearningStepCreate) SetCourseID(v string) *LearningStepCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *LearningStepCreate) SetTitle(v string) *LearningStepCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetHours sets the "hours" field.
func (_c *LearningStepCreate) SetHours(v int) *LearningStepCreate {
	_c.mutation.SetHours(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *LearningStepCreate) SetCompleted(v bool) *LearningStepCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *LearningStepCreate) SetNillableCompleted(v *bool) *LearningStepCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetOrderIndex sets the "order_index" field.
func (_c *LearningStepCreate) SetOrderIndex(v int) *LearningStepCreate {
	_c.mutation.SetOrderIndex(v)
	return _c
}

// Mutation returns the LearningStepMutation object of the builder.
func (_c *LearningStepCreate) Mutation() *LearningStepMutation {
	return _c.mutation
}

// Save creates the LearningStep in the database.
func (_c *LearningStepCreate) Save(ctx context.Context) (*LearningStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningStepCreate) SaveX(ctx context.Context) *LearningStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningStepCreate) defaults() {
	if _, ok := _c.mutation.Completed(); !ok {
		v := learningstep.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningStepCreate) check() error {
	if _, ok := _c.mutation.PathID(); !ok {
		return &ValidationError{Name: "path_id", err: errors.New(`ent: missing required field "LearningStep.path_id"`)}
	}
	if _, ok := _c.mutation.StepID(); !ok {
		return &ValidationError{Name: "step_id", err: errors.New(`ent: missing required field "LearningStep.step_id"`)}
	}
	if _, ok := _c.mutation.Skill(); !ok {
		return &ValidationError{Name: "skill", err: errors.New(`ent: missing required field "LearningStep.skill"`)}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "LearningStep.course_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "LearningStep.title"`)}
	}
	if _, ok := _c.mutation.Hours(); !ok {
		return &ValidationError{Name: "hours", err: errors.New(`ent: missing required field "LearningStep.hours"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "LearningStep.completed"`)}
	}
	if _, ok := _c.mutation.OrderIndex(); !ok {
		return &ValidationError{Name: "order_index", err: errors.New(`ent: missing required field "LearningStep.order_index"`)}
	}
	return nil
}

func (_c *LearningStepCreate) sqlSave(ctx context.Context) (*LearningStep, error) {
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

func (_c *LearningStepCreate) createSpec() (*LearningStep, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningstep.Table, sqlgraph.NewFieldSpec(learningstep.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PathID(); ok {
		_spec.SetField(learningstep.FieldPathID, field.TypeString, value)
		_node.PathID = value
	}
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(learningstep.FieldStepID, field.TypeString, value)
		_node.StepID = value
	}
	if value, ok := _c.mutation.Skill(); ok {
		_spec.SetField(learningstep.FieldSkill, field.TypeString, value)
		_node.Skill = value
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(learningstep.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(learningstep.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Hours(); ok {
		_spec.SetField(learningstep.FieldHours, field.TypeInt, value)
		_node.Hours = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(learningstep.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.OrderIndex(); ok {
		_spec.SetField(learningstep.FieldOrderIndex, field.TypeInt, value)
		_node.OrderIndex = value
	}
	return _node, _spec
}

// LearningStepCreateBulk is the builder for creating many LearningStep entities in bulk.
type LearningStepCreateBulk struct {
	config
	err      error
	builders []*LearningStepCreate
}

// Save creates the LearningStep entities in the database.
func (_c *LearningStepCreateBulk) Save(ctx context.Context) ([]*LearningStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningStepMutation)
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
func (_c *LearningStepCreateBulk) SaveX(ctx context.Context) []*LearningStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
