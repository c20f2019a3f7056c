// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hikaru-dev/soroban/ent/masteryevent"
)

// MasteryEventCreate is the builder for creating a MasteryEvent entity.
type MasteryEventCreate struct {
	config
	mutation *MasteryEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (mec *MasteryEventCreate) SetSequence(i int64) *MasteryEventCreate {
	mec.mutation.SetSequence(i)
	return mec
}

// SetTimestamp sets the "timestamp" field.
func (mec *MasteryEventCreate) SetTimestamp(t time.Time) *MasteryEventCreate {
	mec.mutation.SetTimestamp(t)
	return mec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (mec *MasteryEventCreate) SetNillableTimestamp(t *time.Time) *MasteryEventCreate {
	if t != nil {
		mec.SetTimestamp(*t)
	}
	return mec
}

// SetSkillID sets the "skill_id" field.
func (mec *MasteryEventCreate) SetSkillID(s string) *MasteryEventCreate {
	mec.mutation.SetSkillID(s)
	return mec
}

// SetPKnown sets the "p_known" field.
func (mec *MasteryEventCreate) SetPKnown(f float64) *MasteryEventCreate {
	mec.mutation.SetPKnown(f)
	return mec
}

// SetConfidence sets the "confidence" field.
func (mec *MasteryEventCreate) SetConfidence(f float64) *MasteryEventCreate {
	mec.mutation.SetConfidence(f)
	return mec
}

// SetOpportunities sets the "opportunities" field.
func (mec *MasteryEventCreate) SetOpportunities(i int) *MasteryEventCreate {
	mec.mutation.SetOpportunities(i)
	return mec
}

// SetClassification sets the "classification" field.
func (mec *MasteryEventCreate) SetClassification(s string) *MasteryEventCreate {
	mec.mutation.SetClassification(s)
	return mec
}

// Mutation returns the MasteryEventMutation object of the builder.
func (mec *MasteryEventCreate) Mutation() *MasteryEventMutation {
	return mec.mutation
}

// Save creates the MasteryEvent in the database.
func (mec *MasteryEventCreate) Save(ctx context.Context) (*MasteryEvent, error) {
	mec.defaults()
	return withHooks(ctx, mec.sqlSave, mec.mutation, mec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (mec *MasteryEventCreate) SaveX(ctx context.Context) *MasteryEvent {
	v, err := mec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (mec *MasteryEventCreate) Exec(ctx context.Context) error {
	_, err := mec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mec *MasteryEventCreate) ExecX(ctx context.Context) {
	if err := mec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (mec *MasteryEventCreate) defaults() {
	if _, ok := mec.mutation.Timestamp(); !ok {
		v := masteryevent.DefaultTimestamp()
		mec.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (mec *MasteryEventCreate) check() error {
	if _, ok := mec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "MasteryEvent.sequence"`)}
	}
	if _, ok := mec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "MasteryEvent.timestamp"`)}
	}
	if _, ok := mec.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "MasteryEvent.skill_id"`)}
	}
	if v, ok := mec.mutation.SkillID(); ok {
		if err := masteryevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.skill_id": %w`, err)}
		}
	}
	if _, ok := mec.mutation.PKnown(); !ok {
		return &ValidationError{Name: "p_known", err: errors.New(`ent: missing required field "MasteryEvent.p_known"`)}
	}
	if _, ok := mec.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "MasteryEvent.confidence"`)}
	}
	if _, ok := mec.mutation.Opportunities(); !ok {
		return &ValidationError{Name: "opportunities", err: errors.New(`ent: missing required field "MasteryEvent.opportunities"`)}
	}
	if _, ok := mec.mutation.Classification(); !ok {
		return &ValidationError{Name: "classification", err: errors.New(`ent: missing required field "MasteryEvent.classification"`)}
	}
	return nil
}

func (mec *MasteryEventCreate) sqlSave(ctx context.Context) (*MasteryEvent, error) {
	if err := mec.check(); err != nil {
		return nil, err
	}
	_node, _spec := mec.createSpec()
	if err := sqlgraph.CreateNode(ctx, mec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	mec.mutation.id = &_node.ID
	mec.mutation.done = true
	return _node, nil
}

func (mec *MasteryEventCreate) createSpec() (*MasteryEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &MasteryEvent{config: mec.config}
		_spec = sqlgraph.NewCreateSpec(masteryevent.Table, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	)
	if value, ok := mec.mutation.Sequence(); ok {
		_spec.SetField(masteryevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := mec.mutation.Timestamp(); ok {
		_spec.SetField(masteryevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := mec.mutation.SkillID(); ok {
		_spec.SetField(masteryevent.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := mec.mutation.PKnown(); ok {
		_spec.SetField(masteryevent.FieldPKnown, field.TypeFloat64, value)
		_node.PKnown = value
	}
	if value, ok := mec.mutation.Confidence(); ok {
		_spec.SetField(masteryevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := mec.mutation.Opportunities(); ok {
		_spec.SetField(masteryevent.FieldOpportunities, field.TypeInt, value)
		_node.Opportunities = value
	}
	if value, ok := mec.mutation.Classification(); ok {
		_spec.SetField(masteryevent.FieldClassification, field.TypeString, value)
		_node.Classification = value
	}
	return _node, _spec
}

// MasteryEventCreateBulk is the builder for creating many MasteryEvent entities in bulk.
type MasteryEventCreateBulk struct {
	config
	err      error
	builders []*MasteryEventCreate
}

// Save creates the MasteryEvent entities in the database.
func (mecb *MasteryEventCreateBulk) Save(ctx context.Context) ([]*MasteryEvent, error) {
	if mecb.err != nil {
		return nil, mecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(mecb.builders))
	nodes := make([]*MasteryEvent, len(mecb.builders))
	mutators := make([]Mutator, len(mecb.builders))
	for i := range mecb.builders {
		func(i int, root context.Context) {
			builder := mecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryEventMutation)
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
					_, err = mutators[i+1].Mutate(root, mecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, mecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, mecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (mecb *MasteryEventCreateBulk) SaveX(ctx context.Context) []*MasteryEvent {
	v, err := mecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (mecb *MasteryEventCreateBulk) Exec(ctx context.Context) error {
	_, err := mecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mecb *MasteryEventCreateBulk) ExecX(ctx context.Context) {
	if err := mecb.Exec(ctx); err != nil {
		panic(err)
	}
}
