// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hikaru-dev/soroban/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (aec *AttemptEventCreate) SetSequence(i int64) *AttemptEventCreate {
	aec.mutation.SetSequence(i)
	return aec
}

// SetTimestamp sets the "timestamp" field.
func (aec *AttemptEventCreate) SetTimestamp(t time.Time) *AttemptEventCreate {
	aec.mutation.SetTimestamp(t)
	return aec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (aec *AttemptEventCreate) SetNillableTimestamp(t *time.Time) *AttemptEventCreate {
	if t != nil {
		aec.SetTimestamp(*t)
	}
	return aec
}

// SetSessionID sets the "session_id" field.
func (aec *AttemptEventCreate) SetSessionID(s string) *AttemptEventCreate {
	aec.mutation.SetSessionID(s)
	return aec
}

// SetPartIndex sets the "part_index" field.
func (aec *AttemptEventCreate) SetPartIndex(i int) *AttemptEventCreate {
	aec.mutation.SetPartIndex(i)
	return aec
}

// SetSlotIndex sets the "slot_index" field.
func (aec *AttemptEventCreate) SetSlotIndex(i int) *AttemptEventCreate {
	aec.mutation.SetSlotIndex(i)
	return aec
}

// SetTerms sets the "terms" field.
func (aec *AttemptEventCreate) SetTerms(i []int) *AttemptEventCreate {
	aec.mutation.SetTerms(i)
	return aec
}

// SetAnswer sets the "answer" field.
func (aec *AttemptEventCreate) SetAnswer(i int) *AttemptEventCreate {
	aec.mutation.SetAnswer(i)
	return aec
}

// SetStudentAnswer sets the "student_answer" field.
func (aec *AttemptEventCreate) SetStudentAnswer(i int) *AttemptEventCreate {
	aec.mutation.SetStudentAnswer(i)
	return aec
}

// SetCorrect sets the "correct" field.
func (aec *AttemptEventCreate) SetCorrect(b bool) *AttemptEventCreate {
	aec.mutation.SetCorrect(b)
	return aec
}

// SetTimeMs sets the "time_ms" field.
func (aec *AttemptEventCreate) SetTimeMs(i int) *AttemptEventCreate {
	aec.mutation.SetTimeMs(i)
	return aec
}

// SetSkillIds sets the "skill_ids" field.
func (aec *AttemptEventCreate) SetSkillIds(s []string) *AttemptEventCreate {
	aec.mutation.SetSkillIds(s)
	return aec
}

// SetUsedHelp sets the "used_help" field.
func (aec *AttemptEventCreate) SetUsedHelp(b bool) *AttemptEventCreate {
	aec.mutation.SetUsedHelp(b)
	return aec
}

// SetNillableUsedHelp sets the "used_help" field if the given value is not nil.
func (aec *AttemptEventCreate) SetNillableUsedHelp(b *bool) *AttemptEventCreate {
	if b != nil {
		aec.SetUsedHelp(*b)
	}
	return aec
}

// SetSource sets the "source" field.
func (aec *AttemptEventCreate) SetSource(s string) *AttemptEventCreate {
	aec.mutation.SetSource(s)
	return aec
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (aec *AttemptEventCreate) SetNillableSource(s *string) *AttemptEventCreate {
	if s != nil {
		aec.SetSource(*s)
	}
	return aec
}

// SetIsRetry sets the "is_retry" field.
func (aec *AttemptEventCreate) SetIsRetry(b bool) *AttemptEventCreate {
	aec.mutation.SetIsRetry(b)
	return aec
}

// SetNillableIsRetry sets the "is_retry" field if the given value is not nil.
func (aec *AttemptEventCreate) SetNillableIsRetry(b *bool) *AttemptEventCreate {
	if b != nil {
		aec.SetIsRetry(*b)
	}
	return aec
}

// SetEpoch sets the "epoch" field.
func (aec *AttemptEventCreate) SetEpoch(i int) *AttemptEventCreate {
	aec.mutation.SetEpoch(i)
	return aec
}

// SetNillableEpoch sets the "epoch" field if the given value is not nil.
func (aec *AttemptEventCreate) SetNillableEpoch(i *int) *AttemptEventCreate {
	if i != nil {
		aec.SetEpoch(*i)
	}
	return aec
}

// SetMasteryWeight sets the "mastery_weight" field.
func (aec *AttemptEventCreate) SetMasteryWeight(f float64) *AttemptEventCreate {
	aec.mutation.SetMasteryWeight(f)
	return aec
}

// SetOriginalSlotIndex sets the "original_slot_index" field.
func (aec *AttemptEventCreate) SetOriginalSlotIndex(i int) *AttemptEventCreate {
	aec.mutation.SetOriginalSlotIndex(i)
	return aec
}

// SetNillableOriginalSlotIndex sets the "original_slot_index" field if the given value is not nil.
func (aec *AttemptEventCreate) SetNillableOriginalSlotIndex(i *int) *AttemptEventCreate {
	if i != nil {
		aec.SetOriginalSlotIndex(*i)
	}
	return aec
}

// Mutation returns the AttemptEventMutation object of the builder.
func (aec *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return aec.mutation
}

// Save creates the AttemptEvent in the database.
func (aec *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	aec.defaults()
	return withHooks(ctx, aec.sqlSave, aec.mutation, aec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (aec *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := aec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aec *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := aec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aec *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := aec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (aec *AttemptEventCreate) defaults() {
	if _, ok := aec.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		aec.mutation.SetTimestamp(v)
	}
	if _, ok := aec.mutation.UsedHelp(); !ok {
		v := attemptevent.DefaultUsedHelp
		aec.mutation.SetUsedHelp(v)
	}
	if _, ok := aec.mutation.Source(); !ok {
		v := attemptevent.DefaultSource
		aec.mutation.SetSource(v)
	}
	if _, ok := aec.mutation.IsRetry(); !ok {
		v := attemptevent.DefaultIsRetry
		aec.mutation.SetIsRetry(v)
	}
	if _, ok := aec.mutation.Epoch(); !ok {
		v := attemptevent.DefaultEpoch
		aec.mutation.SetEpoch(v)
	}
	if _, ok := aec.mutation.OriginalSlotIndex(); !ok {
		v := attemptevent.DefaultOriginalSlotIndex
		aec.mutation.SetOriginalSlotIndex(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aec *AttemptEventCreate) check() error {
	if _, ok := aec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := aec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := aec.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AttemptEvent.session_id"`)}
	}
	if v, ok := aec.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if _, ok := aec.mutation.PartIndex(); !ok {
		return &ValidationError{Name: "part_index", err: errors.New(`ent: missing required field "AttemptEvent.part_index"`)}
	}
	if _, ok := aec.mutation.SlotIndex(); !ok {
		return &ValidationError{Name: "slot_index", err: errors.New(`ent: missing required field "AttemptEvent.slot_index"`)}
	}
	if _, ok := aec.mutation.Terms(); !ok {
		return &ValidationError{Name: "terms", err: errors.New(`ent: missing required field "AttemptEvent.terms"`)}
	}
	if _, ok := aec.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "AttemptEvent.answer"`)}
	}
	if _, ok := aec.mutation.StudentAnswer(); !ok {
		return &ValidationError{Name: "student_answer", err: errors.New(`ent: missing required field "AttemptEvent.student_answer"`)}
	}
	if _, ok := aec.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AttemptEvent.correct"`)}
	}
	if _, ok := aec.mutation.TimeMs(); !ok {
		return &ValidationError{Name: "time_ms", err: errors.New(`ent: missing required field "AttemptEvent.time_ms"`)}
	}
	if _, ok := aec.mutation.SkillIds(); !ok {
		return &ValidationError{Name: "skill_ids", err: errors.New(`ent: missing required field "AttemptEvent.skill_ids"`)}
	}
	if _, ok := aec.mutation.UsedHelp(); !ok {
		return &ValidationError{Name: "used_help", err: errors.New(`ent: missing required field "AttemptEvent.used_help"`)}
	}
	if _, ok := aec.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "AttemptEvent.source"`)}
	}
	if _, ok := aec.mutation.IsRetry(); !ok {
		return &ValidationError{Name: "is_retry", err: errors.New(`ent: missing required field "AttemptEvent.is_retry"`)}
	}
	if _, ok := aec.mutation.Epoch(); !ok {
		return &ValidationError{Name: "epoch", err: errors.New(`ent: missing required field "AttemptEvent.epoch"`)}
	}
	if _, ok := aec.mutation.MasteryWeight(); !ok {
		return &ValidationError{Name: "mastery_weight", err: errors.New(`ent: missing required field "AttemptEvent.mastery_weight"`)}
	}
	if _, ok := aec.mutation.OriginalSlotIndex(); !ok {
		return &ValidationError{Name: "original_slot_index", err: errors.New(`ent: missing required field "AttemptEvent.original_slot_index"`)}
	}
	return nil
}

func (aec *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
	if err := aec.check(); err != nil {
		return nil, err
	}
	_node, _spec := aec.createSpec()
	if err := sqlgraph.CreateNode(ctx, aec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	aec.mutation.id = &_node.ID
	aec.mutation.done = true
	return _node, nil
}

func (aec *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: aec.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	if value, ok := aec.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := aec.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := aec.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := aec.mutation.PartIndex(); ok {
		_spec.SetField(attemptevent.FieldPartIndex, field.TypeInt, value)
		_node.PartIndex = value
	}
	if value, ok := aec.mutation.SlotIndex(); ok {
		_spec.SetField(attemptevent.FieldSlotIndex, field.TypeInt, value)
		_node.SlotIndex = value
	}
	if value, ok := aec.mutation.Terms(); ok {
		_spec.SetField(attemptevent.FieldTerms, field.TypeJSON, value)
		_node.Terms = value
	}
	if value, ok := aec.mutation.Answer(); ok {
		_spec.SetField(attemptevent.FieldAnswer, field.TypeInt, value)
		_node.Answer = value
	}
	if value, ok := aec.mutation.StudentAnswer(); ok {
		_spec.SetField(attemptevent.FieldStudentAnswer, field.TypeInt, value)
		_node.StudentAnswer = value
	}
	if value, ok := aec.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := aec.mutation.TimeMs(); ok {
		_spec.SetField(attemptevent.FieldTimeMs, field.TypeInt, value)
		_node.TimeMs = value
	}
	if value, ok := aec.mutation.SkillIds(); ok {
		_spec.SetField(attemptevent.FieldSkillIds, field.TypeJSON, value)
		_node.SkillIds = value
	}
	if value, ok := aec.mutation.UsedHelp(); ok {
		_spec.SetField(attemptevent.FieldUsedHelp, field.TypeBool, value)
		_node.UsedHelp = value
	}
	if value, ok := aec.mutation.Source(); ok {
		_spec.SetField(attemptevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := aec.mutation.IsRetry(); ok {
		_spec.SetField(attemptevent.FieldIsRetry, field.TypeBool, value)
		_node.IsRetry = value
	}
	if value, ok := aec.mutation.Epoch(); ok {
		_spec.SetField(attemptevent.FieldEpoch, field.TypeInt, value)
		_node.Epoch = value
	}
	if value, ok := aec.mutation.MasteryWeight(); ok {
		_spec.SetField(attemptevent.FieldMasteryWeight, field.TypeFloat64, value)
		_node.MasteryWeight = value
	}
	if value, ok := aec.mutation.OriginalSlotIndex(); ok {
		_spec.SetField(attemptevent.FieldOriginalSlotIndex, field.TypeInt, value)
		_node.OriginalSlotIndex = value
	}
	return _node, _spec
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
}

// Save creates the AttemptEvent entities in the database.
func (aecb *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if aecb.err != nil {
		return nil, aecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(aecb.builders))
	nodes := make([]*AttemptEvent, len(aecb.builders))
	mutators := make([]Mutator, len(aecb.builders))
	for i := range aecb.builders {
		func(i int, root context.Context) {
			builder := aecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
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
					_, err = mutators[i+1].Mutate(root, aecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, aecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, aecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (aecb *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := aecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aecb *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := aecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aecb *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := aecb.Exec(ctx); err != nil {
		panic(err)
	}
}
