// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hikaru-dev/soroban/ent/masteryevent"
	"github.com/hikaru-dev/soroban/ent/predicate"
)

// MasteryEventUpdate is the builder for updating MasteryEvent entities.
type MasteryEventUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryEventMutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (meu *MasteryEventUpdate) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdate {
	meu.mutation.Where(ps...)
	return meu
}

// SetSkillID sets the "skill_id" field.
func (meu *MasteryEventUpdate) SetSkillID(s string) *MasteryEventUpdate {
	meu.mutation.SetSkillID(s)
	return meu
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (meu *MasteryEventUpdate) SetNillableSkillID(s *string) *MasteryEventUpdate {
	if s != nil {
		meu.SetSkillID(*s)
	}
	return meu
}

// SetPKnown sets the "p_known" field.
func (meu *MasteryEventUpdate) SetPKnown(f float64) *MasteryEventUpdate {
	meu.mutation.ResetPKnown()
	meu.mutation.SetPKnown(f)
	return meu
}

// SetNillablePKnown sets the "p_known" field if the given value is not nil.
func (meu *MasteryEventUpdate) SetNillablePKnown(f *float64) *MasteryEventUpdate {
	if f != nil {
		meu.SetPKnown(*f)
	}
	return meu
}

// AddPKnown adds f to the "p_known" field.
func (meu *MasteryEventUpdate) AddPKnown(f float64) *MasteryEventUpdate {
	meu.mutation.AddPKnown(f)
	return meu
}

// SetConfidence sets the "confidence" field.
func (meu *MasteryEventUpdate) SetConfidence(f float64) *MasteryEventUpdate {
	meu.mutation.ResetConfidence()
	meu.mutation.SetConfidence(f)
	return meu
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (meu *MasteryEventUpdate) SetNillableConfidence(f *float64) *MasteryEventUpdate {
	if f != nil {
		meu.SetConfidence(*f)
	}
	return meu
}

// AddConfidence adds f to the "confidence" field.
func (meu *MasteryEventUpdate) AddConfidence(f float64) *MasteryEventUpdate {
	meu.mutation.AddConfidence(f)
	return meu
}

// SetOpportunities sets the "opportunities" field.
func (meu *MasteryEventUpdate) SetOpportunities(i int) *MasteryEventUpdate {
	meu.mutation.ResetOpportunities()
	meu.mutation.SetOpportunities(i)
	return meu
}

// SetNillableOpportunities sets the "opportunities" field if the given value is not nil.
func (meu *MasteryEventUpdate) SetNillableOpportunities(i *int) *MasteryEventUpdate {
	if i != nil {
		meu.SetOpportunities(*i)
	}
	return meu
}

// AddOpportunities adds i to the "opportunities" field.
func (meu *MasteryEventUpdate) AddOpportunities(i int) *MasteryEventUpdate {
	meu.mutation.AddOpportunities(i)
	return meu
}

// SetClassification sets the "classification" field.
func (meu *MasteryEventUpdate) SetClassification(s string) *MasteryEventUpdate {
	meu.mutation.SetClassification(s)
	return meu
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (meu *MasteryEventUpdate) SetNillableClassification(s *string) *MasteryEventUpdate {
	if s != nil {
		meu.SetClassification(*s)
	}
	return meu
}

// Mutation returns the MasteryEventMutation object of the builder.
func (meu *MasteryEventUpdate) Mutation() *MasteryEventMutation {
	return meu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (meu *MasteryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, meu.sqlSave, meu.mutation, meu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (meu *MasteryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := meu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (meu *MasteryEventUpdate) Exec(ctx context.Context) error {
	_, err := meu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (meu *MasteryEventUpdate) ExecX(ctx context.Context) {
	if err := meu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (meu *MasteryEventUpdate) check() error {
	if v, ok := meu.mutation.SkillID(); ok {
		if err := masteryevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.skill_id": %w`, err)}
		}
	}
	return nil
}

func (meu *MasteryEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := meu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	if ps := meu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := meu.mutation.SkillID(); ok {
		_spec.SetField(masteryevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := meu.mutation.PKnown(); ok {
		_spec.SetField(masteryevent.FieldPKnown, field.TypeFloat64, value)
	}
	if value, ok := meu.mutation.AddedPKnown(); ok {
		_spec.AddField(masteryevent.FieldPKnown, field.TypeFloat64, value)
	}
	if value, ok := meu.mutation.Confidence(); ok {
		_spec.SetField(masteryevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := meu.mutation.AddedConfidence(); ok {
		_spec.AddField(masteryevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := meu.mutation.Opportunities(); ok {
		_spec.SetField(masteryevent.FieldOpportunities, field.TypeInt, value)
	}
	if value, ok := meu.mutation.AddedOpportunities(); ok {
		_spec.AddField(masteryevent.FieldOpportunities, field.TypeInt, value)
	}
	if value, ok := meu.mutation.Classification(); ok {
		_spec.SetField(masteryevent.FieldClassification, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, meu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	meu.mutation.done = true
	return n, nil
}

// MasteryEventUpdateOne is the builder for updating a single MasteryEvent entity.
type MasteryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryEventMutation
}

// SetSkillID sets the "skill_id" field.
func (meuo *MasteryEventUpdateOne) SetSkillID(s string) *MasteryEventUpdateOne {
	meuo.mutation.SetSkillID(s)
	return meuo
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (meuo *MasteryEventUpdateOne) SetNillableSkillID(s *string) *MasteryEventUpdateOne {
	if s != nil {
		meuo.SetSkillID(*s)
	}
	return meuo
}

// SetPKnown sets the "p_known" field.
func (meuo *MasteryEventUpdateOne) SetPKnown(f float64) *MasteryEventUpdateOne {
	meuo.mutation.ResetPKnown()
	meuo.mutation.SetPKnown(f)
	return meuo
}

// SetNillablePKnown sets the "p_known" field if the given value is not nil.
func (meuo *MasteryEventUpdateOne) SetNillablePKnown(f *float64) *MasteryEventUpdateOne {
	if f != nil {
		meuo.SetPKnown(*f)
	}
	return meuo
}

// AddPKnown adds f to the "p_known" field.
func (meuo *MasteryEventUpdateOne) AddPKnown(f float64) *MasteryEventUpdateOne {
	meuo.mutation.AddPKnown(f)
	return meuo
}

// SetConfidence sets the "confidence" field.
func (meuo *MasteryEventUpdateOne) SetConfidence(f float64) *MasteryEventUpdateOne {
	meuo.mutation.ResetConfidence()
	meuo.mutation.SetConfidence(f)
	return meuo
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (meuo *MasteryEventUpdateOne) SetNillableConfidence(f *float64) *MasteryEventUpdateOne {
	if f != nil {
		meuo.SetConfidence(*f)
	}
	return meuo
}

// AddConfidence adds f to the "confidence" field.
func (meuo *MasteryEventUpdateOne) AddConfidence(f float64) *MasteryEventUpdateOne {
	meuo.mutation.AddConfidence(f)
	return meuo
}

// SetOpportunities sets the "opportunities" field.
func (meuo *MasteryEventUpdateOne) SetOpportunities(i int) *MasteryEventUpdateOne {
	meuo.mutation.ResetOpportunities()
	meuo.mutation.SetOpportunities(i)
	return meuo
}

// SetNillableOpportunities sets the "opportunities" field if the given value is not nil.
func (meuo *MasteryEventUpdateOne) SetNillableOpportunities(i *int) *MasteryEventUpdateOne {
	if i != nil {
		meuo.SetOpportunities(*i)
	}
	return meuo
}

// AddOpportunities adds i to the "opportunities" field.
func (meuo *MasteryEventUpdateOne) AddOpportunities(i int) *MasteryEventUpdateOne {
	meuo.mutation.AddOpportunities(i)
	return meuo
}

// SetClassification sets the "classification" field.
func (meuo *MasteryEventUpdateOne) SetClassification(s string) *MasteryEventUpdateOne {
	meuo.mutation.SetClassification(s)
	return meuo
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (meuo *MasteryEventUpdateOne) SetNillableClassification(s *string) *MasteryEventUpdateOne {
	if s != nil {
		meuo.SetClassification(*s)
	}
	return meuo
}

// Mutation returns the MasteryEventMutation object of the builder.
func (meuo *MasteryEventUpdateOne) Mutation() *MasteryEventMutation {
	return meuo.mutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (meuo *MasteryEventUpdateOne) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdateOne {
	meuo.mutation.Where(ps...)
	return meuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (meuo *MasteryEventUpdateOne) Select(field string, fields ...string) *MasteryEventUpdateOne {
	meuo.fields = append([]string{field}, fields...)
	return meuo
}

// Save executes the query and returns the updated MasteryEvent entity.
func (meuo *MasteryEventUpdateOne) Save(ctx context.Context) (*MasteryEvent, error) {
	return withHooks(ctx, meuo.sqlSave, meuo.mutation, meuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (meuo *MasteryEventUpdateOne) SaveX(ctx context.Context) *MasteryEvent {
	node, err := meuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (meuo *MasteryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := meuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (meuo *MasteryEventUpdateOne) ExecX(ctx context.Context) {
	if err := meuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (meuo *MasteryEventUpdateOne) check() error {
	if v, ok := meuo.mutation.SkillID(); ok {
		if err := masteryevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.skill_id": %w`, err)}
		}
	}
	return nil
}

func (meuo *MasteryEventUpdateOne) sqlSave(ctx context.Context) (_node *MasteryEvent, err error) {
	if err := meuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	id, ok := meuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := meuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryevent.FieldID)
		for _, f := range fields {
			if !masteryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := meuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := meuo.mutation.SkillID(); ok {
		_spec.SetField(masteryevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := meuo.mutation.PKnown(); ok {
		_spec.SetField(masteryevent.FieldPKnown, field.TypeFloat64, value)
	}
	if value, ok := meuo.mutation.AddedPKnown(); ok {
		_spec.AddField(masteryevent.FieldPKnown, field.TypeFloat64, value)
	}
	if value, ok := meuo.mutation.Confidence(); ok {
		_spec.SetField(masteryevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := meuo.mutation.AddedConfidence(); ok {
		_spec.AddField(masteryevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := meuo.mutation.Opportunities(); ok {
		_spec.SetField(masteryevent.FieldOpportunities, field.TypeInt, value)
	}
	if value, ok := meuo.mutation.AddedOpportunities(); ok {
		_spec.AddField(masteryevent.FieldOpportunities, field.TypeInt, value)
	}
	if value, ok := meuo.mutation.Classification(); ok {
		_spec.SetField(masteryevent.FieldClassification, field.TypeString, value)
	}
	_node = &MasteryEvent{config: meuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, meuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	meuo.mutation.done = true
	return _node, nil
}
