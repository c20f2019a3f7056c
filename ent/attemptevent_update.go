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
	"github.com/hikaru-dev/soroban/ent/attemptevent"
	"github.com/hikaru-dev/soroban/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (aeu *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	aeu.mutation.Where(ps...)
	return aeu
}

// SetSessionID sets the "session_id" field.
func (aeu *AttemptEventUpdate) SetSessionID(s string) *AttemptEventUpdate {
	aeu.mutation.SetSessionID(s)
	return aeu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableSessionID(s *string) *AttemptEventUpdate {
	if s != nil {
		aeu.SetSessionID(*s)
	}
	return aeu
}

// SetPartIndex sets the "part_index" field.
func (aeu *AttemptEventUpdate) SetPartIndex(i int) *AttemptEventUpdate {
	aeu.mutation.ResetPartIndex()
	aeu.mutation.SetPartIndex(i)
	return aeu
}

// SetNillablePartIndex sets the "part_index" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillablePartIndex(i *int) *AttemptEventUpdate {
	if i != nil {
		aeu.SetPartIndex(*i)
	}
	return aeu
}

// AddPartIndex adds i to the "part_index" field.
func (aeu *AttemptEventUpdate) AddPartIndex(i int) *AttemptEventUpdate {
	aeu.mutation.AddPartIndex(i)
	return aeu
}

// SetSlotIndex sets the "slot_index" field.
func (aeu *AttemptEventUpdate) SetSlotIndex(i int) *AttemptEventUpdate {
	aeu.mutation.ResetSlotIndex()
	aeu.mutation.SetSlotIndex(i)
	return aeu
}

// SetNillableSlotIndex sets the "slot_index" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableSlotIndex(i *int) *AttemptEventUpdate {
	if i != nil {
		aeu.SetSlotIndex(*i)
	}
	return aeu
}

// AddSlotIndex adds i to the "slot_index" field.
func (aeu *AttemptEventUpdate) AddSlotIndex(i int) *AttemptEventUpdate {
	aeu.mutation.AddSlotIndex(i)
	return aeu
}

// SetTerms sets the "terms" field.
func (aeu *AttemptEventUpdate) SetTerms(i []int) *AttemptEventUpdate {
	aeu.mutation.SetTerms(i)
	return aeu
}

// AppendTerms appends i to the "terms" field.
func (aeu *AttemptEventUpdate) AppendTerms(i []int) *AttemptEventUpdate {
	aeu.mutation.AppendTerms(i)
	return aeu
}

// SetAnswer sets the "answer" field.
func (aeu *AttemptEventUpdate) SetAnswer(i int) *AttemptEventUpdate {
	aeu.mutation.ResetAnswer()
	aeu.mutation.SetAnswer(i)
	return aeu
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableAnswer(i *int) *AttemptEventUpdate {
	if i != nil {
		aeu.SetAnswer(*i)
	}
	return aeu
}

// AddAnswer adds i to the "answer" field.
func (aeu *AttemptEventUpdate) AddAnswer(i int) *AttemptEventUpdate {
	aeu.mutation.AddAnswer(i)
	return aeu
}

// SetStudentAnswer sets the "student_answer" field.
func (aeu *AttemptEventUpdate) SetStudentAnswer(i int) *AttemptEventUpdate {
	aeu.mutation.ResetStudentAnswer()
	aeu.mutation.SetStudentAnswer(i)
	return aeu
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableStudentAnswer(i *int) *AttemptEventUpdate {
	if i != nil {
		aeu.SetStudentAnswer(*i)
	}
	return aeu
}

// AddStudentAnswer adds i to the "student_answer" field.
func (aeu *AttemptEventUpdate) AddStudentAnswer(i int) *AttemptEventUpdate {
	aeu.mutation.AddStudentAnswer(i)
	return aeu
}

// SetCorrect sets the "correct" field.
func (aeu *AttemptEventUpdate) SetCorrect(b bool) *AttemptEventUpdate {
	aeu.mutation.SetCorrect(b)
	return aeu
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableCorrect(b *bool) *AttemptEventUpdate {
	if b != nil {
		aeu.SetCorrect(*b)
	}
	return aeu
}

// SetTimeMs sets the "time_ms" field.
func (aeu *AttemptEventUpdate) SetTimeMs(i int) *AttemptEventUpdate {
	aeu.mutation.ResetTimeMs()
	aeu.mutation.SetTimeMs(i)
	return aeu
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableTimeMs(i *int) *AttemptEventUpdate {
	if i != nil {
		aeu.SetTimeMs(*i)
	}
	return aeu
}

// AddTimeMs adds i to the "time_ms" field.
func (aeu *AttemptEventUpdate) AddTimeMs(i int) *AttemptEventUpdate {
	aeu.mutation.AddTimeMs(i)
	return aeu
}

// SetSkillIds sets the "skill_ids" field.
func (aeu *AttemptEventUpdate) SetSkillIds(s []string) *AttemptEventUpdate {
	aeu.mutation.SetSkillIds(s)
	return aeu
}

// AppendSkillIds appends s to the "skill_ids" field.
func (aeu *AttemptEventUpdate) AppendSkillIds(s []string) *AttemptEventUpdate {
	aeu.mutation.AppendSkillIds(s)
	return aeu
}

// SetUsedHelp sets the "used_help" field.
func (aeu *AttemptEventUpdate) SetUsedHelp(b bool) *AttemptEventUpdate {
	aeu.mutation.SetUsedHelp(b)
	return aeu
}

// SetNillableUsedHelp sets the "used_help" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableUsedHelp(b *bool) *AttemptEventUpdate {
	if b != nil {
		aeu.SetUsedHelp(*b)
	}
	return aeu
}

// SetSource sets the "source" field.
func (aeu *AttemptEventUpdate) SetSource(s string) *AttemptEventUpdate {
	aeu.mutation.SetSource(s)
	return aeu
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableSource(s *string) *AttemptEventUpdate {
	if s != nil {
		aeu.SetSource(*s)
	}
	return aeu
}

// SetIsRetry sets the "is_retry" field.
func (aeu *AttemptEventUpdate) SetIsRetry(b bool) *AttemptEventUpdate {
	aeu.mutation.SetIsRetry(b)
	return aeu
}

// SetNillableIsRetry sets the "is_retry" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableIsRetry(b *bool) *AttemptEventUpdate {
	if b != nil {
		aeu.SetIsRetry(*b)
	}
	return aeu
}

// SetEpoch sets the "epoch" field.
func (aeu *AttemptEventUpdate) SetEpoch(i int) *AttemptEventUpdate {
	aeu.mutation.ResetEpoch()
	aeu.mutation.SetEpoch(i)
	return aeu
}

// SetNillableEpoch sets the "epoch" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableEpoch(i *int) *AttemptEventUpdate {
	if i != nil {
		aeu.SetEpoch(*i)
	}
	return aeu
}

// AddEpoch adds i to the "epoch" field.
func (aeu *AttemptEventUpdate) AddEpoch(i int) *AttemptEventUpdate {
	aeu.mutation.AddEpoch(i)
	return aeu
}

// SetMasteryWeight sets the "mastery_weight" field.
func (aeu *AttemptEventUpdate) SetMasteryWeight(f float64) *AttemptEventUpdate {
	aeu.mutation.ResetMasteryWeight()
	aeu.mutation.SetMasteryWeight(f)
	return aeu
}

// SetNillableMasteryWeight sets the "mastery_weight" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableMasteryWeight(f *float64) *AttemptEventUpdate {
	if f != nil {
		aeu.SetMasteryWeight(*f)
	}
	return aeu
}

// AddMasteryWeight adds f to the "mastery_weight" field.
func (aeu *AttemptEventUpdate) AddMasteryWeight(f float64) *AttemptEventUpdate {
	aeu.mutation.AddMasteryWeight(f)
	return aeu
}

// SetOriginalSlotIndex sets the "original_slot_index" field.
func (aeu *AttemptEventUpdate) SetOriginalSlotIndex(i int) *AttemptEventUpdate {
	aeu.mutation.ResetOriginalSlotIndex()
	aeu.mutation.SetOriginalSlotIndex(i)
	return aeu
}

// SetNillableOriginalSlotIndex sets the "original_slot_index" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableOriginalSlotIndex(i *int) *AttemptEventUpdate {
	if i != nil {
		aeu.SetOriginalSlotIndex(*i)
	}
	return aeu
}

// AddOriginalSlotIndex adds i to the "original_slot_index" field.
func (aeu *AttemptEventUpdate) AddOriginalSlotIndex(i int) *AttemptEventUpdate {
	aeu.mutation.AddOriginalSlotIndex(i)
	return aeu
}

// Mutation returns the AttemptEventMutation object of the builder.
func (aeu *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return aeu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aeu *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, aeu.sqlSave, aeu.mutation, aeu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeu *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := aeu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aeu *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := aeu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeu *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := aeu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeu *AttemptEventUpdate) check() error {
	if v, ok := aeu.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (aeu *AttemptEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := aeu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := aeu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeu.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.PartIndex(); ok {
		_spec.SetField(attemptevent.FieldPartIndex, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedPartIndex(); ok {
		_spec.AddField(attemptevent.FieldPartIndex, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.SlotIndex(); ok {
		_spec.SetField(attemptevent.FieldSlotIndex, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedSlotIndex(); ok {
		_spec.AddField(attemptevent.FieldSlotIndex, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.Terms(); ok {
		_spec.SetField(attemptevent.FieldTerms, field.TypeJSON, value)
	}
	if value, ok := aeu.mutation.AppendedTerms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldTerms, value)
		})
	}
	if value, ok := aeu.mutation.Answer(); ok {
		_spec.SetField(attemptevent.FieldAnswer, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedAnswer(); ok {
		_spec.AddField(attemptevent.FieldAnswer, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.StudentAnswer(); ok {
		_spec.SetField(attemptevent.FieldStudentAnswer, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedStudentAnswer(); ok {
		_spec.AddField(attemptevent.FieldStudentAnswer, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := aeu.mutation.TimeMs(); ok {
		_spec.SetField(attemptevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedTimeMs(); ok {
		_spec.AddField(attemptevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.SkillIds(); ok {
		_spec.SetField(attemptevent.FieldSkillIds, field.TypeJSON, value)
	}
	if value, ok := aeu.mutation.AppendedSkillIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldSkillIds, value)
		})
	}
	if value, ok := aeu.mutation.UsedHelp(); ok {
		_spec.SetField(attemptevent.FieldUsedHelp, field.TypeBool, value)
	}
	if value, ok := aeu.mutation.Source(); ok {
		_spec.SetField(attemptevent.FieldSource, field.TypeString, value)
	}
	if value, ok := aeu.mutation.IsRetry(); ok {
		_spec.SetField(attemptevent.FieldIsRetry, field.TypeBool, value)
	}
	if value, ok := aeu.mutation.Epoch(); ok {
		_spec.SetField(attemptevent.FieldEpoch, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedEpoch(); ok {
		_spec.AddField(attemptevent.FieldEpoch, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.MasteryWeight(); ok {
		_spec.SetField(attemptevent.FieldMasteryWeight, field.TypeFloat64, value)
	}
	if value, ok := aeu.mutation.AddedMasteryWeight(); ok {
		_spec.AddField(attemptevent.FieldMasteryWeight, field.TypeFloat64, value)
	}
	if value, ok := aeu.mutation.OriginalSlotIndex(); ok {
		_spec.SetField(attemptevent.FieldOriginalSlotIndex, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedOriginalSlotIndex(); ok {
		_spec.AddField(attemptevent.FieldOriginalSlotIndex, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aeu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aeu.mutation.done = true
	return n, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetSessionID sets the "session_id" field.
func (aeuo *AttemptEventUpdateOne) SetSessionID(s string) *AttemptEventUpdateOne {
	aeuo.mutation.SetSessionID(s)
	return aeuo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableSessionID(s *string) *AttemptEventUpdateOne {
	if s != nil {
		aeuo.SetSessionID(*s)
	}
	return aeuo
}

// SetPartIndex sets the "part_index" field.
func (aeuo *AttemptEventUpdateOne) SetPartIndex(i int) *AttemptEventUpdateOne {
	aeuo.mutation.ResetPartIndex()
	aeuo.mutation.SetPartIndex(i)
	return aeuo
}

// SetNillablePartIndex sets the "part_index" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillablePartIndex(i *int) *AttemptEventUpdateOne {
	if i != nil {
		aeuo.SetPartIndex(*i)
	}
	return aeuo
}

// AddPartIndex adds i to the "part_index" field.
func (aeuo *AttemptEventUpdateOne) AddPartIndex(i int) *AttemptEventUpdateOne {
	aeuo.mutation.AddPartIndex(i)
	return aeuo
}

// SetSlotIndex sets the "slot_index" field.
func (aeuo *AttemptEventUpdateOne) SetSlotIndex(i int) *AttemptEventUpdateOne {
	aeuo.mutation.ResetSlotIndex()
	aeuo.mutation.SetSlotIndex(i)
	return aeuo
}

// SetNillableSlotIndex sets the "slot_index" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableSlotIndex(i *int) *AttemptEventUpdateOne {
	if i != nil {
		aeuo.SetSlotIndex(*i)
	}
	return aeuo
}

// AddSlotIndex adds i to the "slot_index" field.
func (aeuo *AttemptEventUpdateOne) AddSlotIndex(i int) *AttemptEventUpdateOne {
	aeuo.mutation.AddSlotIndex(i)
	return aeuo
}

// SetTerms sets the "terms" field.
func (aeuo *AttemptEventUpdateOne) SetTerms(i []int) *AttemptEventUpdateOne {
	aeuo.mutation.SetTerms(i)
	return aeuo
}

// AppendTerms appends i to the "terms" field.
func (aeuo *AttemptEventUpdateOne) AppendTerms(i []int) *AttemptEventUpdateOne {
	aeuo.mutation.AppendTerms(i)
	return aeuo
}

// SetAnswer sets the "answer" field.
func (aeuo *AttemptEventUpdateOne) SetAnswer(i int) *AttemptEventUpdateOne {
	aeuo.mutation.ResetAnswer()
	aeuo.mutation.SetAnswer(i)
	return aeuo
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableAnswer(i *int) *AttemptEventUpdateOne {
	if i != nil {
		aeuo.SetAnswer(*i)
	}
	return aeuo
}

// AddAnswer adds i to the "answer" field.
func (aeuo *AttemptEventUpdateOne) AddAnswer(i int) *AttemptEventUpdateOne {
	aeuo.mutation.AddAnswer(i)
	return aeuo
}

// SetStudentAnswer sets the "student_answer" field.
func (aeuo *AttemptEventUpdateOne) SetStudentAnswer(i int) *AttemptEventUpdateOne {
	aeuo.mutation.ResetStudentAnswer()
	aeuo.mutation.SetStudentAnswer(i)
	return aeuo
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableStudentAnswer(i *int) *AttemptEventUpdateOne {
	if i != nil {
		aeuo.SetStudentAnswer(*i)
	}
	return aeuo
}

// AddStudentAnswer adds i to the "student_answer" field.
func (aeuo *AttemptEventUpdateOne) AddStudentAnswer(i int) *AttemptEventUpdateOne {
	aeuo.mutation.AddStudentAnswer(i)
	return aeuo
}

// SetCorrect sets the "correct" field.
func (aeuo *AttemptEventUpdateOne) SetCorrect(b bool) *AttemptEventUpdateOne {
	aeuo.mutation.SetCorrect(b)
	return aeuo
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableCorrect(b *bool) *AttemptEventUpdateOne {
	if b != nil {
		aeuo.SetCorrect(*b)
	}
	return aeuo
}

// SetTimeMs sets the "time_ms" field.
func (aeuo *AttemptEventUpdateOne) SetTimeMs(i int) *AttemptEventUpdateOne {
	aeuo.mutation.ResetTimeMs()
	aeuo.mutation.SetTimeMs(i)
	return aeuo
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableTimeMs(i *int) *AttemptEventUpdateOne {
	if i != nil {
		aeuo.SetTimeMs(*i)
	}
	return aeuo
}

// AddTimeMs adds i to the "time_ms" field.
func (aeuo *AttemptEventUpdateOne) AddTimeMs(i int) *AttemptEventUpdateOne {
	aeuo.mutation.AddTimeMs(i)
	return aeuo
}

// SetSkillIds sets the "skill_ids" field.
func (aeuo *AttemptEventUpdateOne) SetSkillIds(s []string) *AttemptEventUpdateOne {
	aeuo.mutation.SetSkillIds(s)
	return aeuo
}

// AppendSkillIds appends s to the "skill_ids" field.
func (aeuo *AttemptEventUpdateOne) AppendSkillIds(s []string) *AttemptEventUpdateOne {
	aeuo.mutation.AppendSkillIds(s)
	return aeuo
}

// SetUsedHelp sets the "used_help" field.
func (aeuo *AttemptEventUpdateOne) SetUsedHelp(b bool) *AttemptEventUpdateOne {
	aeuo.mutation.SetUsedHelp(b)
	return aeuo
}

// SetNillableUsedHelp sets the "used_help" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableUsedHelp(b *bool) *AttemptEventUpdateOne {
	if b != nil {
		aeuo.SetUsedHelp(*b)
	}
	return aeuo
}

// SetSource sets the "source" field.
func (aeuo *AttemptEventUpdateOne) SetSource(s string) *AttemptEventUpdateOne {
	aeuo.mutation.SetSource(s)
	return aeuo
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableSource(s *string) *AttemptEventUpdateOne {
	if s != nil {
		aeuo.SetSource(*s)
	}
	return aeuo
}

// SetIsRetry sets the "is_retry" field.
func (aeuo *AttemptEventUpdateOne) SetIsRetry(b bool) *AttemptEventUpdateOne {
	aeuo.mutation.SetIsRetry(b)
	return aeuo
}

// SetNillableIsRetry sets the "is_retry" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableIsRetry(b *bool) *AttemptEventUpdateOne {
	if b != nil {
		aeuo.SetIsRetry(*b)
	}
	return aeuo
}

// SetEpoch sets the "epoch" field.
func (aeuo *AttemptEventUpdateOne) SetEpoch(i int) *AttemptEventUpdateOne {
	aeuo.mutation.ResetEpoch()
	aeuo.mutation.SetEpoch(i)
	return aeuo
}

// SetNillableEpoch sets the "epoch" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableEpoch(i *int) *AttemptEventUpdateOne {
	if i != nil {
		aeuo.SetEpoch(*i)
	}
	return aeuo
}

// AddEpoch adds i to the "epoch" field.
func (aeuo *AttemptEventUpdateOne) AddEpoch(i int) *AttemptEventUpdateOne {
	aeuo.mutation.AddEpoch(i)
	return aeuo
}

// SetMasteryWeight sets the "mastery_weight" field.
func (aeuo *AttemptEventUpdateOne) SetMasteryWeight(f float64) *AttemptEventUpdateOne {
	aeuo.mutation.ResetMasteryWeight()
	aeuo.mutation.SetMasteryWeight(f)
	return aeuo
}

// SetNillableMasteryWeight sets the "mastery_weight" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableMasteryWeight(f *float64) *AttemptEventUpdateOne {
	if f != nil {
		aeuo.SetMasteryWeight(*f)
	}
	return aeuo
}

// AddMasteryWeight adds f to the "mastery_weight" field.
func (aeuo *AttemptEventUpdateOne) AddMasteryWeight(f float64) *AttemptEventUpdateOne {
	aeuo.mutation.AddMasteryWeight(f)
	return aeuo
}

// SetOriginalSlotIndex sets the "original_slot_index" field.
func (aeuo *AttemptEventUpdateOne) SetOriginalSlotIndex(i int) *AttemptEventUpdateOne {
	aeuo.mutation.ResetOriginalSlotIndex()
	aeuo.mutation.SetOriginalSlotIndex(i)
	return aeuo
}

// SetNillableOriginalSlotIndex sets the "original_slot_index" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableOriginalSlotIndex(i *int) *AttemptEventUpdateOne {
	if i != nil {
		aeuo.SetOriginalSlotIndex(*i)
	}
	return aeuo
}

// AddOriginalSlotIndex adds i to the "original_slot_index" field.
func (aeuo *AttemptEventUpdateOne) AddOriginalSlotIndex(i int) *AttemptEventUpdateOne {
	aeuo.mutation.AddOriginalSlotIndex(i)
	return aeuo
}

// Mutation returns the AttemptEventMutation object of the builder.
func (aeuo *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return aeuo.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (aeuo *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	aeuo.mutation.Where(ps...)
	return aeuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aeuo *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	aeuo.fields = append([]string{field}, fields...)
	return aeuo
}

// Save executes the query and returns the updated AttemptEvent entity.
func (aeuo *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, aeuo.sqlSave, aeuo.mutation, aeuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeuo *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := aeuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aeuo *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := aeuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeuo *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := aeuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeuo *AttemptEventUpdateOne) check() error {
	if v, ok := aeuo.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (aeuo *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := aeuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := aeuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aeuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aeuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeuo.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.PartIndex(); ok {
		_spec.SetField(attemptevent.FieldPartIndex, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedPartIndex(); ok {
		_spec.AddField(attemptevent.FieldPartIndex, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.SlotIndex(); ok {
		_spec.SetField(attemptevent.FieldSlotIndex, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedSlotIndex(); ok {
		_spec.AddField(attemptevent.FieldSlotIndex, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.Terms(); ok {
		_spec.SetField(attemptevent.FieldTerms, field.TypeJSON, value)
	}
	if value, ok := aeuo.mutation.AppendedTerms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldTerms, value)
		})
	}
	if value, ok := aeuo.mutation.Answer(); ok {
		_spec.SetField(attemptevent.FieldAnswer, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedAnswer(); ok {
		_spec.AddField(attemptevent.FieldAnswer, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.StudentAnswer(); ok {
		_spec.SetField(attemptevent.FieldStudentAnswer, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedStudentAnswer(); ok {
		_spec.AddField(attemptevent.FieldStudentAnswer, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := aeuo.mutation.TimeMs(); ok {
		_spec.SetField(attemptevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedTimeMs(); ok {
		_spec.AddField(attemptevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.SkillIds(); ok {
		_spec.SetField(attemptevent.FieldSkillIds, field.TypeJSON, value)
	}
	if value, ok := aeuo.mutation.AppendedSkillIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldSkillIds, value)
		})
	}
	if value, ok := aeuo.mutation.UsedHelp(); ok {
		_spec.SetField(attemptevent.FieldUsedHelp, field.TypeBool, value)
	}
	if value, ok := aeuo.mutation.Source(); ok {
		_spec.SetField(attemptevent.FieldSource, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.IsRetry(); ok {
		_spec.SetField(attemptevent.FieldIsRetry, field.TypeBool, value)
	}
	if value, ok := aeuo.mutation.Epoch(); ok {
		_spec.SetField(attemptevent.FieldEpoch, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedEpoch(); ok {
		_spec.AddField(attemptevent.FieldEpoch, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.MasteryWeight(); ok {
		_spec.SetField(attemptevent.FieldMasteryWeight, field.TypeFloat64, value)
	}
	if value, ok := aeuo.mutation.AddedMasteryWeight(); ok {
		_spec.AddField(attemptevent.FieldMasteryWeight, field.TypeFloat64, value)
	}
	if value, ok := aeuo.mutation.OriginalSlotIndex(); ok {
		_spec.SetField(attemptevent.FieldOriginalSlotIndex, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedOriginalSlotIndex(); ok {
		_spec.AddField(attemptevent.FieldOriginalSlotIndex, field.TypeInt, value)
	}
	_node = &AttemptEvent{config: aeuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aeuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aeuo.mutation.done = true
	return _node, nil
}
