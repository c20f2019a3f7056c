// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hikaru-dev/soroban/ent/plansnapshot"
	"github.com/hikaru-dev/soroban/ent/predicate"
)

// PlanSnapshotUpdate is the builder for updating PlanSnapshot entities.
type PlanSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *PlanSnapshotMutation
}

// Where appends a list predicates to the PlanSnapshotUpdate builder.
func (psu *PlanSnapshotUpdate) Where(ps ...predicate.PlanSnapshot) *PlanSnapshotUpdate {
	psu.mutation.Where(ps...)
	return psu
}

// SetPlanID sets the "plan_id" field.
func (psu *PlanSnapshotUpdate) SetPlanID(s string) *PlanSnapshotUpdate {
	psu.mutation.SetPlanID(s)
	return psu
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (psu *PlanSnapshotUpdate) SetNillablePlanID(s *string) *PlanSnapshotUpdate {
	if s != nil {
		psu.SetPlanID(*s)
	}
	return psu
}

// SetVersion sets the "version" field.
func (psu *PlanSnapshotUpdate) SetVersion(i int64) *PlanSnapshotUpdate {
	psu.mutation.ResetVersion()
	psu.mutation.SetVersion(i)
	return psu
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (psu *PlanSnapshotUpdate) SetNillableVersion(i *int64) *PlanSnapshotUpdate {
	if i != nil {
		psu.SetVersion(*i)
	}
	return psu
}

// AddVersion adds i to the "version" field.
func (psu *PlanSnapshotUpdate) AddVersion(i int64) *PlanSnapshotUpdate {
	psu.mutation.AddVersion(i)
	return psu
}

// SetUpdatedAt sets the "updated_at" field.
func (psu *PlanSnapshotUpdate) SetUpdatedAt(t time.Time) *PlanSnapshotUpdate {
	psu.mutation.SetUpdatedAt(t)
	return psu
}

// SetData sets the "data" field.
func (psu *PlanSnapshotUpdate) SetData(m map[string]interface{}) *PlanSnapshotUpdate {
	psu.mutation.SetData(m)
	return psu
}

// Mutation returns the PlanSnapshotMutation object of the builder.
func (psu *PlanSnapshotUpdate) Mutation() *PlanSnapshotMutation {
	return psu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (psu *PlanSnapshotUpdate) Save(ctx context.Context) (int, error) {
	psu.defaults()
	return withHooks(ctx, psu.sqlSave, psu.mutation, psu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (psu *PlanSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := psu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (psu *PlanSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := psu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (psu *PlanSnapshotUpdate) ExecX(ctx context.Context) {
	if err := psu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (psu *PlanSnapshotUpdate) defaults() {
	if _, ok := psu.mutation.UpdatedAt(); !ok {
		v := plansnapshot.UpdateDefaultUpdatedAt()
		psu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (psu *PlanSnapshotUpdate) check() error {
	if v, ok := psu.mutation.PlanID(); ok {
		if err := plansnapshot.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "PlanSnapshot.plan_id": %w`, err)}
		}
	}
	return nil
}

func (psu *PlanSnapshotUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := psu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(plansnapshot.Table, plansnapshot.Columns, sqlgraph.NewFieldSpec(plansnapshot.FieldID, field.TypeInt))
	if ps := psu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := psu.mutation.PlanID(); ok {
		_spec.SetField(plansnapshot.FieldPlanID, field.TypeString, value)
	}
	if value, ok := psu.mutation.Version(); ok {
		_spec.SetField(plansnapshot.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := psu.mutation.AddedVersion(); ok {
		_spec.AddField(plansnapshot.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := psu.mutation.UpdatedAt(); ok {
		_spec.SetField(plansnapshot.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := psu.mutation.Data(); ok {
		_spec.SetField(plansnapshot.FieldData, field.TypeJSON, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, psu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plansnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	psu.mutation.done = true
	return n, nil
}

// PlanSnapshotUpdateOne is the builder for updating a single PlanSnapshot entity.
type PlanSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanSnapshotMutation
}

// SetPlanID sets the "plan_id" field.
func (psuo *PlanSnapshotUpdateOne) SetPlanID(s string) *PlanSnapshotUpdateOne {
	psuo.mutation.SetPlanID(s)
	return psuo
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (psuo *PlanSnapshotUpdateOne) SetNillablePlanID(s *string) *PlanSnapshotUpdateOne {
	if s != nil {
		psuo.SetPlanID(*s)
	}
	return psuo
}

// SetVersion sets the "version" field.
func (psuo *PlanSnapshotUpdateOne) SetVersion(i int64) *PlanSnapshotUpdateOne {
	psuo.mutation.ResetVersion()
	psuo.mutation.SetVersion(i)
	return psuo
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (psuo *PlanSnapshotUpdateOne) SetNillableVersion(i *int64) *PlanSnapshotUpdateOne {
	if i != nil {
		psuo.SetVersion(*i)
	}
	return psuo
}

// AddVersion adds i to the "version" field.
func (psuo *PlanSnapshotUpdateOne) AddVersion(i int64) *PlanSnapshotUpdateOne {
	psuo.mutation.AddVersion(i)
	return psuo
}

// SetUpdatedAt sets the "updated_at" field.
func (psuo *PlanSnapshotUpdateOne) SetUpdatedAt(t time.Time) *PlanSnapshotUpdateOne {
	psuo.mutation.SetUpdatedAt(t)
	return psuo
}

// SetData sets the "data" field.
func (psuo *PlanSnapshotUpdateOne) SetData(m map[string]interface{}) *PlanSnapshotUpdateOne {
	psuo.mutation.SetData(m)
	return psuo
}

// Mutation returns the PlanSnapshotMutation object of the builder.
func (psuo *PlanSnapshotUpdateOne) Mutation() *PlanSnapshotMutation {
	return psuo.mutation
}

// Where appends a list predicates to the PlanSnapshotUpdate builder.
func (psuo *PlanSnapshotUpdateOne) Where(ps ...predicate.PlanSnapshot) *PlanSnapshotUpdateOne {
	psuo.mutation.Where(ps...)
	return psuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (psuo *PlanSnapshotUpdateOne) Select(field string, fields ...string) *PlanSnapshotUpdateOne {
	psuo.fields = append([]string{field}, fields...)
	return psuo
}

// Save executes the query and returns the updated PlanSnapshot entity.
func (psuo *PlanSnapshotUpdateOne) Save(ctx context.Context) (*PlanSnapshot, error) {
	psuo.defaults()
	return withHooks(ctx, psuo.sqlSave, psuo.mutation, psuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (psuo *PlanSnapshotUpdateOne) SaveX(ctx context.Context) *PlanSnapshot {
	node, err := psuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (psuo *PlanSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := psuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (psuo *PlanSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := psuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (psuo *PlanSnapshotUpdateOne) defaults() {
	if _, ok := psuo.mutation.UpdatedAt(); !ok {
		v := plansnapshot.UpdateDefaultUpdatedAt()
		psuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (psuo *PlanSnapshotUpdateOne) check() error {
	if v, ok := psuo.mutation.PlanID(); ok {
		if err := plansnapshot.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "PlanSnapshot.plan_id": %w`, err)}
		}
	}
	return nil
}

func (psuo *PlanSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *PlanSnapshot, err error) {
	if err := psuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(plansnapshot.Table, plansnapshot.Columns, sqlgraph.NewFieldSpec(plansnapshot.FieldID, field.TypeInt))
	id, ok := psuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlanSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := psuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, plansnapshot.FieldID)
		for _, f := range fields {
			if !plansnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != plansnapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := psuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := psuo.mutation.PlanID(); ok {
		_spec.SetField(plansnapshot.FieldPlanID, field.TypeString, value)
	}
	if value, ok := psuo.mutation.Version(); ok {
		_spec.SetField(plansnapshot.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := psuo.mutation.AddedVersion(); ok {
		_spec.AddField(plansnapshot.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := psuo.mutation.UpdatedAt(); ok {
		_spec.SetField(plansnapshot.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := psuo.mutation.Data(); ok {
		_spec.SetField(plansnapshot.FieldData, field.TypeJSON, value)
	}
	_node = &PlanSnapshot{config: psuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, psuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{plansnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	psuo.mutation.done = true
	return _node, nil
}
