// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hikaru-dev/soroban/ent/plansnapshot"
)

// PlanSnapshotCreate is the builder for creating a PlanSnapshot entity.
type PlanSnapshotCreate struct {
	config
	mutation *PlanSnapshotMutation
	hooks    []Hook
}

// SetPlanID sets the "plan_id" field.
func (psc *PlanSnapshotCreate) SetPlanID(s string) *PlanSnapshotCreate {
	psc.mutation.SetPlanID(s)
	return psc
}

// SetVersion sets the "version" field.
func (psc *PlanSnapshotCreate) SetVersion(i int64) *PlanSnapshotCreate {
	psc.mutation.SetVersion(i)
	return psc
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (psc *PlanSnapshotCreate) SetNillableVersion(i *int64) *PlanSnapshotCreate {
	if i != nil {
		psc.SetVersion(*i)
	}
	return psc
}

// SetUpdatedAt sets the "updated_at" field.
func (psc *PlanSnapshotCreate) SetUpdatedAt(t time.Time) *PlanSnapshotCreate {
	psc.mutation.SetUpdatedAt(t)
	return psc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (psc *PlanSnapshotCreate) SetNillableUpdatedAt(t *time.Time) *PlanSnapshotCreate {
	if t != nil {
		psc.SetUpdatedAt(*t)
	}
	return psc
}

// SetData sets the "data" field.
func (psc *PlanSnapshotCreate) SetData(m map[string]interface{}) *PlanSnapshotCreate {
	psc.mutation.SetData(m)
	return psc
}

// Mutation returns the PlanSnapshotMutation object of the builder.
func (psc *PlanSnapshotCreate) Mutation() *PlanSnapshotMutation {
	return psc.mutation
}

// Save creates the PlanSnapshot in the database.
func (psc *PlanSnapshotCreate) Save(ctx context.Context) (*PlanSnapshot, error) {
	psc.defaults()
	return withHooks(ctx, psc.sqlSave, psc.mutation, psc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (psc *PlanSnapshotCreate) SaveX(ctx context.Context) *PlanSnapshot {
	v, err := psc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (psc *PlanSnapshotCreate) Exec(ctx context.Context) error {
	_, err := psc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (psc *PlanSnapshotCreate) ExecX(ctx context.Context) {
	if err := psc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (psc *PlanSnapshotCreate) defaults() {
	if _, ok := psc.mutation.Version(); !ok {
		v := plansnapshot.DefaultVersion
		psc.mutation.SetVersion(v)
	}
	if _, ok := psc.mutation.UpdatedAt(); !ok {
		v := plansnapshot.DefaultUpdatedAt()
		psc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (psc *PlanSnapshotCreate) check() error {
	if _, ok := psc.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "PlanSnapshot.plan_id"`)}
	}
	if v, ok := psc.mutation.PlanID(); ok {
		if err := plansnapshot.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "PlanSnapshot.plan_id": %w`, err)}
		}
	}
	if _, ok := psc.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "PlanSnapshot.version"`)}
	}
	if _, ok := psc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PlanSnapshot.updated_at"`)}
	}
	if _, ok := psc.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "PlanSnapshot.data"`)}
	}
	return nil
}

func (psc *PlanSnapshotCreate) sqlSave(ctx context.Context) (*PlanSnapshot, error) {
	if err := psc.check(); err != nil {
		return nil, err
	}
	_node, _spec := psc.createSpec()
	if err := sqlgraph.CreateNode(ctx, psc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	psc.mutation.id = &_node.ID
	psc.mutation.done = true
	return _node, nil
}

func (psc *PlanSnapshotCreate) createSpec() (*PlanSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &PlanSnapshot{config: psc.config}
		_spec = sqlgraph.NewCreateSpec(plansnapshot.Table, sqlgraph.NewFieldSpec(plansnapshot.FieldID, field.TypeInt))
	)
	if value, ok := psc.mutation.PlanID(); ok {
		_spec.SetField(plansnapshot.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := psc.mutation.Version(); ok {
		_spec.SetField(plansnapshot.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := psc.mutation.UpdatedAt(); ok {
		_spec.SetField(plansnapshot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := psc.mutation.Data(); ok {
		_spec.SetField(plansnapshot.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	return _node, _spec
}

// PlanSnapshotCreateBulk is the builder for creating many PlanSnapshot entities in bulk.
type PlanSnapshotCreateBulk struct {
	config
	err      error
	builders []*PlanSnapshotCreate
}

// Save creates the PlanSnapshot entities in the database.
func (pscb *PlanSnapshotCreateBulk) Save(ctx context.Context) ([]*PlanSnapshot, error) {
	if pscb.err != nil {
		return nil, pscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pscb.builders))
	nodes := make([]*PlanSnapshot, len(pscb.builders))
	mutators := make([]Mutator, len(pscb.builders))
	for i := range pscb.builders {
		func(i int, root context.Context) {
			builder := pscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlanSnapshotMutation)
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
					_, err = mutators[i+1].Mutate(root, pscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, pscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pscb *PlanSnapshotCreateBulk) SaveX(ctx context.Context) []*PlanSnapshot {
	v, err := pscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pscb *PlanSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := pscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pscb *PlanSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := pscb.Exec(ctx); err != nil {
		panic(err)
	}
}
