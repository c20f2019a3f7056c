// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hikaru-dev/soroban/ent/plansnapshot"
	"github.com/hikaru-dev/soroban/ent/predicate"
)

// PlanSnapshotDelete is the builder for deleting a PlanSnapshot entity.
type PlanSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *PlanSnapshotMutation
}

// Where appends a list predicates to the PlanSnapshotDelete builder.
func (psd *PlanSnapshotDelete) Where(ps ...predicate.PlanSnapshot) *PlanSnapshotDelete {
	psd.mutation.Where(ps...)
	return psd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (psd *PlanSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, psd.sqlExec, psd.mutation, psd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (psd *PlanSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := psd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (psd *PlanSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(plansnapshot.Table, sqlgraph.NewFieldSpec(plansnapshot.FieldID, field.TypeInt))
	if ps := psd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, psd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	psd.mutation.done = true
	return affected, err
}

// PlanSnapshotDeleteOne is the builder for deleting a single PlanSnapshot entity.
type PlanSnapshotDeleteOne struct {
	psd *PlanSnapshotDelete
}

// Where appends a list predicates to the PlanSnapshotDelete builder.
func (psdo *PlanSnapshotDeleteOne) Where(ps ...predicate.PlanSnapshot) *PlanSnapshotDeleteOne {
	psdo.psd.mutation.Where(ps...)
	return psdo
}

// Exec executes the deletion query.
func (psdo *PlanSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := psdo.psd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{plansnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (psdo *PlanSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := psdo.Exec(ctx); err != nil {
		panic(err)
	}
}
