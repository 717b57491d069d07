// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ddevcap/watchsync/ent/guidpointer"
	"github.com/ddevcap/watchsync/ent/predicate"
)

// GuidPointerDelete is the builder for deleting a GuidPointer entity.
type GuidPointerDelete struct {
	config
	hooks    []Hook
	mutation *GuidPointerMutation
}

// Where appends a list predicates to the GuidPointerDelete builder.
func (_d *GuidPointerDelete) Where(ps ...predicate.GuidPointer) *GuidPointerDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GuidPointerDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GuidPointerDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GuidPointerDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(guidpointer.Table, sqlgraph.NewFieldSpec(guidpointer.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// GuidPointerDeleteOne is the builder for deleting a single GuidPointer entity.
type GuidPointerDeleteOne struct {
	_d *GuidPointerDelete
}

// Where appends a list predicates to the GuidPointerDelete builder.
func (_d *GuidPointerDeleteOne) Where(ps ...predicate.GuidPointer) *GuidPointerDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GuidPointerDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{guidpointer.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GuidPointerDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
