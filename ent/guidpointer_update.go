// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ddevcap/watchsync/ent/guidpointer"
	"github.com/ddevcap/watchsync/ent/mediastate"
	"github.com/ddevcap/watchsync/ent/predicate"
)

// GuidPointerUpdate is the builder for updating GuidPointer entities.
type GuidPointerUpdate struct {
	config
	hooks    []Hook
	mutation *GuidPointerMutation
}

// Where appends a list predicates to the GuidPointerUpdate builder.
func (_u *GuidPointerUpdate) Where(ps ...predicate.GuidPointer) *GuidPointerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPointer sets the "pointer" field.
func (_u *GuidPointerUpdate) SetPointer(v string) *GuidPointerUpdate {
	_u.mutation.SetPointer(v)
	return _u
}

// SetNillablePointer sets the "pointer" field if the given value is not nil.
func (_u *GuidPointerUpdate) SetNillablePointer(v *string) *GuidPointerUpdate {
	if v != nil {
		_u.SetPointer(*v)
	}
	return _u
}

// SetStateID sets the "state" edge to the MediaState entity by ID.
func (_u *GuidPointerUpdate) SetStateID(id int) *GuidPointerUpdate {
	_u.mutation.SetStateID(id)
	return _u
}

// SetState sets the "state" edge to the MediaState entity.
func (_u *GuidPointerUpdate) SetState(v *MediaState) *GuidPointerUpdate {
	return _u.SetStateID(v.ID)
}

// Mutation returns the GuidPointerMutation object of the builder.
func (_u *GuidPointerUpdate) Mutation() *GuidPointerMutation {
	return _u.mutation
}

// ClearState clears the "state" edge to the MediaState entity.
func (_u *GuidPointerUpdate) ClearState() *GuidPointerUpdate {
	_u.mutation.ClearState()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GuidPointerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GuidPointerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GuidPointerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GuidPointerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GuidPointerUpdate) check() error {
	if v, ok := _u.mutation.Pointer(); ok {
		if err := guidpointer.PointerValidator(v); err != nil {
			return &ValidationError{Name: "pointer", err: fmt.Errorf(`ent: validator failed for field "GuidPointer.pointer": %w`, err)}
		}
	}
	if _u.mutation.StateCleared() && len(_u.mutation.StateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GuidPointer.state"`)
	}
	return nil
}

func (_u *GuidPointerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(guidpointer.Table, guidpointer.Columns, sqlgraph.NewFieldSpec(guidpointer.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Pointer(); ok {
		_spec.SetField(guidpointer.FieldPointer, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   guidpointer.StateTable,
			Columns: []string{guidpointer.StateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mediastate.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   guidpointer.StateTable,
			Columns: []string{guidpointer.StateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mediastate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{guidpointer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GuidPointerUpdateOne is the builder for updating a single GuidPointer entity.
type GuidPointerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GuidPointerMutation
}

// SetPointer sets the "pointer" field.
func (_u *GuidPointerUpdateOne) SetPointer(v string) *GuidPointerUpdateOne {
	_u.mutation.SetPointer(v)
	return _u
}

// SetNillablePointer sets the "pointer" field if the given value is not nil.
func (_u *GuidPointerUpdateOne) SetNillablePointer(v *string) *GuidPointerUpdateOne {
	if v != nil {
		_u.SetPointer(*v)
	}
	return _u
}

// SetStateID sets the "state" edge to the MediaState entity by ID.
func (_u *GuidPointerUpdateOne) SetStateID(id int) *GuidPointerUpdateOne {
	_u.mutation.SetStateID(id)
	return _u
}

// SetState sets the "state" edge to the MediaState entity.
func (_u *GuidPointerUpdateOne) SetState(v *MediaState) *GuidPointerUpdateOne {
	return _u.SetStateID(v.ID)
}

// Mutation returns the GuidPointerMutation object of the builder.
func (_u *GuidPointerUpdateOne) Mutation() *GuidPointerMutation {
	return _u.mutation
}

// ClearState clears the "state" edge to the MediaState entity.
func (_u *GuidPointerUpdateOne) ClearState() *GuidPointerUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// Where appends a list predicates to the GuidPointerUpdate builder.
func (_u *GuidPointerUpdateOne) Where(ps ...predicate.GuidPointer) *GuidPointerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GuidPointerUpdateOne) Select(field string, fields ...string) *GuidPointerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GuidPointer entity.
func (_u *GuidPointerUpdateOne) Save(ctx context.Context) (*GuidPointer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GuidPointerUpdateOne) SaveX(ctx context.Context) *GuidPointer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GuidPointerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GuidPointerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GuidPointerUpdateOne) check() error {
	if v, ok := _u.mutation.Pointer(); ok {
		if err := guidpointer.PointerValidator(v); err != nil {
			return &ValidationError{Name: "pointer", err: fmt.Errorf(`ent: validator failed for field "GuidPointer.pointer": %w`, err)}
		}
	}
	if _u.mutation.StateCleared() && len(_u.mutation.StateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GuidPointer.state"`)
	}
	return nil
}

func (_u *GuidPointerUpdateOne) sqlSave(ctx context.Context) (_node *GuidPointer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(guidpointer.Table, guidpointer.Columns, sqlgraph.NewFieldSpec(guidpointer.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GuidPointer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, guidpointer.FieldID)
		for _, f := range fields {
			if !guidpointer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != guidpointer.FieldID {
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
	if value, ok := _u.mutation.Pointer(); ok {
		_spec.SetField(guidpointer.FieldPointer, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   guidpointer.StateTable,
			Columns: []string{guidpointer.StateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mediastate.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   guidpointer.StateTable,
			Columns: []string{guidpointer.StateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mediastate.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &GuidPointer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{guidpointer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
