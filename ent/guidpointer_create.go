// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ddevcap/watchsync/ent/guidpointer"
	"github.com/ddevcap/watchsync/ent/mediastate"
)

// GuidPointerCreate is the builder for creating a GuidPointer entity.
type GuidPointerCreate struct {
	config
	mutation *GuidPointerMutation
	hooks    []Hook
}

// SetPointer sets the "pointer" field.
func (_c *GuidPointerCreate) SetPointer(v string) *GuidPointerCreate {
	_c.mutation.SetPointer(v)
	return _c
}

// SetStateID sets the "state" edge to the MediaState entity by ID.
func (_c *GuidPointerCreate) SetStateID(id int) *GuidPointerCreate {
	_c.mutation.SetStateID(id)
	return _c
}

// SetState sets the "state" edge to the MediaState entity.
func (_c *GuidPointerCreate) SetState(v *MediaState) *GuidPointerCreate {
	return _c.SetStateID(v.ID)
}

// Mutation returns the GuidPointerMutation object of the builder.
func (_c *GuidPointerCreate) Mutation() *GuidPointerMutation {
	return _c.mutation
}

// Save creates the GuidPointer in the database.
func (_c *GuidPointerCreate) Save(ctx context.Context) (*GuidPointer, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GuidPointerCreate) SaveX(ctx context.Context) *GuidPointer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GuidPointerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GuidPointerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GuidPointerCreate) check() error {
	if _, ok := _c.mutation.Pointer(); !ok {
		return &ValidationError{Name: "pointer", err: errors.New(`ent: missing required field "GuidPointer.pointer"`)}
	}
	if v, ok := _c.mutation.Pointer(); ok {
		if err := guidpointer.PointerValidator(v); err != nil {
			return &ValidationError{Name: "pointer", err: fmt.Errorf(`ent: validator failed for field "GuidPointer.pointer": %w`, err)}
		}
	}
	if len(_c.mutation.StateIDs()) == 0 {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required edge "GuidPointer.state"`)}
	}
	return nil
}

func (_c *GuidPointerCreate) sqlSave(ctx context.Context) (*GuidPointer, error) {
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

func (_c *GuidPointerCreate) createSpec() (*GuidPointer, *sqlgraph.CreateSpec) {
	var (
		_node = &GuidPointer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(guidpointer.Table, sqlgraph.NewFieldSpec(guidpointer.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Pointer(); ok {
		_spec.SetField(guidpointer.FieldPointer, field.TypeString, value)
		_node.Pointer = value
	}
	if nodes := _c.mutation.StateIDs(); len(nodes) > 0 {
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
		_node.media_state_pointers = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GuidPointerCreateBulk is the builder for creating many GuidPointer entities in bulk.
type GuidPointerCreateBulk struct {
	config
	err      error
	builders []*GuidPointerCreate
}

// Save creates the GuidPointer entities in the database.
func (_c *GuidPointerCreateBulk) Save(ctx context.Context) ([]*GuidPointer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GuidPointer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GuidPointerMutation)
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
func (_c *GuidPointerCreateBulk) SaveX(ctx context.Context) []*GuidPointer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GuidPointerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GuidPointerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
