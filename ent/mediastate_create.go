// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ddevcap/watchsync/ent/guidpointer"
	"github.com/ddevcap/watchsync/ent/mediastate"
	"github.com/ddevcap/watchsync/entity"
	"github.com/ddevcap/watchsync/guid"
)

// MediaStateCreate is the builder for creating a MediaState entity.
type MediaStateCreate struct {
	config
	mutation *MediaStateMutation
	hooks    []Hook
}

// SetType sets the "type" field.
func (_c *MediaStateCreate) SetType(v string) *MediaStateCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *MediaStateCreate) SetTitle(v string) *MediaStateCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetYear sets the "year" field.
func (_c *MediaStateCreate) SetYear(v int) *MediaStateCreate {
	_c.mutation.SetYear(v)
	return _c
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_c *MediaStateCreate) SetNillableYear(v *int) *MediaStateCreate {
	if v != nil {
		_c.SetYear(*v)
	}
	return _c
}

// SetSeason sets the "season" field.
func (_c *MediaStateCreate) SetSeason(v int) *MediaStateCreate {
	_c.mutation.SetSeason(v)
	return _c
}

// SetNillableSeason sets the "season" field if the given value is not nil.
func (_c *MediaStateCreate) SetNillableSeason(v *int) *MediaStateCreate {
	if v != nil {
		_c.SetSeason(*v)
	}
	return _c
}

// SetEpisode sets the "episode" field.
func (_c *MediaStateCreate) SetEpisode(v int) *MediaStateCreate {
	_c.mutation.SetEpisode(v)
	return _c
}

// SetNillableEpisode sets the "episode" field if the given value is not nil.
func (_c *MediaStateCreate) SetNillableEpisode(v *int) *MediaStateCreate {
	if v != nil {
		_c.SetEpisode(*v)
	}
	return _c
}

// SetWatched sets the "watched" field.
func (_c *MediaStateCreate) SetWatched(v bool) *MediaStateCreate {
	_c.mutation.SetWatched(v)
	return _c
}

// SetNillableWatched sets the "watched" field if the given value is not nil.
func (_c *MediaStateCreate) SetNillableWatched(v *bool) *MediaStateCreate {
	if v != nil {
		_c.SetWatched(*v)
	}
	return _c
}

// SetUpdated sets the "updated" field.
func (_c *MediaStateCreate) SetUpdated(v int64) *MediaStateCreate {
	_c.mutation.SetUpdated(v)
	return _c
}

// SetNillableUpdated sets the "updated" field if the given value is not nil.
func (_c *MediaStateCreate) SetNillableUpdated(v *int64) *MediaStateCreate {
	if v != nil {
		_c.SetUpdated(*v)
	}
	return _c
}

// SetVia sets the "via" field.
func (_c *MediaStateCreate) SetVia(v string) *MediaStateCreate {
	_c.mutation.SetVia(v)
	return _c
}

// SetNillableVia sets the "via" field if the given value is not nil.
func (_c *MediaStateCreate) SetNillableVia(v *string) *MediaStateCreate {
	if v != nil {
		_c.SetVia(*v)
	}
	return _c
}

// SetGuids sets the "guids" field.
func (_c *MediaStateCreate) SetGuids(v guid.Set) *MediaStateCreate {
	_c.mutation.SetGuids(v)
	return _c
}

// SetParentGuids sets the "parent_guids" field.
func (_c *MediaStateCreate) SetParentGuids(v guid.Set) *MediaStateCreate {
	_c.mutation.SetParentGuids(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *MediaStateCreate) SetMetadata(v map[string]entity.Metadata) *MediaStateCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetExtra sets the "extra" field.
func (_c *MediaStateCreate) SetExtra(v map[string]entity.Extra) *MediaStateCreate {
	_c.mutation.SetExtra(v)
	return _c
}

// SetTainted sets the "tainted" field.
func (_c *MediaStateCreate) SetTainted(v bool) *MediaStateCreate {
	_c.mutation.SetTainted(v)
	return _c
}

// SetNillableTainted sets the "tainted" field if the given value is not nil.
func (_c *MediaStateCreate) SetNillableTainted(v *bool) *MediaStateCreate {
	if v != nil {
		_c.SetTainted(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *MediaStateCreate) SetProgress(v int64) *MediaStateCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *MediaStateCreate) SetNillableProgress(v *int64) *MediaStateCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MediaStateCreate) SetCreatedAt(v time.Time) *MediaStateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MediaStateCreate) SetNillableCreatedAt(v *time.Time) *MediaStateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// AddPointerIDs adds the "pointers" edge to the GuidPointer entity by IDs.
func (_c *MediaStateCreate) AddPointerIDs(ids ...int) *MediaStateCreate {
	_c.mutation.AddPointerIDs(ids...)
	return _c
}

// AddPointers adds the "pointers" edges to the GuidPointer entity.
func (_c *MediaStateCreate) AddPointers(v ...*GuidPointer) *MediaStateCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPointerIDs(ids...)
}

// Mutation returns the MediaStateMutation object of the builder.
func (_c *MediaStateCreate) Mutation() *MediaStateMutation {
	return _c.mutation
}

// Save creates the MediaState in the database.
func (_c *MediaStateCreate) Save(ctx context.Context) (*MediaState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MediaStateCreate) SaveX(ctx context.Context) *MediaState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MediaStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MediaStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MediaStateCreate) defaults() {
	if _, ok := _c.mutation.Year(); !ok {
		v := mediastate.DefaultYear
		_c.mutation.SetYear(v)
	}
	if _, ok := _c.mutation.Season(); !ok {
		v := mediastate.DefaultSeason
		_c.mutation.SetSeason(v)
	}
	if _, ok := _c.mutation.Episode(); !ok {
		v := mediastate.DefaultEpisode
		_c.mutation.SetEpisode(v)
	}
	if _, ok := _c.mutation.Watched(); !ok {
		v := mediastate.DefaultWatched
		_c.mutation.SetWatched(v)
	}
	if _, ok := _c.mutation.Updated(); !ok {
		v := mediastate.DefaultUpdated
		_c.mutation.SetUpdated(v)
	}
	if _, ok := _c.mutation.Tainted(); !ok {
		v := mediastate.DefaultTainted
		_c.mutation.SetTainted(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := mediastate.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mediastate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MediaStateCreate) check() error {
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "MediaState.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := mediastate.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "MediaState.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "MediaState.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := mediastate.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "MediaState.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Year(); !ok {
		return &ValidationError{Name: "year", err: errors.New(`ent: missing required field "MediaState.year"`)}
	}
	if _, ok := _c.mutation.Season(); !ok {
		return &ValidationError{Name: "season", err: errors.New(`ent: missing required field "MediaState.season"`)}
	}
	if _, ok := _c.mutation.Episode(); !ok {
		return &ValidationError{Name: "episode", err: errors.New(`ent: missing required field "MediaState.episode"`)}
	}
	if _, ok := _c.mutation.Watched(); !ok {
		return &ValidationError{Name: "watched", err: errors.New(`ent: missing required field "MediaState.watched"`)}
	}
	if _, ok := _c.mutation.Updated(); !ok {
		return &ValidationError{Name: "updated", err: errors.New(`ent: missing required field "MediaState.updated"`)}
	}
	if _, ok := _c.mutation.Tainted(); !ok {
		return &ValidationError{Name: "tainted", err: errors.New(`ent: missing required field "MediaState.tainted"`)}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "MediaState.progress"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MediaState.created_at"`)}
	}
	return nil
}

func (_c *MediaStateCreate) sqlSave(ctx context.Context) (*MediaState, error) {
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

func (_c *MediaStateCreate) createSpec() (*MediaState, *sqlgraph.CreateSpec) {
	var (
		_node = &MediaState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mediastate.Table, sqlgraph.NewFieldSpec(mediastate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(mediastate.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(mediastate.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Year(); ok {
		_spec.SetField(mediastate.FieldYear, field.TypeInt, value)
		_node.Year = value
	}
	if value, ok := _c.mutation.Season(); ok {
		_spec.SetField(mediastate.FieldSeason, field.TypeInt, value)
		_node.Season = value
	}
	if value, ok := _c.mutation.Episode(); ok {
		_spec.SetField(mediastate.FieldEpisode, field.TypeInt, value)
		_node.Episode = value
	}
	if value, ok := _c.mutation.Watched(); ok {
		_spec.SetField(mediastate.FieldWatched, field.TypeBool, value)
		_node.Watched = value
	}
	if value, ok := _c.mutation.Updated(); ok {
		_spec.SetField(mediastate.FieldUpdated, field.TypeInt64, value)
		_node.Updated = value
	}
	if value, ok := _c.mutation.Via(); ok {
		_spec.SetField(mediastate.FieldVia, field.TypeString, value)
		_node.Via = value
	}
	if value, ok := _c.mutation.Guids(); ok {
		_spec.SetField(mediastate.FieldGuids, field.TypeJSON, value)
		_node.Guids = value
	}
	if value, ok := _c.mutation.ParentGuids(); ok {
		_spec.SetField(mediastate.FieldParentGuids, field.TypeJSON, value)
		_node.ParentGuids = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(mediastate.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Extra(); ok {
		_spec.SetField(mediastate.FieldExtra, field.TypeJSON, value)
		_node.Extra = value
	}
	if value, ok := _c.mutation.Tainted(); ok {
		_spec.SetField(mediastate.FieldTainted, field.TypeBool, value)
		_node.Tainted = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(mediastate.FieldProgress, field.TypeInt64, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mediastate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PointersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   mediastate.PointersTable,
			Columns: []string{mediastate.PointersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(guidpointer.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MediaStateCreateBulk is the builder for creating many MediaState entities in bulk.
type MediaStateCreateBulk struct {
	config
	err      error
	builders []*MediaStateCreate
}

// Save creates the MediaState entities in the database.
func (_c *MediaStateCreateBulk) Save(ctx context.Context) ([]*MediaState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MediaState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MediaStateMutation)
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
func (_c *MediaStateCreateBulk) SaveX(ctx context.Context) []*MediaState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MediaStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MediaStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
