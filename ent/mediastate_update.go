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
	"github.com/ddevcap/watchsync/entity"
	"github.com/ddevcap/watchsync/guid"
)

// MediaStateUpdate is the builder for updating MediaState entities.
type MediaStateUpdate struct {
	config
	hooks    []Hook
	mutation *MediaStateMutation
}

// Where appends a list predicates to the MediaStateUpdate builder.
func (_u *MediaStateUpdate) Where(ps ...predicate.MediaState) *MediaStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *MediaStateUpdate) SetType(v string) *MediaStateUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *MediaStateUpdate) SetNillableType(v *string) *MediaStateUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *MediaStateUpdate) SetTitle(v string) *MediaStateUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MediaStateUpdate) SetNillableTitle(v *string) *MediaStateUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetYear sets the "year" field.
func (_u *MediaStateUpdate) SetYear(v int) *MediaStateUpdate {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *MediaStateUpdate) SetNillableYear(v *int) *MediaStateUpdate {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *MediaStateUpdate) AddYear(v int) *MediaStateUpdate {
	_u.mutation.AddYear(v)
	return _u
}

// SetSeason sets the "season" field.
func (_u *MediaStateUpdate) SetSeason(v int) *MediaStateUpdate {
	_u.mutation.ResetSeason()
	_u.mutation.SetSeason(v)
	return _u
}

// SetNillableSeason sets the "season" field if the given value is not nil.
func (_u *MediaStateUpdate) SetNillableSeason(v *int) *MediaStateUpdate {
	if v != nil {
		_u.SetSeason(*v)
	}
	return _u
}

// AddSeason adds value to the "season" field.
func (_u *MediaStateUpdate) AddSeason(v int) *MediaStateUpdate {
	_u.mutation.AddSeason(v)
	return _u
}

// SetEpisode sets the "episode" field.
func (_u *MediaStateUpdate) SetEpisode(v int) *MediaStateUpdate {
	_u.mutation.ResetEpisode()
	_u.mutation.SetEpisode(v)
	return _u
}

// SetNillableEpisode sets the "episode" field if the given value is not nil.
func (_u *MediaStateUpdate) SetNillableEpisode(v *int) *MediaStateUpdate {
	if v != nil {
		_u.SetEpisode(*v)
	}
	return _u
}

// AddEpisode adds value to the "episode" field.
func (_u *MediaStateUpdate) AddEpisode(v int) *MediaStateUpdate {
	_u.mutation.AddEpisode(v)
	return _u
}

// SetWatched sets the "watched" field.
func (_u *MediaStateUpdate) SetWatched(v bool) *MediaStateUpdate {
	_u.mutation.SetWatched(v)
	return _u
}

// SetNillableWatched sets the "watched" field if the given value is not nil.
func (_u *MediaStateUpdate) SetNillableWatched(v *bool) *MediaStateUpdate {
	if v != nil {
		_u.SetWatched(*v)
	}
	return _u
}

// SetUpdated sets the "updated" field.
func (_u *MediaStateUpdate) SetUpdated(v int64) *MediaStateUpdate {
	_u.mutation.ResetUpdated()
	_u.mutation.SetUpdated(v)
	return _u
}

// SetNillableUpdated sets the "updated" field if the given value is not nil.
func (_u *MediaStateUpdate) SetNillableUpdated(v *int64) *MediaStateUpdate {
	if v != nil {
		_u.SetUpdated(*v)
	}
	return _u
}

// AddUpdated adds value to the "updated" field.
func (_u *MediaStateUpdate) AddUpdated(v int64) *MediaStateUpdate {
	_u.mutation.AddUpdated(v)
	return _u
}

// SetVia sets the "via" field.
func (_u *MediaStateUpdate) SetVia(v string) *MediaStateUpdate {
	_u.mutation.SetVia(v)
	return _u
}

// SetNillableVia sets the "via" field if the given value is not nil.
func (_u *MediaStateUpdate) SetNillableVia(v *string) *MediaStateUpdate {
	if v != nil {
		_u.SetVia(*v)
	}
	return _u
}

// ClearVia clears the value of the "via" field.
func (_u *MediaStateUpdate) ClearVia() *MediaStateUpdate {
	_u.mutation.ClearVia()
	return _u
}

// SetGuids sets the "guids" field.
func (_u *MediaStateUpdate) SetGuids(v guid.Set) *MediaStateUpdate {
	_u.mutation.SetGuids(v)
	return _u
}

// ClearGuids clears the value of the "guids" field.
func (_u *MediaStateUpdate) ClearGuids() *MediaStateUpdate {
	_u.mutation.ClearGuids()
	return _u
}

// SetParentGuids sets the "parent_guids" field.
func (_u *MediaStateUpdate) SetParentGuids(v guid.Set) *MediaStateUpdate {
	_u.mutation.SetParentGuids(v)
	return _u
}

// ClearParentGuids clears the value of the "parent_guids" field.
func (_u *MediaStateUpdate) ClearParentGuids() *MediaStateUpdate {
	_u.mutation.ClearParentGuids()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *MediaStateUpdate) SetMetadata(v map[string]entity.Metadata) *MediaStateUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *MediaStateUpdate) ClearMetadata() *MediaStateUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetExtra sets the "extra" field.
func (_u *MediaStateUpdate) SetExtra(v map[string]entity.Extra) *MediaStateUpdate {
	_u.mutation.SetExtra(v)
	return _u
}

// ClearExtra clears the value of the "extra" field.
func (_u *MediaStateUpdate) ClearExtra() *MediaStateUpdate {
	_u.mutation.ClearExtra()
	return _u
}

// SetTainted sets the "tainted" field.
func (_u *MediaStateUpdate) SetTainted(v bool) *MediaStateUpdate {
	_u.mutation.SetTainted(v)
	return _u
}

// SetNillableTainted sets the "tainted" field if the given value is not nil.
func (_u *MediaStateUpdate) SetNillableTainted(v *bool) *MediaStateUpdate {
	if v != nil {
		_u.SetTainted(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *MediaStateUpdate) SetProgress(v int64) *MediaStateUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *MediaStateUpdate) SetNillableProgress(v *int64) *MediaStateUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *MediaStateUpdate) AddProgress(v int64) *MediaStateUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// AddPointerIDs adds the "pointers" edge to the GuidPointer entity by IDs.
func (_u *MediaStateUpdate) AddPointerIDs(ids ...int) *MediaStateUpdate {
	_u.mutation.AddPointerIDs(ids...)
	return _u
}

// AddPointers adds the "pointers" edges to the GuidPointer entity.
func (_u *MediaStateUpdate) AddPointers(v ...*GuidPointer) *MediaStateUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPointerIDs(ids...)
}

// Mutation returns the MediaStateMutation object of the builder.
func (_u *MediaStateUpdate) Mutation() *MediaStateMutation {
	return _u.mutation
}

// ClearPointers clears all "pointers" edges to the GuidPointer entity.
func (_u *MediaStateUpdate) ClearPointers() *MediaStateUpdate {
	_u.mutation.ClearPointers()
	return _u
}

// RemovePointerIDs removes the "pointers" edge to GuidPointer entities by IDs.
func (_u *MediaStateUpdate) RemovePointerIDs(ids ...int) *MediaStateUpdate {
	_u.mutation.RemovePointerIDs(ids...)
	return _u
}

// RemovePointers removes "pointers" edges to GuidPointer entities.
func (_u *MediaStateUpdate) RemovePointers(v ...*GuidPointer) *MediaStateUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePointerIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MediaStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MediaStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MediaStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MediaStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MediaStateUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := mediastate.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "MediaState.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := mediastate.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "MediaState.title": %w`, err)}
		}
	}
	return nil
}

func (_u *MediaStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mediastate.Table, mediastate.Columns, sqlgraph.NewFieldSpec(mediastate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(mediastate.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(mediastate.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(mediastate.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(mediastate.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Season(); ok {
		_spec.SetField(mediastate.FieldSeason, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeason(); ok {
		_spec.AddField(mediastate.FieldSeason, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Episode(); ok {
		_spec.SetField(mediastate.FieldEpisode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEpisode(); ok {
		_spec.AddField(mediastate.FieldEpisode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Watched(); ok {
		_spec.SetField(mediastate.FieldWatched, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Updated(); ok {
		_spec.SetField(mediastate.FieldUpdated, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUpdated(); ok {
		_spec.AddField(mediastate.FieldUpdated, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Via(); ok {
		_spec.SetField(mediastate.FieldVia, field.TypeString, value)
	}
	if _u.mutation.ViaCleared() {
		_spec.ClearField(mediastate.FieldVia, field.TypeString)
	}
	if value, ok := _u.mutation.Guids(); ok {
		_spec.SetField(mediastate.FieldGuids, field.TypeJSON, value)
	}
	if _u.mutation.GuidsCleared() {
		_spec.ClearField(mediastate.FieldGuids, field.TypeJSON)
	}
	if value, ok := _u.mutation.ParentGuids(); ok {
		_spec.SetField(mediastate.FieldParentGuids, field.TypeJSON, value)
	}
	if _u.mutation.ParentGuidsCleared() {
		_spec.ClearField(mediastate.FieldParentGuids, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(mediastate.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(mediastate.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Extra(); ok {
		_spec.SetField(mediastate.FieldExtra, field.TypeJSON, value)
	}
	if _u.mutation.ExtraCleared() {
		_spec.ClearField(mediastate.FieldExtra, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tainted(); ok {
		_spec.SetField(mediastate.FieldTainted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(mediastate.FieldProgress, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(mediastate.FieldProgress, field.TypeInt64, value)
	}
	if _u.mutation.PointersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPointersIDs(); len(nodes) > 0 && !_u.mutation.PointersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PointersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mediastate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MediaStateUpdateOne is the builder for updating a single MediaState entity.
type MediaStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MediaStateMutation
}

// SetType sets the "type" field.
func (_u *MediaStateUpdateOne) SetType(v string) *MediaStateUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *MediaStateUpdateOne) SetNillableType(v *string) *MediaStateUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *MediaStateUpdateOne) SetTitle(v string) *MediaStateUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MediaStateUpdateOne) SetNillableTitle(v *string) *MediaStateUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetYear sets the "year" field.
func (_u *MediaStateUpdateOne) SetYear(v int) *MediaStateUpdateOne {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *MediaStateUpdateOne) SetNillableYear(v *int) *MediaStateUpdateOne {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *MediaStateUpdateOne) AddYear(v int) *MediaStateUpdateOne {
	_u.mutation.AddYear(v)
	return _u
}

// SetSeason sets the "season" field.
func (_u *MediaStateUpdateOne) SetSeason(v int) *MediaStateUpdateOne {
	_u.mutation.ResetSeason()
	_u.mutation.SetSeason(v)
	return _u
}

// SetNillableSeason sets the "season" field if the given value is not nil.
func (_u *MediaStateUpdateOne) SetNillableSeason(v *int) *MediaStateUpdateOne {
	if v != nil {
		_u.SetSeason(*v)
	}
	return _u
}

// AddSeason adds value to the "season" field.
func (_u *MediaStateUpdateOne) AddSeason(v int) *MediaStateUpdateOne {
	_u.mutation.AddSeason(v)
	return _u
}

// SetEpisode sets the "episode" field.
func (_u *MediaStateUpdateOne) SetEpisode(v int) *MediaStateUpdateOne {
	_u.mutation.ResetEpisode()
	_u.mutation.SetEpisode(v)
	return _u
}

// SetNillableEpisode sets the "episode" field if the given value is not nil.
func (_u *MediaStateUpdateOne) SetNillableEpisode(v *int) *MediaStateUpdateOne {
	if v != nil {
		_u.SetEpisode(*v)
	}
	return _u
}

// AddEpisode adds value to the "episode" field.
func (_u *MediaStateUpdateOne) AddEpisode(v int) *MediaStateUpdateOne {
	_u.mutation.AddEpisode(v)
	return _u
}

// SetWatched sets the "watched" field.
func (_u *MediaStateUpdateOne) SetWatched(v bool) *MediaStateUpdateOne {
	_u.mutation.SetWatched(v)
	return _u
}

// SetNillableWatched sets the "watched" field if the given value is not nil.
func (_u *MediaStateUpdateOne) SetNillableWatched(v *bool) *MediaStateUpdateOne {
	if v != nil {
		_u.SetWatched(*v)
	}
	return _u
}

// SetUpdated sets the "updated" field.
func (_u *MediaStateUpdateOne) SetUpdated(v int64) *MediaStateUpdateOne {
	_u.mutation.ResetUpdated()
	_u.mutation.SetUpdated(v)
	return _u
}

// SetNillableUpdated sets the "updated" field if the given value is not nil.
func (_u *MediaStateUpdateOne) SetNillableUpdated(v *int64) *MediaStateUpdateOne {
	if v != nil {
		_u.SetUpdated(*v)
	}
	return _u
}

// AddUpdated adds value to the "updated" field.
func (_u *MediaStateUpdateOne) AddUpdated(v int64) *MediaStateUpdateOne {
	_u.mutation.AddUpdated(v)
	return _u
}

// SetVia sets the "via" field.
func (_u *MediaStateUpdateOne) SetVia(v string) *MediaStateUpdateOne {
	_u.mutation.SetVia(v)
	return _u
}

// SetNillableVia sets the "via" field if the given value is not nil.
func (_u *MediaStateUpdateOne) SetNillableVia(v *string) *MediaStateUpdateOne {
	if v != nil {
		_u.SetVia(*v)
	}
	return _u
}

// ClearVia clears the value of the "via" field.
func (_u *MediaStateUpdateOne) ClearVia() *MediaStateUpdateOne {
	_u.mutation.ClearVia()
	return _u
}

// SetGuids sets the "guids" field.
func (_u *MediaStateUpdateOne) SetGuids(v guid.Set) *MediaStateUpdateOne {
	_u.mutation.SetGuids(v)
	return _u
}

// ClearGuids clears the value of the "guids" field.
func (_u *MediaStateUpdateOne) ClearGuids() *MediaStateUpdateOne {
	_u.mutation.ClearGuids()
	return _u
}

// SetParentGuids sets the "parent_guids" field.
func (_u *MediaStateUpdateOne) SetParentGuids(v guid.Set) *MediaStateUpdateOne {
	_u.mutation.SetParentGuids(v)
	return _u
}

// ClearParentGuids clears the value of the "parent_guids" field.
func (_u *MediaStateUpdateOne) ClearParentGuids() *MediaStateUpdateOne {
	_u.mutation.ClearParentGuids()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *MediaStateUpdateOne) SetMetadata(v map[string]entity.Metadata) *MediaStateUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *MediaStateUpdateOne) ClearMetadata() *MediaStateUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetExtra sets the "extra" field.
func (_u *MediaStateUpdateOne) SetExtra(v map[string]entity.Extra) *MediaStateUpdateOne {
	_u.mutation.SetExtra(v)
	return _u
}

// ClearExtra clears the value of the "extra" field.
func (_u *MediaStateUpdateOne) ClearExtra() *MediaStateUpdateOne {
	_u.mutation.ClearExtra()
	return _u
}

// SetTainted sets the "tainted" field.
func (_u *MediaStateUpdateOne) SetTainted(v bool) *MediaStateUpdateOne {
	_u.mutation.SetTainted(v)
	return _u
}

// SetNillableTainted sets the "tainted" field if the given value is not nil.
func (_u *MediaStateUpdateOne) SetNillableTainted(v *bool) *MediaStateUpdateOne {
	if v != nil {
		_u.SetTainted(*v)
	}
	return _u
}

// SetProgress sets the "progress" field.
func (_u *MediaStateUpdateOne) SetProgress(v int64) *MediaStateUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *MediaStateUpdateOne) SetNillableProgress(v *int64) *MediaStateUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *MediaStateUpdateOne) AddProgress(v int64) *MediaStateUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// AddPointerIDs adds the "pointers" edge to the GuidPointer entity by IDs.
func (_u *MediaStateUpdateOne) AddPointerIDs(ids ...int) *MediaStateUpdateOne {
	_u.mutation.AddPointerIDs(ids...)
	return _u
}

// AddPointers adds the "pointers" edges to the GuidPointer entity.
func (_u *MediaStateUpdateOne) AddPointers(v ...*GuidPointer) *MediaStateUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPointerIDs(ids...)
}

// Mutation returns the MediaStateMutation object of the builder.
func (_u *MediaStateUpdateOne) Mutation() *MediaStateMutation {
	return _u.mutation
}

// ClearPointers clears all "pointers" edges to the GuidPointer entity.
func (_u *MediaStateUpdateOne) ClearPointers() *MediaStateUpdateOne {
	_u.mutation.ClearPointers()
	return _u
}

// RemovePointerIDs removes the "pointers" edge to GuidPointer entities by IDs.
func (_u *MediaStateUpdateOne) RemovePointerIDs(ids ...int) *MediaStateUpdateOne {
	_u.mutation.RemovePointerIDs(ids...)
	return _u
}

// RemovePointers removes "pointers" edges to GuidPointer entities.
func (_u *MediaStateUpdateOne) RemovePointers(v ...*GuidPointer) *MediaStateUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePointerIDs(ids...)
}

// Where appends a list predicates to the MediaStateUpdate builder.
func (_u *MediaStateUpdateOne) Where(ps ...predicate.MediaState) *MediaStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MediaStateUpdateOne) Select(field string, fields ...string) *MediaStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MediaState entity.
func (_u *MediaStateUpdateOne) Save(ctx context.Context) (*MediaState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MediaStateUpdateOne) SaveX(ctx context.Context) *MediaState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MediaStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MediaStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MediaStateUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := mediastate.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "MediaState.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := mediastate.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "MediaState.title": %w`, err)}
		}
	}
	return nil
}

func (_u *MediaStateUpdateOne) sqlSave(ctx context.Context) (_node *MediaState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mediastate.Table, mediastate.Columns, sqlgraph.NewFieldSpec(mediastate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MediaState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mediastate.FieldID)
		for _, f := range fields {
			if !mediastate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mediastate.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(mediastate.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(mediastate.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(mediastate.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(mediastate.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Season(); ok {
		_spec.SetField(mediastate.FieldSeason, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeason(); ok {
		_spec.AddField(mediastate.FieldSeason, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Episode(); ok {
		_spec.SetField(mediastate.FieldEpisode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEpisode(); ok {
		_spec.AddField(mediastate.FieldEpisode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Watched(); ok {
		_spec.SetField(mediastate.FieldWatched, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Updated(); ok {
		_spec.SetField(mediastate.FieldUpdated, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUpdated(); ok {
		_spec.AddField(mediastate.FieldUpdated, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Via(); ok {
		_spec.SetField(mediastate.FieldVia, field.TypeString, value)
	}
	if _u.mutation.ViaCleared() {
		_spec.ClearField(mediastate.FieldVia, field.TypeString)
	}
	if value, ok := _u.mutation.Guids(); ok {
		_spec.SetField(mediastate.FieldGuids, field.TypeJSON, value)
	}
	if _u.mutation.GuidsCleared() {
		_spec.ClearField(mediastate.FieldGuids, field.TypeJSON)
	}
	if value, ok := _u.mutation.ParentGuids(); ok {
		_spec.SetField(mediastate.FieldParentGuids, field.TypeJSON, value)
	}
	if _u.mutation.ParentGuidsCleared() {
		_spec.ClearField(mediastate.FieldParentGuids, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(mediastate.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(mediastate.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Extra(); ok {
		_spec.SetField(mediastate.FieldExtra, field.TypeJSON, value)
	}
	if _u.mutation.ExtraCleared() {
		_spec.ClearField(mediastate.FieldExtra, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tainted(); ok {
		_spec.SetField(mediastate.FieldTainted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(mediastate.FieldProgress, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(mediastate.FieldProgress, field.TypeInt64, value)
	}
	if _u.mutation.PointersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPointersIDs(); len(nodes) > 0 && !_u.mutation.PointersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PointersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MediaState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mediastate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
