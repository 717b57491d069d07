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
	"github.com/ddevcap/watchsync/ent/predicate"
	"github.com/ddevcap/watchsync/ent/server"
)

// ServerUpdate is the builder for updating Server entities.
type ServerUpdate struct {
	config
	hooks    []Hook
	mutation *ServerMutation
}

// Where appends a list predicates to the ServerUpdate builder.
func (_u *ServerUpdate) Where(ps ...predicate.Server) *ServerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ServerUpdate) SetName(v string) *ServerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ServerUpdate) SetNillableName(v *string) *ServerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ServerUpdate) SetKind(v string) *ServerUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ServerUpdate) SetNillableKind(v *string) *ServerUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ServerUpdate) SetURL(v string) *ServerUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ServerUpdate) SetNillableURL(v *string) *ServerUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetToken sets the "token" field.
func (_u *ServerUpdate) SetToken(v string) *ServerUpdate {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *ServerUpdate) SetNillableToken(v *string) *ServerUpdate {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ServerUpdate) SetUserID(v string) *ServerUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ServerUpdate) SetNillableUserID(v *string) *ServerUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ServerUpdate) SetEnabled(v bool) *ServerUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ServerUpdate) SetNillableEnabled(v *bool) *ServerUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *ServerUpdate) SetOptions(v map[string]interface{}) *ServerUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *ServerUpdate) ClearOptions() *ServerUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetImportAfter sets the "import_after" field.
func (_u *ServerUpdate) SetImportAfter(v time.Time) *ServerUpdate {
	_u.mutation.SetImportAfter(v)
	return _u
}

// SetNillableImportAfter sets the "import_after" field if the given value is not nil.
func (_u *ServerUpdate) SetNillableImportAfter(v *time.Time) *ServerUpdate {
	if v != nil {
		_u.SetImportAfter(*v)
	}
	return _u
}

// ClearImportAfter clears the value of the "import_after" field.
func (_u *ServerUpdate) ClearImportAfter() *ServerUpdate {
	_u.mutation.ClearImportAfter()
	return _u
}

// SetExportAfter sets the "export_after" field.
func (_u *ServerUpdate) SetExportAfter(v time.Time) *ServerUpdate {
	_u.mutation.SetExportAfter(v)
	return _u
}

// SetNillableExportAfter sets the "export_after" field if the given value is not nil.
func (_u *ServerUpdate) SetNillableExportAfter(v *time.Time) *ServerUpdate {
	if v != nil {
		_u.SetExportAfter(*v)
	}
	return _u
}

// ClearExportAfter clears the value of the "export_after" field.
func (_u *ServerUpdate) ClearExportAfter() *ServerUpdate {
	_u.mutation.ClearExportAfter()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServerUpdate) SetUpdatedAt(v time.Time) *ServerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ServerMutation object of the builder.
func (_u *ServerUpdate) Mutation() *ServerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ServerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ServerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := server.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServerUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := server.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Server.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := server.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Server.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URL(); ok {
		if err := server.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Server.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Token(); ok {
		if err := server.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "Server.token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := server.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Server.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ServerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(server.Table, server.Columns, sqlgraph.NewFieldSpec(server.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(server.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(server.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(server.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(server.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(server.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(server.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(server.FieldOptions, field.TypeJSON, value)
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(server.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImportAfter(); ok {
		_spec.SetField(server.FieldImportAfter, field.TypeTime, value)
	}
	if _u.mutation.ImportAfterCleared() {
		_spec.ClearField(server.FieldImportAfter, field.TypeTime)
	}
	if value, ok := _u.mutation.ExportAfter(); ok {
		_spec.SetField(server.FieldExportAfter, field.TypeTime, value)
	}
	if _u.mutation.ExportAfterCleared() {
		_spec.ClearField(server.FieldExportAfter, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(server.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{server.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ServerUpdateOne is the builder for updating a single Server entity.
type ServerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ServerMutation
}

// SetName sets the "name" field.
func (_u *ServerUpdateOne) SetName(v string) *ServerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ServerUpdateOne) SetNillableName(v *string) *ServerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ServerUpdateOne) SetKind(v string) *ServerUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ServerUpdateOne) SetNillableKind(v *string) *ServerUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *ServerUpdateOne) SetURL(v string) *ServerUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ServerUpdateOne) SetNillableURL(v *string) *ServerUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetToken sets the "token" field.
func (_u *ServerUpdateOne) SetToken(v string) *ServerUpdateOne {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *ServerUpdateOne) SetNillableToken(v *string) *ServerUpdateOne {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ServerUpdateOne) SetUserID(v string) *ServerUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ServerUpdateOne) SetNillableUserID(v *string) *ServerUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ServerUpdateOne) SetEnabled(v bool) *ServerUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ServerUpdateOne) SetNillableEnabled(v *bool) *ServerUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *ServerUpdateOne) SetOptions(v map[string]interface{}) *ServerUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *ServerUpdateOne) ClearOptions() *ServerUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetImportAfter sets the "import_after" field.
func (_u *ServerUpdateOne) SetImportAfter(v time.Time) *ServerUpdateOne {
	_u.mutation.SetImportAfter(v)
	return _u
}

// SetNillableImportAfter sets the "import_after" field if the given value is not nil.
func (_u *ServerUpdateOne) SetNillableImportAfter(v *time.Time) *ServerUpdateOne {
	if v != nil {
		_u.SetImportAfter(*v)
	}
	return _u
}

// ClearImportAfter clears the value of the "import_after" field.
func (_u *ServerUpdateOne) ClearImportAfter() *ServerUpdateOne {
	_u.mutation.ClearImportAfter()
	return _u
}

// SetExportAfter sets the "export_after" field.
func (_u *ServerUpdateOne) SetExportAfter(v time.Time) *ServerUpdateOne {
	_u.mutation.SetExportAfter(v)
	return _u
}

// SetNillableExportAfter sets the "export_after" field if the given value is not nil.
func (_u *ServerUpdateOne) SetNillableExportAfter(v *time.Time) *ServerUpdateOne {
	if v != nil {
		_u.SetExportAfter(*v)
	}
	return _u
}

// ClearExportAfter clears the value of the "export_after" field.
func (_u *ServerUpdateOne) ClearExportAfter() *ServerUpdateOne {
	_u.mutation.ClearExportAfter()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ServerUpdateOne) SetUpdatedAt(v time.Time) *ServerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ServerMutation object of the builder.
func (_u *ServerUpdateOne) Mutation() *ServerMutation {
	return _u.mutation
}

// Where appends a list predicates to the ServerUpdate builder.
func (_u *ServerUpdateOne) Where(ps ...predicate.Server) *ServerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ServerUpdateOne) Select(field string, fields ...string) *ServerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Server entity.
func (_u *ServerUpdateOne) Save(ctx context.Context) (*Server, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ServerUpdateOne) SaveX(ctx context.Context) *Server {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ServerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ServerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ServerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := server.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ServerUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := server.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Server.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := server.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Server.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URL(); ok {
		if err := server.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Server.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Token(); ok {
		if err := server.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "Server.token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := server.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Server.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ServerUpdateOne) sqlSave(ctx context.Context) (_node *Server, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(server.Table, server.Columns, sqlgraph.NewFieldSpec(server.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Server.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, server.FieldID)
		for _, f := range fields {
			if !server.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != server.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(server.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(server.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(server.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(server.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(server.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(server.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(server.FieldOptions, field.TypeJSON, value)
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(server.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImportAfter(); ok {
		_spec.SetField(server.FieldImportAfter, field.TypeTime, value)
	}
	if _u.mutation.ImportAfterCleared() {
		_spec.ClearField(server.FieldImportAfter, field.TypeTime)
	}
	if value, ok := _u.mutation.ExportAfter(); ok {
		_spec.SetField(server.FieldExportAfter, field.TypeTime, value)
	}
	if _u.mutation.ExportAfterCleared() {
		_spec.ClearField(server.FieldExportAfter, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(server.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Server{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{server.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
