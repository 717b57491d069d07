// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ddevcap/watchsync/ent/server"
	"github.com/google/uuid"
)

// ServerCreate is the builder for creating a Server entity.
type ServerCreate struct {
	config
	mutation *ServerMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ServerCreate) SetName(v string) *ServerCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ServerCreate) SetKind(v string) *ServerCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *ServerCreate) SetURL(v string) *ServerCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetToken sets the "token" field.
func (_c *ServerCreate) SetToken(v string) *ServerCreate {
	_c.mutation.SetToken(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ServerCreate) SetUserID(v string) *ServerCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *ServerCreate) SetEnabled(v bool) *ServerCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *ServerCreate) SetNillableEnabled(v *bool) *ServerCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetOptions sets the "options" field.
func (_c *ServerCreate) SetOptions(v map[string]interface{}) *ServerCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetImportAfter sets the "import_after" field.
func (_c *ServerCreate) SetImportAfter(v time.Time) *ServerCreate {
	_c.mutation.SetImportAfter(v)
	return _c
}

// SetNillableImportAfter sets the "import_after" field if the given value is not nil.
func (_c *ServerCreate) SetNillableImportAfter(v *time.Time) *ServerCreate {
	if v != nil {
		_c.SetImportAfter(*v)
	}
	return _c
}

// SetExportAfter sets the "export_after" field.
func (_c *ServerCreate) SetExportAfter(v time.Time) *ServerCreate {
	_c.mutation.SetExportAfter(v)
	return _c
}

// SetNillableExportAfter sets the "export_after" field if the given value is not nil.
func (_c *ServerCreate) SetNillableExportAfter(v *time.Time) *ServerCreate {
	if v != nil {
		_c.SetExportAfter(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ServerCreate) SetCreatedAt(v time.Time) *ServerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ServerCreate) SetNillableCreatedAt(v *time.Time) *ServerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ServerCreate) SetUpdatedAt(v time.Time) *ServerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ServerCreate) SetNillableUpdatedAt(v *time.Time) *ServerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ServerCreate) SetID(v uuid.UUID) *ServerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ServerCreate) SetNillableID(v *uuid.UUID) *ServerCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ServerMutation object of the builder.
func (_c *ServerCreate) Mutation() *ServerMutation {
	return _c.mutation
}

// Save creates the Server in the database.
func (_c *ServerCreate) Save(ctx context.Context) (*Server, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ServerCreate) SaveX(ctx context.Context) *Server {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ServerCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := server.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := server.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := server.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := server.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ServerCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Server.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := server.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Server.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Server.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := server.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Server.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "Server.url"`)}
	}
	if v, ok := _c.mutation.URL(); ok {
		if err := server.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Server.url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Token(); !ok {
		return &ValidationError{Name: "token", err: errors.New(`ent: missing required field "Server.token"`)}
	}
	if v, ok := _c.mutation.Token(); ok {
		if err := server.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "Server.token": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Server.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := server.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Server.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "Server.enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Server.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Server.updated_at"`)}
	}
	return nil
}

func (_c *ServerCreate) sqlSave(ctx context.Context) (*Server, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ServerCreate) createSpec() (*Server, *sqlgraph.CreateSpec) {
	var (
		_node = &Server{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(server.Table, sqlgraph.NewFieldSpec(server.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(server.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(server.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(server.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Token(); ok {
		_spec.SetField(server.FieldToken, field.TypeString, value)
		_node.Token = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(server.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(server.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(server.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.ImportAfter(); ok {
		_spec.SetField(server.FieldImportAfter, field.TypeTime, value)
		_node.ImportAfter = &value
	}
	if value, ok := _c.mutation.ExportAfter(); ok {
		_spec.SetField(server.FieldExportAfter, field.TypeTime, value)
		_node.ExportAfter = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(server.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(server.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ServerCreateBulk is the builder for creating many Server entities in bulk.
type ServerCreateBulk struct {
	config
	err      error
	builders []*ServerCreate
}

// Save creates the Server entities in the database.
func (_c *ServerCreateBulk) Save(ctx context.Context) ([]*Server, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Server, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ServerMutation)
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
func (_c *ServerCreateBulk) SaveX(ctx context.Context) []*Server {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ServerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ServerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
