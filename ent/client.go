// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/ddevcap/watchsync/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ddevcap/watchsync/ent/guidpointer"
	"github.com/ddevcap/watchsync/ent/mediastate"
	"github.com/ddevcap/watchsync/ent/server"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// GuidPointer is the client for interacting with the GuidPointer builders.
	GuidPointer *GuidPointerClient
	// MediaState is the client for interacting with the MediaState builders.
	MediaState *MediaStateClient
	// Server is the client for interacting with the Server builders.
	Server *ServerClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.GuidPointer = NewGuidPointerClient(c.config)
	c.MediaState = NewMediaStateClient(c.config)
	c.Server = NewServerClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		GuidPointer: NewGuidPointerClient(cfg),
		MediaState:  NewMediaStateClient(cfg),
		Server:      NewServerClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		GuidPointer: NewGuidPointerClient(cfg),
		MediaState:  NewMediaStateClient(cfg),
		Server:      NewServerClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		GuidPointer.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.GuidPointer.Use(hooks...)
	c.MediaState.Use(hooks...)
	c.Server.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.GuidPointer.Intercept(interceptors...)
	c.MediaState.Intercept(interceptors...)
	c.Server.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *GuidPointerMutation:
		return c.GuidPointer.mutate(ctx, m)
	case *MediaStateMutation:
		return c.MediaState.mutate(ctx, m)
	case *ServerMutation:
		return c.Server.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// GuidPointerClient is a client for the GuidPointer schema.
type GuidPointerClient struct {
	config
}

// NewGuidPointerClient returns a client for the GuidPointer from the given config.
func NewGuidPointerClient(c config) *GuidPointerClient {
	return &GuidPointerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `guidpointer.Hooks(f(g(h())))`.
func (c *GuidPointerClient) Use(hooks ...Hook) {
	c.hooks.GuidPointer = append(c.hooks.GuidPointer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `guidpointer.Intercept(f(g(h())))`.
func (c *GuidPointerClient) Intercept(interceptors ...Interceptor) {
	c.inters.GuidPointer = append(c.inters.GuidPointer, interceptors...)
}

// Create returns a builder for creating a GuidPointer entity.
func (c *GuidPointerClient) Create() *GuidPointerCreate {
	mutation := newGuidPointerMutation(c.config, OpCreate)
	return &GuidPointerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GuidPointer entities.
func (c *GuidPointerClient) CreateBulk(builders ...*GuidPointerCreate) *GuidPointerCreateBulk {
	return &GuidPointerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GuidPointerClient) MapCreateBulk(slice any, setFunc func(*GuidPointerCreate, int)) *GuidPointerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GuidPointerCreateBulk{err: fmt.Errorf("calling to GuidPointerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GuidPointerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GuidPointerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GuidPointer.
func (c *GuidPointerClient) Update() *GuidPointerUpdate {
	mutation := newGuidPointerMutation(c.config, OpUpdate)
	return &GuidPointerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GuidPointerClient) UpdateOne(_m *GuidPointer) *GuidPointerUpdateOne {
	mutation := newGuidPointerMutation(c.config, OpUpdateOne, withGuidPointer(_m))
	return &GuidPointerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GuidPointerClient) UpdateOneID(id int) *GuidPointerUpdateOne {
	mutation := newGuidPointerMutation(c.config, OpUpdateOne, withGuidPointerID(id))
	return &GuidPointerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GuidPointer.
func (c *GuidPointerClient) Delete() *GuidPointerDelete {
	mutation := newGuidPointerMutation(c.config, OpDelete)
	return &GuidPointerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GuidPointerClient) DeleteOne(_m *GuidPointer) *GuidPointerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GuidPointerClient) DeleteOneID(id int) *GuidPointerDeleteOne {
	builder := c.Delete().Where(guidpointer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GuidPointerDeleteOne{builder}
}

// Query returns a query builder for GuidPointer.
func (c *GuidPointerClient) Query() *GuidPointerQuery {
	return &GuidPointerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGuidPointer},
		inters: c.Interceptors(),
	}
}

// Get returns a GuidPointer entity by its id.
func (c *GuidPointerClient) Get(ctx context.Context, id int) (*GuidPointer, error) {
	return c.Query().Where(guidpointer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GuidPointerClient) GetX(ctx context.Context, id int) *GuidPointer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryState queries the state edge of a GuidPointer.
func (c *GuidPointerClient) QueryState(_m *GuidPointer) *MediaStateQuery {
	query := (&MediaStateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(guidpointer.Table, guidpointer.FieldID, id),
			sqlgraph.To(mediastate.Table, mediastate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, guidpointer.StateTable, guidpointer.StateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GuidPointerClient) Hooks() []Hook {
	return c.hooks.GuidPointer
}

// Interceptors returns the client interceptors.
func (c *GuidPointerClient) Interceptors() []Interceptor {
	return c.inters.GuidPointer
}

func (c *GuidPointerClient) mutate(ctx context.Context, m *GuidPointerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GuidPointerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GuidPointerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GuidPointerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GuidPointerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GuidPointer mutation op: %q", m.Op())
	}
}

// MediaStateClient is a client for the MediaState schema.
type MediaStateClient struct {
	config
}

// NewMediaStateClient returns a client for the MediaState from the given config.
func NewMediaStateClient(c config) *MediaStateClient {
	return &MediaStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mediastate.Hooks(f(g(h())))`.
func (c *MediaStateClient) Use(hooks ...Hook) {
	c.hooks.MediaState = append(c.hooks.MediaState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mediastate.Intercept(f(g(h())))`.
func (c *MediaStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.MediaState = append(c.inters.MediaState, interceptors...)
}

// Create returns a builder for creating a MediaState entity.
func (c *MediaStateClient) Create() *MediaStateCreate {
	mutation := newMediaStateMutation(c.config, OpCreate)
	return &MediaStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MediaState entities.
func (c *MediaStateClient) CreateBulk(builders ...*MediaStateCreate) *MediaStateCreateBulk {
	return &MediaStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MediaStateClient) MapCreateBulk(slice any, setFunc func(*MediaStateCreate, int)) *MediaStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MediaStateCreateBulk{err: fmt.Errorf("calling to MediaStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MediaStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MediaStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MediaState.
func (c *MediaStateClient) Update() *MediaStateUpdate {
	mutation := newMediaStateMutation(c.config, OpUpdate)
	return &MediaStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MediaStateClient) UpdateOne(_m *MediaState) *MediaStateUpdateOne {
	mutation := newMediaStateMutation(c.config, OpUpdateOne, withMediaState(_m))
	return &MediaStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MediaStateClient) UpdateOneID(id int) *MediaStateUpdateOne {
	mutation := newMediaStateMutation(c.config, OpUpdateOne, withMediaStateID(id))
	return &MediaStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MediaState.
func (c *MediaStateClient) Delete() *MediaStateDelete {
	mutation := newMediaStateMutation(c.config, OpDelete)
	return &MediaStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MediaStateClient) DeleteOne(_m *MediaState) *MediaStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MediaStateClient) DeleteOneID(id int) *MediaStateDeleteOne {
	builder := c.Delete().Where(mediastate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MediaStateDeleteOne{builder}
}

// Query returns a query builder for MediaState.
func (c *MediaStateClient) Query() *MediaStateQuery {
	return &MediaStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMediaState},
		inters: c.Interceptors(),
	}
}

// Get returns a MediaState entity by its id.
func (c *MediaStateClient) Get(ctx context.Context, id int) (*MediaState, error) {
	return c.Query().Where(mediastate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MediaStateClient) GetX(ctx context.Context, id int) *MediaState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPointers queries the pointers edge of a MediaState.
func (c *MediaStateClient) QueryPointers(_m *MediaState) *GuidPointerQuery {
	query := (&GuidPointerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(mediastate.Table, mediastate.FieldID, id),
			sqlgraph.To(guidpointer.Table, guidpointer.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, mediastate.PointersTable, mediastate.PointersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MediaStateClient) Hooks() []Hook {
	return c.hooks.MediaState
}

// Interceptors returns the client interceptors.
func (c *MediaStateClient) Interceptors() []Interceptor {
	return c.inters.MediaState
}

func (c *MediaStateClient) mutate(ctx context.Context, m *MediaStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MediaStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MediaStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MediaStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MediaStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MediaState mutation op: %q", m.Op())
	}
}

// ServerClient is a client for the Server schema.
type ServerClient struct {
	config
}

// NewServerClient returns a client for the Server from the given config.
func NewServerClient(c config) *ServerClient {
	return &ServerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `server.Hooks(f(g(h())))`.
func (c *ServerClient) Use(hooks ...Hook) {
	c.hooks.Server = append(c.hooks.Server, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `server.Intercept(f(g(h())))`.
func (c *ServerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Server = append(c.inters.Server, interceptors...)
}

// Create returns a builder for creating a Server entity.
func (c *ServerClient) Create() *ServerCreate {
	mutation := newServerMutation(c.config, OpCreate)
	return &ServerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Server entities.
func (c *ServerClient) CreateBulk(builders ...*ServerCreate) *ServerCreateBulk {
	return &ServerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ServerClient) MapCreateBulk(slice any, setFunc func(*ServerCreate, int)) *ServerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ServerCreateBulk{err: fmt.Errorf("calling to ServerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ServerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ServerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Server.
func (c *ServerClient) Update() *ServerUpdate {
	mutation := newServerMutation(c.config, OpUpdate)
	return &ServerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ServerClient) UpdateOne(_m *Server) *ServerUpdateOne {
	mutation := newServerMutation(c.config, OpUpdateOne, withServer(_m))
	return &ServerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ServerClient) UpdateOneID(id uuid.UUID) *ServerUpdateOne {
	mutation := newServerMutation(c.config, OpUpdateOne, withServerID(id))
	return &ServerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Server.
func (c *ServerClient) Delete() *ServerDelete {
	mutation := newServerMutation(c.config, OpDelete)
	return &ServerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ServerClient) DeleteOne(_m *Server) *ServerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ServerClient) DeleteOneID(id uuid.UUID) *ServerDeleteOne {
	builder := c.Delete().Where(server.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ServerDeleteOne{builder}
}

// Query returns a query builder for Server.
func (c *ServerClient) Query() *ServerQuery {
	return &ServerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeServer},
		inters: c.Interceptors(),
	}
}

// Get returns a Server entity by its id.
func (c *ServerClient) Get(ctx context.Context, id uuid.UUID) (*Server, error) {
	return c.Query().Where(server.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ServerClient) GetX(ctx context.Context, id uuid.UUID) *Server {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ServerClient) Hooks() []Hook {
	return c.hooks.Server
}

// Interceptors returns the client interceptors.
func (c *ServerClient) Interceptors() []Interceptor {
	return c.inters.Server
}

func (c *ServerClient) mutate(ctx context.Context, m *ServerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ServerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ServerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ServerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ServerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Server mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		GuidPointer, MediaState, Server []ent.Hook
	}
	inters struct {
		GuidPointer, MediaState, Server []ent.Interceptor
	}
)
