// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ddevcap/watchsync/ent/guidpointer"
	"github.com/ddevcap/watchsync/ent/mediastate"
	"github.com/ddevcap/watchsync/ent/predicate"
	"github.com/ddevcap/watchsync/ent/server"
	"github.com/ddevcap/watchsync/entity"
	"github.com/ddevcap/watchsync/guid"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeGuidPointer = "GuidPointer"
	TypeMediaState  = "MediaState"
	TypeServer      = "Server"
)

// GuidPointerMutation represents an operation that mutates the GuidPointer nodes in the graph.
type GuidPointerMutation struct {
	config
	op            Op
	typ           string
	id            *int
	pointer       *string
	clearedFields map[string]struct{}
	state         *int
	clearedstate  bool
	done          bool
	oldValue      func(context.Context) (*GuidPointer, error)
	predicates    []predicate.GuidPointer
}

var _ ent.Mutation = (*GuidPointerMutation)(nil)

// guidpointerOption allows management of the mutation configuration using functional options.
type guidpointerOption func(*GuidPointerMutation)

// newGuidPointerMutation creates new mutation for the GuidPointer entity.
func newGuidPointerMutation(c config, op Op, opts ...guidpointerOption) *GuidPointerMutation {
	m := &GuidPointerMutation{
		config:        c,
		op:            op,
		typ:           TypeGuidPointer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGuidPointerID sets the ID field of the mutation.
func withGuidPointerID(id int) guidpointerOption {
	return func(m *GuidPointerMutation) {
		var (
			err   error
			once  sync.Once
			value *GuidPointer
		)
		m.oldValue = func(ctx context.Context) (*GuidPointer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GuidPointer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGuidPointer sets the old GuidPointer of the mutation.
func withGuidPointer(node *GuidPointer) guidpointerOption {
	return func(m *GuidPointerMutation) {
		m.oldValue = func(context.Context) (*GuidPointer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GuidPointerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GuidPointerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GuidPointerMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GuidPointerMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GuidPointer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPointer sets the "pointer" field.
func (m *GuidPointerMutation) SetPointer(s string) {
	m.pointer = &s
}

// Pointer returns the value of the "pointer" field in the mutation.
func (m *GuidPointerMutation) Pointer() (r string, exists bool) {
	v := m.pointer
	if v == nil {
		return
	}
	return *v, true
}

// OldPointer returns the old "pointer" field's value of the GuidPointer entity.
// If the GuidPointer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GuidPointerMutation) OldPointer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPointer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPointer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPointer: %w", err)
	}
	return oldValue.Pointer, nil
}

// ResetPointer resets all changes to the "pointer" field.
func (m *GuidPointerMutation) ResetPointer() {
	m.pointer = nil
}

// SetStateID sets the "state" edge to the MediaState entity by id.
func (m *GuidPointerMutation) SetStateID(id int) {
	m.state = &id
}

// ClearState clears the "state" edge to the MediaState entity.
func (m *GuidPointerMutation) ClearState() {
	m.clearedstate = true
}

// StateCleared reports if the "state" edge to the MediaState entity was cleared.
func (m *GuidPointerMutation) StateCleared() bool {
	return m.clearedstate
}

// StateID returns the "state" edge ID in the mutation.
func (m *GuidPointerMutation) StateID() (id int, exists bool) {
	if m.state != nil {
		return *m.state, true
	}
	return
}

// StateIDs returns the "state" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StateID instead. It exists only for internal usage by the builders.
func (m *GuidPointerMutation) StateIDs() (ids []int) {
	if id := m.state; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetState resets all changes to the "state" edge.
func (m *GuidPointerMutation) ResetState() {
	m.state = nil
	m.clearedstate = false
}

// Where appends a list predicates to the GuidPointerMutation builder.
func (m *GuidPointerMutation) Where(ps ...predicate.GuidPointer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GuidPointerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GuidPointerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GuidPointer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GuidPointerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GuidPointerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GuidPointer).
func (m *GuidPointerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GuidPointerMutation) Fields() []string {
	fields := make([]string, 0, 1)
	if m.pointer != nil {
		fields = append(fields, guidpointer.FieldPointer)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GuidPointerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case guidpointer.FieldPointer:
		return m.Pointer()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GuidPointerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case guidpointer.FieldPointer:
		return m.OldPointer(ctx)
	}
	return nil, fmt.Errorf("unknown GuidPointer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GuidPointerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case guidpointer.FieldPointer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPointer(v)
		return nil
	}
	return fmt.Errorf("unknown GuidPointer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GuidPointerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GuidPointerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GuidPointerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GuidPointer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GuidPointerMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GuidPointerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GuidPointerMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GuidPointer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GuidPointerMutation) ResetField(name string) error {
	switch name {
	case guidpointer.FieldPointer:
		m.ResetPointer()
		return nil
	}
	return fmt.Errorf("unknown GuidPointer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GuidPointerMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.state != nil {
		edges = append(edges, guidpointer.EdgeState)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GuidPointerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case guidpointer.EdgeState:
		if id := m.state; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GuidPointerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GuidPointerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GuidPointerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstate {
		edges = append(edges, guidpointer.EdgeState)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GuidPointerMutation) EdgeCleared(name string) bool {
	switch name {
	case guidpointer.EdgeState:
		return m.clearedstate
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GuidPointerMutation) ClearEdge(name string) error {
	switch name {
	case guidpointer.EdgeState:
		m.ClearState()
		return nil
	}
	return fmt.Errorf("unknown GuidPointer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GuidPointerMutation) ResetEdge(name string) error {
	switch name {
	case guidpointer.EdgeState:
		m.ResetState()
		return nil
	}
	return fmt.Errorf("unknown GuidPointer edge %s", name)
}

// MediaStateMutation represents an operation that mutates the MediaState nodes in the graph.
type MediaStateMutation struct {
	config
	op              Op
	typ             string
	id              *int
	_type           *string
	title           *string
	year            *int
	addyear         *int
	season          *int
	addseason       *int
	episode         *int
	addepisode      *int
	watched         *bool
	updated         *int64
	addupdated      *int64
	via             *string
	guids           *guid.Set
	parent_guids    *guid.Set
	metadata        *map[string]entity.Metadata
	extra           *map[string]entity.Extra
	tainted         *bool
	progress        *int64
	addprogress     *int64
	created_at      *time.Time
	clearedFields   map[string]struct{}
	pointers        map[int]struct{}
	removedpointers map[int]struct{}
	clearedpointers bool
	done            bool
	oldValue        func(context.Context) (*MediaState, error)
	predicates      []predicate.MediaState
}

var _ ent.Mutation = (*MediaStateMutation)(nil)

// mediastateOption allows management of the mutation configuration using functional options.
type mediastateOption func(*MediaStateMutation)

// newMediaStateMutation creates new mutation for the MediaState entity.
func newMediaStateMutation(c config, op Op, opts ...mediastateOption) *MediaStateMutation {
	m := &MediaStateMutation{
		config:        c,
		op:            op,
		typ:           TypeMediaState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMediaStateID sets the ID field of the mutation.
func withMediaStateID(id int) mediastateOption {
	return func(m *MediaStateMutation) {
		var (
			err   error
			once  sync.Once
			value *MediaState
		)
		m.oldValue = func(ctx context.Context) (*MediaState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MediaState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMediaState sets the old MediaState of the mutation.
func withMediaState(node *MediaState) mediastateOption {
	return func(m *MediaStateMutation) {
		m.oldValue = func(context.Context) (*MediaState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MediaStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MediaStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MediaStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MediaStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MediaState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetType sets the "type" field.
func (m *MediaStateMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *MediaStateMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the MediaState entity.
// If the MediaState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaStateMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *MediaStateMutation) ResetType() {
	m._type = nil
}

// SetTitle sets the "title" field.
func (m *MediaStateMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *MediaStateMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the MediaState entity.
// If the MediaState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaStateMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *MediaStateMutation) ResetTitle() {
	m.title = nil
}

// SetYear sets the "year" field.
func (m *MediaStateMutation) SetYear(i int) {
	m.year = &i
	m.addyear = nil
}

// Year returns the value of the "year" field in the mutation.
func (m *MediaStateMutation) Year() (r int, exists bool) {
	v := m.year
	if v == nil {
		return
	}
	return *v, true
}

// OldYear returns the old "year" field's value of the MediaState entity.
// If the MediaState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaStateMutation) OldYear(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYear: %w", err)
	}
	return oldValue.Year, nil
}

// AddYear adds i to the "year" field.
func (m *MediaStateMutation) AddYear(i int) {
	if m.addyear != nil {
		*m.addyear += i
	} else {
		m.addyear = &i
	}
}

// AddedYear returns the value that was added to the "year" field in this mutation.
func (m *MediaStateMutation) AddedYear() (r int, exists bool) {
	v := m.addyear
	if v == nil {
		return
	}
	return *v, true
}

// ResetYear resets all changes to the "year" field.
func (m *MediaStateMutation) ResetYear() {
	m.year = nil
	m.addyear = nil
}

// SetSeason sets the "season" field.
func (m *MediaStateMutation) SetSeason(i int) {
	m.season = &i
	m.addseason = nil
}

// Season returns the value of the "season" field in the mutation.
func (m *MediaStateMutation) Season() (r int, exists bool) {
	v := m.season
	if v == nil {
		return
	}
	return *v, true
}

// OldSeason returns the old "season" field's value of the MediaState entity.
// If the MediaState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaStateMutation) OldSeason(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeason: %w", err)
	}
	return oldValue.Season, nil
}

// AddSeason adds i to the "season" field.
func (m *MediaStateMutation) AddSeason(i int) {
	if m.addseason != nil {
		*m.addseason += i
	} else {
		m.addseason = &i
	}
}

// AddedSeason returns the value that was added to the "season" field in this mutation.
func (m *MediaStateMutation) AddedSeason() (r int, exists bool) {
	v := m.addseason
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeason resets all changes to the "season" field.
func (m *MediaStateMutation) ResetSeason() {
	m.season = nil
	m.addseason = nil
}

// SetEpisode sets the "episode" field.
func (m *MediaStateMutation) SetEpisode(i int) {
	m.episode = &i
	m.addepisode = nil
}

// Episode returns the value of the "episode" field in the mutation.
func (m *MediaStateMutation) Episode() (r int, exists bool) {
	v := m.episode
	if v == nil {
		return
	}
	return *v, true
}

// OldEpisode returns the old "episode" field's value of the MediaState entity.
// If the MediaState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaStateMutation) OldEpisode(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEpisode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEpisode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEpisode: %w", err)
	}
	return oldValue.Episode, nil
}

// AddEpisode adds i to the "episode" field.
func (m *MediaStateMutation) AddEpisode(i int) {
	if m.addepisode != nil {
		*m.addepisode += i
	} else {
		m.addepisode = &i
	}
}

// AddedEpisode returns the value that was added to the "episode" field in this mutation.
func (m *MediaStateMutation) AddedEpisode() (r int, exists bool) {
	v := m.addepisode
	if v == nil {
		return
	}
	return *v, true
}

// ResetEpisode resets all changes to the "episode" field.
func (m *MediaStateMutation) ResetEpisode() {
	m.episode = nil
	m.addepisode = nil
}

// SetWatched sets the "watched" field.
func (m *MediaStateMutation) SetWatched(b bool) {
	m.watched = &b
}

// Watched returns the value of the "watched" field in the mutation.
func (m *MediaStateMutation) Watched() (r bool, exists bool) {
	v := m.watched
	if v == nil {
		return
	}
	return *v, true
}

// OldWatched returns the old "watched" field's value of the MediaState entity.
// If the MediaState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaStateMutation) OldWatched(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWatched is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWatched requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWatched: %w", err)
	}
	return oldValue.Watched, nil
}

// ResetWatched resets all changes to the "watched" field.
func (m *MediaStateMutation) ResetWatched() {
	m.watched = nil
}

// SetUpdated sets the "updated" field.
func (m *MediaStateMutation) SetUpdated(i int64) {
	m.updated = &i
	m.addupdated = nil
}

// Updated returns the value of the "updated" field in the mutation.
func (m *MediaStateMutation) Updated() (r int64, exists bool) {
	v := m.updated
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdated returns the old "updated" field's value of the MediaState entity.
// If the MediaState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaStateMutation) OldUpdated(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdated: %w", err)
	}
	return oldValue.Updated, nil
}

// AddUpdated adds i to the "updated" field.
func (m *MediaStateMutation) AddUpdated(i int64) {
	if m.addupdated != nil {
		*m.addupdated += i
	} else {
		m.addupdated = &i
	}
}

// AddedUpdated returns the value that was added to the "updated" field in this mutation.
func (m *MediaStateMutation) AddedUpdated() (r int64, exists bool) {
	v := m.addupdated
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpdated resets all changes to the "updated" field.
func (m *MediaStateMutation) ResetUpdated() {
	m.updated = nil
	m.addupdated = nil
}

// SetVia sets the "via" field.
func (m *MediaStateMutation) SetVia(s string) {
	m.via = &s
}

// Via returns the value of the "via" field in the mutation.
func (m *MediaStateMutation) Via() (r string, exists bool) {
	v := m.via
	if v == nil {
		return
	}
	return *v, true
}

// OldVia returns the old "via" field's value of the MediaState entity.
// If the MediaState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaStateMutation) OldVia(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVia is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVia requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVia: %w", err)
	}
	return oldValue.Via, nil
}

// ClearVia clears the value of the "via" field.
func (m *MediaStateMutation) ClearVia() {
	m.via = nil
	m.clearedFields[mediastate.FieldVia] = struct{}{}
}

// ViaCleared returns if the "via" field was cleared in this mutation.
func (m *MediaStateMutation) ViaCleared() bool {
	_, ok := m.clearedFields[mediastate.FieldVia]
	return ok
}

// ResetVia resets all changes to the "via" field.
func (m *MediaStateMutation) ResetVia() {
	m.via = nil
	delete(m.clearedFields, mediastate.FieldVia)
}

// SetGuids sets the "guids" field.
func (m *MediaStateMutation) SetGuids(gu guid.Set) {
	m.guids = &gu
}

// Guids returns the value of the "guids" field in the mutation.
func (m *MediaStateMutation) Guids() (r guid.Set, exists bool) {
	v := m.guids
	if v == nil {
		return
	}
	return *v, true
}

// OldGuids returns the old "guids" field's value of the MediaState entity.
// If the MediaState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaStateMutation) OldGuids(ctx context.Context) (v guid.Set, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGuids is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGuids requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGuids: %w", err)
	}
	return oldValue.Guids, nil
}

// ClearGuids clears the value of the "guids" field.
func (m *MediaStateMutation) ClearGuids() {
	m.guids = nil
	m.clearedFields[mediastate.FieldGuids] = struct{}{}
}

// GuidsCleared returns if the "guids" field was cleared in this mutation.
func (m *MediaStateMutation) GuidsCleared() bool {
	_, ok := m.clearedFields[mediastate.FieldGuids]
	return ok
}

// ResetGuids resets all changes to the "guids" field.
func (m *MediaStateMutation) ResetGuids() {
	m.guids = nil
	delete(m.clearedFields, mediastate.FieldGuids)
}

// SetParentGuids sets the "parent_guids" field.
func (m *MediaStateMutation) SetParentGuids(gu guid.Set) {
	m.parent_guids = &gu
}

// ParentGuids returns the value of the "parent_guids" field in the mutation.
func (m *MediaStateMutation) ParentGuids() (r guid.Set, exists bool) {
	v := m.parent_guids
	if v == nil {
		return
	}
	return *v, true
}

// OldParentGuids returns the old "parent_guids" field's value of the MediaState entity.
// If the MediaState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaStateMutation) OldParentGuids(ctx context.Context) (v guid.Set, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentGuids is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentGuids requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentGuids: %w", err)
	}
	return oldValue.ParentGuids, nil
}

// ClearParentGuids clears the value of the "parent_guids" field.
func (m *MediaStateMutation) ClearParentGuids() {
	m.parent_guids = nil
	m.clearedFields[mediastate.FieldParentGuids] = struct{}{}
}

// ParentGuidsCleared returns if the "parent_guids" field was cleared in this mutation.
func (m *MediaStateMutation) ParentGuidsCleared() bool {
	_, ok := m.clearedFields[mediastate.FieldParentGuids]
	return ok
}

// ResetParentGuids resets all changes to the "parent_guids" field.
func (m *MediaStateMutation) ResetParentGuids() {
	m.parent_guids = nil
	delete(m.clearedFields, mediastate.FieldParentGuids)
}

// SetMetadata sets the "metadata" field.
func (m *MediaStateMutation) SetMetadata(value map[string]entity.Metadata) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *MediaStateMutation) Metadata() (r map[string]entity.Metadata, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the MediaState entity.
// If the MediaState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaStateMutation) OldMetadata(ctx context.Context) (v map[string]entity.Metadata, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *MediaStateMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[mediastate.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *MediaStateMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[mediastate.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *MediaStateMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, mediastate.FieldMetadata)
}

// SetExtra sets the "extra" field.
func (m *MediaStateMutation) SetExtra(value map[string]entity.Extra) {
	m.extra = &value
}

// Extra returns the value of the "extra" field in the mutation.
func (m *MediaStateMutation) Extra() (r map[string]entity.Extra, exists bool) {
	v := m.extra
	if v == nil {
		return
	}
	return *v, true
}

// OldExtra returns the old "extra" field's value of the MediaState entity.
// If the MediaState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaStateMutation) OldExtra(ctx context.Context) (v map[string]entity.Extra, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtra is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtra requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtra: %w", err)
	}
	return oldValue.Extra, nil
}

// ClearExtra clears the value of the "extra" field.
func (m *MediaStateMutation) ClearExtra() {
	m.extra = nil
	m.clearedFields[mediastate.FieldExtra] = struct{}{}
}

// ExtraCleared returns if the "extra" field was cleared in this mutation.
func (m *MediaStateMutation) ExtraCleared() bool {
	_, ok := m.clearedFields[mediastate.FieldExtra]
	return ok
}

// ResetExtra resets all changes to the "extra" field.
func (m *MediaStateMutation) ResetExtra() {
	m.extra = nil
	delete(m.clearedFields, mediastate.FieldExtra)
}

// SetTainted sets the "tainted" field.
func (m *MediaStateMutation) SetTainted(b bool) {
	m.tainted = &b
}

// Tainted returns the value of the "tainted" field in the mutation.
func (m *MediaStateMutation) Tainted() (r bool, exists bool) {
	v := m.tainted
	if v == nil {
		return
	}
	return *v, true
}

// OldTainted returns the old "tainted" field's value of the MediaState entity.
// If the MediaState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaStateMutation) OldTainted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTainted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTainted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTainted: %w", err)
	}
	return oldValue.Tainted, nil
}

// ResetTainted resets all changes to the "tainted" field.
func (m *MediaStateMutation) ResetTainted() {
	m.tainted = nil
}

// SetProgress sets the "progress" field.
func (m *MediaStateMutation) SetProgress(i int64) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *MediaStateMutation) Progress() (r int64, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the MediaState entity.
// If the MediaState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaStateMutation) OldProgress(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *MediaStateMutation) AddProgress(i int64) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *MediaStateMutation) AddedProgress() (r int64, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *MediaStateMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MediaStateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MediaStateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MediaState entity.
// If the MediaState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MediaStateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MediaStateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddPointerIDs adds the "pointers" edge to the GuidPointer entity by ids.
func (m *MediaStateMutation) AddPointerIDs(ids ...int) {
	if m.pointers == nil {
		m.pointers = make(map[int]struct{})
	}
	for i := range ids {
		m.pointers[ids[i]] = struct{}{}
	}
}

// ClearPointers clears the "pointers" edge to the GuidPointer entity.
func (m *MediaStateMutation) ClearPointers() {
	m.clearedpointers = true
}

// PointersCleared reports if the "pointers" edge to the GuidPointer entity was cleared.
func (m *MediaStateMutation) PointersCleared() bool {
	return m.clearedpointers
}

// RemovePointerIDs removes the "pointers" edge to the GuidPointer entity by IDs.
func (m *MediaStateMutation) RemovePointerIDs(ids ...int) {
	if m.removedpointers == nil {
		m.removedpointers = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.pointers, ids[i])
		m.removedpointers[ids[i]] = struct{}{}
	}
}

// RemovedPointers returns the removed IDs of the "pointers" edge to the GuidPointer entity.
func (m *MediaStateMutation) RemovedPointersIDs() (ids []int) {
	for id := range m.removedpointers {
		ids = append(ids, id)
	}
	return
}

// PointersIDs returns the "pointers" edge IDs in the mutation.
func (m *MediaStateMutation) PointersIDs() (ids []int) {
	for id := range m.pointers {
		ids = append(ids, id)
	}
	return
}

// ResetPointers resets all changes to the "pointers" edge.
func (m *MediaStateMutation) ResetPointers() {
	m.pointers = nil
	m.clearedpointers = false
	m.removedpointers = nil
}

// Where appends a list predicates to the MediaStateMutation builder.
func (m *MediaStateMutation) Where(ps ...predicate.MediaState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MediaStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MediaStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MediaState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MediaStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MediaStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MediaState).
func (m *MediaStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MediaStateMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m._type != nil {
		fields = append(fields, mediastate.FieldType)
	}
	if m.title != nil {
		fields = append(fields, mediastate.FieldTitle)
	}
	if m.year != nil {
		fields = append(fields, mediastate.FieldYear)
	}
	if m.season != nil {
		fields = append(fields, mediastate.FieldSeason)
	}
	if m.episode != nil {
		fields = append(fields, mediastate.FieldEpisode)
	}
	if m.watched != nil {
		fields = append(fields, mediastate.FieldWatched)
	}
	if m.updated != nil {
		fields = append(fields, mediastate.FieldUpdated)
	}
	if m.via != nil {
		fields = append(fields, mediastate.FieldVia)
	}
	if m.guids != nil {
		fields = append(fields, mediastate.FieldGuids)
	}
	if m.parent_guids != nil {
		fields = append(fields, mediastate.FieldParentGuids)
	}
	if m.metadata != nil {
		fields = append(fields, mediastate.FieldMetadata)
	}
	if m.extra != nil {
		fields = append(fields, mediastate.FieldExtra)
	}
	if m.tainted != nil {
		fields = append(fields, mediastate.FieldTainted)
	}
	if m.progress != nil {
		fields = append(fields, mediastate.FieldProgress)
	}
	if m.created_at != nil {
		fields = append(fields, mediastate.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MediaStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mediastate.FieldType:
		return m.GetType()
	case mediastate.FieldTitle:
		return m.Title()
	case mediastate.FieldYear:
		return m.Year()
	case mediastate.FieldSeason:
		return m.Season()
	case mediastate.FieldEpisode:
		return m.Episode()
	case mediastate.FieldWatched:
		return m.Watched()
	case mediastate.FieldUpdated:
		return m.Updated()
	case mediastate.FieldVia:
		return m.Via()
	case mediastate.FieldGuids:
		return m.Guids()
	case mediastate.FieldParentGuids:
		return m.ParentGuids()
	case mediastate.FieldMetadata:
		return m.Metadata()
	case mediastate.FieldExtra:
		return m.Extra()
	case mediastate.FieldTainted:
		return m.Tainted()
	case mediastate.FieldProgress:
		return m.Progress()
	case mediastate.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MediaStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mediastate.FieldType:
		return m.OldType(ctx)
	case mediastate.FieldTitle:
		return m.OldTitle(ctx)
	case mediastate.FieldYear:
		return m.OldYear(ctx)
	case mediastate.FieldSeason:
		return m.OldSeason(ctx)
	case mediastate.FieldEpisode:
		return m.OldEpisode(ctx)
	case mediastate.FieldWatched:
		return m.OldWatched(ctx)
	case mediastate.FieldUpdated:
		return m.OldUpdated(ctx)
	case mediastate.FieldVia:
		return m.OldVia(ctx)
	case mediastate.FieldGuids:
		return m.OldGuids(ctx)
	case mediastate.FieldParentGuids:
		return m.OldParentGuids(ctx)
	case mediastate.FieldMetadata:
		return m.OldMetadata(ctx)
	case mediastate.FieldExtra:
		return m.OldExtra(ctx)
	case mediastate.FieldTainted:
		return m.OldTainted(ctx)
	case mediastate.FieldProgress:
		return m.OldProgress(ctx)
	case mediastate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MediaState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MediaStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mediastate.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case mediastate.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case mediastate.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYear(v)
		return nil
	case mediastate.FieldSeason:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeason(v)
		return nil
	case mediastate.FieldEpisode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEpisode(v)
		return nil
	case mediastate.FieldWatched:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWatched(v)
		return nil
	case mediastate.FieldUpdated:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdated(v)
		return nil
	case mediastate.FieldVia:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVia(v)
		return nil
	case mediastate.FieldGuids:
		v, ok := value.(guid.Set)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGuids(v)
		return nil
	case mediastate.FieldParentGuids:
		v, ok := value.(guid.Set)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentGuids(v)
		return nil
	case mediastate.FieldMetadata:
		v, ok := value.(map[string]entity.Metadata)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case mediastate.FieldExtra:
		v, ok := value.(map[string]entity.Extra)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtra(v)
		return nil
	case mediastate.FieldTainted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTainted(v)
		return nil
	case mediastate.FieldProgress:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case mediastate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MediaState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MediaStateMutation) AddedFields() []string {
	var fields []string
	if m.addyear != nil {
		fields = append(fields, mediastate.FieldYear)
	}
	if m.addseason != nil {
		fields = append(fields, mediastate.FieldSeason)
	}
	if m.addepisode != nil {
		fields = append(fields, mediastate.FieldEpisode)
	}
	if m.addupdated != nil {
		fields = append(fields, mediastate.FieldUpdated)
	}
	if m.addprogress != nil {
		fields = append(fields, mediastate.FieldProgress)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MediaStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mediastate.FieldYear:
		return m.AddedYear()
	case mediastate.FieldSeason:
		return m.AddedSeason()
	case mediastate.FieldEpisode:
		return m.AddedEpisode()
	case mediastate.FieldUpdated:
		return m.AddedUpdated()
	case mediastate.FieldProgress:
		return m.AddedProgress()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MediaStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mediastate.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYear(v)
		return nil
	case mediastate.FieldSeason:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeason(v)
		return nil
	case mediastate.FieldEpisode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEpisode(v)
		return nil
	case mediastate.FieldUpdated:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpdated(v)
		return nil
	case mediastate.FieldProgress:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	}
	return fmt.Errorf("unknown MediaState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MediaStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mediastate.FieldVia) {
		fields = append(fields, mediastate.FieldVia)
	}
	if m.FieldCleared(mediastate.FieldGuids) {
		fields = append(fields, mediastate.FieldGuids)
	}
	if m.FieldCleared(mediastate.FieldParentGuids) {
		fields = append(fields, mediastate.FieldParentGuids)
	}
	if m.FieldCleared(mediastate.FieldMetadata) {
		fields = append(fields, mediastate.FieldMetadata)
	}
	if m.FieldCleared(mediastate.FieldExtra) {
		fields = append(fields, mediastate.FieldExtra)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MediaStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MediaStateMutation) ClearField(name string) error {
	switch name {
	case mediastate.FieldVia:
		m.ClearVia()
		return nil
	case mediastate.FieldGuids:
		m.ClearGuids()
		return nil
	case mediastate.FieldParentGuids:
		m.ClearParentGuids()
		return nil
	case mediastate.FieldMetadata:
		m.ClearMetadata()
		return nil
	case mediastate.FieldExtra:
		m.ClearExtra()
		return nil
	}
	return fmt.Errorf("unknown MediaState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MediaStateMutation) ResetField(name string) error {
	switch name {
	case mediastate.FieldType:
		m.ResetType()
		return nil
	case mediastate.FieldTitle:
		m.ResetTitle()
		return nil
	case mediastate.FieldYear:
		m.ResetYear()
		return nil
	case mediastate.FieldSeason:
		m.ResetSeason()
		return nil
	case mediastate.FieldEpisode:
		m.ResetEpisode()
		return nil
	case mediastate.FieldWatched:
		m.ResetWatched()
		return nil
	case mediastate.FieldUpdated:
		m.ResetUpdated()
		return nil
	case mediastate.FieldVia:
		m.ResetVia()
		return nil
	case mediastate.FieldGuids:
		m.ResetGuids()
		return nil
	case mediastate.FieldParentGuids:
		m.ResetParentGuids()
		return nil
	case mediastate.FieldMetadata:
		m.ResetMetadata()
		return nil
	case mediastate.FieldExtra:
		m.ResetExtra()
		return nil
	case mediastate.FieldTainted:
		m.ResetTainted()
		return nil
	case mediastate.FieldProgress:
		m.ResetProgress()
		return nil
	case mediastate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MediaState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MediaStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.pointers != nil {
		edges = append(edges, mediastate.EdgePointers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MediaStateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case mediastate.EdgePointers:
		ids := make([]ent.Value, 0, len(m.pointers))
		for id := range m.pointers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MediaStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedpointers != nil {
		edges = append(edges, mediastate.EdgePointers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MediaStateMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case mediastate.EdgePointers:
		ids := make([]ent.Value, 0, len(m.removedpointers))
		for id := range m.removedpointers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MediaStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpointers {
		edges = append(edges, mediastate.EdgePointers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MediaStateMutation) EdgeCleared(name string) bool {
	switch name {
	case mediastate.EdgePointers:
		return m.clearedpointers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MediaStateMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown MediaState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MediaStateMutation) ResetEdge(name string) error {
	switch name {
	case mediastate.EdgePointers:
		m.ResetPointers()
		return nil
	}
	return fmt.Errorf("unknown MediaState edge %s", name)
}

// ServerMutation represents an operation that mutates the Server nodes in the graph.
type ServerMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	kind          *string
	url           *string
	token         *string
	user_id       *string
	enabled       *bool
	options       *map[string]interface{}
	import_after  *time.Time
	export_after  *time.Time
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Server, error)
	predicates    []predicate.Server
}

var _ ent.Mutation = (*ServerMutation)(nil)

// serverOption allows management of the mutation configuration using functional options.
type serverOption func(*ServerMutation)

// newServerMutation creates new mutation for the Server entity.
func newServerMutation(c config, op Op, opts ...serverOption) *ServerMutation {
	m := &ServerMutation{
		config:        c,
		op:            op,
		typ:           TypeServer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withServerID sets the ID field of the mutation.
func withServerID(id uuid.UUID) serverOption {
	return func(m *ServerMutation) {
		var (
			err   error
			once  sync.Once
			value *Server
		)
		m.oldValue = func(ctx context.Context) (*Server, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Server.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withServer sets the old Server of the mutation.
func withServer(node *Server) serverOption {
	return func(m *ServerMutation) {
		m.oldValue = func(context.Context) (*Server, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ServerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ServerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Server entities.
func (m *ServerMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ServerMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ServerMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Server.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ServerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ServerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ServerMutation) ResetName() {
	m.name = nil
}

// SetKind sets the "kind" field.
func (m *ServerMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ServerMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ServerMutation) ResetKind() {
	m.kind = nil
}

// SetURL sets the "url" field.
func (m *ServerMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *ServerMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *ServerMutation) ResetURL() {
	m.url = nil
}

// SetToken sets the "token" field.
func (m *ServerMutation) SetToken(s string) {
	m.token = &s
}

// Token returns the value of the "token" field in the mutation.
func (m *ServerMutation) Token() (r string, exists bool) {
	v := m.token
	if v == nil {
		return
	}
	return *v, true
}

// OldToken returns the old "token" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToken: %w", err)
	}
	return oldValue.Token, nil
}

// ResetToken resets all changes to the "token" field.
func (m *ServerMutation) ResetToken() {
	m.token = nil
}

// SetUserID sets the "user_id" field.
func (m *ServerMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ServerMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ServerMutation) ResetUserID() {
	m.user_id = nil
}

// SetEnabled sets the "enabled" field.
func (m *ServerMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *ServerMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *ServerMutation) ResetEnabled() {
	m.enabled = nil
}

// SetOptions sets the "options" field.
func (m *ServerMutation) SetOptions(value map[string]interface{}) {
	m.options = &value
}

// Options returns the value of the "options" field in the mutation.
func (m *ServerMutation) Options() (r map[string]interface{}, exists bool) {
	v := m.options
	if v == nil {
		return
	}
	return *v, true
}

// OldOptions returns the old "options" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldOptions(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptions: %w", err)
	}
	return oldValue.Options, nil
}

// ClearOptions clears the value of the "options" field.
func (m *ServerMutation) ClearOptions() {
	m.options = nil
	m.clearedFields[server.FieldOptions] = struct{}{}
}

// OptionsCleared returns if the "options" field was cleared in this mutation.
func (m *ServerMutation) OptionsCleared() bool {
	_, ok := m.clearedFields[server.FieldOptions]
	return ok
}

// ResetOptions resets all changes to the "options" field.
func (m *ServerMutation) ResetOptions() {
	m.options = nil
	delete(m.clearedFields, server.FieldOptions)
}

// SetImportAfter sets the "import_after" field.
func (m *ServerMutation) SetImportAfter(t time.Time) {
	m.import_after = &t
}

// ImportAfter returns the value of the "import_after" field in the mutation.
func (m *ServerMutation) ImportAfter() (r time.Time, exists bool) {
	v := m.import_after
	if v == nil {
		return
	}
	return *v, true
}

// OldImportAfter returns the old "import_after" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldImportAfter(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImportAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImportAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImportAfter: %w", err)
	}
	return oldValue.ImportAfter, nil
}

// ClearImportAfter clears the value of the "import_after" field.
func (m *ServerMutation) ClearImportAfter() {
	m.import_after = nil
	m.clearedFields[server.FieldImportAfter] = struct{}{}
}

// ImportAfterCleared returns if the "import_after" field was cleared in this mutation.
func (m *ServerMutation) ImportAfterCleared() bool {
	_, ok := m.clearedFields[server.FieldImportAfter]
	return ok
}

// ResetImportAfter resets all changes to the "import_after" field.
func (m *ServerMutation) ResetImportAfter() {
	m.import_after = nil
	delete(m.clearedFields, server.FieldImportAfter)
}

// SetExportAfter sets the "export_after" field.
func (m *ServerMutation) SetExportAfter(t time.Time) {
	m.export_after = &t
}

// ExportAfter returns the value of the "export_after" field in the mutation.
func (m *ServerMutation) ExportAfter() (r time.Time, exists bool) {
	v := m.export_after
	if v == nil {
		return
	}
	return *v, true
}

// OldExportAfter returns the old "export_after" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldExportAfter(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExportAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExportAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExportAfter: %w", err)
	}
	return oldValue.ExportAfter, nil
}

// ClearExportAfter clears the value of the "export_after" field.
func (m *ServerMutation) ClearExportAfter() {
	m.export_after = nil
	m.clearedFields[server.FieldExportAfter] = struct{}{}
}

// ExportAfterCleared returns if the "export_after" field was cleared in this mutation.
func (m *ServerMutation) ExportAfterCleared() bool {
	_, ok := m.clearedFields[server.FieldExportAfter]
	return ok
}

// ResetExportAfter resets all changes to the "export_after" field.
func (m *ServerMutation) ResetExportAfter() {
	m.export_after = nil
	delete(m.clearedFields, server.FieldExportAfter)
}

// SetCreatedAt sets the "created_at" field.
func (m *ServerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ServerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ServerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ServerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ServerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Server entity.
// If the Server object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ServerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ServerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ServerMutation builder.
func (m *ServerMutation) Where(ps ...predicate.Server) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ServerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ServerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Server, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ServerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ServerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Server).
func (m *ServerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ServerMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.name != nil {
		fields = append(fields, server.FieldName)
	}
	if m.kind != nil {
		fields = append(fields, server.FieldKind)
	}
	if m.url != nil {
		fields = append(fields, server.FieldURL)
	}
	if m.token != nil {
		fields = append(fields, server.FieldToken)
	}
	if m.user_id != nil {
		fields = append(fields, server.FieldUserID)
	}
	if m.enabled != nil {
		fields = append(fields, server.FieldEnabled)
	}
	if m.options != nil {
		fields = append(fields, server.FieldOptions)
	}
	if m.import_after != nil {
		fields = append(fields, server.FieldImportAfter)
	}
	if m.export_after != nil {
		fields = append(fields, server.FieldExportAfter)
	}
	if m.created_at != nil {
		fields = append(fields, server.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, server.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ServerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case server.FieldName:
		return m.Name()
	case server.FieldKind:
		return m.Kind()
	case server.FieldURL:
		return m.URL()
	case server.FieldToken:
		return m.Token()
	case server.FieldUserID:
		return m.UserID()
	case server.FieldEnabled:
		return m.Enabled()
	case server.FieldOptions:
		return m.Options()
	case server.FieldImportAfter:
		return m.ImportAfter()
	case server.FieldExportAfter:
		return m.ExportAfter()
	case server.FieldCreatedAt:
		return m.CreatedAt()
	case server.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ServerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case server.FieldName:
		return m.OldName(ctx)
	case server.FieldKind:
		return m.OldKind(ctx)
	case server.FieldURL:
		return m.OldURL(ctx)
	case server.FieldToken:
		return m.OldToken(ctx)
	case server.FieldUserID:
		return m.OldUserID(ctx)
	case server.FieldEnabled:
		return m.OldEnabled(ctx)
	case server.FieldOptions:
		return m.OldOptions(ctx)
	case server.FieldImportAfter:
		return m.OldImportAfter(ctx)
	case server.FieldExportAfter:
		return m.OldExportAfter(ctx)
	case server.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case server.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Server field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case server.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case server.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case server.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case server.FieldToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToken(v)
		return nil
	case server.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case server.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case server.FieldOptions:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptions(v)
		return nil
	case server.FieldImportAfter:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImportAfter(v)
		return nil
	case server.FieldExportAfter:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExportAfter(v)
		return nil
	case server.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case server.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Server field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ServerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ServerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ServerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Server numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ServerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(server.FieldOptions) {
		fields = append(fields, server.FieldOptions)
	}
	if m.FieldCleared(server.FieldImportAfter) {
		fields = append(fields, server.FieldImportAfter)
	}
	if m.FieldCleared(server.FieldExportAfter) {
		fields = append(fields, server.FieldExportAfter)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ServerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ServerMutation) ClearField(name string) error {
	switch name {
	case server.FieldOptions:
		m.ClearOptions()
		return nil
	case server.FieldImportAfter:
		m.ClearImportAfter()
		return nil
	case server.FieldExportAfter:
		m.ClearExportAfter()
		return nil
	}
	return fmt.Errorf("unknown Server nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ServerMutation) ResetField(name string) error {
	switch name {
	case server.FieldName:
		m.ResetName()
		return nil
	case server.FieldKind:
		m.ResetKind()
		return nil
	case server.FieldURL:
		m.ResetURL()
		return nil
	case server.FieldToken:
		m.ResetToken()
		return nil
	case server.FieldUserID:
		m.ResetUserID()
		return nil
	case server.FieldEnabled:
		m.ResetEnabled()
		return nil
	case server.FieldOptions:
		m.ResetOptions()
		return nil
	case server.FieldImportAfter:
		m.ResetImportAfter()
		return nil
	case server.FieldExportAfter:
		m.ResetExportAfter()
		return nil
	case server.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case server.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Server field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ServerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ServerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ServerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ServerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ServerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ServerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ServerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Server unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ServerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Server edge %s", name)
}
