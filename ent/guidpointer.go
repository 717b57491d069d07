// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ddevcap/watchsync/ent/guidpointer"
	"github.com/ddevcap/watchsync/ent/mediastate"
)

// GuidPointer is the model entity for the GuidPointer schema.
type GuidPointer struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Pointer holds the value of the "pointer" field.
	Pointer string `json:"pointer,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GuidPointerQuery when eager-loading is set.
	Edges                GuidPointerEdges `json:"edges"`
	media_state_pointers *int
	selectValues         sql.SelectValues
}

// GuidPointerEdges holds the relations/edges for other nodes in the graph.
type GuidPointerEdges struct {
	// State holds the value of the state edge.
	State *MediaState `json:"state,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StateOrErr returns the State value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GuidPointerEdges) StateOrErr() (*MediaState, error) {
	if e.State != nil {
		return e.State, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: mediastate.Label}
	}
	return nil, &NotLoadedError{edge: "state"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GuidPointer) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case guidpointer.FieldID:
			values[i] = new(sql.NullInt64)
		case guidpointer.FieldPointer:
			values[i] = new(sql.NullString)
		case guidpointer.ForeignKeys[0]: // media_state_pointers
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GuidPointer fields.
func (_m *GuidPointer) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case guidpointer.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case guidpointer.FieldPointer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pointer", values[i])
			} else if value.Valid {
				_m.Pointer = value.String
			}
		case guidpointer.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field media_state_pointers", value)
			} else if value.Valid {
				_m.media_state_pointers = new(int)
				*_m.media_state_pointers = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GuidPointer.
// This includes values selected through modifiers, order, etc.
func (_m *GuidPointer) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryState queries the "state" edge of the GuidPointer entity.
func (_m *GuidPointer) QueryState() *MediaStateQuery {
	return NewGuidPointerClient(_m.config).QueryState(_m)
}

// Update returns a builder for updating this GuidPointer.
// Note that you need to call GuidPointer.Unwrap() before calling this method if this GuidPointer
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GuidPointer) Update() *GuidPointerUpdateOne {
	return NewGuidPointerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GuidPointer entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GuidPointer) Unwrap() *GuidPointer {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GuidPointer is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GuidPointer) String() string {
	var builder strings.Builder
	builder.WriteString("GuidPointer(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pointer=")
	builder.WriteString(_m.Pointer)
	builder.WriteByte(')')
	return builder.String()
}

// GuidPointers is a parsable slice of GuidPointer.
type GuidPointers []*GuidPointer
