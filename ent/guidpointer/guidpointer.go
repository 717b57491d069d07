// Code generated by ent, DO NOT EDIT.

package guidpointer

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the guidpointer type in the database.
	Label = "guid_pointer"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPointer holds the string denoting the pointer field in the database.
	FieldPointer = "pointer"
	// EdgeState holds the string denoting the state edge name in mutations.
	EdgeState = "state"
	// Table holds the table name of the guidpointer in the database.
	Table = "guid_pointers"
	// StateTable is the table that holds the state relation/edge.
	StateTable = "guid_pointers"
	// StateInverseTable is the table name for the MediaState entity.
	// It exists in this package in order to avoid circular dependency with the "mediastate" package.
	StateInverseTable = "media_states"
	// StateColumn is the table column denoting the state relation/edge.
	StateColumn = "media_state_pointers"
)

// Columns holds all SQL columns for guidpointer fields.
var Columns = []string{
	FieldID,
	FieldPointer,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "guid_pointers"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"media_state_pointers",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// PointerValidator is a validator for the "pointer" field. It is called by the builders before save.
	PointerValidator func(string) error
)

// OrderOption defines the ordering options for the GuidPointer queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPointer orders the results by the pointer field.
func ByPointer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPointer, opts...).ToFunc()
}

// ByStateField orders the results by state field.
func ByStateField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStateStep(), sql.OrderByField(field, opts...))
	}
}
func newStateStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StateInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, StateTable, StateColumn),
	)
}
