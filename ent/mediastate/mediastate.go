// Code generated by ent, DO NOT EDIT.

package mediastate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the mediastate type in the database.
	Label = "media_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldYear holds the string denoting the year field in the database.
	FieldYear = "year"
	// FieldSeason holds the string denoting the season field in the database.
	FieldSeason = "season"
	// FieldEpisode holds the string denoting the episode field in the database.
	FieldEpisode = "episode"
	// FieldWatched holds the string denoting the watched field in the database.
	FieldWatched = "watched"
	// FieldUpdated holds the string denoting the updated field in the database.
	FieldUpdated = "updated"
	// FieldVia holds the string denoting the via field in the database.
	FieldVia = "via"
	// FieldGuids holds the string denoting the guids field in the database.
	FieldGuids = "guids"
	// FieldParentGuids holds the string denoting the parent_guids field in the database.
	FieldParentGuids = "parent_guids"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldExtra holds the string denoting the extra field in the database.
	FieldExtra = "extra"
	// FieldTainted holds the string denoting the tainted field in the database.
	FieldTainted = "tainted"
	// FieldProgress holds the string denoting the progress field in the database.
	FieldProgress = "progress"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgePointers holds the string denoting the pointers edge name in mutations.
	EdgePointers = "pointers"
	// Table holds the table name of the mediastate in the database.
	Table = "media_states"
	// PointersTable is the table that holds the pointers relation/edge.
	PointersTable = "guid_pointers"
	// PointersInverseTable is the table name for the GuidPointer entity.
	// It exists in this package in order to avoid circular dependency with the "guidpointer" package.
	PointersInverseTable = "guid_pointers"
	// PointersColumn is the table column denoting the pointers relation/edge.
	PointersColumn = "media_state_pointers"
)

// Columns holds all SQL columns for mediastate fields.
var Columns = []string{
	FieldID,
	FieldType,
	FieldTitle,
	FieldYear,
	FieldSeason,
	FieldEpisode,
	FieldWatched,
	FieldUpdated,
	FieldVia,
	FieldGuids,
	FieldParentGuids,
	FieldMetadata,
	FieldExtra,
	FieldTainted,
	FieldProgress,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TypeValidator is a validator for the "type" field. It is called by the builders before save.
	TypeValidator func(string) error
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultYear holds the default value on creation for the "year" field.
	DefaultYear int
	// DefaultSeason holds the default value on creation for the "season" field.
	DefaultSeason int
	// DefaultEpisode holds the default value on creation for the "episode" field.
	DefaultEpisode int
	// DefaultWatched holds the default value on creation for the "watched" field.
	DefaultWatched bool
	// DefaultUpdated holds the default value on creation for the "updated" field.
	DefaultUpdated int64
	// DefaultTainted holds the default value on creation for the "tainted" field.
	DefaultTainted bool
	// DefaultProgress holds the default value on creation for the "progress" field.
	DefaultProgress int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the MediaState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByYear orders the results by the year field.
func ByYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYear, opts...).ToFunc()
}

// BySeason orders the results by the season field.
func BySeason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeason, opts...).ToFunc()
}

// ByEpisode orders the results by the episode field.
func ByEpisode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEpisode, opts...).ToFunc()
}

// ByWatched orders the results by the watched field.
func ByWatched(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWatched, opts...).ToFunc()
}

// ByUpdated orders the results by the updated field.
func ByUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdated, opts...).ToFunc()
}

// ByVia orders the results by the via field.
func ByVia(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVia, opts...).ToFunc()
}

// ByTainted orders the results by the tainted field.
func ByTainted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTainted, opts...).ToFunc()
}

// ByProgress orders the results by the progress field.
func ByProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgress, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPointersCount orders the results by pointers count.
func ByPointersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPointersStep(), opts...)
	}
}

// ByPointers orders the results by pointers terms.
func ByPointers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPointersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPointersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PointersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PointersTable, PointersColumn),
	)
}
