// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// GuidPointer is the predicate function for guidpointer builders.
type GuidPointer func(*sql.Selector)

// MediaState is the predicate function for mediastate builders.
type MediaState func(*sql.Selector)

// Server is the predicate function for server builders.
type Server func(*sql.Selector)
