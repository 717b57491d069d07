// Code generated by ent, DO NOT EDIT.

package guidpointer

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ddevcap/watchsync/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GuidPointer {
	return predicate.GuidPointer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GuidPointer {
	return predicate.GuidPointer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GuidPointer {
	return predicate.GuidPointer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GuidPointer {
	return predicate.GuidPointer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GuidPointer {
	return predicate.GuidPointer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GuidPointer {
	return predicate.GuidPointer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GuidPointer {
	return predicate.GuidPointer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GuidPointer {
	return predicate.GuidPointer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GuidPointer {
	return predicate.GuidPointer(sql.FieldLTE(FieldID, id))
}

// Pointer applies equality check predicate on the "pointer" field. It's identical to PointerEQ.
func Pointer(v string) predicate.GuidPointer {
	return predicate.GuidPointer(sql.FieldEQ(FieldPointer, v))
}

// PointerEQ applies the EQ predicate on the "pointer" field.
func PointerEQ(v string) predicate.GuidPointer {
	return predicate.GuidPointer(sql.FieldEQ(FieldPointer, v))
}

// PointerNEQ applies the NEQ predicate on the "pointer" field.
func PointerNEQ(v string) predicate.GuidPointer {
	return predicate.GuidPointer(sql.FieldNEQ(FieldPointer, v))
}

// PointerIn applies the In predicate on the "pointer" field.
func PointerIn(vs ...string) predicate.GuidPointer {
	return predicate.GuidPointer(sql.FieldIn(FieldPointer, vs...))
}

// PointerNotIn applies the NotIn predicate on the "pointer" field.
func PointerNotIn(vs ...string) predicate.GuidPointer {
	return predicate.GuidPointer(sql.FieldNotIn(FieldPointer, vs...))
}

// PointerGT applies the GT predicate on the "pointer" field.
func PointerGT(v string) predicate.GuidPointer {
	return predicate.GuidPointer(sql.FieldGT(FieldPointer, v))
}

// PointerGTE applies the GTE predicate on the "pointer" field.
func PointerGTE(v string) predicate.GuidPointer {
	return predicate.GuidPointer(sql.FieldGTE(FieldPointer, v))
}

// PointerLT applies the LT predicate on the "pointer" field.
func PointerLT(v string) predicate.GuidPointer {
	return predicate.GuidPointer(sql.FieldLT(FieldPointer, v))
}

// PointerLTE applies the LTE predicate on the "pointer" field.
func PointerLTE(v string) predicate.GuidPointer {
	return predicate.GuidPointer(sql.FieldLTE(FieldPointer, v))
}

// PointerContains applies the Contains predicate on the "pointer" field.
func PointerContains(v string) predicate.GuidPointer {
	return predicate.GuidPointer(sql.FieldContains(FieldPointer, v))
}

// PointerHasPrefix applies the HasPrefix predicate on the "pointer" field.
func PointerHasPrefix(v string) predicate.GuidPointer {
	return predicate.GuidPointer(sql.FieldHasPrefix(FieldPointer, v))
}

// PointerHasSuffix applies the HasSuffix predicate on the "pointer" field.
func PointerHasSuffix(v string) predicate.GuidPointer {
	return predicate.GuidPointer(sql.FieldHasSuffix(FieldPointer, v))
}

// PointerEqualFold applies the EqualFold predicate on the "pointer" field.
func PointerEqualFold(v string) predicate.GuidPointer {
	return predicate.GuidPointer(sql.FieldEqualFold(FieldPointer, v))
}

// PointerContainsFold applies the ContainsFold predicate on the "pointer" field.
func PointerContainsFold(v string) predicate.GuidPointer {
	return predicate.GuidPointer(sql.FieldContainsFold(FieldPointer, v))
}

// HasState applies the HasEdge predicate on the "state" edge.
func HasState() predicate.GuidPointer {
	return predicate.GuidPointer(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StateTable, StateColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStateWith applies the HasEdge predicate on the "state" edge with a given conditions (other predicates).
func HasStateWith(preds ...predicate.MediaState) predicate.GuidPointer {
	return predicate.GuidPointer(func(s *sql.Selector) {
		step := newStateStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GuidPointer) predicate.GuidPointer {
	return predicate.GuidPointer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GuidPointer) predicate.GuidPointer {
	return predicate.GuidPointer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GuidPointer) predicate.GuidPointer {
	return predicate.GuidPointer(sql.NotPredicates(p))
}
