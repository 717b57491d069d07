// Code generated by ent, DO NOT EDIT.

package mediastate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ddevcap/watchsync/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MediaState {
	return predicate.MediaState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MediaState {
	return predicate.MediaState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MediaState {
	return predicate.MediaState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MediaState {
	return predicate.MediaState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MediaState {
	return predicate.MediaState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MediaState {
	return predicate.MediaState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MediaState {
	return predicate.MediaState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MediaState {
	return predicate.MediaState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MediaState {
	return predicate.MediaState(sql.FieldLTE(FieldID, id))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldEQ(FieldType, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldEQ(FieldTitle, v))
}

// Year applies equality check predicate on the "year" field. It's identical to YearEQ.
func Year(v int) predicate.MediaState {
	return predicate.MediaState(sql.FieldEQ(FieldYear, v))
}

// Season applies equality check predicate on the "season" field. It's identical to SeasonEQ.
func Season(v int) predicate.MediaState {
	return predicate.MediaState(sql.FieldEQ(FieldSeason, v))
}

// Episode applies equality check predicate on the "episode" field. It's identical to EpisodeEQ.
func Episode(v int) predicate.MediaState {
	return predicate.MediaState(sql.FieldEQ(FieldEpisode, v))
}

// Watched applies equality check predicate on the "watched" field. It's identical to WatchedEQ.
func Watched(v bool) predicate.MediaState {
	return predicate.MediaState(sql.FieldEQ(FieldWatched, v))
}

// Updated applies equality check predicate on the "updated" field. It's identical to UpdatedEQ.
func Updated(v int64) predicate.MediaState {
	return predicate.MediaState(sql.FieldEQ(FieldUpdated, v))
}

// Via applies equality check predicate on the "via" field. It's identical to ViaEQ.
func Via(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldEQ(FieldVia, v))
}

// Tainted applies equality check predicate on the "tainted" field. It's identical to TaintedEQ.
func Tainted(v bool) predicate.MediaState {
	return predicate.MediaState(sql.FieldEQ(FieldTainted, v))
}

// Progress applies equality check predicate on the "progress" field. It's identical to ProgressEQ.
func Progress(v int64) predicate.MediaState {
	return predicate.MediaState(sql.FieldEQ(FieldProgress, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MediaState {
	return predicate.MediaState(sql.FieldEQ(FieldCreatedAt, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.MediaState {
	return predicate.MediaState(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.MediaState {
	return predicate.MediaState(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldContainsFold(FieldType, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.MediaState {
	return predicate.MediaState(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.MediaState {
	return predicate.MediaState(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldContainsFold(FieldTitle, v))
}

// YearEQ applies the EQ predicate on the "year" field.
func YearEQ(v int) predicate.MediaState {
	return predicate.MediaState(sql.FieldEQ(FieldYear, v))
}

// YearNEQ applies the NEQ predicate on the "year" field.
func YearNEQ(v int) predicate.MediaState {
	return predicate.MediaState(sql.FieldNEQ(FieldYear, v))
}

// YearIn applies the In predicate on the "year" field.
func YearIn(vs ...int) predicate.MediaState {
	return predicate.MediaState(sql.FieldIn(FieldYear, vs...))
}

// YearNotIn applies the NotIn predicate on the "year" field.
func YearNotIn(vs ...int) predicate.MediaState {
	return predicate.MediaState(sql.FieldNotIn(FieldYear, vs...))
}

// YearGT applies the GT predicate on the "year" field.
func YearGT(v int) predicate.MediaState {
	return predicate.MediaState(sql.FieldGT(FieldYear, v))
}

// YearGTE applies the GTE predicate on the "year" field.
func YearGTE(v int) predicate.MediaState {
	return predicate.MediaState(sql.FieldGTE(FieldYear, v))
}

// YearLT applies the LT predicate on the "year" field.
func YearLT(v int) predicate.MediaState {
	return predicate.MediaState(sql.FieldLT(FieldYear, v))
}

// YearLTE applies the LTE predicate on the "year" field.
func YearLTE(v int) predicate.MediaState {
	return predicate.MediaState(sql.FieldLTE(FieldYear, v))
}

// SeasonEQ applies the EQ predicate on the "season" field.
func SeasonEQ(v int) predicate.MediaState {
	return predicate.MediaState(sql.FieldEQ(FieldSeason, v))
}

// SeasonNEQ applies the NEQ predicate on the "season" field.
func SeasonNEQ(v int) predicate.MediaState {
	return predicate.MediaState(sql.FieldNEQ(FieldSeason, v))
}

// SeasonIn applies the In predicate on the "season" field.
func SeasonIn(vs ...int) predicate.MediaState {
	return predicate.MediaState(sql.FieldIn(FieldSeason, vs...))
}

// SeasonNotIn applies the NotIn predicate on the "season" field.
func SeasonNotIn(vs ...int) predicate.MediaState {
	return predicate.MediaState(sql.FieldNotIn(FieldSeason, vs...))
}

// SeasonGT applies the GT predicate on the "season" field.
func SeasonGT(v int) predicate.MediaState {
	return predicate.MediaState(sql.FieldGT(FieldSeason, v))
}

// SeasonGTE applies the GTE predicate on the "season" field.
func SeasonGTE(v int) predicate.MediaState {
	return predicate.MediaState(sql.FieldGTE(FieldSeason, v))
}

// SeasonLT applies the LT predicate on the "season" field.
func SeasonLT(v int) predicate.MediaState {
	return predicate.MediaState(sql.FieldLT(FieldSeason, v))
}

// SeasonLTE applies the LTE predicate on the "season" field.
func SeasonLTE(v int) predicate.MediaState {
	return predicate.MediaState(sql.FieldLTE(FieldSeason, v))
}

// EpisodeEQ applies the EQ predicate on the "episode" field.
func EpisodeEQ(v int) predicate.MediaState {
	return predicate.MediaState(sql.FieldEQ(FieldEpisode, v))
}

// EpisodeNEQ applies the NEQ predicate on the "episode" field.
func EpisodeNEQ(v int) predicate.MediaState {
	return predicate.MediaState(sql.FieldNEQ(FieldEpisode, v))
}

// EpisodeIn applies the In predicate on the "episode" field.
func EpisodeIn(vs ...int) predicate.MediaState {
	return predicate.MediaState(sql.FieldIn(FieldEpisode, vs...))
}

// EpisodeNotIn applies the NotIn predicate on the "episode" field.
func EpisodeNotIn(vs ...int) predicate.MediaState {
	return predicate.MediaState(sql.FieldNotIn(FieldEpisode, vs...))
}

// EpisodeGT applies the GT predicate on the "episode" field.
func EpisodeGT(v int) predicate.MediaState {
	return predicate.MediaState(sql.FieldGT(FieldEpisode, v))
}

// EpisodeGTE applies the GTE predicate on the "episode" field.
func EpisodeGTE(v int) predicate.MediaState {
	return predicate.MediaState(sql.FieldGTE(FieldEpisode, v))
}

// EpisodeLT applies the LT predicate on the "episode" field.
func EpisodeLT(v int) predicate.MediaState {
	return predicate.MediaState(sql.FieldLT(FieldEpisode, v))
}

// EpisodeLTE applies the LTE predicate on the "episode" field.
func EpisodeLTE(v int) predicate.MediaState {
	return predicate.MediaState(sql.FieldLTE(FieldEpisode, v))
}

// WatchedEQ applies the EQ predicate on the "watched" field.
func WatchedEQ(v bool) predicate.MediaState {
	return predicate.MediaState(sql.FieldEQ(FieldWatched, v))
}

// WatchedNEQ applies the NEQ predicate on the "watched" field.
func WatchedNEQ(v bool) predicate.MediaState {
	return predicate.MediaState(sql.FieldNEQ(FieldWatched, v))
}

// UpdatedEQ applies the EQ predicate on the "updated" field.
func UpdatedEQ(v int64) predicate.MediaState {
	return predicate.MediaState(sql.FieldEQ(FieldUpdated, v))
}

// UpdatedNEQ applies the NEQ predicate on the "updated" field.
func UpdatedNEQ(v int64) predicate.MediaState {
	return predicate.MediaState(sql.FieldNEQ(FieldUpdated, v))
}

// UpdatedIn applies the In predicate on the "updated" field.
func UpdatedIn(vs ...int64) predicate.MediaState {
	return predicate.MediaState(sql.FieldIn(FieldUpdated, vs...))
}

// UpdatedNotIn applies the NotIn predicate on the "updated" field.
func UpdatedNotIn(vs ...int64) predicate.MediaState {
	return predicate.MediaState(sql.FieldNotIn(FieldUpdated, vs...))
}

// UpdatedGT applies the GT predicate on the "updated" field.
func UpdatedGT(v int64) predicate.MediaState {
	return predicate.MediaState(sql.FieldGT(FieldUpdated, v))
}

// UpdatedGTE applies the GTE predicate on the "updated" field.
func UpdatedGTE(v int64) predicate.MediaState {
	return predicate.MediaState(sql.FieldGTE(FieldUpdated, v))
}

// UpdatedLT applies the LT predicate on the "updated" field.
func UpdatedLT(v int64) predicate.MediaState {
	return predicate.MediaState(sql.FieldLT(FieldUpdated, v))
}

// UpdatedLTE applies the LTE predicate on the "updated" field.
func UpdatedLTE(v int64) predicate.MediaState {
	return predicate.MediaState(sql.FieldLTE(FieldUpdated, v))
}

// ViaEQ applies the EQ predicate on the "via" field.
func ViaEQ(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldEQ(FieldVia, v))
}

// ViaNEQ applies the NEQ predicate on the "via" field.
func ViaNEQ(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldNEQ(FieldVia, v))
}

// ViaIn applies the In predicate on the "via" field.
func ViaIn(vs ...string) predicate.MediaState {
	return predicate.MediaState(sql.FieldIn(FieldVia, vs...))
}

// ViaNotIn applies the NotIn predicate on the "via" field.
func ViaNotIn(vs ...string) predicate.MediaState {
	return predicate.MediaState(sql.FieldNotIn(FieldVia, vs...))
}

// ViaGT applies the GT predicate on the "via" field.
func ViaGT(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldGT(FieldVia, v))
}

// ViaGTE applies the GTE predicate on the "via" field.
func ViaGTE(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldGTE(FieldVia, v))
}

// ViaLT applies the LT predicate on the "via" field.
func ViaLT(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldLT(FieldVia, v))
}

// ViaLTE applies the LTE predicate on the "via" field.
func ViaLTE(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldLTE(FieldVia, v))
}

// ViaContains applies the Contains predicate on the "via" field.
func ViaContains(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldContains(FieldVia, v))
}

// ViaHasPrefix applies the HasPrefix predicate on the "via" field.
func ViaHasPrefix(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldHasPrefix(FieldVia, v))
}

// ViaHasSuffix applies the HasSuffix predicate on the "via" field.
func ViaHasSuffix(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldHasSuffix(FieldVia, v))
}

// ViaIsNil applies the IsNil predicate on the "via" field.
func ViaIsNil() predicate.MediaState {
	return predicate.MediaState(sql.FieldIsNull(FieldVia))
}

// ViaNotNil applies the NotNil predicate on the "via" field.
func ViaNotNil() predicate.MediaState {
	return predicate.MediaState(sql.FieldNotNull(FieldVia))
}

// ViaEqualFold applies the EqualFold predicate on the "via" field.
func ViaEqualFold(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldEqualFold(FieldVia, v))
}

// ViaContainsFold applies the ContainsFold predicate on the "via" field.
func ViaContainsFold(v string) predicate.MediaState {
	return predicate.MediaState(sql.FieldContainsFold(FieldVia, v))
}

// GuidsIsNil applies the IsNil predicate on the "guids" field.
func GuidsIsNil() predicate.MediaState {
	return predicate.MediaState(sql.FieldIsNull(FieldGuids))
}

// GuidsNotNil applies the NotNil predicate on the "guids" field.
func GuidsNotNil() predicate.MediaState {
	return predicate.MediaState(sql.FieldNotNull(FieldGuids))
}

// ParentGuidsIsNil applies the IsNil predicate on the "parent_guids" field.
func ParentGuidsIsNil() predicate.MediaState {
	return predicate.MediaState(sql.FieldIsNull(FieldParentGuids))
}

// ParentGuidsNotNil applies the NotNil predicate on the "parent_guids" field.
func ParentGuidsNotNil() predicate.MediaState {
	return predicate.MediaState(sql.FieldNotNull(FieldParentGuids))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.MediaState {
	return predicate.MediaState(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.MediaState {
	return predicate.MediaState(sql.FieldNotNull(FieldMetadata))
}

// ExtraIsNil applies the IsNil predicate on the "extra" field.
func ExtraIsNil() predicate.MediaState {
	return predicate.MediaState(sql.FieldIsNull(FieldExtra))
}

// ExtraNotNil applies the NotNil predicate on the "extra" field.
func ExtraNotNil() predicate.MediaState {
	return predicate.MediaState(sql.FieldNotNull(FieldExtra))
}

// TaintedEQ applies the EQ predicate on the "tainted" field.
func TaintedEQ(v bool) predicate.MediaState {
	return predicate.MediaState(sql.FieldEQ(FieldTainted, v))
}

// TaintedNEQ applies the NEQ predicate on the "tainted" field.
func TaintedNEQ(v bool) predicate.MediaState {
	return predicate.MediaState(sql.FieldNEQ(FieldTainted, v))
}

// ProgressEQ applies the EQ predicate on the "progress" field.
func ProgressEQ(v int64) predicate.MediaState {
	return predicate.MediaState(sql.FieldEQ(FieldProgress, v))
}

// ProgressNEQ applies the NEQ predicate on the "progress" field.
func ProgressNEQ(v int64) predicate.MediaState {
	return predicate.MediaState(sql.FieldNEQ(FieldProgress, v))
}

// ProgressIn applies the In predicate on the "progress" field.
func ProgressIn(vs ...int64) predicate.MediaState {
	return predicate.MediaState(sql.FieldIn(FieldProgress, vs...))
}

// ProgressNotIn applies the NotIn predicate on the "progress" field.
func ProgressNotIn(vs ...int64) predicate.MediaState {
	return predicate.MediaState(sql.FieldNotIn(FieldProgress, vs...))
}

// ProgressGT applies the GT predicate on the "progress" field.
func ProgressGT(v int64) predicate.MediaState {
	return predicate.MediaState(sql.FieldGT(FieldProgress, v))
}

// ProgressGTE applies the GTE predicate on the "progress" field.
func ProgressGTE(v int64) predicate.MediaState {
	return predicate.MediaState(sql.FieldGTE(FieldProgress, v))
}

// ProgressLT applies the LT predicate on the "progress" field.
func ProgressLT(v int64) predicate.MediaState {
	return predicate.MediaState(sql.FieldLT(FieldProgress, v))
}

// ProgressLTE applies the LTE predicate on the "progress" field.
func ProgressLTE(v int64) predicate.MediaState {
	return predicate.MediaState(sql.FieldLTE(FieldProgress, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MediaState {
	return predicate.MediaState(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MediaState {
	return predicate.MediaState(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MediaState {
	return predicate.MediaState(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MediaState {
	return predicate.MediaState(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MediaState {
	return predicate.MediaState(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MediaState {
	return predicate.MediaState(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MediaState {
	return predicate.MediaState(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MediaState {
	return predicate.MediaState(sql.FieldLTE(FieldCreatedAt, v))
}

// HasPointers applies the HasEdge predicate on the "pointers" edge.
func HasPointers() predicate.MediaState {
	return predicate.MediaState(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PointersTable, PointersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPointersWith applies the HasEdge predicate on the "pointers" edge with a given conditions (other predicates).
func HasPointersWith(preds ...predicate.GuidPointer) predicate.MediaState {
	return predicate.MediaState(func(s *sql.Selector) {
		step := newPointersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MediaState) predicate.MediaState {
	return predicate.MediaState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MediaState) predicate.MediaState {
	return predicate.MediaState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MediaState) predicate.MediaState {
	return predicate.MediaState(sql.NotPredicates(p))
}
