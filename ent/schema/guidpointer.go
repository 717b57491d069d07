package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GuidPointer is one lookup key for a media state: a universal
// "namespace://value" pointer, or a backend-relative one derived from a
// show's identity plus season and episode. The side table is what makes
// identity resolution a single indexed query instead of a JSON scan.
type GuidPointer struct {
	ent.Schema
}

func (GuidPointer) Fields() []ent.Field {
	return []ent.Field{
		field.String("pointer").
			NotEmpty(),
	}
}

func (GuidPointer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("state", MediaState.Type).
			Ref("pointers").
			Unique().
			Required(),
	}
}

func (GuidPointer) Indexes() []ent.Index {
	return []ent.Index{
		// Every identity lookup resolves through this index. Not unique:
		// distinct records may briefly share a pointer while a merge is
		// pending.
		index.Fields("pointer"),
	}
}
