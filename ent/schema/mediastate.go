package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/ddevcap/watchsync/entity"
	"github.com/ddevcap/watchsync/guid"
)

// MediaState is the canonical watch-state record for one movie or episode,
// merged across every server that has observed it.
type MediaState struct {
	ent.Schema
}

func (MediaState) Fields() []ent.Field {
	return []ent.Field{
		field.String("type").
			NotEmpty().
			Comment("movie or episode"),
		field.String("title").
			NotEmpty(),
		field.Int("year").
			Default(0),
		field.Int("season").
			Default(0),
		field.Int("episode").
			Default(0),
		field.Bool("watched").
			Default(false),
		// Unix seconds of the last known play-state change. Kept as an
		// integer because it is compared, not displayed.
		field.Int64("updated").
			Default(0),
		field.String("via").
			Optional().
			Comment("Server the current state arrived from."),
		field.JSON("guids", guid.Set{}).
			Optional(),
		field.JSON("parent_guids", guid.Set{}).
			Optional(),
		field.JSON("metadata", map[string]entity.Metadata{}).
			Optional(),
		field.JSON("extra", map[string]entity.Extra{}).
			Optional(),
		field.Bool("tainted").
			Default(false),
		field.Int64("progress").
			Default(0).
			Comment("Playback offset in milliseconds."),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (MediaState) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("pointers", GuidPointer.Type),
	}
}

func (MediaState) Indexes() []ent.Index {
	return []ent.Index{
		// Delta loads filter on the change timestamp.
		index.Fields("updated"),
	}
}
