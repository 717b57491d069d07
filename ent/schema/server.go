package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Server represents one configured media server taking part in sync.
type Server struct {
	ent.Schema
}

func (Server) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		// The name keys per-backend metadata slots on media states, so
		// renaming a server orphans its history.
		field.String("name").
			Unique().
			NotEmpty(),
		field.String("kind").
			NotEmpty().
			Comment("Server product family: plex, jellyfin or emby."),
		field.String("url").
			NotEmpty().
			Comment("Base URL of the server, e.g. https://media.example.com"),
		field.String("token").
			Sensitive().
			NotEmpty(),
		// The account whose play-state is synced, in the server's native
		// user-id format.
		field.String("user_id").
			NotEmpty(),
		field.Bool("enabled").
			Default(true),
		// Sync behaviour knobs, stored as the backend options document.
		field.JSON("options", map[string]any{}).
			Optional(),
		// Last successful import/export checkpoints. Absent until the first
		// clean run; a run that records errors never advances them.
		field.Time("import_after").
			Optional().
			Nillable(),
		field.Time("export_after").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
