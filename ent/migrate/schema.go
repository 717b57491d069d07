// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GUIDPointersColumns holds the columns for the "guid_pointers" table.
	GUIDPointersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "pointer", Type: field.TypeString},
		{Name: "media_state_pointers", Type: field.TypeInt},
	}
	// GUIDPointersTable holds the schema information for the "guid_pointers" table.
	GUIDPointersTable = &schema.Table{
		Name:       "guid_pointers",
		Columns:    GUIDPointersColumns,
		PrimaryKey: []*schema.Column{GUIDPointersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "guid_pointers_media_states_pointers",
				Columns:    []*schema.Column{GUIDPointersColumns[2]},
				RefColumns: []*schema.Column{MediaStatesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "guidpointer_pointer",
				Unique:  false,
				Columns: []*schema.Column{GUIDPointersColumns[1]},
			},
		},
	}
	// MediaStatesColumns holds the columns for the "media_states" table.
	MediaStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "type", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "year", Type: field.TypeInt, Default: 0},
		{Name: "season", Type: field.TypeInt, Default: 0},
		{Name: "episode", Type: field.TypeInt, Default: 0},
		{Name: "watched", Type: field.TypeBool, Default: false},
		{Name: "updated", Type: field.TypeInt64, Default: 0},
		{Name: "via", Type: field.TypeString, Nullable: true},
		{Name: "guids", Type: field.TypeJSON, Nullable: true},
		{Name: "parent_guids", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "extra", Type: field.TypeJSON, Nullable: true},
		{Name: "tainted", Type: field.TypeBool, Default: false},
		{Name: "progress", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MediaStatesTable holds the schema information for the "media_states" table.
	MediaStatesTable = &schema.Table{
		Name:       "media_states",
		Columns:    MediaStatesColumns,
		PrimaryKey: []*schema.Column{MediaStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mediastate_updated",
				Unique:  false,
				Columns: []*schema.Column{MediaStatesColumns[7]},
			},
		},
	}
	// ServersColumns holds the columns for the "servers" table.
	ServersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "url", Type: field.TypeString},
		{Name: "token", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "import_after", Type: field.TypeTime, Nullable: true},
		{Name: "export_after", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ServersTable holds the schema information for the "servers" table.
	ServersTable = &schema.Table{
		Name:       "servers",
		Columns:    ServersColumns,
		PrimaryKey: []*schema.Column{ServersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GUIDPointersTable,
		MediaStatesTable,
		ServersTable,
	}
)

func init() {
	GUIDPointersTable.ForeignKeys[0].RefTable = MediaStatesTable
}
