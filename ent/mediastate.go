// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ddevcap/watchsync/ent/mediastate"
	"github.com/ddevcap/watchsync/entity"
	"github.com/ddevcap/watchsync/guid"
)

// MediaState is the model entity for the MediaState schema.
type MediaState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// movie or episode
	Type string `json:"type,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Year holds the value of the "year" field.
	Year int `json:"year,omitempty"`
	// Season holds the value of the "season" field.
	Season int `json:"season,omitempty"`
	// Episode holds the value of the "episode" field.
	Episode int `json:"episode,omitempty"`
	// Watched holds the value of the "watched" field.
	Watched bool `json:"watched,omitempty"`
	// Updated holds the value of the "updated" field.
	Updated int64 `json:"updated,omitempty"`
	// Server the current state arrived from.
	Via string `json:"via,omitempty"`
	// Guids holds the value of the "guids" field.
	Guids guid.Set `json:"guids,omitempty"`
	// ParentGuids holds the value of the "parent_guids" field.
	ParentGuids guid.Set `json:"parent_guids,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]entity.Metadata `json:"metadata,omitempty"`
	// Extra holds the value of the "extra" field.
	Extra map[string]entity.Extra `json:"extra,omitempty"`
	// Tainted holds the value of the "tainted" field.
	Tainted bool `json:"tainted,omitempty"`
	// Playback offset in milliseconds.
	Progress int64 `json:"progress,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MediaStateQuery when eager-loading is set.
	Edges        MediaStateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MediaStateEdges holds the relations/edges for other nodes in the graph.
type MediaStateEdges struct {
	// Pointers holds the value of the pointers edge.
	Pointers []*GuidPointer `json:"pointers,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PointersOrErr returns the Pointers value or an error if the edge
// was not loaded in eager-loading.
func (e MediaStateEdges) PointersOrErr() ([]*GuidPointer, error) {
	if e.loadedTypes[0] {
		return e.Pointers, nil
	}
	return nil, &NotLoadedError{edge: "pointers"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MediaState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mediastate.FieldGuids, mediastate.FieldParentGuids, mediastate.FieldMetadata, mediastate.FieldExtra:
			values[i] = new([]byte)
		case mediastate.FieldWatched, mediastate.FieldTainted:
			values[i] = new(sql.NullBool)
		case mediastate.FieldID, mediastate.FieldYear, mediastate.FieldSeason, mediastate.FieldEpisode, mediastate.FieldUpdated, mediastate.FieldProgress:
			values[i] = new(sql.NullInt64)
		case mediastate.FieldType, mediastate.FieldTitle, mediastate.FieldVia:
			values[i] = new(sql.NullString)
		case mediastate.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MediaState fields.
func (_m *MediaState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mediastate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case mediastate.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = value.String
			}
		case mediastate.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case mediastate.FieldYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field year", values[i])
			} else if value.Valid {
				_m.Year = int(value.Int64)
			}
		case mediastate.FieldSeason:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field season", values[i])
			} else if value.Valid {
				_m.Season = int(value.Int64)
			}
		case mediastate.FieldEpisode:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field episode", values[i])
			} else if value.Valid {
				_m.Episode = int(value.Int64)
			}
		case mediastate.FieldWatched:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field watched", values[i])
			} else if value.Valid {
				_m.Watched = value.Bool
			}
		case mediastate.FieldUpdated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field updated", values[i])
			} else if value.Valid {
				_m.Updated = value.Int64
			}
		case mediastate.FieldVia:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field via", values[i])
			} else if value.Valid {
				_m.Via = value.String
			}
		case mediastate.FieldGuids:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field guids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Guids); err != nil {
					return fmt.Errorf("unmarshal field guids: %w", err)
				}
			}
		case mediastate.FieldParentGuids:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field parent_guids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ParentGuids); err != nil {
					return fmt.Errorf("unmarshal field parent_guids: %w", err)
				}
			}
		case mediastate.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case mediastate.FieldExtra:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extra", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Extra); err != nil {
					return fmt.Errorf("unmarshal field extra: %w", err)
				}
			}
		case mediastate.FieldTainted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field tainted", values[i])
			} else if value.Valid {
				_m.Tainted = value.Bool
			}
		case mediastate.FieldProgress:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress", values[i])
			} else if value.Valid {
				_m.Progress = value.Int64
			}
		case mediastate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MediaState.
// This includes values selected through modifiers, order, etc.
func (_m *MediaState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPointers queries the "pointers" edge of the MediaState entity.
func (_m *MediaState) QueryPointers() *GuidPointerQuery {
	return NewMediaStateClient(_m.config).QueryPointers(_m)
}

// Update returns a builder for updating this MediaState.
// Note that you need to call MediaState.Unwrap() before calling this method if this MediaState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MediaState) Update() *MediaStateUpdateOne {
	return NewMediaStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MediaState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MediaState) Unwrap() *MediaState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MediaState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MediaState) String() string {
	var builder strings.Builder
	builder.WriteString("MediaState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("type=")
	builder.WriteString(_m.Type)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("year=")
	builder.WriteString(fmt.Sprintf("%v", _m.Year))
	builder.WriteString(", ")
	builder.WriteString("season=")
	builder.WriteString(fmt.Sprintf("%v", _m.Season))
	builder.WriteString(", ")
	builder.WriteString("episode=")
	builder.WriteString(fmt.Sprintf("%v", _m.Episode))
	builder.WriteString(", ")
	builder.WriteString("watched=")
	builder.WriteString(fmt.Sprintf("%v", _m.Watched))
	builder.WriteString(", ")
	builder.WriteString("updated=")
	builder.WriteString(fmt.Sprintf("%v", _m.Updated))
	builder.WriteString(", ")
	builder.WriteString("via=")
	builder.WriteString(_m.Via)
	builder.WriteString(", ")
	builder.WriteString("guids=")
	builder.WriteString(fmt.Sprintf("%v", _m.Guids))
	builder.WriteString(", ")
	builder.WriteString("parent_guids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParentGuids))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("extra=")
	builder.WriteString(fmt.Sprintf("%v", _m.Extra))
	builder.WriteString(", ")
	builder.WriteString("tainted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tainted))
	builder.WriteString(", ")
	builder.WriteString("progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.Progress))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MediaStates is a parsable slice of MediaState.
type MediaStates []*MediaState
