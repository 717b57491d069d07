// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ddevcap/watchsync/ent/guidpointer"
	"github.com/ddevcap/watchsync/ent/mediastate"
	"github.com/ddevcap/watchsync/ent/schema"
	"github.com/ddevcap/watchsync/ent/server"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	guidpointerFields := schema.GuidPointer{}.Fields()
	_ = guidpointerFields
	// guidpointerDescPointer is the schema descriptor for pointer field.
	guidpointerDescPointer := guidpointerFields[0].Descriptor()
	// guidpointer.PointerValidator is a validator for the "pointer" field. It is called by the builders before save.
	guidpointer.PointerValidator = guidpointerDescPointer.Validators[0].(func(string) error)
	mediastateFields := schema.MediaState{}.Fields()
	_ = mediastateFields
	// mediastateDescType is the schema descriptor for type field.
	mediastateDescType := mediastateFields[0].Descriptor()
	// mediastate.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	mediastate.TypeValidator = mediastateDescType.Validators[0].(func(string) error)
	// mediastateDescTitle is the schema descriptor for title field.
	mediastateDescTitle := mediastateFields[1].Descriptor()
	// mediastate.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	mediastate.TitleValidator = mediastateDescTitle.Validators[0].(func(string) error)
	// mediastateDescYear is the schema descriptor for year field.
	mediastateDescYear := mediastateFields[2].Descriptor()
	// mediastate.DefaultYear holds the default value on creation for the year field.
	mediastate.DefaultYear = mediastateDescYear.Default.(int)
	// mediastateDescSeason is the schema descriptor for season field.
	mediastateDescSeason := mediastateFields[3].Descriptor()
	// mediastate.DefaultSeason holds the default value on creation for the season field.
	mediastate.DefaultSeason = mediastateDescSeason.Default.(int)
	// mediastateDescEpisode is the schema descriptor for episode field.
	mediastateDescEpisode := mediastateFields[4].Descriptor()
	// mediastate.DefaultEpisode holds the default value on creation for the episode field.
	mediastate.DefaultEpisode = mediastateDescEpisode.Default.(int)
	// mediastateDescWatched is the schema descriptor for watched field.
	mediastateDescWatched := mediastateFields[5].Descriptor()
	// mediastate.DefaultWatched holds the default value on creation for the watched field.
	mediastate.DefaultWatched = mediastateDescWatched.Default.(bool)
	// mediastateDescUpdated is the schema descriptor for updated field.
	mediastateDescUpdated := mediastateFields[6].Descriptor()
	// mediastate.DefaultUpdated holds the default value on creation for the updated field.
	mediastate.DefaultUpdated = mediastateDescUpdated.Default.(int64)
	// mediastateDescTainted is the schema descriptor for tainted field.
	mediastateDescTainted := mediastateFields[12].Descriptor()
	// mediastate.DefaultTainted holds the default value on creation for the tainted field.
	mediastate.DefaultTainted = mediastateDescTainted.Default.(bool)
	// mediastateDescProgress is the schema descriptor for progress field.
	mediastateDescProgress := mediastateFields[13].Descriptor()
	// mediastate.DefaultProgress holds the default value on creation for the progress field.
	mediastate.DefaultProgress = mediastateDescProgress.Default.(int64)
	// mediastateDescCreatedAt is the schema descriptor for created_at field.
	mediastateDescCreatedAt := mediastateFields[14].Descriptor()
	// mediastate.DefaultCreatedAt holds the default value on creation for the created_at field.
	mediastate.DefaultCreatedAt = mediastateDescCreatedAt.Default.(func() time.Time)
	serverFields := schema.Server{}.Fields()
	_ = serverFields
	// serverDescName is the schema descriptor for name field.
	serverDescName := serverFields[1].Descriptor()
	// server.NameValidator is a validator for the "name" field. It is called by the builders before save.
	server.NameValidator = serverDescName.Validators[0].(func(string) error)
	// serverDescKind is the schema descriptor for kind field.
	serverDescKind := serverFields[2].Descriptor()
	// server.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	server.KindValidator = serverDescKind.Validators[0].(func(string) error)
	// serverDescURL is the schema descriptor for url field.
	serverDescURL := serverFields[3].Descriptor()
	// server.URLValidator is a validator for the "url" field. It is called by the builders before save.
	server.URLValidator = serverDescURL.Validators[0].(func(string) error)
	// serverDescToken is the schema descriptor for token field.
	serverDescToken := serverFields[4].Descriptor()
	// server.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	server.TokenValidator = serverDescToken.Validators[0].(func(string) error)
	// serverDescUserID is the schema descriptor for user_id field.
	serverDescUserID := serverFields[5].Descriptor()
	// server.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	server.UserIDValidator = serverDescUserID.Validators[0].(func(string) error)
	// serverDescEnabled is the schema descriptor for enabled field.
	serverDescEnabled := serverFields[6].Descriptor()
	// server.DefaultEnabled holds the default value on creation for the enabled field.
	server.DefaultEnabled = serverDescEnabled.Default.(bool)
	// serverDescCreatedAt is the schema descriptor for created_at field.
	serverDescCreatedAt := serverFields[10].Descriptor()
	// server.DefaultCreatedAt holds the default value on creation for the created_at field.
	server.DefaultCreatedAt = serverDescCreatedAt.Default.(func() time.Time)
	// serverDescUpdatedAt is the schema descriptor for updated_at field.
	serverDescUpdatedAt := serverFields[11].Descriptor()
	// server.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	server.DefaultUpdatedAt = serverDescUpdatedAt.Default.(func() time.Time)
	// server.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	server.UpdateDefaultUpdatedAt = serverDescUpdatedAt.UpdateDefault.(func() time.Time)
	// serverDescID is the schema descriptor for id field.
	serverDescID := serverFields[0].Descriptor()
	// server.DefaultID holds the default value on creation for the id field.
	server.DefaultID = serverDescID.Default.(func() uuid.UUID)
}
