// Package mapper buffers backend observations, merges them against canonical
// state, and commits the net change set to durable storage in one pass.
package mapper

import (
	"context"
	"time"

	"github.com/ddevcap/watchsync/entity"
)

// AddOptions scope a single Add call.
type AddOptions struct {
	// After is the backend's last successful sync checkpoint. Remote items
	// not updated since then only refresh metadata, never play-state.
	After *time.Time

	// MetadataOnly forces the metadata-refresh path regardless of dates.
	MetadataOnly bool
}

// Counts is the per-type outcome of a commit.
type Counts struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// Summary is the commit outcome broken down by entity type.
type Summary map[entity.Type]Counts

// Options tune a mapper for one run.
type Options struct {
	// DryRun counts what a commit would do without writing.
	DryRun bool

	// Trace enables verbose merge logging.
	Trace bool

	// IgnoreDate disables the timestamp guard when merging newer remote
	// state.
	IgnoreDate bool

	// AlwaysUpdateMetadata refreshes metadata slots even when the remote
	// item predates the sync checkpoint and nothing else changed.
	AlwaysUpdateMetadata bool
}

// Counter receives per-run counter increments. *backend.Stats satisfies it.
type Counter interface {
	Inc(key string)
}

// Mapper is the merge-and-commit engine one sync run feeds.
type Mapper interface {
	// Load preloads stored records, restricted to those updated after since
	// when since is non-nil. Optional; unloaded records resolve lazily.
	Load(ctx context.Context, since *time.Time) error

	// Add merges one backend observation into the buffer.
	Add(ctx context.Context, e *entity.State, opts AddOptions) error

	// Get resolves the buffered (or stored) record matching e's pointers.
	// Returns nil when unknown.
	Get(ctx context.Context, e *entity.State) (*entity.State, error)

	// Remove drops the record matching e from the buffer and the store.
	Remove(ctx context.Context, e *entity.State) (bool, error)

	// ComputeChanges returns, per backend name, the buffered entities whose
	// canonical watched state disagrees with that backend's recorded one.
	ComputeChanges(backends []string) map[string][]*entity.State

	// ProgressItems returns entities whose playback position advanced this
	// run. Read before Commit; Commit resets the buffer.
	ProgressItems() []*entity.State

	// Commit writes the change set and returns the outcome summary.
	Commit(ctx context.Context) (Summary, error)

	// Reset discards the buffer without committing.
	Reset()

	// Count reports how many buffered records have pending changes.
	Count() int

	// SetOptions replaces the mapper's run options.
	SetOptions(opts Options)
}
