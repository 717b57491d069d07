// Package entity defines the canonical media record — one movie or episode's
// watch state merged across every backend that has observed it — and the merge
// algebra used to reconcile concurrent observations.
package entity

import (
	"fmt"
	"time"

	"github.com/ddevcap/watchsync/guid"
)

// Type classifies a canonical record. Shows are never persisted as entities;
// the type exists only so backend payload handling can branch on it before a
// show is diverted into the parent-identity arena.
type Type string

const (
	TypeMovie   Type = "movie"
	TypeEpisode Type = "episode"
	TypeShow    Type = "show"
)

// Valid reports whether t is a persistable entity type.
func (t Type) Valid() bool { return t == TypeMovie || t == TypeEpisode }

// Metadata is one backend's view of a title: the native item id it knows the
// title under, plus the play-state fields needed for later conflict
// comparison. One slot is kept per backend that has ever observed the title.
type Metadata struct {
	ID       string   `json:"id"`
	Type     Type     `json:"type"`
	Watched  bool     `json:"watched"`
	GUIDs    guid.Set `json:"guids,omitempty"`
	PlayedAt int64    `json:"played_at,omitempty"`
	AddedAt  int64    `json:"added_at,omitempty"`
	Progress int64    `json:"progress,omitempty"` // playback offset, milliseconds
	Title    string   `json:"title,omitempty"`
	Library  string   `json:"library,omitempty"`
	Show     string   `json:"show,omitempty"` // parent show's native id, episodes only
}

// Extra records the provenance of a backend's most recent update. It is how
// self-origin loops are detected: an event that arrived from backend X must
// never be echoed back into a write to X.
type Extra struct {
	Event string `json:"event"`
	Date  int64  `json:"date"`
}

// State is the canonical record for one movie or episode.
//
// Mutation happens only through Apply; pipelines construct fresh State values
// from backend payloads and merge them into the stored record.
type State struct {
	ID        int64  `json:"id,omitempty"` // durable-store id, 0 until persisted
	Type      Type   `json:"type"`
	Title     string `json:"title"`
	Year      int    `json:"year,omitempty"`
	Season    int    `json:"season,omitempty"`
	Episode   int    `json:"episode,omitempty"`
	Watched   bool   `json:"watched"`
	UpdatedAt int64  `json:"updated_at"` // last known play-state change, unix seconds
	Via       string `json:"via"`        // backend the current state arrived from

	GUIDs       guid.Set `json:"guids,omitempty"`
	ParentGUIDs guid.Set `json:"parent,omitempty"` // the show's identity, episodes only

	Metadata map[string]Metadata `json:"metadata,omitempty"` // keyed by backend name
	Extra    map[string]Extra    `json:"extra,omitempty"`    // keyed by backend name

	// Tainted marks a record whose last update came from a low-confidence
	// signal (playback heartbeat) rather than a full library import.
	Tainted bool `json:"tainted,omitempty"`

	Progress int64 `json:"progress,omitempty"` // playback offset, milliseconds
}

func (s *State) IsMovie() bool   { return s.Type == TypeMovie }
func (s *State) IsEpisode() bool { return s.Type == TypeEpisode }

// Name renders a log-friendly title: "Title (Year)" for movies, and
// "Show (Year) - SSxEEE" for episodes.
func (s *State) Name() string {
	title := s.Title
	if title == "" {
		title = "??"
	}
	if s.IsEpisode() {
		return fmt.Sprintf("%s (%04d) - %02dx%03d", title, s.Year, s.Season, s.Episode)
	}
	return fmt.Sprintf("%s (%04d)", title, s.Year)
}

// HasGUIDs reports whether the record carries at least one universal id.
func (s *State) HasGUIDs() bool { return len(s.GUIDs) > 0 }

// HasRelativeGUIDs reports whether a same-backend relative identity can be
// derived: episodes only, and only when the parent show resolved.
func (s *State) HasRelativeGUIDs() bool {
	return s.IsEpisode() && len(s.ParentGUIDs) > 0
}

// Pointers returns the universal lookup keys for this record.
func (s *State) Pointers() []string { return s.GUIDs.Pointers() }

// RelativePointers returns the backend-local lookup keys derived from the
// parent show's identity. Empty for movies.
func (s *State) RelativePointers() []string {
	if !s.HasRelativeGUIDs() {
		return nil
	}
	return s.ParentGUIDs.RelativePointers(s.Season, s.Episode)
}

// AllPointers returns universal pointers followed by relative ones. A record
// with no pointers at all is not persistable.
func (s *State) AllPointers() []string {
	return append(s.Pointers(), s.RelativePointers()...)
}

// MetadataFor returns backend's metadata slot, and whether one exists.
func (s *State) MetadataFor(backend string) (Metadata, bool) {
	m, ok := s.Metadata[backend]
	return m, ok
}

// ExtraFor returns backend's provenance slot, and whether one exists.
func (s *State) ExtraFor(backend string) (Extra, bool) {
	e, ok := s.Extra[backend]
	return e, ok
}

// SyncedWith reports whether backend's recorded watched state agrees with the
// canonical one. known is false when the record has never seen that backend,
// in which case match is meaningless.
func (s *State) SyncedWith(backend string) (match, known bool) {
	m, ok := s.Metadata[backend]
	if !ok {
		return false, false
	}
	return m.Watched == s.Watched, true
}

// ApplyOptions tune the merge in Apply.
type ApplyOptions struct {
	// IgnoreDate makes incoming scalar values win regardless of timestamps.
	IgnoreDate bool
	// MetadataOnly restricts the merge to per-backend metadata and identity
	// sets; watched state and its timestamp are left untouched.
	MetadataOnly bool
}

// Apply merges an incoming observation into the record. It is the single
// state transition:
//
//   - every backend metadata/extra slot present on incoming replaces the
//     corresponding slot here, unconditionally;
//   - scalar play-state fields (watched, updatedAt, via, progress) are adopted
//     only when incoming is at least as recent, or IgnoreDate is set;
//   - identity sets merge with incoming values winning;
//   - tainted is OR'd in, and clears only when an untainted update wins the
//     timestamp comparison.
func (s *State) Apply(incoming *State, opts ApplyOptions) {
	if incoming == nil {
		return
	}

	for backend, m := range incoming.Metadata {
		if s.Metadata == nil {
			s.Metadata = make(map[string]Metadata, len(incoming.Metadata))
		}
		s.Metadata[backend] = m
	}
	for backend, e := range incoming.Extra {
		if s.Extra == nil {
			s.Extra = make(map[string]Extra, len(incoming.Extra))
		}
		s.Extra[backend] = e
	}

	s.GUIDs = s.GUIDs.Merge(incoming.GUIDs)
	s.ParentGUIDs = s.ParentGUIDs.Merge(incoming.ParentGUIDs)

	if incoming.Title != "" {
		s.Title = incoming.Title
	}
	if incoming.Year != 0 {
		s.Year = incoming.Year
	}
	if incoming.Season != 0 {
		s.Season = incoming.Season
	}
	if incoming.Episode != 0 {
		s.Episode = incoming.Episode
	}

	if incoming.Tainted {
		s.Tainted = true
	}

	if opts.MetadataOnly {
		return
	}

	if opts.IgnoreDate || incoming.UpdatedAt >= s.UpdatedAt {
		s.Watched = incoming.Watched
		s.UpdatedAt = incoming.UpdatedAt
		if incoming.Via != "" {
			s.Via = incoming.Via
		}
		if incoming.Progress != 0 {
			s.Progress = incoming.Progress
		}
		if !incoming.Tainted {
			s.Tainted = false
		}
	}
}

// Diff reports whether any persisted field differs from orig. Used by the
// mapper to classify a merge as update vs no-op, and by pruning routines to
// decide whether a re-persist is needed.
func (s *State) Diff(orig *State) bool {
	if orig == nil {
		return true
	}
	if s.Type != orig.Type ||
		s.Title != orig.Title ||
		s.Year != orig.Year ||
		s.Season != orig.Season ||
		s.Episode != orig.Episode ||
		s.Watched != orig.Watched ||
		s.UpdatedAt != orig.UpdatedAt ||
		s.Via != orig.Via ||
		s.Tainted != orig.Tainted ||
		s.Progress != orig.Progress {
		return true
	}
	if !s.GUIDs.Equal(orig.GUIDs) || !s.ParentGUIDs.Equal(orig.ParentGUIDs) {
		return true
	}
	if len(s.Metadata) != len(orig.Metadata) {
		return true
	}
	for backend, m := range s.Metadata {
		o, ok := orig.Metadata[backend]
		if !ok || !metadataEqual(m, o) {
			return true
		}
	}
	if len(s.Extra) != len(orig.Extra) {
		return true
	}
	for backend, e := range s.Extra {
		if orig.Extra[backend] != e {
			return true
		}
	}
	return false
}

func metadataEqual(a, b Metadata) bool {
	if a.ID != b.ID || a.Type != b.Type || a.Watched != b.Watched ||
		a.PlayedAt != b.PlayedAt || a.AddedAt != b.AddedAt ||
		a.Progress != b.Progress || a.Title != b.Title ||
		a.Library != b.Library || a.Show != b.Show {
		return false
	}
	return a.GUIDs.Equal(b.GUIDs)
}

// Clone returns a deep copy, so a pipeline can merge into a working copy and
// diff it against the pristine stored record.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	out := *s
	out.GUIDs = s.GUIDs.Clone()
	out.ParentGUIDs = s.ParentGUIDs.Clone()
	if s.Metadata != nil {
		out.Metadata = make(map[string]Metadata, len(s.Metadata))
		for k, v := range s.Metadata {
			v.GUIDs = v.GUIDs.Clone()
			out.Metadata[k] = v
		}
	}
	if s.Extra != nil {
		out.Extra = make(map[string]Extra, len(s.Extra))
		for k, v := range s.Extra {
			out.Extra[k] = v
		}
	}
	return &out
}

// ShouldMarkUnplayed reports whether remote (the backend's current view of
// the item) indicates the title was deliberately marked unplayed there, as
// opposed to re-added or never played. All of the following must hold: the
// canonical record is watched while remote is not; the canonical record's
// metadata slot for remote's backend is complete (id, played-at, added-at);
// that slot says watched; the native id still matches; and remote's date
// equals the slot's added-at (i.e. the backend did not re-create the item).
func (s *State) ShouldMarkUnplayed(remote *State) bool {
	if remote == nil || remote.Watched || !s.Watched {
		return false
	}
	m, ok := s.MetadataFor(remote.Via)
	if !ok || !m.Watched {
		return false
	}
	if m.ID == "" || m.PlayedAt == 0 || m.AddedAt == 0 {
		return false
	}
	rm, ok := remote.MetadataFor(remote.Via)
	if !ok || rm.ID != m.ID {
		return false
	}
	return m.AddedAt == remote.UpdatedAt
}

// MarkUnplayed flips the record to unwatched, attributing the change to the
// given backend with the current time.
func (s *State) MarkUnplayed(via string) {
	s.Watched = false
	s.Via = via
	s.UpdatedAt = time.Now().Unix()
}
