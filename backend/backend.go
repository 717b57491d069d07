// Package backend defines the contract every media-server client family
// implements, plus the per-run plumbing they share: the immutable run
// Context, the Options bag, run statistics and the availability checker.
//
// Concrete families live in the subpackages backend/jellyfin (which also
// serves Emby) and backend/plex; they register themselves with this package
// so callers construct clients by Kind alone.
package backend

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/ddevcap/watchsync/guid"
)

// Kind identifies a media-server product family.
type Kind string

const (
	KindPlex     Kind = "plex"
	KindJellyfin Kind = "jellyfin"
	KindEmby     Kind = "emby"
)

// ParseKind normalises a stored kind string. Unknown kinds are an error so a
// typo in configuration fails loudly at startup rather than at sync time.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindPlex, KindJellyfin, KindEmby:
		return k, nil
	default:
		return "", fmt.Errorf("backend: unknown kind %q", s)
	}
}

// Context is the immutable descriptor a client operates under for one run.
// Build one per configured server; clients never mutate it, so a single
// Context is safe to share across import, export and webhook handling.
type Context struct {
	// Name is the server's configured name. It is the key used for
	// per-backend metadata slots on entities, so renaming a server orphans
	// its history.
	Name string
	Kind Kind

	BaseURL string
	Token   string
	// UserID is the user whose play-state is being synced, in the server's
	// native user-id format.
	UserID string

	// Headers are sent on every request in addition to the kind's auth
	// header.
	Headers http.Header

	Options Options

	// Cache is the backend's show-parent GUID arena: resolved series GUIDs
	// keyed by native show id, so episodes imported later in the run (or in
	// a webhook shortly after) resolve relative identity without re-fetching
	// the series. Honour Options.NoCache before reading.
	Cache *ttlcache.Cache[string, guid.Set]
}

// NewContext assembles a run context with defaults applied and a fresh
// show-parent arena.
func NewContext(name string, kind Kind, baseURL, token, userID string, opts Options) *Context {
	cache := ttlcache.New[string, guid.Set](
		ttlcache.WithTTL[string, guid.Set](time.Hour),
		ttlcache.WithDisableTouchOnHit[string, guid.Set](),
	)
	go cache.Start()

	return &Context{
		Name:    name,
		Kind:    kind,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		UserID:  userID,
		Headers: make(http.Header),
		Options: opts.withDefaults(),
		Cache:   cache,
	}
}

// URL joins path onto the server's base URL. path must start with "/".
func (c *Context) URL(path string) string {
	return c.BaseURL + path
}

// Trace reports whether verbose request tracing is enabled for this run.
func (c *Context) Trace() bool { return c.Options.DebugTrace }

// LogWith returns the context's standard log attributes, with extra appended.
func (c *Context) LogWith(extra ...any) []any {
	return append([]any{"backend", c.Name, "kind", string(c.Kind)}, extra...)
}

// User is one account on a media server, as reported by GetUsersList.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Admin        bool       `json:"admin"`
	Hidden       bool       `json:"hidden"`
	Disabled     bool       `json:"disabled"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
}
