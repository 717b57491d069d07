// Package guid normalizes the external identifiers different metadata
// databases assign to the same title, so that a movie or episode seen on two
// backends can be recognized as one record.
//
// Identifiers are kept as a set of (namespace, value) pairs drawn from a fixed
// registry. Each namespace carries a format validator; values that fail it are
// dropped during parsing rather than surfaced as errors — an unmatched title
// is a data-quality condition, not a fault.
package guid

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
)

// Registered namespaces. These are the databases whose ids are trusted to
// identify the same title across backends.
const (
	IMDB    = "imdb"
	TVDB    = "tvdb"
	TMDB    = "tmdb"
	TVMaze  = "tvmaze"
	TVRage  = "tvrage"
	AniDB   = "anidb"
	YouTube = "youtube"
	CMDB    = "cmdb"
)

// priority is the fixed iteration order for candidate pairs. First-seen wins
// within a namespace, so the order doubles as a preference ranking.
var priority = []string{IMDB, TVDB, TMDB, TVMaze, TVRage, AniDB, YouTube, CMDB}

// validators maps each namespace to the format its values must satisfy.
// IMDB ids are "tt" + digits; everything else in the registry is numeric.
var validators = map[string]*regexp.Regexp{
	IMDB:    regexp.MustCompile(`^tt[0-9]+$`),
	TVDB:    regexp.MustCompile(`^[0-9]+$`),
	TMDB:    regexp.MustCompile(`^[0-9]+$`),
	TVMaze:  regexp.MustCompile(`^[0-9]+$`),
	TVRage:  regexp.MustCompile(`^[0-9]+$`),
	AniDB:   regexp.MustCompile(`^[0-9]+$`),
	YouTube: regexp.MustCompile(`^[A-Za-z0-9_-]{4,64}$`),
	CMDB:    regexp.MustCompile(`^[A-Za-z0-9]+$`),
}

// Supported reports whether ns is a registered namespace.
func Supported(ns string) bool {
	_, ok := validators[ns]
	return ok
}

// Namespaces returns the registered namespaces in priority order.
// The returned slice must not be mutated.
func Namespaces() []string { return priority }

// Validate checks a single (namespace, value) pair against the registry.
// Unlike Parse it reports failures, for callers that surface configuration
// mistakes (e.g. manually entered ids) instead of silently dropping them.
func Validate(ns, value string) error {
	re, ok := validators[ns]
	if !ok {
		return fmt.Errorf("guid: unsupported namespace %q", ns)
	}
	if !re.MatchString(value) {
		return fmt.Errorf("guid: value %q does not match the %s id format", value, ns)
	}
	return nil
}

// Set is a normalized identity: at most one value per registered namespace.
// Sets are plain values; copy them with Clone before mutating a shared one.
type Set map[string]string

// Parse filters raw candidate (namespace, value) pairs down to a valid Set.
// Unregistered namespaces and values failing their namespace validator are
// dropped with a debug log line carrying the caller's log context. An empty
// result means "no identity" and is not an error.
func Parse(raw map[string]string, logCtx ...any) Set {
	out := make(Set, len(raw))
	for _, ns := range priority {
		v, ok := raw[ns]
		if !ok || v == "" {
			continue
		}
		if !validators[ns].MatchString(v) {
			slog.Debug("guid: dropping external id with unexpected format",
				append([]any{"namespace", ns, "value", v}, logCtx...)...)
			continue
		}
		if _, dup := out[ns]; dup {
			continue
		}
		out[ns] = v
	}
	return out
}

// Has reports whether at least one candidate pair survives parsing.
func Has(raw map[string]string) bool { return len(Parse(raw)) > 0 }

// Pointers formats the set as lookup keys, one per namespace, in the stable
// "{namespace}://{value}" form used to address records in the canonical store.
// The result is sorted so equal sets produce equal pointer lists.
func (s Set) Pointers() []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, 0, len(s))
	for ns, v := range s {
		out = append(out, ns+"://"+v)
	}
	sort.Strings(out)
	return out
}

// RelativePointers formats the set as same-backend episode lookup keys:
// "r{namespace}://{value}/{season}/{episode}". These address an episode
// through its show's identity and are only comparable within one backend.
func (s Set) RelativePointers(season, episode int) []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, 0, len(s))
	for ns, v := range s {
		out = append(out, fmt.Sprintf("r%s://%s/%d/%d", ns, v, season, episode))
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Merge overlays other onto s, returning a new set. Values in other win.
func (s Set) Merge(other Set) Set {
	out := s.Clone()
	if out == nil {
		out = make(Set, len(other))
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Equal reports whether two sets contain exactly the same pairs.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for k, v := range s {
		if other[k] != v {
			return false
		}
	}
	return true
}
