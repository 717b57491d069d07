package backend

import (
	"sort"
	"sync"
)

// Counter keys shared by the client families. Families may add their own;
// these are the ones the pipelines and tests agree on.
const (
	StatImported     = "imported"
	StatSkippedDate  = "skipped_no_date"
	StatIgnored      = "ignored"
	StatUnsupported  = "unsupported"
	StatMalformed    = "malformed"
	StatQueuedPlay   = "queued_mark_played"
	StatQueuedUnplay = "queued_mark_unplayed"
	StatQueuedSeek   = "queued_progress"
	StatSkipped      = "skipped"
)

// Stats accumulates counters for one backend's run. Counters only go up and
// the error flag only escalates; a run that trips it never advances its
// sync checkpoint.
type Stats struct {
	mu        sync.Mutex
	counters  map[string]int64
	hasErrors bool
}

func NewStats() *Stats {
	return &Stats{counters: make(map[string]int64)}
}

// Inc bumps a counter by one.
func (s *Stats) Inc(key string) { s.Add(key, 1) }

// Add bumps a counter by n.
func (s *Stats) Add(key string, n int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[key] += n
}

// Get returns a counter's current value.
func (s *Stats) Get(key string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters[key]
}

// MarkError flags the run as failed. There is no way to clear it.
func (s *Stats) MarkError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hasErrors = true
}

// HasErrors reports whether the run hit a failure that should block
// checkpoint advancement.
func (s *Stats) HasErrors() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasErrors
}

// Snapshot returns a copy of all counters.
func (s *Stats) Snapshot() map[string]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int64, len(s.counters))
	for k, v := range s.counters {
		out[k] = v
	}
	return out
}

// LogAttrs flattens the counters into sorted slog key/value pairs.
func (s *Stats) LogAttrs() []any {
	snap := s.Snapshot()
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]any, 0, len(keys)*2)
	for _, k := range keys {
		out = append(out, k, snap[k])
	}
	return out
}
