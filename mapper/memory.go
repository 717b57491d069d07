package mapper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ddevcap/watchsync/entity"
	"github.com/ddevcap/watchsync/storage"
)

// progressThreshold is how far playback must advance (milliseconds) before a
// metadata-only refresh is treated as a progress change worth propagating.
const progressThreshold = 10_000

// nopCounter swallows increments when no Stats is attached.
type nopCounter struct{}

func (nopCounter) Inc(string) {}

// Memory is the buffering Mapper: observations accumulate in memory keyed by
// GUID pointer, merge through the entity algebra, and flush to the Store in
// one Commit pass.
//
// Not safe for concurrent use; one Memory belongs to one run goroutine.
type Memory struct {
	store   storage.Store
	opts    Options
	counter Counter

	objects  map[string]*entity.State
	pointers map[string]string // GUID pointer -> slot key
	changed  []string          // slot keys in first-change order
	dirty    map[string]struct{}
	progress map[string]*entity.State

	fullyLoaded bool
	nextSlot    int
}

var _ Mapper = (*Memory)(nil)

// NewMemory builds a mapper over store. counter may be nil.
func NewMemory(store storage.Store, opts Options, counter Counter) *Memory {
	if counter == nil {
		counter = nopCounter{}
	}
	m := &Memory{store: store, opts: opts, counter: counter}
	m.Reset()
	return m
}

// SetOptions replaces the run options.
func (m *Memory) SetOptions(opts Options) { m.opts = opts }

// Reset discards all buffered state.
func (m *Memory) Reset() {
	m.objects = make(map[string]*entity.State)
	m.pointers = make(map[string]string)
	m.changed = nil
	m.dirty = make(map[string]struct{})
	m.progress = make(map[string]*entity.State)
	m.fullyLoaded = false
	m.nextSlot = 0
}

// Count reports how many buffered records have pending changes.
func (m *Memory) Count() int { return len(m.changed) }

// Load preloads stored records into the buffer. With a nil since the buffer
// is considered fully loaded and lazy store lookups are skipped.
func (m *Memory) Load(ctx context.Context, since *time.Time) error {
	states, err := m.store.GetAll(ctx, since)
	if err != nil {
		return fmt.Errorf("mapper: preloading state: %w", err)
	}
	m.fullyLoaded = since == nil

	for _, st := range states {
		key := dbSlot(st.ID)
		if _, ok := m.objects[key]; ok {
			continue
		}
		m.objects[key] = st
		m.addPointers(st, key)
	}

	slog.Info("mapper: preloaded state into memory",
		"pointers", len(m.pointers), "objects", len(m.objects))
	return nil
}

// Add merges one backend observation into the buffer.
func (m *Memory) Add(ctx context.Context, e *entity.State, opts AddOptions) error {
	if !e.HasGUIDs() && !e.HasRelativeGUIDs() {
		slog.Warn("mapper: ignoring item with no usable external ids",
			"backend", e.Via, "title", e.Name())
		m.counter.Inc(string(e.Type) + ".failed_no_guid")
		return nil
	}

	if e.IsEpisode() && e.Episode < 1 {
		slog.Warn("mapper: ignoring episode without an episode number",
			"backend", e.Via, "title", e.Name())
		m.counter.Inc(string(e.Type) + ".failed_no_episode_number")
		return nil
	}

	slot, err := m.findSlot(ctx, e)
	if err != nil {
		return err
	}

	if slot == "" {
		m.addNew(e, opts)
		return nil
	}

	if opts.MetadataOnly || e.Tainted {
		m.mergeTainted(slot, e, opts)
		return nil
	}

	if opts.After != nil && opts.After.Unix() >= e.UpdatedAt {
		m.mergeOld(slot, e)
		return nil
	}

	cur := m.objects[slot]

	// Watch-state conflict: the backend reports unplayed while the store says
	// played, and either we have no metadata for that backend or the remote
	// date equals our recorded play date. Treat the event as low-confidence
	// and take only its metadata.
	if opts.After != nil && cur.Watched && !e.Watched {
		meta, hasMeta := cur.MetadataFor(e.Via)
		sameDate := hasMeta && e.UpdatedAt == meta.PlayedAt
		if !hasMeta || sameDate {
			slog.Warn("mapper: watch state conflict, demoting event to metadata-only",
				"backend", e.Via, "title", e.Name(),
				"remote_state", "unplayed", "local_state", "played")
			if em, ok := e.Metadata[e.Via]; ok {
				em.PlayedAt = e.UpdatedAt
				e.Metadata[e.Via] = em
			}
			e.Tainted = true
			m.mergeTainted(slot, e, opts)
			return nil
		}
	}

	cloned := cur.Clone()
	cloned.Apply(e, entity.ApplyOptions{IgnoreDate: m.opts.IgnoreDate})
	if !cloned.Diff(cur) {
		m.counter.Inc(string(e.Type) + ".ignored_no_change")
		if m.opts.Trace {
			slog.Debug("mapper: no changes detected",
				"backend", e.Via, "title", e.Name())
		}
		return nil
	}

	m.adopt(slot, cur, cloned)
	m.counter.Inc(string(e.Type) + ".updated")
	slog.Info("mapper: updated item",
		"backend", e.Via, "title", cur.Name(),
		"state", watchedWord(cloned.Watched))
	return nil
}

// addNew buffers an entity the store has never seen.
func (m *Memory) addNew(e *entity.State, opts AddOptions) {
	if opts.MetadataOnly {
		m.counter.Inc(string(e.Type) + ".failed")
		slog.Info("mapper: ignoring unknown item from metadata-only source",
			"backend", e.Via, "title", e.Name())
		return
	}

	key := fmt.Sprintf("new://%d", m.nextSlot)
	m.nextSlot++

	m.objects[key] = e.Clone()
	m.markChanged(key)
	m.addPointers(m.objects[key], key)
	m.counter.Inc(string(e.Type) + ".added")

	slog.Info("mapper: added new item", "backend", e.Via, "title", e.Name())
}

// mergeTainted takes only metadata from a low-confidence observation.
func (m *Memory) mergeTainted(slot string, e *entity.State, opts AddOptions) {
	cur := m.objects[slot]
	cloned := cur.Clone()
	cloned.Apply(e, entity.ApplyOptions{MetadataOnly: true})

	if cloned.Diff(cur) {
		m.adopt(slot, cur, cloned)
		m.counter.Inc(string(e.Type) + ".updated")
		slog.Info("mapper: updated item metadata",
			"backend", e.Via, "title", cur.Name())
		return
	}

	if e.Watched != cur.Watched {
		reason := "event marked as tainted"
		if opts.MetadataOnly {
			reason = "metadata-only mode"
		}
		slog.Info("mapper: remote watch state disagrees but was not trusted",
			"backend", e.Via, "title", cur.Name(),
			"remote_state", watchedWord(e.Watched),
			"local_state", watchedWord(cur.Watched),
			"reason", reason)
	}
}

// mergeOld handles an observation older than the sync checkpoint: it may
// still mark an item unplayed, refresh metadata, or carry playback progress.
func (m *Memory) mergeOld(slot string, e *entity.State) {
	cur := m.objects[slot]

	if !e.Watched && cur.ShouldMarkUnplayed(e) {
		cloned := cur.Clone()
		cloned.Apply(e, entity.ApplyOptions{MetadataOnly: true})
		cloned.MarkUnplayed(e.Via)
		m.adopt(slot, cur, cloned)
		m.counter.Inc(string(e.Type) + ".updated")
		slog.Info("mapper: marked item as unplayed",
			"backend", e.Via, "title", cur.Name())
		return
	}

	newMeta, _ := e.MetadataFor(e.Via)
	oldMeta, metaExists := cur.MetadataFor(e.Via)
	playChanged := newMeta.Progress > oldMeta.Progress+progressThreshold

	if !metaExists || playChanged || m.opts.AlwaysUpdateMetadata {
		cloned := cur.Clone()
		cloned.Apply(e, entity.ApplyOptions{MetadataOnly: true})
		if cloned.Diff(cur) {
			m.adopt(slot, cur, cloned)
			m.counter.Inc(string(e.Type) + ".updated")
			slog.Info("mapper: refreshed item metadata",
				"backend", e.Via, "title", cur.Name(),
				"progress_changed", playChanged)

			if playChanged && !e.Watched && newMeta.Progress > 0 {
				ref := fmt.Sprintf("%s://%s@%s", e.Type, newMeta.ID, e.Via)
				m.progress[ref] = m.objects[slot]
			}
			return
		}
	}

	m.counter.Inc(string(e.Type) + ".ignored_not_played_since_last_sync")
	if e.Watched != cur.Watched {
		slog.Info("mapper: remote watch state disagrees but predates last sync",
			"backend", e.Via, "title", cur.Name(),
			"remote_state", watchedWord(e.Watched),
			"local_state", watchedWord(cur.Watched))
	}
}

// adopt installs the merged record into its slot and refreshes pointers,
// since the merge may have widened the identity set.
func (m *Memory) adopt(slot string, old, merged *entity.State) {
	m.objects[slot] = merged
	m.markChanged(slot)
	m.removePointers(old)
	m.addPointers(merged, slot)
}

// Get resolves the buffered (or stored) record matching e's pointers.
func (m *Memory) Get(ctx context.Context, e *entity.State) (*entity.State, error) {
	slot, err := m.findSlot(ctx, e)
	if err != nil {
		return nil, err
	}
	if slot == "" {
		return nil, nil
	}
	return m.objects[slot], nil
}

// Remove drops the record matching e from the buffer and the store.
func (m *Memory) Remove(ctx context.Context, e *entity.State) (bool, error) {
	slot, err := m.findSlot(ctx, e)
	if err != nil || slot == "" {
		return false, err
	}

	cur := m.objects[slot]
	m.removePointers(cur)
	delete(m.objects, slot)
	delete(m.dirty, slot)
	for i, key := range m.changed {
		if key == slot {
			m.changed = append(m.changed[:i], m.changed[i+1:]...)
			break
		}
	}

	if cur.ID != 0 && !m.opts.DryRun {
		if err := m.store.Remove(ctx, cur); err != nil {
			return false, fmt.Errorf("mapper: removing %q: %w", cur.Name(), err)
		}
	}
	return true, nil
}

// ComputeChanges returns, per backend name, the buffered entities whose
// canonical watched state disagrees with that backend's recorded one.
func (m *Memory) ComputeChanges(backends []string) map[string][]*entity.State {
	changes := make(map[string][]*entity.State, len(backends))
	for _, b := range backends {
		changes[b] = nil
	}
	for _, st := range m.objects {
		for _, b := range backends {
			match, known := st.SyncedWith(b)
			if known && !match {
				changes[b] = append(changes[b], st)
			}
		}
	}
	return changes
}

// ProgressItems returns entities whose playback position advanced this run.
func (m *Memory) ProgressItems() []*entity.State {
	out := make([]*entity.State, 0, len(m.progress))
	for _, st := range m.progress {
		out = append(out, st)
	}
	return out
}

// Commit writes the change set in first-change order and returns the
// outcome summary. The buffer is reset afterwards, committed or not.
func (m *Memory) Commit(ctx context.Context) (Summary, error) {
	defer m.Reset()

	summary := Summary{
		entity.TypeMovie:   {},
		entity.TypeEpisode: {},
	}

	if len(m.changed) == 0 {
		slog.Info("mapper: no changes detected")
		return summary, nil
	}
	if m.opts.DryRun {
		slog.Info("mapper: dry-run, recording changes without writing",
			"total", len(m.changed))
	}

	for _, slot := range m.changed {
		st, ok := m.objects[slot]
		if !ok {
			continue
		}
		counts := summary[st.Type]

		if st.ID == 0 {
			if !m.opts.DryRun {
				saved, err := m.store.Insert(ctx, st)
				if err != nil {
					counts.Failed++
					summary[st.Type] = counts
					slog.Error("mapper: insert failed",
						"backend", st.Via, "title", st.Name(), "error", err)
					continue
				}
				m.objects[slot] = saved
			}
			counts.Added++
		} else {
			if !m.opts.DryRun {
				if err := m.store.Update(ctx, st); err != nil {
					counts.Failed++
					summary[st.Type] = counts
					slog.Error("mapper: update failed",
						"backend", st.Via, "title", st.Name(), "error", err)
					continue
				}
			}
			counts.Updated++
		}
		summary[st.Type] = counts
	}

	return summary, nil
}

// ── internals ────────────────────────────────────────────────────────────

func dbSlot(id int64) string { return fmt.Sprintf("db://%d", id) }

func (m *Memory) markChanged(slot string) {
	if _, ok := m.dirty[slot]; ok {
		return
	}
	m.dirty[slot] = struct{}{}
	m.changed = append(m.changed, slot)
}

// findSlot resolves the buffer slot an entity maps to: by persisted id, by
// relative pointer, by universal pointer scoped to type, and finally by a
// lazy store lookup when the buffer is not fully loaded.
func (m *Memory) findSlot(ctx context.Context, e *entity.State) (string, error) {
	if e.ID != 0 {
		if _, ok := m.objects[dbSlot(e.ID)]; ok {
			return dbSlot(e.ID), nil
		}
	}

	for _, p := range e.RelativePointers() {
		if slot, ok := m.pointers[p]; ok {
			return slot, nil
		}
	}
	for _, p := range e.Pointers() {
		if slot, ok := m.pointers[p+"/"+string(e.Type)]; ok {
			return slot, nil
		}
	}

	if m.fullyLoaded {
		return "", nil
	}

	stored, err := m.store.Get(ctx, e)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("mapper: store lookup for %q: %w", e.Name(), err)
	}

	key := dbSlot(stored.ID)
	m.objects[key] = stored
	m.addPointers(stored, key)
	return key, nil
}

func (m *Memory) addPointers(e *entity.State, slot string) {
	for _, p := range e.RelativePointers() {
		m.pointers[p] = slot
	}
	for _, p := range e.Pointers() {
		m.pointers[p+"/"+string(e.Type)] = slot
	}
}

func (m *Memory) removePointers(e *entity.State) {
	for _, p := range e.RelativePointers() {
		delete(m.pointers, p)
	}
	for _, p := range e.Pointers() {
		delete(m.pointers, p+"/"+string(e.Type))
	}
}

func watchedWord(w bool) string {
	if w {
		return "played"
	}
	return "unplayed"
}
