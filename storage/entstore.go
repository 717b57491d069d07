package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/ddevcap/watchsync/ent"
	"github.com/ddevcap/watchsync/ent/guidpointer"
	"github.com/ddevcap/watchsync/ent/mediastate"
	"github.com/ddevcap/watchsync/entity"
)

// EntStore persists canonical media states through the ent client, with the
// guid-pointer side table keeping identity lookups indexed.
type EntStore struct {
	db *ent.Client
}

var _ Store = (*EntStore)(nil)

// NewEntStore wraps an opened ent client.
func NewEntStore(db *ent.Client) *EntStore {
	return &EntStore{db: db}
}

// Get resolves the stored record matching any of e's pointers. Returns
// ErrNotFound when no pointer matches.
func (s *EntStore) Get(ctx context.Context, e *entity.State) (*entity.State, error) {
	pointers := e.AllPointers()
	if len(pointers) == 0 {
		return nil, ErrNotFound
	}

	row, err := s.db.GuidPointer.Query().
		Where(guidpointer.PointerIn(pointers...)).
		QueryState().
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: resolving pointers: %w", err)
	}
	return toState(row), nil
}

// GetAll loads stored records, restricted to those whose play-state changed
// at or after since when since is non-nil.
func (s *EntStore) GetAll(ctx context.Context, since *time.Time) ([]*entity.State, error) {
	q := s.db.MediaState.Query()
	if since != nil {
		q = q.Where(mediastate.UpdatedGTE(since.Unix()))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage: loading states: %w", err)
	}

	out := make([]*entity.State, 0, len(rows))
	for _, row := range rows {
		out = append(out, toState(row))
	}
	return out, nil
}

// Insert persists a new record and its pointer rows, returning the record
// with its durable id set.
func (s *EntStore) Insert(ctx context.Context, e *entity.State) (*entity.State, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage: opening transaction: %w", err)
	}

	row, err := tx.MediaState.Create().
		SetType(string(e.Type)).
		SetTitle(e.Title).
		SetYear(e.Year).
		SetSeason(e.Season).
		SetEpisode(e.Episode).
		SetWatched(e.Watched).
		SetUpdated(e.UpdatedAt).
		SetVia(e.Via).
		SetGuids(e.GUIDs).
		SetParentGuids(e.ParentGUIDs).
		SetMetadata(e.Metadata).
		SetExtra(e.Extra).
		SetTainted(e.Tainted).
		SetProgress(e.Progress).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("storage: inserting state: %w", err))
	}

	if err := createPointers(ctx, tx, row, e.AllPointers()); err != nil {
		return nil, rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("storage: committing insert: %w", err)
	}

	stored := e.Clone()
	stored.ID = int64(row.ID)
	return stored, nil
}

// Update rewrites an existing record and replaces its pointer rows, since a
// merge may have added identities.
func (s *EntStore) Update(ctx context.Context, e *entity.State) error {
	if e.ID == 0 {
		return fmt.Errorf("storage: update of unpersisted state %q", e.Name())
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("storage: opening transaction: %w", err)
	}

	row, err := tx.MediaState.UpdateOneID(int(e.ID)).
		SetType(string(e.Type)).
		SetTitle(e.Title).
		SetYear(e.Year).
		SetSeason(e.Season).
		SetEpisode(e.Episode).
		SetWatched(e.Watched).
		SetUpdated(e.UpdatedAt).
		SetVia(e.Via).
		SetGuids(e.GUIDs).
		SetParentGuids(e.ParentGUIDs).
		SetMetadata(e.Metadata).
		SetExtra(e.Extra).
		SetTainted(e.Tainted).
		SetProgress(e.Progress).
		Save(ctx)
	if ent.IsNotFound(err) {
		return rollback(tx, ErrNotFound)
	}
	if err != nil {
		return rollback(tx, fmt.Errorf("storage: updating state %d: %w", e.ID, err))
	}

	if _, err := tx.GuidPointer.Delete().
		Where(guidpointer.HasStateWith(mediastate.ID(row.ID))).
		Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("storage: clearing pointers for state %d: %w", e.ID, err))
	}
	if err := createPointers(ctx, tx, row, e.AllPointers()); err != nil {
		return rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: committing update: %w", err)
	}
	return nil
}

// Remove deletes the record matching e and its pointer rows. Removing a
// record that is already gone is not an error.
func (s *EntStore) Remove(ctx context.Context, e *entity.State) error {
	stored := e
	if stored.ID == 0 {
		found, err := s.Get(ctx, e)
		if err == ErrNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		stored = found
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("storage: opening transaction: %w", err)
	}
	if _, err := tx.GuidPointer.Delete().
		Where(guidpointer.HasStateWith(mediastate.ID(int(stored.ID)))).
		Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("storage: clearing pointers for state %d: %w", stored.ID, err))
	}
	if err := tx.MediaState.DeleteOneID(int(stored.ID)).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return rollback(tx, nil)
		}
		return rollback(tx, fmt.Errorf("storage: deleting state %d: %w", stored.ID, err))
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: committing delete: %w", err)
	}
	return nil
}

func createPointers(ctx context.Context, tx *ent.Tx, row *ent.MediaState, pointers []string) error {
	if len(pointers) == 0 {
		return nil
	}
	builders := make([]*ent.GuidPointerCreate, 0, len(pointers))
	seen := make(map[string]bool, len(pointers))
	for _, p := range pointers {
		if seen[p] {
			continue
		}
		seen[p] = true
		builders = append(builders, tx.GuidPointer.Create().SetPointer(p).SetState(row))
	}
	if _, err := tx.GuidPointer.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("storage: inserting pointers: %w", err)
	}
	return nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil && err != nil {
		return fmt.Errorf("%w (rollback: %v)", err, rerr)
	}
	return err
}

func toState(row *ent.MediaState) *entity.State {
	return &entity.State{
		ID:          int64(row.ID),
		Type:        entity.Type(row.Type),
		Title:       row.Title,
		Year:        row.Year,
		Season:      row.Season,
		Episode:     row.Episode,
		Watched:     row.Watched,
		UpdatedAt:   row.Updated,
		Via:         row.Via,
		GUIDs:       row.Guids,
		ParentGUIDs: row.ParentGuids,
		Metadata:    row.Metadata,
		Extra:       row.Extra,
		Tainted:     row.Tainted,
		Progress:    row.Progress,
	}
}
