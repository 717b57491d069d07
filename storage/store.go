// Package storage defines the durable store contract for canonical
// play-state records, and implements it over ent.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/ddevcap/watchsync/entity"
)

// ErrNotFound is returned by lookups that matched nothing.
var ErrNotFound = errors.New("storage: state not found")

// Store is key-addressed durable storage for canonical records. Lookup is by
// the record's GUID pointers (universal and relative); the engine behind it
// is nobody else's business.
type Store interface {
	// Get resolves the stored record matching any of e's pointers, or its id
	// when already persisted. Returns ErrNotFound when nothing matches.
	Get(ctx context.Context, e *entity.State) (*entity.State, error)

	// GetAll returns stored records, restricted to those updated after since
	// when since is non-nil.
	GetAll(ctx context.Context, since *time.Time) ([]*entity.State, error)

	// Insert persists a new record and returns it with its id assigned.
	Insert(ctx context.Context, e *entity.State) (*entity.State, error)

	// Update rewrites an existing record in place.
	Update(ctx context.Context, e *entity.State) error

	// Remove deletes a record and its pointers.
	Remove(ctx context.Context, e *entity.State) error
}
