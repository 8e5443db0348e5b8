// Package memory implements the store.Repository contract with a plain
// in-process map. It performs no I/O and can only fail on logical misuse
// (duplicate explicit ids, lookups of absent records).
package memory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/starmatchhq/starmatch/internal/domain"
	"github.com/starmatchhq/starmatch/internal/store"
)

// Repository is a generic in-memory backend. Records are kept in a map
// keyed by id with a parallel slice preserving insertion order for
// GetAll. Ids auto-increment from the highest id seen.
type Repository[T domain.Entity] struct {
	entity   string
	notFound error
	logger   *slog.Logger

	items  map[int]T
	order  []int
	nextID int
}

// NewRepository creates an empty in-memory repository. entity labels error
// messages and log records; notFound is the entity-specific sentinel
// returned for absent ids. A nil logger falls back to slog.Default.
func NewRepository[T domain.Entity](entity string, notFound error, logger *slog.Logger) *Repository[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository[T]{
		entity:   entity,
		notFound: notFound,
		logger:   logger.With(slog.String("component", "memory_store"), slog.String("entity", entity)),
		items:    make(map[int]T),
		nextID:   1,
	}
}

// Ensure Repository satisfies the store contract.
var _ store.Repository[*domain.User] = (*Repository[*domain.User])(nil)

// Create assigns an id when the entity carries none and stores it.
// Returns store.ErrDuplicate when an explicit id is already taken.
func (r *Repository[T]) Create(_ context.Context, entity T) error {
	id := entity.GetID()
	if id == 0 {
		id = r.nextID
		entity.SetID(id)
	} else if _, exists := r.items[id]; exists {
		return store.NewStoreError(r.entity, "create",
			fmt.Errorf("%w: id %d", store.ErrDuplicate, id))
	}
	if id >= r.nextID {
		r.nextID = id + 1
	}

	r.items[id] = entity
	r.order = append(r.order, id)
	r.logger.Debug("entity created", slog.Int("id", id))
	return nil
}

// Get returns the stored entity, or the entity-specific not-found
// sentinel for an absent id.
func (r *Repository[T]) Get(_ context.Context, id int) (T, error) {
	entity, ok := r.items[id]
	if !ok {
		var zero T
		return zero, r.notFound
	}
	return entity, nil
}

// Update overwrites the record matching the entity's id. Updating an
// absent id fails with the not-found sentinel; this policy is uniform
// across all backends.
func (r *Repository[T]) Update(_ context.Context, entity T) error {
	id := entity.GetID()
	if _, ok := r.items[id]; !ok {
		return r.notFound
	}
	r.items[id] = entity
	r.logger.Debug("entity updated", slog.Int("id", id))
	return nil
}

// Delete removes the record. Deleting an absent id is a no-op.
func (r *Repository[T]) Delete(_ context.Context, id int) error {
	if _, ok := r.items[id]; !ok {
		return nil
	}
	delete(r.items, id)
	for i, ordered := range r.order {
		if ordered == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.logger.Debug("entity deleted", slog.Int("id", id))
	return nil
}

// GetAll returns a snapshot of all records in insertion order.
func (r *Repository[T]) GetAll(_ context.Context) ([]T, error) {
	all := make([]T, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.items[id])
	}
	return all, nil
}
