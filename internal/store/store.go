// Package store provides abstractions for data persistence. It defines
// the uniform repository contract every backend implements, the
// association interfaces for many-to-many relations, and the shared error
// vocabulary. Services are written against this package only and never
// branch on the concrete backend.
package store

import (
	"context"

	"github.com/starmatchhq/starmatch/internal/domain"
)

// Repository is the capability set every storage backend must satisfy,
// uniformly for every entity type.
//
// Identity policy, shared by all backends:
//   - Create assigns the next identifier when the entity carries none and
//     persists it. A fault in the storage medium surfaces as ErrStorage.
//   - Get returns ErrNotFound for an absent id; it never treats a missing
//     record as a storage fault.
//   - Update overwrites the record matching the entity's id and returns
//     ErrNotFound when no such record exists, on every backend.
//   - Delete is idempotent: deleting an absent id is not an error.
//   - GetAll returns a snapshot in insertion order; the relational backend
//     orders users by birth date instead, which is covered by an explicit
//     test as backend-specific behavior.
type Repository[T domain.Entity] interface {
	Create(ctx context.Context, entity T) error
	Get(ctx context.Context, id int) (T, error)
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, id int) error
	GetAll(ctx context.Context) ([]T, error)
}

// Association manages a many-to-many relation that a single-entity
// repository cannot express alone (user friendships, sign-trait links).
// The relational backend implements it over a join table; owning
// repositories call it as a secondary step after the base row is written.
type Association interface {
	// Add records a relation from ownerID to relatedID.
	Add(ctx context.Context, ownerID, relatedID int) error

	// RemoveAll deletes every relation owned by ownerID.
	RemoveAll(ctx context.Context, ownerID int) error

	// ListRelated returns the ids related to ownerID.
	ListRelated(ctx context.Context, ownerID int) ([]int, error)
}
