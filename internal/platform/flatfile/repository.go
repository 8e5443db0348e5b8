package flatfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/starmatchhq/starmatch/internal/domain"
	"github.com/starmatchhq/starmatch/internal/store"
)

// Repository is a generic flat-file backend. Each operation loads the
// complete file, works on the in-memory record list and rewrites the file
// on mutation. A file that does not exist yet reads as empty and is
// created by the first write.
type Repository[T domain.Entity] struct {
	path     string
	entity   string
	notFound error
	codec    Codec[T]
	logger   *slog.Logger
}

// NewRepository creates a flat-file repository persisting to path.
// entity labels errors and log records; notFound is the entity-specific
// sentinel for absent ids.
func NewRepository[T domain.Entity](path, entity string, notFound error, codec Codec[T], logger *slog.Logger) *Repository[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository[T]{
		path:     path,
		entity:   entity,
		notFound: notFound,
		codec:    codec,
		logger:   logger.With(slog.String("component", "flatfile_store"), slog.String("entity", entity)),
	}
}

// Ensure Repository satisfies the store contract.
var _ store.Repository[*domain.User] = (*Repository[*domain.User])(nil)

// NewUserRepository creates the user file repository.
func NewUserRepository(path string, logger *slog.Logger) *Repository[*domain.User] {
	return NewRepository(path, "user", store.ErrUserNotFound, Codec[*domain.User](userCodec{}), logger)
}

// NewAdminRepository creates the admin file repository.
func NewAdminRepository(path string, logger *slog.Logger) *Repository[*domain.Admin] {
	return NewRepository(path, "admin", store.ErrAdminNotFound, Codec[*domain.Admin](adminCodec{}), logger)
}

// NewTraitRepository creates the trait file repository.
func NewTraitRepository(path string, logger *slog.Logger) *Repository[*domain.Trait] {
	return NewRepository(path, "trait", store.ErrTraitNotFound, Codec[*domain.Trait](traitCodec{}), logger)
}

// NewQuoteRepository creates the quote file repository.
func NewQuoteRepository(path string, logger *slog.Logger) *Repository[*domain.Quote] {
	return NewRepository(path, "quote", store.ErrQuoteNotFound, Codec[*domain.Quote](quoteCodec{}), logger)
}

// NewStarSignRepository creates the star-sign file repository. Trait
// associations are stored as trait ids and rehydrated through resolve.
func NewStarSignRepository(path string, resolve TraitResolver, logger *slog.Logger) *Repository[*domain.StarSign] {
	return NewRepository(path, "star sign", store.ErrStarSignNotFound, Codec[*domain.StarSign](starSignCodec{resolve: resolve}), logger)
}

// loadAll reads and decodes every record in the file. Blank lines,
// including trailing ones, are skipped.
func (r *Repository[T]) loadAll() ([]T, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, store.NewStoreError(r.entity, "read",
			fmt.Errorf("%w: %w", store.ErrStorage, err))
	}

	var all []T
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fieldsSplit := strings.Split(line, fieldSep)
		entity, err := r.codec.Decode(fieldsSplit)
		if err != nil {
			return nil, store.NewStoreError(r.entity, "decode",
				fmt.Errorf("%w: %w", store.ErrStorage, err))
		}
		all = append(all, entity)
	}
	return all, nil
}

// saveAll serializes all records back to the file with the exact same
// delimiter scheme they were read with.
func (r *Repository[T]) saveAll(all []T) error {
	var b strings.Builder
	for _, entity := range all {
		b.WriteString(strings.Join(r.codec.Encode(entity), fieldSep))
		b.WriteString("\n")
	}
	if err := os.WriteFile(r.path, []byte(b.String()), 0o644); err != nil {
		return store.NewStoreError(r.entity, "write",
			fmt.Errorf("%w: %w", store.ErrStorage, err))
	}
	return nil
}

// Create assigns an id when the entity carries none and appends the
// record. Returns store.ErrDuplicate for an explicit id already on file.
func (r *Repository[T]) Create(_ context.Context, entity T) error {
	all, err := r.loadAll()
	if err != nil {
		return err
	}

	maxID := 0
	for _, existing := range all {
		if existing.GetID() == entity.GetID() && entity.GetID() != 0 {
			return store.NewStoreError(r.entity, "create",
				fmt.Errorf("%w: id %d", store.ErrDuplicate, entity.GetID()))
		}
		if existing.GetID() > maxID {
			maxID = existing.GetID()
		}
	}
	if entity.GetID() == 0 {
		entity.SetID(maxID + 1)
	}

	all = append(all, entity)
	if err := r.saveAll(all); err != nil {
		return err
	}
	r.logger.Debug("entity created", slog.Int("id", entity.GetID()))
	return nil
}

// Get returns the record with the given id, or the not-found sentinel.
func (r *Repository[T]) Get(_ context.Context, id int) (T, error) {
	var zero T
	all, err := r.loadAll()
	if err != nil {
		return zero, err
	}
	for _, entity := range all {
		if entity.GetID() == id {
			return entity, nil
		}
	}
	return zero, r.notFound
}

// Update overwrites the record matching the entity's id, failing with the
// not-found sentinel when no such record is on file.
func (r *Repository[T]) Update(_ context.Context, entity T) error {
	all, err := r.loadAll()
	if err != nil {
		return err
	}
	for i, existing := range all {
		if existing.GetID() == entity.GetID() {
			all[i] = entity
			if err := r.saveAll(all); err != nil {
				return err
			}
			r.logger.Debug("entity updated", slog.Int("id", entity.GetID()))
			return nil
		}
	}
	return r.notFound
}

// Delete removes the record with the given id. Deleting an absent id is a
// no-op and does not rewrite the file.
func (r *Repository[T]) Delete(_ context.Context, id int) error {
	all, err := r.loadAll()
	if err != nil {
		return err
	}
	for i, existing := range all {
		if existing.GetID() == id {
			all = append(all[:i], all[i+1:]...)
			if err := r.saveAll(all); err != nil {
				return err
			}
			r.logger.Debug("entity deleted", slog.Int("id", id))
			return nil
		}
	}
	return nil
}

// GetAll returns every record on file in insertion order.
func (r *Repository[T]) GetAll(_ context.Context) ([]T, error) {
	return r.loadAll()
}
