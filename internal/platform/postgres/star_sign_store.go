package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/starmatchhq/starmatch/internal/domain"
	"github.com/starmatchhq/starmatch/internal/store"
)

// starSignDescriptor maps StarSign scalar fields to the star_signs table.
// Sign ids are the stable 1..12 ordinals, so they are caller-assigned
// rather than generated. The trait list is collection-valued and handled
// by the star_sign_traits join repository.
func starSignDescriptor() Descriptor[*domain.StarSign] {
	return Descriptor[*domain.StarSign]{
		Table:      "star_signs",
		Entity:     "star sign",
		NotFound:   store.ErrStarSignNotFound,
		ExplicitID: true,
		Columns:    []string{"name", "element"},
		Values: func(s *domain.StarSign) []any {
			return []any{s.Name, s.Element.String()}
		},
		Scan: func(row RowScanner) (*domain.StarSign, error) {
			var (
				s       domain.StarSign
				element string
			)
			if err := row.Scan(&s.ID, &s.Name, &element); err != nil {
				return nil, err
			}
			parsed, err := domain.ParseElement(element)
			if err != nil {
				return nil, err
			}
			s.Element = parsed
			return &s, nil
		},
	}
}

// StarSignStore implements store.Repository for star signs, combining the
// generic scalar repository with the star_sign_traits join repository.
type StarSignStore struct {
	db     *sql.DB
	repo   *Repo[*domain.StarSign]
	traits *StarSignTraits
	logger *slog.Logger
}

// NewStarSignStore creates the relational star-sign store.
func NewStarSignStore(db *sql.DB, log *slog.Logger) *StarSignStore {
	if log == nil {
		log = slog.Default()
	}
	return &StarSignStore{
		db:     db,
		repo:   NewRepo(db, starSignDescriptor(), log),
		traits: NewStarSignTraits(db, log),
		logger: log.With(slog.String("component", "star_sign_store")),
	}
}

var _ store.Repository[*domain.StarSign] = (*StarSignStore)(nil)

// Create inserts the sign row under its ordinal id, then links its traits
// as a secondary step inside one transaction.
func (s *StarSignStore) Create(ctx context.Context, sign *domain.StarSign) error {
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.repo.WithTx(tx).Create(ctx, sign); err != nil {
			return err
		}
		return s.syncTraits(ctx, tx, sign)
	})
}

// Get returns the sign with its trait list fully hydrated.
func (s *StarSignStore) Get(ctx context.Context, id int) (*domain.StarSign, error) {
	sign, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.hydrate(ctx, sign); err != nil {
		return nil, err
	}
	return sign, nil
}

// Update overwrites the sign row and clears-then-rewrites its trait
// links.
func (s *StarSignStore) Update(ctx context.Context, sign *domain.StarSign) error {
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.repo.WithTx(tx).Update(ctx, sign); err != nil {
			return err
		}
		return s.syncTraits(ctx, tx, sign)
	})
}

// Delete removes the sign and its trait links.
func (s *StarSignStore) Delete(ctx context.Context, id int) error {
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.traits.WithTx(tx).RemoveAll(ctx, id); err != nil {
			return err
		}
		return s.repo.WithTx(tx).Delete(ctx, id)
	})
}

// GetAll returns all signs in ordinal order, each with a fully hydrated
// trait list.
func (s *StarSignStore) GetAll(ctx context.Context) ([]*domain.StarSign, error) {
	signs, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, sign := range signs {
		if err := s.hydrate(ctx, sign); err != nil {
			return nil, err
		}
	}
	return signs, nil
}

// hydrate fills the sign's trait list from the join table.
func (s *StarSignStore) hydrate(ctx context.Context, sign *domain.StarSign) error {
	traits, err := s.traits.ListTraits(ctx, sign.ID)
	if err != nil {
		return err
	}
	sign.Traits = traits
	return nil
}

// syncTraits clears and rewrites the sign's trait links to match the
// in-memory trait list.
func (s *StarSignStore) syncTraits(ctx context.Context, tx store.DBTX, sign *domain.StarSign) error {
	joined := s.traits.WithTx(tx)
	if err := joined.RemoveAll(ctx, sign.ID); err != nil {
		return err
	}
	for _, trait := range sign.Traits {
		if err := joined.Add(ctx, sign.ID, trait.ID); err != nil {
			return err
		}
	}
	return nil
}
