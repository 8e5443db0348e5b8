package postgres

import (
	"context"
	"log/slog"

	"github.com/starmatchhq/starmatch/internal/domain"
	"github.com/starmatchhq/starmatch/internal/store"
)

// UserFriends manages the user_friends join table. Friendships are stored
// as explicit bidirectional rows: each direction is owned and rewritten by
// its own user's store.
type UserFriends struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserFriends creates the friendship join repository.
func NewUserFriends(db store.DBTX, log *slog.Logger) *UserFriends {
	if log == nil {
		log = slog.Default()
	}
	return &UserFriends{db: db, logger: log.With(slog.String("component", "user_friends"))}
}

var _ store.Association = (*UserFriends)(nil)

// WithTx returns the join repository bound to tx.
func (f *UserFriends) WithTx(tx store.DBTX) *UserFriends {
	return &UserFriends{db: tx, logger: f.logger}
}

// Add records a friendship row from ownerID to relatedID.
func (f *UserFriends) Add(ctx context.Context, ownerID, relatedID int) error {
	const q = `INSERT INTO user_friends (user_id, friend_id) VALUES ($1, $2)`
	if _, err := f.db.ExecContext(ctx, q, ownerID, relatedID); err != nil {
		return mapError("user friendship", "add", err, store.ErrUserNotFound)
	}
	return nil
}

// RemoveAll deletes the rows owned by ownerID, leaving the reverse
// direction to the friend's own store.
func (f *UserFriends) RemoveAll(ctx context.Context, ownerID int) error {
	const q = `DELETE FROM user_friends WHERE user_id = $1`
	if _, err := f.db.ExecContext(ctx, q, ownerID); err != nil {
		return mapError("user friendship", "remove all", err, store.ErrUserNotFound)
	}
	return nil
}

// RemoveBothDirections deletes every row touching userID, used when the
// user itself is deleted.
func (f *UserFriends) RemoveBothDirections(ctx context.Context, userID int) error {
	const q = `DELETE FROM user_friends WHERE user_id = $1 OR friend_id = $1`
	if _, err := f.db.ExecContext(ctx, q, userID); err != nil {
		return mapError("user friendship", "remove all", err, store.ErrUserNotFound)
	}
	return nil
}

// ListRelated returns the friend ids of ownerID.
func (f *UserFriends) ListRelated(ctx context.Context, ownerID int) ([]int, error) {
	const q = `SELECT friend_id FROM user_friends WHERE user_id = $1 ORDER BY friend_id`
	rows, err := f.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, mapError("user friendship", "list", err, store.ErrUserNotFound)
	}
	defer func() { _ = rows.Close() }()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, mapError("user friendship", "list", err, store.ErrUserNotFound)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("user friendship", "list", err, store.ErrUserNotFound)
	}
	return ids, nil
}

// ListEmails returns the emails of ownerID's friends, used to hydrate the
// user's friend list on reads.
func (f *UserFriends) ListEmails(ctx context.Context, ownerID int) ([]string, error) {
	const q = `
		SELECT u.email FROM user_friends uf
		JOIN users u ON u.id = uf.friend_id
		WHERE uf.user_id = $1
		ORDER BY u.id
	`
	rows, err := f.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, mapError("user friendship", "list emails", err, store.ErrUserNotFound)
	}
	defer func() { _ = rows.Close() }()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, mapError("user friendship", "list emails", err, store.ErrUserNotFound)
		}
		emails = append(emails, email)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("user friendship", "list emails", err, store.ErrUserNotFound)
	}
	return emails, nil
}

// StarSignTraits manages the star_sign_traits join table linking each
// sign to the traits of its element.
type StarSignTraits struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewStarSignTraits creates the sign-trait join repository.
func NewStarSignTraits(db store.DBTX, log *slog.Logger) *StarSignTraits {
	if log == nil {
		log = slog.Default()
	}
	return &StarSignTraits{db: db, logger: log.With(slog.String("component", "star_sign_traits"))}
}

var _ store.Association = (*StarSignTraits)(nil)

// WithTx returns the join repository bound to tx.
func (s *StarSignTraits) WithTx(tx store.DBTX) *StarSignTraits {
	return &StarSignTraits{db: tx, logger: s.logger}
}

// Add links a trait to a star sign.
func (s *StarSignTraits) Add(ctx context.Context, ownerID, relatedID int) error {
	const q = `INSERT INTO star_sign_traits (star_sign_id, trait_id) VALUES ($1, $2)`
	if _, err := s.db.ExecContext(ctx, q, ownerID, relatedID); err != nil {
		return mapError("star sign trait", "add", err, store.ErrStarSignNotFound)
	}
	return nil
}

// RemoveAll unlinks every trait from the sign.
func (s *StarSignTraits) RemoveAll(ctx context.Context, ownerID int) error {
	const q = `DELETE FROM star_sign_traits WHERE star_sign_id = $1`
	if _, err := s.db.ExecContext(ctx, q, ownerID); err != nil {
		return mapError("star sign trait", "remove all", err, store.ErrStarSignNotFound)
	}
	return nil
}

// ListRelated returns the trait ids linked to the sign.
func (s *StarSignTraits) ListRelated(ctx context.Context, ownerID int) ([]int, error) {
	const q = `SELECT trait_id FROM star_sign_traits WHERE star_sign_id = $1 ORDER BY trait_id`
	rows, err := s.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, mapError("star sign trait", "list", err, store.ErrStarSignNotFound)
	}
	defer func() { _ = rows.Close() }()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, mapError("star sign trait", "list", err, store.ErrStarSignNotFound)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("star sign trait", "list", err, store.ErrStarSignNotFound)
	}
	return ids, nil
}

// ListTraits returns the full traits linked to the sign, in trait id
// order, for hydration on sign reads.
func (s *StarSignTraits) ListTraits(ctx context.Context, ownerID int) ([]*domain.Trait, error) {
	const q = `
		SELECT t.id, t.element, t.name FROM star_sign_traits st
		JOIN traits t ON t.id = st.trait_id
		WHERE st.star_sign_id = $1
		ORDER BY t.id
	`
	rows, err := s.db.QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, mapError("star sign trait", "list traits", err, store.ErrStarSignNotFound)
	}
	defer func() { _ = rows.Close() }()

	var traits []*domain.Trait
	for rows.Next() {
		var (
			trait   domain.Trait
			element string
		)
		if err := rows.Scan(&trait.ID, &element, &trait.Name); err != nil {
			return nil, mapError("star sign trait", "list traits", err, store.ErrStarSignNotFound)
		}
		parsed, err := domain.ParseElement(element)
		if err != nil {
			return nil, mapError("star sign trait", "list traits", err, store.ErrStarSignNotFound)
		}
		trait.Element = parsed
		traits = append(traits, &trait)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("star sign trait", "list traits", err, store.ErrStarSignNotFound)
	}
	return traits, nil
}
