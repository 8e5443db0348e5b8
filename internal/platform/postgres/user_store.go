package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/starmatchhq/starmatch/internal/domain"
	"github.com/starmatchhq/starmatch/internal/store"
)

// userDescriptor maps User scalar fields to the users table. The friend
// list is collection-valued and therefore excluded; UserStore syncs it
// through the user_friends join repository.
func userDescriptor() Descriptor[*domain.User] {
	return Descriptor[*domain.User]{
		Table:    "users",
		Entity:   "user",
		NotFound: store.ErrUserNotFound,
		Columns:  []string{"name", "birth_date", "birth_time", "birth_place", "email", "password"},
		Values: func(u *domain.User) []any {
			return []any{u.Name, u.BirthDate, u.BirthTime.String(), u.BirthPlace, u.Email, u.Password}
		},
		Scan: func(row RowScanner) (*domain.User, error) {
			var (
				u         domain.User
				birthTime string
			)
			if err := row.Scan(&u.ID, &u.Name, &u.BirthDate, &birthTime, &u.BirthPlace, &u.Email, &u.Password); err != nil {
				return nil, err
			}
			parsed, err := domain.ParseTimeOfDay(birthTime)
			if err != nil {
				return nil, err
			}
			u.BirthTime = parsed
			return &u, nil
		},
		// Users list in birth-date order on this backend; memory and file
		// keep insertion order. Covered as backend-specific behavior by
		// the integration tests.
		OrderBy: "birth_date, id",
	}
}

// UserStore implements store.Repository for users over PostgreSQL,
// combining the generic scalar repository with the user_friends join
// repository. Writes that touch both run in a transaction.
type UserStore struct {
	db      *sql.DB
	repo    *Repo[*domain.User]
	friends *UserFriends
	logger  *slog.Logger
}

// NewUserStore creates the relational user store.
func NewUserStore(db *sql.DB, log *slog.Logger) *UserStore {
	if log == nil {
		log = slog.Default()
	}
	return &UserStore{
		db:      db,
		repo:    NewRepo(db, userDescriptor(), log),
		friends: NewUserFriends(db, log),
		logger:  log.With(slog.String("component", "user_store")),
	}
}

var _ store.Repository[*domain.User] = (*UserStore)(nil)

// Create inserts the base row, assigns the generated id, then writes the
// friendship rows as a secondary step inside one transaction.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.repo.WithTx(tx).Create(ctx, user); err != nil {
			return err
		}
		return s.syncFriendships(ctx, tx, user)
	})
}

// Get returns the user with the friend list fully hydrated.
func (s *UserStore) Get(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.hydrate(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update overwrites the base row and rewrites the owned friendship rows
// from scratch rather than diffing them.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.repo.WithTx(tx).Update(ctx, user); err != nil {
			return err
		}
		return s.syncFriendships(ctx, tx, user)
	})
}

// Delete removes the user and every friendship row touching them.
func (s *UserStore) Delete(ctx context.Context, id int) error {
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.friends.WithTx(tx).RemoveBothDirections(ctx, id); err != nil {
			return err
		}
		return s.repo.WithTx(tx).Delete(ctx, id)
	})
}

// GetAll returns every user ordered by birth date, each with a fully
// hydrated friend list.
func (s *UserStore) GetAll(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if err := s.hydrate(ctx, user); err != nil {
			return nil, err
		}
	}
	return users, nil
}

// hydrate fills the user's friend email list from the join table.
func (s *UserStore) hydrate(ctx context.Context, user *domain.User) error {
	emails, err := s.friends.ListEmails(ctx, user.ID)
	if err != nil {
		return err
	}
	user.FriendEmails = emails
	return nil
}

// syncFriendships clears and rewrites the friendship rows owned by the
// user to match the in-memory friend list. Emails that resolve to no user
// are skipped; the service layer rejects them before writes get here.
func (s *UserStore) syncFriendships(ctx context.Context, tx store.DBTX, user *domain.User) error {
	friends := s.friends.WithTx(tx)
	if err := friends.RemoveAll(ctx, user.ID); err != nil {
		return err
	}
	for _, email := range user.FriendEmails {
		friendID, err := s.lookupIDByEmail(ctx, tx, email)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				continue
			}
			return err
		}
		if err := friends.Add(ctx, user.ID, friendID); err != nil {
			return err
		}
	}
	return nil
}

// lookupIDByEmail resolves an email to a user id within tx.
func (s *UserStore) lookupIDByEmail(ctx context.Context, tx store.DBTX, email string) (int, error) {
	const q = `SELECT id FROM users WHERE email = $1`
	var id int
	if err := tx.QueryRowContext(ctx, q, email).Scan(&id); err != nil {
		return 0, mapError("user", "lookup by email", err, store.ErrUserNotFound)
	}
	return id, nil
}
