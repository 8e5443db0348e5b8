package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/starmatchhq/starmatch/internal/domain"
	"github.com/starmatchhq/starmatch/internal/store"
)

// UserService manages user accounts: sign-up, login, profile updates and
// removal. Passwords are bcrypt-hashed before they reach any backend.
type UserService struct {
	users  store.Repository[*domain.User]
	logger *slog.Logger
}

// NewUserService creates a UserService. A nil logger falls back to
// slog.Default.
func NewUserService(users store.Repository[*domain.User], logger *slog.Logger) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		users:  users,
		logger: logger.With(slog.String("component", "user_service")),
	}
}

// SignUp registers a new user. The email must be well-formed and not
// already taken; the password is hashed before storage.
func (s *UserService) SignUp(ctx context.Context, name string, birthDate time.Time, birthTime domain.TimeOfDay, birthPlace, email, password string) (*domain.User, error) {
	user, err := domain.NewUser(name, birthDate, birthTime, birthPlace, email, password)
	if err != nil {
		return nil, err
	}

	if _, err := lookupUserByEmail(ctx, s.users, user.Email); err == nil {
		return nil, store.ErrEmailExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hash)

	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("email", user.Email))
		return nil, err
	}

	s.logger.Info("user signed up",
		slog.Int("user_id", user.ID),
		slog.String("email", user.Email))
	return user, nil
}

// Login verifies a user's credentials. Unknown emails and wrong passwords
// both report false; only storage faults surface as errors.
func (s *UserService) Login(ctx context.Context, email, password string) (bool, error) {
	user, err := lookupUserByEmail(ctx, s.users, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return false, nil
	}
	return true, nil
}

// GetByEmail returns the user owning the email, or store.ErrUserNotFound.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return lookupUserByEmail(ctx, s.users, email)
}

// GetAll returns every user in the backend's snapshot order.
func (s *UserService) GetAll(ctx context.Context) ([]*domain.User, error) {
	return s.users.GetAll(ctx)
}

// GetAllExcept returns every user but the one owning the email.
func (s *UserService) GetAllExcept(ctx context.Context, email string) ([]*domain.User, error) {
	email = domain.NormalizeEmail(email)
	all, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	others := make([]*domain.User, 0, len(all))
	for _, user := range all {
		if domain.NormalizeEmail(user.Email) != email {
			others = append(others, user)
		}
	}
	return others, nil
}

// UserUpdate carries the fields of a profile update. Zero-valued fields
// keep the stored value (partial-update semantics).
type UserUpdate struct {
	Name       string
	Email      string
	Password   string
	BirthDate  *time.Time
	BirthTime  *domain.TimeOfDay
	BirthPlace string
}

// Update applies a partial profile update to the user owning email. A new
// email is validated and checked for uniqueness; a new password is
// re-hashed.
func (s *UserService) Update(ctx context.Context, email string, upd UserUpdate) (*domain.User, error) {
	stored, err := lookupUserByEmail(ctx, s.users, email)
	if err != nil {
		return nil, err
	}

	// The memory backend hands out the stored pointer, so mutations stay
	// on a copy until the whole update is known valid.
	user := *stored

	var oldEmail string
	if upd.Name != "" {
		user.Name = upd.Name
	}
	if upd.Email != "" {
		newEmail := domain.NormalizeEmail(upd.Email)
		if !domain.ValidateEmailFormat(newEmail) {
			return nil, domain.ErrInvalidEmail
		}
		if newEmail != user.Email {
			if _, err := lookupUserByEmail(ctx, s.users, newEmail); err == nil {
				return nil, store.ErrEmailExists
			} else if !errors.Is(err, store.ErrUserNotFound) {
				return nil, err
			}
			oldEmail = user.Email
			user.Email = newEmail
		}
	}
	if upd.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hash)
	}
	if upd.BirthDate != nil {
		user.BirthDate = *upd.BirthDate
	}
	if upd.BirthTime != nil {
		user.BirthTime = *upd.BirthTime
	}
	if upd.BirthPlace != "" {
		user.BirthPlace = upd.BirthPlace
	}

	if err := s.users.Update(ctx, &user); err != nil {
		s.logger.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.Int("user_id", user.ID))
		return nil, err
	}

	// Friend lists reference users by email, so a changed address must be
	// rewritten in every friend's list after the user row carries it.
	if oldEmail != "" {
		if err := s.renameInFriendLists(ctx, oldEmail, user.Email); err != nil {
			return nil, err
		}
	}

	s.logger.Info("user updated", slog.Int("user_id", user.ID))
	return &user, nil
}

// Delete removes a user and scrubs them from every other user's friend
// list, preserving the symmetric-friendship invariant.
func (s *UserService) Delete(ctx context.Context, id int) error {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}

	all, err := s.users.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, other := range all {
		if other.ID == user.ID || !other.HasFriend(user.Email) {
			continue
		}
		other.RemoveFriendEmail(user.Email)
		if err := s.users.Update(ctx, other); err != nil {
			return err
		}
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", slog.Int("user_id", id))
	return nil
}

// renameInFriendLists rewrites oldEmail to newEmail in every friend list
// that references it.
func (s *UserService) renameInFriendLists(ctx context.Context, oldEmail, newEmail string) error {
	all, err := s.users.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, other := range all {
		if !other.HasFriend(oldEmail) {
			continue
		}
		other.RemoveFriendEmail(oldEmail)
		other.AddFriendEmail(newEmail)
		if err := s.users.Update(ctx, other); err != nil {
			return err
		}
	}
	return nil
}
