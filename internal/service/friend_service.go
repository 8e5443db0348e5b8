package service

import (
	"context"
	"log/slog"

	"github.com/starmatchhq/starmatch/internal/domain"
	"github.com/starmatchhq/starmatch/internal/store"
)

// FriendService manages the symmetric friend graph.
type FriendService struct {
	users  store.Repository[*domain.User]
	logger *slog.Logger
}

// NewFriendService creates a FriendService.
func NewFriendService(users store.Repository[*domain.User], logger *slog.Logger) *FriendService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FriendService{
		users:  users,
		logger: logger.With(slog.String("component", "friend_service")),
	}
}

// AddFriend inserts a friendship between the two emails, symmetrically:
// each user ends up in the other's friend list. Befriending yourself is a
// business-rule violation; an email owned by no user is a not-found
// error. Re-adding an existing friend is a no-op.
func (s *FriendService) AddFriend(ctx context.Context, email, friendEmail string) error {
	user, err := lookupUserByEmail(ctx, s.users, email)
	if err != nil {
		return err
	}
	if domain.NormalizeEmail(friendEmail) == domain.NormalizeEmail(user.Email) {
		return ErrSelfFriend
	}
	friend, err := lookupUserByEmail(ctx, s.users, friendEmail)
	if err != nil {
		return err
	}

	user.AddFriendEmail(friend.Email)
	friend.AddFriendEmail(user.Email)
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	if err := s.users.Update(ctx, friend); err != nil {
		return err
	}

	s.logger.Info("friendship added",
		slog.Int("user_id", user.ID),
		slog.Int("friend_id", friend.ID))
	return nil
}

// RemoveFriend deletes the friendship symmetrically. An email owned by no
// user is a not-found error; removing someone who was never a friend is a
// no-op.
func (s *FriendService) RemoveFriend(ctx context.Context, email, friendEmail string) error {
	user, err := lookupUserByEmail(ctx, s.users, email)
	if err != nil {
		return err
	}
	friend, err := lookupUserByEmail(ctx, s.users, friendEmail)
	if err != nil {
		return err
	}

	user.RemoveFriendEmail(friend.Email)
	friend.RemoveFriendEmail(user.Email)
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	if err := s.users.Update(ctx, friend); err != nil {
		return err
	}

	s.logger.Info("friendship removed",
		slog.Int("user_id", user.ID),
		slog.Int("friend_id", friend.ID))
	return nil
}

// GetFriends resolves the user's friend list to full users.
func (s *FriendService) GetFriends(ctx context.Context, email string) ([]*domain.User, error) {
	user, err := lookupUserByEmail(ctx, s.users, email)
	if err != nil {
		return nil, err
	}
	friends := make([]*domain.User, 0, len(user.FriendEmails))
	for _, friendEmail := range user.FriendEmails {
		friend, err := lookupUserByEmail(ctx, s.users, friendEmail)
		if err != nil {
			// A dangling reference is a recoverable condition, not an
			// error: the friend simply drops out of the result.
			continue
		}
		friends = append(friends, friend)
	}
	return friends, nil
}

// GetFriendsNearMe returns the user's friends whose birth place exactly
// matches the user's. The scope is friends-only, not all users.
func (s *FriendService) GetFriendsNearMe(ctx context.Context, email string) ([]*domain.User, error) {
	user, err := lookupUserByEmail(ctx, s.users, email)
	if err != nil {
		return nil, err
	}
	friends, err := s.GetFriends(ctx, email)
	if err != nil {
		return nil, err
	}
	near := make([]*domain.User, 0, len(friends))
	for _, friend := range friends {
		if friend.BirthPlace == user.BirthPlace {
			near = append(near, friend)
		}
	}
	return near, nil
}
