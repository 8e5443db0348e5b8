package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starmatchhq/starmatch/internal/service"
	"github.com/starmatchhq/starmatch/internal/store"
)

func TestFriendService_AddFriendIsSymmetric(t *testing.T) {
	ctx := context.Background()
	stores := seededStores(t)
	users := service.NewUserService(stores.Users, nil)
	friends := service.NewFriendService(stores.Users, nil)

	require.NoError(t, friends.AddFriend(ctx, "amna@gmail.com", "florinel@gmail.com"))

	amna, err := users.GetByEmail(ctx, "amna@gmail.com")
	require.NoError(t, err)
	florian, err := users.GetByEmail(ctx, "florinel@gmail.com")
	require.NoError(t, err)
	assert.True(t, amna.HasFriend("florinel@gmail.com"))
	assert.True(t, florian.HasFriend("amna@gmail.com"))

	// Re-adding must not duplicate entries.
	require.NoError(t, friends.AddFriend(ctx, "amna@gmail.com", "florinel@gmail.com"))
	amna, err = users.GetByEmail(ctx, "amna@gmail.com")
	require.NoError(t, err)
	assert.Len(t, amna.FriendEmails, 1)
}

func TestFriendService_AddFriendRejectsSelf(t *testing.T) {
	ctx := context.Background()
	stores := seededStores(t)
	friends := service.NewFriendService(stores.Users, nil)

	err := friends.AddFriend(ctx, "amna@gmail.com", "AMNA@gmail.com")
	assert.ErrorIs(t, err, service.ErrSelfFriend)
	assert.ErrorIs(t, err, service.ErrBusinessRule)
}

func TestFriendService_AddFriendUnknownEmails(t *testing.T) {
	ctx := context.Background()
	stores := seededStores(t)
	friends := service.NewFriendService(stores.Users, nil)

	err := friends.AddFriend(ctx, "nobody@example.com", "amna@gmail.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	err = friends.AddFriend(ctx, "amna@gmail.com", "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestFriendService_RemoveFriendIsSymmetric(t *testing.T) {
	ctx := context.Background()
	stores := seededStores(t)
	users := service.NewUserService(stores.Users, nil)
	friends := service.NewFriendService(stores.Users, nil)

	require.NoError(t, friends.AddFriend(ctx, "amna@gmail.com", "florinel@gmail.com"))
	require.NoError(t, friends.RemoveFriend(ctx, "florinel@gmail.com", "amna@gmail.com"))

	amna, err := users.GetByEmail(ctx, "amna@gmail.com")
	require.NoError(t, err)
	florian, err := users.GetByEmail(ctx, "florinel@gmail.com")
	require.NoError(t, err)
	assert.False(t, amna.HasFriend("florinel@gmail.com"))
	assert.False(t, florian.HasFriend("amna@gmail.com"))

	// Removing a non-friend is a no-op.
	assert.NoError(t, friends.RemoveFriend(ctx, "amna@gmail.com", "florinel@gmail.com"))
}

func TestFriendService_GetFriends(t *testing.T) {
	ctx := context.Background()
	stores := seededStores(t)
	friends := service.NewFriendService(stores.Users, nil)

	require.NoError(t, friends.AddFriend(ctx, "amna@gmail.com", "florinel@gmail.com"))
	require.NoError(t, friends.AddFriend(ctx, "amna@gmail.com", "brianaagheorghe@yahoo.com"))

	got, err := friends.GetFriends(ctx, "amna@gmail.com")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "florinel@gmail.com", got[0].Email)
	assert.Equal(t, "brianaagheorghe@yahoo.com", got[1].Email)
}

func TestFriendService_GetFriendsNearMe(t *testing.T) {
	ctx := context.Background()
	stores := seededStores(t)
	friends := service.NewFriendService(stores.Users, nil)

	// Amna and Florian both live in Cluj, Briana in Sibiu. Only friends
	// count: Florian is near but not yet a friend.
	require.NoError(t, friends.AddFriend(ctx, "amna@gmail.com", "brianaagheorghe@yahoo.com"))

	near, err := friends.GetFriendsNearMe(ctx, "amna@gmail.com")
	require.NoError(t, err)
	assert.Empty(t, near, "non-friends in the same place must not appear")

	require.NoError(t, friends.AddFriend(ctx, "amna@gmail.com", "florinel@gmail.com"))
	near, err = friends.GetFriendsNearMe(ctx, "amna@gmail.com")
	require.NoError(t, err)
	require.Len(t, near, 1)
	assert.Equal(t, "florinel@gmail.com", near[0].Email)
}
