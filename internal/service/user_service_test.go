package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starmatchhq/starmatch/internal/domain"
	"github.com/starmatchhq/starmatch/internal/mocks"
	"github.com/starmatchhq/starmatch/internal/service"
	"github.com/starmatchhq/starmatch/internal/store"
)

func TestUserService_SignUp(t *testing.T) {
	ctx := context.Background()
	stores := emptyStores(t)
	users := service.NewUserService(stores.Users, nil)

	user, err := users.SignUp(ctx, "Jane", birthday(1995, 12, 15), domain.TimeOfDay{Hour: 9}, "Cluj", "Jane@Example.com", "secret")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.NotEqual(t, "secret", user.Password, "password must be stored hashed")

	t.Run("duplicate email", func(t *testing.T) {
		_, err := users.SignUp(ctx, "Other", birthday(2000, 1, 1), domain.TimeOfDay{}, "Cluj", "JANE@example.com", "other")
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := users.SignUp(ctx, "Bad", birthday(2000, 1, 1), domain.TimeOfDay{}, "Cluj", "bad@com", "pw")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := users.SignUp(ctx, "", birthday(2000, 1, 1), domain.TimeOfDay{}, "Cluj", "ok@example.com", "pw")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	stores := seededStores(t)
	users := service.NewUserService(stores.Users, nil)

	ok, err := users.Login(ctx, "amna@gmail.com", "parola")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = users.Login(ctx, "amna@gmail.com", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = users.Login(ctx, "nobody@example.com", "parola")
	require.NoError(t, err)
	assert.False(t, ok, "unknown email reports false, not an error")
}

func TestUserService_GetAllExcept(t *testing.T) {
	ctx := context.Background()
	stores := seededStores(t)
	users := service.NewUserService(stores.Users, nil)

	others, err := users.GetAllExcept(ctx, "AMNA@gmail.com")
	require.NoError(t, err)
	require.Len(t, others, 3)
	for _, other := range others {
		assert.NotEqual(t, "amna@gmail.com", other.Email)
	}
}

func TestUserService_UpdatePartial(t *testing.T) {
	ctx := context.Background()
	stores := seededStores(t)
	users := service.NewUserService(stores.Users, nil)

	newTime := domain.TimeOfDay{Hour: 14, Minute: 45}
	updated, err := users.Update(ctx, "amna@gmail.com", service.UserUpdate{
		Name:      "Amna M.",
		BirthTime: &newTime,
	})
	require.NoError(t, err)
	assert.Equal(t, "Amna M.", updated.Name)
	assert.Equal(t, newTime, updated.BirthTime)
	assert.Equal(t, "Cluj", updated.BirthPlace, "untouched fields keep their values")
	assert.Equal(t, "amna@gmail.com", updated.Email)
}

func TestUserService_UpdateEmailPropagatesToFriendLists(t *testing.T) {
	ctx := context.Background()
	stores := seededStores(t)
	users := service.NewUserService(stores.Users, nil)
	friends := service.NewFriendService(stores.Users, nil)

	require.NoError(t, friends.AddFriend(ctx, "amna@gmail.com", "florinel@gmail.com"))

	_, err := users.Update(ctx, "amna@gmail.com", service.UserUpdate{Email: "amna.new@gmail.com"})
	require.NoError(t, err)

	florian, err := users.GetByEmail(ctx, "florinel@gmail.com")
	require.NoError(t, err)
	assert.True(t, florian.HasFriend("amna.new@gmail.com"))
	assert.False(t, florian.HasFriend("amna@gmail.com"))

	_, err = users.GetByEmail(ctx, "amna@gmail.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_UpdateEmailConflict(t *testing.T) {
	ctx := context.Background()
	stores := seededStores(t)
	users := service.NewUserService(stores.Users, nil)

	_, err := users.Update(ctx, "amna@gmail.com", service.UserUpdate{Email: "florinel@gmail.com"})
	assert.ErrorIs(t, err, store.ErrEmailExists)

	_, err = users.Update(ctx, "amna@gmail.com", service.UserUpdate{Email: "broken@com"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_FailedUpdateLeavesStateIntact(t *testing.T) {
	ctx := context.Background()
	stores := seededStores(t)
	users := service.NewUserService(stores.Users, nil)

	// Name change rides along with a bad email: the whole update must be
	// rejected, not half-applied.
	_, err := users.Update(ctx, "amna@gmail.com", service.UserUpdate{
		Name:  "Should Not Stick",
		Email: "broken@com",
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	amna, err := users.GetByEmail(ctx, "amna@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, "Amna", amna.Name)

	// Same for an email conflict.
	_, err = users.Update(ctx, "amna@gmail.com", service.UserUpdate{
		Name:  "Should Not Stick",
		Email: "florinel@gmail.com",
	})
	require.ErrorIs(t, err, store.ErrEmailExists)

	amna, err = users.GetByEmail(ctx, "amna@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, "Amna", amna.Name)
}

func TestUserService_DeleteScrubsFriendLists(t *testing.T) {
	ctx := context.Background()
	stores := seededStores(t)
	users := service.NewUserService(stores.Users, nil)
	friends := service.NewFriendService(stores.Users, nil)

	require.NoError(t, friends.AddFriend(ctx, "amna@gmail.com", "florinel@gmail.com"))
	require.NoError(t, friends.AddFriend(ctx, "brianaagheorghe@yahoo.com", "florinel@gmail.com"))

	florian, err := users.GetByEmail(ctx, "florinel@gmail.com")
	require.NoError(t, err)
	require.NoError(t, users.Delete(ctx, florian.ID))

	amna, err := users.GetByEmail(ctx, "amna@gmail.com")
	require.NoError(t, err)
	assert.False(t, amna.HasFriend("florinel@gmail.com"))

	briana, err := users.GetByEmail(ctx, "brianaagheorghe@yahoo.com")
	require.NoError(t, err)
	assert.False(t, briana.HasFriend("florinel@gmail.com"))

	// Deleting an id that no longer exists is a no-op.
	assert.NoError(t, users.Delete(ctx, florian.ID))
}

func TestUserService_StorageFailuresPropagate(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("backend exploded")
	failing := &mocks.Repository[*domain.User]{
		GetAllFn: func(ctx context.Context) ([]*domain.User, error) { return nil, boom },
	}
	users := service.NewUserService(failing, nil)

	_, err := users.SignUp(ctx, "Jane", birthday(1995, 12, 15), domain.TimeOfDay{}, "Cluj", "jane@example.com", "pw")
	assert.ErrorIs(t, err, boom)

	_, err = users.GetByEmail(ctx, "jane@example.com")
	assert.ErrorIs(t, err, boom)

	ok, err := users.Login(ctx, "jane@example.com", "pw")
	assert.False(t, ok)
	assert.ErrorIs(t, err, boom)
}
