package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starmatchhq/starmatch/internal/domain"
)

func TestMemory_StarterData(t *testing.T) {
	ctx := context.Background()
	stores, err := Memory(ctx, nil)
	require.NoError(t, err)

	users, err := stores.Users.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 4)
	assert.Equal(t, "amna@gmail.com", users[0].Email)
	assert.NotEqual(t, "parola", users[0].Password, "seed passwords are stored hashed")

	admins, err := stores.Admins.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, admins, 2)

	traits, err := stores.Traits.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, traits, 12)

	quotes, err := stores.Quotes.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, quotes, 16)

	signs, err := stores.Signs.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, signs, 12)
	assert.Equal(t, "Aries", signs[0].Name)
	assert.Equal(t, 1, signs[0].ID)
	assert.Equal(t, "Pisces", signs[11].Name)
	assert.Equal(t, 12, signs[11].ID)

	// Each sign's traits are exactly the three traits of its element.
	for _, sign := range signs {
		require.Len(t, sign.Traits, 3, "sign %s", sign.Name)
		for _, trait := range sign.Traits {
			assert.Equal(t, sign.Element, trait.Element)
		}
	}
}

func TestFiles_SeedsOnlyOnce(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	stores, err := Files(ctx, dir, nil)
	require.NoError(t, err)

	// Mutate the data, then reopen: the change must survive instead of
	// being overwritten by a re-seed.
	require.NoError(t, stores.Users.Create(ctx, &domain.User{
		Name:      "Extra",
		BirthDate: date(1999, 1, 1),
		BirthTime: domain.TimeOfDay{},
		Email:     "extra@example.com",
		Password:  "hash",
	}))

	reopened, err := Files(ctx, dir, nil)
	require.NoError(t, err)
	users, err := reopened.Users.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 5)
}
