package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/starmatchhq/starmatch/internal/domain"
	"github.com/starmatchhq/starmatch/internal/platform/memory"
	"github.com/starmatchhq/starmatch/internal/seed"
	"github.com/starmatchhq/starmatch/internal/service"
	"github.com/starmatchhq/starmatch/internal/store"
)

// seededStores returns in-memory repositories carrying the starter data:
// four users, two admins, twelve traits, twelve signs and sixteen quotes.
func seededStores(t *testing.T) *seed.Stores {
	t.Helper()
	stores, err := seed.Memory(context.Background(), nil)
	require.NoError(t, err)
	return stores
}

// emptyStores returns empty in-memory repositories for tests that build
// their own fixtures.
func emptyStores(t *testing.T) *seed.Stores {
	t.Helper()
	return &seed.Stores{
		Users:  memory.NewRepository[*domain.User]("user", store.ErrUserNotFound, nil),
		Admins: memory.NewRepository[*domain.Admin]("admin", store.ErrAdminNotFound, nil),
		Signs:  memory.NewRepository[*domain.StarSign]("star sign", store.ErrStarSignNotFound, nil),
		Traits: memory.NewRepository[*domain.Trait]("trait", store.ErrTraitNotFound, nil),
		Quotes: memory.NewRepository[*domain.Quote]("quote", store.ErrQuoteNotFound, nil),
	}
}

// signUp registers a user through the service so the password gets
// hashed the same way Login expects.
func signUp(t *testing.T, users *service.UserService, name, email string, birthDate time.Time, birthTime domain.TimeOfDay, place string) *domain.User {
	t.Helper()
	user, err := users.SignUp(context.Background(), name, birthDate, birthTime, place, email, "secret")
	require.NoError(t, err)
	return user
}

func birthday(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
