package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starmatchhq/starmatch/internal/domain"
	"github.com/starmatchhq/starmatch/internal/service"
)

func TestAnalyticsService_FilterUsersByYear(t *testing.T) {
	ctx := context.Background()
	stores := seededStores(t)
	users := service.NewUserService(stores.Users, nil)
	analytics := service.NewAnalyticsService(stores.Users, stores.Signs, stores.Quotes, nil)

	signUp(t, users, "Dana", "dana@example.com", birthday(2001, 6, 23), domain.TimeOfDay{}, "Cluj")

	matched, err := analytics.FilterUsersByYear(ctx, 2001)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "dana@example.com", matched[0].Email)

	matched, err = analytics.FilterUsersByYear(ctx, 1961)
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestAnalyticsService_FilterQuotesByElement(t *testing.T) {
	ctx := context.Background()
	stores := seededStores(t)
	analytics := service.NewAnalyticsService(stores.Users, stores.Signs, stores.Quotes, nil)

	for _, element := range domain.Elements {
		quotes, err := analytics.FilterQuotesByElement(ctx, element)
		require.NoError(t, err)
		assert.Len(t, quotes, 4, "element %s", element)
		for _, quote := range quotes {
			assert.Equal(t, element, quote.Element)
		}
	}
}

func TestAnalyticsService_MostPopularElements(t *testing.T) {
	ctx := context.Background()
	stores := seededStores(t)
	analytics := service.NewAnalyticsService(stores.Users, stores.Signs, stores.Quotes, nil)

	// Seeded birth dates: Amna is Pisces (Water), Florian Leo (Fire),
	// Briana Capricorn (Earth), Sore Virgo (Earth). Air has no users but
	// still appears with a zero count.
	counts, err := analytics.MostPopularElements(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 4)
	assert.Equal(t, 1, counts[domain.Water])
	assert.Equal(t, 1, counts[domain.Fire])
	assert.Equal(t, 2, counts[domain.Earth])
	assert.Equal(t, 0, counts[domain.Air])
}

func TestAnalyticsService_MostPopularElementsEmpty(t *testing.T) {
	ctx := context.Background()
	stores := emptyStores(t)
	analytics := service.NewAnalyticsService(stores.Users, stores.Signs, stores.Quotes, nil)

	counts, err := analytics.MostPopularElements(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 4)
	for element, n := range counts {
		assert.Zero(t, n, "element %s", element)
	}
}
