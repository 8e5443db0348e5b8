package service

import (
	"context"
	"log/slog"

	"github.com/starmatchhq/starmatch/internal/domain"
	"github.com/starmatchhq/starmatch/internal/domain/astro"
	"github.com/starmatchhq/starmatch/internal/store"
)

// AnalyticsService provides the filtering and aggregation operations.
type AnalyticsService struct {
	users  store.Repository[*domain.User]
	signs  store.Repository[*domain.StarSign]
	quotes store.Repository[*domain.Quote]
	logger *slog.Logger
}

// NewAnalyticsService creates an AnalyticsService.
func NewAnalyticsService(
	users store.Repository[*domain.User],
	signs store.Repository[*domain.StarSign],
	quotes store.Repository[*domain.Quote],
	logger *slog.Logger,
) *AnalyticsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyticsService{
		users:  users,
		signs:  signs,
		quotes: quotes,
		logger: logger.With(slog.String("component", "analytics_service")),
	}
}

// FilterUsersByYear returns the users born in the given calendar year, in
// the backend's snapshot order.
func (s *AnalyticsService) FilterUsersByYear(ctx context.Context, year int) ([]*domain.User, error) {
	all, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	matching := make([]*domain.User, 0, len(all))
	for _, user := range all {
		if user.BirthDate.Year() == year {
			matching = append(matching, user)
		}
	}
	return matching, nil
}

// FilterQuotesByElement returns the quotes tied to the given element.
func (s *AnalyticsService) FilterQuotesByElement(ctx context.Context, element domain.Element) ([]*domain.Quote, error) {
	all, err := s.quotes.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	matching := make([]*domain.Quote, 0, len(all))
	for _, quote := range all {
		if quote.Element == element {
			matching = append(matching, quote)
		}
	}
	return matching, nil
}

// MostPopularElements counts users by Sun-sign element. All four elements
// are always present in the result, with zero counts included, so the
// values sum to the number of users with a resolvable sign.
func (s *AnalyticsService) MostPopularElements(ctx context.Context) (map[domain.Element]int, error) {
	all, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.Element]int, len(domain.Elements))
	for _, element := range domain.Elements {
		counts[element] = 0
	}
	for _, user := range all {
		sign, err := s.signs.Get(ctx, astro.SunOrdinal(user.BirthDate))
		if err != nil {
			if store.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		counts[sign.Element]++
	}
	return counts, nil
}
