package service

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/starmatchhq/starmatch/internal/domain"
	"github.com/starmatchhq/starmatch/internal/domain/astro"
	"github.com/starmatchhq/starmatch/internal/store"
)

// AstrologyService derives natal charts, personality traits, personalized
// quotes and compatibility scores for users. All derivations key off the
// Sun sign computed from the birth date.
type AstrologyService struct {
	users  store.Repository[*domain.User]
	signs  store.Repository[*domain.StarSign]
	quotes store.Repository[*domain.Quote]
	logger *slog.Logger
}

// NewAstrologyService creates an AstrologyService.
func NewAstrologyService(
	users store.Repository[*domain.User],
	signs store.Repository[*domain.StarSign],
	quotes store.Repository[*domain.Quote],
	logger *slog.Logger,
) *AstrologyService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AstrologyService{
		users:  users,
		signs:  signs,
		quotes: quotes,
		logger: logger.With(slog.String("component", "astrology_service")),
	}
}

// GetNatalChart computes the three-placement chart for the user owning
// email. The chart is a derived value and is never persisted.
func (s *AstrologyService) GetNatalChart(ctx context.Context, email string) (*domain.NatalChart, error) {
	user, err := lookupUserByEmail(ctx, s.users, email)
	if err != nil {
		return nil, err
	}

	ordinals := astro.ChartOrdinals(user.BirthDate, user.BirthTime)
	chart := &domain.NatalChart{Placements: make([]domain.Placement, 0, len(ordinals))}
	for _, p := range ordinals {
		sign, err := s.signs.Get(ctx, p.Ordinal)
		if err != nil {
			return nil, err
		}
		chart.Placements = append(chart.Placements, domain.Placement{Planet: p.Planet, Sign: sign})
	}
	return chart, nil
}

// sunSign resolves the user's Sun sign through the sign repository.
func (s *AstrologyService) sunSign(ctx context.Context, user *domain.User) (*domain.StarSign, error) {
	return s.signs.Get(ctx, astro.SunOrdinal(user.BirthDate))
}

// GetPersonalityTraits returns the trait names of the user's Sun sign in
// the sign's stored order.
func (s *AstrologyService) GetPersonalityTraits(ctx context.Context, email string) ([]string, error) {
	user, err := lookupUserByEmail(ctx, s.users, email)
	if err != nil {
		return nil, err
	}
	sign, err := s.sunSign(ctx, user)
	if err != nil {
		return nil, err
	}
	return sign.TraitNames(), nil
}

// GetPersonalizedQuote picks a quote uniformly at random among the quotes
// matching the user's Sun-sign element. Returns ErrNoQuoteForElement when
// the element has no quotes.
func (s *AstrologyService) GetPersonalizedQuote(ctx context.Context, email string) (string, error) {
	user, err := lookupUserByEmail(ctx, s.users, email)
	if err != nil {
		return "", err
	}
	sign, err := s.sunSign(ctx, user)
	if err != nil {
		return "", err
	}

	all, err := s.quotes.GetAll(ctx)
	if err != nil {
		return "", err
	}
	matching := make([]*domain.Quote, 0, len(all))
	for _, quote := range all {
		if quote.Element == sign.Element {
			matching = append(matching, quote)
		}
	}
	if len(matching) == 0 {
		return "", ErrNoQuoteForElement
	}
	return matching[rand.IntN(len(matching))].Text, nil
}

// GetCompatibility scores the pairing of the two users' Sun signs. The
// score is deterministic, symmetric and within [0,100], and is computed
// on demand rather than persisted.
func (s *AstrologyService) GetCompatibility(ctx context.Context, email, friendEmail string) (*domain.Compatibility, error) {
	user, err := lookupUserByEmail(ctx, s.users, email)
	if err != nil {
		return nil, err
	}
	friend, err := lookupUserByEmail(ctx, s.users, friendEmail)
	if err != nil {
		return nil, err
	}

	userSign, err := s.sunSign(ctx, user)
	if err != nil {
		return nil, err
	}
	friendSign, err := s.sunSign(ctx, friend)
	if err != nil {
		return nil, err
	}

	return &domain.Compatibility{
		UserEmail:   user.Email,
		FriendEmail: friend.Email,
		Score:       astro.Score(userSign, friendSign),
	}, nil
}
