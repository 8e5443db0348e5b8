// Package seed constructs repositories pre-populated with the StarMatch
// starter data: four demo users, two admins, the twelve traits grouped by
// element, the twelve signs and the starter quote set. The relational
// backend seeds its reference data through migrations instead; this
// package covers the in-memory and flat-file paths and the tests.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/starmatchhq/starmatch/internal/domain"
	"github.com/starmatchhq/starmatch/internal/platform/flatfile"
	"github.com/starmatchhq/starmatch/internal/platform/memory"
	"github.com/starmatchhq/starmatch/internal/store"
)

// Stores bundles the five repositories one backend provides.
type Stores struct {
	Users  store.Repository[*domain.User]
	Admins store.Repository[*domain.Admin]
	Signs  store.Repository[*domain.StarSign]
	Traits store.Repository[*domain.Trait]
	Quotes store.Repository[*domain.Quote]
}

// Memory builds fully seeded in-memory repositories.
func Memory(ctx context.Context, logger *slog.Logger) (*Stores, error) {
	s := &Stores{
		Users:  memory.NewRepository[*domain.User]("user", store.ErrUserNotFound, logger),
		Admins: memory.NewRepository[*domain.Admin]("admin", store.ErrAdminNotFound, logger),
		Signs:  memory.NewRepository[*domain.StarSign]("star sign", store.ErrStarSignNotFound, logger),
		Traits: memory.NewRepository[*domain.Trait]("trait", store.ErrTraitNotFound, logger),
		Quotes: memory.NewRepository[*domain.Quote]("quote", store.ErrQuoteNotFound, logger),
	}
	if err := populate(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Files builds flat-file repositories under dir, seeding them only when
// the user file does not exist yet.
func Files(ctx context.Context, dir string, logger *slog.Logger) (*Stores, error) {
	traits := flatfile.NewTraitRepository(filepath.Join(dir, "traits.txt"), logger)
	resolve := func(ids []int) ([]*domain.Trait, error) {
		resolved := make([]*domain.Trait, 0, len(ids))
		for _, id := range ids {
			trait, err := traits.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			resolved = append(resolved, trait)
		}
		return resolved, nil
	}

	s := &Stores{
		Users:  flatfile.NewUserRepository(filepath.Join(dir, "users.txt"), logger),
		Admins: flatfile.NewAdminRepository(filepath.Join(dir, "admins.txt"), logger),
		Signs:  flatfile.NewStarSignRepository(filepath.Join(dir, "starsigns.txt"), resolve, logger),
		Traits: traits,
		Quotes: flatfile.NewQuoteRepository(filepath.Join(dir, "quotes.txt"), logger),
	}

	existing, err := s.Users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		if err := populate(ctx, s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// populate writes the starter data into empty repositories.
func populate(ctx context.Context, s *Stores) error {
	if err := seedTraits(ctx, s.Traits); err != nil {
		return err
	}
	if err := seedSigns(ctx, s.Signs, s.Traits); err != nil {
		return err
	}
	if err := seedQuotes(ctx, s.Quotes); err != nil {
		return err
	}
	if err := seedUsers(ctx, s.Users); err != nil {
		return err
	}
	return seedAdmins(ctx, s.Admins)
}

func seedUsers(ctx context.Context, users store.Repository[*domain.User]) error {
	demo := []struct {
		name, place, email, password string
		birthDate                    time.Time
		birthTime                    domain.TimeOfDay
	}{
		{"Amna", "Cluj", "amna@gmail.com", "parola", date(2000, 3, 12), domain.TimeOfDay{Hour: 9}},
		{"Florian", "Cluj", "florinel@gmail.com", "0987", date(2007, 7, 24), domain.TimeOfDay{Hour: 10}},
		{"Briana Gheorghe", "Sibiu", "brianaagheorghe@yahoo.com", "bribri", date(2004, 1, 3), domain.TimeOfDay{Hour: 22, Minute: 12}},
		{"sore marian", "Victoria", "soremarian@gmail.com", "sore1", date(1990, 9, 10), domain.TimeOfDay{Hour: 6, Minute: 23}},
	}
	for _, d := range demo {
		hash, err := hashPassword(d.password)
		if err != nil {
			return err
		}
		user := &domain.User{
			Name:       d.name,
			BirthDate:  d.birthDate,
			BirthTime:  d.birthTime,
			BirthPlace: d.place,
			Email:      d.email,
			Password:   hash,
		}
		if err := users.Create(ctx, user); err != nil {
			return err
		}
	}
	return nil
}

func seedAdmins(ctx context.Context, admins store.Repository[*domain.Admin]) error {
	demo := []struct{ name, email, password string }{
		{"Bogdan Popa", "bogdan.popa@yahoo.com", "1234"},
		{"Ioana Popa", "ioana.popa@yahoo.com", "1234"},
	}
	for _, d := range demo {
		hash, err := hashPassword(d.password)
		if err != nil {
			return err
		}
		if err := admins.Create(ctx, &domain.Admin{Name: d.name, Email: d.email, Password: hash}); err != nil {
			return err
		}
	}
	return nil
}

func seedTraits(ctx context.Context, traits store.Repository[*domain.Trait]) error {
	demo := []struct {
		element domain.Element
		name    string
	}{
		{domain.Fire, "passionate"},
		{domain.Fire, "playful"},
		{domain.Fire, "energized"},
		{domain.Water, "emotional"},
		{domain.Water, "intuitive"},
		{domain.Water, "nurturing"},
		{domain.Air, "adventurous"},
		{domain.Air, "curious"},
		{domain.Air, "sociable"},
		{domain.Earth, "stable"},
		{domain.Earth, "pragmatic"},
		{domain.Earth, "analytic"},
	}
	for _, d := range demo {
		if err := traits.Create(ctx, &domain.Trait{Element: d.element, Name: d.name}); err != nil {
			return err
		}
	}
	return nil
}

func seedSigns(ctx context.Context, signs store.Repository[*domain.StarSign], traits store.Repository[*domain.Trait]) error {
	all, err := traits.GetAll(ctx)
	if err != nil {
		return err
	}
	byElement := make(map[domain.Element][]*domain.Trait)
	for _, trait := range all {
		byElement[trait.Element] = append(byElement[trait.Element], trait)
	}

	demo := []struct {
		name    string
		element domain.Element
	}{
		{"Aries", domain.Fire},
		{"Taurus", domain.Earth},
		{"Gemini", domain.Air},
		{"Cancer", domain.Water},
		{"Leo", domain.Fire},
		{"Virgo", domain.Earth},
		{"Libra", domain.Air},
		{"Scorpio", domain.Water},
		{"Sagittarius", domain.Fire},
		{"Capricorn", domain.Earth},
		{"Aquarius", domain.Air},
		{"Pisces", domain.Water},
	}
	for i, d := range demo {
		sign := &domain.StarSign{
			ID:      i + 1,
			Name:    d.name,
			Element: d.element,
			Traits:  byElement[d.element],
		}
		if err := signs.Create(ctx, sign); err != nil {
			return err
		}
	}
	return nil
}

func seedQuotes(ctx context.Context, quotes store.Repository[*domain.Quote]) error {
	demo := []struct {
		element domain.Element
		text    string
	}{
		{domain.Fire, "The only trip you will regret is the one you don't take."},
		{domain.Fire, "Adventure is worthwhile in itself."},
		{domain.Fire, "Life begins at the end of your comfort zone."},
		{domain.Fire, "Free spirits don't ask for permission."},
		{domain.Water, "Normal is nothing more than a cycle on a washing machine."},
		{domain.Water, "The great gift of human beings is that we have the power of empathy."},
		{domain.Water, "To be rude to someone is not my nature."},
		{domain.Water, "Learn as much from joy as you do from pain."},
		{domain.Air, "That was her gift. She filled you with words you didn't know were there."},
		{domain.Air, "I feel like I'm too busy writing history to read it."},
		{domain.Air, "Identify with everything. Align with nothing."},
		{domain.Air, "Everything in the universe is within you. Ask all from yourself."},
		{domain.Earth, "Empty yourself and let the universe fill you."},
		{domain.Earth, "Fall seven times, stand up eight."},
		{domain.Earth, "I have standards I don't plan on lowering for anybody, including myself."},
		{domain.Earth, "Be easily awed, not easily impressed."},
	}
	for _, d := range demo {
		if err := quotes.Create(ctx, &domain.Quote{Element: d.element, Text: d.text}); err != nil {
			return err
		}
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash seed password: %w", err)
	}
	return string(hash), nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
