package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/starmatchhq/starmatch/internal/domain"
	"github.com/starmatchhq/starmatch/internal/store"
)

// AdminService manages administrator accounts and the curated reference
// data: quotes and traits. Trait edits cascade into the star signs'
// trait lists, which are always exactly the traits sharing each sign's
// element.
type AdminService struct {
	admins store.Repository[*domain.Admin]
	quotes store.Repository[*domain.Quote]
	traits store.Repository[*domain.Trait]
	signs  store.Repository[*domain.StarSign]
	logger *slog.Logger
}

// NewAdminService creates an AdminService.
func NewAdminService(
	admins store.Repository[*domain.Admin],
	quotes store.Repository[*domain.Quote],
	traits store.Repository[*domain.Trait],
	signs store.Repository[*domain.StarSign],
	logger *slog.Logger,
) *AdminService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminService{
		admins: admins,
		quotes: quotes,
		traits: traits,
		signs:  signs,
		logger: logger.With(slog.String("component", "admin_service")),
	}
}

// Login verifies an admin's credentials. Unknown emails and wrong
// passwords both report false.
func (s *AdminService) Login(ctx context.Context, email, password string) (bool, error) {
	admin, err := lookupAdminByEmail(ctx, s.admins, email)
	if err != nil {
		if errors.Is(err, store.ErrAdminNotFound) {
			return false, nil
		}
		return false, err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return false, nil
	}
	return true, nil
}

// CreateAdmin registers a new administrator with a hashed password.
func (s *AdminService) CreateAdmin(ctx context.Context, name, email, password string) (*domain.Admin, error) {
	admin, err := domain.NewAdmin(name, email, password)
	if err != nil {
		return nil, err
	}

	if _, err := lookupAdminByEmail(ctx, s.admins, admin.Email); err == nil {
		return nil, store.ErrEmailExists
	} else if !errors.Is(err, store.ErrAdminNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	admin.Password = string(hash)

	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, err
	}
	s.logger.Info("admin created", slog.Int("admin_id", admin.ID))
	return admin, nil
}

// UpdateAdmin applies a partial update: blank fields keep stored values.
func (s *AdminService) UpdateAdmin(ctx context.Context, id int, name, email, password string) (*domain.Admin, error) {
	stored, err := s.admins.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Mutate a copy: the memory backend hands out the stored pointer, and
	// a failed validation must not leave a half-applied update behind.
	admin := *stored
	if name != "" {
		admin.Name = name
	}
	if email != "" {
		email = domain.NormalizeEmail(email)
		if !domain.ValidateEmailFormat(email) {
			return nil, domain.ErrInvalidEmail
		}
		admin.Email = email
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		admin.Password = string(hash)
	}
	if err := s.admins.Update(ctx, &admin); err != nil {
		return nil, err
	}
	s.logger.Info("admin updated", slog.Int("admin_id", id))
	return &admin, nil
}

// DeleteAdmin removes an administrator. Deleting an absent id is a no-op.
func (s *AdminService) DeleteAdmin(ctx context.Context, id int) error {
	return s.admins.Delete(ctx, id)
}

// GetAdmins returns all administrators.
func (s *AdminService) GetAdmins(ctx context.Context) ([]*domain.Admin, error) {
	return s.admins.GetAll(ctx)
}

// CreateQuote adds a quote under the given element name.
func (s *AdminService) CreateQuote(ctx context.Context, text, element string) (*domain.Quote, error) {
	parsed, err := domain.ParseElement(element)
	if err != nil {
		return nil, err
	}
	quote := &domain.Quote{Element: parsed, Text: text}
	if err := quote.Validate(); err != nil {
		return nil, err
	}
	if err := s.quotes.Create(ctx, quote); err != nil {
		return nil, err
	}
	s.logger.Info("quote created", slog.Int("quote_id", quote.ID))
	return quote, nil
}

// UpdateQuoteText replaces a quote's text, keeping its element.
func (s *AdminService) UpdateQuoteText(ctx context.Context, id int, text string) (*domain.Quote, error) {
	quote, err := s.quotes.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if text != "" {
		quote.Text = text
	}
	if err := s.quotes.Update(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// DeleteQuote removes a quote. Deleting an absent id is a no-op.
func (s *AdminService) DeleteQuote(ctx context.Context, id int) error {
	return s.quotes.Delete(ctx, id)
}

// GetQuotes returns all quotes.
func (s *AdminService) GetQuotes(ctx context.Context) ([]*domain.Quote, error) {
	return s.quotes.GetAll(ctx)
}

// CreateTrait adds a trait and cascades the element grouping into the
// sign trait lists.
func (s *AdminService) CreateTrait(ctx context.Context, name string, element domain.Element) (*domain.Trait, error) {
	trait := &domain.Trait{Element: element, Name: name}
	if err := trait.Validate(); err != nil {
		return nil, err
	}
	if err := s.traits.Create(ctx, trait); err != nil {
		return nil, err
	}
	if err := s.regroupSignTraits(ctx); err != nil {
		return nil, err
	}
	s.logger.Info("trait created", slog.Int("trait_id", trait.ID))
	return trait, nil
}

// UpdateTrait applies a partial update and cascades the element grouping.
func (s *AdminService) UpdateTrait(ctx context.Context, id int, name string, element domain.Element) (*domain.Trait, error) {
	stored, err := s.traits.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	trait := *stored
	if name != "" {
		trait.Name = name
	}
	if element != "" {
		if !element.IsValid() {
			return nil, domain.ErrInvalidElement
		}
		trait.Element = element
	}
	if err := s.traits.Update(ctx, &trait); err != nil {
		return nil, err
	}
	if err := s.regroupSignTraits(ctx); err != nil {
		return nil, err
	}
	return &trait, nil
}

// DeleteTrait removes a trait and cascades the element grouping.
func (s *AdminService) DeleteTrait(ctx context.Context, id int) error {
	if err := s.traits.Delete(ctx, id); err != nil {
		return err
	}
	return s.regroupSignTraits(ctx)
}

// GetTraits returns all traits.
func (s *AdminService) GetTraits(ctx context.Context) ([]*domain.Trait, error) {
	return s.traits.GetAll(ctx)
}

// regroupSignTraits rewrites every sign's trait list as the traits
// sharing its element. The association is maintained by this cascade, not
// by direct edits; on the relational backend each sign update rewrites
// the join table.
func (s *AdminService) regroupSignTraits(ctx context.Context) error {
	traits, err := s.traits.GetAll(ctx)
	if err != nil {
		return err
	}
	byElement := make(map[domain.Element][]*domain.Trait, len(domain.Elements))
	for _, trait := range traits {
		byElement[trait.Element] = append(byElement[trait.Element], trait)
	}

	signs, err := s.signs.GetAll(ctx)
	if err != nil {
		return err
	}
	for _, sign := range signs {
		sign.Traits = byElement[sign.Element]
		if err := s.signs.Update(ctx, sign); err != nil {
			return err
		}
	}
	return nil
}
