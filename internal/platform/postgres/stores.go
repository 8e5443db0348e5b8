package postgres

import (
	"database/sql"
	"log/slog"

	"github.com/starmatchhq/starmatch/internal/domain"
	"github.com/starmatchhq/starmatch/internal/store"
)

// NewAdminStore creates the relational admin store. Admins have no
// associations, so the generic repository is the whole store.
func NewAdminStore(db *sql.DB, log *slog.Logger) *Repo[*domain.Admin] {
	return NewRepo(db, Descriptor[*domain.Admin]{
		Table:    "admins",
		Entity:   "admin",
		NotFound: store.ErrAdminNotFound,
		Columns:  []string{"name", "email", "password"},
		Values: func(a *domain.Admin) []any {
			return []any{a.Name, a.Email, a.Password}
		},
		Scan: func(row RowScanner) (*domain.Admin, error) {
			var a domain.Admin
			if err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Password); err != nil {
				return nil, err
			}
			return &a, nil
		},
	}, log)
}

// NewTraitStore creates the relational trait store.
func NewTraitStore(db *sql.DB, log *slog.Logger) *Repo[*domain.Trait] {
	return NewRepo(db, Descriptor[*domain.Trait]{
		Table:    "traits",
		Entity:   "trait",
		NotFound: store.ErrTraitNotFound,
		Columns:  []string{"element", "name"},
		Values: func(t *domain.Trait) []any {
			return []any{t.Element.String(), t.Name}
		},
		Scan: func(row RowScanner) (*domain.Trait, error) {
			var (
				t       domain.Trait
				element string
			)
			if err := row.Scan(&t.ID, &element, &t.Name); err != nil {
				return nil, err
			}
			parsed, err := domain.ParseElement(element)
			if err != nil {
				return nil, err
			}
			t.Element = parsed
			return &t, nil
		},
	}, log)
}

// NewQuoteStore creates the relational quote store.
func NewQuoteStore(db *sql.DB, log *slog.Logger) *Repo[*domain.Quote] {
	return NewRepo(db, Descriptor[*domain.Quote]{
		Table:    "quotes",
		Entity:   "quote",
		NotFound: store.ErrQuoteNotFound,
		Columns:  []string{"element", "text"},
		Values: func(q *domain.Quote) []any {
			return []any{q.Element.String(), q.Text}
		},
		Scan: func(row RowScanner) (*domain.Quote, error) {
			var (
				q       domain.Quote
				element string
			)
			if err := row.Scan(&q.ID, &element, &q.Text); err != nil {
				return nil, err
			}
			parsed, err := domain.ParseElement(element)
			if err != nil {
				return nil, err
			}
			q.Element = parsed
			return &q, nil
		},
	}, log)
}
