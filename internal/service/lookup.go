package service

import (
	"context"

	"github.com/starmatchhq/starmatch/internal/domain"
	"github.com/starmatchhq/starmatch/internal/store"
)

// lookupUserByEmail resolves an email to a user by scanning the
// repository snapshot. Email comparison is case-insensitive. Returns
// store.ErrUserNotFound when no user owns the email, keeping lookup
// behavior identical across backends.
func lookupUserByEmail(ctx context.Context, users store.Repository[*domain.User], email string) (*domain.User, error) {
	email = domain.NormalizeEmail(email)
	all, err := users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range all {
		if domain.NormalizeEmail(user.Email) == email {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// lookupAdminByEmail resolves an email to an admin.
func lookupAdminByEmail(ctx context.Context, admins store.Repository[*domain.Admin], email string) (*domain.Admin, error) {
	email = domain.NormalizeEmail(email)
	all, err := admins.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, admin := range all {
		if domain.NormalizeEmail(admin.Email) == email {
			return admin, nil
		}
	}
	return nil, store.ErrAdminNotFound
}
