// Package mocks provides configurable test doubles for the store
// interfaces. Each mock exposes function fields so a test can inject
// exactly the behavior it needs, typically a storage failure.
package mocks

import (
	"context"

	"github.com/starmatchhq/starmatch/internal/domain"
	"github.com/starmatchhq/starmatch/internal/store"
)

// Repository is a configurable mock implementation of store.Repository.
type Repository[T domain.Entity] struct {
	CreateFn func(ctx context.Context, entity T) error
	GetFn    func(ctx context.Context, id int) (T, error)
	UpdateFn func(ctx context.Context, entity T) error
	DeleteFn func(ctx context.Context, id int) error
	GetAllFn func(ctx context.Context) ([]T, error)
}

var _ store.Repository[*domain.User] = (*Repository[*domain.User])(nil)

func (m *Repository[T]) Create(ctx context.Context, entity T) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, entity)
	}
	return nil
}

func (m *Repository[T]) Get(ctx context.Context, id int) (T, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	var zero T
	return zero, store.ErrNotFound
}

func (m *Repository[T]) Update(ctx context.Context, entity T) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, entity)
	}
	return nil
}

func (m *Repository[T]) Delete(ctx context.Context, id int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}
	return nil, nil
}
