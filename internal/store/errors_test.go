package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntitySentinelsMatchFamily(t *testing.T) {
	tests := []struct {
		name string
		err  error
		root error
	}{
		{"user not found", ErrUserNotFound, ErrNotFound},
		{"admin not found", ErrAdminNotFound, ErrNotFound},
		{"star sign not found", ErrStarSignNotFound, ErrNotFound},
		{"trait not found", ErrTraitNotFound, ErrNotFound},
		{"quote not found", ErrQuoteNotFound, ErrNotFound},
		{"email exists", ErrEmailExists, ErrDuplicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.root)
		})
	}
}

func TestStoreError(t *testing.T) {
	inner := errors.New("disk on fire")
	err := NewStoreError("user", "create", inner)

	assert.Equal(t, "create operation on user failed: disk on fire", err.Error())
	assert.ErrorIs(t, err, inner)

	wrapped := NewStoreError("quote", "read", ErrStorage)
	assert.True(t, IsStorageFailure(wrapped))
	assert.False(t, IsNotFound(wrapped))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrUserNotFound))
	assert.True(t, IsNotFound(NewStoreError("user", "get", ErrUserNotFound)))
	assert.False(t, IsNotFound(ErrStorage))
	assert.False(t, IsNotFound(nil))
}
