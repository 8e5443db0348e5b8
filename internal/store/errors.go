package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all backend implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific variants below wrap it, so callers can match
	// the whole family with errors.Is.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g. a user with the same email, or an explicit
	// id that is already taken).
	ErrDuplicate = errors.New("entity already exists")

	// ErrStorage is returned when the storage medium itself fails: disk
	// I/O, a broken database connection, a constraint violation. Callers
	// never see raw driver errors; they see this sentinel wrapped with
	// context.
	ErrStorage = errors.New("storage failure")

	// Entity-specific "not found" errors.

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrAdminNotFound indicates that the requested admin does not exist.
	ErrAdminNotFound = fmt.Errorf("%w: admin", ErrNotFound)

	// ErrStarSignNotFound indicates that the requested star sign does not exist.
	ErrStarSignNotFound = fmt.Errorf("%w: star sign", ErrNotFound)

	// ErrTraitNotFound indicates that the requested trait does not exist.
	ErrTraitNotFound = fmt.Errorf("%w: trait", ErrNotFound)

	// ErrQuoteNotFound indicates that the requested quote does not exist.
	ErrQuoteNotFound = fmt.Errorf("%w: quote", ErrNotFound)

	// ErrEmailExists indicates that an account with the given email already
	// exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFound reports whether err is any kind of "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsStorageFailure reports whether err is a storage-medium fault.
func IsStorageFailure(err error) bool {
	return errors.Is(err, ErrStorage)
}

// StoreError carries backend context for a failed operation while
// preserving the wrapped sentinel for errors.Is matching.
type StoreError struct {
	Entity    string // the entity type, e.g. "user"
	Operation string // the operation that failed, e.g. "create"
	Err       error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s operation on %s failed: %v", e.Operation, e.Entity, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error { return e.Err }

// NewStoreError wraps err with entity and operation context.
func NewStoreError(entity, operation string, err error) *StoreError {
	return &StoreError{Entity: entity, Operation: operation, Err: err}
}
