// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Specific validation errors below wrap it so callers can match the
	// whole family with errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyName is returned when a required name field is empty.
	ErrEmptyName = fmt.Errorf("%w: name cannot be empty", ErrValidation)

	// ErrEmptyEmail is returned when an email address is missing.
	ErrEmptyEmail = fmt.Errorf("%w: email cannot be empty", ErrValidation)

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = fmt.Errorf("%w: invalid email format", ErrValidation)

	// ErrEmptyPassword is returned when a password is missing.
	ErrEmptyPassword = fmt.Errorf("%w: password cannot be empty", ErrValidation)

	// ErrZeroBirthDate is returned when a user has no birth date.
	ErrZeroBirthDate = fmt.Errorf("%w: birth date cannot be zero", ErrValidation)

	// ErrInvalidElement is returned when a string does not name one of the
	// four elements.
	ErrInvalidElement = fmt.Errorf("%w: invalid element", ErrValidation)

	// ErrEmptyQuoteText is returned when a quote has no text.
	ErrEmptyQuoteText = fmt.Errorf("%w: quote text cannot be empty", ErrValidation)

	// ErrEmptyTraitName is returned when a trait has no name.
	ErrEmptyTraitName = fmt.Errorf("%w: trait name cannot be empty", ErrValidation)

	// ErrInvalidSignOrdinal is returned when a star sign's ordinal is
	// outside the 1..12 range.
	ErrInvalidSignOrdinal = fmt.Errorf("%w: star sign ordinal must be between 1 and 12", ErrValidation)
)
