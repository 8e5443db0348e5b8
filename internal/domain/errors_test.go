package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Callers branch on ErrValidation alone, so every field-level sentinel
// must report membership in the family via errors.Is.
func TestValidationSentinelsWrapErrValidation(t *testing.T) {
	sentinels := map[string]error{
		"ErrEmptyName":          ErrEmptyName,
		"ErrEmptyEmail":         ErrEmptyEmail,
		"ErrInvalidEmail":       ErrInvalidEmail,
		"ErrEmptyPassword":      ErrEmptyPassword,
		"ErrZeroBirthDate":      ErrZeroBirthDate,
		"ErrInvalidElement":     ErrInvalidElement,
		"ErrEmptyQuoteText":     ErrEmptyQuoteText,
		"ErrEmptyTraitName":     ErrEmptyTraitName,
		"ErrInvalidSignOrdinal": ErrInvalidSignOrdinal,
		"ErrInvalidTimeOfDay":   ErrInvalidTimeOfDay,
	}
	for name, err := range sentinels {
		assert.ErrorIs(t, err, ErrValidation, name)
	}
}
