// Package service implements the StarMatch domain engine: account
// management, astrology computations, the friend graph and analytics.
// Services are written against the store contract only and never branch
// on the concrete backend.
package service

import (
	"errors"
	"fmt"

	"github.com/starmatchhq/starmatch/internal/store"
)

// Business-rule errors raised by the domain engine.
var (
	// ErrBusinessRule is the root of all business-rule violations.
	ErrBusinessRule = errors.New("business rule violation")

	// ErrSelfFriend is returned when a user tries to befriend themselves.
	ErrSelfFriend = fmt.Errorf("%w: you cannot add yourself as your friend", ErrBusinessRule)

	// ErrNoQuoteForElement is returned when no quote exists for a user's
	// element. It belongs to the not-found family.
	ErrNoQuoteForElement = fmt.Errorf("%w: quote for element", store.ErrNotFound)
)
