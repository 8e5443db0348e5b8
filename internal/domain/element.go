package domain

import "fmt"

// Element is the coarse classification of zodiac signs used for
// compatibility, traits and quotes. The enumeration is closed: exactly
// Fire, Water, Air and Earth.
type Element string

// The four elements.
const (
	Fire  Element = "Fire"
	Water Element = "Water"
	Air   Element = "Air"
	Earth Element = "Earth"
)

// Elements lists all four elements in a stable order.
var Elements = []Element{Fire, Water, Air, Earth}

// ParseElement converts a textual element name into an Element.
// Returns ErrInvalidElement for anything outside the closed set.
func ParseElement(s string) (Element, error) {
	switch Element(s) {
	case Fire, Water, Air, Earth:
		return Element(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidElement, s)
}

// IsValid reports whether the element is one of the four known values.
func (e Element) IsValid() bool {
	switch e {
	case Fire, Water, Air, Earth:
		return true
	}
	return false
}

// String returns the element's name, which is also its serialized form in
// the flat-file and relational backends.
func (e Element) String() string { return string(e) }
