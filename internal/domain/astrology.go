package domain

// Trait is a personality trait associated with an element. Each star
// sign's trait list is exactly the traits sharing its element.
type Trait struct {
	ID      int     `json:"id"`
	Element Element `json:"element"`
	Name    string  `json:"name"`
}

// GetID implements Entity.
func (t *Trait) GetID() int { return t.ID }

// SetID implements Entity.
func (t *Trait) SetID(id int) { t.ID = id }

// Validate checks the trait's fields.
func (t *Trait) Validate() error {
	if t.Name == "" {
		return ErrEmptyTraitName
	}
	if !t.Element.IsValid() {
		return ErrInvalidElement
	}
	return nil
}

// StarSign is one of the twelve zodiac signs. The ordinal (1..12, Aries
// first) is stable and drives date-range derivation; Traits holds the
// sign's associated traits in seed order.
type StarSign struct {
	ID      int      `json:"id"` // ordinal, 1..12
	Name    string   `json:"name"`
	Element Element  `json:"element"`
	Traits  []*Trait `json:"traits"`
}

// GetID implements Entity.
func (s *StarSign) GetID() int { return s.ID }

// SetID implements Entity.
func (s *StarSign) SetID(id int) { s.ID = id }

// Validate checks the sign's fields.
func (s *StarSign) Validate() error {
	if s.Name == "" {
		return ErrEmptyName
	}
	if !s.Element.IsValid() {
		return ErrInvalidElement
	}
	if s.ID < 1 || s.ID > 12 {
		return ErrInvalidSignOrdinal
	}
	return nil
}

// TraitNames returns the sign's trait names in stored order.
func (s *StarSign) TraitNames() []string {
	names := make([]string, 0, len(s.Traits))
	for _, t := range s.Traits {
		names = append(names, t.Name)
	}
	return names
}

// Quote is an inspirational quote tied to an element, served to users
// whose Sun-sign element matches.
type Quote struct {
	ID      int     `json:"id"`
	Element Element `json:"element"`
	Text    string  `json:"text"`
}

// GetID implements Entity.
func (q *Quote) GetID() int { return q.ID }

// SetID implements Entity.
func (q *Quote) SetID(id int) { q.ID = id }

// Validate checks the quote's fields.
func (q *Quote) Validate() error {
	if q.Text == "" {
		return ErrEmptyQuoteText
	}
	if !q.Element.IsValid() {
		return ErrInvalidElement
	}
	return nil
}

// Placement is one (planet, sign) entry of a natal chart.
type Placement struct {
	Planet string    `json:"planet"`
	Sign   *StarSign `json:"sign"`
}

// NatalChart is a derived, never-persisted sequence of placements for a
// user. The first placement is always the Sun sign, which all other
// computations key off.
type NatalChart struct {
	Placements []Placement `json:"placements"`
}

// SunSign returns the chart's primary sign, or nil for an empty chart.
func (c *NatalChart) SunSign() *StarSign {
	if len(c.Placements) == 0 {
		return nil
	}
	return c.Placements[0].Sign
}

// Compatibility is a derived value object holding the percentage score
// between two users. Computed on demand, never persisted.
type Compatibility struct {
	UserEmail   string `json:"user_email"`
	FriendEmail string `json:"friend_email"`
	Score       int    `json:"score"` // 0..100
}
