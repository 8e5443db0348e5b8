package astro

import "github.com/starmatchhq/starmatch/internal/domain"

// Score bands for element pairings.
const (
	scoreSameSign      = 100
	scoreSameElement   = 90
	scoreComplementary = 75
	scoreNeutral       = 50
	scoreOpposing      = 25
)

// complementary holds the traditionally harmonious cross-element pairs.
var complementary = map[[2]domain.Element]bool{
	{domain.Fire, domain.Air}:    true,
	{domain.Air, domain.Fire}:    true,
	{domain.Earth, domain.Water}: true,
	{domain.Water, domain.Earth}: true,
}

// opposing holds the traditionally conflicting cross-element pairs.
var opposing = map[[2]domain.Element]bool{
	{domain.Fire, domain.Water}: true,
	{domain.Water, domain.Fire}: true,
	{domain.Earth, domain.Air}:  true,
	{domain.Air, domain.Earth}:  true,
}

// Score computes the compatibility percentage between two signs. The
// result is deterministic, symmetric and always within [0,100]: identical
// signs score 100, matching elements 90, complementary elements 75,
// opposing elements 25 and every remaining pairing 50.
func Score(a, b *domain.StarSign) int {
	switch {
	case a.ID == b.ID:
		return scoreSameSign
	case a.Element == b.Element:
		return scoreSameElement
	case complementary[[2]domain.Element{a.Element, b.Element}]:
		return scoreComplementary
	case opposing[[2]domain.Element{a.Element, b.Element}]:
		return scoreOpposing
	default:
		return scoreNeutral
	}
}
