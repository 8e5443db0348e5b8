package astro

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/starmatchhq/starmatch/internal/domain"
)

func sign(id int, element domain.Element) *domain.StarSign {
	return &domain.StarSign{ID: id, Name: fmt.Sprintf("sign-%d", id), Element: element}
}

func TestScore_Bands(t *testing.T) {
	tests := []struct {
		name string
		a, b *domain.StarSign
		want int
	}{
		{"same sign", sign(Aries, domain.Fire), sign(Aries, domain.Fire), 100},
		{"same element", sign(Aries, domain.Fire), sign(Leo, domain.Fire), 90},
		{"fire and air complement", sign(Aries, domain.Fire), sign(Gemini, domain.Air), 75},
		{"earth and water complement", sign(Taurus, domain.Earth), sign(Cancer, domain.Water), 75},
		{"fire and water oppose", sign(Aries, domain.Fire), sign(Cancer, domain.Water), 25},
		{"earth and air oppose", sign(Taurus, domain.Earth), sign(Gemini, domain.Air), 25},
		{"fire and earth are neutral", sign(Aries, domain.Fire), sign(Taurus, domain.Earth), 50},
		{"air and water are neutral", sign(Gemini, domain.Air), sign(Cancer, domain.Water), 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.a, tt.b))
		})
	}
}

func TestScore_SymmetricAndBounded(t *testing.T) {
	elements := []domain.Element{
		domain.Fire, domain.Earth, domain.Air, domain.Water,
		domain.Fire, domain.Earth, domain.Air, domain.Water,
		domain.Fire, domain.Earth, domain.Air, domain.Water,
	}
	signs := make([]*domain.StarSign, 0, 12)
	for i, element := range elements {
		signs = append(signs, sign(i+1, element))
	}

	for _, a := range signs {
		for _, b := range signs {
			got := Score(a, b)
			assert.Equal(t, got, Score(b, a), "score(%d,%d) not symmetric", a.ID, b.ID)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		}
	}
}
