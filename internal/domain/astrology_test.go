package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseElement(t *testing.T) {
	for _, element := range Elements {
		got, err := ParseElement(string(element))
		require.NoError(t, err)
		assert.Equal(t, element, got)
	}

	_, err := ParseElement("Plasma")
	assert.ErrorIs(t, err, ErrInvalidElement)

	_, err = ParseElement("fire")
	assert.ErrorIs(t, err, ErrInvalidElement, "element names are case-sensitive")
}

func TestTrait_Validate(t *testing.T) {
	assert.NoError(t, (&Trait{Element: Fire, Name: "passionate"}).Validate())
	assert.ErrorIs(t, (&Trait{Element: Fire}).Validate(), ErrEmptyTraitName)
	assert.ErrorIs(t, (&Trait{Element: "Plasma", Name: "odd"}).Validate(), ErrInvalidElement)
}

func TestStarSign_Validate(t *testing.T) {
	valid := &StarSign{ID: 1, Name: "Aries", Element: Fire}
	assert.NoError(t, valid.Validate())

	assert.ErrorIs(t, (&StarSign{ID: 1, Element: Fire}).Validate(), ErrEmptyName)
	assert.ErrorIs(t, (&StarSign{ID: 0, Name: "Aries", Element: Fire}).Validate(), ErrInvalidSignOrdinal)
	assert.ErrorIs(t, (&StarSign{ID: 13, Name: "Ophiuchus", Element: Fire}).Validate(), ErrInvalidSignOrdinal)
}

func TestStarSign_TraitNames(t *testing.T) {
	sign := &StarSign{
		ID:      1,
		Name:    "Aries",
		Element: Fire,
		Traits: []*Trait{
			{ID: 1, Element: Fire, Name: "passionate"},
			{ID: 2, Element: Fire, Name: "playful"},
			{ID: 3, Element: Fire, Name: "energized"},
		},
	}
	assert.Equal(t, []string{"passionate", "playful", "energized"}, sign.TraitNames())
	assert.Empty(t, (&StarSign{}).TraitNames())
}

func TestQuote_Validate(t *testing.T) {
	assert.NoError(t, (&Quote{Element: Water, Text: "Learn as much from joy as you do from pain."}).Validate())
	assert.ErrorIs(t, (&Quote{Element: Water}).Validate(), ErrEmptyQuoteText)
	assert.ErrorIs(t, (&Quote{Element: "Mud", Text: "x"}).Validate(), ErrInvalidElement)
}

func TestNatalChart_SunSign(t *testing.T) {
	aries := &StarSign{ID: 1, Name: "Aries", Element: Fire}
	chart := &NatalChart{Placements: []Placement{
		{Planet: "Sun", Sign: aries},
		{Planet: "Moon", Sign: &StarSign{ID: 2, Name: "Taurus", Element: Earth}},
	}}

	assert.Same(t, aries, chart.SunSign())
	assert.Nil(t, (&NatalChart{}).SunSign())
}

func TestAdmin_Validate(t *testing.T) {
	admin, err := NewAdmin("Bogdan Popa", "bogdan.popa@yahoo.com", "1234")
	require.NoError(t, err)
	assert.NoError(t, admin.Validate())

	_, err = NewAdmin("", "bogdan.popa@yahoo.com", "1234")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewAdmin("Bogdan Popa", "bogdan@com", "1234")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = NewAdmin("Bogdan Popa", "bogdan.popa@yahoo.com", "")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}
