package astro

import (
	"time"

	"github.com/starmatchhq/starmatch/internal/domain"
)

// Planet labels of the three chart entries, in chart order.
const (
	PlanetSun       = "Sun"
	PlanetMoon      = "Moon"
	PlanetAscendant = "Ascendant"
)

// PlanetOrdinal is one chart entry before sign resolution.
type PlanetOrdinal struct {
	Planet  string
	Ordinal int
}

// ChartOrdinals derives the three natal-chart placements for a birth date
// and time. The Sun sign comes from the date table alone; the Moon
// advances the Sun ordinal by one sign per two hours of birth time and the
// Ascendant by one sign per hour. The Sun entry is always first.
func ChartOrdinals(date time.Time, birthTime domain.TimeOfDay) []PlanetOrdinal {
	sun := SunOrdinal(date)
	return []PlanetOrdinal{
		{Planet: PlanetSun, Ordinal: sun},
		{Planet: PlanetMoon, Ordinal: shift(sun, birthTime.Hour/2)},
		{Planet: PlanetAscendant, Ordinal: shift(sun, birthTime.Hour)},
	}
}
