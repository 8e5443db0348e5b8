package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starmatchhq/starmatch/internal/domain"
)

func TestChartOrdinals_SunFirst(t *testing.T) {
	chart := ChartOrdinals(day(time.December, 15), domain.TimeOfDay{})

	require.Len(t, chart, 3)
	assert.Equal(t, PlanetSun, chart[0].Planet)
	assert.Equal(t, PlanetMoon, chart[1].Planet)
	assert.Equal(t, PlanetAscendant, chart[2].Planet)
}

func TestChartOrdinals_Midnight(t *testing.T) {
	// At 00:00 all three placements collapse onto the Sun sign.
	chart := ChartOrdinals(day(time.December, 15), domain.TimeOfDay{})

	for _, p := range chart {
		assert.Equal(t, Sagittarius, p.Ordinal, "placement %s", p.Planet)
	}
}

func TestChartOrdinals_TimeShifts(t *testing.T) {
	tests := []struct {
		name          string
		birthTime     domain.TimeOfDay
		wantMoon      int
		wantAscendant int
	}{
		{"one hour advances the ascendant only", domain.TimeOfDay{Hour: 1}, Sagittarius, Capricorn},
		{"two hours advance both", domain.TimeOfDay{Hour: 2}, Capricorn, Aquarius},
		{"late evening wraps the ascendant", domain.TimeOfDay{Hour: 22, Minute: 12}, Aries, Libra},
		{"minutes alone change nothing", domain.TimeOfDay{Minute: 59}, Sagittarius, Sagittarius},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chart := ChartOrdinals(day(time.December, 15), tt.birthTime)

			require.Len(t, chart, 3)
			assert.Equal(t, Sagittarius, chart[0].Ordinal)
			assert.Equal(t, tt.wantMoon, chart[1].Ordinal)
			assert.Equal(t, tt.wantAscendant, chart[2].Ordinal)
		})
	}
}
