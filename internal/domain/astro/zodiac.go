// Package astro holds the pure astrological computations: zodiac date
// ranges, natal chart derivation and element compatibility scoring.
// Everything here is deterministic and free of I/O; services resolve the
// ordinals produced here against the StarSign repository.
package astro

import "time"

// Sign ordinals, matching the seeded StarSign IDs.
const (
	Aries = iota + 1
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// cusp is the day of month on which each month's sign changes. Days
// strictly before the cusp belong to the sign that started the previous
// month. Index 0 is January.
var cusps = [12]int{20, 19, 21, 20, 21, 21, 23, 23, 23, 23, 22, 22}

// signByMonth maps a month (index 0 = January) to the ordinal of the sign
// that begins in that month. January's cusp starts Aquarius, February's
// Pisces, and so on.
var signByMonth = [12]int{
	Aquarius, Pisces, Aries, Taurus, Gemini, Cancer,
	Leo, Virgo, Libra, Scorpio, Sagittarius, Capricorn,
}

// SunOrdinal maps a birth date to the ordinal (1..12) of its Sun sign
// using the standard non-overlapping date-range table. The mapping is
// total over all valid calendar dates, including the Capricorn year-wrap
// (Dec 22 - Jan 19).
func SunOrdinal(date time.Time) int {
	month := int(date.Month()) - 1
	if date.Day() >= cusps[month] {
		return signByMonth[month]
	}
	// Before the cusp the sign is the one that began the previous month.
	prev := (month + 11) % 12
	return signByMonth[prev]
}

// shift advances a sign ordinal by n positions, wrapping within 1..12.
func shift(ordinal, n int) int {
	return (ordinal-1+n)%12 + 1
}
