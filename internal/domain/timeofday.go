package domain

import "fmt"

// ErrInvalidTimeOfDay is returned when a birth time cannot be parsed or is
// out of range. It belongs to the validation family.
var ErrInvalidTimeOfDay = fmt.Errorf("%w: invalid time of day", ErrValidation)

// TimeOfDay is a wall-clock time with minute precision, used for birth
// times. It carries no date and no time zone.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// NewTimeOfDay builds a TimeOfDay, validating the range.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	t := TimeOfDay{Hour: hour, Minute: minute}
	if !t.IsValid() {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeOfDay, hour, minute)
	}
	return t, nil
}

// ParseTimeOfDay parses the "HH:MM" form produced by String.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return NewTimeOfDay(hour, minute)
}

// IsValid reports whether the time is within 00:00..23:59.
func (t TimeOfDay) IsValid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

// String formats the time as "HH:MM", the serialized form used by the
// flat-file backend and the relational TIME column.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
