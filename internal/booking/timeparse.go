package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// SlotMinutes is the scheduling granularity for start and end times.
	SlotMinutes = 15
	// DefaultEventDurationMinutes is assumed when a stored reservation has
	// no usable end time.
	DefaultEventDurationMinutes = 60
	// MinutesPerDay caps busy intervals at 24:00.
	MinutesPerDay = 24 * 60
)

var dateLayouts = []string{"2006-01-02", "02/01/2006", "02-01-2006"}

// EnsureISODate parses a date in one of the accepted input formats and
// returns it in ISO form. An empty value is an error when required,
// otherwise it yields "".
func EnsureISODate(value, label string, required bool) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		if required {
			return "", validationf("%s zorunludur.", label)
		}
		return "", nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", validationf("%s geçerli bir tarih olmalıdır.", label)
}

// EnsureTime validates an HH:MM time-of-day and returns it zero-padded.
// Hour 24 is only valid as 24:00; minutes must land on the slot grid.
func EnsureTime(value, label string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", validationf("%s zorunludur.", label)
	}

	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return "", validationf("%s geçerli bir saat olmalıdır (SS:dd).", label)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", validationf("%s sayısal olmalıdır.", label)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", validationf("%s sayısal olmalıdır.", label)
	}

	if hour < 0 || hour > 24 || minute < 0 || minute > 59 || (hour == 24 && minute != 0) {
		return "", validationf("%s geçerli bir saat olmalıdır.", label)
	}
	if minute%SlotMinutes != 0 {
		return "", validationf("%s %d dakikalık aralıklarla seçilmelidir.", label, SlotMinutes)
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// TimeToMinutes converts a validated HH:MM string to minutes since midnight.
func TimeToMinutes(value string) int {
	m, _ := SafeTimeToMinutes(value)
	return m
}

// SafeTimeToMinutes converts an HH:MM string to minutes since midnight.
// It reports false for anything that is not a well-formed time-of-day,
// so callers can decide how to treat malformed stored data.
func SafeTimeToMinutes(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	if hour < 0 || hour > 24 || minute < 0 || minute > 59 || (hour == 24 && minute != 0) {
		return 0, false
	}

	return hour*60 + minute, true
}

// FormatMinutes renders minutes since midnight as HH:MM.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Overlaps reports whether the half-open intervals [a0,a1) and [b0,b1)
// intersect. Touching boundaries do not overlap.
func Overlaps(a0, a1, b0, b1 int) bool {
	return max(a0, b0) < min(a1, b1)
}

// EffectiveInterval computes the busy interval of a stored reservation.
// A missing or non-increasing end falls back to the default duration,
// capped at end of day. ok is false when the start itself is unusable.
func EffectiveInterval(start, end string) (int, int, bool) {
	startMin, ok := SafeTimeToMinutes(start)
	if !ok {
		return 0, 0, false
	}
	endMin, ok := SafeTimeToMinutes(end)
	if !ok || endMin <= startMin {
		endMin = startMin + DefaultEventDurationMinutes
	}
	if endMin > MinutesPerDay {
		endMin = MinutesPerDay
	}
	return startMin, endMin, true
}
