// Package slots computes quantized busy/free start-time slots for a salon.
package slots

import (
	"sort"
	"strings"

	"dugunsalon/internal/booking"
	"dugunsalon/internal/models"
)

// Unavailable lists blocked slot starts and human-readable busy ranges.
// Both slices are sorted; Ranges is deduplicated on the exact interval.
type Unavailable struct {
	Blocked []string `json:"blocked"` // "HH:MM" slot starts
	Ranges  []string `json:"ranges"`  // "HH:MM - HH:MM"
}

// Window is the business window for candidate start slots.
type Window struct {
	StartMinutes int
	EndMinutes   int
}

// DefaultWindow covers 10:00 through 24:00.
var DefaultWindow = Window{StartMinutes: 10 * 60, EndMinutes: booking.MinutesPerDay}

// Calculator derives unavailable slots for a date and salon.
type Calculator struct {
	window Window
}

// NewCalculator creates a calculator for the given business window.
// A zero window falls back to DefaultWindow.
func NewCalculator(window Window) *Calculator {
	if window.EndMinutes <= window.StartMinutes {
		window = DefaultWindow
	}
	return &Calculator{window: window}
}

// Unavailable computes blocked slot starts and busy ranges for the salon
// from the reservations of a single date. Reservations for other salons are
// ignored; salon names match case-insensitively. Reservations whose stored
// start time does not parse are skipped: slot display is advisory, the
// conflict check is where malformed data blocks bookings.
func (c *Calculator) Unavailable(reservations []models.Reservation, salon string) Unavailable {
	result := Unavailable{Blocked: []string{}, Ranges: []string{}}

	salon = strings.TrimSpace(salon)
	if salon == "" {
		return result
	}
	target := strings.ToLower(salon)

	blocked := make(map[int]struct{})
	type interval struct{ start, end int }
	var busy []interval

	for _, res := range reservations {
		existingSalon := strings.TrimSpace(res.Salon)
		if existingSalon == "" || strings.ToLower(existingSalon) != target {
			continue
		}

		start, end, ok := booking.EffectiveInterval(res.StartTime, res.EndTime)
		if !ok {
			continue
		}

		busy = append(busy, interval{start: start, end: end})

		slot := (start / booking.SlotMinutes) * booking.SlotMinutes
		for ; slot < end; slot += booking.SlotMinutes {
			if slot < c.window.StartMinutes || slot >= c.window.EndMinutes {
				continue
			}
			blocked[slot] = struct{}{}
		}
	}

	starts := make([]int, 0, len(blocked))
	for slot := range blocked {
		starts = append(starts, slot)
	}
	sort.Ints(starts)
	for _, slot := range starts {
		result.Blocked = append(result.Blocked, booking.FormatMinutes(slot))
	}

	sort.Slice(busy, func(i, j int) bool {
		if busy[i].start != busy[j].start {
			return busy[i].start < busy[j].start
		}
		return busy[i].end < busy[j].end
	})
	seen := make(map[interval]struct{})
	for _, iv := range busy {
		if _, dup := seen[iv]; dup {
			continue
		}
		seen[iv] = struct{}{}
		result.Ranges = append(result.Ranges, booking.FormatMinutes(iv.start)+" - "+booking.FormatMinutes(iv.end))
	}

	return result
}
