package booking

import (
	"context"
	"sort"
	"strings"

	"dugunsalon/internal/models"
)

// ReservationSource supplies the reservations persisted for a date.
// The scheduling facade satisfies it with its cache read-through.
type ReservationSource interface {
	ReservationsForDate(ctx context.Context, isoDate string) ([]models.Reservation, error)
}

// Detector finds double-booking conflicts for a candidate reservation.
type Detector struct {
	source ReservationSource
}

// NewDetector creates a conflict detector over the given source.
func NewDetector(source ReservationSource) *Detector {
	return &Detector{source: source}
}

// FindConflicts returns the existing reservations whose busy interval
// overlaps [start, end) for the same date and salon. Salons match
// case-insensitively; an empty salon is never conflict-checked. An existing
// reservation with an unparsable start time always counts as a conflict:
// malformed stored data blocks new bookings instead of silently
// double-booking.
func (d *Detector) FindConflicts(ctx context.Context, isoDate, salon, start, end string) ([]models.Reservation, error) {
	salon = strings.TrimSpace(salon)
	if salon == "" {
		return nil, nil
	}

	startMin := TimeToMinutes(start)
	endMin := TimeToMinutes(end)
	target := strings.ToLower(salon)

	reservations, err := d.source.ReservationsForDate(ctx, isoDate)
	if err != nil {
		return nil, err
	}

	var conflicts []models.Reservation
	for _, res := range reservations {
		existingSalon := strings.TrimSpace(res.Salon)
		if existingSalon == "" || strings.ToLower(existingSalon) != target {
			continue
		}

		existingStart, existingEnd, ok := EffectiveInterval(res.StartTime, res.EndTime)
		if !ok {
			conflicts = append(conflicts, res)
			continue
		}

		if Overlaps(startMin, endMin, existingStart, existingEnd) {
			conflicts = append(conflicts, res)
		}
	}
	return conflicts, nil
}

// ConflictWindows renders the colliding busy intervals as "HH:MM - HH:MM"
// labels, deduplicated on the exact (start, end) pair and sorted ascending
// by start.
func ConflictWindows(conflicts []models.Reservation) []string {
	seen := make(map[string]struct{})
	var windows []window
	for _, res := range conflicts {
		w := describeWindow(res)
		if _, dup := seen[w.label]; dup {
			continue
		}
		seen[w.label] = struct{}{}
		windows = append(windows, w)
	}

	sort.Slice(windows, func(i, j int) bool {
		if windows[i].start != windows[j].start {
			return windows[i].start < windows[j].start
		}
		return windows[i].end < windows[j].end
	})

	labels := make([]string, len(windows))
	for i, w := range windows {
		labels[i] = w.label
	}
	return labels
}

type window struct {
	start, end int
	label      string
}

func describeWindow(res models.Reservation) window {
	startMin, endMin, ok := EffectiveInterval(res.StartTime, res.EndTime)
	if !ok {
		// Unparsable start: label with the raw stored values.
		startLabel := strings.TrimSpace(res.StartTime)
		if startLabel == "" {
			startLabel = "?"
		}
		endLabel := strings.TrimSpace(res.EndTime)
		if endLabel == "" {
			endLabel = "?"
		}
		return window{start: -1, end: -1, label: startLabel + " - " + endLabel}
	}
	return window{start: startMin, end: endMin, label: FormatMinutes(startMin) + " - " + FormatMinutes(endMin)}
}
