// Package cache memoizes day-level reservation lists and month-level
// calendar groupings. Entries never expire by time; writers invalidate the
// affected date explicitly.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dugunsalon/internal/metrics"
	"dugunsalon/internal/models"
)

// Loader supplies reservations from the underlying store on cache misses.
type Loader interface {
	ReservationsByDate(ctx context.Context, isoDate string) ([]models.Reservation, error)
	ReservationsByMonth(ctx context.Context, year int, month time.Month) ([]models.Reservation, error)
}

type monthKey struct {
	year  int
	month time.Month
}

// ReservationCache is a read-through cache over a Loader. One mutex guards
// both maps; it is held only for map lookups and copies, never across a
// storage call. Callers always receive independent copies.
type ReservationCache struct {
	loader Loader

	mu    sync.Mutex
	day   map[string][]models.Reservation
	month map[monthKey]map[string][]models.CalendarEvent
}

// New creates an empty cache over the loader.
func New(loader Loader) *ReservationCache {
	return &ReservationCache{
		loader: loader,
		day:    make(map[string][]models.Reservation),
		month:  make(map[monthKey]map[string][]models.CalendarEvent),
	}
}

// GetDay returns the reservations for an ISO date, loading and memoizing
// them on first access.
func (c *ReservationCache) GetDay(ctx context.Context, isoDate string) ([]models.Reservation, error) {
	c.mu.Lock()
	cached, ok := c.day[isoDate]
	if ok {
		out := cloneDay(cached)
		c.mu.Unlock()
		metrics.IncCacheHit("day")
		return out, nil
	}
	c.mu.Unlock()
	metrics.IncCacheMiss("day")

	records, err := c.loader.ReservationsByDate(ctx, isoDate)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.day[isoDate] = cloneDay(records)
	c.mu.Unlock()

	return records, nil
}

// GetMonth returns the month's reservations grouped by ISO date as calendar
// projections. Populating the month tier evicts day entries inside that
// month so the two tiers cannot diverge.
func (c *ReservationCache) GetMonth(ctx context.Context, year int, month time.Month) (map[string][]models.CalendarEvent, error) {
	key := monthKey{year: year, month: month}

	c.mu.Lock()
	cached, ok := c.month[key]
	if ok {
		out := cloneMonth(cached)
		c.mu.Unlock()
		metrics.IncCacheHit("month")
		return out, nil
	}
	c.mu.Unlock()
	metrics.IncCacheMiss("month")

	records, err := c.loader.ReservationsByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]models.CalendarEvent)
	for i := range records {
		res := &records[i]
		grouped[res.EventDate] = append(grouped[res.EventDate], models.CalendarEventOf(res))
	}

	prefix := fmt.Sprintf("%04d-%02d-", year, month)

	c.mu.Lock()
	c.month[key] = cloneMonth(grouped)
	for date := range c.day {
		if len(date) >= len(prefix) && date[:len(prefix)] == prefix {
			delete(c.day, date)
		}
	}
	c.mu.Unlock()

	return grouped, nil
}

// Invalidate drops the day entry for the date and the month entry covering
// it. Called after every successful creation.
func (c *ReservationCache) Invalidate(isoDate string) {
	parsed, err := time.Parse("2006-01-02", isoDate)

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.day, isoDate)
	if err == nil {
		delete(c.month, monthKey{year: parsed.Year(), month: parsed.Month()})
	}
}

// Clear drops both tiers entirely, e.g. on session reset.
func (c *ReservationCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.day = make(map[string][]models.Reservation)
	c.month = make(map[monthKey]map[string][]models.CalendarEvent)
}

func cloneDay(src []models.Reservation) []models.Reservation {
	out := make([]models.Reservation, len(src))
	for i := range src {
		out[i] = src[i].Clone()
	}
	return out
}

func cloneMonth(src map[string][]models.CalendarEvent) map[string][]models.CalendarEvent {
	out := make(map[string][]models.CalendarEvent, len(src))
	for date, events := range src {
		copied := make([]models.CalendarEvent, len(events))
		for i := range events {
			copied[i] = events[i].Clone()
		}
		out[date] = copied
	}
	return out
}
