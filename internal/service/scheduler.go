// Package service orchestrates reservation creation and availability reads
// for the presentation layers.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"dugunsalon/internal/booking"
	"dugunsalon/internal/cache"
	"dugunsalon/internal/metrics"
	"dugunsalon/internal/models"
	"dugunsalon/internal/slots"
)

// Store is the storage collaborator consumed by the scheduler.
type Store interface {
	InsertReservation(ctx context.Context, r *models.Reservation) (int64, error)
	ReservationsByDate(ctx context.Context, isoDate string) ([]models.Reservation, error)
	ReservationsByMonth(ctx context.Context, year int, month time.Month) ([]models.Reservation, error)
}

// CreateResult is returned on successful reservation creation.
type CreateResult struct {
	ID        int64  `json:"id"`
	EventDate string `json:"event_date"`
}

// Scheduler is the facade over normalization, conflict detection, slot
// computation and the reservation cache. Construct one per process and hand
// it to every caller; it is safe for concurrent use.
type Scheduler struct {
	store    Store
	cache    *cache.ReservationCache
	detector *booking.Detector
	calc     *slots.Calculator
	logger   *zerolog.Logger
}

// NewScheduler wires a scheduler over the store.
func NewScheduler(store Store, window slots.Window, logger *zerolog.Logger) *Scheduler {
	c := cache.New(store)
	return &Scheduler{
		store:    store,
		cache:    c,
		detector: booking.NewDetector(cacheSource{c: c}),
		calc:     slots.NewCalculator(window),
		logger:   logger,
	}
}

// cacheSource routes conflict-detection reads through the cache.
type cacheSource struct {
	c *cache.ReservationCache
}

func (s cacheSource) ReservationsForDate(ctx context.Context, isoDate string) ([]models.Reservation, error) {
	return s.c.GetDay(ctx, isoDate)
}

// CreateReservation validates the payload, rejects double bookings, persists
// the record and invalidates the cache for the affected date.
//
// Two concurrent calls can both pass the conflict check for the same slot;
// the check is best-effort against the last committed state and the storage
// layer enforces no interval uniqueness.
func (s *Scheduler) CreateReservation(ctx context.Context, raw map[string]any) (*CreateResult, error) {
	res, err := booking.Normalize(raw)
	if err != nil {
		metrics.IncReservationRejected("validation")
		return nil, err
	}

	if res.Salon != "" {
		conflicts, err := s.detector.FindConflicts(ctx, res.EventDate, res.Salon, res.StartTime, res.EndTime)
		if err != nil {
			metrics.IncReservationRejected("storage")
			return nil, &booking.StorageError{Err: err}
		}
		if len(conflicts) > 0 {
			metrics.IncReservationRejected("conflict")
			return nil, &booking.ConflictError{
				Salon:   res.Salon,
				Start:   res.StartTime,
				End:     res.EndTime,
				Windows: booking.ConflictWindows(conflicts),
			}
		}
	}

	id, err := s.store.InsertReservation(ctx, res)
	if err != nil {
		metrics.IncReservationRejected("storage")
		return nil, &booking.StorageError{Err: err}
	}

	s.cache.Invalidate(res.EventDate)
	metrics.IncReservationCreated()
	s.logger.Info().
		Int64("id", id).
		Str("event_date", res.EventDate).
		Str("salon", res.Salon).
		Str("start", res.StartTime).
		Str("end", res.EndTime).
		Msg("reservation created")

	return &CreateResult{ID: id, EventDate: res.EventDate}, nil
}

// GetReservationsForDate returns the full reservation records for a date.
// The date is accepted in any of the supported input formats.
func (s *Scheduler) GetReservationsForDate(ctx context.Context, date string) ([]models.Reservation, error) {
	isoDate, err := booking.EnsureISODate(date, "Rezervasyon tarihi", true)
	if err != nil {
		return nil, err
	}
	return s.cache.GetDay(ctx, isoDate)
}

// GetCalendarData returns the month's reservations grouped by ISO date.
func (s *Scheduler) GetCalendarData(ctx context.Context, year int, month time.Month) (map[string][]models.CalendarEvent, error) {
	return s.cache.GetMonth(ctx, year, month)
}

// GetUnavailableSlots returns occupied start slots and busy ranges for a
// date and salon. A blank salon yields an empty result: slot filtering is
// only meaningful once a salon is chosen.
func (s *Scheduler) GetUnavailableSlots(ctx context.Context, date, salon string) (slots.Unavailable, error) {
	empty := slots.Unavailable{Blocked: []string{}, Ranges: []string{}}

	isoDate, err := booking.EnsureISODate(date, "Rezervasyon tarihi", true)
	if err != nil {
		return empty, err
	}
	if strings.TrimSpace(salon) == "" {
		return empty, nil
	}

	reservations, err := s.cache.GetDay(ctx, isoDate)
	if err != nil {
		return empty, err
	}
	return s.calc.Unavailable(reservations, salon), nil
}

// ClearCache drops both cache tiers, e.g. on logout.
func (s *Scheduler) ClearCache() {
	s.cache.Clear()
}
