package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dugunsalon/internal/models"
)

func reservation(salon, start, end string) models.Reservation {
	return models.Reservation{
		EventDate: "2025-06-14",
		StartTime: start,
		EndTime:   end,
		Salon:     salon,
	}
}

func TestUnavailable_SingleReservation(t *testing.T) {
	calc := NewCalculator(DefaultWindow)

	got := calc.Unavailable([]models.Reservation{
		reservation("Büyük Salon", "14:00", "16:00"),
	}, "Büyük Salon")

	assert.Equal(t, []string{
		"14:00", "14:15", "14:30", "14:45",
		"15:00", "15:15", "15:30", "15:45",
	}, got.Blocked)
	assert.Equal(t, []string{"14:00 - 16:00"}, got.Ranges)
}

func TestUnavailable_OffGridStartFloorsToSlot(t *testing.T) {
	calc := NewCalculator(DefaultWindow)

	// [10:10, 11:00) blocks the 10:00 slot too: a 10:00 start would run
	// into the busy interval.
	got := calc.Unavailable([]models.Reservation{
		reservation("Büyük Salon", "10:10", "11:00"),
	}, "Büyük Salon")

	assert.Equal(t, []string{"10:00", "10:15", "10:30", "10:45"}, got.Blocked)
	assert.Equal(t, []string{"10:10 - 11:00"}, got.Ranges)
}

func TestUnavailable_WindowClamp(t *testing.T) {
	calc := NewCalculator(DefaultWindow)

	// Busy from 09:00 but candidate slots only exist from 10:00 on.
	got := calc.Unavailable([]models.Reservation{
		reservation("Büyük Salon", "09:00", "11:00"),
	}, "Büyük Salon")

	assert.Equal(t, []string{"10:00", "10:15", "10:30", "10:45"}, got.Blocked)
	assert.Equal(t, []string{"09:00 - 11:00"}, got.Ranges)
}

func TestUnavailable_SalonFilter(t *testing.T) {
	calc := NewCalculator(DefaultWindow)
	reservations := []models.Reservation{
		reservation("Büyük Salon", "14:00", "15:00"),
		reservation("Teras", "14:00", "15:00"),
		reservation("", "14:00", "15:00"),
	}

	got := calc.Unavailable(reservations, "büyük salon")
	assert.Equal(t, []string{"14:00", "14:15", "14:30", "14:45"}, got.Blocked)
	assert.Len(t, got.Ranges, 1)

	got = calc.Unavailable(reservations, "")
	assert.Empty(t, got.Blocked)
	assert.Empty(t, got.Ranges)
	assert.NotNil(t, got.Blocked)
	assert.NotNil(t, got.Ranges)
}

func TestUnavailable_MalformedStartSkipped(t *testing.T) {
	calc := NewCalculator(DefaultWindow)

	got := calc.Unavailable([]models.Reservation{
		reservation("Büyük Salon", "bozuk", "16:00"),
		reservation("Büyük Salon", "18:00", "19:00"),
	}, "Büyük Salon")

	assert.Equal(t, []string{"18:00", "18:15", "18:30", "18:45"}, got.Blocked)
	assert.Equal(t, []string{"18:00 - 19:00"}, got.Ranges)
}

func TestUnavailable_MissingEndDefaultsToHour(t *testing.T) {
	calc := NewCalculator(DefaultWindow)

	got := calc.Unavailable([]models.Reservation{
		reservation("Büyük Salon", "23:30", ""),
	}, "Büyük Salon")

	// One-hour fallback capped at 24:00.
	assert.Equal(t, []string{"23:30", "23:45"}, got.Blocked)
	assert.Equal(t, []string{"23:30 - 24:00"}, got.Ranges)
}

func TestUnavailable_RangesDedupedAndSorted(t *testing.T) {
	calc := NewCalculator(DefaultWindow)

	got := calc.Unavailable([]models.Reservation{
		reservation("Büyük Salon", "16:00", "17:00"),
		reservation("Büyük Salon", "12:00", "13:00"),
		reservation("Büyük Salon", "12:00", "13:00"),
	}, "Büyük Salon")

	assert.Equal(t, []string{"12:00 - 13:00", "16:00 - 17:00"}, got.Ranges)
}

func TestNewCalculator_ZeroWindowDefaults(t *testing.T) {
	calc := NewCalculator(Window{})

	got := calc.Unavailable([]models.Reservation{
		reservation("Büyük Salon", "10:00", "10:15"),
	}, "Büyük Salon")
	assert.Equal(t, []string{"10:00"}, got.Blocked)
}
