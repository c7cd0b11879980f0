package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationClone_Independent(t *testing.T) {
	guests := 250
	price := 1250.50
	original := Reservation{
		ID:         1,
		EventDate:  "2025-06-14",
		StartTime:  "14:00",
		EndTime:    "18:00",
		EventType:  "Düğün",
		ClientName: "Ayşe Yılmaz",
		Guests:     &guests,
		EventPrice: &price,
	}

	clone := original.Clone()
	require.NotNil(t, clone.Guests)
	*clone.Guests = 300
	*clone.EventPrice = 999
	clone.ClientName = "değiştirildi"

	assert.Equal(t, 250, *original.Guests)
	assert.Equal(t, 1250.50, *original.EventPrice)
	assert.Equal(t, "Ayşe Yılmaz", original.ClientName)
}

func TestReservationClone_NilPointers(t *testing.T) {
	original := Reservation{EventDate: "2025-06-14"}
	clone := original.Clone()
	assert.Nil(t, clone.Guests)
	assert.Nil(t, clone.DepositPct)
}

func TestCalendarEventOf(t *testing.T) {
	guests := 250
	r := Reservation{
		ID:             7,
		EventDate:      "2025-06-14",
		StartTime:      "14:00",
		EndTime:        "18:00",
		EventType:      "Düğün",
		ClientName:     "Ayşe Yılmaz",
		Salon:          "Büyük Salon",
		Guests:         &guests,
		MenuName:       "Menü A",
		SpecialRequest: "Havai fişek",
	}

	ev := CalendarEventOf(&r)
	assert.Equal(t, int64(7), ev.ID)
	assert.Equal(t, "Düğün", ev.Type)
	assert.Equal(t, "Ayşe Yılmaz", ev.Name)
	assert.Equal(t, "14:00", ev.Start)
	assert.Equal(t, "18:00", ev.End)
	assert.Equal(t, "Büyük Salon", ev.Salon)
	assert.Equal(t, "Menü A", ev.Menu)
	assert.Equal(t, "Havai fişek", ev.Notes)

	// The projection carries its own copy of the guest count.
	require.NotNil(t, ev.Guests)
	*ev.Guests = 5
	assert.Equal(t, 250, *r.Guests)
}

func TestCalendarEventClone(t *testing.T) {
	guests := 100
	ev := CalendarEvent{ID: 1, Guests: &guests}
	clone := ev.Clone()
	*clone.Guests = 7
	assert.Equal(t, 100, *ev.Guests)
}
