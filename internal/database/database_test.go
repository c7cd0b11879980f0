package database

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dugunsalon/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	logger := zerolog.New(io.Discard)
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"), &logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func sampleReservation(date, start string) *models.Reservation {
	return &models.Reservation{
		EventDate:  date,
		StartTime:  start,
		EndTime:    "18:00",
		EventType:  "Düğün",
		ClientName: "Ayşe Yılmaz",
		Salon:      "Büyük Salon",
		Guests:     intPtr(250),
		EventPrice: floatPtr(1250.50),
	}
}

func TestInsertAndReadReservation(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	id, err := db.InsertReservation(ctx, sampleReservation("2025-06-14", "14:00"))
	require.NoError(t, err)
	assert.Positive(t, id)

	records, err := db.ReservationsByDate(ctx, "2025-06-14")
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "14:00", got.StartTime)
	assert.Equal(t, "Büyük Salon", got.Salon)
	require.NotNil(t, got.Guests)
	assert.Equal(t, 250, *got.Guests)
	require.NotNil(t, got.EventPrice)
	assert.Equal(t, 1250.50, *got.EventPrice)
	assert.NotEmpty(t, got.CreatedAt)

	// Absent optionals come back as empty/nil, not zero values.
	assert.Equal(t, "", got.BrideName)
	assert.Nil(t, got.Installments)
	assert.Nil(t, got.DepositPct)
}

func TestReservationsByDate_Ordering(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	late := sampleReservation("2025-06-14", "19:00")
	early := sampleReservation("2025-06-14", "11:00")
	blank := sampleReservation("2025-06-14", "")

	_, err := db.InsertReservation(ctx, late)
	require.NoError(t, err)
	_, err = db.InsertReservation(ctx, blank)
	require.NoError(t, err)
	_, err = db.InsertReservation(ctx, early)
	require.NoError(t, err)

	records, err := db.ReservationsByDate(ctx, "2025-06-14")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "11:00", records[0].StartTime)
	assert.Equal(t, "19:00", records[1].StartTime)
	assert.Equal(t, "", records[2].StartTime)
}

func TestReservationsByMonth_Bounds(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	for _, date := range []string{"2025-05-31", "2025-06-01", "2025-06-30", "2025-07-01"} {
		_, err := db.InsertReservation(ctx, sampleReservation(date, "14:00"))
		require.NoError(t, err)
	}

	records, err := db.ReservationsByMonth(ctx, 2025, time.June)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2025-06-01", records[0].EventDate)
	assert.Equal(t, "2025-06-30", records[1].EventDate)
}

func TestUserLifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	id, err := db.CreateUser(ctx, &models.User{
		Name:         "Ayşe Yılmaz",
		Email:        "ayse@example.com",
		Username:     "ayse",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	user, err := db.UserByUsername(ctx, "ayse")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, models.RoleStaff, user.Role)

	user, err = db.UserByEmail(ctx, "ayse@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ayse", user.Username)

	_, err = db.UserByUsername(ctx, "yok")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSalonLifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	id, err := db.CreateSalon(ctx, &models.Salon{Name: "Büyük Salon", Capacity: 500, PriceFactor: 1.2})
	require.NoError(t, err)
	_, err = db.CreateSalon(ctx, &models.Salon{Name: "Teras", Capacity: 150, PriceFactor: 1.0})
	require.NoError(t, err)

	salons, err := db.ActiveSalons(ctx)
	require.NoError(t, err)
	require.Len(t, salons, 2)
	// Ordered by name.
	assert.Equal(t, "Büyük Salon", salons[0].Name)

	require.NoError(t, db.DeactivateSalon(ctx, id))

	salons, err = db.ActiveSalons(ctx)
	require.NoError(t, err)
	require.Len(t, salons, 1)
	assert.Equal(t, "Teras", salons[0].Name)
}

func TestExpensesAndTotals(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := db.InsertExpense(ctx, &models.Expense{Date: "2025-06-01", Category: "Personel", Amount: 400})
	require.NoError(t, err)
	_, err = db.InsertExpense(ctx, &models.Expense{Date: "2025-06-15", Category: "Mutfak", Amount: 600})
	require.NoError(t, err)
	id, err := db.InsertExpense(ctx, &models.Expense{Date: "2025-07-01", Category: "Personel", Amount: 100})
	require.NoError(t, err)

	items, err := db.Expenses(ctx, ExpenseFilter{StartDate: "2025-06-01", EndDate: "2025-06-30"})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = db.Expenses(ctx, ExpenseFilter{Category: "Personel"})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	total, err := db.ExpenseTotal(ctx, "2025-06-01", "2025-06-30")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, total)

	require.NoError(t, db.DeleteExpense(ctx, id))
	total, err = db.ExpenseTotal(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, total)
}

func TestRevenueSummary(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	r := sampleReservation("2025-06-14", "14:00")
	r.MenuPrice = floatPtr(500)
	_, err := db.InsertReservation(ctx, r)
	require.NoError(t, err)

	noPrices := sampleReservation("2025-06-20", "12:00")
	noPrices.EventPrice = nil
	_, err = db.InsertReservation(ctx, noPrices)
	require.NoError(t, err)

	total, count, err := db.RevenueSummary(ctx, "2025-06-01", "2025-06-30")
	require.NoError(t, err)
	assert.Equal(t, 1750.50, total)
	assert.Equal(t, 2, count)
}
