package reports

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"dugunsalon/internal/database"
	"dugunsalon/internal/models"
)

type fakeStore struct {
	revenueByStart  map[string]float64
	expensesByStart map[string]float64
	reservations    []models.Reservation
}

func (f *fakeStore) RevenueSummary(_ context.Context, startDate, _ string) (float64, int, error) {
	return f.revenueByStart[startDate], 1, nil
}

func (f *fakeStore) ExpenseTotal(_ context.Context, startDate, _ string) (float64, error) {
	return f.expensesByStart[startDate], nil
}

func (f *fakeStore) Expenses(_ context.Context, _ database.ExpenseFilter) ([]models.Expense, error) {
	return nil, nil
}

func (f *fakeStore) ReservationsByMonth(_ context.Context, _ int, _ time.Month) ([]models.Reservation, error) {
	return f.reservations, nil
}

func TestRevenue_EchoesBounds(t *testing.T) {
	svc := NewService(&fakeStore{revenueByStart: map[string]float64{"2025-06-01": 1500}})

	got, err := svc.Revenue(context.Background(), "2025-06-01", "2025-06-30")
	require.NoError(t, err)
	assert.Equal(t, 1500.0, got.TotalRevenue)
	assert.Equal(t, "2025-06-01", got.StartDate)
	assert.Equal(t, "2025-06-30", got.EndDate)

	got, err = svc.Revenue(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "all", got.StartDate)
	assert.Equal(t, "all", got.EndDate)
}

func TestProfitLoss(t *testing.T) {
	svc := NewService(&fakeStore{
		revenueByStart:  map[string]float64{"2025-06-01": 1500},
		expensesByStart: map[string]float64{"2025-06-01": 400},
	})

	got, err := svc.ProfitLoss(context.Background(), "2025-06-01", "2025-06-30")
	require.NoError(t, err)
	assert.Equal(t, 1100.0, got.NetProfit)
}

func TestMonthlyBreakdown(t *testing.T) {
	svc := NewService(&fakeStore{
		revenueByStart:  map[string]float64{"2025-06-01": 2000},
		expensesByStart: map[string]float64{"2025-06-01": 500},
	})

	items, err := svc.MonthlyBreakdown(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, items, 12)
	assert.Equal(t, "2025-01", items[0].Month)
	assert.Equal(t, "2025-12", items[11].Month)

	june := items[5]
	assert.Equal(t, "2025-06", june.Month)
	assert.Equal(t, 2000.0, june.Revenue)
	assert.Equal(t, 1500.0, june.Profit)

	// Months without data stay zero.
	assert.Zero(t, items[0].Revenue)
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "Haziran_2025.xlsx", ExportFilename(2025, time.June))
	assert.Equal(t, "Aralık_2024.xlsx", ExportFilename(2024, time.December))
}

func TestExportMonth(t *testing.T) {
	guests := 250
	price := 1250.50
	svc := NewService(&fakeStore{reservations: []models.Reservation{
		{
			ID:         7,
			EventDate:  "2025-06-14",
			StartTime:  "14:00",
			EndTime:    "18:00",
			EventType:  "Düğün",
			Salon:      "Büyük Salon",
			ClientName: "Ayşe Yılmaz",
			Guests:     &guests,
			EventPrice: &price,
		},
	}})

	var buf bytes.Buffer
	require.NoError(t, svc.ExportMonth(context.Background(), 2025, time.June, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Haziran"}, f.GetSheetList())

	header, err := f.GetCellValue("Haziran", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Tarih", header)

	date, err := f.GetCellValue("Haziran", "B2")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-14", date)

	name, err := f.GetCellValue("Haziran", "G2")
	require.NoError(t, err)
	assert.Equal(t, "Ayşe Yılmaz", name)
}
