package reports

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

var exportColumns = []string{
	"ID", "Tarih", "Başlangıç", "Bitiş", "Etkinlik", "Salon", "Müşteri",
	"Davetli", "Etkinlik Ücreti", "Menü Ücreti", "Kapora", "Durum",
}

// MonthNames in Turkish for sheet and file naming.
var MonthNames = map[time.Month]string{
	time.January:   "Ocak",
	time.February:  "Şubat",
	time.March:     "Mart",
	time.April:     "Nisan",
	time.May:       "Mayıs",
	time.June:      "Haziran",
	time.July:      "Temmuz",
	time.August:    "Ağustos",
	time.September: "Eylül",
	time.October:   "Ekim",
	time.November:  "Kasım",
	time.December:  "Aralık",
}

// ExportFilename builds a filename like "Haziran_2025.xlsx".
func ExportFilename(year int, month time.Month) string {
	return fmt.Sprintf("%s_%d.xlsx", MonthNames[month], year)
}

// ExportMonth writes the month's reservations as an xlsx workbook.
func (s *Service) ExportMonth(ctx context.Context, year int, month time.Month, w io.Writer) error {
	reservations, err := s.store.ReservationsByMonth(ctx, year, month)
	if err != nil {
		return fmt.Errorf("load reservations: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := MonthNames[month]
	f.SetSheetName("Sheet1", sheet)

	for i, col := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return err
		}
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		start, _ := excelize.CoordinatesToCellName(1, 1)
		end, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
		_ = f.SetCellStyle(sheet, start, end, style)
	}

	for rowIdx, res := range reservations {
		values := []any{
			res.ID, res.EventDate, res.StartTime, res.EndTime,
			res.EventType, res.Salon, res.ClientName,
			intOrEmpty(res.Guests), floatOrEmpty(res.EventPrice),
			floatOrEmpty(res.MenuPrice), floatOrEmpty(res.DepositAmt),
			res.Status,
		}
		for colIdx, val := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func intOrEmpty(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}

func floatOrEmpty(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
