package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"dugunsalon/internal/models"
)

const reservationColumns = `id, event_date, start_time, end_time, event_type, guests, salon,
	client_name, bride_name, groom_name, tc_identity, phone, region, address,
	contract_no, contract_date, status, event_price, menu_price,
	deposit_percent, deposit_amount, installments, payment_type, tahsilatlar,
	menu_name, menu_detail, special_request, note, created_at, updated_at`

// InsertReservation persists a reservation and returns the assigned id.
func (db *DB) InsertReservation(ctx context.Context, r *models.Reservation) (int64, error) {
	result, err := db.ExecContext(ctx, `
		INSERT INTO reservations (
			event_date, start_time, end_time, event_type, guests, salon,
			client_name, bride_name, groom_name, tc_identity, phone, region,
			address, contract_no, contract_date, status, event_price,
			menu_price, deposit_percent, deposit_amount, installments,
			payment_type, tahsilatlar, menu_name, menu_detail,
			special_request, note
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.EventDate, r.StartTime, r.EndTime, r.EventType,
		nullInt(r.Guests), nullStr(r.Salon), r.ClientName,
		nullStr(r.BrideName), nullStr(r.GroomName), nullStr(r.TCIdentity),
		nullStr(r.Phone), nullStr(r.Region), nullStr(r.Address),
		nullStr(r.ContractNo), nullStr(r.ContractDate), nullStr(r.Status),
		nullFloat(r.EventPrice), nullFloat(r.MenuPrice),
		nullFloat(r.DepositPct), nullFloat(r.DepositAmt),
		nullInt(r.Installments), nullStr(r.PaymentType),
		nullStr(r.Tahsilatlar), nullStr(r.MenuName), nullStr(r.MenuDetail),
		nullStr(r.SpecialRequest), nullStr(r.Note),
	)
	if err != nil {
		return 0, fmt.Errorf("insert reservation: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert reservation id: %w", err)
	}
	return id, nil
}

// ReservationsByDate returns reservations for an ISO date, ordered by start
// time ascending with empty start times last, tie-broken by id.
func (db *DB) ReservationsByDate(ctx context.Context, isoDate string) ([]models.Reservation, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE event_date = ?
		ORDER BY
			CASE WHEN start_time IS NULL OR start_time = '' THEN 1 ELSE 0 END,
			start_time,
			id`,
		isoDate,
	)
	if err != nil {
		return nil, fmt.Errorf("reservations by date: %w", err)
	}
	defer rows.Close()
	return scanReservations(rows)
}

// ReservationsByMonth returns reservations in [first of month, first of
// next month), ordered by date then start time.
func (db *DB) ReservationsByMonth(ctx context.Context, year int, month time.Month) ([]models.Reservation, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	rows, err := db.QueryContext(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE event_date >= ? AND event_date < ?
		ORDER BY
			event_date,
			CASE WHEN start_time IS NULL OR start_time = '' THEN 1 ELSE 0 END,
			start_time,
			id`,
		start.Format("2006-01-02"), end.Format("2006-01-02"),
	)
	if err != nil {
		return nil, fmt.Errorf("reservations by month: %w", err)
	}
	defer rows.Close()
	return scanReservations(rows)
}

func scanReservations(rows *sql.Rows) ([]models.Reservation, error) {
	var out []models.Reservation
	for rows.Next() {
		var r models.Reservation
		var (
			startTime, endTime, eventType, salon, clientName sql.NullString
			brideName, groomName, tcIdentity, phone, region  sql.NullString
			address, contractNo, contractDate, status        sql.NullString
			paymentType, tahsilatlar, menuName, menuDetail   sql.NullString
			specialRequest, note, createdAt, updatedAt       sql.NullString
			guests, installments                             sql.NullInt64
			eventPrice, menuPrice, depositPct, depositAmt    sql.NullFloat64
		)
		if err := rows.Scan(
			&r.ID, &r.EventDate, &startTime, &endTime, &eventType, &guests,
			&salon, &clientName, &brideName, &groomName, &tcIdentity, &phone,
			&region, &address, &contractNo, &contractDate, &status,
			&eventPrice, &menuPrice, &depositPct, &depositAmt, &installments,
			&paymentType, &tahsilatlar, &menuName, &menuDetail,
			&specialRequest, &note, &createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}

		r.StartTime = strVal(startTime)
		r.EndTime = strVal(endTime)
		r.EventType = strVal(eventType)
		r.Salon = strVal(salon)
		r.ClientName = strVal(clientName)
		r.BrideName = strVal(brideName)
		r.GroomName = strVal(groomName)
		r.TCIdentity = strVal(tcIdentity)
		r.Phone = strVal(phone)
		r.Region = strVal(region)
		r.Address = strVal(address)
		r.ContractNo = strVal(contractNo)
		r.ContractDate = strVal(contractDate)
		r.Status = strVal(status)
		r.PaymentType = strVal(paymentType)
		r.Tahsilatlar = strVal(tahsilatlar)
		r.MenuName = strVal(menuName)
		r.MenuDetail = strVal(menuDetail)
		r.SpecialRequest = strVal(specialRequest)
		r.Note = strVal(note)
		r.CreatedAt = strVal(createdAt)
		r.UpdatedAt = strVal(updatedAt)
		r.Guests = intVal(guests)
		r.Installments = intVal(installments)
		r.EventPrice = floatVal(eventPrice)
		r.MenuPrice = floatVal(menuPrice)
		r.DepositPct = floatVal(depositPct)
		r.DepositAmt = floatVal(depositAmt)

		out = append(out, r)
	}
	return out, rows.Err()
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func strVal(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}

func intVal(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func floatVal(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
