package database

import (
	"context"
	"database/sql"
	"fmt"

	"dugunsalon/internal/models"
)

// ExpenseFilter narrows expense listings.
type ExpenseFilter struct {
	StartDate string // ISO, inclusive
	EndDate   string // ISO, inclusive
	Category  string
}

// Expenses returns expense rows newest first.
func (db *DB) Expenses(ctx context.Context, filter ExpenseFilter) ([]models.Expense, error) {
	query := `SELECT id, date, category, description, amount, reservation_id, created_at
		FROM expenses WHERE 1=1`
	var args []any
	if filter.StartDate != "" {
		query += " AND date >= ?"
		args = append(args, filter.StartDate)
	}
	if filter.EndDate != "" {
		query += " AND date <= ?"
		args = append(args, filter.EndDate)
	}
	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, filter.Category)
	}
	query += " ORDER BY date DESC"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var out []models.Expense
	for rows.Next() {
		var e models.Expense
		var description, createdAt sql.NullString
		var reservationID sql.NullInt64
		if err := rows.Scan(&e.ID, &e.Date, &e.Category, &description, &e.Amount, &reservationID, &createdAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.Description = strVal(description)
		e.CreatedAt = strVal(createdAt)
		if reservationID.Valid {
			id := reservationID.Int64
			e.ReservationID = &id
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// InsertExpense records an expense and returns its id.
func (db *DB) InsertExpense(ctx context.Context, e *models.Expense) (int64, error) {
	var reservationID any
	if e.ReservationID != nil {
		reservationID = *e.ReservationID
	}
	result, err := db.ExecContext(ctx, `
		INSERT INTO expenses (date, category, description, amount, reservation_id)
		VALUES (?, ?, ?, ?, ?)`,
		e.Date, e.Category, nullStr(e.Description), e.Amount, reservationID,
	)
	if err != nil {
		return 0, fmt.Errorf("insert expense: %w", err)
	}
	return result.LastInsertId()
}

// DeleteExpense removes an expense row.
func (db *DB) DeleteExpense(ctx context.Context, id int64) error {
	_, err := db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

// RevenueSummary sums reservation revenue over an inclusive date range.
// Empty bounds mean unbounded.
func (db *DB) RevenueSummary(ctx context.Context, startDate, endDate string) (total float64, count int, err error) {
	query := `
		SELECT
			COALESCE(SUM(COALESCE(event_price, 0) + COALESCE(menu_price, 0)), 0),
			COUNT(*)
		FROM reservations WHERE 1=1`
	var args []any
	if startDate != "" {
		query += " AND event_date >= ?"
		args = append(args, startDate)
	}
	if endDate != "" {
		query += " AND event_date <= ?"
		args = append(args, endDate)
	}

	if err = db.QueryRowContext(ctx, query, args...).Scan(&total, &count); err != nil {
		return 0, 0, fmt.Errorf("revenue summary: %w", err)
	}
	return total, count, nil
}

// ExpenseTotal sums expenses over an inclusive date range.
func (db *DB) ExpenseTotal(ctx context.Context, startDate, endDate string) (float64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE 1=1`
	var args []any
	if startDate != "" {
		query += " AND date >= ?"
		args = append(args, startDate)
	}
	if endDate != "" {
		query += " AND date <= ?"
		args = append(args, endDate)
	}

	var total float64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("expense total: %w", err)
	}
	return total, nil
}
