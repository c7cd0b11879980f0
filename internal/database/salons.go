package database

import (
	"context"
	"database/sql"
	"fmt"

	"dugunsalon/internal/models"
)

// ActiveSalons returns all salons that have not been soft-deleted.
func (db *DB) ActiveSalons(ctx context.Context) ([]models.Salon, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, capacity, price_factor, color, is_active
		FROM settings_salons
		WHERE is_active = 1
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list salons: %w", err)
	}
	defer rows.Close()

	var salons []models.Salon
	for rows.Next() {
		var s models.Salon
		var color sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &s.Capacity, &s.PriceFactor, &color, &s.IsActive); err != nil {
			return nil, fmt.Errorf("scan salon: %w", err)
		}
		s.Color = strVal(color)
		salons = append(salons, s)
	}
	return salons, rows.Err()
}

// CreateSalon inserts a salon and returns its id. New salons are always
// active.
func (db *DB) CreateSalon(ctx context.Context, s *models.Salon) (int64, error) {
	s.IsActive = true
	result, err := db.ExecContext(ctx, `
		INSERT INTO settings_salons (name, capacity, price_factor, color, is_active)
		VALUES (?, ?, ?, ?, 1)`,
		s.Name, s.Capacity, s.PriceFactor, nullStr(s.Color),
	)
	if err != nil {
		return 0, fmt.Errorf("insert salon: %w", err)
	}
	return result.LastInsertId()
}

// DeactivateSalon soft-deletes a salon.
func (db *DB) DeactivateSalon(ctx context.Context, id int64) error {
	_, err := db.ExecContext(ctx, `UPDATE settings_salons SET is_active = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deactivate salon: %w", err)
	}
	return nil
}
