package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dugunsalon/internal/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// CreateUser inserts a staff account and returns its id.
func (db *DB) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	role := u.Role
	if role == 0 {
		role = models.RoleStaff
	}
	result, err := db.ExecContext(ctx, `
		INSERT INTO users (name, email, phone1, phone2, address, city, district, username, password_hash, role)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Name, u.Email, nullStr(u.Phone1), nullStr(u.Phone2),
		nullStr(u.Address), nullStr(u.City), nullStr(u.District),
		u.Username, u.PasswordHash, role,
	)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return result.LastInsertId()
}

// UserByUsername returns the account with the given username.
func (db *DB) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	return db.userBy(ctx, "username", username)
}

// UserByEmail returns the account with the given email.
func (db *DB) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	return db.userBy(ctx, "email", email)
}

func (db *DB) userBy(ctx context.Context, column, value string) (*models.User, error) {
	var u models.User
	var phone1, phone2, address, city, district sql.NullString
	err := db.QueryRowContext(ctx, `
		SELECT id, name, email, phone1, phone2, address, city, district, username, password_hash, role
		FROM users WHERE `+column+` = ? LIMIT 1`,
		value,
	).Scan(
		&u.ID, &u.Name, &u.Email, &phone1, &phone2, &address, &city,
		&district, &u.Username, &u.PasswordHash, &u.Role,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user by %s: %w", column, err)
	}
	u.Phone1 = strVal(phone1)
	u.Phone2 = strVal(phone2)
	u.Address = strVal(address)
	u.City = strVal(city)
	u.District = strVal(district)
	return &u, nil
}
