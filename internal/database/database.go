package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
	"github.com/rs/zerolog"
)

// DB wraps the sqlite connection used by the reservation service.
type DB struct {
	*sql.DB
	logger *zerolog.Logger
}

// NewDB initializes the database connection and creates tables if they
// don't exist.
func NewDB(path string, logger *zerolog.Logger) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// WAL mode and busy timeout keep concurrent readers out of each
	// other's way.
	dsn := path + "?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	instance := &DB{DB: db, logger: logger}
	if err := instance.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	logger.Info().Str("path", path).Msg("Database initialized")
	return instance, nil
}

func (db *DB) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS reservations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			event_date TEXT NOT NULL,
			start_time TEXT,
			end_time TEXT,
			event_type TEXT,
			guests INTEGER,
			salon TEXT,
			client_name TEXT,
			bride_name TEXT,
			groom_name TEXT,
			tc_identity TEXT,
			phone TEXT,
			region TEXT,
			address TEXT,
			contract_no TEXT,
			contract_date TEXT,
			status TEXT,
			event_price REAL,
			menu_price REAL,
			deposit_percent REAL,
			deposit_amount REAL,
			installments INTEGER,
			payment_type TEXT,
			tahsilatlar TEXT,
			menu_name TEXT,
			menu_detail TEXT,
			special_request TEXT,
			note TEXT,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reservations_event_date ON reservations (event_date)`,
		`CREATE INDEX IF NOT EXISTS idx_reservations_salon ON reservations (salon)`,

		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT,
			email TEXT UNIQUE,
			phone1 TEXT,
			phone2 TEXT,
			address TEXT,
			city TEXT,
			district TEXT,
			username TEXT UNIQUE,
			password_hash TEXT NOT NULL,
			role INTEGER DEFAULT 2
		)`,

		`CREATE TABLE IF NOT EXISTS settings_salons (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			capacity INTEGER DEFAULT 0,
			price_factor REAL DEFAULT 1.0,
			color TEXT,
			is_active BOOLEAN NOT NULL DEFAULT 1
		)`,

		`CREATE TABLE IF NOT EXISTS expenses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			category TEXT NOT NULL,
			description TEXT,
			amount REAL NOT NULL,
			reservation_id INTEGER,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses (date)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("error executing query %s: %w", query, err)
		}
	}
	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
