package db

import (
	"context"
	"database/sql"
	"fmt"

	"scoreboard/internal/config"
)

// dialect holds the statements that differ between SQLite and MySQL.
type dialect struct {
	schema    []string
	seedHouse string
}

var sqliteDialect = dialect{
	schema: []string{`
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    role TEXT NOT NULL DEFAULT 'user'
);`, `
CREATE TABLE IF NOT EXISTS scores (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    house TEXT UNIQUE NOT NULL,
    score INTEGER NOT NULL DEFAULT 0
);`, `
CREATE TABLE IF NOT EXISTS events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    date TEXT NOT NULL,
    description TEXT NOT NULL
);`,
	},
	seedHouse: `INSERT OR IGNORE INTO scores (house, score) VALUES (?, 0)`,
}

var mysqlDialect = dialect{
	schema: []string{`
CREATE TABLE IF NOT EXISTS users (
    id INT AUTO_INCREMENT PRIMARY KEY,
    username VARCHAR(255) NOT NULL UNIQUE,
    password_hash VARCHAR(255) NOT NULL,
    role VARCHAR(16) NOT NULL DEFAULT 'user'
) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin;`, `
CREATE TABLE IF NOT EXISTS scores (
    id INT AUTO_INCREMENT PRIMARY KEY,
    house VARCHAR(64) NOT NULL UNIQUE,
    score INT NOT NULL DEFAULT 0
) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin;`, `
CREATE TABLE IF NOT EXISTS events (
    id INT AUTO_INCREMENT PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    date VARCHAR(64) NOT NULL,
    description TEXT NOT NULL
) CHARACTER SET utf8mb4;`,
	},
	seedHouse: `INSERT IGNORE INTO scores (house, score) VALUES (?, 0)`,
}

func dialectFor(driver string) dialect {
	if driver == config.DriverMySQL {
		return mysqlDialect
	}
	return sqliteDialect
}

// EnsureSchema creates the users, scores and events tables when missing.
func EnsureSchema(ctx context.Context, db *sql.DB, driver string) error {
	d := dialectFor(driver)
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		// In case of panic, rollback to avoid leaving an open transaction
		_ = tx.Rollback()
	}()

	for i, stmt := range d.schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}

// SeedHouses inserts a zero score row for every house that is not present yet.
// Existing rows keep their score.
func SeedHouses(ctx context.Context, db *sql.DB, driver string, houses []string) error {
	d := dialectFor(driver)
	for _, h := range houses {
		if _, err := db.ExecContext(ctx, d.seedHouse, h); err != nil {
			return fmt.Errorf("seed house %q: %w", h, err)
		}
	}
	return nil
}
