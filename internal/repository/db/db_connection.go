package db

import (
	"context"
	"database/sql"
	"fmt"
	"net"

	"scoreboard/internal/config"

	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

// Open opens the configured store, applies the pool limits, makes sure the
// schema exists and seeds the fixed set of houses. The process should exit
// when this fails.
func Open(ctx context.Context, cfg config.DBConfig, houses []string) (*sql.DB, error) {
	db, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := EnsureSchema(ctx, db, cfg.Driver); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := SeedHouses(ctx, db, cfg.Driver, houses); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Connect opens the pool and pings it, without touching the schema.
func Connect(ctx context.Context, cfg config.DBConfig) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)
	switch cfg.Driver {
	case config.DriverMySQL:
		db, err = openMySQL(cfg)
	default:
		db, err = openSQLite(cfg.Path)
	}
	if err != nil {
		return nil, err
	}

	// Fail fast if the DB cannot be reached
	pingCtx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}
	return db, nil
}

// openSQLite opens/creates a SQLite DB file.
func openSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// SQLite is not great with many writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}
	return db, nil
}

// openMySQL connects to MySQL with a bounded connection pool.
func openMySQL(cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("mysql", MySQLDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("open mysql at %s: %w", cfg.Host, err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// MySQLDSN renders the driver DSN for cfg.
func MySQLDSN(cfg config.DBConfig) string {
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
	mc.DBName = cfg.Name
	mc.ParseTime = true
	// report matched rather than changed rows so a same-value update is not a miss
	mc.ClientFoundRows = true
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}
