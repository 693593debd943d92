package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/printadmin/internal/config"
)

var (
	db     *sql.DB
	dbOnce sync.Once
	dbErr  error
)

// GetDB returns the audit log database connection, opening
// ~/.printadmin/printadmin.db on first use.
func GetDB() (*sql.DB, error) {
	dbOnce.Do(func() {
		path, err := GetDBPath()
		if err != nil {
			dbErr = err
			return
		}
		db, dbErr = Open(path)
	})
	return db, dbErr
}

// Open opens the database at path, creating the parent directory and
// bringing the schema up to date.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// sqlite serializes writers anyway, and ":memory:" is per-connection.
	conn.SetMaxOpenConns(1)

	if err := InitSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return conn, nil
}

// Close closes the database connection
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}

// GetDBPath returns the path to the database file
func GetDBPath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "printadmin.db"), nil
}
