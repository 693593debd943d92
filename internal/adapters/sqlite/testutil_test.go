// Package sqlite_test contains integration tests for SQLite repositories.
//
// Every test database is built from db.GetSchemaSQL() so tests run against
// the authoritative schema. Do not hardcode CREATE TABLE statements here.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/printadmin/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedLog inserts an audit log row with an explicit timestamp.
func seedLog(t *testing.T, db *sql.DB, id, entityType, entityID, action, timestamp string) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO audit_logs (id, timestamp, entity_type, entity_id, action) VALUES (?, ?, ?, ?, ?)",
		id, timestamp, entityType, entityID, action,
	)
	if err != nil {
		t.Fatalf("failed to seed audit log: %v", err)
	}
}
