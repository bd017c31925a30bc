package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/atman1234/peak-nutrition-ai-sub000/internal/db"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "peaknut.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func floatPtr(v float64) *float64 {
	return &v
}
